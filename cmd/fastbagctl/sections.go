package main

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/codeedexprojects/fastbag-admin-sub001/internal/nav"
	"github.com/codeedexprojects/fastbag-admin-sub001/internal/session"
)

func newSectionsCmd() *cobra.Command {
	var manifestPath string
	cmd := &cobra.Command{
		Use:   "sections",
		Short: "Show the navigation sections visible to the signed-in principal",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := currentSession(cmd)
			if err != nil {
				return err
			}
			universe := nav.Universe()
			if manifestPath != "" {
				b, err := os.ReadFile(manifestPath)
				if err != nil {
					return err
				}
				u, err := nav.LoadManifest(b)
				if err != nil {
					return err
				}
				universe = u
			}
			visible := nav.Visible(universe, s.Permissions)
			if len(visible) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no sections visible")
				return nil
			}
			format, _ := cmd.Root().PersistentFlags().GetString("output")
			if format == "json" {
				return printJSON(cmd, visible)
			}
			tw := tablewriter.NewWriter(cmd.OutOrStdout())
			tw.SetHeader([]string{"Key", "Label", "Sub-sections"})
			for _, sec := range visible {
				var items []string
				for _, it := range sec.Items {
					items = append(items, it.Label)
				}
				tw.Append([]string{sec.Key, sec.Label, strings.Join(items, ", ")})
			}
			tw.Render()
			return nil
		},
	}
	cmd.Flags().StringVar(&manifestPath, "manifest", "", "YAML section manifest overriding the built-in universe")
	return cmd
}

func newWhoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in principal",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := currentSession(cmd)
			if err != nil {
				return err
			}
			claims, err := session.TokenClaims(s.AccessToken)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "API:     %s\n", s.APIURL)
			fmt.Fprintf(out, "User ID: %s\n", s.UserID)
			fmt.Fprintf(out, "Role:    %s\n", s.Permissions.Role)
			if claims.ExpiresAt != nil {
				fmt.Fprintf(out, "Expires: %s\n", claims.ExpiresAt.Time.Format("2006-01-02 15:04:05"))
			}
			if s.Permissions.Role == session.RoleSubAdmin {
				var keys []string
				for k := range s.Permissions.Sections {
					keys = append(keys, k)
				}
				sort.Strings(keys)
				fmt.Fprintf(out, "Sections: %s\n", strings.Join(keys, ", "))
			}
			return nil
		},
	}
}
