package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/codeedexprojects/fastbag-admin-sub001/pkg/config"
	sdk "github.com/codeedexprojects/fastbag-admin-sub001/sdk"
)

var loginNonInteractive bool

func newLoginCmd() *cobra.Command {
	var (
		mobile   string
		password string
	)
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in and save tokens into ~/.fastbagctl/config.json",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, prof, err := config.ActiveProfile(cmd)
			if err != nil {
				return err
			}
			if prof == "" {
				prof = "default"
			}
			cp := cfg.Profiles[prof]

			url, _ := cmd.Root().Flags().GetString("api-url")
			if url == "" {
				url = cp.APIURL
			}
			if !loginNonInteractive {
				if url == "" {
					url = prompt("API URL", cp.APIURL)
				}
				if mobile == "" {
					mobile = prompt("Mobile number", "")
				}
				if password == "" {
					password = promptSecret("Password")
				}
			}
			if url == "" || mobile == "" || password == "" {
				return fmt.Errorf("api-url, mobile and password are required (provide flags or use interactive mode)")
			}

			svc := sdk.New(sdk.ServiceConfig{BaseURL: url})
			creds, err := svc.Login(cmd.Context(), mobile, password)
			if err != nil {
				if errors.Is(err, sdk.ErrUnauthorized) {
					return fmt.Errorf("login failed: incorrect credentials")
				}
				return fmt.Errorf("login failed: %w", err)
			}

			// Permission snapshot for the navigation filter; session state
			// is loaded once per login and immutable until the next one.
			me, err := svc.Me(cmd.Context())
			if err != nil {
				return fmt.Errorf("fetch profile: %w", err)
			}

			cp.Name = prof
			cp.APIURL = url
			cp.AccessToken = creds.AccessToken
			cp.RefreshToken = creds.RefreshToken
			cp.UserID = creds.UserID.String()
			cp.Role = me.Role
			cp.Sections = me.Sections
			cfg.Profiles[prof] = cp
			cfg.Active = prof

			if err := config.Save(cfg); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Logged in. Active profile: %s\n", prof)
			return nil
		},
	}
	cmd.Flags().StringVar(&mobile, "mobile", "", "admin mobile number")
	cmd.Flags().StringVar(&password, "password", "", "password (prompted when omitted)")
	cmd.Flags().BoolVar(&loginNonInteractive, "non-interactive", false, "Fail instead of prompting")
	return cmd
}

func newLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Clear the saved tokens for the active profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, prof, err := config.ActiveProfile(cmd)
			if err != nil {
				return err
			}
			cp, ok := cfg.Profiles[prof]
			if !ok {
				fmt.Fprintln(cmd.OutOrStdout(), "nothing to do")
				return nil
			}
			cp.AccessToken = ""
			cp.RefreshToken = ""
			cp.Role = ""
			cp.Sections = nil
			cfg.Profiles[prof] = cp
			if err := config.Save(cfg); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Logged out of profile %s\n", prof)
			return nil
		},
	}
}
