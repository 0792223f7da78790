package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/codeedexprojects/fastbag-admin-sub001/internal/listview"
	sdk "github.com/codeedexprojects/fastbag-admin-sub001/sdk"
)

func newSubAdminsCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "subadmins", Short: "Manage restricted back-office accounts"}
	cols := columns[sdk.SubAdmin]{
		header: []string{"Mobile", "Name", "Email", "Sections", "Active"},
		record: func(s sdk.SubAdmin) []string {
			return []string{
				s.MobileNumber, s.Name, s.Email,
				strings.Join(s.Sections, ", "), strconv.FormatBool(s.Active),
			}
		},
	}
	cmd.AddCommand(crudCommands("sub-admin", serviceResource(func(s *sdk.Service) listview.Resource[sdk.SubAdmin] {
		return s.SubAdmins()
	}), cols)...)

	var (
		mobile   string
		name     string
		email    string
		sections []string
		password string
	)
	add := &cobra.Command{
		Use:   "add",
		Short: "Create a sub-admin with a section allow-list",
		RunE: func(cmd *cobra.Command, args []string) error {
			if password == "" {
				password = promptSecret("Password for " + mobile)
			}
			if password == "" {
				return fmt.Errorf("password is required")
			}
			svc, _, err := newService(cmd)
			if err != nil {
				return err
			}
			sa := sdk.SubAdmin{
				MobileNumber: mobile,
				Name:         name,
				Email:        email,
				Sections:     sections,
				Active:       true,
			}
			if err := svc.CreateSubAdmin(cmd.Context(), sa, password); err != nil {
				return fmt.Errorf("create sub-admin: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "sub-admin %s created\n", mobile)
			return nil
		},
	}
	add.Flags().StringVar(&mobile, "mobile", "", "mobile number (identity)")
	add.Flags().StringVar(&name, "name", "", "display name")
	add.Flags().StringVar(&email, "email", "", "email address")
	add.Flags().StringSliceVar(&sections, "sections", nil, "allowed section keys")
	add.Flags().StringVar(&password, "password", "", "password (prompted when omitted)")
	mustFlag(add, "mobile")
	mustFlag(add, "name")
	mustFlag(add, "sections")
	cmd.AddCommand(add)
	return cmd
}

func newCustomersCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "customers", Short: "Manage shopper accounts"}
	cols := columns[sdk.Customer]{
		header: []string{"ID", "Name", "Mobile", "Email", "Active", "Joined"},
		record: func(c sdk.Customer) []string {
			return []string{
				c.RowID(), c.Name, c.MobileNumber, c.Email,
				strconv.FormatBool(c.Active), c.JoinedAt,
			}
		},
	}
	cmd.AddCommand(crudCommands("customer", serviceResource(func(s *sdk.Service) listview.Resource[sdk.Customer] {
		return s.Customers()
	}), cols)...)

	toggle := func(use, short string, active bool) *cobra.Command {
		return &cobra.Command{
			Use:   use + " <id>",
			Short: short,
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				svc, _, err := newService(cmd)
				if err != nil {
					return err
				}
				if err := svc.SetCustomerActive(cmd.Context(), args[0], active); err != nil {
					return fmt.Errorf("%s customer %s: %w", use, args[0], err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "customer %s %sd\n", args[0], use)
				return nil
			},
		}
	}
	cmd.AddCommand(toggle("enable", "Enable a customer account", true))
	cmd.AddCommand(toggle("disable", "Disable a customer account", false))
	return cmd
}

func newDeliveryCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "delivery", Short: "Manage delivery staff"}
	cols := columns[sdk.DeliveryAgent]{
		header: []string{"ID", "Name", "Mobile", "City", "Active"},
		record: func(d sdk.DeliveryAgent) []string {
			return []string{d.RowID(), d.Name, d.MobileNumber, d.City, strconv.FormatBool(d.Active)}
		},
	}
	cmd.AddCommand(crudCommands("delivery agent", serviceResource(func(s *sdk.Service) listview.Resource[sdk.DeliveryAgent] {
		return s.DeliveryAgents()
	}), cols)...)
	return cmd
}
