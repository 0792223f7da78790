package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/codeedexprojects/fastbag-admin-sub001/internal/display"
	"github.com/codeedexprojects/fastbag-admin-sub001/internal/listview"
	sdk "github.com/codeedexprojects/fastbag-admin-sub001/sdk"
)

func newVendorsCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "vendors", Short: "Manage vendor onboarding"}
	cols := columns[sdk.Vendor]{
		header: []string{"ID", "Owner", "Business", "Mobile", "City", "Status"},
		record: func(v sdk.Vendor) []string {
			status := string(v.Status)
			if attr, err := display.VendorAttr(v.Status); err == nil {
				status = attr.Label
			}
			return []string{v.RowID(), v.OwnerName, v.BusinessName, v.MobileNumber, v.City, status}
		},
	}
	cmd.AddCommand(crudCommands("vendor", serviceResource(func(s *sdk.Service) listview.Resource[sdk.Vendor] {
		return s.Vendors()
	}), cols)...)

	cmd.AddCommand(&cobra.Command{
		Use:   "approve <id>",
		Short: "Approve a pending vendor",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, err := newService(cmd)
			if err != nil {
				return err
			}
			if err := svc.ApproveVendor(cmd.Context(), args[0]); err != nil {
				return fmt.Errorf("approve vendor %s: %w", args[0], err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "vendor %s approved\n", args[0])
			return nil
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "reject <id>",
		Short: "Reject a pending vendor",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, err := newService(cmd)
			if err != nil {
				return err
			}
			if err := svc.RejectVendor(cmd.Context(), args[0]); err != nil {
				return fmt.Errorf("reject vendor %s: %w", args[0], err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "vendor %s rejected\n", args[0])
			return nil
		},
	})
	return cmd
}

func newStoresCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "stores", Short: "Manage storefronts"}
	cols := columns[sdk.Store]{
		header: []string{"ID", "Name", "Type", "Mobile", "City", "Active"},
		record: func(s sdk.Store) []string {
			return []string{s.RowID(), s.Name, s.StoreType, s.MobileNumber, s.City, strconv.FormatBool(s.Enabled)}
		},
	}
	cmd.AddCommand(crudCommands("store", serviceResource(func(s *sdk.Service) listview.Resource[sdk.Store] {
		return s.Stores()
	}), cols)...)
	return cmd
}
