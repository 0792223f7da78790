package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/codeedexprojects/fastbag-admin-sub001/internal/display"
	"github.com/codeedexprojects/fastbag-admin-sub001/internal/format"
	"github.com/codeedexprojects/fastbag-admin-sub001/internal/listview"
	sdk "github.com/codeedexprojects/fastbag-admin-sub001/sdk"
)

func orderColumns() columns[sdk.Order] {
	return columns[sdk.Order]{
		header: []string{"ID", "Order", "Customer", "Store", "Amount", "Status", "Placed"},
		record: func(o sdk.Order) []string {
			status := string(o.Status)
			if attr, err := display.OrderAttr(o.Status); err == nil {
				status = attr.Label
			}
			return []string{
				o.RowID(), o.OrderNumber, o.CustomerName, o.StoreName,
				format.Money(o.TotalAmount), status, o.PlacedAt,
			}
		},
	}
}

func newOrdersCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "orders", Short: "Track and manage customer orders"}
	cmd.AddCommand(crudCommands("order", serviceResource(func(s *sdk.Service) listview.Resource[sdk.Order] {
		return s.Orders()
	}), orderColumns())...)

	cmd.AddCommand(&cobra.Command{
		Use:   "set-status <id> <status>",
		Short: "Update one order's status",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			status := display.OrderStatus(args[1])
			// Validate before the network call; an unknown status never
			// reaches the API.
			if _, err := display.OrderAttr(status); err != nil {
				return err
			}
			svc, _, err := newService(cmd)
			if err != nil {
				return err
			}
			updated, err := svc.SetOrderStatus(cmd.Context(), args[0], status)
			if err != nil {
				return fmt.Errorf("set status on order %s: %w", args[0], err)
			}
			return printJSON(cmd, updated)
		},
	})

	var clearYes bool
	clear := &cobra.Command{
		Use:   "clear",
		Short: "Delete ALL orders",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !clearYes && !confirm(cmd, "Delete ALL orders? This cannot be undone") {
				fmt.Fprintln(cmd.OutOrStdout(), "aborted")
				return nil
			}
			svc, _, err := newService(cmd)
			if err != nil {
				return err
			}
			lv := listview.New(svc.Orders())
			if err := lv.DeleteAll(cmd.Context()); err != nil {
				return fmt.Errorf("clear orders: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "all orders deleted")
			return nil
		},
	}
	clear.Flags().BoolVar(&clearYes, "yes", false, "skip confirmation")
	cmd.AddCommand(clear)
	return cmd
}

func newBigBuyCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "bigbuy", Short: "Track bulk purchase requests"}
	cols := columns[sdk.BigBuyOrder]{
		header: []string{"ID", "Customer", "Mobile", "Items", "Amount", "Status", "Required"},
		record: func(b sdk.BigBuyOrder) []string {
			status := string(b.Status)
			if attr, err := display.OrderAttr(b.Status); err == nil {
				status = attr.Label
			}
			return []string{
				b.RowID(), b.CustomerName, b.MobileNumber,
				fmt.Sprintf("%d", b.ItemCount), format.Money(b.TotalAmount),
				status, b.RequiredDate,
			}
		},
	}
	cmd.AddCommand(crudCommands("bigbuy order", serviceResource(func(s *sdk.Service) listview.Resource[sdk.BigBuyOrder] {
		return s.BigBuyOrders()
	}), cols)...)
	return cmd
}
