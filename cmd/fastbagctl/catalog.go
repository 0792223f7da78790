package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/codeedexprojects/fastbag-admin-sub001/internal/format"
	"github.com/codeedexprojects/fastbag-admin-sub001/internal/listview"
	sdk "github.com/codeedexprojects/fastbag-admin-sub001/sdk"
)

func newProductsCmd() *cobra.Command {
	var vertical string
	cmd := &cobra.Command{Use: "products", Short: "Manage the grocery, food and fashion catalogs"}
	cmd.PersistentFlags().StringVar(&vertical, "vertical", "", "catalog vertical (grocery|food|fashion)")
	cobra.CheckErr(cmd.MarkPersistentFlagRequired("vertical"))

	cols := columns[sdk.Product]{
		header: []string{"ID", "Name", "Category", "Store", "Price", "Offer", "Discount", "In Stock"},
		record: func(p sdk.Product) []string {
			return []string{
				p.RowID(), p.Name, p.CategoryName, p.StoreName,
				format.Money(p.Price), format.Money(p.OfferPrice),
				format.Percent(p.DiscountPercent), strconv.FormatBool(p.InStock),
			}
		},
	}
	pick := func(cmd *cobra.Command) (listview.Resource[sdk.Product], error) {
		v, ok := sdk.ParseVertical(vertical)
		if !ok {
			return nil, fmt.Errorf("unknown vertical %q (want grocery, food or fashion)", vertical)
		}
		svc, _, err := newService(cmd)
		if err != nil {
			return nil, err
		}
		return svc.Products(v), nil
	}
	cmd.AddCommand(crudCommands("product", pick, cols)...)
	return cmd
}
