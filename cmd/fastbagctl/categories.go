package main

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/codeedexprojects/fastbag-admin-sub001/internal/listview"
	sdk "github.com/codeedexprojects/fastbag-admin-sub001/sdk"
)

func newCategoriesCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "categories", Short: "Manage storefront categories"}
	cols := columns[sdk.Category]{
		header: []string{"ID", "Name", "Store Type", "Enabled"},
		record: func(c sdk.Category) []string {
			return []string{c.RowID(), c.Name, c.StoreType, strconv.FormatBool(c.Enabled)}
		},
	}
	cmd.AddCommand(crudCommands("category", serviceResource(func(s *sdk.Service) listview.Resource[sdk.Category] {
		return s.Categories()
	}), cols)...)
	return cmd
}

func newSubcategoriesCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "subcategories", Short: "Manage subcategories"}
	cols := columns[sdk.Subcategory]{
		header: []string{"ID", "Name", "Category", "Enabled"},
		record: func(c sdk.Subcategory) []string {
			return []string{c.RowID(), c.Name, c.CategoryName, strconv.FormatBool(c.Enabled)}
		},
	}
	cmd.AddCommand(crudCommands("subcategory", serviceResource(func(s *sdk.Service) listview.Resource[sdk.Subcategory] {
		return s.Subcategories()
	}), cols)...)
	return cmd
}

func newColorsCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "colors", Short: "Manage fashion color swatches"}
	cols := columns[sdk.Color]{
		header: []string{"ID", "Name", "Hex"},
		record: func(c sdk.Color) []string {
			return []string{c.RowID(), c.Name, c.Hex}
		},
	}
	cmd.AddCommand(crudCommands("color", serviceResource(func(s *sdk.Service) listview.Resource[sdk.Color] {
		return s.Colors()
	}), cols)...)
	return cmd
}
