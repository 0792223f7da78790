package main

import (
	"encoding/json"
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// printList renders rows in either JSON or table format based on the
// --output flag. The table footer reports pagination so users can see
// whether more pages exist.
func printList(cmd *cobra.Command, v any, header []string, records [][]string, page, pageSize, total int) error {
	format, err := cmd.Root().PersistentFlags().GetString("output")
	if err != nil {
		return err
	}
	if format == "json" {
		b, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(b))
		return nil
	}
	tw := tablewriter.NewWriter(cmd.OutOrStdout())
	tw.SetHeader(header)
	for _, rec := range records {
		tw.Append(rec)
	}
	tw.Render()
	pages := 1
	if pageSize > 0 && total > pageSize {
		pages = (total + pageSize - 1) / pageSize
	}
	fmt.Fprintf(cmd.OutOrStdout(), "page %d of %d (%d total)\n", page, pages, total)
	return nil
}

func printJSON(cmd *cobra.Command, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(b))
	return nil
}
