package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/codeedexprojects/fastbag-admin-sub001/internal/listview"
	sdk "github.com/codeedexprojects/fastbag-admin-sub001/sdk"
)

// columns declares how one resource renders: the fixed header (shared by the
// table view and CSV export) and one record per row in header order.
type columns[T listview.Row] struct {
	header []string
	record func(T) []string
}

type listFlags struct {
	page     int
	pageSize int
	ordering string
	search   string
	filters  []string
}

func addListFlags(cmd *cobra.Command, f *listFlags) {
	cmd.Flags().IntVar(&f.page, "page", 1, "page number (1-indexed)")
	cmd.Flags().IntVar(&f.pageSize, "page-size", 20, "rows per page")
	cmd.Flags().StringVar(&f.ordering, "order-by", "", "sort key (prefix with - for descending)")
	cmd.Flags().StringVar(&f.search, "search", "", "narrow the loaded page locally (case-insensitive)")
	cmd.Flags().StringArrayVar(&f.filters, "filter", nil, "server-side filter key=value (repeatable)")
}

func newView[T listview.Row](res listview.Resource[T], f listFlags, cols columns[T]) (*listview.ListView[T], error) {
	filters, err := parseFilterFlags(f.filters)
	if err != nil {
		return nil, err
	}
	return listview.New(res,
		listview.WithPage[T](f.page),
		listview.WithPageSize[T](f.pageSize),
		listview.WithOrdering[T](f.ordering),
		listview.WithFilters[T](filters),
		listview.WithCSV[T](cols.header, cols.record),
	), nil
}

// runList loads one page and prints it.
func runList[T listview.Row](cmd *cobra.Command, res listview.Resource[T], f listFlags, cols columns[T]) error {
	lv, err := newView(res, f, cols)
	if err != nil {
		return err
	}
	ctx := cmd.Context()
	if err := lv.Load(ctx); err != nil {
		return fmt.Errorf("load list: %w", err)
	}
	lv.Search(f.search)
	rows := lv.Rows()
	records := make([][]string, 0, len(rows))
	for _, r := range rows {
		records = append(records, cols.record(r))
	}
	q := lv.Query()
	return printList(cmd, rows, cols.header, records, q.Page, q.PageSize, lv.TotalCount())
}

// runExport fetches the full filtered set and writes it as CSV.
func runExport[T listview.Row](cmd *cobra.Command, res listview.Resource[T], f listFlags, cols columns[T], out string) error {
	if out == "" {
		return fmt.Errorf("--out is required")
	}
	lv, err := newView(res, f, cols)
	if err != nil {
		return err
	}
	file, err := os.Create(out)
	if err != nil {
		return err
	}
	defer file.Close()
	if err := lv.ExportCSV(cmd.Context(), file); err != nil {
		return fmt.Errorf("export: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "exported to %s\n", out)
	return nil
}

// runDelete removes one row after explicit confirmation.
func runDelete[T listview.Row](cmd *cobra.Command, res listview.Resource[T], what, id string, yes bool) error {
	if !yes && !confirm(cmd, fmt.Sprintf("Delete %s %s?", what, id)) {
		fmt.Fprintln(cmd.OutOrStdout(), "aborted")
		return nil
	}
	if err := res.Delete(cmd.Context(), id); err != nil {
		return fmt.Errorf("delete %s %s: %w", what, id, err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "deleted %s %s\n", what, id)
	return nil
}

// runUpdate sends a partial update built from --set flags and prints the
// echoed record when the endpoint is authoritative.
func runUpdate[T listview.Row](cmd *cobra.Command, res listview.Resource[T], what, id string, sets []string) error {
	patch, err := parseSetFlags(sets)
	if err != nil {
		return err
	}
	updated, err := res.Update(cmd.Context(), id, patch)
	if err != nil {
		return fmt.Errorf("update %s %s: %w", what, id, err)
	}
	if updated != nil {
		return printJSON(cmd, updated)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "updated %s %s\n", what, id)
	return nil
}

// crudCommands assembles the standard list/export/delete/update verb set
// shared by most resources.
func crudCommands[T listview.Row](what string, res func(*cobra.Command) (listview.Resource[T], error), cols columns[T]) []*cobra.Command {
	var lf listFlags
	list := &cobra.Command{
		Use:   "list",
		Short: "List " + what + "s",
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := res(cmd)
			if err != nil {
				return err
			}
			return runList(cmd, r, lf, cols)
		},
	}
	addListFlags(list, &lf)

	var ef listFlags
	var out string
	export := &cobra.Command{
		Use:   "export",
		Short: "Export " + what + "s to CSV",
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := res(cmd)
			if err != nil {
				return err
			}
			return runExport(cmd, r, ef, cols, out)
		},
	}
	addListFlags(export, &ef)
	export.Flags().StringVar(&out, "out", "", "output file")
	mustFlag(export, "out")

	var yes bool
	del := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete one " + what,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := res(cmd)
			if err != nil {
				return err
			}
			return runDelete(cmd, r, what, args[0], yes)
		},
	}
	del.Flags().BoolVar(&yes, "yes", false, "skip confirmation")

	var sets []string
	update := &cobra.Command{
		Use:   "update <id>",
		Short: "Update fields on one " + what,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := res(cmd)
			if err != nil {
				return err
			}
			return runUpdate(cmd, r, what, args[0], sets)
		},
	}
	update.Flags().StringArrayVar(&sets, "set", nil, "field to change, key=value (repeatable)")

	return []*cobra.Command{list, export, del, update}
}

// serviceResource adapts a Service accessor into the lazy constructor
// crudCommands wants: the session is only resolved when a verb runs.
func serviceResource[T listview.Row](pick func(*sdk.Service) listview.Resource[T]) func(*cobra.Command) (listview.Resource[T], error) {
	return func(cmd *cobra.Command) (listview.Resource[T], error) {
		svc, _, err := newService(cmd)
		if err != nil {
			return nil, err
		}
		return pick(svc), nil
	}
}
