package sdk

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"github.com/codeedexprojects/fastbag-admin-sub001/internal/listview"
	client "github.com/codeedexprojects/fastbag-admin-sub001/sdk/client"
)

// resource adapts one REST collection to the listview contract. echoes marks
// update endpoints that return the full updated record; those merge locally,
// the rest force a refetch.
type resource[T listview.Row] struct {
	c      *client.Client
	log    *zap.SugaredLogger
	path   string
	echoes bool
}

func (r *resource[T]) FetchPage(ctx context.Context, q listview.Query) (listview.Page[T], error) {
	pr, err := r.c.FetchPage(ctx, r.path, client.PageQuery{
		Page:     q.Page,
		PageSize: q.PageSize,
		Ordering: q.Ordering,
		Filters:  q.Filters,
	})
	if err != nil {
		r.log.Errorw("list fetch failed", "path", r.path, "error", err)
		return listview.Page[T]{}, err
	}
	rows := make([]T, 0, len(pr.Rows))
	for _, raw := range pr.Rows {
		var row T
		if err := json.Unmarshal(raw, &row); err != nil {
			return listview.Page[T]{}, fmt.Errorf("decode %s row: %w", r.path, err)
		}
		rows = append(rows, row)
	}
	return listview.Page[T]{Rows: rows, Total: pr.TotalCount}, nil
}

func (r *resource[T]) Update(ctx context.Context, id string, patch map[string]any) (*T, error) {
	p := r.path + id + "/"
	if !r.echoes {
		if err := r.c.Patch(ctx, p, patch, nil); err != nil {
			r.log.Errorw("update failed", "path", p, "error", err)
			return nil, err
		}
		return nil, nil
	}
	var out T
	if err := r.c.Patch(ctx, p, patch, &out); err != nil {
		r.log.Errorw("update failed", "path", p, "error", err)
		return nil, err
	}
	return &out, nil
}

func (r *resource[T]) Delete(ctx context.Context, id string) error {
	p := r.path + id + "/"
	if err := r.c.Delete(ctx, p); err != nil {
		r.log.Errorw("delete failed", "path", p, "error", err)
		return err
	}
	return nil
}

// ordersResource adds the destructive clear-all operation orders support.
type ordersResource struct {
	resource[Order]
}

func (r *ordersResource) DeleteAll(ctx context.Context) error {
	p := r.path + "clear/"
	if err := r.c.Delete(ctx, p); err != nil {
		r.log.Errorw("bulk delete failed", "path", p, "error", err)
		return err
	}
	return nil
}
