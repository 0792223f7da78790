package listview

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type item struct {
	ID     int
	Name   string
	Status string
}

func (i item) RowID() string      { return strconv.Itoa(i.ID) }
func (i item) SearchText() string { return i.Name }

type fakeResource struct {
	mu      sync.Mutex
	fetches int
	queries []Query

	fetch  func(q Query) (Page[item], error)
	update func(id string, patch map[string]any) (*item, error)
	del    func(id string) error
	delAll func() error
}

func (f *fakeResource) FetchPage(_ context.Context, q Query) (Page[item], error) {
	f.mu.Lock()
	f.fetches++
	f.queries = append(f.queries, q)
	fn := f.fetch
	f.mu.Unlock()
	if fn == nil {
		return Page[item]{}, nil
	}
	return fn(q)
}

func (f *fakeResource) Update(_ context.Context, id string, patch map[string]any) (*item, error) {
	if f.update == nil {
		return nil, nil
	}
	return f.update(id, patch)
}

func (f *fakeResource) Delete(_ context.Context, id string) error {
	if f.del == nil {
		return nil
	}
	return f.del(id)
}

func (f *fakeResource) DeleteAll(_ context.Context) error {
	if f.delAll == nil {
		return nil
	}
	return f.delAll()
}

func (f *fakeResource) fetchCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.fetches
}

func (f *fakeResource) lastQuery() Query {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.queries[len(f.queries)-1]
}

func threeItems() []item {
	return []item{
		{ID: 1, Name: "Apples", Status: "PENDING"},
		{ID: 2, Name: "Bananas", Status: "PENDING"},
		{ID: 3, Name: "Cereal", Status: "DELIVERED"},
	}
}

func TestLoadReady(t *testing.T) {
	res := &fakeResource{fetch: func(q Query) (Page[item], error) {
		return Page[item]{Rows: threeItems(), Total: 42}, nil
	}}
	lv := New[item](res, WithPageSize[item](10))
	if lv.State() != StateIdle {
		t.Fatalf("state before load = %v", lv.State())
	}
	if err := lv.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}
	if lv.State() != StateReady {
		t.Fatalf("state = %v", lv.State())
	}
	if got := lv.TotalCount(); got != 42 {
		t.Fatalf("total = %d", got)
	}
	if diff := cmp.Diff(threeItems(), lv.Rows()); diff != "" {
		t.Fatalf("rows diff (-want +got)\n%s", diff)
	}
}

func TestStaleResponseDiscarded(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	res := &fakeResource{}
	res.fetch = func(q Query) (Page[item], error) {
		if q.Filters["status"] == "" {
			close(started)
			<-release
			return Page[item]{Rows: []item{{ID: 1, Name: "stale"}}, Total: 1}, nil
		}
		return Page[item]{Rows: []item{{ID: 2, Name: "fresh"}}, Total: 1}, nil
	}
	lv := New[item](res)

	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = lv.Load(context.Background())
	}()
	<-started
	if err := lv.SetFilter(context.Background(), "status", "DELIVERED"); err != nil {
		t.Fatalf("set filter: %v", err)
	}
	close(release)
	<-done

	rows := lv.Rows()
	if len(rows) != 1 || rows[0].Name != "fresh" {
		t.Fatalf("stale response overwrote view: %+v", rows)
	}
}

func TestFilterAndOrderingResetPage(t *testing.T) {
	res := &fakeResource{fetch: func(q Query) (Page[item], error) {
		return Page[item]{Rows: threeItems(), Total: 100}, nil
	}}
	lv := New[item](res, WithPageSize[item](10))
	ctx := context.Background()
	if err := lv.Load(ctx); err != nil {
		t.Fatalf("load: %v", err)
	}
	if err := lv.SetPage(ctx, 5); err != nil {
		t.Fatalf("set page: %v", err)
	}
	if got := res.lastQuery().Page; got != 5 {
		t.Fatalf("page = %d", got)
	}

	if err := lv.SetFilter(ctx, "status", "PENDING"); err != nil {
		t.Fatalf("set filter: %v", err)
	}
	if q := res.lastQuery(); q.Page != 1 || q.Filters["status"] != "PENDING" {
		t.Fatalf("filter change did not reset page: %+v", q)
	}

	if err := lv.SetPage(ctx, 5); err != nil {
		t.Fatalf("set page: %v", err)
	}
	if err := lv.SetOrdering(ctx, "createdAt"); err != nil {
		t.Fatalf("set ordering: %v", err)
	}
	if q := res.lastQuery(); q.Page != 1 {
		t.Fatalf("ordering change did not reset page: %+v", q)
	}

	if err := lv.SetPage(ctx, 2); err != nil {
		t.Fatalf("set page: %v", err)
	}
	if err := lv.SetPageSize(ctx, 25); err != nil {
		t.Fatalf("set page size: %v", err)
	}
	if q := res.lastQuery(); q.Page != 1 || q.PageSize != 25 {
		t.Fatalf("page size change did not reset page: %+v", q)
	}
}

func TestSetPageOutOfRange(t *testing.T) {
	res := &fakeResource{fetch: func(q Query) (Page[item], error) {
		return Page[item]{Rows: threeItems(), Total: 30}, nil
	}}
	lv := New[item](res, WithPageSize[item](10))
	ctx := context.Background()
	if err := lv.Load(ctx); err != nil {
		t.Fatalf("load: %v", err)
	}
	before := res.fetchCount()
	for _, n := range []int{0, -1, 4, 99} {
		if err := lv.SetPage(ctx, n); err != nil {
			t.Fatalf("SetPage(%d): %v", n, err)
		}
	}
	if res.fetchCount() != before {
		t.Fatal("out-of-range SetPage issued a fetch")
	}
	if q := lv.Query(); q.Page != 1 {
		t.Fatalf("page changed to %d", q.Page)
	}
}

func TestOrderingKeyMapping(t *testing.T) {
	res := &fakeResource{}
	lv := New[item](res, WithOrderingFields[item](map[string]string{"vendor": "store__name"}))
	ctx := context.Background()

	if err := lv.SetOrdering(ctx, "createdAt"); err != nil {
		t.Fatalf("set ordering: %v", err)
	}
	if got := res.lastQuery().Ordering; got != "created_at" {
		t.Fatalf("ordering = %q", got)
	}

	if err := lv.SetOrdering(ctx, "-vendor"); err != nil {
		t.Fatalf("set ordering: %v", err)
	}
	if got := res.lastQuery().Ordering; got != "-store__name" {
		t.Fatalf("ordering = %q", got)
	}
}

func TestSearchIsLocalAndIdempotent(t *testing.T) {
	res := &fakeResource{fetch: func(q Query) (Page[item], error) {
		return Page[item]{Rows: threeItems(), Total: 57}, nil
	}}
	lv := New[item](res)
	if err := lv.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}
	before := res.fetchCount()

	lv.Search("aP")
	got := lv.Rows()
	if len(got) != 1 || got[0].Name != "Apples" {
		t.Fatalf("search rows = %+v", got)
	}
	if lv.TotalCount() != 57 {
		t.Fatalf("search changed total to %d", lv.TotalCount())
	}

	lv.Search("")
	if diff := cmp.Diff(threeItems(), lv.Rows()); diff != "" {
		t.Fatalf("clearing search did not restore rows (-want +got)\n%s", diff)
	}
	if res.fetchCount() != before {
		t.Fatal("search issued a network call")
	}
}

func TestErrorRetainsPreviousRows(t *testing.T) {
	fail := false
	res := &fakeResource{}
	res.fetch = func(q Query) (Page[item], error) {
		if fail {
			return Page[item]{}, errors.New("boom")
		}
		return Page[item]{Rows: threeItems(), Total: 3}, nil
	}
	lv := New[item](res)
	ctx := context.Background()
	if err := lv.Load(ctx); err != nil {
		t.Fatalf("load: %v", err)
	}
	fail = true
	if err := lv.SetFilter(ctx, "status", "PENDING"); err == nil {
		t.Fatal("expected fetch error")
	}
	if lv.State() != StateErrored || lv.Err() == nil {
		t.Fatalf("state = %v err = %v", lv.State(), lv.Err())
	}
	if diff := cmp.Diff(threeItems(), lv.Rows()); diff != "" {
		t.Fatalf("error cleared stale rows (-want +got)\n%s", diff)
	}
	if lv.TotalCount() != 3 {
		t.Fatalf("error cleared total: %d", lv.TotalCount())
	}
}

func TestConfirmEditAuthoritativeMerge(t *testing.T) {
	res := &fakeResource{fetch: func(q Query) (Page[item], error) {
		return Page[item]{Rows: threeItems(), Total: 3}, nil
	}}
	res.update = func(id string, patch map[string]any) (*item, error) {
		return &item{ID: 2, Name: "Bananas", Status: patch["status"].(string)}, nil
	}
	lv := New[item](res)
	ctx := context.Background()
	if err := lv.Load(ctx); err != nil {
		t.Fatalf("load: %v", err)
	}
	if err := lv.RequestEdit(threeItems()[1]); err != nil {
		t.Fatalf("request edit: %v", err)
	}
	if err := lv.ConfirmEdit(ctx, map[string]any{"status": "DELIVERED"}); err != nil {
		t.Fatalf("confirm edit: %v", err)
	}
	want := threeItems()
	want[1].Status = "DELIVERED"
	if diff := cmp.Diff(want, lv.Rows()); diff != "" {
		t.Fatalf("rows diff (-want +got)\n%s", diff)
	}
	if res.fetchCount() != 1 {
		t.Fatalf("authoritative edit refetched: %d fetches", res.fetchCount())
	}
	if _, _, ok := lv.Pending(); ok {
		t.Fatal("pending survived confirm")
	}
}

func TestConfirmEditRefetchWhenNotAuthoritative(t *testing.T) {
	res := &fakeResource{fetch: func(q Query) (Page[item], error) {
		return Page[item]{Rows: threeItems(), Total: 3}, nil
	}}
	res.update = func(id string, patch map[string]any) (*item, error) { return nil, nil }
	lv := New[item](res)
	ctx := context.Background()
	if err := lv.Load(ctx); err != nil {
		t.Fatalf("load: %v", err)
	}
	if err := lv.RequestEdit(threeItems()[0]); err != nil {
		t.Fatalf("request edit: %v", err)
	}
	if err := lv.ConfirmEdit(ctx, map[string]any{"name": "Pears"}); err != nil {
		t.Fatalf("confirm edit: %v", err)
	}
	if res.fetchCount() != 2 {
		t.Fatalf("non-authoritative edit did not refetch: %d fetches", res.fetchCount())
	}
}

func TestConfirmEditFailureKeepsRowsAndPending(t *testing.T) {
	res := &fakeResource{fetch: func(q Query) (Page[item], error) {
		return Page[item]{Rows: threeItems(), Total: 3}, nil
	}}
	res.update = func(id string, patch map[string]any) (*item, error) {
		return nil, errors.New("save failed")
	}
	lv := New[item](res)
	ctx := context.Background()
	if err := lv.Load(ctx); err != nil {
		t.Fatalf("load: %v", err)
	}
	if err := lv.RequestEdit(threeItems()[0]); err != nil {
		t.Fatalf("request edit: %v", err)
	}
	if err := lv.ConfirmEdit(ctx, map[string]any{"name": "Pears"}); err == nil {
		t.Fatal("expected update error")
	}
	if diff := cmp.Diff(threeItems(), lv.Rows()); diff != "" {
		t.Fatalf("failed edit mutated rows (-want +got)\n%s", diff)
	}
	if _, _, ok := lv.Pending(); !ok {
		t.Fatal("failed edit discarded pending mutation")
	}
	// Retry succeeds once the backend recovers.
	res.update = func(id string, patch map[string]any) (*item, error) {
		return &item{ID: 1, Name: "Pears", Status: "PENDING"}, nil
	}
	if err := lv.ConfirmEdit(ctx, map[string]any{"name": "Pears"}); err != nil {
		t.Fatalf("retry: %v", err)
	}
	if lv.Rows()[0].Name != "Pears" {
		t.Fatalf("retry did not apply: %+v", lv.Rows()[0])
	}
}

func TestDeleteFlow(t *testing.T) {
	res := &fakeResource{fetch: func(q Query) (Page[item], error) {
		return Page[item]{Rows: threeItems(), Total: 3}, nil
	}}
	var deleted []string
	res.del = func(id string) error {
		deleted = append(deleted, id)
		return nil
	}
	lv := New[item](res)
	ctx := context.Background()
	if err := lv.Load(ctx); err != nil {
		t.Fatalf("load: %v", err)
	}

	// Cancel leaves everything untouched.
	if err := lv.RequestDelete(threeItems()[2]); err != nil {
		t.Fatalf("request delete: %v", err)
	}
	lv.Cancel()
	if diff := cmp.Diff(threeItems(), lv.Rows()); diff != "" {
		t.Fatalf("cancel mutated rows (-want +got)\n%s", diff)
	}
	if lv.TotalCount() != 3 {
		t.Fatalf("cancel mutated total: %d", lv.TotalCount())
	}
	if len(deleted) != 0 {
		t.Fatalf("cancel called the API: %v", deleted)
	}

	if err := lv.RequestDelete(threeItems()[1]); err != nil {
		t.Fatalf("request delete: %v", err)
	}
	if err := lv.ConfirmDelete(ctx); err != nil {
		t.Fatalf("confirm delete: %v", err)
	}
	if diff := cmp.Diff([]string{"2"}, deleted); diff != "" {
		t.Fatalf("deleted ids (-want +got)\n%s", diff)
	}
	want := []item{threeItems()[0], threeItems()[2]}
	if diff := cmp.Diff(want, lv.Rows()); diff != "" {
		t.Fatalf("rows diff (-want +got)\n%s", diff)
	}
	if lv.TotalCount() != 2 {
		t.Fatalf("total = %d", lv.TotalCount())
	}
}

func TestOneMutationAtATime(t *testing.T) {
	lv := New[item](&fakeResource{})
	if err := lv.RequestEdit(item{ID: 1}); err != nil {
		t.Fatalf("request edit: %v", err)
	}
	if err := lv.RequestDelete(item{ID: 2}); !errors.Is(err, ErrMutationPending) {
		t.Fatalf("err = %v", err)
	}
	if err := lv.ConfirmDelete(context.Background()); !errors.Is(err, ErrNoMutation) {
		t.Fatalf("confirm delete with staged edit: %v", err)
	}
	lv.Cancel()
	if err := lv.ConfirmEdit(context.Background(), nil); !errors.Is(err, ErrNoMutation) {
		t.Fatalf("confirm after cancel: %v", err)
	}
}

func TestDeleteAll(t *testing.T) {
	res := &fakeResource{fetch: func(q Query) (Page[item], error) {
		return Page[item]{Rows: threeItems(), Total: 3}, nil
	}}
	cleared := false
	res.delAll = func() error {
		cleared = true
		return nil
	}
	lv := New[item](res)
	ctx := context.Background()
	if err := lv.Load(ctx); err != nil {
		t.Fatalf("load: %v", err)
	}
	if err := lv.DeleteAll(ctx); err != nil {
		t.Fatalf("delete all: %v", err)
	}
	if !cleared {
		t.Fatal("bulk delete not issued")
	}
	if len(lv.Rows()) != 0 || lv.TotalCount() != 0 {
		t.Fatalf("view not cleared: %d rows total %d", len(lv.Rows()), lv.TotalCount())
	}
}

func TestExportAllLeavesPaginationAlone(t *testing.T) {
	res := &fakeResource{fetch: func(q Query) (Page[item], error) {
		return Page[item]{Rows: threeItems(), Total: 3}, nil
	}}
	lv := New[item](res, WithPageSize[item](2), WithExportPageSize[item](5000))
	ctx := context.Background()
	if err := lv.Load(ctx); err != nil {
		t.Fatalf("load: %v", err)
	}
	if _, err := lv.ExportAll(ctx); err != nil {
		t.Fatalf("export: %v", err)
	}
	if q := res.lastQuery(); q.Page != 1 || q.PageSize != 5000 {
		t.Fatalf("export query = %+v", q)
	}
	if q := lv.Query(); q.PageSize != 2 || q.Page != 1 {
		t.Fatalf("export mutated pagination: %+v", q)
	}
	if diff := cmp.Diff(threeItems(), lv.Rows()); diff != "" {
		t.Fatalf("export mutated rows (-want +got)\n%s", diff)
	}
}
