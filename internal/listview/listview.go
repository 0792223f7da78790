// Package listview implements the paginated list contract shared by every
// back-office screen: server pagination with filters and ordering, a staged
// edit/delete mutation flow, a local search narrowing and CSV export.
package listview

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/iancoleman/strcase"
)

// Row is the minimal shape the view model needs from an entity record.
// RowID returns the opaque server-assigned identity; SearchText returns the
// text the local search narrows on.
type Row interface {
	RowID() string
	SearchText() string
}

// Query is one page request: 1-indexed page, page size, a display-level
// ordering key and named scalar filters.
type Query struct {
	Page     int
	PageSize int
	Ordering string
	Filters  map[string]string
}

// Page is one resolved page of rows plus the server's total count of the
// filtered result set.
type Page[T Row] struct {
	Rows  []T
	Total int
}

// Resource is the backend adapter a ListView drives. Update returns the
// echoed record when the endpoint is authoritative; a nil record means the
// caller must refetch.
type Resource[T Row] interface {
	FetchPage(ctx context.Context, q Query) (Page[T], error)
	Update(ctx context.Context, id string, patch map[string]any) (*T, error)
	Delete(ctx context.Context, id string) error
}

// BulkDeleter is implemented by resources that support wiping the whole
// collection ("clear all orders").
type BulkDeleter interface {
	DeleteAll(ctx context.Context) error
}

// State is the lifecycle of one list instance.
type State int

const (
	StateIdle State = iota
	StateLoading
	StateReady
	StateErrored
)

// MutationKind tags a staged mutation.
type MutationKind int

const (
	MutationEdit MutationKind = iota
	MutationDelete
)

var (
	// ErrMutationPending is returned when a second mutation is requested
	// while one is already staged. One dialog at a time.
	ErrMutationPending = errors.New("a mutation is already pending")
	// ErrNoMutation is returned when Confirm* is called with nothing staged.
	ErrNoMutation = errors.New("no mutation pending")
	// ErrMutationInFlight guards against duplicate submits while a confirm
	// call is on the wire.
	ErrMutationInFlight = errors.New("mutation already in flight")
	// ErrExportNotConfigured is returned by ExportCSV when no column layout
	// was provided.
	ErrExportNotConfigured = errors.New("export columns not configured")
	// ErrBulkDeleteUnsupported is returned by DeleteAll for resources that
	// do not implement BulkDeleter.
	ErrBulkDeleteUnsupported = errors.New("resource does not support bulk delete")
)

type mutation[T Row] struct {
	kind     MutationKind
	row      T
	inflight bool
}

// ListView manages one paginated resource list. All methods are safe for
// concurrent use; a stale fetch can never overwrite state produced by a
// newer one.
type ListView[T Row] struct {
	res Resource[T]

	mu      sync.Mutex
	query   Query
	state   State
	rows    []T
	total   int
	lastErr error
	seq     uint64
	search  string
	pending *mutation[T]

	orderingFields map[string]string
	exportPageSize int
	csvHeader      []string
	csvRecord      func(T) []string
}

// Option configures a ListView.
type Option[T Row] func(*ListView[T])

// WithPageSize sets the initial page size. Values below 1 are ignored.
func WithPageSize[T Row](n int) Option[T] {
	return func(l *ListView[T]) {
		if n > 0 {
			l.query.PageSize = n
		}
	}
}

// WithPage sets the initial page. Values below 1 are ignored.
func WithPage[T Row](n int) Option[T] {
	return func(l *ListView[T]) {
		if n > 0 {
			l.query.Page = n
		}
	}
}

// WithOrdering sets the initial ordering key.
func WithOrdering[T Row](key string) Option[T] {
	return func(l *ListView[T]) { l.query.Ordering = key }
}

// WithFilters seeds the initial server-side filters.
func WithFilters[T Row](filters map[string]string) Option[T] {
	return func(l *ListView[T]) {
		for k, v := range filters {
			if v != "" {
				l.query.Filters[k] = v
			}
		}
	}
}

// WithOrderingFields overrides the default display-key to backend sort field
// mapping. Keys absent from the map fall back to snake casing.
func WithOrderingFields[T Row](m map[string]string) Option[T] {
	return func(l *ListView[T]) { l.orderingFields = m }
}

// WithCSV declares the export column layout: a fixed header and one record
// per row in header order.
func WithCSV[T Row](header []string, record func(T) []string) Option[T] {
	return func(l *ListView[T]) {
		l.csvHeader = header
		l.csvRecord = record
	}
}

// WithExportPageSize overrides the effectively-unbounded page size used by
// exports.
func WithExportPageSize[T Row](n int) Option[T] {
	return func(l *ListView[T]) {
		if n > 0 {
			l.exportPageSize = n
		}
	}
}

const defaultExportPageSize = 100000

// New returns an idle ListView over res with page 1 and a page size of 10.
func New[T Row](res Resource[T], opts ...Option[T]) *ListView[T] {
	l := &ListView[T]{
		res:            res,
		query:          Query{Page: 1, PageSize: 10, Filters: map[string]string{}},
		exportPageSize: defaultExportPageSize,
	}
	for _, o := range opts {
		o(l)
	}
	return l
}

// Load performs the initial fetch. Subsequent calls behave like Reload.
func (l *ListView[T]) Load(ctx context.Context) error { return l.fetch(ctx) }

// Reload refetches the current page with the current parameters.
func (l *ListView[T]) Reload(ctx context.Context) error { return l.fetch(ctx) }

// fetch issues one page request. The sequence number taken under the lock
// guarantees a slow, superseded response is discarded rather than applied.
func (l *ListView[T]) fetch(ctx context.Context) error {
	l.mu.Lock()
	l.state = StateLoading
	l.seq++
	seq := l.seq
	q := l.snapshotQueryLocked()
	l.mu.Unlock()

	page, err := l.res.FetchPage(ctx, q)

	l.mu.Lock()
	defer l.mu.Unlock()
	if seq != l.seq {
		// A newer request owns the view now.
		return nil
	}
	if err != nil {
		l.state = StateErrored
		l.lastErr = err
		return err
	}
	l.rows = page.Rows
	l.total = page.Total
	l.lastErr = nil
	l.state = StateReady
	return nil
}

func (l *ListView[T]) snapshotQueryLocked() Query {
	q := Query{
		Page:     l.query.Page,
		PageSize: l.query.PageSize,
		Ordering: l.backendOrderingLocked(),
		Filters:  make(map[string]string, len(l.query.Filters)),
	}
	for k, v := range l.query.Filters {
		q.Filters[k] = v
	}
	return q
}

func (l *ListView[T]) backendOrderingLocked() string {
	key := l.query.Ordering
	if key == "" {
		return ""
	}
	desc := strings.HasPrefix(key, "-")
	key = strings.TrimPrefix(key, "-")
	field, ok := l.orderingFields[key]
	if !ok {
		field = strcase.ToSnake(key)
	}
	if desc {
		return "-" + field
	}
	return field
}

// SetPage moves to page n and refetches. Out-of-range values are a silent
// no-op; page controls are expected to only offer valid pages.
func (l *ListView[T]) SetPage(ctx context.Context, n int) error {
	l.mu.Lock()
	if n < 1 || n > l.maxPageLocked() || n == l.query.Page {
		l.mu.Unlock()
		return nil
	}
	l.query.Page = n
	l.mu.Unlock()
	return l.fetch(ctx)
}

func (l *ListView[T]) maxPageLocked() int {
	if l.total <= 0 {
		return 1
	}
	pages := (l.total + l.query.PageSize - 1) / l.query.PageSize
	if pages < 1 {
		pages = 1
	}
	return pages
}

// SetPageSize changes the page size, resets to page 1 and refetches.
func (l *ListView[T]) SetPageSize(ctx context.Context, n int) error {
	if n < 1 {
		return errors.New("page size must be positive")
	}
	l.mu.Lock()
	l.query.PageSize = n
	l.query.Page = 1
	l.mu.Unlock()
	return l.fetch(ctx)
}

// SetFilter updates one server-side filter, resets to page 1 and refetches.
// An empty value removes the filter.
func (l *ListView[T]) SetFilter(ctx context.Context, key, value string) error {
	l.mu.Lock()
	if value == "" {
		delete(l.query.Filters, key)
	} else {
		l.query.Filters[key] = value
	}
	l.query.Page = 1
	l.mu.Unlock()
	return l.fetch(ctx)
}

// SetOrdering updates the sort key, resets to page 1 and refetches. Prefix
// the key with "-" for descending order.
func (l *ListView[T]) SetOrdering(ctx context.Context, key string) error {
	l.mu.Lock()
	l.query.Ordering = key
	l.query.Page = 1
	l.mu.Unlock()
	return l.fetch(ctx)
}

// Search sets the local, case-insensitive substring narrowing applied to the
// loaded rows by Rows. It never triggers a network call and never changes
// TotalCount; clearing the term restores the loaded rows exactly. Matches
// outside the loaded page are not found, mirroring the screens this backs.
func (l *ListView[T]) Search(term string) {
	l.mu.Lock()
	l.search = strings.ToLower(strings.TrimSpace(term))
	l.mu.Unlock()
}

// Rows returns the visible rows: the last successfully loaded page, narrowed
// by the current search term.
func (l *ListView[T]) Rows() []T {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]T, 0, len(l.rows))
	for _, r := range l.rows {
		if l.search != "" && !strings.Contains(strings.ToLower(r.SearchText()), l.search) {
			continue
		}
		out = append(out, r)
	}
	return out
}

// TotalCount returns the server-side total for the current filter set.
func (l *ListView[T]) TotalCount() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.total
}

// State returns the current lifecycle state.
func (l *ListView[T]) State() State {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state
}

// Err returns the error from the last failed fetch, or nil.
func (l *ListView[T]) Err() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.lastErr
}

// Query returns a copy of the current page query.
func (l *ListView[T]) Query() Query {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.snapshotQueryLocked()
}

// RequestEdit stages row for editing. No API call is made until ConfirmEdit.
func (l *ListView[T]) RequestEdit(row T) error {
	return l.stage(MutationEdit, row)
}

// RequestDelete stages row for deletion pending confirmation.
func (l *ListView[T]) RequestDelete(row T) error {
	return l.stage(MutationDelete, row)
}

func (l *ListView[T]) stage(kind MutationKind, row T) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.pending != nil {
		return ErrMutationPending
	}
	l.pending = &mutation[T]{kind: kind, row: row}
	return nil
}

// Pending reports the staged mutation, if any.
func (l *ListView[T]) Pending() (MutationKind, T, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.pending == nil {
		var zero T
		return 0, zero, false
	}
	return l.pending.kind, l.pending.row, true
}

// Cancel discards the staged mutation. It is a no-op while the confirm call
// is on the wire.
func (l *ListView[T]) Cancel() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.pending != nil && !l.pending.inflight {
		l.pending = nil
	}
}

// ConfirmEdit submits patch for the staged edit. An authoritative response
// (the endpoint echoes the full record) is merged into the loaded rows in
// place; otherwise the page is refetched. On failure the rows are untouched
// and the edit stays staged so it can be retried.
func (l *ListView[T]) ConfirmEdit(ctx context.Context, patch map[string]any) error {
	id, err := l.beginConfirm(MutationEdit)
	if err != nil {
		return err
	}

	updated, err := l.res.Update(ctx, id, patch)

	l.mu.Lock()
	if err != nil {
		l.pending.inflight = false
		l.mu.Unlock()
		return err
	}
	l.pending = nil
	if updated != nil {
		for i := range l.rows {
			if l.rows[i].RowID() == id {
				l.rows[i] = *updated
				break
			}
		}
		l.mu.Unlock()
		return nil
	}
	l.mu.Unlock()
	return l.fetch(ctx)
}

// ConfirmDelete submits the staged delete. On success exactly the staged row
// is removed locally and the total drops by one; no refetch is needed.
func (l *ListView[T]) ConfirmDelete(ctx context.Context) error {
	id, err := l.beginConfirm(MutationDelete)
	if err != nil {
		return err
	}

	err = l.res.Delete(ctx, id)

	l.mu.Lock()
	defer l.mu.Unlock()
	if err != nil {
		l.pending.inflight = false
		return err
	}
	l.pending = nil
	for i := range l.rows {
		if l.rows[i].RowID() == id {
			l.rows = append(l.rows[:i], l.rows[i+1:]...)
			break
		}
	}
	if l.total > 0 {
		l.total--
	}
	return nil
}

func (l *ListView[T]) beginConfirm(kind MutationKind) (string, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.pending == nil || l.pending.kind != kind {
		return "", ErrNoMutation
	}
	if l.pending.inflight {
		return "", ErrMutationInFlight
	}
	l.pending.inflight = true
	return l.pending.row.RowID(), nil
}

// DeleteAll wipes the whole collection for resources that support it and
// clears the loaded page. Callers are expected to confirm first.
func (l *ListView[T]) DeleteAll(ctx context.Context) error {
	bd, ok := l.res.(BulkDeleter)
	if !ok {
		return ErrBulkDeleteUnsupported
	}
	if err := bd.DeleteAll(ctx); err != nil {
		return err
	}
	l.mu.Lock()
	l.rows = nil
	l.total = 0
	l.mu.Unlock()
	return nil
}

// ExportAll fetches the full filtered set with an effectively unbounded page
// size and returns it. The displayed page, state and pagination are left
// untouched.
func (l *ListView[T]) ExportAll(ctx context.Context) ([]T, error) {
	l.mu.Lock()
	q := l.snapshotQueryLocked()
	q.Page = 1
	q.PageSize = l.exportPageSize
	l.mu.Unlock()

	page, err := l.res.FetchPage(ctx, q)
	if err != nil {
		return nil, err
	}
	return page.Rows, nil
}
