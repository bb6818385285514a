package controller

import (
	"context"
	"strings"
	"sync"

	"github.com/mhdirfanpn/panadol-platform-client/pkg/apierror"
)

// State is the page-level tri-state. Exactly one value holds at a time;
// StateReady implies the collection is defined, possibly empty.
type State int

const (
	StateLoading State = iota
	StateError
	StateReady
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateError:
		return "error"
	default:
		return "ready"
	}
}

// CategoryAll disables the category predicate.
const CategoryAll = "ALL"

// Fields tells a controller how to filter a resource: Category yields the
// value compared against the category filter, Search yields the strings
// scanned for the case-insensitive search term.
type Fields[R any] struct {
	Category func(R) string
	Search   []func(R) string
}

// Controller owns the authoritative collection for one resource type, the
// derived filtered view, the loading/error/ready tri-state and the single
// selection slot used by modal workflows. One instance serves one page
// visit; state is guarded by a mutex so a late-resolving refresh cannot
// race console input.
type Controller[R any] struct {
	mu       sync.Mutex
	list     func(context.Context) ([]R, error)
	fields   Fields[R]
	fallback string

	state      State
	errMsg     string
	collection []R
	filtered   []R
	search     string
	category   string
	selected   *R

	// gen orders overlapping refreshes: a result is discarded when a newer
	// refresh started (or the controller closed) while it was in flight.
	gen    uint64
	closed bool
}

// New builds a controller in the loading state. fallback is the page-level
// error shown when the server sends no message.
func New[R any](list func(context.Context) ([]R, error), fields Fields[R], fallback string) *Controller[R] {
	return &Controller[R]{
		list:     list,
		fields:   fields,
		fallback: fallback,
		state:    StateLoading,
		category: CategoryAll,
	}
}

// Refresh replaces the collection with an authoritative fetch. On failure
// the previous collection is discarded and the controller enters the error
// state carrying the server's message or the fallback. The error is also
// returned for callers that want it; stale results return nil and change
// nothing.
func (c *Controller[R]) Refresh(ctx context.Context) error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return nil
	}
	c.gen++
	gen := c.gen
	c.state = StateLoading
	c.errMsg = ""
	c.mu.Unlock()

	items, err := c.list(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed || gen != c.gen {
		return nil
	}
	if err != nil {
		c.state = StateError
		c.errMsg = apierror.UserMessage(err, c.fallback)
		c.collection = nil
		c.filtered = nil
		return err
	}
	c.collection = items
	c.recompute()
	c.state = StateReady
	return nil
}

// Mutate runs one service mutation and, on success, refetches the
// collection before returning; the collection is never patched locally.
// A mutation error is propagated untouched and leaves the collection as it
// was. A refetch error after a successful mutation is reported through the
// controller's error state, not the return value, since the mutation itself
// took effect.
func (c *Controller[R]) Mutate(ctx context.Context, op func(context.Context) error) error {
	if err := op(ctx); err != nil {
		return err
	}
	_ = c.Refresh(ctx)
	return nil
}

// SetSearchTerm updates the search term and synchronously recomputes the
// filtered view.
func (c *Controller[R]) SetSearchTerm(term string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.search = term
	c.recompute()
}

// SetCategoryFilter updates the category filter and synchronously
// recomputes the filtered view.
func (c *Controller[R]) SetCategoryFilter(value string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.category = value
	c.recompute()
}

// recompute derives filtered from collection: category predicate first,
// then the case-insensitive substring search. Collection order is kept.
// Callers hold the lock.
func (c *Controller[R]) recompute() {
	if c.collection == nil {
		c.filtered = nil
		return
	}
	filtered := c.collection
	if c.category != CategoryAll && c.fields.Category != nil {
		kept := make([]R, 0, len(filtered))
		for _, item := range filtered {
			if c.fields.Category(item) == c.category {
				kept = append(kept, item)
			}
		}
		filtered = kept
	}
	if c.search != "" {
		term := strings.ToLower(c.search)
		kept := make([]R, 0, len(filtered))
		for _, item := range filtered {
			for _, field := range c.fields.Search {
				if strings.Contains(strings.ToLower(field(item)), term) {
					kept = append(kept, item)
					break
				}
			}
		}
		filtered = kept
	}
	c.filtered = filtered
}

// Select puts the entity into the single selection slot, replacing any
// previous selection.
func (c *Controller[R]) Select(entity R) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.selected = &entity
}

// Deselect clears the selection slot. Idempotent.
func (c *Controller[R]) Deselect() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.selected = nil
}

// Selected returns the selected entity, if any.
func (c *Controller[R]) Selected() (R, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.selected == nil {
		var zero R
		return zero, false
	}
	return *c.selected, true
}

// State returns the tri-state and, in the error state, the message to show.
func (c *Controller[R]) State() (State, string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state, c.errMsg
}

// Collection returns a copy of the raw collection.
func (c *Controller[R]) Collection() []R {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]R(nil), c.collection...)
}

// Filtered returns a copy of the derived filtered view.
func (c *Controller[R]) Filtered() []R {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]R(nil), c.filtered...)
}

// Counts returns raw and filtered sizes for the list header.
func (c *Controller[R]) Counts() (total, filtered int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.collection), len(c.filtered)
}

// SearchTerm returns the current search term.
func (c *Controller[R]) SearchTerm() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.search
}

// CategoryFilter returns the current category filter.
func (c *Controller[R]) CategoryFilter() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.category
}

// Close disposes the controller: in-flight refresh results are discarded
// instead of being written to torn-down state.
func (c *Controller[R]) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	c.gen++
	c.selected = nil
}
