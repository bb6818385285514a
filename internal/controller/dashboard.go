package controller

import (
	"context"
	"sync"

	"github.com/mhdirfanpn/panadol-platform-client/internal/model"
)

const dashboardErrMsg = "Failed to load dashboard statistics. Please try again."

// Dashboard holds the aggregate-counts snapshot behind the same tri-state
// shape as a resource controller, with no collection, filters or mutations.
type Dashboard struct {
	mu    sync.Mutex
	fetch func(context.Context) (*model.DashboardStats, error)

	state  State
	errMsg string
	stats  *model.DashboardStats

	gen    uint64
	closed bool
}

// NewDashboard builds an aggregator in the loading state.
func NewDashboard(fetch func(context.Context) (*model.DashboardStats, error)) *Dashboard {
	return &Dashboard{fetch: fetch, state: StateLoading}
}

// Load fetches a fresh snapshot. Retrying after a failure is just calling
// Load again.
func (d *Dashboard) Load(ctx context.Context) error {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return nil
	}
	d.gen++
	gen := d.gen
	d.state = StateLoading
	d.errMsg = ""
	d.mu.Unlock()

	stats, err := d.fetch(ctx)

	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed || gen != d.gen {
		return nil
	}
	if err != nil {
		d.state = StateError
		d.errMsg = dashboardErrMsg
		d.stats = nil
		return err
	}
	d.stats = stats
	d.state = StateReady
	return nil
}

// State returns the tri-state and, in the error state, the message to show.
func (d *Dashboard) State() (State, string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.state, d.errMsg
}

// Stats returns the loaded snapshot, nil unless ready.
func (d *Dashboard) Stats() *model.DashboardStats {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.stats
}

// Close discards any in-flight fetch result.
func (d *Dashboard) Close() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.closed = true
	d.gen++
}
