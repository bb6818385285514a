package controller

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mhdirfanpn/panadol-platform-client/internal/model"
)

func TestDashboardLoadAndRetry(t *testing.T) {
	var fail bool
	fetch := func(ctx context.Context) (*model.DashboardStats, error) {
		if fail {
			return nil, errors.New("down")
		}
		return &model.DashboardStats{TotalUsers: 5, ActiveUsers: 3}, nil
	}
	agg := NewDashboard(fetch)

	state, _ := agg.State()
	assert.Equal(t, StateLoading, state)

	fail = true
	require.Error(t, agg.Load(context.Background()))
	state, msg := agg.State()
	assert.Equal(t, StateError, state)
	assert.Equal(t, "Failed to load dashboard statistics. Please try again.", msg)
	assert.Nil(t, agg.Stats())

	// manual retry repeats the fetch
	fail = false
	require.NoError(t, agg.Load(context.Background()))
	state, msg = agg.State()
	assert.Equal(t, StateReady, state)
	assert.Empty(t, msg)
	require.NotNil(t, agg.Stats())
	assert.Equal(t, 5, agg.Stats().TotalUsers)
}

func TestDashboardCloseDiscardsResult(t *testing.T) {
	release := make(chan struct{})
	started := make(chan struct{})
	fetch := func(ctx context.Context) (*model.DashboardStats, error) {
		close(started)
		<-release
		return &model.DashboardStats{TotalUsers: 1}, nil
	}
	agg := NewDashboard(fetch)

	done := make(chan struct{})
	go func() {
		_ = agg.Load(context.Background())
		close(done)
	}()
	<-started
	agg.Close()
	close(release)
	<-done

	assert.Nil(t, agg.Stats())
}
