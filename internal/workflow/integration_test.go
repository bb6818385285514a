package workflow

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mhdirfanpn/panadol-platform-client/internal/controller"
	"github.com/mhdirfanpn/panadol-platform-client/internal/mockapi"
	"github.com/mhdirfanpn/panadol-platform-client/internal/model"
	"github.com/mhdirfanpn/panadol-platform-client/internal/service/user"
	"github.com/mhdirfanpn/panadol-platform-client/internal/transport"
)

func newUserStack(t *testing.T) (*mockapi.Server, *controller.Controller[model.User], *user.Service) {
	t.Helper()
	backend := mockapi.NewServer()
	srv := httptest.NewServer(backend.Handler())
	t.Cleanup(srv.Close)

	client, err := transport.New(transport.Config{BaseURL: srv.URL + "/api/super-admin"}, "1", zerolog.Nop())
	require.NoError(t, err)
	svc := user.NewService(client)
	return backend, controller.NewUsers(svc), svc
}

func TestCreateUserWorkflowAgainstBackend(t *testing.T) {
	_, ctrl, svc := newUserStack(t)
	ctx := context.Background()
	require.NoError(t, ctrl.Refresh(ctx))

	wf := NewCreateUser(ctrl, svc)
	require.True(t, wf.Open())
	wf.SetForm(validCreateForm())
	require.NoError(t, wf.Submit(ctx))

	// the collection was refetched, not patched locally
	users := ctrl.Filtered()
	require.Len(t, users, 1)
	assert.Equal(t, "jane@example.com", users[0].Email)
	assert.Equal(t, PhaseClosed, wf.Phase())
}

func TestUpdateStatusWorkflowReflectsInFilteredView(t *testing.T) {
	backend, ctrl, svc := newUserStack(t)
	backend.SeedUsers(model.User{
		ID: 1, FirstName: "Jane", LastName: "Doe", Email: "jane@example.com",
		Username: "jane", Role: model.RoleAdmin, Status: model.StatusActive,
	})
	ctx := context.Background()
	require.NoError(t, ctrl.Refresh(ctx))

	sel := ctrl.Filtered()[0]
	ctrl.Select(sel)

	wf := NewUpdateUserStatus(ctrl, svc)
	require.True(t, wf.Open())
	form := wf.Form()
	assert.Equal(t, model.StatusActive, form.Status)
	form.Status = model.StatusSuspended
	wf.SetForm(form)
	require.NoError(t, wf.Submit(ctx))

	users := ctrl.Filtered()
	require.Len(t, users, 1)
	assert.Equal(t, model.StatusSuspended, users[0].Status)
	_, selected := ctrl.Selected()
	assert.False(t, selected, "success releases the selection")
}

func TestDeleteUserWorkflowAgainstBackend(t *testing.T) {
	backend, ctrl, svc := newUserStack(t)
	backend.SeedUsers(model.User{
		ID: 1, FirstName: "Jane", LastName: "Doe", Email: "jane@example.com",
		Username: "jane", Role: model.RoleAdmin, Status: model.StatusActive,
	})
	ctx := context.Background()
	require.NoError(t, ctrl.Refresh(ctx))

	sel := ctrl.Filtered()[0]
	ctrl.Select(sel)

	wf := NewDeleteUser(ctrl, svc)
	require.True(t, wf.Open())
	assert.Equal(t, "Jane Doe", wf.Form().Name)
	require.NoError(t, wf.Submit(ctx))

	assert.Empty(t, ctrl.Filtered(), "refetch confirms the removal")
	state, _ := ctrl.State()
	assert.Equal(t, controller.StateReady, state)
}
