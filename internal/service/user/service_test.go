package user

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mhdirfanpn/panadol-platform-client/internal/mockapi"
	"github.com/mhdirfanpn/panadol-platform-client/internal/model"
	"github.com/mhdirfanpn/panadol-platform-client/internal/transport"
	"github.com/mhdirfanpn/panadol-platform-client/pkg/apierror"
)

func newTestService(t *testing.T) (*Service, *mockapi.Server) {
	t.Helper()
	backend := mockapi.NewServer()
	srv := httptest.NewServer(backend.Handler())
	t.Cleanup(srv.Close)

	client, err := transport.New(transport.Config{BaseURL: srv.URL + "/api/super-admin"}, "1", zerolog.Nop())
	require.NoError(t, err)
	return NewService(client), backend
}

func TestUserLifecycle(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	users, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, users)

	created, err := svc.Create(ctx, model.CreateUserRequest{
		FirstName: "Jane",
		LastName:  "Doe",
		Email:     "jane@example.com",
		Username:  "jane",
		Password:  "s3cret",
		Role:      model.RoleAdmin,
	})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.Equal(t, model.StatusActive, created.Status)
	assert.False(t, created.CreatedAt.IsZero())

	got, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "jane@example.com", got.Email)

	updated, err := svc.UpdateStatus(ctx, created.ID, model.StatusSuspended)
	require.NoError(t, err)
	assert.Equal(t, model.StatusSuspended, updated.Status)

	byRole, err := svc.ListByRole(ctx, model.RoleAdmin)
	require.NoError(t, err)
	require.Len(t, byRole, 1)
	assert.Equal(t, created.ID, byRole[0].ID)

	require.NoError(t, svc.Delete(ctx, created.ID))
	users, err = svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, users)
}

func TestGetUnknownUserSurfacesServerMessage(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Get(context.Background(), 42)
	require.Error(t, err)
	assert.True(t, apierror.IsNotFound(err))
	assert.Equal(t, "User not found with id: 42", apierror.UserMessage(err, "fallback"))
}

func TestCreateDuplicateEmailConflicts(t *testing.T) {
	svc, backend := newTestService(t)
	backend.SeedUsers(model.User{
		FirstName: "Jane", LastName: "Doe", Email: "jane@example.com",
		Username: "jane", Role: model.RoleAdmin, Status: model.StatusActive,
	})

	_, err := svc.Create(context.Background(), model.CreateUserRequest{
		FirstName: "Janet",
		LastName:  "Doe",
		Email:     "jane@example.com",
		Username:  "janet",
		Password:  "s3cret",
		Role:      model.RoleStaff,
	})
	require.Error(t, err)
	assert.Equal(t, "Email already exists", apierror.UserMessage(err, "fallback"))
}

func TestUpdateStatusRejectsInvalidEnum(t *testing.T) {
	svc, _ := newTestService(t)
	_, err := svc.UpdateStatus(context.Background(), 1, model.Status("BANNED"))
	assert.Error(t, err)
}
