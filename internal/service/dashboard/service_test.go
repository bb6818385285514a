package dashboard

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
)

func TestStats(t *testing.T) {
	backend := mockapi.NewServer()
	backend.SeedUsers(
		model.User{FirstName: "A", LastName: "A", Email: "a@x.com", Username: "a", Role: model.RolePatient, Status: model.StatusActive},
		model.User{FirstName: "B", LastName: "B", Email: "b@x.com", Username: "b", Role: model.RolePatient, Status: model.StatusPending},
		model.User{FirstName: "C", LastName: "C", Email: "c@x.com", Username: "c", Role: model.RoleAdmin, Status: model.StatusActive},
	)
	backend.SeedDoctors(
		model.Doctor{UserID: 9, FirstName: "D", LastName: "D", Email: "d@x.com", Specialization: model.SpecSurgeon, LicenseNumber: "L1", Status: model.StatusActive},
	)

	srv := httptest.NewServer(backend.Handler())
	defer srv.Close()

	client, err := transport.New(transport.Config{BaseURL: srv.URL + "/api/super-admin"}, "1", zerolog.Nop())
	require.NoError(t, err)

	stats, err := NewService(client).Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, &model.DashboardStats{
		TotalUsers:    3,
		TotalDoctors:  1,
		TotalPatients: 2,
		ActiveUsers:   2,
		ActiveDoctors: 1,
		PendingUsers:  1,
	}, stats)
}
