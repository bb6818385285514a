package doctor

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

func onboardRequest() model.OnboardDoctorRequest {
	return model.OnboardDoctorRequest{
		FirstName:       "Greg",
		LastName:        "House",
		Email:           "house@example.com",
		Username:        "ghouse",
		Password:        "vicodin",
		PhoneNumber:     "+15550100",
		Specialization:  model.SpecCardiologist,
		LicenseNumber:   "LIC123",
		ExperienceYears: 15,
		Qualifications:  "MBBS, MD",
		ConsultationFee: 250,
	}
}

func TestDoctorLifecycle(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	created, err := svc.Onboard(ctx, onboardRequest())
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.NotZero(t, created.UserID, "onboarding creates the backing user")
	assert.Equal(t, model.SpecCardiologist, created.Specialization)

	bySpec, err := svc.ListBySpecialization(ctx, model.SpecCardiologist)
	require.NoError(t, err)
	require.Len(t, bySpec, 1)

	none, err := svc.ListBySpecialization(ctx, model.SpecDentist)
	require.NoError(t, err)
	assert.Empty(t, none)

	updated, err := svc.UpdateStatus(ctx, created.ID, model.StatusActive)
	require.NoError(t, err)
	assert.Equal(t, model.StatusActive, updated.Status)

	require.NoError(t, svc.Delete(ctx, created.ID))
	doctors, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, doctors)
}

func TestOnboardDuplicateLicenseConflicts(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Onboard(ctx, onboardRequest())
	require.NoError(t, err)

	dup := onboardRequest()
	dup.Email = "other@example.com"
	dup.Username = "other"
	_, err = svc.Onboard(ctx, dup)
	require.Error(t, err)
	assert.Equal(t, "License number already exists", apierror.UserMessage(err, "fallback"))
}

func TestGetUnknownDoctorSurfacesServerMessage(t *testing.T) {
	svc, _ := newTestService(t)
	_, err := svc.Get(context.Background(), 7)
	require.Error(t, err)
	assert.True(t, apierror.IsNotFound(err))
	assert.Equal(t, "Doctor not found with id: 7", apierror.UserMessage(err, "fallback"))
}
