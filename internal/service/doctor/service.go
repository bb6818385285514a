package doctor

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/mhdirfanpn/panadol-platform-client/internal/model"
	"github.com/mhdirfanpn/panadol-platform-client/internal/transport"
)

// Service maps doctor operations onto the super-admin REST endpoints.
type Service struct {
	client *transport.Client
}

func NewService(client *transport.Client) *Service {
	return &Service{client: client}
}

// List fetches every onboarded doctor.
func (s *Service) List(ctx context.Context) ([]model.Doctor, error) {
	var doctors []model.Doctor
	if err := s.client.Do(ctx, http.MethodGet, "/doctors", nil, nil, &doctors); err != nil {
		return nil, err
	}
	return doctors, nil
}

// ListBySpecialization fetches doctors filtered server-side.
func (s *Service) ListBySpecialization(ctx context.Context, spec model.Specialization) ([]model.Doctor, error) {
	if !spec.Valid() {
		return nil, fmt.Errorf("invalid specialization %q", spec)
	}
	var doctors []model.Doctor
	path := fmt.Sprintf("/doctors/specialization/%s", spec)
	if err := s.client.Do(ctx, http.MethodGet, path, nil, nil, &doctors); err != nil {
		return nil, err
	}
	return doctors, nil
}

// Get fetches a single doctor by id.
func (s *Service) Get(ctx context.Context, id int64) (*model.Doctor, error) {
	var doc model.Doctor
	path := fmt.Sprintf("/doctors/%d", id)
	if err := s.client.Do(ctx, http.MethodGet, path, nil, nil, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// Onboard creates a doctor together with its backing user account.
func (s *Service) Onboard(ctx context.Context, req model.OnboardDoctorRequest) (*model.Doctor, error) {
	var doc model.Doctor
	if err := s.client.Do(ctx, http.MethodPost, "/doctors/onboard", nil, req, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// UpdateStatus changes a doctor's status via query parameter, empty body.
func (s *Service) UpdateStatus(ctx context.Context, id int64, status model.Status) (*model.Doctor, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("invalid status %q", status)
	}
	var doc model.Doctor
	path := fmt.Sprintf("/doctors/%d/status", id)
	query := url.Values{"status": []string{string(status)}}
	if err := s.client.Do(ctx, http.MethodPatch, path, query, nil, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// Delete removes a doctor.
func (s *Service) Delete(ctx context.Context, id int64) error {
	path := fmt.Sprintf("/doctors/%d", id)
	return s.client.Do(ctx, http.MethodDelete, path, nil, nil, nil)
}
