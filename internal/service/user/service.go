package user

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/mhdirfanpn/panadol-platform-client/internal/model"
	"github.com/mhdirfanpn/panadol-platform-client/internal/transport"
)

// Service maps user CRUD verbs onto the super-admin REST endpoints. It holds
// no state beyond the transport client.
type Service struct {
	client *transport.Client
}

func NewService(client *transport.Client) *Service {
	return &Service{client: client}
}

// List fetches every user.
func (s *Service) List(ctx context.Context) ([]model.User, error) {
	var users []model.User
	if err := s.client.Do(ctx, http.MethodGet, "/users", nil, nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// ListByRole fetches users filtered server-side by role.
func (s *Service) ListByRole(ctx context.Context, role model.Role) ([]model.User, error) {
	if !role.Valid() {
		return nil, fmt.Errorf("invalid role %q", role)
	}
	var users []model.User
	path := fmt.Sprintf("/users/role/%s", role)
	if err := s.client.Do(ctx, http.MethodGet, path, nil, nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// Get fetches a single user by id.
func (s *Service) Get(ctx context.Context, id int64) (*model.User, error) {
	var user model.User
	path := fmt.Sprintf("/users/%d", id)
	if err := s.client.Do(ctx, http.MethodGet, path, nil, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Create creates a user; the server assigns id, status and createdAt.
func (s *Service) Create(ctx context.Context, req model.CreateUserRequest) (*model.User, error) {
	var user model.User
	if err := s.client.Do(ctx, http.MethodPost, "/users", nil, req, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateStatus changes a user's status. The new status travels as a query
// parameter with an empty body, matching the backend contract.
func (s *Service) UpdateStatus(ctx context.Context, id int64, status model.Status) (*model.User, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("invalid status %q", status)
	}
	var user model.User
	path := fmt.Sprintf("/users/%d/status", id)
	query := url.Values{"status": []string{string(status)}}
	if err := s.client.Do(ctx, http.MethodPatch, path, query, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Delete removes a user.
func (s *Service) Delete(ctx context.Context, id int64) error {
	path := fmt.Sprintf("/users/%d", id)
	return s.client.Do(ctx, http.MethodDelete, path, nil, nil, nil)
}
