package dashboard

import (
	"context"
	"net/http"

	"github.com/mhdirfanpn/panadol-platform-client/internal/model"
	"github.com/mhdirfanpn/panadol-platform-client/internal/transport"
)

// Service exposes the single dashboard endpoint.
type Service struct {
	client *transport.Client
}

func NewService(client *transport.Client) *Service {
	return &Service{client: client}
}

// Stats fetches a fresh aggregate snapshot.
func (s *Service) Stats(ctx context.Context) (*model.DashboardStats, error) {
	var stats model.DashboardStats
	if err := s.client.Do(ctx, http.MethodGet, "/dashboard/stats", nil, nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}
