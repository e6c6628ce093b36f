package insighting

import (
	"context"
	"time"

	"github.com/vfg2006/store-manager-api/internal/domain"
	"github.com/vfg2006/store-manager-api/internal/state"
)

type Insighter interface {
	GetDashboard(ctx context.Context) (*domain.DashboardMetrics, error)
}

type Service struct {
	store state.Reader
	loc   *time.Location
	now   func() time.Time
}

func NewService(store state.Reader, loc *time.Location) Insighter {
	return &Service{
		store: store,
		loc:   loc,
		now:   time.Now,
	}
}

func (s *Service) GetDashboard(_ context.Context) (*domain.DashboardMetrics, error) {
	snap := s.store.Snapshot()
	metrics := ComputeDashboard(snap.Sales, snap.Channels, snap.Expenses, s.now().In(s.loc))
	return &metrics, nil
}
