package exporting

import (
	"context"
	"time"

	"github.com/vfg2006/store-manager-api/internal/domain"
	"github.com/vfg2006/store-manager-api/internal/state"
	"github.com/vfg2006/store-manager-api/internal/usecases/insighting"
	"github.com/vfg2006/store-manager-api/internal/usecases/taxing"
)

type Exporter interface {
	Export(ctx context.Context) (*domain.ExportSnapshot, error)
}

type Service struct {
	store state.Reader
	loc   *time.Location
	now   func() time.Time
}

func NewService(store state.Reader, loc *time.Location) Exporter {
	return &Service{
		store: store,
		loc:   loc,
		now:   time.Now,
	}
}

// Export monta o relatório completo da loja a partir de um único snapshot, as
// métricas são recalculadas e nada é alterado
func (s *Service) Export(_ context.Context) (*domain.ExportSnapshot, error) {
	snap := s.store.Snapshot()
	now := s.now().In(s.loc)

	products := make([]domain.ProductResponse, 0, len(snap.Products))
	for _, p := range snap.Products {
		products = append(products, domain.NewProductResponse(p))
	}

	return &domain.ExportSnapshot{
		StoreConfig:      snap.StoreConfig,
		TaxConfig:        snap.TaxConfig,
		Products:         products,
		Channels:         snap.Channels,
		Sales:            snap.Sales,
		Expenses:         snap.Expenses,
		MonthlyRevenue:   snap.MonthlyRevenue,
		BusinessExpenses: snap.BusinessExpenses,
		ExpenseSummary:   domain.SummarizeBusinessExpenses(snap.BusinessExpenses),
		Dashboard:        insighting.ComputeDashboard(snap.Sales, snap.Channels, snap.Expenses, now),
		ThresholdMetrics: taxing.ComputeThreshold(snap.Sales, snap.MonthlyRevenue, snap.TaxConfig, s.loc),
		ExportedAt:       now,
	}, nil
}
