package taxing

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/store-manager-api/internal/domain"
	"github.com/vfg2006/store-manager-api/internal/state"
	"github.com/vfg2006/store-manager-api/pkg/apiErrors"
)

type Taxer interface {
	GetThreshold(ctx context.Context) (*domain.ThresholdMetrics, error)
	RecordMonthlyRevenue(ctx context.Context, req domain.MonthlyRevenueRequest) (*domain.MonthlyRevenueRecord, error)
	ListMonthlyRevenue(ctx context.Context, year *int) ([]domain.MonthlyRevenueRecord, error)
}

type Service struct {
	store state.Dispatcher
	loc   *time.Location
	now   func() time.Time
}

func NewService(store state.Dispatcher, loc *time.Location) Taxer {
	return &Service{
		store: store,
		loc:   loc,
		now:   time.Now,
	}
}

func (s *Service) GetThreshold(_ context.Context) (*domain.ThresholdMetrics, error) {
	snap := s.store.Snapshot()
	metrics := ComputeThreshold(snap.Sales, snap.MonthlyRevenue, snap.TaxConfig, s.loc)
	return &metrics, nil
}

// RecordMonthlyRevenue soma os valores informados ao fechamento do mês. Lançar
// duas vezes o mesmo mês acumula, não substitui.
func (s *Service) RecordMonthlyRevenue(ctx context.Context, req domain.MonthlyRevenueRequest) (*domain.MonthlyRevenueRecord, error) {
	if err := validateMonthlyRevenue(req); err != nil {
		return nil, err
	}

	record := domain.MonthlyRevenueRecord{
		ID:                uuid.NewString(),
		Month:             req.Month,
		Year:              req.Year,
		Revenue:           req.Revenue,
		ProfitDistributed: req.ProfitDistributed,
		PersonalTransfer:  req.PersonalTransfer,
		ClosedAt:          s.now(),
	}

	if err := s.store.Dispatch(ctx, state.MonthlyRevenueMerged{Record: record}); err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"month": req.Month,
			"year":  req.Year,
		}).Error("Erro ao salvar faturamento mensal")
		return nil, NewTaxError(ErrPersistRecord, apiErrors.ErrDatabaseOperation, "")
	}

	merged, _ := s.store.Snapshot().MonthlyRevenueFor(req.Month, req.Year)
	return &merged, nil
}

// ListMonthlyRevenue retorna os fechamentos em ordem cronológica, filtrando pelo ano quando informado
func (s *Service) ListMonthlyRevenue(_ context.Context, year *int) ([]domain.MonthlyRevenueRecord, error) {
	records := make([]domain.MonthlyRevenueRecord, 0)
	for _, r := range s.store.Snapshot().MonthlyRevenue {
		if year != nil && r.Year != *year {
			continue
		}
		records = append(records, r)
	}

	sort.Slice(records, func(i, j int) bool {
		if records[i].Year != records[j].Year {
			return records[i].Year < records[j].Year
		}
		return records[i].Month < records[j].Month
	})

	return records, nil
}

func validateMonthlyRevenue(req domain.MonthlyRevenueRequest) error {
	if req.Month < 1 || req.Month > 12 {
		return validationError(ErrInvalidMonth, "o mês deve estar entre 1 e 12")
	}

	if req.Year <= 0 {
		return validationError(ErrInvalidYear, "o ano deve ser maior que zero")
	}

	if req.Revenue.IsNegative() || req.ProfitDistributed.IsNegative() || req.PersonalTransfer.IsNegative() {
		return validationError(ErrInvalidAmount, "os valores não podem ser negativos")
	}

	if req.Revenue.IsZero() && req.ProfitDistributed.IsZero() && req.PersonalTransfer.IsZero() {
		return validationError(ErrEmptyRecord, "informe ao menos um valor")
	}

	return nil
}
