package expensing

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/store-manager-api/infrastructure/repository"
	"github.com/vfg2006/store-manager-api/internal/domain"
	"github.com/vfg2006/store-manager-api/internal/state"
	"github.com/vfg2006/store-manager-api/pkg/apiErrors"
	"github.com/vfg2006/store-manager-api/pkg/utils"
)

// Expenser administra as despesas gerais da loja. Essas despesas não entram
// nas métricas de vendas do painel.
type Expenser interface {
	ListExpenses(ctx context.Context, status *domain.BusinessExpenseStatus) ([]domain.BusinessExpense, error)
	GetSummary(ctx context.Context) (*domain.BusinessExpenseSummary, error)
	CreateExpense(ctx context.Context, req domain.SaveBusinessExpenseRequest) (*domain.BusinessExpense, error)
	UpdateExpense(ctx context.Context, req domain.SaveBusinessExpenseRequest) (*domain.BusinessExpense, error)
	ChangeStatus(ctx context.Context, expenseID string, status string) (*domain.BusinessExpense, error)
	DeleteExpense(ctx context.Context, expenseID string) error
}

type Service struct {
	store state.Dispatcher
	loc   *time.Location
	now   func() time.Time
}

func NewService(store state.Dispatcher, loc *time.Location) Expenser {
	return &Service{
		store: store,
		loc:   loc,
		now:   time.Now,
	}
}

func (s *Service) ListExpenses(_ context.Context, status *domain.BusinessExpenseStatus) ([]domain.BusinessExpense, error) {
	expenses := s.store.Snapshot().BusinessExpenses
	if status == nil {
		return expenses, nil
	}

	filtered := make([]domain.BusinessExpense, 0, len(expenses))
	for _, e := range expenses {
		if e.Status == *status {
			filtered = append(filtered, e)
		}
	}
	return filtered, nil
}

func (s *Service) GetSummary(_ context.Context) (*domain.BusinessExpenseSummary, error) {
	summary := domain.SummarizeBusinessExpenses(s.store.Snapshot().BusinessExpenses)
	return &summary, nil
}

func (s *Service) CreateExpense(ctx context.Context, req domain.SaveBusinessExpenseRequest) (*domain.BusinessExpense, error) {
	expense, err := s.validate(req)
	if err != nil {
		return nil, err
	}

	expense.ID = uuid.NewString()
	expense.CreatedAt = s.now()

	if err := s.store.Dispatch(ctx, state.BusinessExpenseCreated{Expense: expense}); err != nil {
		return nil, s.persistError(err, expense.ID)
	}

	logrus.WithFields(logrus.Fields{
		"expense_id": expense.ID,
		"category":   expense.Category,
	}).Info("Despesa registrada")

	return &expense, nil
}

func (s *Service) UpdateExpense(ctx context.Context, req domain.SaveBusinessExpenseRequest) (*domain.BusinessExpense, error) {
	current, ok := s.store.Snapshot().BusinessExpenseByID(req.ID)
	if !ok {
		return nil, NewExpenseError(ErrExpenseNotFound, apiErrors.ErrExpenseNotFound, req.ID, "")
	}

	expense, err := s.validate(req)
	if err != nil {
		return nil, err
	}

	expense.ID = current.ID
	expense.CreatedAt = current.CreatedAt

	if err := s.store.Dispatch(ctx, state.BusinessExpenseUpdated{Expense: expense}); err != nil {
		return nil, s.persistError(err, req.ID)
	}

	return &expense, nil
}

// ChangeStatus troca apenas o status, os demais campos ficam como estão
func (s *Service) ChangeStatus(ctx context.Context, expenseID string, status string) (*domain.BusinessExpense, error) {
	expense, ok := s.store.Snapshot().BusinessExpenseByID(expenseID)
	if !ok {
		return nil, NewExpenseError(ErrExpenseNotFound, apiErrors.ErrExpenseNotFound, expenseID, "")
	}

	parsed, ok := domain.ParseBusinessExpenseStatus(status)
	if !ok {
		return nil, NewExpenseError(ErrInvalidStatus, apiErrors.ErrInvalidFormat, expenseID, "use paga, pendente ou vencida")
	}

	expense.Status = parsed

	if err := s.store.Dispatch(ctx, state.BusinessExpenseUpdated{Expense: expense}); err != nil {
		return nil, s.persistError(err, expenseID)
	}

	return &expense, nil
}

func (s *Service) DeleteExpense(ctx context.Context, expenseID string) error {
	if _, ok := s.store.Snapshot().BusinessExpenseByID(expenseID); !ok {
		return NewExpenseError(ErrExpenseNotFound, apiErrors.ErrExpenseNotFound, expenseID, "")
	}

	if err := s.store.Dispatch(ctx, state.BusinessExpenseDeleted{ExpenseID: expenseID}); err != nil {
		return s.persistError(err, expenseID)
	}

	logrus.WithField("expense_id", expenseID).Info("Despesa removida")
	return nil
}

func (s *Service) persistError(err error, expenseID string) error {
	if errors.Is(err, repository.ErrNotFound) {
		return NewExpenseError(ErrExpenseNotFound, apiErrors.ErrExpenseNotFound, expenseID, "")
	}

	logrus.WithError(err).WithField("expense_id", expenseID).Error("Erro ao salvar despesa")
	return NewExpenseError(ErrPersistExpense, apiErrors.ErrDatabaseOperation, expenseID, "")
}

func (s *Service) validate(req domain.SaveBusinessExpenseRequest) (domain.BusinessExpense, error) {
	description := strings.TrimSpace(req.Description)
	if description == "" {
		return domain.BusinessExpense{}, NewExpenseError(ErrMissingDescription, apiErrors.ErrMissingRequiredData, req.ID, "")
	}

	category, ok := domain.ParseBusinessExpenseCategory(req.Category)
	if !ok {
		return domain.BusinessExpense{}, NewExpenseError(ErrInvalidCategory, apiErrors.ErrInvalidRequest, req.ID, req.Category)
	}

	if !req.Amount.IsPositive() {
		return domain.BusinessExpense{}, NewExpenseError(ErrInvalidAmount, apiErrors.ErrInvalidRequest, req.ID, "")
	}

	status := domain.BusinessExpenseStatusPending
	if req.Status != "" {
		if status, ok = domain.ParseBusinessExpenseStatus(req.Status); !ok {
			return domain.BusinessExpense{}, NewExpenseError(ErrInvalidStatus, apiErrors.ErrInvalidFormat, req.ID, "use paga, pendente ou vencida")
		}
	}

	dueDate, err := utils.ParseDate(req.DueDate, s.loc)
	if err != nil {
		return domain.BusinessExpense{}, NewExpenseError(ErrInvalidDueDate, apiErrors.ErrInvalidFormat, req.ID, "use o formato AAAA-MM-DD")
	}
	if dueDate == nil {
		y, m, d := s.now().In(s.loc).Date()
		today := time.Date(y, m, d, 0, 0, 0, 0, s.loc)
		dueDate = &today
	}

	return domain.BusinessExpense{
		Description: description,
		Category:    category,
		Amount:      req.Amount,
		DueDate:     *dueDate,
		Status:      status,
		Notes:       strings.TrimSpace(req.Notes),
	}, nil
}
