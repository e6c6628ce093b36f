package state

import (
	"context"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/store-manager-api/infrastructure/repository"
	"github.com/vfg2006/store-manager-api/internal/domain"
	"golang.org/x/sync/errgroup"
)

// ErrUnknownAction é retornado quando a Store não sabe persistir a ação
var ErrUnknownAction = errors.New("ação desconhecida")

// Reader expõe o estado atual para cálculos somente leitura
type Reader interface {
	Snapshot() Snapshot
}

// Dispatcher é o ponto único de mutação do estado
type Dispatcher interface {
	Reader
	Dispatch(ctx context.Context, action Action) error
}

type Repositories struct {
	Products         repository.ProductRepository
	Channels         repository.ChannelRepository
	Sales            repository.SaleRepository
	MonthlyRevenue   repository.MonthlyRevenueRepository
	Settings         repository.SettingsRepository
	BusinessExpenses repository.BusinessExpenseRepository
}

// Store mantém o estado em memória e o serviço de dados em sincronia: toda ação
// é persistida primeiro e só então reduzida. Se a persistência falhar o estado
// em memória permanece o mesmo.
type Store struct {
	// writeMu serializa Dispatch e Load, mu protege apenas a troca do snapshot
	writeMu  sync.Mutex
	mu       sync.RWMutex
	snapshot Snapshot
	repos    Repositories
	ownerID  int
	timeout  time.Duration
	now      func() time.Time
}

func NewStore(repos Repositories, ownerID int, timeout time.Duration) *Store {
	return &Store{
		repos:   repos,
		ownerID: ownerID,
		timeout: timeout,
		now:     time.Now,
		snapshot: Snapshot{
			Products:         []domain.Product{},
			Channels:         []domain.SalesChannel{},
			Sales:            []domain.Sale{},
			Expenses:         []domain.SaleExpense{},
			MonthlyRevenue:   []domain.MonthlyRevenueRecord{},
			BusinessExpenses: []domain.BusinessExpense{},
			TaxConfig:        domain.DefaultTaxThresholdConfig(time.Now()),
			StoreConfig:      domain.DefaultStoreConfig(),
		},
	}
}

func (s *Store) OwnerID() int {
	return s.ownerID
}

func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot
}

// Load lê todas as coleções em paralelo e troca o snapshot apenas se todas
// as leituras tiverem sucesso
func (s *Store) Load(ctx context.Context) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var next Snapshot
	var storeCfg *domain.StoreConfig
	var taxCfg *domain.TaxThresholdConfig

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		next.Products, err = s.repos.Products.ListProducts(gctx, s.ownerID)
		return errors.Wrap(err, "produtos")
	})
	g.Go(func() (err error) {
		next.Channels, err = s.repos.Channels.ListChannels(gctx, s.ownerID)
		return errors.Wrap(err, "canais")
	})
	g.Go(func() (err error) {
		next.Sales, err = s.repos.Sales.ListSales(gctx, s.ownerID)
		return errors.Wrap(err, "vendas")
	})
	g.Go(func() (err error) {
		next.Expenses, err = s.repos.Sales.ListExpenses(gctx, s.ownerID)
		return errors.Wrap(err, "despesas")
	})
	g.Go(func() (err error) {
		next.MonthlyRevenue, err = s.repos.MonthlyRevenue.ListMonthlyRevenue(gctx, s.ownerID)
		return errors.Wrap(err, "faturamento mensal")
	})
	g.Go(func() (err error) {
		next.BusinessExpenses, err = s.repos.BusinessExpenses.ListBusinessExpenses(gctx, s.ownerID)
		return errors.Wrap(err, "despesas gerais")
	})
	g.Go(func() (err error) {
		storeCfg, err = s.repos.Settings.GetStoreConfig(gctx, s.ownerID)
		return errors.Wrap(err, "configuração da loja")
	})
	g.Go(func() (err error) {
		taxCfg, err = s.repos.Settings.GetTaxConfig(gctx, s.ownerID)
		return errors.Wrap(err, "configuração do MEI")
	})

	if err := g.Wait(); err != nil {
		return errors.Wrap(err, "state: erro ao carregar estado")
	}

	now := s.now()
	next.StoreConfig = domain.DefaultStoreConfig()
	if storeCfg != nil {
		next.StoreConfig = *storeCfg
	}
	next.TaxConfig = domain.DefaultTaxThresholdConfig(now)
	if taxCfg != nil {
		next.TaxConfig = *taxCfg
	}
	next.LoadedAt = now

	s.swap(Reloaded{Snapshot: normalize(next)})

	logrus.WithFields(logrus.Fields{
		"products": len(next.Products),
		"channels": len(next.Channels),
		"sales":    len(next.Sales),
	}).Debug("state: estado carregado")

	return nil
}

// Dispatch persiste a ação e, em caso de sucesso, aplica a redução
func (s *Store) Dispatch(ctx context.Context, action Action) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	persisted, err := s.persist(ctx, action)
	if err != nil {
		logrus.WithError(err).WithField("action", action.actionName()).Error("state: falha ao persistir ação")
		return errors.Wrapf(err, "state: erro ao persistir %s", action.actionName())
	}

	s.swap(persisted)
	return nil
}

func (s *Store) swap(action Action) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot = Reduce(s.snapshot, action)
}

func (s *Store) persist(ctx context.Context, action Action) (Action, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	switch a := action.(type) {
	case SaleRegistered:
		return a, s.repos.Sales.CreateSale(ctx, s.ownerID, a.Sale, a.Expenses)
	case SaleCancelled:
		return a, s.repos.Sales.CancelSale(ctx, s.ownerID, a.SaleID, a.CancelledAt)
	case ExpenseRecorded:
		return a, s.repos.Sales.CreateExpense(ctx, s.ownerID, a.Expense)
	case ChannelCreated:
		return a, s.repos.Channels.CreateChannel(ctx, s.ownerID, a.Channel)
	case ChannelUpdated:
		return a, s.repos.Channels.UpdateChannel(ctx, s.ownerID, a.Channel)
	case ChannelDeleted:
		return a, s.repos.Channels.DeleteChannel(ctx, s.ownerID, a.ChannelID)
	case ProductSaved:
		return a, s.repos.Products.SaveProduct(ctx, s.ownerID, a.Product)
	case ProductCostAdded:
		return a, s.repos.Products.AddCostItem(ctx, s.ownerID, a.Item, a.UnitCost)
	case ProductCostRemoved:
		return a, s.repos.Products.RemoveCostItem(ctx, s.ownerID, a.ProductID, a.ItemID, a.UnitCost)
	case MonthlyRevenueMerged:
		merged, err := s.repos.MonthlyRevenue.MergeMonthlyRevenue(ctx, s.ownerID, a.Record)
		if err != nil {
			return nil, err
		}
		return MonthlyRevenueMerged{Record: *merged}, nil
	case BusinessExpenseCreated:
		return a, s.repos.BusinessExpenses.CreateBusinessExpense(ctx, s.ownerID, a.Expense)
	case BusinessExpenseUpdated:
		return a, s.repos.BusinessExpenses.UpdateBusinessExpense(ctx, s.ownerID, a.Expense)
	case BusinessExpenseDeleted:
		return a, s.repos.BusinessExpenses.DeleteBusinessExpense(ctx, s.ownerID, a.ExpenseID)
	case TaxConfigUpdated:
		return a, s.repos.Settings.SaveTaxConfig(ctx, s.ownerID, a.Config)
	case StoreConfigUpdated:
		return a, s.repos.Settings.SaveStoreConfig(ctx, s.ownerID, a.Config)
	case Reloaded:
		return a, nil
	}

	return nil, ErrUnknownAction
}

func (s *Store) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.timeout)
}

func normalize(s Snapshot) Snapshot {
	if s.Products == nil {
		s.Products = []domain.Product{}
	}
	if s.Channels == nil {
		s.Channels = []domain.SalesChannel{}
	}
	if s.Sales == nil {
		s.Sales = []domain.Sale{}
	}
	if s.Expenses == nil {
		s.Expenses = []domain.SaleExpense{}
	}
	if s.MonthlyRevenue == nil {
		s.MonthlyRevenue = []domain.MonthlyRevenueRecord{}
	}
	if s.BusinessExpenses == nil {
		s.BusinessExpenses = []domain.BusinessExpense{}
	}
	return s
}

