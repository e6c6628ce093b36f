package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/store-manager-api/internal/config"
)

// StateLoader recarrega o estado em memória a partir do banco
type StateLoader interface {
	Load(ctx context.Context) error
}

// StateReloadConfig representa a configuração do agendador de recarga do estado
type StateReloadConfig struct {
	CronSchedule string
	SyncEnabled  bool
	Timeout      time.Duration
}

// StateReloadService mantém o estado em memória alinhado com o banco, útil quando
// outro processo grava nas mesmas tabelas
type StateReloadService struct {
	scheduler           *gocron.Scheduler
	config              StateReloadConfig
	loader              StateLoader
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastError           string
}

// NewStateReloadService cria uma nova instância do serviço de recarga do estado
func NewStateReloadService(loader StateLoader, appConfig *config.Config, loc *time.Location) *StateReloadService {
	reloadConfig := StateReloadConfig{
		CronSchedule: appConfig.StateReload.CronSchedule,
		SyncEnabled:  appConfig.StateReload.Enabled,
		Timeout:      appConfig.App.PersistenceTimeout,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": reloadConfig.CronSchedule,
		"sync_enabled":  reloadConfig.SyncEnabled,
	}).Info("Configuração do agendador de recarga do estado carregada")

	return &StateReloadService{
		scheduler: gocron.NewScheduler(loc),
		config:    reloadConfig,
		loader:    loader,
	}
}

// Start inicia o agendador
func (s *StateReloadService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Recarga do estado desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de recarga do estado")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.reloadState()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar recarga do estado: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de recarga do estado")
		s.scheduler.Stop()
	}()

	return nil
}

// reloadState executa uma recarga, ignorando a chamada se outra estiver em andamento
func (s *StateReloadService) reloadState() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Recarga do estado já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	startTime := time.Now()
	s.lastSyncStartedAt = startTime
	s.syncMutex.Unlock()

	var loadErr error
	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		if loadErr != nil {
			s.lastError = loadErr.Error()
		} else {
			s.lastError = ""
			s.lastSyncCompletedAt = time.Now()
		}
		s.syncMutex.Unlock()
	}()

	ctx := context.Background()
	if s.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.config.Timeout)
		defer cancel()
	}

	if loadErr = s.loader.Load(ctx); loadErr != nil {
		logrus.WithError(loadErr).Error("Erro ao recarregar o estado, mantendo o estado anterior")
		return
	}

	logrus.WithField("duration", time.Since(startTime).String()).Info("Estado recarregado")
}

// TriggerManualSync inicia manualmente uma recarga do estado
func (s *StateReloadService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Recarga do estado já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando recarga manual do estado")
	go s.reloadState()
}

// GetStatus retorna o status atual do agendador
func (s *StateReloadService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_running":           s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_error":             s.lastError,
	}
}
