package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/store-manager-api/internal/config"
	"github.com/vfg2006/store-manager-api/internal/domain"
	"github.com/vfg2006/store-manager-api/internal/usecases/taxing"
)

// ThresholdWatchConfig representa a configuração do acompanhamento do limite do MEI
type ThresholdWatchConfig struct {
	CronSchedule string
	WatchEnabled bool
}

// ThresholdWatchService avalia periodicamente o faturamento do ano e avisa no log
// quando ele entra nas faixas de atenção ou crítica
type ThresholdWatchService struct {
	scheduler      *gocron.Scheduler
	config         ThresholdWatchConfig
	taxer          taxing.Taxer
	running        bool
	mutex          sync.Mutex
	lastCheckedAt  time.Time
	lastStatus     domain.ThresholdStatus
	lastYearToDate string
}

func NewThresholdWatchService(taxer taxing.Taxer, appConfig *config.Config, loc *time.Location) *ThresholdWatchService {
	watchConfig := ThresholdWatchConfig{
		CronSchedule: appConfig.ThresholdWatch.CronSchedule,
		WatchEnabled: appConfig.ThresholdWatch.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": watchConfig.CronSchedule,
		"watch_enabled": watchConfig.WatchEnabled,
	}).Info("Configuração do acompanhamento do limite do MEI carregada")

	return &ThresholdWatchService{
		scheduler: gocron.NewScheduler(loc),
		config:    watchConfig,
		taxer:     taxer,
	}
}

// Start inicia o agendador
func (s *ThresholdWatchService) Start(ctx context.Context) error {
	if !s.config.WatchEnabled {
		logrus.Info("Acompanhamento do limite do MEI desabilitado por configuração")
		return nil
	}

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.checkThreshold(context.Background())
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar acompanhamento do limite do MEI: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador do limite do MEI")
		s.scheduler.Stop()
	}()

	return nil
}

func (s *ThresholdWatchService) checkThreshold(ctx context.Context) {
	s.mutex.Lock()
	if s.running {
		s.mutex.Unlock()
		return
	}
	s.running = true
	s.mutex.Unlock()

	defer func() {
		s.mutex.Lock()
		s.running = false
		s.mutex.Unlock()
	}()

	metrics, err := s.taxer.GetThreshold(ctx)
	if err != nil {
		logrus.WithError(err).Error("Erro ao calcular o limite do MEI")
		return
	}

	s.mutex.Lock()
	s.lastCheckedAt = time.Now()
	s.lastStatus = metrics.Status
	s.lastYearToDate = metrics.YearToDate.StringFixed(2)
	s.mutex.Unlock()

	entry := logrus.WithFields(logrus.Fields{
		"reference_year":   metrics.ReferenceYear,
		"year_to_date":     metrics.YearToDate.StringFixed(2),
		"annual_limit":     metrics.AnnualLimit.StringFixed(2),
		"percent_of_limit": metrics.PercentOfLimit.StringFixed(2),
	})

	switch metrics.Status {
	case domain.ThresholdStatusCritical:
		entry.Error("Faturamento do ano na faixa crítica do limite do MEI")
	case domain.ThresholdStatusAttention:
		entry.Warn("Faturamento do ano na faixa de atenção do limite do MEI")
	default:
		entry.Info("Faturamento do ano dentro do limite do MEI")
	}
}

// TriggerManualSync executa a avaliação fora do horário agendado
func (s *ThresholdWatchService) TriggerManualSync() {
	logrus.Info("Iniciando avaliação manual do limite do MEI")
	go s.checkThreshold(context.Background())
}

func (s *ThresholdWatchService) GetStatus() map[string]any {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	return map[string]any{
		"watch_enabled":     s.config.WatchEnabled,
		"watch_cron":        s.config.CronSchedule,
		"last_checked_at":   s.lastCheckedAt,
		"last_status":       s.lastStatus,
		"last_year_to_date": s.lastYearToDate,
	}
}
