package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/workspace-manager-api/internal/config"
	"github.com/vfg2006/workspace-manager-api/internal/usecases/invoicing"
)

// OverdueInvoiceSyncConfig representa a configuração do agendador de faturas vencidas
type OverdueInvoiceSyncConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

// OverdueInvoiceSyncService gerencia o agendamento e execução da varredura de faturas vencidas
type OverdueInvoiceSyncService struct {
	scheduler           *gocron.Scheduler
	config              OverdueInvoiceSyncConfig
	invoicingService    invoicing.InvoicingService
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastSyncMarked      int
}

// NewOverdueInvoiceSyncService cria uma nova instância do serviço de varredura de faturas vencidas
func NewOverdueInvoiceSyncService(
	invoicingService invoicing.InvoicingService,
	appConfig *config.Config,
) *OverdueInvoiceSyncService {
	syncConfig := OverdueInvoiceSyncConfig{
		CronSchedule: appConfig.OverdueSync.CronSchedule,
		SyncEnabled:  appConfig.OverdueSync.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"sync_enabled":  syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de faturas vencidas carregada")

	return &OverdueInvoiceSyncService{
		scheduler:        scheduler,
		config:           syncConfig,
		invoicingService: invoicingService,
		syncRunning:      false,
	}
}

// Start inicia o agendador
func (s *OverdueInvoiceSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Varredura de faturas vencidas desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de varredura de faturas vencidas")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncOverdueInvoices()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar varredura de faturas vencidas: %w", err)
	}

	// Executar o agendador em uma goroutine separada
	s.scheduler.StartAsync()

	// Configurar o cancelamento do agendador quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de varredura de faturas vencidas")
		s.scheduler.Stop()
	}()

	return nil
}

// syncOverdueInvoices marca como vencidas as faturas enviadas ou pendentes com vencimento no passado
func (s *OverdueInvoiceSyncService) syncOverdueInvoices() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Varredura de faturas vencidas já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.syncMutex.Unlock()

	startTime := time.Now()
	s.lastSyncStartedAt = startTime

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	logrus.Info("Iniciando varredura de faturas vencidas")

	marked, err := s.invoicingService.MarkOverdue(time.Now())
	if err != nil {
		logrus.WithError(err).Error("Erro durante varredura de faturas vencidas")
		return
	}

	duration := time.Since(startTime)
	logrus.WithFields(logrus.Fields{
		"duration": duration.String(),
		"marked":   marked,
	}).Info("Varredura de faturas vencidas concluída")

	s.lastSyncMarked = marked
	s.lastSyncCompletedAt = time.Now()
}

// TriggerManualSync inicia manualmente uma varredura de faturas vencidas
func (s *OverdueInvoiceSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Varredura de faturas vencidas já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando varredura manual de faturas vencidas")
	go s.syncOverdueInvoices()
}

// GetStatus retorna o status atual do agendador
func (s *OverdueInvoiceSyncService) GetStatus() map[string]any {
	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_sync_marked":       s.lastSyncMarked,
	}
}
