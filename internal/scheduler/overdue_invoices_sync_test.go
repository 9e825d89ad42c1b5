package scheduler

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/vfg2006/workspace-manager-api/internal/config"
	"github.com/vfg2006/workspace-manager-api/internal/usecases/invoicing/mocks"
	"github.com/vfg2006/workspace-manager-api/pkg/log"
)

func TestMain(m *testing.M) {
	log.SetupTestLogger()
	os.Exit(m.Run())
}

func newSyncService(t *testing.T, enabled bool) (*OverdueInvoiceSyncService, *mocks.MockInvoicingService) {
	t.Helper()

	ctrl := gomock.NewController(t)
	invoicingService := mocks.NewMockInvoicingService(ctrl)

	cfg := &config.Config{
		OverdueSync: config.OverdueSync{
			CronSchedule: "0 1 * * *",
			Enabled:      enabled,
		},
	}

	return NewOverdueInvoiceSyncService(invoicingService, cfg), invoicingService
}

func TestTriggerManualSync_ExecutaVarredura(t *testing.T) {
	service, invoicingService := newSyncService(t, true)

	done := make(chan struct{})
	invoicingService.EXPECT().
		MarkOverdue(gomock.Any()).
		DoAndReturn(func(_ time.Time) (int, error) {
			close(done)
			return 3, nil
		})

	service.TriggerManualSync()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("varredura manual não foi executada")
	}

	// A varredura roda em goroutine; espera o status ser registrado
	assert.Eventually(t, func() bool {
		status := service.GetStatus()
		marked, _ := status["last_sync_marked"].(int)
		return marked == 3
	}, 2*time.Second, 10*time.Millisecond)
}

func TestStart_DesabilitadoNaoAgenda(t *testing.T) {
	service, _ := newSyncService(t, false)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Nenhuma chamada a MarkOverdue é esperada
	require.NoError(t, service.Start(ctx))
}

func TestStart_AgendaERespondeAoContexto(t *testing.T) {
	service, _ := newSyncService(t, true)

	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, service.Start(ctx))
	cancel()

	// O cancelamento do contexto para o agendador sem erro
	assert.Eventually(t, func() bool {
		return !service.scheduler.IsRunning()
	}, 2*time.Second, 10*time.Millisecond)
}

func TestGetStatus_RefleteConfiguracao(t *testing.T) {
	service, _ := newSyncService(t, true)

	status := service.GetStatus()
	assert.Equal(t, true, status["sync_enabled"])
	assert.Equal(t, "0 1 * * *", status["sync_cron"])
	assert.Equal(t, 0, status["last_sync_marked"])
}
