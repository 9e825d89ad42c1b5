package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/workspace-manager-api/infrastructure/repository"
	"github.com/vfg2006/workspace-manager-api/infrastructure/storage"
	"github.com/vfg2006/workspace-manager-api/internal/api"
	"github.com/vfg2006/workspace-manager-api/internal/config"
	"github.com/vfg2006/workspace-manager-api/internal/scheduler"
	"github.com/vfg2006/workspace-manager-api/internal/seed"
	"github.com/vfg2006/workspace-manager-api/internal/usecases/authenticating"
	"github.com/vfg2006/workspace-manager-api/internal/usecases/booking"
	"github.com/vfg2006/workspace-manager-api/internal/usecases/client"
	"github.com/vfg2006/workspace-manager-api/internal/usecases/contracting"
	"github.com/vfg2006/workspace-manager-api/internal/usecases/invoicing"
	"github.com/vfg2006/workspace-manager-api/internal/usecases/reporting"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store := newStore(ctx, cfg.Storage)
	defer store.Close()

	// Popula o armazenamento com os dados de demonstração, se habilitado.
	// A carga é idempotente: chaves já presentes não são sobrescritas.
	if cfg.Seed.Enabled {
		if err := seed.Load(store); err != nil {
			logrus.WithError(err).Fatal("Erro ao carregar dados de demonstração")
		}
	}

	clientRepo := repository.NewClientRepository(store)
	productRepo := repository.NewProductRepository(store)
	agreementRepo := repository.NewAgreementRepository(store)
	invoiceRepo := repository.NewInvoiceRepository(store)
	userRepo := repository.NewUserRepository(store)
	sessionRepo := repository.NewSessionRepository(store)

	authenticator := authenticating.NewService(userRepo, sessionRepo, cfg)

	// Restaura a sessão persistida de uma execução anterior, se houver
	if user := authenticator.RestoreSession(); user != nil {
		logrus.WithField("email", user.Email).Info("Sessão restaurada na inicialização")
	}

	clientService := client.NewService(clientRepo, productRepo, agreementRepo, invoiceRepo)
	bookingService := booking.NewService(productRepo, clientRepo)
	contractingService := contracting.NewService(agreementRepo, productRepo, clientRepo)
	invoicingService := invoicing.NewService(invoiceRepo, productRepo, clientRepo, agreementRepo, cfg)
	reportingService := reporting.NewService(clientRepo, productRepo, agreementRepo, invoiceRepo)

	// Inicializa o agendador de varredura de faturas vencidas
	overdueSyncService := scheduler.NewOverdueInvoiceSyncService(invoicingService, cfg)

	// Inicia o agendador em background
	if err := overdueSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de varredura de faturas vencidas")
	} else {
		logrus.Info("Agendador de varredura de faturas vencidas iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		authenticator,
		clientService,
		bookingService,
		contractingService,
		invoicingService,
		reportingService,
		overdueSyncService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// newStore cria o armazenamento chave-valor conforme o driver configurado
func newStore(ctx context.Context, storageConfig config.Storage) storage.Store {
	switch storageConfig.Driver {
	case "memory":
		logrus.Info("Usando armazenamento em memória")
		return storage.NewMemoryStore()

	case "redis":
		store, err := storage.NewRedisStore(storageConfig.RedisAddr, storageConfig.RedisPassword, storageConfig.RedisDB)
		if err != nil {
			logrus.WithError(err).Fatal("Erro ao conectar ao Redis")
		}
		logrus.Info("Conexão com Redis estabelecida com sucesso")
		return store

	case "postgres":
		store, err := storage.NewPostgresStore(ctx, storageConfig.PostgresDSN)
		if err != nil {
			logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
		}
		logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
		return store

	default:
		store, err := storage.NewFileStore(storageConfig.DataDir)
		if err != nil {
			logrus.WithError(err).Fatal("Erro ao abrir o diretório de dados")
		}
		logrus.WithField("dir", storageConfig.DataDir).Info("Usando armazenamento em arquivos")
		return store
	}
}
