package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Karasowl/laralis-sub007/infrastructure/database/postgres"
	"github.com/Karasowl/laralis-sub007/infrastructure/repository"
	"github.com/Karasowl/laralis-sub007/internal/api"
	"github.com/Karasowl/laralis-sub007/internal/config"
	"github.com/Karasowl/laralis-sub007/internal/scheduler"
	"github.com/Karasowl/laralis-sub007/internal/usecases/authenticating"
	"github.com/Karasowl/laralis-sub007/internal/usecases/catalog"
	"github.com/Karasowl/laralis-sub007/internal/usecases/equilibrium"
	"github.com/Karasowl/laralis-sub007/internal/usecases/marketing"
	"github.com/Karasowl/laralis-sub007/internal/usecases/pricing"
	"github.com/Karasowl/laralis-sub007/internal/usecases/settings"
)

func main() {
	// Inicializa la configuración de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define el nivel de log según la configuración
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nivel de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nivel de log configurado en: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	userRepo := repository.NewUserRepository(pgConn)
	clinicRepo := repository.NewClinicRepository(pgConn)
	settingsRepo := repository.NewSettingsRepository(pgConn)
	fixedCostRepo := repository.NewFixedCostRepository(pgConn)
	assetRepo := repository.NewAssetRepository(pgConn)
	supplyRepo := repository.NewSupplyRepository(pgConn)
	serviceRepo := repository.NewServiceRepository(pgConn)
	tariffRepo := repository.NewTariffRepository(pgConn)
	treatmentRepo := repository.NewTreatmentRepository(pgConn)
	patientRepo := repository.NewPatientRepository(pgConn)
	expenseRepo := repository.NewExpenseRepository(pgConn)
	snapshotRepo := repository.NewMarketingSnapshotRepository(pgConn)

	authenticator := authenticating.NewService(userRepo, clinicRepo, cfg)

	configurer := settings.NewService(settingsRepo, fixedCostRepo, assetRepo, cfg)

	cataloger := catalog.NewService(
		supplyRepo,
		serviceRepo,
		fixedCostRepo,
		assetRepo,
		patientRepo,
		expenseRepo,
		treatmentRepo,
	)

	pricer := pricing.NewService(
		serviceRepo,
		supplyRepo,
		tariffRepo,
		treatmentRepo,
		configurer,
	)

	analyzer := equilibrium.NewService(configurer, tariffRepo, treatmentRepo)

	metricer := marketing.NewService(patientRepo, expenseRepo, treatmentRepo, snapshotRepo)

	// Inicializa el agendador del corte mensual de métricas
	metricsSnapshotSyncService := scheduler.NewMonthlyMetricsSyncService(
		metricer,
		snapshotRepo,
		cfg,
	)

	if err := metricsSnapshotSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Error al iniciar el agendador del corte mensual de métricas")
	} else {
		logrus.Info("Agendador del corte mensual de métricas iniciado con éxito")
	}

	server, err := api.New(
		cfg,
		authenticator,
		configurer,
		cataloger,
		pricer,
		analyzer,
		metricer,
		metricsSnapshotSyncService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura el formato y comportamiento de los logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn crea una conexión con la base de datos
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Error al conectar a PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Error al probar la conexión con PostgreSQL")
	}

	logrus.Info("Conexión con PostgreSQL establecida con éxito")
	return conn
}
