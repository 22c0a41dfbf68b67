package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"

	"github.com/Karasowl/laralis-sub007/internal/api/handler"
	"github.com/Karasowl/laralis-sub007/internal/api/handler/router"
	"github.com/Karasowl/laralis-sub007/internal/config"
	"github.com/Karasowl/laralis-sub007/internal/scheduler"
	"github.com/Karasowl/laralis-sub007/internal/usecases/authenticating"
	"github.com/Karasowl/laralis-sub007/internal/usecases/catalog"
	"github.com/Karasowl/laralis-sub007/internal/usecases/equilibrium"
	"github.com/Karasowl/laralis-sub007/internal/usecases/marketing"
	"github.com/Karasowl/laralis-sub007/internal/usecases/pricing"
	"github.com/Karasowl/laralis-sub007/internal/usecases/settings"
	"github.com/Karasowl/laralis-sub007/pkg/middleware"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type Server struct {
	httpServer *http.Server
}

func New(
	config *config.Config,
	authenticator authenticating.Authenticator,
	configurer settings.Configurer,
	cataloger catalog.Cataloger,
	pricer pricing.Pricer,
	analyzer equilibrium.Analyzer,
	metricer marketing.Metricer,
	metricsSnapshotSyncService *scheduler.MonthlyMetricsSyncService,
) (*Server, error) {
	cronServices := handler.CronJobServices{
		MetricsSnapshotSyncService: metricsSnapshotSyncService,
	}

	rt := router.New(
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.Authentication(authenticator)...),
		router.WithRoutes(handler.User(authenticator)...),
		router.WithRoutes(handler.Settings(configurer)...),
		router.WithRoutes(handler.FixedCosts(cataloger)...),
		router.WithRoutes(handler.Assets(cataloger)...),
		router.WithRoutes(handler.Supplies(cataloger)...),
		router.WithRoutes(handler.Services(cataloger)...),
		router.WithRoutes(handler.Tariffs(pricer)...),
		router.WithRoutes(handler.Treatments(pricer, cataloger)...),
		router.WithRoutes(handler.Patients(cataloger)...),
		router.WithRoutes(handler.Expenses(cataloger)...),
		router.WithRoutes(handler.Equilibrium(analyzer)...),
		router.WithRoutes(handler.Analytics(metricer)...),
		router.WithRoutes(handler.CronJobs(cronServices)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(),
		middleware.AuthMiddleware(authenticator),
	}

	handler := alice.New(middlewares...).Then(rt)

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           handler,
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Error durante la ejecución del servidor")
		}
	}()

	// Canal para esperar señales de término
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	// Esperar por la señal o por la cancelación del contexto
	select {
	case <-done:
		logrus.Info("Señal de interrupción recibida")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicación cancelado")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logrus.WithFields(logrus.Fields{
		"timeout": "15s",
	}).Info("Iniciando apagado gracioso del servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Error durante el apagado del servidor")
		return err
	}

	logrus.Info("Servidor apagado con éxito")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	logrus.Info("Ejecutando operaciones de limpieza antes del apagado")

	err := s.httpServer.Shutdown(ctx)
	if err != nil {
		return err
	}

	logrus.Info("Servidor HTTP apagado con éxito")
	return nil
}
