// Package scheduler contiene los trabajos programados de la aplicación
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"

	"github.com/Karasowl/laralis-sub007/infrastructure/repository"
	"github.com/Karasowl/laralis-sub007/internal/config"
	"github.com/Karasowl/laralis-sub007/internal/usecases/marketing"
)

type MonthlyMetricsSyncConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

// MonthlyMetricsSyncService genera el corte mensual de métricas de marketing
// de cada clínica. Corre a inicio de mes y agrega el mes calendario anterior,
// que a esas alturas ya está cerrado.
type MonthlyMetricsSyncService struct {
	scheduler           *gocron.Scheduler
	metricsService      marketing.Metricer
	snapshotRepo        repository.MarketingSnapshotRepository
	config              MonthlyMetricsSyncConfig
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

func NewMonthlyMetricsSyncService(
	metricsService marketing.Metricer,
	snapshotRepo repository.MarketingSnapshotRepository,
	cfg *config.Config,
) *MonthlyMetricsSyncService {
	syncConfig := MonthlyMetricsSyncConfig{
		CronSchedule: cfg.MetricsSnapshotSync.CronSchedule, // Default: 5h de la mañana del día 1 de cada mes
		SyncEnabled:  cfg.MetricsSnapshotSync.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
	}).Info("Configuración del corte mensual de métricas cargada")

	return &MonthlyMetricsSyncService{
		scheduler:      scheduler,
		metricsService: metricsService,
		snapshotRepo:   snapshotRepo,
		config:         syncConfig,
	}
}

func (s *MonthlyMetricsSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Cron del corte mensual de métricas deshabilitado por configuración")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron del corte mensual de métricas")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.SyncPreviousMonth(); err != nil {
			logrus.WithError(err).Error("Error en el corte mensual de métricas")
		}
	})
	if err != nil {
		return fmt.Errorf("error al agendar el corte mensual de métricas: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron del corte mensual de métricas")
		s.scheduler.Stop()
	}()

	return nil
}

// TriggerManualSync dispara el corte fuera del horario programado.
func (s *MonthlyMetricsSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("El corte mensual de métricas ya está en ejecución, se ignora la solicitud manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando corte mensual de métricas manual")
	go func() {
		if err := s.SyncPreviousMonth(); err != nil {
			logrus.WithError(err).Error("Error en el corte mensual manual")
		}
	}()
}

// GetStatus devuelve el estado actual del agendador
func (s *MonthlyMetricsSyncService) GetStatus() map[string]any {
	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}

// SyncPreviousMonth agrega el mes anterior de todas las clínicas con
// actividad registrada. Un error en una clínica no frena a las demás.
func (s *MonthlyMetricsSyncService) SyncPreviousMonth() error {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	if s.syncRunning {
		logrus.Warn("El corte mensual de métricas ya está en ejecución")
		return nil
	}

	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	defer func() {
		s.syncRunning = false
		s.lastSyncCompletedAt = time.Now()
	}()

	year, month := previousMonth(time.Now().UTC())

	logrus.WithFields(logrus.Fields{
		"year":  year,
		"month": int(month),
	}).Info("Iniciando corte mensual de métricas")

	clinicIDs, err := s.snapshotRepo.ListClinicIDs()
	if err != nil {
		logrus.WithError(err).Error("Error al listar clínicas para el corte mensual")
		return err
	}

	var failures int
	for _, clinicID := range clinicIDs {
		if _, err := s.metricsService.ComputeMonthlySnapshot(clinicID, year, month); err != nil {
			failures++
			logrus.WithError(err).WithField("clinic_id", clinicID).Error("Error al generar el corte mensual de la clínica")
			continue
		}
	}

	logrus.WithFields(logrus.Fields{
		"clinics":  len(clinicIDs),
		"failures": failures,
	}).Info("Corte mensual de métricas terminado")

	if failures > 0 {
		return fmt.Errorf("corte mensual con %d clínicas fallidas de %d", failures, len(clinicIDs))
	}

	return nil
}

// previousMonth resuelve el mes calendario anterior a now. Ancla al primer
// día del mes antes de restar: AddDate sobre un fin de mes normaliza la fecha
// y puede quedarse en el mismo mes (31 de marzo menos un mes es 3 de marzo).
func previousMonth(now time.Time) (int, time.Month) {
	firstOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	previous := firstOfMonth.AddDate(0, -1, 0)
	return previous.Year(), previous.Month()
}
