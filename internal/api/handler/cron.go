package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"

	"github.com/Karasowl/laralis-sub007/internal/domain"
	"github.com/Karasowl/laralis-sub007/internal/scheduler"
	"github.com/Karasowl/laralis-sub007/pkg/apiErrors"
)

// CronJobType define el tipo de cron job que se ejecutará
const (
	CronJobTypeMetricsSnapshot = "metrics-snapshot"
	CronJobTypeAll             = "all"
)

// CronJobServices contiene los servicios de cron necesarios para ejecución manual
type CronJobServices struct {
	MetricsSnapshotSyncService *scheduler.MonthlyMetricsSyncService
}

// RunCronJob ejecuta manualmente una cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunCronJob")

		claims, ok := requestClaims(w, r)
		if !ok {
			return
		}
		if claims.UserRole != domain.RoleAdmin {
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Solo administradores pueden ejecutar cron jobs", nil)
			return
		}

		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job no especificado", nil)
			return
		}

		switch cronType {
		case CronJobTypeMetricsSnapshot, CronJobTypeAll:
			if services.MetricsSnapshotSyncService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Servicio de corte mensual de métricas no disponible", nil)
				return
			}
			services.MetricsSnapshotSyncService.TriggerManualSync()
		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceptados: metrics-snapshot, all", nil)
			return
		}

		respondJSON(w, http.StatusOK, map[string]any{
			"message": "Cron job iniciada con éxito",
			"type":    cronType,
		})
	}
}

// GetCronStatus devuelve el estado de las cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetCronStatus")

		claims, ok := requestClaims(w, r)
		if !ok {
			return
		}
		if claims.UserRole != domain.RoleAdmin {
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Solo administradores pueden consultar el estado de cron jobs", nil)
			return
		}

		respondJSON(w, http.StatusOK, map[string]any{
			"metrics-snapshot": services.MetricsSnapshotSyncService.GetStatus(),
		})
	}
}
