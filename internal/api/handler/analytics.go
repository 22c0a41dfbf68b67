package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/Karasowl/laralis-sub007/internal/calc"
	"github.com/Karasowl/laralis-sub007/internal/usecases/equilibrium"
	"github.com/Karasowl/laralis-sub007/internal/usecases/marketing"
	"github.com/Karasowl/laralis-sub007/pkg/apiErrors"
)

// GetBreakEvenUnits calcula el punto de equilibrio en unidades para un
// precio y costo variable hipotéticos pasados por query params.
func GetBreakEvenUnits(service equilibrium.Analyzer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := requestClaims(w, r)
		if !ok {
			return
		}

		price, err := strconv.ParseInt(r.URL.Query().Get("price_cents"), 10, 64)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "price_cents debe ser un entero en centavos", nil)
			return
		}

		variableCost, err := strconv.ParseInt(r.URL.Query().Get("variable_cost_cents"), 10, 64)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "variable_cost_cents debe ser un entero en centavos", nil)
			return
		}

		report, err := service.BreakEvenUnits(claims.ClinicID, price, variableCost)
		if err != nil {
			logrus.WithError(err).Error("Error al calcular punto de equilibrio")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Error al calcular punto de equilibrio", nil)
			return
		}

		respondJSON(w, http.StatusOK, report)
	}
}

// GetBreakEvenRevenue calcula el ingreso de equilibrio mensual usando la
// mezcla real de tarifas y volúmenes del rango.
func GetBreakEvenRevenue(service equilibrium.Analyzer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := requestClaims(w, r)
		if !ok {
			return
		}

		from, to, ok := dateRange(w, r)
		if !ok {
			return
		}

		report, err := service.BreakEvenRevenue(claims.ClinicID, from, to)
		if err != nil {
			if errors.Is(err, equilibrium.ErrNoActiveTariffs) {
				apiErrors.WriteError(w, apiErrors.ErrClinicUnconfigured, err.Error(), nil)
				return
			}
			logrus.WithError(err).Error("Error al calcular ingreso de equilibrio")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Error al calcular ingreso de equilibrio", nil)
			return
		}

		respondJSON(w, http.StatusOK, report)
	}
}

func GetMarketingMetrics(service marketing.Metricer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := requestClaims(w, r)
		if !ok {
			return
		}

		from, to, ok := dateRange(w, r)
		if !ok {
			return
		}

		report, err := service.Metrics(claims.ClinicID, from, to)
		if err != nil {
			logrus.WithError(err).Error("Error al calcular métricas de marketing")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Error al calcular métricas de marketing", nil)
			return
		}

		respondJSON(w, http.StatusOK, report)
	}
}

// GetCACTrend devuelve la serie de costo de adquisición. La granularidad se
// pasa en el query param granularity (day, week, biweek, month).
func GetCACTrend(service marketing.Metricer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := requestClaims(w, r)
		if !ok {
			return
		}

		from, to, ok := dateRange(w, r)
		if !ok {
			return
		}

		raw := r.URL.Query().Get("granularity")
		if raw == "" {
			raw = string(calc.GranularityMonth)
		}

		granularity, err := calc.ParseGranularity(raw)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Granularidad no soportada, use day, week, biweek o month", nil)
			return
		}

		report, err := service.CACTrend(claims.ClinicID, from, to, granularity)
		if err != nil {
			logrus.WithError(err).Error("Error al calcular tendencia de CAC")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Error al calcular tendencia de CAC", nil)
			return
		}

		respondJSON(w, http.StatusOK, report)
	}
}

func GetAcquisitionTrends(service marketing.Metricer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := requestClaims(w, r)
		if !ok {
			return
		}

		from, to, ok := dateRange(w, r)
		if !ok {
			return
		}

		projectionMonths := 3
		if raw := r.URL.Query().Get("projection_months"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil || parsed < 0 {
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "projection_months debe ser un entero no negativo", nil)
				return
			}
			projectionMonths = parsed
		}

		report, err := service.AcquisitionTrends(claims.ClinicID, from, to, projectionMonths)
		if err != nil {
			logrus.WithError(err).Error("Error al calcular tendencias de adquisición")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Error al calcular tendencias de adquisición", nil)
			return
		}

		respondJSON(w, http.StatusOK, report)
	}
}

func ListMarketingSnapshots(service marketing.Metricer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := requestClaims(w, r)
		if !ok {
			return
		}

		limit := 12
		if raw := r.URL.Query().Get("limit"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil || parsed <= 0 {
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "limit debe ser un entero positivo", nil)
				return
			}
			limit = parsed
		}

		snapshots, err := service.ListSnapshots(claims.ClinicID, limit)
		if err != nil {
			logrus.WithError(err).Error("Error al listar snapshots de marketing")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Error al listar snapshots de marketing", nil)
			return
		}

		respondJSON(w, http.StatusOK, snapshots)
	}
}

// ComputeMarketingSnapshot recalcula y persiste el snapshot del mes indicado
// en los query params year y month.
func ComputeMarketingSnapshot(service marketing.Metricer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := requestClaims(w, r)
		if !ok {
			return
		}

		year, err := strconv.Atoi(r.URL.Query().Get("year"))
		if err != nil || year < 2000 {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "year debe ser un año válido", nil)
			return
		}

		month, err := strconv.Atoi(r.URL.Query().Get("month"))
		if err != nil || month < 1 || month > 12 {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "month debe estar entre 1 y 12", nil)
			return
		}

		snapshot, err := service.ComputeMonthlySnapshot(claims.ClinicID, year, time.Month(month))
		if err != nil {
			logrus.WithError(err).Error("Error al calcular snapshot de marketing")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Error al calcular snapshot de marketing", nil)
			return
		}

		respondJSON(w, http.StatusCreated, snapshot)
	}
}
