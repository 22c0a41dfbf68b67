package handler

import (
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/Karasowl/laralis-sub007/internal/calc"
	"github.com/Karasowl/laralis-sub007/internal/domain"
	"github.com/Karasowl/laralis-sub007/internal/usecases/settings"
	"github.com/Karasowl/laralis-sub007/pkg/apiErrors"
)

// GetTimeSettings devuelve la configuración de horario con el costo fijo por
// minuto derivado. Una clínica sin configurar recibe el reporte vacío.
func GetTimeSettings(service settings.Configurer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := requestClaims(w, r)
		if !ok {
			return
		}

		report, err := service.GetTimeReport(claims.ClinicID)
		if err != nil {
			logrus.WithError(err).Error("Error al consultar configuración de horario")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Error al consultar la configuración", nil)
			return
		}

		respondJSON(w, http.StatusOK, report)
	}
}

// UpdateTimeSettings guarda la configuración de horario y devuelve el
// desglose derivado recalculado
func UpdateTimeSettings(service settings.Configurer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := requestClaims(w, r)
		if !ok {
			return
		}

		var req domain.TimeSettings
		if !decodeBody(w, r, &req) {
			return
		}
		req.ClinicID = claims.ClinicID

		report, err := service.UpdateTimeSettings(&req)
		if err != nil {
			if errors.Is(err, calc.ErrInvalidInput) {
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
				return
			}
			logrus.WithError(err).Error("Error al guardar configuración de horario")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Error al guardar la configuración", nil)
			return
		}

		respondJSON(w, http.StatusOK, report)
	}
}

// GetPricingSettings devuelve redondeo, margen por defecto y descuento global
func GetPricingSettings(service settings.Configurer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := requestClaims(w, r)
		if !ok {
			return
		}

		pricingSettings, err := service.GetPricingSettings(claims.ClinicID)
		if err != nil {
			logrus.WithError(err).Error("Error al consultar configuración de precios")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Error al consultar la configuración", nil)
			return
		}

		respondJSON(w, http.StatusOK, pricingSettings)
	}
}

func UpdatePricingSettings(service settings.Configurer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := requestClaims(w, r)
		if !ok {
			return
		}

		var req domain.PricingSettings
		if !decodeBody(w, r, &req) {
			return
		}
		req.ClinicID = claims.ClinicID

		if err := service.UpdatePricingSettings(&req); err != nil {
			if errors.Is(err, calc.ErrInvalidInput) {
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
				return
			}
			logrus.WithError(err).Error("Error al guardar configuración de precios")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Error al guardar la configuración", nil)
			return
		}

		respondJSON(w, http.StatusOK, nil)
	}
}

// GetFixedCostReport agrega costos fijos manuales y depreciación de activos
func GetFixedCostReport(service settings.Configurer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := requestClaims(w, r)
		if !ok {
			return
		}

		report, err := service.GetFixedCostReport(claims.ClinicID)
		if err != nil {
			logrus.WithError(err).Error("Error al armar el reporte de costos fijos")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Error al consultar costos fijos", nil)
			return
		}

		respondJSON(w, http.StatusOK, report)
	}
}

// GetAssetDepreciation devuelve la ficha de depreciación de un activo
func GetAssetDepreciation(service settings.Configurer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := requestClaims(w, r)
		if !ok {
			return
		}

		assetID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if assetID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID del activo no proporcionado", nil)
			return
		}

		schedule, err := service.AssetDepreciationSchedule(claims.ClinicID, assetID, time.Now().UTC())
		if err != nil {
			logrus.WithError(err).Error("Error al calcular la depreciación del activo")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Error al calcular la depreciación", nil)
			return
		}
		if schedule == nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Activo no encontrado", nil)
			return
		}

		respondJSON(w, http.StatusOK, schedule)
	}
}
