package handler

import (
	"net/http"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/Karasowl/laralis-sub007/internal/calc"
	"github.com/Karasowl/laralis-sub007/internal/usecases/pricing"
	"github.com/Karasowl/laralis-sub007/pkg/apiErrors"
)

func handlePricingError(w http.ResponseWriter, err error, action string) {
	switch {
	case errors.Is(err, pricing.ErrServiceNotFound),
		errors.Is(err, pricing.ErrTariffNotFound):
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
	case errors.Is(err, pricing.ErrClinicUnconfigured):
		apiErrors.WriteError(w, apiErrors.ErrClinicUnconfigured, err.Error(), nil)
	case errors.Is(err, calc.ErrInvalidInput):
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
	default:
		logrus.WithError(err).Error(action)
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, action, nil)
	}
}

// GetVariableCost devuelve el costo variable de la receta del servicio.
func GetVariableCost(service pricing.Pricer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := requestClaims(w, r)
		if !ok {
			return
		}

		id, ok := pathID(w, r)
		if !ok {
			return
		}

		report, err := service.VariableCost(claims.ClinicID, id)
		if err != nil {
			handlePricingError(w, err, "Error al calcular costo variable")
			return
		}

		respondJSON(w, http.StatusOK, report)
	}
}

// PreviewTariff calcula una tarifa sin persistirla. Acepta overrides de
// margen, duración y redondeo para simular escenarios.
func PreviewTariff(service pricing.Pricer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := requestClaims(w, r)
		if !ok {
			return
		}

		var req pricing.PreviewRequest
		if !decodeBody(w, r, &req) {
			return
		}

		if req.ServiceID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "service_id es obligatorio", nil)
			return
		}

		quote, err := service.PreviewTariff(claims.ClinicID, req)
		if err != nil {
			handlePricingError(w, err, "Error al calcular tarifa")
			return
		}

		respondJSON(w, http.StatusOK, quote)
	}
}

// SaveTariff congela una nueva versión de tarifa para el servicio.
func SaveTariff(service pricing.Pricer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := requestClaims(w, r)
		if !ok {
			return
		}

		id, ok := pathID(w, r)
		if !ok {
			return
		}

		tariff, err := service.SaveTariff(claims.ClinicID, id)
		if err != nil {
			handlePricingError(w, err, "Error al guardar tarifa")
			return
		}

		respondJSON(w, http.StatusCreated, tariff)
	}
}

func ListTariffs(service pricing.Pricer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := requestClaims(w, r)
		if !ok {
			return
		}

		tariffs, err := service.ListTariffs(claims.ClinicID)
		if err != nil {
			handlePricingError(w, err, "Error al listar tarifas")
			return
		}

		respondJSON(w, http.StatusOK, tariffs)
	}
}

func UpdateTariffDiscount(service pricing.Pricer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := requestClaims(w, r)
		if !ok {
			return
		}

		id, ok := pathID(w, r)
		if !ok {
			return
		}

		var discount calc.Discount
		if !decodeBody(w, r, &discount) {
			return
		}

		if err := service.UpdateDiscount(claims.ClinicID, id, discount); err != nil {
			handlePricingError(w, err, "Error al actualizar descuento")
			return
		}

		respondJSON(w, http.StatusOK, nil)
	}
}

type bulkAdjustMarginRequest struct {
	DeltaPct float64 `json:"delta_pct"`
}

// BulkAdjustMargin re-tarifica todos los servicios activos aplicando el
// delta de margen sobre el porcentaje vigente de cada uno.
func BulkAdjustMargin(service pricing.Pricer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := requestClaims(w, r)
		if !ok {
			return
		}

		var req bulkAdjustMarginRequest
		if !decodeBody(w, r, &req) {
			return
		}

		tariffs, err := service.BulkAdjustMargin(claims.ClinicID, req.DeltaPct)
		if err != nil {
			handlePricingError(w, err, "Error al ajustar márgenes")
			return
		}

		respondJSON(w, http.StatusOK, tariffs)
	}
}

// CreateTreatment registra un tratamiento con el precio de la tarifa activa
// congelado al momento del registro.
func CreateTreatment(service pricing.Pricer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := requestClaims(w, r)
		if !ok {
			return
		}

		var req pricing.FreezeTreatmentRequest
		if !decodeBody(w, r, &req) {
			return
		}

		if req.PatientID == "" || req.ServiceID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "patient_id y service_id son obligatorios", nil)
			return
		}

		treatment, err := service.FreezeTreatment(claims.ClinicID, req)
		if err != nil {
			handlePricingError(w, err, "Error al registrar tratamiento")
			return
		}

		respondJSON(w, http.StatusCreated, treatment)
	}
}
