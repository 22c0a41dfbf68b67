package domain

import "time"

// Estados de un tratamiento.
const (
	TreatmentScheduled = "scheduled"
	TreatmentCompleted = "completed"
	TreatmentCancelled = "cancelled"
)

// Treatment es la ejecución de un servicio sobre un paciente. Las columnas de
// costos y precio se congelan al crearlo copiando la tarifa activa: cambios
// posteriores de costos, márgenes o recetas nunca recalculan un tratamiento
// existente.
type Treatment struct {
	ID                string    `json:"id"`
	ClinicID          string    `json:"clinic_id"`
	PatientID         string    `json:"patient_id"`
	ServiceID         string    `json:"service_id"`
	TariffID          string    `json:"tariff_id"`
	TariffVersion     int       `json:"tariff_version"`
	FixedCostCents    int64     `json:"fixed_cost_cents"`
	VariableCostCents int64     `json:"variable_cost_cents"`
	MarginPct         float64   `json:"margin_pct"`
	PriceCents        int64     `json:"price_cents"`
	DiscountCents     int64     `json:"discount_cents"`
	ChargedCents      int64     `json:"charged_cents"`
	Status            string    `json:"status"`
	PerformedAt       time.Time `json:"performed_at"`
	CreatedAt         time.Time `json:"created_at"`
}
