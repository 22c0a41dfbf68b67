package domain

import "time"

// Tariff es una versión de precio de un servicio. Guardar una tarifa nueva
// incrementa Version y desactiva la anterior; las versiones viejas no se
// borran para que los tratamientos históricos conserven su referencia.
type Tariff struct {
	ID                string    `json:"id"`
	ClinicID          string    `json:"clinic_id"`
	ServiceID         string    `json:"service_id"`
	Version           int       `json:"version"`
	FixedCostCents    int64     `json:"fixed_cost_cents"`
	VariableCostCents int64     `json:"variable_cost_cents"`
	MarginPct         float64   `json:"margin_pct"`
	FinalPriceCents   int64     `json:"final_price_cents"`
	RoundedPriceCents int64     `json:"rounded_price_cents"`
	DiscountType      string    `json:"discount_type"`
	DiscountValue     float64   `json:"discount_value"`
	Active            bool      `json:"active"`
	CreatedAt         time.Time `json:"created_at"`
}
