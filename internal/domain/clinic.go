package domain

import "time"

// Roles de usuario dentro de una clínica.
const (
	RoleAdmin     = "admin"
	RoleDoctor    = "doctor"
	RoleAssistant = "assistant"
)

type Clinic struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Currency  string    `json:"currency"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PricingSettings son las preferencias de tarificación de la clínica. El
// descuento global aplica a todos los servicios salvo que una tarifa declare
// el suyo propio.
type PricingSettings struct {
	ClinicID            string  `json:"clinic_id"`
	RoundingStepCents   int64   `json:"rounding_step_cents"`
	RoundingMode        string  `json:"rounding_mode"`
	DefaultMarginPct    float64 `json:"default_margin_pct"`
	GlobalDiscountType  string  `json:"global_discount_type"`
	GlobalDiscountValue float64 `json:"global_discount_value"`
}

// TimeSettings es la configuración de horario de la clínica: días laborales
// por mes, horas de sillón por día y porcentaje de utilización real (0-100).
type TimeSettings struct {
	ClinicID    string    `json:"clinic_id"`
	WorkDays    int       `json:"work_days"`
	HoursPerDay float64   `json:"hours_per_day"`
	RealPct     float64   `json:"real_pct"`
	UpdatedAt   time.Time `json:"updated_at"`
}
