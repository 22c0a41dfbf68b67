package domain

import "time"

// Service es un tratamiento ofrecido por la clínica, con su duración estándar
// y su receta de insumos.
type Service struct {
	ID              string    `json:"id"`
	ClinicID        string    `json:"clinic_id"`
	Name            string    `json:"name"`
	Category        string    `json:"category"`
	DurationMinutes int       `json:"duration_minutes"`
	MarginPct       *float64  `json:"margin_pct"`
	Active          bool      `json:"active"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// ServiceSupply es una línea de la receta: cuántas porciones de un insumo
// consume una ejecución del servicio.
type ServiceSupply struct {
	ServiceID string  `json:"service_id"`
	SupplyID  string  `json:"supply_id"`
	Quantity  float64 `json:"quantity"`
}
