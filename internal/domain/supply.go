package domain

import "time"

// Supply es un insumo del inventario. PriceCents es el precio de la
// presentación completa y Portions cuántas porciones rinde; el costo por
// porción se deriva, nunca se captura.
type Supply struct {
	ID         string    `json:"id"`
	ClinicID   string    `json:"clinic_id"`
	Name       string    `json:"name"`
	Category   string    `json:"category"`
	Unit       string    `json:"unit"`
	PriceCents int64     `json:"price_cents"`
	Portions   float64   `json:"portions"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
