package domain

import "time"

// Categorías de costo fijo mensual.
const (
	FixedCostRent      = "rent"
	FixedCostSalaries  = "salaries"
	FixedCostUtilities = "utilities"
	FixedCostInsurance = "insurance"
	FixedCostEducation = "education"
	FixedCostOther     = "other"
)

type FixedCost struct {
	ID          string    `json:"id"`
	ClinicID    string    `json:"clinic_id"`
	Category    string    `json:"category"`
	Concept     string    `json:"concept"`
	AmountCents int64     `json:"amount_cents"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Asset es un activo depreciable. Su depreciación mensual lineal entra al
// total de costos fijos junto con los costos manuales.
type Asset struct {
	ID                 string    `json:"id"`
	ClinicID           string    `json:"clinic_id"`
	Name               string    `json:"name"`
	PriceCents         int64     `json:"price_cents"`
	DepreciationMonths int       `json:"depreciation_months"`
	PurchasedAt        time.Time `json:"purchased_at"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}
