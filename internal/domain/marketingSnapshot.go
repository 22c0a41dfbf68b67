package domain

import "time"

// MarketingSnapshot congela las métricas de adquisición de un mes calendario.
// Lo escribe el scheduler mensual; las pantallas históricas leen de aquí en
// lugar de reagregar pacientes y gastos de meses cerrados.
type MarketingSnapshot struct {
	ID                    string    `json:"id"`
	ClinicID              string    `json:"clinic_id"`
	Year                  int       `json:"year"`
	Month                 int       `json:"month"`
	NewPatients           int       `json:"new_patients"`
	ActivePatients        int       `json:"active_patients"`
	MarketingExpenseCents int64     `json:"marketing_expense_cents"`
	RevenueCents          int64     `json:"revenue_cents"`
	CACCents              int64     `json:"cac_cents"`
	LTVCents              int64     `json:"ltv_cents"`
	CreatedAt             time.Time `json:"created_at"`
}
