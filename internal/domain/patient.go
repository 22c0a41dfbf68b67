package domain

import "time"

// Orígenes de adquisición de pacientes.
const (
	SourceCampaign = "campaign"
	SourceReferral = "referral"
	SourceOrganic  = "organic"
	SourceWalkIn   = "walk_in"
)

type Patient struct {
	ID           string     `json:"id"`
	ClinicID     string     `json:"clinic_id"`
	Name         string     `json:"name"`
	Lastname     string     `json:"lastname"`
	Email        *string    `json:"email"`
	Phone        *string    `json:"phone"`
	Source       string     `json:"source"`
	CampaignName *string    `json:"campaign_name"`
	ReferredByID *string    `json:"referred_by_id"`
	FirstVisitAt *time.Time `json:"first_visit_at"`
	AcquiredAt   time.Time  `json:"acquired_at"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// Expense es un gasto registrado; los de categoría marketing alimentan el CAC.
type Expense struct {
	ID          string    `json:"id"`
	ClinicID    string    `json:"clinic_id"`
	Category    string    `json:"category"`
	Concept     string    `json:"concept"`
	AmountCents int64     `json:"amount_cents"`
	SpentAt     time.Time `json:"spent_at"`
	CreatedAt   time.Time `json:"created_at"`
}

const ExpenseCategoryMarketing = "marketing"
