package repository

import (
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/Karasowl/laralis-sub007/infrastructure/database/postgres"
	"github.com/Karasowl/laralis-sub007/internal/domain"
	"github.com/Karasowl/laralis-sub007/pkg/utils"
)

const treatmentsTable = "treatments"

type TreatmentRepository interface {
	CreateTreatment(treatment *domain.Treatment) (*domain.Treatment, error)
	ListTreatments(clinicID string, from, to time.Time) ([]*domain.Treatment, error)
	RevenueCentsInRange(clinicID string, from, to time.Time) (int64, error)
	CountPatientsTreatedInRange(clinicID string, from, to time.Time) (int, error)
}

type treatmentRepository struct {
	conn *postgres.Connection
}

func NewTreatmentRepository(conn *postgres.Connection) TreatmentRepository {
	return &treatmentRepository{
		conn: conn,
	}
}

// CreateTreatment inserta el tratamiento con sus columnas económicas ya
// congeladas por el caller. Este repositorio nunca recalcula precios.
func (r *treatmentRepository) CreateTreatment(treatment *domain.Treatment) (*domain.Treatment, error) {
	id, err := utils.GenerateID()
	if err != nil {
		return nil, err
	}
	treatment.ID = id

	queryBuilder := squirrel.
		Insert(treatmentsTable).
		Columns(
			"id", "clinic_id", "patient_id", "service_id",
			"tariff_id", "tariff_version",
			"fixed_cost_cents", "variable_cost_cents", "margin_pct",
			"price_cents", "discount_cents", "charged_cents",
			"status", "performed_at",
		).
		Values(
			treatment.ID, treatment.ClinicID, treatment.PatientID, treatment.ServiceID,
			treatment.TariffID, treatment.TariffVersion,
			treatment.FixedCostCents, treatment.VariableCostCents, treatment.MarginPct,
			treatment.PriceCents, treatment.DiscountCents, treatment.ChargedCents,
			treatment.Status, treatment.PerformedAt,
		).
		PlaceholderFormat(squirrel.Dollar)

	treatmentSQL, treatmentArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	_, err = r.conn.Exec(treatmentSQL, treatmentArgs...)
	if err != nil {
		return nil, err
	}

	return treatment, nil
}

func (r *treatmentRepository) ListTreatments(clinicID string, from, to time.Time) ([]*domain.Treatment, error) {
	queryBuilder := squirrel.
		Select(
			"id", "clinic_id", "patient_id", "service_id",
			"tariff_id", "tariff_version",
			"fixed_cost_cents", "variable_cost_cents", "margin_pct",
			"price_cents", "discount_cents", "charged_cents",
			"status", "performed_at", "created_at",
		).
		From(treatmentsTable).
		Where(squirrel.Eq{"clinic_id": clinicID}).
		Where(occurredWithin("performed_at", from, to)).
		OrderBy("performed_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	treatmentSQL, treatmentArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Query(treatmentSQL, treatmentArgs...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var treatments []*domain.Treatment
	for rows.Next() {
		var treatment domain.Treatment
		if err := rows.Scan(
			&treatment.ID,
			&treatment.ClinicID,
			&treatment.PatientID,
			&treatment.ServiceID,
			&treatment.TariffID,
			&treatment.TariffVersion,
			&treatment.FixedCostCents,
			&treatment.VariableCostCents,
			&treatment.MarginPct,
			&treatment.PriceCents,
			&treatment.DiscountCents,
			&treatment.ChargedCents,
			&treatment.Status,
			&treatment.PerformedAt,
			&treatment.CreatedAt,
		); err != nil {
			return nil, err
		}

		treatments = append(treatments, &treatment)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return treatments, nil
}

func (r *treatmentRepository) RevenueCentsInRange(clinicID string, from, to time.Time) (int64, error) {
	queryBuilder := squirrel.
		Select("COALESCE(SUM(charged_cents), 0)").
		From(treatmentsTable).
		Where(squirrel.Eq{"clinic_id": clinicID}).
		Where(squirrel.NotEq{"status": domain.TreatmentCancelled}).
		Where(occurredWithin("performed_at", from, to)).
		PlaceholderFormat(squirrel.Dollar)

	revenueSQL, revenueArgs, err := queryBuilder.ToSql()
	if err != nil {
		return 0, err
	}

	var total int64
	if err := r.conn.QueryRow(revenueSQL, revenueArgs...).Scan(&total); err != nil {
		return 0, err
	}

	return total, nil
}

// CountPatientsTreatedInRange cuenta pacientes distintos con al menos un
// tratamiento no cancelado en el rango: el denominador del LTV.
func (r *treatmentRepository) CountPatientsTreatedInRange(clinicID string, from, to time.Time) (int, error) {
	queryBuilder := squirrel.
		Select("COUNT(DISTINCT patient_id)").
		From(treatmentsTable).
		Where(squirrel.Eq{"clinic_id": clinicID}).
		Where(squirrel.NotEq{"status": domain.TreatmentCancelled}).
		Where(occurredWithin("performed_at", from, to)).
		PlaceholderFormat(squirrel.Dollar)

	countSQL, countArgs, err := queryBuilder.ToSql()
	if err != nil {
		return 0, err
	}

	var count int
	if err := r.conn.QueryRow(countSQL, countArgs...).Scan(&count); err != nil {
		return 0, err
	}

	return count, nil
}
