package repository

import (
	"database/sql"

	"github.com/Masterminds/squirrel"

	"github.com/Karasowl/laralis-sub007/infrastructure/database/postgres"
	"github.com/Karasowl/laralis-sub007/internal/domain"
	"github.com/Karasowl/laralis-sub007/pkg/utils"
)

const tariffsTable = "tariffs"

type TariffRepository interface {
	SaveVersion(tariff *domain.Tariff) (*domain.Tariff, error)
	GetActiveByService(clinicID, serviceID string) (*domain.Tariff, error)
	ListActive(clinicID string) ([]*domain.Tariff, error)
	GetByID(clinicID, tariffID string) (*domain.Tariff, error)
	UpdateDiscount(clinicID, tariffID, discountType string, discountValue float64) error
}

type tariffRepository struct {
	conn *postgres.Connection
}

func NewTariffRepository(conn *postgres.Connection) TariffRepository {
	return &tariffRepository{
		conn: conn,
	}
}

// SaveVersion inserta una versión nueva de la tarifa del servicio y desactiva
// la anterior en la misma transacción. Las versiones viejas se conservan: los
// tratamientos históricos las referencian.
func (r *tariffRepository) SaveVersion(tariff *domain.Tariff) (*domain.Tariff, error) {
	id, err := utils.GenerateID()
	if err != nil {
		return nil, err
	}
	tariff.ID = id
	tariff.Active = true

	deactivateSQL, deactivateArgs, err := squirrel.
		Update(tariffsTable).
		Set("active", false).
		Where(squirrel.Eq{"clinic_id": tariff.ClinicID, "service_id": tariff.ServiceID, "active": true}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	tx, err := r.conn.DB.Begin()
	if err != nil {
		return nil, err
	}

	if _, err := tx.Exec(deactivateSQL, deactivateArgs...); err != nil {
		_ = tx.Rollback()
		return nil, err
	}

	var version int
	err = tx.QueryRow(
		"SELECT COALESCE(MAX(version), 0) + 1 FROM tariffs WHERE clinic_id = $1 AND service_id = $2",
		tariff.ClinicID, tariff.ServiceID,
	).Scan(&version)
	if err != nil {
		_ = tx.Rollback()
		return nil, err
	}
	tariff.Version = version

	insertSQL, insertArgs, err := squirrel.
		Insert(tariffsTable).
		Columns(
			"id", "clinic_id", "service_id", "version",
			"fixed_cost_cents", "variable_cost_cents", "margin_pct",
			"final_price_cents", "rounded_price_cents",
			"discount_type", "discount_value", "active",
		).
		Values(
			tariff.ID, tariff.ClinicID, tariff.ServiceID, tariff.Version,
			tariff.FixedCostCents, tariff.VariableCostCents, tariff.MarginPct,
			tariff.FinalPriceCents, tariff.RoundedPriceCents,
			tariff.DiscountType, tariff.DiscountValue, tariff.Active,
		).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		_ = tx.Rollback()
		return nil, err
	}

	if _, err := tx.Exec(insertSQL, insertArgs...); err != nil {
		_ = tx.Rollback()
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return tariff, nil
}

func (r *tariffRepository) GetActiveByService(clinicID, serviceID string) (*domain.Tariff, error) {
	row := r.conn.QueryRow(
		"SELECT id, clinic_id, service_id, version, fixed_cost_cents, variable_cost_cents, margin_pct, final_price_cents, rounded_price_cents, discount_type, discount_value, active, created_at FROM tariffs WHERE clinic_id = $1 AND service_id = $2 AND active = true",
		clinicID, serviceID,
	)

	tariff, err := scanTariff(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return tariff, nil
}

func (r *tariffRepository) GetByID(clinicID, tariffID string) (*domain.Tariff, error) {
	row := r.conn.QueryRow(
		"SELECT id, clinic_id, service_id, version, fixed_cost_cents, variable_cost_cents, margin_pct, final_price_cents, rounded_price_cents, discount_type, discount_value, active, created_at FROM tariffs WHERE clinic_id = $1 AND id = $2",
		clinicID, tariffID,
	)

	tariff, err := scanTariff(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return tariff, nil
}

func (r *tariffRepository) ListActive(clinicID string) ([]*domain.Tariff, error) {
	queryBuilder := squirrel.
		Select(
			"id", "clinic_id", "service_id", "version",
			"fixed_cost_cents", "variable_cost_cents", "margin_pct",
			"final_price_cents", "rounded_price_cents",
			"discount_type", "discount_value", "active", "created_at",
		).
		From(tariffsTable).
		Where(squirrel.Eq{"clinic_id": clinicID, "active": true}).
		OrderBy("service_id ASC").
		PlaceholderFormat(squirrel.Dollar)

	tariffSQL, tariffArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Query(tariffSQL, tariffArgs...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tariffs []*domain.Tariff
	for rows.Next() {
		var tariff domain.Tariff
		if err := rows.Scan(
			&tariff.ID,
			&tariff.ClinicID,
			&tariff.ServiceID,
			&tariff.Version,
			&tariff.FixedCostCents,
			&tariff.VariableCostCents,
			&tariff.MarginPct,
			&tariff.FinalPriceCents,
			&tariff.RoundedPriceCents,
			&tariff.DiscountType,
			&tariff.DiscountValue,
			&tariff.Active,
			&tariff.CreatedAt,
		); err != nil {
			return nil, err
		}

		tariffs = append(tariffs, &tariff)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return tariffs, nil
}

func (r *tariffRepository) UpdateDiscount(clinicID, tariffID, discountType string, discountValue float64) error {
	queryBuilder := squirrel.
		Update(tariffsTable).
		Set("discount_type", discountType).
		Set("discount_value", discountValue).
		Where(squirrel.Eq{"id": tariffID, "clinic_id": clinicID}).
		PlaceholderFormat(squirrel.Dollar)

	tariffSQL, tariffArgs, err := queryBuilder.ToSql()
	if err != nil {
		return err
	}

	result, err := r.conn.Exec(tariffSQL, tariffArgs...)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}

	return nil
}

func scanTariff(row *sql.Row) (*domain.Tariff, error) {
	var tariff domain.Tariff
	err := row.Scan(
		&tariff.ID,
		&tariff.ClinicID,
		&tariff.ServiceID,
		&tariff.Version,
		&tariff.FixedCostCents,
		&tariff.VariableCostCents,
		&tariff.MarginPct,
		&tariff.FinalPriceCents,
		&tariff.RoundedPriceCents,
		&tariff.DiscountType,
		&tariff.DiscountValue,
		&tariff.Active,
		&tariff.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &tariff, nil
}
