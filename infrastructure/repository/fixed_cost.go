package repository

import (
	"database/sql"

	"github.com/Masterminds/squirrel"

	"github.com/Karasowl/laralis-sub007/infrastructure/database/postgres"
	"github.com/Karasowl/laralis-sub007/internal/domain"
	"github.com/Karasowl/laralis-sub007/pkg/utils"
)

const fixedCostsTable = "fixed_costs"

type FixedCostRepository interface {
	CreateFixedCost(cost *domain.FixedCost) (*domain.FixedCost, error)
	UpdateFixedCost(cost *domain.FixedCost) error
	DeleteFixedCost(clinicID, costID string) error
	ListFixedCosts(clinicID string) ([]*domain.FixedCost, error)
	TotalFixedCostsCents(clinicID string) (int64, error)
}

type fixedCostRepository struct {
	conn *postgres.Connection
}

func NewFixedCostRepository(conn *postgres.Connection) FixedCostRepository {
	return &fixedCostRepository{
		conn: conn,
	}
}

func (r *fixedCostRepository) CreateFixedCost(cost *domain.FixedCost) (*domain.FixedCost, error) {
	id, err := utils.GenerateID()
	if err != nil {
		return nil, err
	}
	cost.ID = id

	queryBuilder := squirrel.
		Insert(fixedCostsTable).
		Columns("id", "clinic_id", "category", "concept", "amount_cents").
		Values(cost.ID, cost.ClinicID, cost.Category, cost.Concept, cost.AmountCents).
		PlaceholderFormat(squirrel.Dollar)

	costSQL, costArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	_, err = r.conn.Exec(costSQL, costArgs...)
	if err != nil {
		return nil, err
	}

	return cost, nil
}

func (r *fixedCostRepository) UpdateFixedCost(cost *domain.FixedCost) error {
	queryBuilder := squirrel.
		Update(fixedCostsTable).
		Set("category", cost.Category).
		Set("concept", cost.Concept).
		Set("amount_cents", cost.AmountCents).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": cost.ID, "clinic_id": cost.ClinicID}).
		PlaceholderFormat(squirrel.Dollar)

	costSQL, costArgs, err := queryBuilder.ToSql()
	if err != nil {
		return err
	}

	result, err := r.conn.Exec(costSQL, costArgs...)
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

func (r *fixedCostRepository) DeleteFixedCost(clinicID, costID string) error {
	queryBuilder := squirrel.
		Delete(fixedCostsTable).
		Where(squirrel.Eq{"id": costID, "clinic_id": clinicID}).
		PlaceholderFormat(squirrel.Dollar)

	costSQL, costArgs, err := queryBuilder.ToSql()
	if err != nil {
		return err
	}

	result, err := r.conn.Exec(costSQL, costArgs...)
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

func (r *fixedCostRepository) ListFixedCosts(clinicID string) ([]*domain.FixedCost, error) {
	queryBuilder := squirrel.
		Select("id", "clinic_id", "category", "concept", "amount_cents", "created_at", "updated_at").
		From(fixedCostsTable).
		Where(squirrel.Eq{"clinic_id": clinicID}).
		OrderBy("category ASC", "concept ASC").
		PlaceholderFormat(squirrel.Dollar)

	costSQL, costArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Query(costSQL, costArgs...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var costs []*domain.FixedCost
	for rows.Next() {
		var cost domain.FixedCost
		if err := rows.Scan(
			&cost.ID,
			&cost.ClinicID,
			&cost.Category,
			&cost.Concept,
			&cost.AmountCents,
			&cost.CreatedAt,
			&cost.UpdatedAt,
		); err != nil {
			return nil, err
		}

		costs = append(costs, &cost)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return costs, nil
}

// TotalFixedCostsCents suma los costos fijos manuales de la clínica. La
// depreciación mensual de activos se suma aparte (AssetRepository).
func (r *fixedCostRepository) TotalFixedCostsCents(clinicID string) (int64, error) {
	var total int64
	err := r.conn.QueryRow("SELECT COALESCE(SUM(amount_cents), 0) FROM fixed_costs WHERE clinic_id = $1", clinicID).Scan(&total)
	if err != nil {
		return 0, err
	}

	return total, nil
}
