package repository

import (
	"database/sql"

	"github.com/Masterminds/squirrel"

	"github.com/Karasowl/laralis-sub007/infrastructure/database/postgres"
	"github.com/Karasowl/laralis-sub007/internal/domain"
	"github.com/Karasowl/laralis-sub007/pkg/utils"
)

const suppliesTable = "supplies"

type SupplyRepository interface {
	CreateSupply(supply *domain.Supply) (*domain.Supply, error)
	UpdateSupply(supply *domain.Supply) error
	DeleteSupply(clinicID, supplyID string) error
	ListSupplies(clinicID string) ([]*domain.Supply, error)
	GetSuppliesByIDs(clinicID string, supplyIDs []string) (map[string]*domain.Supply, error)
}

type supplyRepository struct {
	conn *postgres.Connection
}

func NewSupplyRepository(conn *postgres.Connection) SupplyRepository {
	return &supplyRepository{
		conn: conn,
	}
}

func (r *supplyRepository) CreateSupply(supply *domain.Supply) (*domain.Supply, error) {
	id, err := utils.GenerateID()
	if err != nil {
		return nil, err
	}
	supply.ID = id

	queryBuilder := squirrel.
		Insert(suppliesTable).
		Columns("id", "clinic_id", "name", "category", "unit", "price_cents", "portions").
		Values(supply.ID, supply.ClinicID, supply.Name, supply.Category, supply.Unit, supply.PriceCents, supply.Portions).
		PlaceholderFormat(squirrel.Dollar)

	supplySQL, supplyArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	_, err = r.conn.Exec(supplySQL, supplyArgs...)
	if err != nil {
		return nil, err
	}

	return supply, nil
}

func (r *supplyRepository) UpdateSupply(supply *domain.Supply) error {
	queryBuilder := squirrel.
		Update(suppliesTable).
		Set("name", supply.Name).
		Set("category", supply.Category).
		Set("unit", supply.Unit).
		Set("price_cents", supply.PriceCents).
		Set("portions", supply.Portions).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": supply.ID, "clinic_id": supply.ClinicID}).
		PlaceholderFormat(squirrel.Dollar)

	supplySQL, supplyArgs, err := queryBuilder.ToSql()
	if err != nil {
		return err
	}

	result, err := r.conn.Exec(supplySQL, supplyArgs...)
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

func (r *supplyRepository) DeleteSupply(clinicID, supplyID string) error {
	queryBuilder := squirrel.
		Delete(suppliesTable).
		Where(squirrel.Eq{"id": supplyID, "clinic_id": clinicID}).
		PlaceholderFormat(squirrel.Dollar)

	supplySQL, supplyArgs, err := queryBuilder.ToSql()
	if err != nil {
		return err
	}

	result, err := r.conn.Exec(supplySQL, supplyArgs...)
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

func (r *supplyRepository) ListSupplies(clinicID string) ([]*domain.Supply, error) {
	queryBuilder := squirrel.
		Select("id", "clinic_id", "name", "category", "unit", "price_cents", "portions", "created_at", "updated_at").
		From(suppliesTable).
		Where(squirrel.Eq{"clinic_id": clinicID}).
		OrderBy("name ASC").
		PlaceholderFormat(squirrel.Dollar)

	supplySQL, supplyArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Query(supplySQL, supplyArgs...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanSupplies(rows)
}

// GetSuppliesByIDs trae los insumos de una receta en una sola consulta. Los
// IDs que no existen simplemente no aparecen en el mapa; el agregador de
// costos variables los reporta como advertencia.
func (r *supplyRepository) GetSuppliesByIDs(clinicID string, supplyIDs []string) (map[string]*domain.Supply, error) {
	if len(supplyIDs) == 0 {
		return map[string]*domain.Supply{}, nil
	}

	queryBuilder := squirrel.
		Select("id", "clinic_id", "name", "category", "unit", "price_cents", "portions", "created_at", "updated_at").
		From(suppliesTable).
		Where(squirrel.Eq{"clinic_id": clinicID, "id": supplyIDs}).
		PlaceholderFormat(squirrel.Dollar)

	supplySQL, supplyArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Query(supplySQL, supplyArgs...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	supplies, err := scanSupplies(rows)
	if err != nil {
		return nil, err
	}

	byID := make(map[string]*domain.Supply, len(supplies))
	for _, supply := range supplies {
		byID[supply.ID] = supply
	}

	return byID, nil
}

func scanSupplies(rows *sql.Rows) ([]*domain.Supply, error) {
	var supplies []*domain.Supply
	for rows.Next() {
		var supply domain.Supply
		if err := rows.Scan(
			&supply.ID,
			&supply.ClinicID,
			&supply.Name,
			&supply.Category,
			&supply.Unit,
			&supply.PriceCents,
			&supply.Portions,
			&supply.CreatedAt,
			&supply.UpdatedAt,
		); err != nil {
			return nil, err
		}

		supplies = append(supplies, &supply)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return supplies, nil
}
