package repository

import (
	"database/sql"

	"github.com/Masterminds/squirrel"

	"github.com/Karasowl/laralis-sub007/infrastructure/database/postgres"
	"github.com/Karasowl/laralis-sub007/internal/domain"
	"github.com/Karasowl/laralis-sub007/pkg/utils"
)

const assetsTable = "assets"

type AssetRepository interface {
	CreateAsset(asset *domain.Asset) (*domain.Asset, error)
	GetAssetByID(clinicID, assetID string) (*domain.Asset, error)
	ListAssets(clinicID string) ([]*domain.Asset, error)
	DeleteAsset(clinicID, assetID string) error
}

type assetRepository struct {
	conn *postgres.Connection
}

func NewAssetRepository(conn *postgres.Connection) AssetRepository {
	return &assetRepository{
		conn: conn,
	}
}

func (r *assetRepository) CreateAsset(asset *domain.Asset) (*domain.Asset, error) {
	id, err := utils.GenerateID()
	if err != nil {
		return nil, err
	}
	asset.ID = id

	queryBuilder := squirrel.
		Insert(assetsTable).
		Columns("id", "clinic_id", "name", "price_cents", "depreciation_months", "purchased_at").
		Values(asset.ID, asset.ClinicID, asset.Name, asset.PriceCents, asset.DepreciationMonths, asset.PurchasedAt).
		PlaceholderFormat(squirrel.Dollar)

	assetSQL, assetArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	_, err = r.conn.Exec(assetSQL, assetArgs...)
	if err != nil {
		return nil, err
	}

	return asset, nil
}

func (r *assetRepository) GetAssetByID(clinicID, assetID string) (*domain.Asset, error) {
	var asset domain.Asset
	err := r.conn.QueryRow("SELECT id, clinic_id, name, price_cents, depreciation_months, purchased_at, created_at, updated_at FROM assets WHERE clinic_id = $1 AND id = $2", clinicID, assetID).Scan(
		&asset.ID,
		&asset.ClinicID,
		&asset.Name,
		&asset.PriceCents,
		&asset.DepreciationMonths,
		&asset.PurchasedAt,
		&asset.CreatedAt,
		&asset.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &asset, nil
}

func (r *assetRepository) ListAssets(clinicID string) ([]*domain.Asset, error) {
	queryBuilder := squirrel.
		Select("id", "clinic_id", "name", "price_cents", "depreciation_months", "purchased_at", "created_at", "updated_at").
		From(assetsTable).
		Where(squirrel.Eq{"clinic_id": clinicID}).
		OrderBy("name ASC").
		PlaceholderFormat(squirrel.Dollar)

	assetSQL, assetArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Query(assetSQL, assetArgs...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var assets []*domain.Asset
	for rows.Next() {
		var asset domain.Asset
		if err := rows.Scan(
			&asset.ID,
			&asset.ClinicID,
			&asset.Name,
			&asset.PriceCents,
			&asset.DepreciationMonths,
			&asset.PurchasedAt,
			&asset.CreatedAt,
			&asset.UpdatedAt,
		); err != nil {
			return nil, err
		}

		assets = append(assets, &asset)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return assets, nil
}

func (r *assetRepository) DeleteAsset(clinicID, assetID string) error {
	queryBuilder := squirrel.
		Delete(assetsTable).
		Where(squirrel.Eq{"id": assetID, "clinic_id": clinicID}).
		PlaceholderFormat(squirrel.Dollar)

	assetSQL, assetArgs, err := queryBuilder.ToSql()
	if err != nil {
		return err
	}

	result, err := r.conn.Exec(assetSQL, assetArgs...)
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
