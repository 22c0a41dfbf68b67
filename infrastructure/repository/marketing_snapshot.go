package repository

import (
	"github.com/Masterminds/squirrel"

	"github.com/Karasowl/laralis-sub007/infrastructure/database/postgres"
	"github.com/Karasowl/laralis-sub007/internal/domain"
	"github.com/Karasowl/laralis-sub007/pkg/utils"
)

const marketingSnapshotsTable = "marketing_snapshots"

type MarketingSnapshotRepository interface {
	SaveOrUpdateSnapshot(snapshot *domain.MarketingSnapshot) error
	ListSnapshots(clinicID string, limit int) ([]*domain.MarketingSnapshot, error)
	ListClinicIDs() ([]string, error)
}

type marketingSnapshotRepository struct {
	conn *postgres.Connection
}

func NewMarketingSnapshotRepository(conn *postgres.Connection) MarketingSnapshotRepository {
	return &marketingSnapshotRepository{
		conn: conn,
	}
}

func (r *marketingSnapshotRepository) SaveOrUpdateSnapshot(snapshot *domain.MarketingSnapshot) error {
	if snapshot.ID == "" {
		id, err := utils.GenerateID()
		if err != nil {
			return err
		}
		snapshot.ID = id
	}

	queryBuilder := squirrel.
		Insert(marketingSnapshotsTable).
		Columns("id", "clinic_id", "year", "month", "new_patients", "active_patients", "marketing_expense_cents", "revenue_cents", "cac_cents", "ltv_cents").
		Values(snapshot.ID, snapshot.ClinicID, snapshot.Year, snapshot.Month, snapshot.NewPatients, snapshot.ActivePatients, snapshot.MarketingExpenseCents, snapshot.RevenueCents, snapshot.CACCents, snapshot.LTVCents).
		Suffix("ON CONFLICT (clinic_id, year, month) DO UPDATE SET new_patients = EXCLUDED.new_patients, active_patients = EXCLUDED.active_patients, marketing_expense_cents = EXCLUDED.marketing_expense_cents, revenue_cents = EXCLUDED.revenue_cents, cac_cents = EXCLUDED.cac_cents, ltv_cents = EXCLUDED.ltv_cents").
		PlaceholderFormat(squirrel.Dollar)

	snapshotSQL, snapshotArgs, err := queryBuilder.ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn.Exec(snapshotSQL, snapshotArgs...)
	if err != nil {
		return err
	}

	return nil
}

func (r *marketingSnapshotRepository) ListSnapshots(clinicID string, limit int) ([]*domain.MarketingSnapshot, error) {
	queryBuilder := squirrel.
		Select("id", "clinic_id", "year", "month", "new_patients", "active_patients", "marketing_expense_cents", "revenue_cents", "cac_cents", "ltv_cents", "created_at").
		From(marketingSnapshotsTable).
		Where(squirrel.Eq{"clinic_id": clinicID}).
		OrderBy("year DESC", "month DESC").
		PlaceholderFormat(squirrel.Dollar)

	if limit > 0 {
		queryBuilder = queryBuilder.Limit(uint64(limit))
	}

	snapshotSQL, snapshotArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Query(snapshotSQL, snapshotArgs...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var snapshots []*domain.MarketingSnapshot
	for rows.Next() {
		var snapshot domain.MarketingSnapshot
		if err := rows.Scan(
			&snapshot.ID,
			&snapshot.ClinicID,
			&snapshot.Year,
			&snapshot.Month,
			&snapshot.NewPatients,
			&snapshot.ActivePatients,
			&snapshot.MarketingExpenseCents,
			&snapshot.RevenueCents,
			&snapshot.CACCents,
			&snapshot.LTVCents,
			&snapshot.CreatedAt,
		); err != nil {
			return nil, err
		}

		snapshots = append(snapshots, &snapshot)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return snapshots, nil
}

// ListClinicIDs enumera las clínicas para el job mensual de snapshots.
func (r *marketingSnapshotRepository) ListClinicIDs() ([]string, error) {
	rows, err := r.conn.Query("SELECT id FROM clinics ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return ids, nil
}
