package repository

import (
	"database/sql"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/Karasowl/laralis-sub007/infrastructure/database/postgres"
	"github.com/Karasowl/laralis-sub007/internal/domain"
	"github.com/Karasowl/laralis-sub007/pkg/utils"
)

const patientsTable = "patients"

type PatientRepository interface {
	CreatePatient(patient *domain.Patient) (*domain.Patient, error)
	GetPatientByID(clinicID, patientID string) (*domain.Patient, error)
	ListPatients(clinicID string) ([]*domain.Patient, error)
	CountPatients(clinicID string) (int, error)
	CountAcquiredInRange(clinicID string, from, to time.Time) (int, error)
	ListAcquiredInRange(clinicID string, from, to time.Time) ([]*domain.Patient, error)
}

type patientRepository struct {
	conn *postgres.Connection
}

func NewPatientRepository(conn *postgres.Connection) PatientRepository {
	return &patientRepository{
		conn: conn,
	}
}

func (r *patientRepository) CreatePatient(patient *domain.Patient) (*domain.Patient, error) {
	id, err := utils.GenerateID()
	if err != nil {
		return nil, err
	}
	patient.ID = id

	if patient.Source == "" {
		patient.Source = domain.SourceOrganic
	}
	if patient.AcquiredAt.IsZero() {
		patient.AcquiredAt = time.Now().UTC()
	}

	queryBuilder := squirrel.
		Insert(patientsTable).
		Columns("id", "clinic_id", "name", "lastname", "email", "phone", "source", "campaign_name", "referred_by_id", "first_visit_at", "acquired_at").
		Values(patient.ID, patient.ClinicID, patient.Name, patient.Lastname, patient.Email, patient.Phone, patient.Source, patient.CampaignName, patient.ReferredByID, patient.FirstVisitAt, patient.AcquiredAt).
		PlaceholderFormat(squirrel.Dollar)

	patientSQL, patientArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	_, err = r.conn.Exec(patientSQL, patientArgs...)
	if err != nil {
		return nil, err
	}

	return patient, nil
}

func (r *patientRepository) GetPatientByID(clinicID, patientID string) (*domain.Patient, error) {
	var patient domain.Patient
	err := r.conn.QueryRow(
		"SELECT id, clinic_id, name, lastname, email, phone, source, campaign_name, referred_by_id, first_visit_at, acquired_at, created_at, updated_at FROM patients WHERE clinic_id = $1 AND id = $2",
		clinicID, patientID,
	).Scan(
		&patient.ID,
		&patient.ClinicID,
		&patient.Name,
		&patient.Lastname,
		&patient.Email,
		&patient.Phone,
		&patient.Source,
		&patient.CampaignName,
		&patient.ReferredByID,
		&patient.FirstVisitAt,
		&patient.AcquiredAt,
		&patient.CreatedAt,
		&patient.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &patient, nil
}

func (r *patientRepository) ListPatients(clinicID string) ([]*domain.Patient, error) {
	queryBuilder := squirrel.
		Select("id", "clinic_id", "name", "lastname", "email", "phone", "source", "campaign_name", "referred_by_id", "first_visit_at", "acquired_at", "created_at", "updated_at").
		From(patientsTable).
		Where(squirrel.Eq{"clinic_id": clinicID}).
		OrderBy("lastname ASC", "name ASC").
		PlaceholderFormat(squirrel.Dollar)

	patientSQL, patientArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Query(patientSQL, patientArgs...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanPatients(rows)
}

// CountPatients cuenta el padrón completo de la clínica, el denominador de la
// tasa de conversión.
func (r *patientRepository) CountPatients(clinicID string) (int, error) {
	queryBuilder := squirrel.
		Select("COUNT(*)").
		From(patientsTable).
		Where(squirrel.Eq{"clinic_id": clinicID}).
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

func (r *patientRepository) CountAcquiredInRange(clinicID string, from, to time.Time) (int, error) {
	queryBuilder := squirrel.
		Select("COUNT(*)").
		From(patientsTable).
		Where(squirrel.Eq{"clinic_id": clinicID}).
		Where(occurredWithin("acquired_at", from, to)).
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

func (r *patientRepository) ListAcquiredInRange(clinicID string, from, to time.Time) ([]*domain.Patient, error) {
	queryBuilder := squirrel.
		Select("id", "clinic_id", "name", "lastname", "email", "phone", "source", "campaign_name", "referred_by_id", "first_visit_at", "acquired_at", "created_at", "updated_at").
		From(patientsTable).
		Where(squirrel.Eq{"clinic_id": clinicID}).
		Where(occurredWithin("acquired_at", from, to)).
		OrderBy("acquired_at ASC").
		PlaceholderFormat(squirrel.Dollar)

	patientSQL, patientArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Query(patientSQL, patientArgs...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanPatients(rows)
}

func scanPatients(rows *sql.Rows) ([]*domain.Patient, error) {
	var patients []*domain.Patient
	for rows.Next() {
		var patient domain.Patient
		if err := rows.Scan(
			&patient.ID,
			&patient.ClinicID,
			&patient.Name,
			&patient.Lastname,
			&patient.Email,
			&patient.Phone,
			&patient.Source,
			&patient.CampaignName,
			&patient.ReferredByID,
			&patient.FirstVisitAt,
			&patient.AcquiredAt,
			&patient.CreatedAt,
			&patient.UpdatedAt,
		); err != nil {
			return nil, err
		}

		patients = append(patients, &patient)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return patients, nil
}
