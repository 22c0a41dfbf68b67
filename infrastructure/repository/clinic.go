package repository

import (
	"database/sql"

	"github.com/Masterminds/squirrel"

	"github.com/Karasowl/laralis-sub007/infrastructure/database/postgres"
	"github.com/Karasowl/laralis-sub007/internal/domain"
	"github.com/Karasowl/laralis-sub007/pkg/utils"
)

const (
	clinicsTable         = "clinics"
	timeSettingsTable    = "settings_time"
	pricingSettingsTable = "settings_pricing"
)

type ClinicRepository interface {
	CreateClinic(clinic *domain.Clinic) (*domain.Clinic, error)
	GetClinicByID(clinicID string) (*domain.Clinic, error)
}

type clinicRepository struct {
	conn *postgres.Connection
}

func NewClinicRepository(conn *postgres.Connection) ClinicRepository {
	return &clinicRepository{
		conn: conn,
	}
}

func (r *clinicRepository) CreateClinic(clinic *domain.Clinic) (*domain.Clinic, error) {
	id, err := utils.GenerateID()
	if err != nil {
		return nil, err
	}
	clinic.ID = id

	if clinic.Currency == "" {
		clinic.Currency = "MXN"
	}

	queryBuilder := squirrel.
		Insert(clinicsTable).
		Columns("id", "name", "currency").
		Values(clinic.ID, clinic.Name, clinic.Currency).
		PlaceholderFormat(squirrel.Dollar)

	clinicSQL, clinicArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	_, err = r.conn.Exec(clinicSQL, clinicArgs...)
	if err != nil {
		return nil, err
	}

	return clinic, nil
}

func (r *clinicRepository) GetClinicByID(clinicID string) (*domain.Clinic, error) {
	var clinic domain.Clinic
	err := r.conn.QueryRow("SELECT id, name, currency, created_at, updated_at FROM clinics WHERE id = $1", clinicID).Scan(
		&clinic.ID,
		&clinic.Name,
		&clinic.Currency,
		&clinic.CreatedAt,
		&clinic.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &clinic, nil
}

// SettingsRepository guarda la configuración de horario y de tarificación por
// clínica. Son filas únicas por clínica, siempre upsert.
type SettingsRepository interface {
	GetTimeSettings(clinicID string) (*domain.TimeSettings, error)
	UpsertTimeSettings(settings *domain.TimeSettings) error
	GetPricingSettings(clinicID string) (*domain.PricingSettings, error)
	UpsertPricingSettings(settings *domain.PricingSettings) error
}

type settingsRepository struct {
	conn *postgres.Connection
}

func NewSettingsRepository(conn *postgres.Connection) SettingsRepository {
	return &settingsRepository{
		conn: conn,
	}
}

func (r *settingsRepository) GetTimeSettings(clinicID string) (*domain.TimeSettings, error) {
	var settings domain.TimeSettings
	err := r.conn.QueryRow("SELECT clinic_id, work_days, hours_per_day, real_pct, updated_at FROM settings_time WHERE clinic_id = $1", clinicID).Scan(
		&settings.ClinicID,
		&settings.WorkDays,
		&settings.HoursPerDay,
		&settings.RealPct,
		&settings.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &settings, nil
}

func (r *settingsRepository) UpsertTimeSettings(settings *domain.TimeSettings) error {
	queryBuilder := squirrel.
		Insert(timeSettingsTable).
		Columns("clinic_id", "work_days", "hours_per_day", "real_pct").
		Values(settings.ClinicID, settings.WorkDays, settings.HoursPerDay, settings.RealPct).
		Suffix("ON CONFLICT (clinic_id) DO UPDATE SET work_days = EXCLUDED.work_days, hours_per_day = EXCLUDED.hours_per_day, real_pct = EXCLUDED.real_pct, updated_at = NOW()").
		PlaceholderFormat(squirrel.Dollar)

	settingsSQL, settingsArgs, err := queryBuilder.ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn.Exec(settingsSQL, settingsArgs...)
	if err != nil {
		return err
	}

	return nil
}

func (r *settingsRepository) GetPricingSettings(clinicID string) (*domain.PricingSettings, error) {
	var settings domain.PricingSettings
	err := r.conn.QueryRow("SELECT clinic_id, rounding_step_cents, rounding_mode, default_margin_pct, global_discount_type, global_discount_value FROM settings_pricing WHERE clinic_id = $1", clinicID).Scan(
		&settings.ClinicID,
		&settings.RoundingStepCents,
		&settings.RoundingMode,
		&settings.DefaultMarginPct,
		&settings.GlobalDiscountType,
		&settings.GlobalDiscountValue,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &settings, nil
}

func (r *settingsRepository) UpsertPricingSettings(settings *domain.PricingSettings) error {
	queryBuilder := squirrel.
		Insert(pricingSettingsTable).
		Columns("clinic_id", "rounding_step_cents", "rounding_mode", "default_margin_pct", "global_discount_type", "global_discount_value").
		Values(settings.ClinicID, settings.RoundingStepCents, settings.RoundingMode, settings.DefaultMarginPct, settings.GlobalDiscountType, settings.GlobalDiscountValue).
		Suffix("ON CONFLICT (clinic_id) DO UPDATE SET rounding_step_cents = EXCLUDED.rounding_step_cents, rounding_mode = EXCLUDED.rounding_mode, default_margin_pct = EXCLUDED.default_margin_pct, global_discount_type = EXCLUDED.global_discount_type, global_discount_value = EXCLUDED.global_discount_value").
		PlaceholderFormat(squirrel.Dollar)

	settingsSQL, settingsArgs, err := queryBuilder.ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn.Exec(settingsSQL, settingsArgs...)
	if err != nil {
		return err
	}

	return nil
}
