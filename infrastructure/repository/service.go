package repository

import (
	"database/sql"

	"github.com/Masterminds/squirrel"

	"github.com/Karasowl/laralis-sub007/infrastructure/database/postgres"
	"github.com/Karasowl/laralis-sub007/internal/domain"
	"github.com/Karasowl/laralis-sub007/pkg/utils"
)

const (
	servicesTable        = "services"
	serviceSuppliesTable = "service_supplies"
)

type ServiceRepository interface {
	CreateService(service *domain.Service) (*domain.Service, error)
	UpdateService(service *domain.Service) error
	GetServiceByID(clinicID, serviceID string) (*domain.Service, error)
	ListServices(clinicID string) ([]*domain.Service, error)
	GetRecipe(clinicID, serviceID string) ([]*domain.ServiceSupply, error)
	ReplaceRecipe(clinicID, serviceID string, lines []*domain.ServiceSupply) error
}

type serviceRepository struct {
	conn *postgres.Connection
}

func NewServiceRepository(conn *postgres.Connection) ServiceRepository {
	return &serviceRepository{
		conn: conn,
	}
}

func (r *serviceRepository) CreateService(service *domain.Service) (*domain.Service, error) {
	id, err := utils.GenerateID()
	if err != nil {
		return nil, err
	}
	service.ID = id
	service.Active = true

	queryBuilder := squirrel.
		Insert(servicesTable).
		Columns("id", "clinic_id", "name", "category", "duration_minutes", "margin_pct", "active").
		Values(service.ID, service.ClinicID, service.Name, service.Category, service.DurationMinutes, service.MarginPct, service.Active).
		PlaceholderFormat(squirrel.Dollar)

	serviceSQL, serviceArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	_, err = r.conn.Exec(serviceSQL, serviceArgs...)
	if err != nil {
		return nil, err
	}

	return service, nil
}

func (r *serviceRepository) UpdateService(service *domain.Service) error {
	queryBuilder := squirrel.
		Update(servicesTable).
		Set("name", service.Name).
		Set("category", service.Category).
		Set("duration_minutes", service.DurationMinutes).
		Set("margin_pct", service.MarginPct).
		Set("active", service.Active).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": service.ID, "clinic_id": service.ClinicID}).
		PlaceholderFormat(squirrel.Dollar)

	serviceSQL, serviceArgs, err := queryBuilder.ToSql()
	if err != nil {
		return err
	}

	result, err := r.conn.Exec(serviceSQL, serviceArgs...)
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

func (r *serviceRepository) GetServiceByID(clinicID, serviceID string) (*domain.Service, error) {
	var service domain.Service
	err := r.conn.QueryRow("SELECT id, clinic_id, name, category, duration_minutes, margin_pct, active, created_at, updated_at FROM services WHERE clinic_id = $1 AND id = $2", clinicID, serviceID).Scan(
		&service.ID,
		&service.ClinicID,
		&service.Name,
		&service.Category,
		&service.DurationMinutes,
		&service.MarginPct,
		&service.Active,
		&service.CreatedAt,
		&service.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &service, nil
}

func (r *serviceRepository) ListServices(clinicID string) ([]*domain.Service, error) {
	queryBuilder := squirrel.
		Select("id", "clinic_id", "name", "category", "duration_minutes", "margin_pct", "active", "created_at", "updated_at").
		From(servicesTable).
		Where(squirrel.Eq{"clinic_id": clinicID}).
		OrderBy("name ASC").
		PlaceholderFormat(squirrel.Dollar)

	serviceSQL, serviceArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Query(serviceSQL, serviceArgs...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var services []*domain.Service
	for rows.Next() {
		var service domain.Service
		if err := rows.Scan(
			&service.ID,
			&service.ClinicID,
			&service.Name,
			&service.Category,
			&service.DurationMinutes,
			&service.MarginPct,
			&service.Active,
			&service.CreatedAt,
			&service.UpdatedAt,
		); err != nil {
			return nil, err
		}

		services = append(services, &service)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return services, nil
}

func (r *serviceRepository) GetRecipe(clinicID, serviceID string) ([]*domain.ServiceSupply, error) {
	queryBuilder := squirrel.
		Select("ss.service_id", "ss.supply_id", "ss.quantity").
		From(serviceSuppliesTable + " ss").
		Join(servicesTable + " s ON s.id = ss.service_id").
		Where(squirrel.Eq{"s.clinic_id": clinicID, "ss.service_id": serviceID}).
		OrderBy("ss.supply_id ASC").
		PlaceholderFormat(squirrel.Dollar)

	recipeSQL, recipeArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Query(recipeSQL, recipeArgs...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var lines []*domain.ServiceSupply
	for rows.Next() {
		var line domain.ServiceSupply
		if err := rows.Scan(&line.ServiceID, &line.SupplyID, &line.Quantity); err != nil {
			return nil, err
		}

		lines = append(lines, &line)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return lines, nil
}

// ReplaceRecipe reemplaza la receta completa en una transacción: la receta es
// un todo, no se editan líneas sueltas.
func (r *serviceRepository) ReplaceRecipe(clinicID, serviceID string, lines []*domain.ServiceSupply) error {
	service, err := r.GetServiceByID(clinicID, serviceID)
	if err != nil {
		return err
	}
	if service == nil {
		return sql.ErrNoRows
	}

	deleteSQL, deleteArgs, err := squirrel.
		Delete(serviceSuppliesTable).
		Where(squirrel.Eq{"service_id": serviceID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	var insertSQL string
	var insertArgs []interface{}
	if len(lines) > 0 {
		insertBuilder := squirrel.
			Insert(serviceSuppliesTable).
			Columns("service_id", "supply_id", "quantity").
			PlaceholderFormat(squirrel.Dollar)
		for _, line := range lines {
			insertBuilder = insertBuilder.Values(serviceID, line.SupplyID, line.Quantity)
		}

		insertSQL, insertArgs, err = insertBuilder.ToSql()
		if err != nil {
			return err
		}
	}

	tx, err := r.conn.DB.Begin()
	if err != nil {
		return err
	}

	if _, err := tx.Exec(deleteSQL, deleteArgs...); err != nil {
		_ = tx.Rollback()
		return err
	}

	if insertSQL != "" {
		if _, err := tx.Exec(insertSQL, insertArgs...); err != nil {
			_ = tx.Rollback()
			return err
		}
	}

	return tx.Commit()
}
