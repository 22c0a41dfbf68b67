package catalog

import (
	"time"

	"github.com/pkg/errors"

	"github.com/Karasowl/laralis-sub007/infrastructure/repository"
	"github.com/Karasowl/laralis-sub007/internal/domain"
)

// Errores de validación del catálogo de la clínica.
var (
	ErrInvalidInput = errors.New("datos inválidos")
	ErrNotFound     = errors.New("recurso no encontrado")
)

var fixedCostCategories = map[string]bool{
	domain.FixedCostRent:      true,
	domain.FixedCostSalaries:  true,
	domain.FixedCostUtilities: true,
	domain.FixedCostInsurance: true,
	domain.FixedCostEducation: true,
	domain.FixedCostOther:     true,
}

var patientSources = map[string]bool{
	domain.SourceCampaign: true,
	domain.SourceReferral: true,
	domain.SourceOrganic:  true,
	domain.SourceWalkIn:   true,
}

// Cataloger administra los recursos maestros de la clínica: insumos,
// servicios con sus recetas, costos fijos, activos, pacientes y gastos.
type Cataloger interface {
	CreateSupply(clinicID string, supply *domain.Supply) (*domain.Supply, error)
	UpdateSupply(clinicID string, supply *domain.Supply) error
	DeleteSupply(clinicID, supplyID string) error
	ListSupplies(clinicID string) ([]*domain.Supply, error)

	CreateService(clinicID string, service *domain.Service) (*domain.Service, error)
	UpdateService(clinicID string, service *domain.Service) error
	GetService(clinicID, serviceID string) (*domain.Service, error)
	ListServices(clinicID string) ([]*domain.Service, error)
	GetRecipe(clinicID, serviceID string) ([]*domain.ServiceSupply, error)
	ReplaceRecipe(clinicID, serviceID string, lines []*domain.ServiceSupply) error

	CreateFixedCost(clinicID string, cost *domain.FixedCost) (*domain.FixedCost, error)
	UpdateFixedCost(clinicID string, cost *domain.FixedCost) error
	DeleteFixedCost(clinicID, costID string) error
	ListFixedCosts(clinicID string) ([]*domain.FixedCost, error)

	CreateAsset(clinicID string, asset *domain.Asset) (*domain.Asset, error)
	ListAssets(clinicID string) ([]*domain.Asset, error)
	DeleteAsset(clinicID, assetID string) error

	CreatePatient(clinicID string, patient *domain.Patient) (*domain.Patient, error)
	GetPatient(clinicID, patientID string) (*domain.Patient, error)
	ListPatients(clinicID string) ([]*domain.Patient, error)

	CreateExpense(clinicID string, expense *domain.Expense) (*domain.Expense, error)
	ListMarketingExpenses(clinicID string, from, to time.Time) ([]*domain.Expense, error)

	ListTreatments(clinicID string, from, to time.Time) ([]*domain.Treatment, error)
}

type Service struct {
	supplyRepo    repository.SupplyRepository
	serviceRepo   repository.ServiceRepository
	fixedCostRepo repository.FixedCostRepository
	assetRepo     repository.AssetRepository
	patientRepo   repository.PatientRepository
	expenseRepo   repository.ExpenseRepository
	treatmentRepo repository.TreatmentRepository
}

func NewService(
	supplyRepo repository.SupplyRepository,
	serviceRepo repository.ServiceRepository,
	fixedCostRepo repository.FixedCostRepository,
	assetRepo repository.AssetRepository,
	patientRepo repository.PatientRepository,
	expenseRepo repository.ExpenseRepository,
	treatmentRepo repository.TreatmentRepository,
) Cataloger {
	return &Service{
		supplyRepo:    supplyRepo,
		serviceRepo:   serviceRepo,
		fixedCostRepo: fixedCostRepo,
		assetRepo:     assetRepo,
		patientRepo:   patientRepo,
		expenseRepo:   expenseRepo,
		treatmentRepo: treatmentRepo,
	}
}

func (s *Service) CreateSupply(clinicID string, supply *domain.Supply) (*domain.Supply, error) {
	if err := validateSupply(supply); err != nil {
		return nil, err
	}
	supply.ClinicID = clinicID
	return s.supplyRepo.CreateSupply(supply)
}

func (s *Service) UpdateSupply(clinicID string, supply *domain.Supply) error {
	if err := validateSupply(supply); err != nil {
		return err
	}
	supply.ClinicID = clinicID
	return s.supplyRepo.UpdateSupply(supply)
}

func (s *Service) DeleteSupply(clinicID, supplyID string) error {
	return s.supplyRepo.DeleteSupply(clinicID, supplyID)
}

func (s *Service) ListSupplies(clinicID string) ([]*domain.Supply, error) {
	return s.supplyRepo.ListSupplies(clinicID)
}

func validateSupply(supply *domain.Supply) error {
	if supply.Name == "" {
		return errors.Wrap(ErrInvalidInput, "el nombre del insumo es obligatorio")
	}
	if supply.PriceCents < 0 {
		return errors.Wrap(ErrInvalidInput, "el precio del insumo no puede ser negativo")
	}
	if supply.Portions <= 0 {
		return errors.Wrap(ErrInvalidInput, "las porciones del insumo deben ser positivas")
	}
	return nil
}

func (s *Service) CreateService(clinicID string, service *domain.Service) (*domain.Service, error) {
	if err := validateService(service); err != nil {
		return nil, err
	}
	service.ClinicID = clinicID
	return s.serviceRepo.CreateService(service)
}

func (s *Service) UpdateService(clinicID string, service *domain.Service) error {
	if err := validateService(service); err != nil {
		return err
	}
	service.ClinicID = clinicID
	return s.serviceRepo.UpdateService(service)
}

func (s *Service) GetService(clinicID, serviceID string) (*domain.Service, error) {
	service, err := s.serviceRepo.GetServiceByID(clinicID, serviceID)
	if err != nil {
		return nil, err
	}
	if service == nil {
		return nil, ErrNotFound
	}
	return service, nil
}

func (s *Service) ListServices(clinicID string) ([]*domain.Service, error) {
	return s.serviceRepo.ListServices(clinicID)
}

func (s *Service) GetRecipe(clinicID, serviceID string) ([]*domain.ServiceSupply, error) {
	return s.serviceRepo.GetRecipe(clinicID, serviceID)
}

// ReplaceRecipe sustituye la receta completa del servicio. Las cantidades
// deben ser positivas; los insumos referenciados pueden no existir todavía,
// eso lo reporta el cálculo de costo variable como advertencia.
func (s *Service) ReplaceRecipe(clinicID, serviceID string, lines []*domain.ServiceSupply) error {
	for _, line := range lines {
		if line.SupplyID == "" {
			return errors.Wrap(ErrInvalidInput, "cada línea de la receta necesita un insumo")
		}
		if line.Quantity <= 0 {
			return errors.Wrap(ErrInvalidInput, "la cantidad de cada línea debe ser positiva")
		}
	}
	return s.serviceRepo.ReplaceRecipe(clinicID, serviceID, lines)
}

func validateService(service *domain.Service) error {
	if service.Name == "" {
		return errors.Wrap(ErrInvalidInput, "el nombre del servicio es obligatorio")
	}
	if service.DurationMinutes <= 0 {
		return errors.Wrap(ErrInvalidInput, "la duración del servicio debe ser positiva")
	}
	if service.MarginPct != nil && *service.MarginPct < 0 {
		return errors.Wrap(ErrInvalidInput, "el margen del servicio no puede ser negativo")
	}
	return nil
}

func (s *Service) CreateFixedCost(clinicID string, cost *domain.FixedCost) (*domain.FixedCost, error) {
	if err := validateFixedCost(cost); err != nil {
		return nil, err
	}
	cost.ClinicID = clinicID
	return s.fixedCostRepo.CreateFixedCost(cost)
}

func (s *Service) UpdateFixedCost(clinicID string, cost *domain.FixedCost) error {
	if err := validateFixedCost(cost); err != nil {
		return err
	}
	cost.ClinicID = clinicID
	return s.fixedCostRepo.UpdateFixedCost(cost)
}

func (s *Service) DeleteFixedCost(clinicID, costID string) error {
	return s.fixedCostRepo.DeleteFixedCost(clinicID, costID)
}

func (s *Service) ListFixedCosts(clinicID string) ([]*domain.FixedCost, error) {
	return s.fixedCostRepo.ListFixedCosts(clinicID)
}

func validateFixedCost(cost *domain.FixedCost) error {
	if cost.Concept == "" {
		return errors.Wrap(ErrInvalidInput, "el concepto del costo fijo es obligatorio")
	}
	if cost.AmountCents < 0 {
		return errors.Wrap(ErrInvalidInput, "el monto del costo fijo no puede ser negativo")
	}
	if !fixedCostCategories[cost.Category] {
		return errors.Wrapf(ErrInvalidInput, "categoría de costo fijo desconocida %q", cost.Category)
	}
	return nil
}

func (s *Service) CreateAsset(clinicID string, asset *domain.Asset) (*domain.Asset, error) {
	if asset.Name == "" {
		return nil, errors.Wrap(ErrInvalidInput, "el nombre del activo es obligatorio")
	}
	if asset.PriceCents < 0 {
		return nil, errors.Wrap(ErrInvalidInput, "el precio del activo no puede ser negativo")
	}
	if asset.DepreciationMonths <= 0 {
		return nil, errors.Wrap(ErrInvalidInput, "los meses de depreciación deben ser positivos")
	}
	asset.ClinicID = clinicID
	return s.assetRepo.CreateAsset(asset)
}

func (s *Service) ListAssets(clinicID string) ([]*domain.Asset, error) {
	return s.assetRepo.ListAssets(clinicID)
}

func (s *Service) DeleteAsset(clinicID, assetID string) error {
	return s.assetRepo.DeleteAsset(clinicID, assetID)
}

func (s *Service) CreatePatient(clinicID string, patient *domain.Patient) (*domain.Patient, error) {
	if patient.Name == "" {
		return nil, errors.Wrap(ErrInvalidInput, "el nombre del paciente es obligatorio")
	}
	if patient.Source != "" && !patientSources[patient.Source] {
		return nil, errors.Wrapf(ErrInvalidInput, "fuente de adquisición desconocida %q", patient.Source)
	}
	patient.ClinicID = clinicID
	return s.patientRepo.CreatePatient(patient)
}

func (s *Service) GetPatient(clinicID, patientID string) (*domain.Patient, error) {
	patient, err := s.patientRepo.GetPatientByID(clinicID, patientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, ErrNotFound
	}
	return patient, nil
}

func (s *Service) ListPatients(clinicID string) ([]*domain.Patient, error) {
	return s.patientRepo.ListPatients(clinicID)
}

func (s *Service) CreateExpense(clinicID string, expense *domain.Expense) (*domain.Expense, error) {
	if expense.Concept == "" {
		return nil, errors.Wrap(ErrInvalidInput, "el concepto del gasto es obligatorio")
	}
	if expense.AmountCents < 0 {
		return nil, errors.Wrap(ErrInvalidInput, "el monto del gasto no puede ser negativo")
	}
	if expense.SpentAt.IsZero() {
		expense.SpentAt = time.Now().UTC()
	}
	expense.ClinicID = clinicID
	return s.expenseRepo.CreateExpense(expense)
}

func (s *Service) ListMarketingExpenses(clinicID string, from, to time.Time) ([]*domain.Expense, error) {
	return s.expenseRepo.ListMarketingInRange(clinicID, from, to)
}

func (s *Service) ListTreatments(clinicID string, from, to time.Time) ([]*domain.Treatment, error) {
	return s.treatmentRepo.ListTreatments(clinicID, from, to)
}
