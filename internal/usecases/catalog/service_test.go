package catalog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	repomocks "github.com/Karasowl/laralis-sub007/infrastructure/repository/mocks"
	"github.com/Karasowl/laralis-sub007/internal/domain"
)

const clinicID = "CLI001"

type catalogMocks struct {
	supplyRepo    *repomocks.MockSupplyRepository
	serviceRepo   *repomocks.MockServiceRepository
	fixedCostRepo *repomocks.MockFixedCostRepository
	assetRepo     *repomocks.MockAssetRepository
	patientRepo   *repomocks.MockPatientRepository
	expenseRepo   *repomocks.MockExpenseRepository
	treatmentRepo *repomocks.MockTreatmentRepository
}

func newCatalogService(t *testing.T) (Cataloger, *catalogMocks) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	m := &catalogMocks{
		supplyRepo:    repomocks.NewMockSupplyRepository(ctrl),
		serviceRepo:   repomocks.NewMockServiceRepository(ctrl),
		fixedCostRepo: repomocks.NewMockFixedCostRepository(ctrl),
		assetRepo:     repomocks.NewMockAssetRepository(ctrl),
		patientRepo:   repomocks.NewMockPatientRepository(ctrl),
		expenseRepo:   repomocks.NewMockExpenseRepository(ctrl),
		treatmentRepo: repomocks.NewMockTreatmentRepository(ctrl),
	}

	svc := NewService(
		m.supplyRepo,
		m.serviceRepo,
		m.fixedCostRepo,
		m.assetRepo,
		m.patientRepo,
		m.expenseRepo,
		m.treatmentRepo,
	)
	return svc, m
}

func TestCreateSupply(t *testing.T) {
	t.Run("asigna la clínica del solicitante antes de persistir", func(t *testing.T) {
		svc, m := newCatalogService(t)

		m.supplyRepo.EXPECT().
			CreateSupply(gomock.Any()).
			DoAndReturn(func(supply *domain.Supply) (*domain.Supply, error) {
				assert.Equal(t, clinicID, supply.ClinicID)
				supply.ID = "SUP001"
				return supply, nil
			})

		supply, err := svc.CreateSupply(clinicID, &domain.Supply{
			Name:       "Guantes de nitrilo",
			PriceCents: 5000,
			Portions:   100,
		})
		require.NoError(t, err)
		assert.Equal(t, "SUP001", supply.ID)
	})

	t.Run("rechaza insumo sin nombre", func(t *testing.T) {
		svc, _ := newCatalogService(t)

		_, err := svc.CreateSupply(clinicID, &domain.Supply{PriceCents: 5000, Portions: 100})
		require.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("rechaza porciones no positivas", func(t *testing.T) {
		svc, _ := newCatalogService(t)

		_, err := svc.CreateSupply(clinicID, &domain.Supply{Name: "Gasas", PriceCents: 2500})
		require.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestCreateService(t *testing.T) {
	t.Run("rechaza duración no positiva", func(t *testing.T) {
		svc, _ := newCatalogService(t)

		_, err := svc.CreateService(clinicID, &domain.Service{Name: "Limpieza"})
		require.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("rechaza margen propio negativo", func(t *testing.T) {
		svc, _ := newCatalogService(t)

		margin := -5.0
		_, err := svc.CreateService(clinicID, &domain.Service{
			Name:            "Limpieza",
			DurationMinutes: 30,
			MarginPct:       &margin,
		})
		require.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestGetService(t *testing.T) {
	t.Run("servicio inexistente devuelve ErrNotFound", func(t *testing.T) {
		svc, m := newCatalogService(t)

		m.serviceRepo.EXPECT().
			GetServiceByID(clinicID, "SRV404").
			Return(nil, nil)

		_, err := svc.GetService(clinicID, "SRV404")
		require.ErrorIs(t, err, ErrNotFound)
	})
}

func TestReplaceRecipe(t *testing.T) {
	t.Run("receta válida llega al repositorio", func(t *testing.T) {
		svc, m := newCatalogService(t)

		lines := []*domain.ServiceSupply{
			{SupplyID: "SUP001", Quantity: 1},
			{SupplyID: "SUP002", Quantity: 2.5},
		}

		m.serviceRepo.EXPECT().
			ReplaceRecipe(clinicID, "SRV001", lines).
			Return(nil)

		require.NoError(t, svc.ReplaceRecipe(clinicID, "SRV001", lines))
	})

	t.Run("línea sin insumo corta antes de persistir", func(t *testing.T) {
		svc, _ := newCatalogService(t)

		err := svc.ReplaceRecipe(clinicID, "SRV001", []*domain.ServiceSupply{
			{Quantity: 1},
		})
		require.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("cantidad no positiva corta antes de persistir", func(t *testing.T) {
		svc, _ := newCatalogService(t)

		err := svc.ReplaceRecipe(clinicID, "SRV001", []*domain.ServiceSupply{
			{SupplyID: "SUP001", Quantity: 0},
		})
		require.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestCreateFixedCost(t *testing.T) {
	t.Run("categoría conocida pasa", func(t *testing.T) {
		svc, m := newCatalogService(t)

		m.fixedCostRepo.EXPECT().
			CreateFixedCost(gomock.Any()).
			DoAndReturn(func(cost *domain.FixedCost) (*domain.FixedCost, error) {
				assert.Equal(t, clinicID, cost.ClinicID)
				return cost, nil
			})

		_, err := svc.CreateFixedCost(clinicID, &domain.FixedCost{
			Concept:     "Renta del consultorio",
			Category:    domain.FixedCostRent,
			AmountCents: 2000000,
		})
		require.NoError(t, err)
	})

	t.Run("categoría desconocida es rechazada", func(t *testing.T) {
		svc, _ := newCatalogService(t)

		_, err := svc.CreateFixedCost(clinicID, &domain.FixedCost{
			Concept:     "Otro",
			Category:    "cripto",
			AmountCents: 1000,
		})
		require.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestCreatePatient(t *testing.T) {
	t.Run("fuente de adquisición desconocida es rechazada", func(t *testing.T) {
		svc, _ := newCatalogService(t)

		_, err := svc.CreatePatient(clinicID, &domain.Patient{
			Name:   "Ana García",
			Source: "televisión",
		})
		require.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("fuente vacía es válida", func(t *testing.T) {
		svc, m := newCatalogService(t)

		m.patientRepo.EXPECT().
			CreatePatient(gomock.Any()).
			DoAndReturn(func(patient *domain.Patient) (*domain.Patient, error) {
				assert.Equal(t, clinicID, patient.ClinicID)
				return patient, nil
			})

		_, err := svc.CreatePatient(clinicID, &domain.Patient{Name: "Ana García"})
		require.NoError(t, err)
	})
}

func TestCreateExpense(t *testing.T) {
	t.Run("fecha ausente se completa con ahora", func(t *testing.T) {
		svc, m := newCatalogService(t)

		var saved *domain.Expense
		m.expenseRepo.EXPECT().
			CreateExpense(gomock.Any()).
			DoAndReturn(func(expense *domain.Expense) (*domain.Expense, error) {
				saved = expense
				return expense, nil
			})

		before := time.Now().UTC()
		_, err := svc.CreateExpense(clinicID, &domain.Expense{
			Concept:     "Campaña de redes",
			Category:    domain.ExpenseCategoryMarketing,
			AmountCents: 150000,
		})
		require.NoError(t, err)
		require.NotNil(t, saved)
		assert.False(t, saved.SpentAt.Before(before))
	})

	t.Run("monto negativo es rechazado", func(t *testing.T) {
		svc, _ := newCatalogService(t)

		_, err := svc.CreateExpense(clinicID, &domain.Expense{
			Concept:     "Campaña",
			AmountCents: -1,
		})
		require.ErrorIs(t, err, ErrInvalidInput)
	})
}
