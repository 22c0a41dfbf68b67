package pricing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	repomocks "github.com/Karasowl/laralis-sub007/infrastructure/repository/mocks"
	"github.com/Karasowl/laralis-sub007/internal/calc"
	"github.com/Karasowl/laralis-sub007/internal/domain"
	"github.com/Karasowl/laralis-sub007/internal/usecases/settings"
	settingsmocks "github.com/Karasowl/laralis-sub007/internal/usecases/settings/mocks"
)

const clinicID = "CLI001"

func floatPtr(f float64) *float64 { return &f }

type pricingMocks struct {
	serviceRepo   *repomocks.MockServiceRepository
	supplyRepo    *repomocks.MockSupplyRepository
	tariffRepo    *repomocks.MockTariffRepository
	treatmentRepo *repomocks.MockTreatmentRepository
	configurer    *settingsmocks.MockConfigurer
}

func newPricingService(t *testing.T) (Pricer, *pricingMocks) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	m := &pricingMocks{
		serviceRepo:   repomocks.NewMockServiceRepository(ctrl),
		supplyRepo:    repomocks.NewMockSupplyRepository(ctrl),
		tariffRepo:    repomocks.NewMockTariffRepository(ctrl),
		treatmentRepo: repomocks.NewMockTreatmentRepository(ctrl),
		configurer:    settingsmocks.NewMockConfigurer(ctrl),
	}

	svc := NewService(m.serviceRepo, m.supplyRepo, m.tariffRepo, m.treatmentRepo, m.configurer)
	return svc, m
}

// Limpieza dental: 30 minutos, receta de guantes y gasas, margen propio 65%.
func limpieza() *domain.Service {
	return &domain.Service{
		ID:              "SRV001",
		ClinicID:        clinicID,
		Name:            "Limpieza dental",
		DurationMinutes: 30,
		MarginPct:       floatPtr(65),
		Active:          true,
	}
}

func configuredClinic(m *pricingMocks) {
	m.configurer.EXPECT().
		GetTimeReport(clinicID).
		Return(&settings.TimeReport{
			Settings: &domain.TimeSettings{ClinicID: clinicID, WorkDays: 22, HoursPerDay: 8, RealPct: 75},
			Derived:  &calc.TimeCostResult{FixedPerMinuteCents: 631},
		}, nil).
		AnyTimes()

	m.configurer.EXPECT().
		GetPricingSettings(clinicID).
		Return(&domain.PricingSettings{
			ClinicID:          clinicID,
			RoundingStepCents: 5000,
			RoundingMode:      "nearest",
			DefaultMarginPct:  40,
		}, nil).
		AnyTimes()
}

func recipeWithSupplies(m *pricingMocks) {
	m.serviceRepo.EXPECT().
		GetRecipe(clinicID, "SRV001").
		Return([]*domain.ServiceSupply{
			{ServiceID: "SRV001", SupplyID: "SUP001", Quantity: 1},
			{ServiceID: "SRV001", SupplyID: "SUP002", Quantity: 2},
		}, nil)

	m.supplyRepo.EXPECT().
		GetSuppliesByIDs(clinicID, []string{"SUP001", "SUP002"}).
		Return(map[string]*domain.Supply{
			"SUP001": {ID: "SUP001", PriceCents: 5000, Portions: 100},
			"SUP002": {ID: "SUP002", PriceCents: 2500, Portions: 100},
		}, nil)
}

func TestPreviewTariff(t *testing.T) {
	t.Run("clínica configurada calcula el desglose completo", func(t *testing.T) {
		svc, m := newPricingService(t)

		m.serviceRepo.EXPECT().GetServiceByID(clinicID, "SRV001").Return(limpieza(), nil)
		configuredClinic(m)
		recipeWithSupplies(m)

		quote, err := svc.PreviewTariff(clinicID, PreviewRequest{ServiceID: "SRV001"})
		require.NoError(t, err)

		assert.True(t, quote.Configured)
		assert.Empty(t, quote.Warnings)
		// 30 min x 631 = 18,930; receta 50 + 50 = 100; margen 65% sobre 19,030
		assert.Equal(t, int64(18930), quote.Breakdown.FixedCostCents)
		assert.Equal(t, int64(100), quote.Breakdown.VariableCostCents)
		assert.Equal(t, int64(19030), quote.Breakdown.BaseCostCents)
		assert.Equal(t, quote.Breakdown.BaseCostCents+quote.Breakdown.MarginCents, quote.Breakdown.FinalPriceCents)
		assert.Equal(t, int64(0), quote.Breakdown.RoundedPriceCents%5000)
	})

	t.Run("clínica sin configurar simula con costo fijo cero", func(t *testing.T) {
		svc, m := newPricingService(t)

		m.serviceRepo.EXPECT().GetServiceByID(clinicID, "SRV001").Return(limpieza(), nil)
		m.configurer.EXPECT().GetTimeReport(clinicID).Return(&settings.TimeReport{}, nil)
		m.configurer.EXPECT().
			GetPricingSettings(clinicID).
			Return(&domain.PricingSettings{ClinicID: clinicID, RoundingMode: "nearest", DefaultMarginPct: 40}, nil)
		recipeWithSupplies(m)

		quote, err := svc.PreviewTariff(clinicID, PreviewRequest{ServiceID: "SRV001"})
		require.NoError(t, err)

		assert.False(t, quote.Configured)
		assert.Equal(t, int64(0), quote.Breakdown.FixedCostCents)
		assert.Equal(t, int64(100), quote.Breakdown.VariableCostCents)
	})

	t.Run("los parámetros del request pisan lo guardado", func(t *testing.T) {
		svc, m := newPricingService(t)

		m.serviceRepo.EXPECT().GetServiceByID(clinicID, "SRV001").Return(limpieza(), nil)
		configuredClinic(m)
		recipeWithSupplies(m)

		quote, err := svc.PreviewTariff(clinicID, PreviewRequest{
			ServiceID:         "SRV001",
			MarginPct:         floatPtr(0),
			DurationMinutes:   intPtr(60),
			RoundingStepCents: int64Ptr(0),
		})
		require.NoError(t, err)

		assert.Equal(t, int64(37860), quote.Breakdown.FixedCostCents)
		assert.Equal(t, int64(0), quote.Breakdown.MarginCents)
		assert.Equal(t, quote.Breakdown.FinalPriceCents, quote.Breakdown.RoundedPriceCents)
	})

	t.Run("servicio inexistente", func(t *testing.T) {
		svc, m := newPricingService(t)

		m.serviceRepo.EXPECT().GetServiceByID(clinicID, "SRV404").Return(nil, nil)

		_, err := svc.PreviewTariff(clinicID, PreviewRequest{ServiceID: "SRV404"})
		assert.ErrorIs(t, err, ErrServiceNotFound)
	})
}

func TestSaveTariff(t *testing.T) {
	t.Run("guarda una versión nueva con las cifras calculadas", func(t *testing.T) {
		svc, m := newPricingService(t)

		m.serviceRepo.EXPECT().GetServiceByID(clinicID, "SRV001").Return(limpieza(), nil)
		configuredClinic(m)
		recipeWithSupplies(m)

		m.tariffRepo.EXPECT().
			SaveVersion(gomock.Any()).
			DoAndReturn(func(tariff *domain.Tariff) (*domain.Tariff, error) {
				tariff.ID = "TAR001"
				tariff.Version = 1
				tariff.Active = true
				return tariff, nil
			})

		tariff, err := svc.SaveTariff(clinicID, "SRV001")
		require.NoError(t, err)

		assert.Equal(t, "TAR001", tariff.ID)
		assert.Equal(t, 1, tariff.Version)
		assert.Equal(t, int64(18930), tariff.FixedCostCents)
		assert.Equal(t, int64(100), tariff.VariableCostCents)
		assert.Equal(t, float64(65), tariff.MarginPct)
		assert.Equal(t, string(calc.DiscountNone), tariff.DiscountType)
	})

	t.Run("clínica sin configurar no puede guardar", func(t *testing.T) {
		svc, m := newPricingService(t)

		m.serviceRepo.EXPECT().GetServiceByID(clinicID, "SRV001").Return(limpieza(), nil)
		m.configurer.EXPECT().GetTimeReport(clinicID).Return(&settings.TimeReport{}, nil)
		m.configurer.EXPECT().
			GetPricingSettings(clinicID).
			Return(&domain.PricingSettings{ClinicID: clinicID, RoundingMode: "nearest", DefaultMarginPct: 40}, nil)
		recipeWithSupplies(m)

		_, err := svc.SaveTariff(clinicID, "SRV001")
		assert.ErrorIs(t, err, ErrClinicUnconfigured)
	})
}

func TestUpdateDiscount(t *testing.T) {
	t.Run("tipo válido llega al repositorio", func(t *testing.T) {
		svc, m := newPricingService(t)

		m.tariffRepo.EXPECT().UpdateDiscount(clinicID, "TAR001", "percentage", 10.0).Return(nil)

		err := svc.UpdateDiscount(clinicID, "TAR001", calc.Discount{Type: calc.DiscountPercentage, Value: 10})
		assert.NoError(t, err)
	})

	t.Run("tipo desconocido se rechaza sin tocar el repositorio", func(t *testing.T) {
		svc, _ := newPricingService(t)

		err := svc.UpdateDiscount(clinicID, "TAR001", calc.Discount{Type: "coupon", Value: 10})
		assert.ErrorIs(t, err, calc.ErrInvalidInput)
	})

	t.Run("valor negativo se rechaza", func(t *testing.T) {
		svc, _ := newPricingService(t)

		err := svc.UpdateDiscount(clinicID, "TAR001", calc.Discount{Type: calc.DiscountFixed, Value: -5})
		assert.ErrorIs(t, err, calc.ErrInvalidInput)
	})
}

func TestFreezeTreatment(t *testing.T) {
	t.Run("copia las cifras de la tarifa activa", func(t *testing.T) {
		svc, m := newPricingService(t)

		m.tariffRepo.EXPECT().
			GetActiveByService(clinicID, "SRV001").
			Return(&domain.Tariff{
				ID:                "TAR003",
				ClinicID:          clinicID,
				ServiceID:         "SRV001",
				Version:           3,
				FixedCostCents:    18930,
				VariableCostCents: 100,
				MarginPct:         65,
				FinalPriceCents:   31400,
				RoundedPriceCents: 30000,
				DiscountType:      "percentage",
				DiscountValue:     10,
				Active:            true,
			}, nil)

		m.configurer.EXPECT().
			GetPricingSettings(clinicID).
			Return(&domain.PricingSettings{ClinicID: clinicID}, nil)

		m.treatmentRepo.EXPECT().
			CreateTreatment(gomock.Any()).
			DoAndReturn(func(treatment *domain.Treatment) (*domain.Treatment, error) {
				treatment.ID = "TRT001"
				return treatment, nil
			})

		performedAt := time.Date(2025, 3, 10, 16, 30, 0, 0, time.UTC)
		treatment, err := svc.FreezeTreatment(clinicID, FreezeTreatmentRequest{
			PatientID:   "PAC001",
			ServiceID:   "SRV001",
			PerformedAt: &performedAt,
		})
		require.NoError(t, err)

		assert.Equal(t, "TAR003", treatment.TariffID)
		assert.Equal(t, 3, treatment.TariffVersion)
		assert.Equal(t, int64(30000), treatment.PriceCents)
		assert.Equal(t, int64(3000), treatment.DiscountCents)
		assert.Equal(t, int64(27000), treatment.ChargedCents)
		assert.Equal(t, domain.TreatmentCompleted, treatment.Status)
		assert.Equal(t, performedAt, treatment.PerformedAt)
	})

	t.Run("el descuento global aplica cuando la tarifa no trae propio", func(t *testing.T) {
		svc, m := newPricingService(t)

		m.tariffRepo.EXPECT().
			GetActiveByService(clinicID, "SRV001").
			Return(&domain.Tariff{
				ID:                "TAR003",
				ClinicID:          clinicID,
				ServiceID:         "SRV001",
				Version:           3,
				RoundedPriceCents: 30000,
				DiscountType:      "none",
				Active:            true,
			}, nil)

		m.configurer.EXPECT().
			GetPricingSettings(clinicID).
			Return(&domain.PricingSettings{
				ClinicID:            clinicID,
				GlobalDiscountType:  "fixed",
				GlobalDiscountValue: 2000,
			}, nil)

		m.treatmentRepo.EXPECT().
			CreateTreatment(gomock.Any()).
			DoAndReturn(func(treatment *domain.Treatment) (*domain.Treatment, error) {
				return treatment, nil
			})

		treatment, err := svc.FreezeTreatment(clinicID, FreezeTreatmentRequest{PatientID: "PAC001", ServiceID: "SRV001"})
		require.NoError(t, err)

		assert.Equal(t, int64(2000), treatment.DiscountCents)
		assert.Equal(t, int64(28000), treatment.ChargedCents)
	})

	t.Run("sin tarifa activa no hay tratamiento", func(t *testing.T) {
		svc, m := newPricingService(t)

		m.tariffRepo.EXPECT().GetActiveByService(clinicID, "SRV001").Return(nil, nil)

		_, err := svc.FreezeTreatment(clinicID, FreezeTreatmentRequest{PatientID: "PAC001", ServiceID: "SRV001"})
		assert.ErrorIs(t, err, ErrTariffNotFound)
	})
}

func intPtr(i int) *int       { return &i }
func int64Ptr(i int64) *int64 { return &i }
