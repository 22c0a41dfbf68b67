package equilibrium

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	repomocks "github.com/Karasowl/laralis-sub007/infrastructure/repository/mocks"
	"github.com/Karasowl/laralis-sub007/internal/domain"
	"github.com/Karasowl/laralis-sub007/internal/usecases/settings"
	settingsmocks "github.com/Karasowl/laralis-sub007/internal/usecases/settings/mocks"
)

const clinicID = "CLI001"

type equilibriumMocks struct {
	configurer    *settingsmocks.MockConfigurer
	tariffRepo    *repomocks.MockTariffRepository
	treatmentRepo *repomocks.MockTreatmentRepository
}

func newEquilibriumService(t *testing.T) (Analyzer, *equilibriumMocks) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	m := &equilibriumMocks{
		configurer:    settingsmocks.NewMockConfigurer(ctrl),
		tariffRepo:    repomocks.NewMockTariffRepository(ctrl),
		treatmentRepo: repomocks.NewMockTreatmentRepository(ctrl),
	}

	svc := NewService(m.configurer, m.tariffRepo, m.treatmentRepo)
	return svc, m
}

func TestBreakEvenUnits(t *testing.T) {
	t.Run("unidades y meta diaria con horario configurado", func(t *testing.T) {
		svc, m := newEquilibriumService(t)

		m.configurer.EXPECT().TotalFixedCostsCents(clinicID).Return(int64(5000000), nil)
		m.configurer.EXPECT().
			GetTimeReport(clinicID).
			Return(&settings.TimeReport{
				Settings: &domain.TimeSettings{ClinicID: clinicID, WorkDays: 22, HoursPerDay: 8, RealPct: 75},
			}, nil)

		report, err := svc.BreakEvenUnits(clinicID, 31408, 105)
		require.NoError(t, err)

		assert.True(t, report.Result.Defined)
		assert.Equal(t, int64(31303), report.Result.ContributionPerUnitCents)
		assert.Equal(t, int64(160), report.Result.UnitsToBreakEven)
		assert.Equal(t, 22, report.WorkingDays)
		assert.Equal(t, int64(8), report.Result.DailyTargetUnits)
	})

	t.Run("sin horario configurado omite la meta diaria", func(t *testing.T) {
		svc, m := newEquilibriumService(t)

		m.configurer.EXPECT().TotalFixedCostsCents(clinicID).Return(int64(5000000), nil)
		m.configurer.EXPECT().GetTimeReport(clinicID).Return(&settings.TimeReport{}, nil)

		report, err := svc.BreakEvenUnits(clinicID, 31408, 105)
		require.NoError(t, err)

		assert.Equal(t, 0, report.WorkingDays)
		assert.Equal(t, int64(0), report.Result.DailyTargetUnits)
	})

	t.Run("precio menor al costo variable no tiene equilibrio", func(t *testing.T) {
		svc, m := newEquilibriumService(t)

		m.configurer.EXPECT().TotalFixedCostsCents(clinicID).Return(int64(5000000), nil)
		m.configurer.EXPECT().GetTimeReport(clinicID).Return(&settings.TimeReport{}, nil)

		report, err := svc.BreakEvenUnits(clinicID, 100, 200)
		require.NoError(t, err)

		assert.False(t, report.Result.Defined)
	})
}

func TestBreakEvenRevenue(t *testing.T) {
	from := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)

	t.Run("pondera la mezcla por volumen de tratamientos", func(t *testing.T) {
		svc, m := newEquilibriumService(t)

		m.configurer.EXPECT().TotalFixedCostsCents(clinicID).Return(int64(1854533), nil)
		m.tariffRepo.EXPECT().
			ListActive(clinicID).
			Return([]*domain.Tariff{
				{ServiceID: "SRV001", VariableCostCents: 3500, RoundedPriceCents: 10000},
				{ServiceID: "SRV002", VariableCostCents: 3500, RoundedPriceCents: 10000},
			}, nil)
		m.treatmentRepo.EXPECT().
			ListTreatments(clinicID, from, to).
			Return([]*domain.Treatment{
				{ServiceID: "SRV001", Status: domain.TreatmentCompleted},
				{ServiceID: "SRV002", Status: domain.TreatmentCompleted},
				{ServiceID: "SRV002", Status: domain.TreatmentCancelled},
			}, nil)
		m.configurer.EXPECT().
			GetTimeReport(clinicID).
			Return(&settings.TimeReport{
				Settings: &domain.TimeSettings{ClinicID: clinicID, WorkDays: 20},
			}, nil)
		m.treatmentRepo.EXPECT().RevenueCentsInRange(clinicID, from, to).Return(int64(3500000), nil)

		report, err := svc.BreakEvenRevenue(clinicID, from, to)
		require.NoError(t, err)

		assert.True(t, report.Defined)
		assert.Equal(t, 35.0, report.AvgVariableCostPct)
		assert.Equal(t, int64(2853128), report.RevenueToBreakEvenCents)
		assert.Equal(t, int64(2853128/20), report.DailyTargetCents)
		assert.Equal(t, int64(3500000), report.ActualRevenueCents)
		assert.Equal(t, int64(646872), report.SafetyMarginCents)
		assert.InDelta(t, 22.67, report.SafetyMarginPct, 0.01)
	})

	t.Run("proporción variable de 100 o más queda indefinida", func(t *testing.T) {
		svc, m := newEquilibriumService(t)

		m.configurer.EXPECT().TotalFixedCostsCents(clinicID).Return(int64(1000000), nil)
		m.tariffRepo.EXPECT().
			ListActive(clinicID).
			Return([]*domain.Tariff{
				{ServiceID: "SRV001", VariableCostCents: 10000, RoundedPriceCents: 10000},
			}, nil)
		m.treatmentRepo.EXPECT().ListTreatments(clinicID, from, to).Return(nil, nil)

		report, err := svc.BreakEvenRevenue(clinicID, from, to)
		require.NoError(t, err)

		assert.False(t, report.Defined)
		assert.Equal(t, int64(0), report.RevenueToBreakEvenCents)
	})

	t.Run("sin tarifas activas", func(t *testing.T) {
		svc, m := newEquilibriumService(t)

		m.configurer.EXPECT().TotalFixedCostsCents(clinicID).Return(int64(1000000), nil)
		m.tariffRepo.EXPECT().ListActive(clinicID).Return(nil, nil)

		_, err := svc.BreakEvenRevenue(clinicID, from, to)
		assert.ErrorIs(t, err, ErrNoActiveTariffs)
	})
}

