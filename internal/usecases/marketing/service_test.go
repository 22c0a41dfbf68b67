package marketing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/Karasowl/laralis-sub007/infrastructure/repository/mocks"
	"github.com/Karasowl/laralis-sub007/internal/calc"
	"github.com/Karasowl/laralis-sub007/internal/domain"
)

const clinicID = "CLI001"

type marketingMocks struct {
	patientRepo   *mocks.MockPatientRepository
	expenseRepo   *mocks.MockExpenseRepository
	treatmentRepo *mocks.MockTreatmentRepository
	snapshotRepo  *mocks.MockMarketingSnapshotRepository
}

func newMarketingService(t *testing.T) (Metricer, *marketingMocks) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	m := &marketingMocks{
		patientRepo:   mocks.NewMockPatientRepository(ctrl),
		expenseRepo:   mocks.NewMockExpenseRepository(ctrl),
		treatmentRepo: mocks.NewMockTreatmentRepository(ctrl),
		snapshotRepo:  mocks.NewMockMarketingSnapshotRepository(ctrl),
	}

	svc := NewService(m.patientRepo, m.expenseRepo, m.treatmentRepo, m.snapshotRepo)
	return svc, m
}

func TestMetrics(t *testing.T) {
	from := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)

	t.Run("mes con actividad normal", func(t *testing.T) {
		svc, m := newMarketingService(t)

		m.patientRepo.EXPECT().CountAcquiredInRange(clinicID, from, to).Return(20, nil)
		m.treatmentRepo.EXPECT().CountPatientsTreatedInRange(clinicID, from, to).Return(15, nil)
		m.patientRepo.EXPECT().CountPatients(clinicID).Return(20, nil)
		m.expenseRepo.EXPECT().MarketingTotalCentsInRange(clinicID, from, to).Return(int64(1000000), nil)
		m.treatmentRepo.EXPECT().RevenueCentsInRange(clinicID, from, to).Return(int64(2400000), nil)

		report, err := svc.Metrics(clinicID, from, to)
		require.NoError(t, err)

		assert.Equal(t, int64(50000), report.CACCents)
		assert.Equal(t, int64(160000), report.LTVCents)
		assert.Equal(t, 20, report.TotalPatients)
		assert.Equal(t, 75.0, report.ConversionRatePct)
		assert.Equal(t, 3.2, report.LTVCACRatio)
		assert.False(t, report.RatioUnbounded)
		assert.Equal(t, "excellent", report.RatioQuality.Label)
		assert.True(t, report.ROIDefined)
		assert.Equal(t, 140.0, report.ROIPct)
	})

	t.Run("mes sin gasto de marketing marca el ratio sin cota", func(t *testing.T) {
		svc, m := newMarketingService(t)

		m.patientRepo.EXPECT().CountAcquiredInRange(clinicID, from, to).Return(5, nil)
		m.treatmentRepo.EXPECT().CountPatientsTreatedInRange(clinicID, from, to).Return(5, nil)
		m.patientRepo.EXPECT().CountPatients(clinicID).Return(10, nil)
		m.expenseRepo.EXPECT().MarketingTotalCentsInRange(clinicID, from, to).Return(int64(0), nil)
		m.treatmentRepo.EXPECT().RevenueCentsInRange(clinicID, from, to).Return(int64(500000), nil)

		report, err := svc.Metrics(clinicID, from, to)
		require.NoError(t, err)

		assert.Equal(t, int64(0), report.CACCents)
		assert.True(t, report.RatioUnbounded)
		assert.Equal(t, "excellent", report.RatioQuality.Label)
		assert.False(t, report.ROIDefined)
	})

	t.Run("más tratados que altas mantiene la conversión acotada", func(t *testing.T) {
		svc, m := newMarketingService(t)

		// 60 pacientes de cartera atendidos con solo 10 altas en el mes: la
		// conversión se mide contra el padrón completo, nunca contra las altas
		m.patientRepo.EXPECT().CountAcquiredInRange(clinicID, from, to).Return(10, nil)
		m.treatmentRepo.EXPECT().CountPatientsTreatedInRange(clinicID, from, to).Return(60, nil)
		m.patientRepo.EXPECT().CountPatients(clinicID).Return(80, nil)
		m.expenseRepo.EXPECT().MarketingTotalCentsInRange(clinicID, from, to).Return(int64(200000), nil)
		m.treatmentRepo.EXPECT().RevenueCentsInRange(clinicID, from, to).Return(int64(3000000), nil)

		report, err := svc.Metrics(clinicID, from, to)
		require.NoError(t, err)

		assert.Equal(t, 75.0, report.ConversionRatePct)
		assert.GreaterOrEqual(t, report.ConversionRatePct, 0.0)
		assert.LessOrEqual(t, report.ConversionRatePct, 100.0)
	})
}

func TestCACTrend(t *testing.T) {
	svc, m := newMarketingService(t)

	from := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC)

	m.expenseRepo.EXPECT().
		ListMarketingInRange(clinicID, from, to).
		Return([]*domain.Expense{
			{ClinicID: clinicID, AmountCents: 300000, SpentAt: time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)},
			{ClinicID: clinicID, AmountCents: 200000, SpentAt: time.Date(2025, 1, 25, 0, 0, 0, 0, time.UTC)},
			{ClinicID: clinicID, AmountCents: 400000, SpentAt: time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC)},
		}, nil)

	m.patientRepo.EXPECT().
		ListAcquiredInRange(clinicID, from, to).
		Return([]*domain.Patient{
			{ClinicID: clinicID, AcquiredAt: time.Date(2025, 1, 12, 0, 0, 0, 0, time.UTC)},
			{ClinicID: clinicID, AcquiredAt: time.Date(2025, 1, 28, 0, 0, 0, 0, time.UTC)},
			{ClinicID: clinicID, AcquiredAt: time.Date(2025, 3, 7, 0, 0, 0, 0, time.UTC)},
			{ClinicID: clinicID, AcquiredAt: time.Date(2025, 3, 20, 0, 0, 0, 0, time.UTC)},
		}, nil)

	report, err := svc.CACTrend(clinicID, from, to, calc.GranularityMonth)
	require.NoError(t, err)
	require.Len(t, report.Points, 3)

	// Enero: 500,000 entre 2 pacientes
	assert.Equal(t, "2025-01", report.Points[0].Label)
	assert.Equal(t, int64(500000), report.Points[0].ExpenseCents)
	assert.Equal(t, int64(2), report.Points[0].NewPatients)
	assert.Equal(t, int64(250000), report.Points[0].CACCents)

	// Febrero sin actividad queda en cero, no desaparece de la serie
	assert.Equal(t, int64(0), report.Points[1].ExpenseCents)
	assert.Equal(t, int64(0), report.Points[1].NewPatients)
	assert.Equal(t, int64(0), report.Points[1].CACCents)

	// Marzo: 400,000 entre 2 pacientes
	assert.Equal(t, int64(200000), report.Points[2].CACCents)
}

func TestAcquisitionTrends(t *testing.T) {
	t.Run("serie mensual con proyección y desglose por fuente", func(t *testing.T) {
		svc, m := newMarketingService(t)

		from := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
		to := time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC)

		// 2, 4 y 6 altas: tendencia lineal perfecta de pendiente 2
		patients := []*domain.Patient{
			{Source: domain.SourceCampaign, AcquiredAt: time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)},
			{Source: domain.SourceOrganic, AcquiredAt: time.Date(2025, 1, 20, 0, 0, 0, 0, time.UTC)},
			{Source: domain.SourceCampaign, AcquiredAt: time.Date(2025, 2, 3, 0, 0, 0, 0, time.UTC)},
			{Source: domain.SourceCampaign, AcquiredAt: time.Date(2025, 2, 10, 0, 0, 0, 0, time.UTC)},
			{Source: domain.SourceReferral, AcquiredAt: time.Date(2025, 2, 17, 0, 0, 0, 0, time.UTC)},
			{Source: domain.SourceOrganic, AcquiredAt: time.Date(2025, 2, 24, 0, 0, 0, 0, time.UTC)},
			{Source: domain.SourceCampaign, AcquiredAt: time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC)},
			{Source: domain.SourceCampaign, AcquiredAt: time.Date(2025, 3, 8, 0, 0, 0, 0, time.UTC)},
			{Source: domain.SourceCampaign, AcquiredAt: time.Date(2025, 3, 13, 0, 0, 0, 0, time.UTC)},
			{Source: domain.SourceReferral, AcquiredAt: time.Date(2025, 3, 18, 0, 0, 0, 0, time.UTC)},
			{Source: domain.SourceOrganic, AcquiredAt: time.Date(2025, 3, 23, 0, 0, 0, 0, time.UTC)},
			{Source: domain.SourceWalkIn, AcquiredAt: time.Date(2025, 3, 28, 0, 0, 0, 0, time.UTC)},
		}

		m.patientRepo.EXPECT().ListAcquiredInRange(clinicID, from, to).Return(patients, nil)

		report, err := svc.AcquisitionTrends(clinicID, from, to, 2)
		require.NoError(t, err)

		assert.Equal(t, []string{"2025-01", "2025-02", "2025-03"}, report.Labels)
		assert.Equal(t, []int64{2, 4, 6}, report.NewPatients)
		assert.True(t, report.TrendReliable)
		assert.Equal(t, []int64{8, 10}, report.Projected)
		assert.Equal(t, 50.0, report.GrowthRatePct)
		assert.Equal(t, int64(6), report.BySource[domain.SourceCampaign])
		assert.Equal(t, int64(3), report.BySource[domain.SourceOrganic])
		assert.Equal(t, int64(2), report.BySource[domain.SourceReferral])
		assert.Equal(t, int64(1), report.BySource[domain.SourceWalkIn])
	})

	t.Run("un solo mes de historia no proyecta", func(t *testing.T) {
		svc, m := newMarketingService(t)

		from := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
		to := time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC)

		m.patientRepo.EXPECT().
			ListAcquiredInRange(clinicID, from, to).
			Return([]*domain.Patient{{Source: domain.SourceOrganic, AcquiredAt: from}}, nil)

		report, err := svc.AcquisitionTrends(clinicID, from, to, 3)
		require.NoError(t, err)

		assert.False(t, report.TrendReliable)
		assert.Nil(t, report.Projected)
	})
}

func TestComputeMonthlySnapshot(t *testing.T) {
	svc, m := newMarketingService(t)

	from := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	m.patientRepo.EXPECT().CountAcquiredInRange(clinicID, from, to).Return(10, nil)
	m.treatmentRepo.EXPECT().CountPatientsTreatedInRange(clinicID, from, to).Return(8, nil)
	m.patientRepo.EXPECT().CountPatients(clinicID).Return(30, nil)
	m.expenseRepo.EXPECT().MarketingTotalCentsInRange(clinicID, from, to).Return(int64(500000), nil)
	m.treatmentRepo.EXPECT().RevenueCentsInRange(clinicID, from, to).Return(int64(1600000), nil)

	m.snapshotRepo.EXPECT().
		SaveOrUpdateSnapshot(gomock.Any()).
		DoAndReturn(func(snapshot *domain.MarketingSnapshot) error {
			assert.Equal(t, clinicID, snapshot.ClinicID)
			assert.Equal(t, 2025, snapshot.Year)
			assert.Equal(t, 2, snapshot.Month)
			assert.Equal(t, 10, snapshot.NewPatients)
			assert.Equal(t, int64(50000), snapshot.CACCents)
			assert.Equal(t, int64(200000), snapshot.LTVCents)
			return nil
		})

	snapshot, err := svc.ComputeMonthlySnapshot(clinicID, 2025, time.February)
	require.NoError(t, err)

	assert.Equal(t, int64(500000), snapshot.MarketingExpenseCents)
	assert.Equal(t, int64(1600000), snapshot.RevenueCents)
}
