package scheduler

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/Karasowl/laralis-sub007/infrastructure/repository/mocks"
	"github.com/Karasowl/laralis-sub007/internal/domain"
	"github.com/Karasowl/laralis-sub007/internal/usecases/marketing"
)

func newSyncService(t *testing.T) (*MonthlyMetricsSyncService, *mocks.MockPatientRepository, *mocks.MockExpenseRepository, *mocks.MockTreatmentRepository, *mocks.MockMarketingSnapshotRepository) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	patientRepo := mocks.NewMockPatientRepository(ctrl)
	expenseRepo := mocks.NewMockExpenseRepository(ctrl)
	treatmentRepo := mocks.NewMockTreatmentRepository(ctrl)
	snapshotRepo := mocks.NewMockMarketingSnapshotRepository(ctrl)

	metricsService := marketing.NewService(patientRepo, expenseRepo, treatmentRepo, snapshotRepo)

	service := &MonthlyMetricsSyncService{
		metricsService: metricsService,
		snapshotRepo:   snapshotRepo,
		config:         MonthlyMetricsSyncConfig{SyncEnabled: true},
	}

	return service, patientRepo, expenseRepo, treatmentRepo, snapshotRepo
}

func TestSyncPreviousMonth(t *testing.T) {
	t.Run("genera el corte del mes anterior para cada clínica", func(t *testing.T) {
		service, patientRepo, expenseRepo, treatmentRepo, snapshotRepo := newSyncService(t)

		snapshotRepo.EXPECT().ListClinicIDs().Return([]string{"CLI001", "CLI002"}, nil)

		patientRepo.EXPECT().CountAcquiredInRange(gomock.Any(), gomock.Any(), gomock.Any()).Return(10, nil).Times(2)
		treatmentRepo.EXPECT().CountPatientsTreatedInRange(gomock.Any(), gomock.Any(), gomock.Any()).Return(8, nil).Times(2)
		patientRepo.EXPECT().CountPatients(gomock.Any()).Return(40, nil).Times(2)
		expenseRepo.EXPECT().MarketingTotalCentsInRange(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(500000), nil).Times(2)
		treatmentRepo.EXPECT().RevenueCentsInRange(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(1600000), nil).Times(2)

		var saved []*domain.MarketingSnapshot
		snapshotRepo.EXPECT().
			SaveOrUpdateSnapshot(gomock.Any()).
			DoAndReturn(func(snapshot *domain.MarketingSnapshot) error {
				saved = append(saved, snapshot)
				return nil
			}).
			Times(2)

		err := service.SyncPreviousMonth()
		require.NoError(t, err)

		require.Len(t, saved, 2)
		assert.Equal(t, "CLI001", saved[0].ClinicID)
		assert.Equal(t, "CLI002", saved[1].ClinicID)
		assert.Equal(t, int64(50000), saved[0].CACCents)
	})

	t.Run("una clínica fallida no frena a las demás", func(t *testing.T) {
		service, patientRepo, expenseRepo, treatmentRepo, snapshotRepo := newSyncService(t)

		snapshotRepo.EXPECT().ListClinicIDs().Return([]string{"CLI001", "CLI002"}, nil)

		patientRepo.EXPECT().
			CountAcquiredInRange("CLI001", gomock.Any(), gomock.Any()).
			Return(0, errors.New("conexión perdida"))

		patientRepo.EXPECT().CountAcquiredInRange("CLI002", gomock.Any(), gomock.Any()).Return(5, nil)
		treatmentRepo.EXPECT().CountPatientsTreatedInRange("CLI002", gomock.Any(), gomock.Any()).Return(5, nil)
		patientRepo.EXPECT().CountPatients("CLI002").Return(20, nil)
		expenseRepo.EXPECT().MarketingTotalCentsInRange("CLI002", gomock.Any(), gomock.Any()).Return(int64(100000), nil)
		treatmentRepo.EXPECT().RevenueCentsInRange("CLI002", gomock.Any(), gomock.Any()).Return(int64(900000), nil)

		snapshotRepo.EXPECT().
			SaveOrUpdateSnapshot(gomock.Any()).
			DoAndReturn(func(snapshot *domain.MarketingSnapshot) error {
				assert.Equal(t, "CLI002", snapshot.ClinicID)
				return nil
			})

		err := service.SyncPreviousMonth()
		assert.Error(t, err)
	})
}

func TestPreviousMonth(t *testing.T) {
	t.Run("a fin de mes resuelve el mes anterior", func(t *testing.T) {
		year, month := previousMonth(time.Date(2026, 3, 31, 5, 0, 0, 0, time.UTC))
		assert.Equal(t, 2026, year)
		assert.Equal(t, time.February, month)

		year, month = previousMonth(time.Date(2026, 7, 31, 12, 0, 0, 0, time.UTC))
		assert.Equal(t, 2026, year)
		assert.Equal(t, time.June, month)
	})

	t.Run("en enero retrocede de año", func(t *testing.T) {
		year, month := previousMonth(time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC))
		assert.Equal(t, 2025, year)
		assert.Equal(t, time.December, month)
	})
}
