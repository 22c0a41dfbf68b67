package marketing

import (
	"time"

	"github.com/pkg/errors"

	"github.com/Karasowl/laralis-sub007/infrastructure/repository"
	"github.com/Karasowl/laralis-sub007/internal/calc"
	"github.com/Karasowl/laralis-sub007/internal/domain"
)

// MetricsReport es el tablero de adquisición de un rango de fechas.
type MetricsReport struct {
	From                  time.Time         `json:"from"`
	To                    time.Time         `json:"to"`
	NewPatients           int               `json:"new_patients"`
	ActivePatients        int               `json:"active_patients"`
	TotalPatients         int               `json:"total_patients"`
	MarketingExpenseCents int64             `json:"marketing_expense_cents"`
	RevenueCents          int64             `json:"revenue_cents"`
	CACCents              int64             `json:"cac_cents"`
	LTVCents              int64             `json:"ltv_cents"`
	ConversionRatePct     float64           `json:"conversion_rate_pct"`
	LTVCACRatio           float64           `json:"ltv_cac_ratio"`
	RatioUnbounded        bool              `json:"ratio_unbounded"`
	RatioQuality          calc.RatioQuality `json:"ratio_quality"`
	ROIPct                float64           `json:"roi_pct"`
	ROIDefined            bool              `json:"roi_defined"`
}

// CACTrendReport es la evolución del costo de adquisición por bucket.
type CACTrendReport struct {
	Granularity calc.Granularity `json:"granularity"`
	Points      []CACTrendPoint  `json:"points"`
}

type CACTrendPoint struct {
	Label        string `json:"label"`
	ExpenseCents int64  `json:"expense_cents"`
	NewPatients  int64  `json:"new_patients"`
	CACCents     int64  `json:"cac_cents"`
}

// AcquisitionReport es la serie mensual de pacientes nuevos con proyección
// lineal y desglose por fuente de adquisición.
type AcquisitionReport struct {
	Labels        []string         `json:"labels"`
	NewPatients   []int64          `json:"new_patients"`
	Projected     []int64          `json:"projected,omitempty"`
	TrendReliable bool             `json:"trend_reliable"`
	GrowthRatePct float64          `json:"growth_rate_pct"`
	BySource      map[string]int64 `json:"by_source"`
}

type Metricer interface {
	Metrics(clinicID string, from, to time.Time) (*MetricsReport, error)
	CACTrend(clinicID string, from, to time.Time, granularity calc.Granularity) (*CACTrendReport, error)
	AcquisitionTrends(clinicID string, from, to time.Time, projectionMonths int) (*AcquisitionReport, error)
	ComputeMonthlySnapshot(clinicID string, year int, month time.Month) (*domain.MarketingSnapshot, error)
	ListSnapshots(clinicID string, limit int) ([]*domain.MarketingSnapshot, error)
}

type Service struct {
	patientRepo   repository.PatientRepository
	expenseRepo   repository.ExpenseRepository
	treatmentRepo repository.TreatmentRepository
	snapshotRepo  repository.MarketingSnapshotRepository
}

func NewService(
	patientRepo repository.PatientRepository,
	expenseRepo repository.ExpenseRepository,
	treatmentRepo repository.TreatmentRepository,
	snapshotRepo repository.MarketingSnapshotRepository,
) Metricer {
	return &Service{
		patientRepo:   patientRepo,
		expenseRepo:   expenseRepo,
		treatmentRepo: treatmentRepo,
		snapshotRepo:  snapshotRepo,
	}
}

// Metrics agrega pacientes, gastos de marketing e ingresos del rango y
// deriva CAC, LTV, conversión, ratio y ROI. Los casos sin denominador llegan
// marcados, nunca como error.
func (s *Service) Metrics(clinicID string, from, to time.Time) (*MetricsReport, error) {
	newPatients, err := s.patientRepo.CountAcquiredInRange(clinicID, from, to)
	if err != nil {
		return nil, errors.Wrap(err, "error al contar pacientes nuevos")
	}

	activePatients, err := s.treatmentRepo.CountPatientsTreatedInRange(clinicID, from, to)
	if err != nil {
		return nil, errors.Wrap(err, "error al contar pacientes activos")
	}

	totalPatients, err := s.patientRepo.CountPatients(clinicID)
	if err != nil {
		return nil, errors.Wrap(err, "error al contar el padrón de pacientes")
	}

	expenseCents, err := s.expenseRepo.MarketingTotalCentsInRange(clinicID, from, to)
	if err != nil {
		return nil, errors.Wrap(err, "error al sumar gastos de marketing")
	}

	revenueCents, err := s.treatmentRepo.RevenueCentsInRange(clinicID, from, to)
	if err != nil {
		return nil, errors.Wrap(err, "error al sumar ingresos")
	}

	cac := calc.CAC(expenseCents, newPatients)
	ltv := calc.LTV(revenueCents, activePatients)
	ratio, unbounded := calc.LTVCACRatio(ltv, cac)
	roi, roiDefined, err := calc.ROI(revenueCents, expenseCents)
	if err != nil {
		return nil, err
	}

	return &MetricsReport{
		From:                  from,
		To:                    to,
		NewPatients:           newPatients,
		ActivePatients:        activePatients,
		TotalPatients:         totalPatients,
		MarketingExpenseCents: expenseCents,
		RevenueCents:          revenueCents,
		CACCents:              cac,
		LTVCents:              ltv,
		ConversionRatePct:     calc.ConversionRate(activePatients, totalPatients),
		LTVCACRatio:           ratio,
		RatioUnbounded:        unbounded,
		RatioQuality:          calc.GetRatioQuality(ratio, unbounded),
		ROIPct:                roi,
		ROIDefined:            roiDefined,
	}, nil
}

// CACTrend reparte gastos de marketing y altas de pacientes en buckets de la
// granularidad pedida y calcula el CAC de cada bucket por separado.
func (s *Service) CACTrend(clinicID string, from, to time.Time, granularity calc.Granularity) (*CACTrendReport, error) {
	buckets, err := calc.BucketRange(from, to, granularity)
	if err != nil {
		return nil, err
	}

	expenses, err := s.expenseRepo.ListMarketingInRange(clinicID, from, to)
	if err != nil {
		return nil, errors.Wrap(err, "error al listar gastos de marketing")
	}
	expenseSeries := calc.NewBucketSeries(buckets)
	for _, expense := range expenses {
		expenseSeries.Add(expense.SpentAt, expense.AmountCents)
	}

	patients, err := s.patientRepo.ListAcquiredInRange(clinicID, from, to)
	if err != nil {
		return nil, errors.Wrap(err, "error al listar pacientes del rango")
	}
	patientSeries := calc.NewBucketSeries(buckets)
	for _, patient := range patients {
		patientSeries.Add(patient.AcquiredAt, 0)
	}

	points := make([]CACTrendPoint, len(buckets))
	for i, bucket := range buckets {
		points[i] = CACTrendPoint{
			Label:        bucket.Label,
			ExpenseCents: expenseSeries.Cents[i],
			NewPatients:  patientSeries.Counts[i],
			CACCents:     calc.CAC(expenseSeries.Cents[i], int(patientSeries.Counts[i])),
		}
	}

	return &CACTrendReport{Granularity: granularity, Points: points}, nil
}

// AcquisitionTrends arma la serie mensual de altas, ajusta una tendencia
// lineal para proyectar los meses siguientes y desglosa por fuente. Con menos
// de dos meses de historia la proyección se omite y TrendReliable queda en
// falso.
func (s *Service) AcquisitionTrends(clinicID string, from, to time.Time, projectionMonths int) (*AcquisitionReport, error) {
	buckets, err := calc.BucketRange(from, to, calc.GranularityMonth)
	if err != nil {
		return nil, err
	}

	patients, err := s.patientRepo.ListAcquiredInRange(clinicID, from, to)
	if err != nil {
		return nil, errors.Wrap(err, "error al listar pacientes del rango")
	}

	series := calc.NewBucketSeries(buckets)
	bySource := make(map[string]int64)
	for _, patient := range patients {
		series.Add(patient.AcquiredAt, 0)
		bySource[patient.Source]++
	}

	labels := make([]string, len(buckets))
	counts := make([]int64, len(buckets))
	values := make([]float64, len(buckets))
	for i, bucket := range buckets {
		labels[i] = bucket.Label
		counts[i] = series.Counts[i]
		values[i] = float64(series.Counts[i])
	}

	report := &AcquisitionReport{
		Labels:      labels,
		NewPatients: counts,
		BySource:    bySource,
	}

	if n := len(counts); n >= 2 {
		report.GrowthRatePct = calc.GrowthRate(int(counts[n-1]), int(counts[n-2]))
	}

	trend, ok := calc.FitLinearTrend(values)
	report.TrendReliable = ok
	if ok && projectionMonths > 0 {
		report.Projected = trend.Project(len(values), projectionMonths)
	}

	return report, nil
}

// ComputeMonthlySnapshot agrega el mes calendario indicado y lo persiste.
// Es idempotente: recalcular un mes ya guardado sobreescribe el registro.
func (s *Service) ComputeMonthlySnapshot(clinicID string, year int, month time.Month) (*domain.MarketingSnapshot, error) {
	from := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0)

	metrics, err := s.Metrics(clinicID, from, to)
	if err != nil {
		return nil, err
	}

	snapshot := &domain.MarketingSnapshot{
		ClinicID:              clinicID,
		Year:                  year,
		Month:                 int(month),
		NewPatients:           metrics.NewPatients,
		ActivePatients:        metrics.ActivePatients,
		MarketingExpenseCents: metrics.MarketingExpenseCents,
		RevenueCents:          metrics.RevenueCents,
		CACCents:              metrics.CACCents,
		LTVCents:              metrics.LTVCents,
	}

	if err := s.snapshotRepo.SaveOrUpdateSnapshot(snapshot); err != nil {
		return nil, errors.Wrap(err, "error al guardar el corte mensual")
	}

	return snapshot, nil
}

func (s *Service) ListSnapshots(clinicID string, limit int) ([]*domain.MarketingSnapshot, error) {
	snapshots, err := s.snapshotRepo.ListSnapshots(clinicID, limit)
	if err != nil {
		return nil, errors.Wrap(err, "error al listar cortes mensuales")
	}
	return snapshots, nil
}
