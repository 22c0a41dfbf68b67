package equilibrium

import (
	"time"

	"github.com/pkg/errors"

	"github.com/Karasowl/laralis-sub007/infrastructure/repository"
	"github.com/Karasowl/laralis-sub007/internal/calc"
	"github.com/Karasowl/laralis-sub007/internal/domain"
	"github.com/Karasowl/laralis-sub007/internal/usecases/settings"
)

var ErrNoActiveTariffs = errors.New("la clínica no tiene tarifas activas")

// UnitReport es el punto de equilibrio expresado en unidades de un servicio
// de referencia.
type UnitReport struct {
	FixedCostsTotalCents int64                `json:"fixed_costs_total_cents"`
	PricePerUnitCents    int64                `json:"price_per_unit_cents"`
	VariableCostCents    int64                `json:"variable_cost_cents"`
	WorkingDays          int                  `json:"working_days"`
	Result               calc.BreakEvenResult `json:"result"`
}

// RevenueReport es el punto de equilibrio agregado de la clínica: ingreso
// mensual necesario según la mezcla de tarifas activas, con el margen de
// seguridad contra el ingreso real del periodo.
type RevenueReport struct {
	FixedCostsTotalCents    int64   `json:"fixed_costs_total_cents"`
	AvgVariableCostPct      float64 `json:"avg_variable_cost_pct"`
	Defined                 bool    `json:"defined"`
	RevenueToBreakEvenCents int64   `json:"revenue_to_break_even_cents"`
	DailyTargetCents        int64   `json:"daily_target_cents"`
	ActualRevenueCents      int64   `json:"actual_revenue_cents"`
	SafetyMarginCents       int64   `json:"safety_margin_cents"`
	SafetyMarginPct         float64 `json:"safety_margin_pct"`
}

type Analyzer interface {
	BreakEvenUnits(clinicID string, pricePerUnitCents, variableCostCents int64) (*UnitReport, error)
	BreakEvenRevenue(clinicID string, from, to time.Time) (*RevenueReport, error)
}

type Service struct {
	configurer    settings.Configurer
	tariffRepo    repository.TariffRepository
	treatmentRepo repository.TreatmentRepository
}

func NewService(
	configurer settings.Configurer,
	tariffRepo repository.TariffRepository,
	treatmentRepo repository.TreatmentRepository,
) Analyzer {
	return &Service{
		configurer:    configurer,
		tariffRepo:    tariffRepo,
		treatmentRepo: treatmentRepo,
	}
}

// BreakEvenUnits responde cuántas unidades del servicio de referencia cubren
// los costos fijos del mes. El precio y costo variable vienen del llamador
// para poder simular escenarios sin guardar nada.
func (s *Service) BreakEvenUnits(clinicID string, pricePerUnitCents, variableCostCents int64) (*UnitReport, error) {
	fixedTotal, err := s.configurer.TotalFixedCostsCents(clinicID)
	if err != nil {
		return nil, err
	}

	workingDays := 0
	timeReport, err := s.configurer.GetTimeReport(clinicID)
	if err != nil {
		return nil, err
	}
	if timeReport.Settings != nil {
		workingDays = timeReport.Settings.WorkDays
	}

	result, err := calc.CalculateBreakEven(fixedTotal, pricePerUnitCents, variableCostCents, workingDays)
	if err != nil {
		return nil, err
	}

	return &UnitReport{
		FixedCostsTotalCents: fixedTotal,
		PricePerUnitCents:    pricePerUnitCents,
		VariableCostCents:    variableCostCents,
		WorkingDays:          workingDays,
		Result:               result,
	}, nil
}

// BreakEvenRevenue pondera la proporción de costo variable de las tarifas
// activas por su volumen de tratamientos en el rango y proyecta el ingreso
// de equilibrio de la clínica completa.
func (s *Service) BreakEvenRevenue(clinicID string, from, to time.Time) (*RevenueReport, error) {
	fixedTotal, err := s.configurer.TotalFixedCostsCents(clinicID)
	if err != nil {
		return nil, err
	}

	tariffs, err := s.tariffRepo.ListActive(clinicID)
	if err != nil {
		return nil, errors.Wrap(err, "error al listar tarifas activas")
	}
	if len(tariffs) == 0 {
		return nil, ErrNoActiveTariffs
	}

	treatments, err := s.treatmentRepo.ListTreatments(clinicID, from, to)
	if err != nil {
		return nil, errors.Wrap(err, "error al listar tratamientos")
	}

	volumeByService := make(map[string]float64)
	for _, t := range treatments {
		if t.Status == domain.TreatmentCancelled {
			continue
		}
		volumeByService[t.ServiceID]++
	}

	shares := make([]calc.ServiceCostShare, 0, len(tariffs))
	for _, tariff := range tariffs {
		shares = append(shares, calc.ServiceCostShare{
			VariableCostCents: tariff.VariableCostCents,
			TotalCostCents:    tariff.RoundedPriceCents,
			Weight:            volumeByService[tariff.ServiceID],
		})
	}

	avgVariablePct := calc.AverageVariableCostPct(shares)

	revenue, defined, err := calc.CalculateBreakEvenRevenue(fixedTotal, avgVariablePct)
	if err != nil {
		return nil, err
	}

	report := &RevenueReport{
		FixedCostsTotalCents: fixedTotal,
		AvgVariableCostPct:   avgVariablePct,
		Defined:              defined,
	}
	if !defined {
		return report, nil
	}
	report.RevenueToBreakEvenCents = revenue

	timeReport, err := s.configurer.GetTimeReport(clinicID)
	if err != nil {
		return nil, err
	}
	if timeReport.Settings != nil && timeReport.Settings.WorkDays > 0 {
		report.DailyTargetCents = revenue / int64(timeReport.Settings.WorkDays)
	}

	actual, err := s.treatmentRepo.RevenueCentsInRange(clinicID, from, to)
	if err != nil {
		return nil, errors.Wrap(err, "error al sumar ingresos del periodo")
	}
	report.ActualRevenueCents = actual
	report.SafetyMarginCents, report.SafetyMarginPct = calc.SafetyMargin(actual, revenue)

	return report, nil
}
