package settings

import (
	"time"

	"github.com/pkg/errors"

	"github.com/Karasowl/laralis-sub007/infrastructure/repository"
	"github.com/Karasowl/laralis-sub007/internal/calc"
	"github.com/Karasowl/laralis-sub007/internal/config"
	"github.com/Karasowl/laralis-sub007/internal/domain"
)

// TimeReport es la respuesta de la pantalla de tiempo: la configuración
// guardada más el desglose derivado de costo por minuto.
type TimeReport struct {
	Settings *domain.TimeSettings `json:"settings"`
	Derived  *calc.TimeCostResult `json:"derived"`
}

// FixedCostReport agrega los costos fijos manuales y la depreciación mensual
// de activos en el total que alimenta todos los cálculos de tarifas.
type FixedCostReport struct {
	Costs                  []*domain.FixedCost `json:"costs"`
	ManualTotalCents       int64               `json:"manual_total_cents"`
	DepreciationTotalCents int64               `json:"depreciation_total_cents"`
	TotalCents             int64               `json:"total_cents"`
}

type Configurer interface {
	GetTimeReport(clinicID string) (*TimeReport, error)
	UpdateTimeSettings(settings *domain.TimeSettings) (*TimeReport, error)
	GetPricingSettings(clinicID string) (*domain.PricingSettings, error)
	UpdatePricingSettings(settings *domain.PricingSettings) error
	GetFixedCostReport(clinicID string) (*FixedCostReport, error)
	TotalFixedCostsCents(clinicID string) (int64, error)
	AssetDepreciationSchedule(clinicID, assetID string, asOf time.Time) (*AssetDepreciation, error)
}

// AssetDepreciation es la ficha de depreciación de un activo.
type AssetDepreciation struct {
	Asset            *domain.Asset            `json:"asset"`
	MonthlyCents     int64                    `json:"monthly_cents"`
	AccumulatedCents int64                    `json:"accumulated_cents"`
	BookValueCents   int64                    `json:"book_value_cents"`
	Schedule         []calc.DepreciationEntry `json:"schedule"`
}

type Service struct {
	settingsRepo  repository.SettingsRepository
	fixedCostRepo repository.FixedCostRepository
	assetRepo     repository.AssetRepository
	cfg           *config.Config
}

func NewService(
	settingsRepo repository.SettingsRepository,
	fixedCostRepo repository.FixedCostRepository,
	assetRepo repository.AssetRepository,
	cfg *config.Config,
) Configurer {
	return &Service{
		settingsRepo:  settingsRepo,
		fixedCostRepo: fixedCostRepo,
		assetRepo:     assetRepo,
		cfg:           cfg,
	}
}

// GetTimeReport arma la configuración de horario con su derivado. Una clínica
// sin configuración devuelve Settings nil y Derived nil; los consumidores
// muestran el estado "sin configurar".
func (s *Service) GetTimeReport(clinicID string) (*TimeReport, error) {
	timeSettings, err := s.settingsRepo.GetTimeSettings(clinicID)
	if err != nil {
		return nil, errors.Wrap(err, "error al consultar configuración de horario")
	}
	if timeSettings == nil {
		return &TimeReport{}, nil
	}

	totalCents, err := s.TotalFixedCostsCents(clinicID)
	if err != nil {
		return nil, err
	}

	derived, err := calc.CalculateTimeCosts(calc.TimeCostInput{
		WorkDays:             timeSettings.WorkDays,
		HoursPerDay:          timeSettings.HoursPerDay,
		RealPct:              timeSettings.RealPct,
		FixedCostsTotalCents: totalCents,
	})
	if err != nil {
		return nil, errors.Wrap(err, "configuración de horario almacenada inválida")
	}

	return &TimeReport{Settings: timeSettings, Derived: &derived}, nil
}

// UpdateTimeSettings valida contra el motor antes de guardar: una
// configuración que el motor rechaza nunca llega a la base.
func (s *Service) UpdateTimeSettings(settings *domain.TimeSettings) (*TimeReport, error) {
	_, err := calc.CalculateTimeCosts(calc.TimeCostInput{
		WorkDays:    settings.WorkDays,
		HoursPerDay: settings.HoursPerDay,
		RealPct:     settings.RealPct,
	})
	if err != nil {
		return nil, err
	}

	if err := s.settingsRepo.UpsertTimeSettings(settings); err != nil {
		return nil, errors.Wrap(err, "error al guardar configuración de horario")
	}

	return s.GetTimeReport(settings.ClinicID)
}

// GetPricingSettings cae a los defaults de la configuración global cuando la
// clínica aún no guarda preferencias.
func (s *Service) GetPricingSettings(clinicID string) (*domain.PricingSettings, error) {
	pricing, err := s.settingsRepo.GetPricingSettings(clinicID)
	if err != nil {
		return nil, errors.Wrap(err, "error al consultar preferencias de tarificación")
	}
	if pricing != nil {
		return pricing, nil
	}

	return &domain.PricingSettings{
		ClinicID:           clinicID,
		RoundingStepCents:  s.cfg.Pricing.DefaultRoundingStepCents,
		RoundingMode:       s.cfg.Pricing.DefaultRoundingMode,
		DefaultMarginPct:   s.cfg.Pricing.DefaultMarginPct,
		GlobalDiscountType: string(calc.DiscountNone),
	}, nil
}

func (s *Service) UpdatePricingSettings(settings *domain.PricingSettings) error {
	if _, err := calc.ParseRoundingMode(settings.RoundingMode); err != nil {
		return err
	}
	if settings.RoundingStepCents < 0 || settings.DefaultMarginPct < 0 {
		return calc.ErrInvalidInput
	}

	return errors.Wrap(
		s.settingsRepo.UpsertPricingSettings(settings),
		"error al guardar preferencias de tarificación",
	)
}

func (s *Service) GetFixedCostReport(clinicID string) (*FixedCostReport, error) {
	costs, err := s.fixedCostRepo.ListFixedCosts(clinicID)
	if err != nil {
		return nil, errors.Wrap(err, "error al listar costos fijos")
	}

	manualTotal, err := s.fixedCostRepo.TotalFixedCostsCents(clinicID)
	if err != nil {
		return nil, errors.Wrap(err, "error al sumar costos fijos")
	}

	depreciationTotal, err := s.monthlyDepreciationCents(clinicID)
	if err != nil {
		return nil, err
	}

	return &FixedCostReport{
		Costs:                  costs,
		ManualTotalCents:       manualTotal,
		DepreciationTotalCents: depreciationTotal,
		TotalCents:             manualTotal + depreciationTotal,
	}, nil
}

// TotalFixedCostsCents es el total que consumen tarifas y equilibrio: costos
// manuales más depreciación mensual de activos.
func (s *Service) TotalFixedCostsCents(clinicID string) (int64, error) {
	manualTotal, err := s.fixedCostRepo.TotalFixedCostsCents(clinicID)
	if err != nil {
		return 0, errors.Wrap(err, "error al sumar costos fijos")
	}

	depreciationTotal, err := s.monthlyDepreciationCents(clinicID)
	if err != nil {
		return 0, err
	}

	return manualTotal + depreciationTotal, nil
}

func (s *Service) monthlyDepreciationCents(clinicID string) (int64, error) {
	assets, err := s.assetRepo.ListAssets(clinicID)
	if err != nil {
		return 0, errors.Wrap(err, "error al listar activos")
	}

	var total int64
	for _, asset := range assets {
		monthly, err := calc.MonthlyDepreciationCents(asset.PriceCents, asset.DepreciationMonths)
		if err != nil {
			// Activo con plazo inválido: se reporta como cero en lugar de
			// tumbar toda la pantalla de costos.
			continue
		}
		total += monthly
	}

	return total, nil
}

func (s *Service) AssetDepreciationSchedule(clinicID, assetID string, asOf time.Time) (*AssetDepreciation, error) {
	asset, err := s.assetRepo.GetAssetByID(clinicID, assetID)
	if err != nil {
		return nil, errors.Wrap(err, "error al consultar el activo")
	}
	if asset == nil {
		return nil, nil
	}

	monthly, err := calc.MonthlyDepreciationCents(asset.PriceCents, asset.DepreciationMonths)
	if err != nil {
		return nil, err
	}

	monthsElapsed := monthsBetween(asset.PurchasedAt, asOf)
	if monthsElapsed > asset.DepreciationMonths {
		monthsElapsed = asset.DepreciationMonths
	}

	accumulated, err := calc.AccumulatedDepreciationCents(monthly, monthsElapsed)
	if err != nil {
		return nil, err
	}
	bookValue := calc.BookValueCents(asset.PriceCents, accumulated)

	schedule, err := calc.DepreciationSchedule(asset.PriceCents, asset.DepreciationMonths)
	if err != nil {
		return nil, err
	}

	return &AssetDepreciation{
		Asset:            asset,
		MonthlyCents:     monthly,
		AccumulatedCents: accumulated,
		BookValueCents:   bookValue,
		Schedule:         schedule,
	}, nil
}

func monthsBetween(from, to time.Time) int {
	if to.Before(from) {
		return 0
	}
	months := (to.Year()-from.Year())*12 + int(to.Month()) - int(from.Month())
	if to.Day() < from.Day() {
		months--
	}
	if months < 0 {
		return 0
	}
	return months
}
