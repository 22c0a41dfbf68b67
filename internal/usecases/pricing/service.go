package pricing

import (
	"time"

	"github.com/pkg/errors"

	"github.com/Karasowl/laralis-sub007/infrastructure/repository"
	"github.com/Karasowl/laralis-sub007/internal/calc"
	"github.com/Karasowl/laralis-sub007/internal/domain"
	"github.com/Karasowl/laralis-sub007/internal/usecases/settings"
)

// Errores del flujo de tarificación.
var (
	ErrServiceNotFound    = errors.New("servicio no encontrado")
	ErrTariffNotFound     = errors.New("tarifa no encontrada")
	ErrClinicUnconfigured = errors.New("la clínica no tiene configurado horario ni costos fijos")
)

// PreviewRequest permite simular una tarifa con valores alternativos sin
// tocar lo guardado. Los campos nil usan lo almacenado del servicio.
type PreviewRequest struct {
	ServiceID         string   `json:"service_id"`
	MarginPct         *float64 `json:"margin_pct"`
	DurationMinutes   *int     `json:"duration_minutes"`
	RoundingStepCents *int64   `json:"rounding_step_cents"`
	RoundingMode      *string  `json:"rounding_mode"`
}

// TariffQuote es el desglose completo de un precio calculado, con las
// advertencias de receta que hayan surgido.
type TariffQuote struct {
	ServiceID  string               `json:"service_id"`
	Breakdown  calc.TariffBreakdown `json:"breakdown"`
	Warnings   []calc.RecipeWarning `json:"warnings,omitempty"`
	Configured bool                 `json:"configured"`
}

// VariableCostReport expone el costo variable de la receta de un servicio.
type VariableCostReport struct {
	ServiceID  string               `json:"service_id"`
	TotalCents int64                `json:"total_cents"`
	Warnings   []calc.RecipeWarning `json:"warnings,omitempty"`
}

type Pricer interface {
	VariableCost(clinicID, serviceID string) (*VariableCostReport, error)
	PreviewTariff(clinicID string, req PreviewRequest) (*TariffQuote, error)
	SaveTariff(clinicID, serviceID string) (*domain.Tariff, error)
	ListTariffs(clinicID string) ([]*TariffWithDiscount, error)
	UpdateDiscount(clinicID, tariffID string, discount calc.Discount) error
	BulkAdjustMargin(clinicID string, deltaPct float64) ([]*domain.Tariff, error)
	FreezeTreatment(clinicID string, req FreezeTreatmentRequest) (*domain.Treatment, error)
}

// TariffWithDiscount es una tarifa activa con su precio final tras resolver
// el descuento aplicable (por servicio o global).
type TariffWithDiscount struct {
	Tariff              *domain.Tariff `json:"tariff"`
	DiscountCents       int64          `json:"discount_cents"`
	PriceAfterDiscount  int64          `json:"price_after_discount_cents"`
	PriceFormatted      string         `json:"price_formatted"`
	PriceAfterFormatted string         `json:"price_after_discount_formatted"`
}

// FreezeTreatmentRequest registra un tratamiento congelando la tarifa activa.
type FreezeTreatmentRequest struct {
	PatientID   string     `json:"patient_id"`
	ServiceID   string     `json:"service_id"`
	PerformedAt *time.Time `json:"performed_at"`
}

type Service struct {
	serviceRepo   repository.ServiceRepository
	supplyRepo    repository.SupplyRepository
	tariffRepo    repository.TariffRepository
	treatmentRepo repository.TreatmentRepository
	configurer    settings.Configurer
}

func NewService(
	serviceRepo repository.ServiceRepository,
	supplyRepo repository.SupplyRepository,
	tariffRepo repository.TariffRepository,
	treatmentRepo repository.TreatmentRepository,
	configurer settings.Configurer,
) Pricer {
	return &Service{
		serviceRepo:   serviceRepo,
		supplyRepo:    supplyRepo,
		tariffRepo:    tariffRepo,
		treatmentRepo: treatmentRepo,
		configurer:    configurer,
	}
}

// VariableCost calcula el costo de la receta del servicio. Las referencias
// rotas llegan como advertencias, nunca como error.
func (s *Service) VariableCost(clinicID, serviceID string) (*VariableCostReport, error) {
	service, err := s.serviceRepo.GetServiceByID(clinicID, serviceID)
	if err != nil {
		return nil, errors.Wrap(err, "error al consultar el servicio")
	}
	if service == nil {
		return nil, ErrServiceNotFound
	}

	totalCents, warnings, err := s.recipeCost(clinicID, serviceID)
	if err != nil {
		return nil, err
	}

	return &VariableCostReport{
		ServiceID:  serviceID,
		TotalCents: totalCents,
		Warnings:   warnings,
	}, nil
}

func (s *Service) recipeCost(clinicID, serviceID string) (int64, []calc.RecipeWarning, error) {
	recipe, err := s.serviceRepo.GetRecipe(clinicID, serviceID)
	if err != nil {
		return 0, nil, errors.Wrap(err, "error al consultar la receta")
	}

	supplyIDs := make([]string, 0, len(recipe))
	lines := make([]calc.RecipeLine, 0, len(recipe))
	for _, row := range recipe {
		supplyIDs = append(supplyIDs, row.SupplyID)
		lines = append(lines, calc.RecipeLine{SupplyID: row.SupplyID, Quantity: row.Quantity})
	}

	supplies, err := s.supplyRepo.GetSuppliesByIDs(clinicID, supplyIDs)
	if err != nil {
		return 0, nil, errors.Wrap(err, "error al consultar insumos de la receta")
	}

	costs := make(map[string]calc.SupplyCost, len(supplies))
	for id, supply := range supplies {
		costs[id] = calc.SupplyCost{PriceCents: supply.PriceCents, Portions: supply.Portions}
	}

	return calc.CalculateVariableCost(lines, costs)
}

// quote calcula el desglose de tarifa de un servicio con los datos vigentes.
func (s *Service) quote(clinicID string, service *domain.Service, req PreviewRequest) (*TariffQuote, error) {
	timeReport, err := s.configurer.GetTimeReport(clinicID)
	if err != nil {
		return nil, err
	}

	var fixedPerMinute int64
	configured := false
	if timeReport.Derived != nil {
		fixedPerMinute = timeReport.Derived.FixedPerMinuteCents
		configured = fixedPerMinute > 0
	}

	variableCents, warnings, err := s.recipeCost(clinicID, service.ID)
	if err != nil {
		return nil, err
	}

	pricingSettings, err := s.configurer.GetPricingSettings(clinicID)
	if err != nil {
		return nil, err
	}

	marginPct := pricingSettings.DefaultMarginPct
	if service.MarginPct != nil {
		marginPct = *service.MarginPct
	}
	if req.MarginPct != nil {
		marginPct = *req.MarginPct
	}

	duration := service.DurationMinutes
	if req.DurationMinutes != nil {
		duration = *req.DurationMinutes
	}

	stepCents := pricingSettings.RoundingStepCents
	if req.RoundingStepCents != nil {
		stepCents = *req.RoundingStepCents
	}

	modeName := pricingSettings.RoundingMode
	if req.RoundingMode != nil {
		modeName = *req.RoundingMode
	}
	mode, err := calc.ParseRoundingMode(modeName)
	if err != nil {
		return nil, err
	}

	breakdown, err := calc.CalculateTariff(calc.TariffInput{
		DurationMinutes:     duration,
		FixedPerMinuteCents: fixedPerMinute,
		VariableCostCents:   variableCents,
		MarginPct:           marginPct,
		RoundingStepCents:   stepCents,
		RoundingMode:        mode,
	})
	if err != nil {
		return nil, err
	}

	return &TariffQuote{
		ServiceID:  service.ID,
		Breakdown:  breakdown,
		Warnings:   warnings,
		Configured: configured,
	}, nil
}

// PreviewTariff simula el precio sin persistir nada. Funciona aun con la
// clínica sin configurar; el flag Configured avisa que el costo fijo es cero.
func (s *Service) PreviewTariff(clinicID string, req PreviewRequest) (*TariffQuote, error) {
	service, err := s.serviceRepo.GetServiceByID(clinicID, req.ServiceID)
	if err != nil {
		return nil, errors.Wrap(err, "error al consultar el servicio")
	}
	if service == nil {
		return nil, ErrServiceNotFound
	}

	return s.quote(clinicID, service, req)
}

// SaveTariff calcula y persiste una versión nueva de la tarifa. A diferencia
// de la vista previa, guardar exige una clínica configurada: persistir
// precios calculados con costo fijo cero propagaría datos sin verificar.
func (s *Service) SaveTariff(clinicID, serviceID string) (*domain.Tariff, error) {
	service, err := s.serviceRepo.GetServiceByID(clinicID, serviceID)
	if err != nil {
		return nil, errors.Wrap(err, "error al consultar el servicio")
	}
	if service == nil {
		return nil, ErrServiceNotFound
	}

	quote, err := s.quote(clinicID, service, PreviewRequest{ServiceID: serviceID})
	if err != nil {
		return nil, err
	}
	if !quote.Configured {
		return nil, ErrClinicUnconfigured
	}

	pricingSettings, err := s.configurer.GetPricingSettings(clinicID)
	if err != nil {
		return nil, err
	}

	margin := pricingSettings.DefaultMarginPct
	if service.MarginPct != nil {
		margin = *service.MarginPct
	}

	tariff := &domain.Tariff{
		ClinicID:          clinicID,
		ServiceID:         serviceID,
		FixedCostCents:    quote.Breakdown.FixedCostCents,
		VariableCostCents: quote.Breakdown.VariableCostCents,
		MarginPct:         margin,
		FinalPriceCents:   quote.Breakdown.FinalPriceCents,
		RoundedPriceCents: quote.Breakdown.RoundedPriceCents,
		DiscountType:      string(calc.DiscountNone),
	}

	tariff, err = s.tariffRepo.SaveVersion(tariff)
	if err != nil {
		return nil, errors.Wrap(err, "error al guardar la tarifa")
	}

	return tariff, nil
}

// ListTariffs resuelve el descuento vigente de cada tarifa activa aplicando
// la precedencia: descuento por servicio sobre descuento global.
func (s *Service) ListTariffs(clinicID string) ([]*TariffWithDiscount, error) {
	tariffs, err := s.tariffRepo.ListActive(clinicID)
	if err != nil {
		return nil, errors.Wrap(err, "error al listar tarifas")
	}

	pricingSettings, err := s.configurer.GetPricingSettings(clinicID)
	if err != nil {
		return nil, err
	}

	globalDiscount := discountFromSettings(pricingSettings)

	result := make([]*TariffWithDiscount, 0, len(tariffs))
	for _, tariff := range tariffs {
		perService := discountFromTariff(tariff)
		resolved := calc.ResolveDiscount(perService, globalDiscount)

		price := tariff.RoundedPriceCents
		discountCents := calc.DiscountAmountCents(price, resolved)

		result = append(result, &TariffWithDiscount{
			Tariff:              tariff,
			DiscountCents:       discountCents,
			PriceAfterDiscount:  price - discountCents,
			PriceFormatted:      calc.FormatCents(price),
			PriceAfterFormatted: calc.FormatCents(price - discountCents),
		})
	}

	return result, nil
}

func (s *Service) UpdateDiscount(clinicID, tariffID string, discount calc.Discount) error {
	switch discount.Type {
	case calc.DiscountNone, calc.DiscountPercentage, calc.DiscountFixed:
	default:
		return errors.Wrapf(calc.ErrInvalidInput, "tipo de descuento desconocido %q", discount.Type)
	}
	if discount.Value < 0 {
		return errors.Wrap(calc.ErrInvalidInput, "valor de descuento negativo")
	}

	err := s.tariffRepo.UpdateDiscount(clinicID, tariffID, string(discount.Type), discount.Value)
	if err != nil {
		return errors.Wrap(err, "error al actualizar el descuento")
	}

	return nil
}

// BulkAdjustMargin recalcula todas las tarifas activas con el margen movido
// deltaPct puntos (positivo o negativo, piso en cero) y guarda una versión
// nueva por servicio.
func (s *Service) BulkAdjustMargin(clinicID string, deltaPct float64) ([]*domain.Tariff, error) {
	services, err := s.serviceRepo.ListServices(clinicID)
	if err != nil {
		return nil, errors.Wrap(err, "error al listar servicios")
	}

	var saved []*domain.Tariff
	for _, service := range services {
		if !service.Active {
			continue
		}

		current, err := s.tariffRepo.GetActiveByService(clinicID, service.ID)
		if err != nil {
			return nil, errors.Wrap(err, "error al consultar tarifa activa")
		}
		if current == nil {
			continue
		}

		margin := current.MarginPct + deltaPct
		if margin < 0 {
			margin = 0
		}

		quote, err := s.quote(clinicID, service, PreviewRequest{ServiceID: service.ID, MarginPct: &margin})
		if err != nil {
			return nil, err
		}
		if !quote.Configured {
			return nil, ErrClinicUnconfigured
		}

		tariff := &domain.Tariff{
			ClinicID:          clinicID,
			ServiceID:         service.ID,
			FixedCostCents:    quote.Breakdown.FixedCostCents,
			VariableCostCents: quote.Breakdown.VariableCostCents,
			MarginPct:         margin,
			FinalPriceCents:   quote.Breakdown.FinalPriceCents,
			RoundedPriceCents: quote.Breakdown.RoundedPriceCents,
			DiscountType:      current.DiscountType,
			DiscountValue:     current.DiscountValue,
		}

		tariff, err = s.tariffRepo.SaveVersion(tariff)
		if err != nil {
			return nil, errors.Wrap(err, "error al guardar la tarifa ajustada")
		}

		saved = append(saved, tariff)
	}

	return saved, nil
}

// FreezeTreatment registra el tratamiento copiando las cifras de la tarifa
// activa. A partir de aquí el tratamiento es inmutable: nunca se recalcula
// con costos o márgenes posteriores.
func (s *Service) FreezeTreatment(clinicID string, req FreezeTreatmentRequest) (*domain.Treatment, error) {
	tariff, err := s.tariffRepo.GetActiveByService(clinicID, req.ServiceID)
	if err != nil {
		return nil, errors.Wrap(err, "error al consultar la tarifa activa")
	}
	if tariff == nil {
		return nil, ErrTariffNotFound
	}

	pricingSettings, err := s.configurer.GetPricingSettings(clinicID)
	if err != nil {
		return nil, err
	}

	resolved := calc.ResolveDiscount(discountFromTariff(tariff), discountFromSettings(pricingSettings))
	price := tariff.RoundedPriceCents
	discountCents := calc.DiscountAmountCents(price, resolved)

	performedAt := time.Now().UTC()
	if req.PerformedAt != nil {
		performedAt = *req.PerformedAt
	}

	treatment := &domain.Treatment{
		ClinicID:          clinicID,
		PatientID:         req.PatientID,
		ServiceID:         req.ServiceID,
		TariffID:          tariff.ID,
		TariffVersion:     tariff.Version,
		FixedCostCents:    tariff.FixedCostCents,
		VariableCostCents: tariff.VariableCostCents,
		MarginPct:         tariff.MarginPct,
		PriceCents:        price,
		DiscountCents:     discountCents,
		ChargedCents:      price - discountCents,
		Status:            domain.TreatmentCompleted,
		PerformedAt:       performedAt,
	}

	treatment, err = s.treatmentRepo.CreateTreatment(treatment)
	if err != nil {
		return nil, errors.Wrap(err, "error al registrar el tratamiento")
	}

	return treatment, nil
}

func discountFromTariff(tariff *domain.Tariff) *calc.Discount {
	if tariff.DiscountType == "" || tariff.DiscountType == string(calc.DiscountNone) {
		return nil
	}
	return &calc.Discount{Type: calc.DiscountType(tariff.DiscountType), Value: tariff.DiscountValue}
}

func discountFromSettings(settings *domain.PricingSettings) *calc.Discount {
	if settings.GlobalDiscountType == "" || settings.GlobalDiscountType == string(calc.DiscountNone) {
		return nil
	}
	return &calc.Discount{Type: calc.DiscountType(settings.GlobalDiscountType), Value: settings.GlobalDiscountValue}
}
