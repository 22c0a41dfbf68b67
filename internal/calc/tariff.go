package calc

import "fmt"

// TariffInput reúne los insumos ya resueltos para tarificar un servicio.
// MarginPct está en escala 0-100 y no tiene tope superior: un markup puede
// exceder el 100% del costo base.
type TariffInput struct {
	DurationMinutes     int
	FixedPerMinuteCents int64
	VariableCostCents   int64
	MarginPct           float64

	// RoundingStepCents y RoundingMode son opcionales; con step en cero el
	// precio redondeado es igual al precio final.
	RoundingStepCents int64
	RoundingMode      RoundingMode
}

// TariffBreakdown expone las cuatro cifras del desglose para que el consumo
// pueda renderizar costo fijo, variable, margen y precio por separado.
// Invariantes: BaseCostCents = FixedCostCents + VariableCostCents y
// FinalPriceCents = BaseCostCents + MarginCents.
type TariffBreakdown struct {
	FixedCostCents    int64 `json:"fixed_cost_cents"`
	VariableCostCents int64 `json:"variable_cost_cents"`
	BaseCostCents     int64 `json:"base_cost_cents"`
	MarginCents       int64 `json:"margin_cents"`
	FinalPriceCents   int64 `json:"final_price_cents"`
	RoundedPriceCents int64 `json:"rounded_price_cents"`
}

// CalculateTariff combina el costo fijo por minuto, el costo variable de la
// receta y el margen en el precio final de un servicio.
//
// Un FixedPerMinuteCents en cero es válido (clínica sin configurar, ver
// CalculateTimeCosts) y produce un precio compuesto solo por costo variable
// y margen.
func CalculateTariff(in TariffInput) (TariffBreakdown, error) {
	if in.DurationMinutes <= 0 {
		return TariffBreakdown{}, fmt.Errorf("duración del servicio debe ser positiva: %w", ErrInvalidInput)
	}
	if in.FixedPerMinuteCents < 0 {
		return TariffBreakdown{}, fmt.Errorf("costo fijo por minuto negativo: %w", ErrInvalidInput)
	}
	if in.VariableCostCents < 0 {
		return TariffBreakdown{}, fmt.Errorf("costo variable negativo: %w", ErrInvalidInput)
	}
	if in.MarginPct < 0 {
		return TariffBreakdown{}, fmt.Errorf("margen negativo: %w", ErrInvalidInput)
	}

	fixedCost := int64(in.DurationMinutes) * in.FixedPerMinuteCents
	baseCost := fixedCost + in.VariableCostCents
	margin := PercentageOf(baseCost, in.MarginPct)
	finalPrice := baseCost + margin

	rounded := finalPrice
	if in.RoundingStepCents > 0 {
		rounded = RoundToStepCents(finalPrice, in.RoundingStepCents, in.RoundingMode)
	}

	return TariffBreakdown{
		FixedCostCents:    fixedCost,
		VariableCostCents: in.VariableCostCents,
		BaseCostCents:     baseCost,
		MarginCents:       margin,
		FinalPriceCents:   finalPrice,
		RoundedPriceCents: rounded,
	}, nil
}
