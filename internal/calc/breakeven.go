package calc

import (
	"fmt"
	"math"
)

// BreakEvenResult es el resultado etiquetado del análisis de punto de
// equilibrio. Defined en falso significa que el margen de contribución es
// cero o negativo: cada unidad vendida pierde dinero y el punto de equilibrio
// no existe matemáticamente. Nunca se codifica como infinito ni como un
// número grande engañoso.
type BreakEvenResult struct {
	Defined                  bool  `json:"defined"`
	ContributionPerUnitCents int64 `json:"contribution_per_unit_cents"`
	UnitsToBreakEven         int64 `json:"units_to_break_even"`
	RevenueToBreakEvenCents  int64 `json:"revenue_to_break_even_cents"`
	DailyTargetUnits         int64 `json:"daily_target_units"`
}

// CalculateBreakEven calcula cuántas unidades de un servicio cubren los
// costos fijos del periodo. workingDays en cero omite la meta diaria.
func CalculateBreakEven(fixedCostsTotalCents, pricePerUnitCents, variableCostPerUnitCents int64, workingDays int) (BreakEvenResult, error) {
	if fixedCostsTotalCents < 0 {
		return BreakEvenResult{}, fmt.Errorf("costos fijos negativos: %w", ErrInvalidInput)
	}
	if pricePerUnitCents <= 0 {
		return BreakEvenResult{}, fmt.Errorf("precio por unidad debe ser positivo: %w", ErrInvalidInput)
	}
	if variableCostPerUnitCents < 0 {
		return BreakEvenResult{}, fmt.Errorf("costo variable negativo: %w", ErrInvalidInput)
	}

	contribution := pricePerUnitCents - variableCostPerUnitCents
	if contribution <= 0 {
		return BreakEvenResult{
			Defined:                  false,
			ContributionPerUnitCents: contribution,
		}, nil
	}

	// Techo entero: la última unidad cubre el remanente.
	units := (fixedCostsTotalCents + contribution - 1) / contribution

	result := BreakEvenResult{
		Defined:                  true,
		ContributionPerUnitCents: contribution,
		UnitsToBreakEven:         units,
		RevenueToBreakEvenCents:  units * pricePerUnitCents,
	}

	if workingDays > 0 {
		result.DailyTargetUnits = (units + int64(workingDays) - 1) / int64(workingDays)
	}

	return result, nil
}

// CalculateBreakEvenRevenue calcula el ingreso de equilibrio a partir del
// porcentaje promedio de costo variable (escala 0-100), la variante agregada
// que usa la pantalla de equilibrio cuando no se analiza un servicio
// concreto. Con proporción variable de 100 o más no hay contribución y el
// equilibrio es indefinido.
func CalculateBreakEvenRevenue(fixedCostsTotalCents int64, variableCostPct float64) (int64, bool, error) {
	if fixedCostsTotalCents < 0 {
		return 0, false, fmt.Errorf("costos fijos negativos: %w", ErrInvalidInput)
	}
	if variableCostPct < 0 {
		return 0, false, fmt.Errorf("porcentaje de costo variable negativo: %w", ErrInvalidInput)
	}

	contributionPct := 100 - variableCostPct
	if contributionPct <= 0 {
		return 0, false, nil
	}

	revenue := int64(math.Round(float64(fixedCostsTotalCents) * 100 / contributionPct))
	return revenue, true, nil
}

// SafetyMargin compara el ingreso real contra el de equilibrio. El
// porcentaje se expresa en escala 0-100 sobre el equilibrio; con equilibrio
// en cero se reporta 0 (no hay base de comparación).
func SafetyMargin(actualRevenueCents, breakEvenRevenueCents int64) (amountCents int64, pct float64) {
	amountCents = actualRevenueCents - breakEvenRevenueCents
	if breakEvenRevenueCents <= 0 {
		return amountCents, 0
	}
	return amountCents, roundTwoDecimals(float64(amountCents) / float64(breakEvenRevenueCents) * 100)
}

// OperatingLeverage mide la sensibilidad de la utilidad operativa; con
// utilidad cero devuelve 0 por convención.
func OperatingLeverage(contributionCents, operatingIncomeCents int64) float64 {
	if operatingIncomeCents == 0 {
		return 0
	}
	return roundTwoDecimals(float64(contributionCents) / float64(operatingIncomeCents))
}
