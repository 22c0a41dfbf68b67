package calc

import (
	"fmt"
	"math"
)

// RecipeLine es una línea de la receta de un servicio: un insumo y la
// cantidad de porciones que consume. Quantity admite fracciones (0.5 de
// cartucho de anestesia, por ejemplo).
type RecipeLine struct {
	SupplyID string
	Quantity float64
}

// SupplyCost es lo mínimo que el agregador necesita saber de un insumo.
type SupplyCost struct {
	PriceCents int64
	Portions   float64
}

// RecipeWarning reporta una línea que no pudo costearse. El cálculo continúa
// con esa línea en cero; el caller decide cómo alertar al operador.
type RecipeWarning struct {
	SupplyID string `json:"supply_id"`
	Reason   string `json:"reason"`
}

// Razones de advertencia de integridad de datos en recetas.
const (
	WarnMissingSupply   = "missing_supply"
	WarnInvalidPortions = "invalid_portions"
)

// CostPerPortionCents deriva el costo unitario de una porción del insumo.
func CostPerPortionCents(priceCents int64, portions float64) (int64, error) {
	if portions <= 0 {
		return 0, fmt.Errorf("porciones deben ser positivas: %w", ErrInvalidInput)
	}
	if priceCents < 0 {
		return 0, fmt.Errorf("precio de insumo negativo: %w", ErrInvalidInput)
	}
	return int64(math.Round(float64(priceCents) / portions)), nil
}

// CalculateVariableCost suma el costo de cada línea de receta usando el
// catálogo de insumos suministrado. Una referencia rota no tumba el cálculo:
// la línea aporta cero y se registra una advertencia estructurada para que el
// caller la muestre sin romper la página de precios. El total nunca es
// negativo.
func CalculateVariableCost(lines []RecipeLine, supplies map[string]SupplyCost) (int64, []RecipeWarning, error) {
	var total int64
	var warnings []RecipeWarning

	for _, line := range lines {
		if line.Quantity < 0 {
			return 0, nil, fmt.Errorf("cantidad negativa para insumo %s: %w", line.SupplyID, ErrInvalidInput)
		}

		supply, ok := supplies[line.SupplyID]
		if !ok {
			warnings = append(warnings, RecipeWarning{SupplyID: line.SupplyID, Reason: WarnMissingSupply})
			continue
		}

		perPortion, err := CostPerPortionCents(supply.PriceCents, supply.Portions)
		if err != nil {
			warnings = append(warnings, RecipeWarning{SupplyID: line.SupplyID, Reason: WarnInvalidPortions})
			continue
		}

		total += int64(math.Round(float64(perPortion) * line.Quantity))
	}

	return total, warnings, nil
}

// VariableCostPct devuelve el peso del costo variable dentro del costo total,
// en escala 0-100. Con total en cero devuelve 0 (guarded zero: sin datos, no
// hay proporción que reportar).
func VariableCostPct(variableCostCents, totalCostCents int64) float64 {
	if totalCostCents <= 0 {
		return 0
	}
	return roundTwoDecimals(float64(variableCostCents) / float64(totalCostCents) * 100)
}

// ServiceCostShare es la proporción variable de un servicio para promedios.
type ServiceCostShare struct {
	VariableCostCents int64
	TotalCostCents    int64
	Weight            float64
}

// AverageVariableCostPct promedia la proporción de costo variable de varios
// servicios, en escala 0-100, ponderada por volumen. Los servicios sin
// volumen no participan del promedio ponderado; si ningún servicio tiene
// volumen se cae al promedio simple. Servicios con costo total cero aportan
// proporción cero.
func AverageVariableCostPct(services []ServiceCostShare) float64 {
	if len(services) == 0 {
		return 0
	}

	var weighted, totalWeight float64
	for _, svc := range services {
		if svc.Weight <= 0 {
			continue
		}
		weighted += VariableCostPct(svc.VariableCostCents, svc.TotalCostCents) * svc.Weight
		totalWeight += svc.Weight
	}

	if totalWeight == 0 {
		var sum float64
		for _, svc := range services {
			sum += VariableCostPct(svc.VariableCostCents, svc.TotalCostCents)
		}
		return sum / float64(len(services))
	}
	return weighted / totalWeight
}
