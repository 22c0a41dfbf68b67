package calc

import (
	"fmt"
	"math"
)

// DepreciationEntry es una fila del calendario de depreciación lineal.
type DepreciationEntry struct {
	Month                        int   `json:"month"`
	MonthlyDepreciationCents     int64 `json:"monthly_depreciation_cents"`
	AccumulatedDepreciationCents int64 `json:"accumulated_depreciation_cents"`
	BookValueCents               int64 `json:"book_value_cents"`
}

// MonthlyDepreciationCents reparte el precio de compra de un activo en
// mensualidades lineales redondeadas al centavo.
func MonthlyDepreciationCents(purchasePriceCents int64, months int) (int64, error) {
	if months <= 0 {
		return 0, fmt.Errorf("meses de depreciación deben ser positivos: %w", ErrInvalidInput)
	}
	if purchasePriceCents < 0 {
		return 0, fmt.Errorf("precio de compra negativo: %w", ErrInvalidInput)
	}
	return int64(math.Round(float64(purchasePriceCents) / float64(months))), nil
}

// AccumulatedDepreciationCents acumula la mensualidad hasta el mes indicado.
func AccumulatedDepreciationCents(monthlyCents int64, currentMonth int) (int64, error) {
	if currentMonth < 0 {
		return 0, fmt.Errorf("mes actual negativo: %w", ErrInvalidInput)
	}
	return monthlyCents * int64(currentMonth), nil
}

// BookValueCents es el valor en libros; nunca baja de cero aunque el
// redondeo acumulado sobrepase la inversión.
func BookValueCents(totalInvestmentCents, accumulatedCents int64) int64 {
	value := totalInvestmentCents - accumulatedCents
	if value < 0 {
		return 0
	}
	return value
}

// DepreciationSchedule genera el calendario completo mes a mes. La última
// fila puede arrastrar una diferencia pequeña de redondeo en el valor en
// libros; se expone tal cual para que cuadre con la mensualidad.
func DepreciationSchedule(totalInvestmentCents int64, months int) ([]DepreciationEntry, error) {
	monthly, err := MonthlyDepreciationCents(totalInvestmentCents, months)
	if err != nil {
		return nil, err
	}

	schedule := make([]DepreciationEntry, 0, months)
	for m := 1; m <= months; m++ {
		accumulated := monthly * int64(m)
		schedule = append(schedule, DepreciationEntry{
			Month:                        m,
			MonthlyDepreciationCents:     monthly,
			AccumulatedDepreciationCents: accumulated,
			BookValueCents:               BookValueCents(totalInvestmentCents, accumulated),
		})
	}

	return schedule, nil
}
