package calc

import (
	"fmt"
	"math"
)

// TimeCostInput son los datos de operación de la clínica ya cargados por el
// caller. RealPct es el porcentaje de utilización real del sillón (0-100).
type TimeCostInput struct {
	WorkDays             int
	HoursPerDay          float64
	RealPct              float64
	FixedCostsTotalCents int64
}

// TimeCostResult expone el desglose completo para la pantalla de tiempo.
type TimeCostResult struct {
	MonthlyFixedCostsCents   int64   `json:"monthly_fixed_costs_cents"`
	TotalMinutesPerMonth     int64   `json:"total_minutes_per_month"`
	EffectiveMinutesPerMonth int64   `json:"effective_minutes_per_month"`
	EffectiveMinutesPerYear  int64   `json:"effective_minutes_per_year"`
	HoursPerMonth            float64 `json:"hours_per_month"`
	HoursPerYear             float64 `json:"hours_per_year"`
	FixedPerMinuteCents      int64   `json:"fixed_per_minute_cents"`
}

// CalculateTimeCosts convierte la configuración de horario y el total de
// costos fijos en un costo fijo por minuto efectivo.
//
// Caso degenerado documentado: con RealPct en cero (clínica aún no
// configurada) el resultado es FixedPerMinuteCents = 0, no un error. Los
// consumidores de tarifas deben tolerar ese cero y tratarlo como "sin
// configurar", no como costo verificado.
func CalculateTimeCosts(in TimeCostInput) (TimeCostResult, error) {
	if in.WorkDays <= 0 || in.WorkDays > 31 {
		return TimeCostResult{}, fmt.Errorf("días laborales %d fuera de rango: %w", in.WorkDays, ErrInvalidInput)
	}
	if in.HoursPerDay <= 0 {
		return TimeCostResult{}, fmt.Errorf("horas por día deben ser positivas: %w", ErrInvalidInput)
	}
	if in.RealPct < 0 || in.RealPct > 100 {
		return TimeCostResult{}, fmt.Errorf("porcentaje real %.2f fuera de 0-100: %w", in.RealPct, ErrInvalidInput)
	}
	if in.FixedCostsTotalCents < 0 {
		return TimeCostResult{}, fmt.Errorf("costos fijos negativos: %w", ErrInvalidInput)
	}

	minutesPerMonth := float64(in.WorkDays) * in.HoursPerDay * 60
	effectiveMinutes := int64(math.Round(minutesPerMonth * in.RealPct / 100))

	var fixedPerMinute int64
	if effectiveMinutes > 0 {
		fixedPerMinute = int64(math.Round(float64(in.FixedCostsTotalCents) / float64(effectiveMinutes)))
	}

	return TimeCostResult{
		MonthlyFixedCostsCents:   in.FixedCostsTotalCents,
		TotalMinutesPerMonth:     int64(math.Round(minutesPerMonth)),
		EffectiveMinutesPerMonth: effectiveMinutes,
		EffectiveMinutesPerYear:  effectiveMinutes * 12,
		HoursPerMonth:            float64(in.WorkDays) * in.HoursPerDay,
		HoursPerYear:             float64(in.WorkDays) * in.HoursPerDay * 12,
		FixedPerMinuteCents:      fixedPerMinute,
	}, nil
}
