package calc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateTimeCosts(t *testing.T) {
	tests := []struct {
		name              string
		in                TimeCostInput
		wantTotalMinutes  int64
		wantEffective     int64
		wantFixedPerMin   int64
	}{
		{
			name: "clínica con 80% de utilización",
			in: TimeCostInput{
				WorkDays:             20,
				HoursPerDay:          7,
				RealPct:              80,
				FixedCostsTotalCents: 1_854_533,
			},
			wantTotalMinutes: 8_400,
			wantEffective:    6_720,
			wantFixedPerMin:  276, // 1,854,533 / 6,720 = 275.97
		},
		{
			name: "jornada completa al 75%",
			in: TimeCostInput{
				WorkDays:             22,
				HoursPerDay:          8,
				RealPct:              75,
				FixedCostsTotalCents: 2_000_000,
			},
			wantTotalMinutes: 10_560,
			wantEffective:    7_920,
			wantFixedPerMin:  253, // 2,000,000 / 7,920 = 252.52
		},
		{
			name: "utilización al 100%",
			in: TimeCostInput{
				WorkDays:             20,
				HoursPerDay:          8,
				RealPct:              100,
				FixedCostsTotalCents: 1_600_000,
			},
			wantTotalMinutes: 9_600,
			wantEffective:    9_600,
			wantFixedPerMin:  167,
		},
		{
			name: "escenario de referencia del producto",
			in: TimeCostInput{
				WorkDays:             22,
				HoursPerDay:          8,
				RealPct:              75,
				FixedCostsTotalCents: 5_000_000,
			},
			wantTotalMinutes: 10_560,
			wantEffective:    7_920,
			wantFixedPerMin:  631, // 5,000,000 / 7,920 = 631.31
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := CalculateTimeCosts(tt.in)
			require.NoError(t, err)

			assert.Equal(t, tt.wantTotalMinutes, result.TotalMinutesPerMonth)
			assert.Equal(t, tt.wantEffective, result.EffectiveMinutesPerMonth)
			assert.Equal(t, tt.wantFixedPerMin, result.FixedPerMinuteCents)
			assert.Equal(t, tt.in.FixedCostsTotalCents, result.MonthlyFixedCostsCents)
			assert.Equal(t, tt.wantEffective*12, result.EffectiveMinutesPerYear)
		})
	}
}

func TestCalculateTimeCostsUnconfiguredClinic(t *testing.T) {
	// RealPct en cero es un estado válido "sin configurar": el costo por
	// minuto se reporta como 0 en lugar de fallar.
	result, err := CalculateTimeCosts(TimeCostInput{
		WorkDays:             20,
		HoursPerDay:          8,
		RealPct:              0,
		FixedCostsTotalCents: 1_000_000,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(0), result.FixedPerMinuteCents)
	assert.Equal(t, int64(0), result.EffectiveMinutesPerMonth)
	assert.Equal(t, int64(9_600), result.TotalMinutesPerMonth)
}

func TestCalculateTimeCostsInvalidInput(t *testing.T) {
	tests := []struct {
		name string
		in   TimeCostInput
	}{
		{"días laborales en cero", TimeCostInput{WorkDays: 0, HoursPerDay: 8, RealPct: 80}},
		{"días laborales mayores a 31", TimeCostInput{WorkDays: 32, HoursPerDay: 8, RealPct: 80}},
		{"horas por día en cero", TimeCostInput{WorkDays: 20, HoursPerDay: 0, RealPct: 80}},
		{"porcentaje real mayor a 100", TimeCostInput{WorkDays: 20, HoursPerDay: 8, RealPct: 120}},
		{"costos fijos negativos", TimeCostInput{WorkDays: 20, HoursPerDay: 8, RealPct: 80, FixedCostsTotalCents: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := CalculateTimeCosts(tt.in)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
