package calc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateTariff(t *testing.T) {
	tests := []struct {
		name string
		in   TariffInput
		want TariffBreakdown
	}{
		{
			name: "limpieza de una hora con 40% de margen",
			in: TariffInput{
				DurationMinutes:     60,
				FixedPerMinuteCents: 276,
				VariableCostCents:   5_000,
				MarginPct:           40,
			},
			want: TariffBreakdown{
				FixedCostCents:    16_560,
				VariableCostCents: 5_000,
				BaseCostCents:     21_560,
				MarginCents:       8_624,
				FinalPriceCents:   30_184,
				RoundedPriceCents: 30_184,
			},
		},
		{
			name: "escenario de referencia del producto",
			in: TariffInput{
				DurationMinutes:     30,
				FixedPerMinuteCents: 631,
				VariableCostCents:   105,
				MarginPct:           65,
			},
			want: TariffBreakdown{
				FixedCostCents:    18_930,
				VariableCostCents: 105,
				BaseCostCents:     19_035,
				MarginCents:       12_373,
				FinalPriceCents:   31_408,
				RoundedPriceCents: 31_408,
			},
		},
		{
			name: "margen cero deja el precio en costo base",
			in: TariffInput{
				DurationMinutes:     45,
				FixedPerMinuteCents: 276,
				VariableCostCents:   3_318,
				MarginPct:           0,
			},
			want: TariffBreakdown{
				FixedCostCents:    12_420,
				VariableCostCents: 3_318,
				BaseCostCents:     15_738,
				MarginCents:       0,
				FinalPriceCents:   15_738,
				RoundedPriceCents: 15_738,
			},
		},
		{
			name: "markup mayor al cien por ciento",
			in: TariffInput{
				DurationMinutes:     10,
				FixedPerMinuteCents: 100,
				VariableCostCents:   0,
				MarginPct:           150,
			},
			want: TariffBreakdown{
				FixedCostCents:    1_000,
				VariableCostCents: 0,
				BaseCostCents:     1_000,
				MarginCents:       1_500,
				FinalPriceCents:   2_500,
				RoundedPriceCents: 2_500,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CalculateTariff(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)

			// Invariantes de consistencia del desglose.
			assert.Equal(t, got.BaseCostCents, got.FixedCostCents+got.VariableCostCents)
			assert.Equal(t, got.FinalPriceCents, got.BaseCostCents+got.MarginCents)
		})
	}
}

func TestCalculateTariffWithRounding(t *testing.T) {
	got, err := CalculateTariff(TariffInput{
		DurationMinutes:     60,
		FixedPerMinuteCents: 276,
		VariableCostCents:   5_000,
		MarginPct:           40,
		RoundingStepCents:   5_000,
		RoundingMode:        RoundNearest,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(30_184), got.FinalPriceCents)
	assert.Equal(t, int64(30_000), got.RoundedPriceCents)

	got, err = CalculateTariff(TariffInput{
		DurationMinutes:     60,
		FixedPerMinuteCents: 276,
		VariableCostCents:   5_000,
		MarginPct:           40,
		RoundingStepCents:   5_000,
		RoundingMode:        RoundUp,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(35_000), got.RoundedPriceCents)
}

func TestCalculateTariffUnconfiguredClinic(t *testing.T) {
	// Costo fijo por minuto en cero (clínica sin configurar) es tolerado.
	got, err := CalculateTariff(TariffInput{
		DurationMinutes:     30,
		FixedPerMinuteCents: 0,
		VariableCostCents:   2_000,
		MarginPct:           50,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(0), got.FixedCostCents)
	assert.Equal(t, int64(3_000), got.FinalPriceCents)
}

func TestCalculateTariffInvalidInput(t *testing.T) {
	tests := []struct {
		name string
		in   TariffInput
	}{
		{"duración cero", TariffInput{DurationMinutes: 0, MarginPct: 40}},
		{"duración negativa", TariffInput{DurationMinutes: -10, MarginPct: 40}},
		{"costo por minuto negativo", TariffInput{DurationMinutes: 30, FixedPerMinuteCents: -1}},
		{"costo variable negativo", TariffInput{DurationMinutes: 30, VariableCostCents: -1}},
		{"margen negativo", TariffInput{DurationMinutes: 30, MarginPct: -10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := CalculateTariff(tt.in)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
