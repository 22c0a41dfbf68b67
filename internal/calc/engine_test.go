package calc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Escenario completo de una clínica recién configurada: del horario y los
// costos fijos al precio de un servicio y su punto de equilibrio. Los números
// intermedios están verificados a mano para que cualquier regresión en un
// paso se vea en el paso, no solo en el total.
func TestPricingEndToEnd(t *testing.T) {
	timeCosts, err := CalculateTimeCosts(TimeCostInput{
		WorkDays:             22,
		HoursPerDay:          8,
		RealPct:              75,
		FixedCostsTotalCents: 5_000_000,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(10_560), timeCosts.TotalMinutesPerMonth)
	assert.Equal(t, int64(7_920), timeCosts.EffectiveMinutesPerMonth)
	assert.Equal(t, int64(631), timeCosts.FixedPerMinuteCents)

	supplies := map[string]SupplyCost{
		"guantes":  {PriceCents: 5_000, Portions: 100},
		"gasas":    {PriceCents: 2_500, Portions: 100},
		"fluoruro": {PriceCents: 100, Portions: 10},
	}
	recipe := []RecipeLine{
		{SupplyID: "guantes", Quantity: 1},
		{SupplyID: "gasas", Quantity: 2},
		{SupplyID: "fluoruro", Quantity: 0.5},
	}

	variableCost, warnings, err := CalculateVariableCost(recipe, supplies)
	require.NoError(t, err)
	require.Empty(t, warnings)
	assert.Equal(t, int64(105), variableCost)

	tariff, err := CalculateTariff(TariffInput{
		DurationMinutes:     30,
		FixedPerMinuteCents: timeCosts.FixedPerMinuteCents,
		VariableCostCents:   variableCost,
		MarginPct:           65,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(18_930), tariff.FixedCostCents)
	assert.Equal(t, int64(19_035), tariff.BaseCostCents)
	assert.Equal(t, int64(12_373), tariff.MarginCents)
	assert.Equal(t, int64(31_408), tariff.FinalPriceCents)

	breakEven, err := CalculateBreakEven(5_000_000, tariff.FinalPriceCents, variableCost, 22)
	require.NoError(t, err)

	assert.True(t, breakEven.Defined)
	assert.Equal(t, int64(31_303), breakEven.ContributionPerUnitCents)
	assert.Equal(t, int64(160), breakEven.UnitsToBreakEven)
}

// La cadena completa es determinista: mismas entradas, mismos centavos.
func TestPricingDeterminism(t *testing.T) {
	run := func() (TimeCostResult, TariffBreakdown) {
		timeCosts, err := CalculateTimeCosts(TimeCostInput{
			WorkDays:             20,
			HoursPerDay:          7,
			RealPct:              80,
			FixedCostsTotalCents: 3_456_789,
		})
		require.NoError(t, err)

		tariff, err := CalculateTariff(TariffInput{
			DurationMinutes:     45,
			FixedPerMinuteCents: timeCosts.FixedPerMinuteCents,
			VariableCostCents:   1_234,
			MarginPct:           42.5,
			RoundingStepCents:   1_000,
			RoundingMode:        RoundNearest,
		})
		require.NoError(t, err)
		return timeCosts, tariff
	}

	firstTime, firstTariff := run()
	for i := 0; i < 10; i++ {
		timeCosts, tariff := run()
		assert.Equal(t, firstTime, timeCosts)
		assert.Equal(t, firstTariff, tariff)
	}
}
