package calc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateBreakEven(t *testing.T) {
	got, err := CalculateBreakEven(5_000_000, 31_408, 105, 22)
	require.NoError(t, err)

	assert.True(t, got.Defined)
	assert.Equal(t, int64(31_303), got.ContributionPerUnitCents)
	assert.Equal(t, int64(160), got.UnitsToBreakEven)
	assert.Equal(t, int64(5_025_280), got.RevenueToBreakEvenCents)
	assert.Equal(t, int64(8), got.DailyTargetUnits)

	// Correctitud del techo entero: con esas unidades se cubren los costos
	// fijos y con una menos no.
	assert.GreaterOrEqual(t, got.UnitsToBreakEven*got.ContributionPerUnitCents, int64(5_000_000))
	assert.Less(t, (got.UnitsToBreakEven-1)*got.ContributionPerUnitCents, int64(5_000_000))
}

func TestCalculateBreakEvenExactDivision(t *testing.T) {
	// 100,000 / 500 = 200 exacto, sin unidad extra.
	got, err := CalculateBreakEven(100_000, 700, 200, 0)
	require.NoError(t, err)

	assert.Equal(t, int64(200), got.UnitsToBreakEven)
	assert.Equal(t, int64(0), got.DailyTargetUnits)
}

func TestCalculateBreakEvenUndefined(t *testing.T) {
	tests := []struct {
		name     string
		price    int64
		variable int64
	}{
		{"contribución cero", 1_000, 1_000},
		{"contribución negativa", 1_000, 1_500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CalculateBreakEven(5_000_000, tt.price, tt.variable, 22)
			require.NoError(t, err)

			assert.False(t, got.Defined)
			assert.Equal(t, tt.price-tt.variable, got.ContributionPerUnitCents)
			assert.Zero(t, got.UnitsToBreakEven)
			assert.Zero(t, got.RevenueToBreakEvenCents)
		})
	}
}

func TestCalculateBreakEvenZeroFixedCosts(t *testing.T) {
	got, err := CalculateBreakEven(0, 31_408, 105, 22)
	require.NoError(t, err)

	assert.True(t, got.Defined)
	assert.Zero(t, got.UnitsToBreakEven)
}

func TestCalculateBreakEvenInvalidInput(t *testing.T) {
	_, err := CalculateBreakEven(-1, 31_408, 105, 22)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = CalculateBreakEven(5_000_000, 0, 105, 22)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = CalculateBreakEven(5_000_000, 31_408, -1, 22)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCalculateBreakEvenRevenue(t *testing.T) {
	revenue, defined, err := CalculateBreakEvenRevenue(1_854_533, 35)
	require.NoError(t, err)

	assert.True(t, defined)
	assert.Equal(t, int64(2_853_128), revenue)

	// Sin costo variable el ingreso de equilibrio es el costo fijo.
	revenue, defined, err = CalculateBreakEvenRevenue(1_854_533, 0)
	require.NoError(t, err)
	assert.True(t, defined)
	assert.Equal(t, int64(1_854_533), revenue)
}

func TestCalculateBreakEvenRevenueUndefined(t *testing.T) {
	_, defined, err := CalculateBreakEvenRevenue(1_854_533, 100)
	require.NoError(t, err)
	assert.False(t, defined)

	_, defined, err = CalculateBreakEvenRevenue(1_854_533, 120)
	require.NoError(t, err)
	assert.False(t, defined)
}

func TestSafetyMargin(t *testing.T) {
	amount, pct := SafetyMargin(3_500_000, 2_853_128)
	assert.Equal(t, int64(646_872), amount)
	assert.InDelta(t, 22.67, pct, 0.01)

	// Ingreso por debajo del equilibrio produce margen negativo.
	amount, pct = SafetyMargin(2_000_000, 2_853_128)
	assert.Equal(t, int64(-853_128), amount)
	assert.Less(t, pct, float64(0))

	// Sin equilibrio definido no hay base de comparación.
	_, pct = SafetyMargin(2_000_000, 0)
	assert.Zero(t, pct)
}

func TestOperatingLeverage(t *testing.T) {
	assert.InDelta(t, 2.5, OperatingLeverage(500_000, 200_000), 0.001)
	assert.Zero(t, OperatingLeverage(500_000, 0))
}
