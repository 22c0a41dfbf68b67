package calc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonthlyDepreciationCents(t *testing.T) {
	monthly, err := MonthlyDepreciationCents(6_762_000, 36)
	require.NoError(t, err)
	assert.Equal(t, int64(187_833), monthly)

	monthly, err = MonthlyDepreciationCents(1_200_000, 12)
	require.NoError(t, err)
	assert.Equal(t, int64(100_000), monthly)

	// 1,000,000 / 7 = 142,857.14
	monthly, err = MonthlyDepreciationCents(1_000_000, 7)
	require.NoError(t, err)
	assert.Equal(t, int64(142_857), monthly)

	_, err = MonthlyDepreciationCents(1_000_000, 0)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = MonthlyDepreciationCents(-100, 12)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestBookValueCents(t *testing.T) {
	assert.Equal(t, int64(4_508_004), BookValueCents(6_762_000, 2_253_996))
	assert.Equal(t, int64(0), BookValueCents(1_000_000, 1_000_000))
	// Sobredepreciación por redondeo no produce valor negativo.
	assert.Equal(t, int64(0), BookValueCents(1_000_000, 1_200_000))
}

func TestDepreciationSchedule(t *testing.T) {
	schedule, err := DepreciationSchedule(6_762_000, 36)
	require.NoError(t, err)
	require.Len(t, schedule, 36)

	first := schedule[0]
	assert.Equal(t, 1, first.Month)
	assert.Equal(t, int64(187_833), first.MonthlyDepreciationCents)
	assert.Equal(t, int64(187_833), first.AccumulatedDepreciationCents)
	assert.Equal(t, int64(6_574_167), first.BookValueCents)

	last := schedule[35]
	assert.Equal(t, int64(6_761_988), last.AccumulatedDepreciationCents)
	// Diferencia pequeña por redondeo mensual, se conserva tal cual.
	assert.Equal(t, int64(12), last.BookValueCents)
}
