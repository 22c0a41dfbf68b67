package calc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCAC(t *testing.T) {
	tests := []struct {
		name        string
		expenses    int64
		newPatients int
		want        int64
	}{
		{"veinte pacientes en el mes", 1_000_000, 20, 50_000},
		{"división con redondeo", 1_000_000, 3, 333_333},
		{"sin pacientes nuevos reporta cero", 1_000_000, 0, 0},
		{"sin gasto de marketing", 0, 20, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CAC(tt.expenses, tt.newPatients))
		})
	}
}

func TestLTV(t *testing.T) {
	assert.Equal(t, int64(120_000), LTV(2_400_000, 20))

	// Padrón vacío: el denominador se fija en 1.
	assert.Equal(t, int64(2_400_000), LTV(2_400_000, 0))
	assert.Equal(t, int64(0), LTV(0, 20))
}

func TestConversionRate(t *testing.T) {
	assert.InDelta(t, 25.0, ConversionRate(5, 20), 0.001)
	assert.InDelta(t, 33.33, ConversionRate(1, 3), 0.001)
	assert.Zero(t, ConversionRate(5, 0))
	assert.Zero(t, ConversionRate(-1, 20))
}

func TestLTVCACRatio(t *testing.T) {
	ratio, unbounded := LTVCACRatio(150_000, 50_000)
	assert.False(t, unbounded)
	assert.InDelta(t, 3.0, ratio, 0.001)

	// Adquisición gratuita: el ratio no tiene cota.
	ratio, unbounded = LTVCACRatio(150_000, 0)
	assert.True(t, unbounded)
	assert.Zero(t, ratio)

	// Sin LTV ni CAC no hay ratio.
	_, unbounded = LTVCACRatio(0, 0)
	assert.False(t, unbounded)
}

func TestGetRatioQuality(t *testing.T) {
	tests := []struct {
		name      string
		ratio     float64
		unbounded bool
		wantLabel string
	}{
		{"excelente desde tres", 3.0, false, "excellent"},
		{"bueno desde dos", 2.5, false, "good"},
		{"aceptable desde uno", 1.0, false, "acceptable"},
		{"crítico por debajo de uno", 0.7, false, "critical"},
		{"sin datos", 0, false, "unknown"},
		{"sin cota cuenta como excelente", 0, true, "excellent"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantLabel, GetRatioQuality(tt.ratio, tt.unbounded).Label)
		})
	}
}

func TestROI(t *testing.T) {
	roi, defined, err := ROI(1_500_000, 1_000_000)
	require.NoError(t, err)
	assert.True(t, defined)
	assert.InDelta(t, 50.0, roi, 0.001)

	// ROI negativo cuando la inversión supera al ingreso.
	roi, defined, err = ROI(800_000, 1_000_000)
	require.NoError(t, err)
	assert.True(t, defined)
	assert.InDelta(t, -20.0, roi, 0.001)

	// Inversión cero: indefinido, no cero por ciento.
	_, defined, err = ROI(1_500_000, 0)
	require.NoError(t, err)
	assert.False(t, defined)

	_, _, err = ROI(-1, 1_000_000)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestTargetCAC(t *testing.T) {
	assert.Equal(t, int64(50_000), TargetCAC(150_000, 3))
	assert.Zero(t, TargetCAC(150_000, 0))
	assert.Zero(t, TargetCAC(0, 3))
}

func TestGrowthRate(t *testing.T) {
	assert.InDelta(t, 25.0, GrowthRate(25, 20), 0.001)
	assert.InDelta(t, -20.0, GrowthRate(16, 20), 0.001)
	assert.Zero(t, GrowthRate(25, 0))
}

func TestPaybackPeriodMonths(t *testing.T) {
	assert.InDelta(t, 2.5, PaybackPeriodMonths(125_000, 50_000), 0.001)
	assert.Zero(t, PaybackPeriodMonths(0, 50_000))
	assert.Zero(t, PaybackPeriodMonths(125_000, 0))
}
