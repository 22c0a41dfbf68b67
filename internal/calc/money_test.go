package calc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoundToStepCents(t *testing.T) {
	tests := []struct {
		name   string
		amount int64
		step   int64
		mode   RoundingMode
		want   int64
	}{
		{"múltiplo de 50 pesos hacia abajo", 30_184, 5_000, RoundNearest, 30_000},
		{"mitad exacta sube", 32_500, 5_000, RoundNearest, 35_000},
		{"justo debajo de la mitad baja", 27_499, 5_000, RoundNearest, 25_000},
		{"mitad exacta de step chico sube", 21_225, 50, RoundNearest, 21_250},
		{"peso más cercano", 21_246, 100, RoundNearest, 21_200},
		{"múltiplo exacto queda igual", 30_000, 5_000, RoundNearest, 30_000},
		{"cero queda en cero", 0, 1_000, RoundNearest, 0},
		{"monto menor a medio step baja a cero", 12, 25, RoundNearest, 0},
		{"techo sube siempre", 30_184, 5_000, RoundUp, 35_000},
		{"techo sobre múltiplo exacto no sube", 30_000, 5_000, RoundUp, 30_000},
		{"piso baja siempre", 34_999, 5_000, RoundDown, 30_000},
		{"step muy grande con nearest", 30_184, 10_000_000, RoundNearest, 0},
		{"step cero se trata como uno", 12_345, 0, RoundNearest, 12_345},
		{"step negativo se trata como uno", 12_345, -50, RoundUp, 12_345},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RoundToStepCents(tt.amount, tt.step, tt.mode))
		})
	}
}

func TestRoundToStepCentsIdempotence(t *testing.T) {
	amounts := []int64{0, 1, 12, 37, 499, 500, 501, 21_246, 30_184, 32_500, 5_000_000}
	steps := []int64{1, 25, 50, 100, 500, 1_000, 5_000}
	modes := []RoundingMode{RoundNearest, RoundUp, RoundDown}

	for _, amount := range amounts {
		for _, step := range steps {
			for _, mode := range modes {
				once := RoundToStepCents(amount, step, mode)
				twice := RoundToStepCents(once, step, mode)
				assert.Equal(t, once, twice, "redondear dos veces debe ser estable (%d, %d, %s)", amount, step, mode)
				assert.GreaterOrEqual(t, once, int64(0), "entrada no negativa nunca produce negativo")
			}
		}
	}
}

func TestPercentageOf(t *testing.T) {
	assert.Equal(t, int64(12_373), PercentageOf(19_035, 65))
	assert.Equal(t, int64(8_624), PercentageOf(21_560, 40))
	assert.Equal(t, int64(0), PercentageOf(10_000, 0))
	assert.Equal(t, int64(15_000), PercentageOf(10_000, 150))
}

func TestParseRoundingMode(t *testing.T) {
	mode, err := ParseRoundingMode("NEAREST")
	assert.NoError(t, err)
	assert.Equal(t, RoundNearest, mode)

	_, err = ParseRoundingMode("banker")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestFormatCents(t *testing.T) {
	assert.Equal(t, "$1,234.56", FormatCents(123_456))
	assert.Equal(t, "$0.05", FormatCents(5))
	assert.Equal(t, "$50,000.00", FormatCents(5_000_000))
	assert.Equal(t, "-$12.50", FormatCents(-1_250))
}

func TestPesosCentsConversion(t *testing.T) {
	assert.Equal(t, int64(12_345), PesosToCents(123.45))
	assert.Equal(t, 123.45, CentsToPesos(12_345))
}
