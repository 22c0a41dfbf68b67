package calc

import (
	"fmt"
	"math"
	"strings"
)

// Todo el dinero del motor se maneja en centavos enteros (int64). Nunca se
// opera moneda en punto flotante; los floats solo aparecen como factores
// (porcentajes, cantidades fraccionarias) y el resultado se redondea a
// centavos de inmediato.

// RoundingMode define la dirección del redondeo por múltiplo.
type RoundingMode string

const (
	// RoundNearest redondea al múltiplo más cercano, mitades hacia arriba.
	RoundNearest RoundingMode = "nearest"
	// RoundUp redondea siempre al siguiente múltiplo.
	RoundUp RoundingMode = "up"
	// RoundDown redondea siempre al múltiplo anterior.
	RoundDown RoundingMode = "down"
)

// ParseRoundingMode valida el modo recibido por configuración o query param.
func ParseRoundingMode(s string) (RoundingMode, error) {
	switch RoundingMode(strings.ToLower(s)) {
	case RoundNearest:
		return RoundNearest, nil
	case RoundUp:
		return RoundUp, nil
	case RoundDown:
		return RoundDown, nil
	}
	return "", fmt.Errorf("modo de redondeo desconocido %q: %w", s, ErrInvalidInput)
}

// RoundToStepCents redondea un monto al múltiplo de stepCents según el modo.
// Un step menor o igual a cero se trata como 1 (sin redondeo). Para entradas
// no negativas el resultado nunca es negativo, en cualquier modo.
func RoundToStepCents(amountCents, stepCents int64, mode RoundingMode) int64 {
	if stepCents <= 0 {
		stepCents = 1
	}

	// División entera con semántica de piso, válida también para negativos.
	q := amountCents / stepCents
	r := amountCents % stepCents
	if r < 0 {
		q--
		r += stepCents
	}

	switch mode {
	case RoundUp:
		if r > 0 {
			q++
		}
	case RoundDown:
		// q ya es el piso
	default:
		// nearest: mitades hacia arriba
		if 2*r >= stepCents {
			q++
		}
	}

	return q * stepCents
}

// PercentageOf calcula el porcentaje de un monto, redondeado al centavo.
// pct se expresa en escala 0-100 (la convención única de este repo).
func PercentageOf(amountCents int64, pct float64) int64 {
	return int64(math.Round(float64(amountCents) * pct / 100))
}

// PesosToCents convierte pesos (con decimales) a centavos enteros.
func PesosToCents(pesos float64) int64 {
	return int64(math.Round(pesos * 100))
}

// CentsToPesos convierte centavos a pesos para presentación.
func CentsToPesos(cents int64) float64 {
	return float64(cents) / 100
}

// FormatCents produce la representación humana "$1,234.56" que los handlers
// devuelven junto al valor en centavos.
func FormatCents(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}

	whole := cents / 100
	frac := cents % 100

	digits := fmt.Sprintf("%d", whole)
	var b strings.Builder
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(d)
	}

	return fmt.Sprintf("%s$%s.%02d", sign, b.String(), frac)
}

// roundTwoDecimals redondea porcentajes y ratios a dos decimales para
// presentación estable en las respuestas JSON.
func roundTwoDecimals(f float64) float64 {
	return math.Round(f*100) / 100
}
