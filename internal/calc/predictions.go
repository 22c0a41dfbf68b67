package calc

import "math"

// Proyección simple por regresión lineal, usada por la serie de tendencias
// de adquisición para extender el histórico algunos periodos hacia adelante.

// LinearTrend es la recta ajustada por mínimos cuadrados sobre una serie
// indexada 0..n-1.
type LinearTrend struct {
	Slope     float64
	Intercept float64
}

// FitLinearTrend ajusta la recta; necesita al menos dos puntos.
func FitLinearTrend(values []float64) (LinearTrend, bool) {
	n := len(values)
	if n < 2 {
		return LinearTrend{}, false
	}

	var sumX, sumY, sumXY, sumX2 float64
	for i, y := range values {
		x := float64(i)
		sumX += x
		sumY += y
		sumXY += x * y
		sumX2 += x * x
	}

	denom := float64(n)*sumX2 - sumX*sumX
	if denom == 0 {
		return LinearTrend{}, false
	}

	slope := (float64(n)*sumXY - sumX*sumY) / denom
	intercept := (sumY - slope*sumX) / float64(n)
	return LinearTrend{Slope: slope, Intercept: intercept}, true
}

// Project evalúa la recta en los siguientes steps índices, recortando a cero
// los valores negativos (no se proyectan pacientes negativos).
func (t LinearTrend) Project(historyLen, steps int) []int64 {
	projection := make([]int64, 0, steps)
	for i := 1; i <= steps; i++ {
		x := float64(historyLen + i - 1)
		value := math.Round(t.Slope*x + t.Intercept)
		if value < 0 {
			value = 0
		}
		projection = append(projection, int64(value))
	}
	return projection
}
