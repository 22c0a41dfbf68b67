package calc

import (
	"fmt"
	"math"
)

// Métricas de adquisición de marketing: CAC, LTV, conversión, ratio LTV/CAC
// y ROI. Todas trabajan sobre agregados por periodo que el caller ya filtró
// por rango de fechas; el motor nunca asume "mes actual".

// CAC es el costo de adquisición por paciente del periodo.
//
// Guarded zero documentado: con cero pacientes nuevos el CAC se reporta como
// 0 por convención ("no hubo costo de adquisición porque no se adquirió
// nadie"), no como error ni como infinito.
func CAC(marketingExpensesCents int64, newPatients int) int64 {
	if newPatients <= 0 || marketingExpensesCents <= 0 {
		return 0
	}
	return int64(math.Round(float64(marketingExpensesCents) / float64(newPatients)))
}

// LTV aproxima el valor de vida como ingreso del periodo entre pacientes
// activos. El denominador se fija en mínimo 1 para que un padrón vacío
// reporte el ingreso completo en lugar de dividir por cero.
func LTV(periodRevenueCents int64, activePatients int) int64 {
	if periodRevenueCents <= 0 {
		return 0
	}
	if activePatients < 1 {
		activePatients = 1
	}
	return int64(math.Round(float64(periodRevenueCents) / float64(activePatients)))
}

// ConversionRate es el porcentaje (0-100) del padrón de pacientes que llegó
// a tratamiento. Con padrón vacío devuelve 0. El numerador debe ser un
// subconjunto del denominador para que el resultado quede acotado a 100.
func ConversionRate(convertedPatients, totalPatients int) float64 {
	if totalPatients <= 0 || convertedPatients < 0 {
		return 0
	}
	return roundTwoDecimals(float64(convertedPatients) / float64(totalPatients) * 100)
}

// LTVCACRatio devuelve el ratio LTV/CAC redondeado a dos decimales.
// unbounded en verdadero señala el caso CAC = 0 con LTV positivo: la
// adquisición fue gratuita y el ratio no tiene cota; se expone como marca
// explícita en vez de serializar un infinito.
func LTVCACRatio(ltvCents, cacCents int64) (ratio float64, unbounded bool) {
	if cacCents <= 0 {
		return 0, ltvCents > 0
	}
	if ltvCents < 0 {
		return 0, false
	}
	return roundTwoDecimals(float64(ltvCents) / float64(cacCents)), false
}

// RatioQuality clasifica el ratio LTV/CAC en un nivel cualitativo.
type RatioQuality struct {
	Label   string `json:"label"`
	Color   string `json:"color"`
	Message string `json:"message"`
}

// Tabla única de umbrales; los límites son decisión de producto y viven solo
// aquí para que ajustar un corte no toque lógica.
var ratioQualityTable = []struct {
	min     float64
	quality RatioQuality
}{
	{3, RatioQuality{Label: "excellent", Color: "green", Message: "Excelente. Cada peso invertido genera más de 3 pesos"}},
	{2, RatioQuality{Label: "good", Color: "blue", Message: "Bueno. Modelo sostenible con margen saludable"}},
	{1, RatioQuality{Label: "acceptable", Color: "yellow", Message: "Aceptable. Considera optimizar canales de adquisición"}},
	{0, RatioQuality{Label: "critical", Color: "red", Message: "Crítico. Estás perdiendo dinero en adquisición de clientes"}},
}

var ratioQualityUnknown = RatioQuality{
	Label:   "unknown",
	Color:   "gray",
	Message: "Datos insuficientes para calcular el ratio",
}

// GetRatioQuality busca el nivel en la tabla de umbrales. Un ratio sin cota
// (CAC cero con LTV positivo) cuenta como excelente.
func GetRatioQuality(ratio float64, unbounded bool) RatioQuality {
	if unbounded {
		return ratioQualityTable[0].quality
	}
	for _, tier := range ratioQualityTable {
		if ratio >= tier.min && ratio > 0 {
			return tier.quality
		}
	}
	return ratioQualityUnknown
}

// ROI devuelve el retorno de inversión en escala 0-100 (puede ser negativo).
// defined en falso marca el caso inversión cero: el ROI es indefinido y debe
// serializarse como null, nunca como 0% ni como infinito.
func ROI(revenueCents, investmentCents int64) (roi float64, defined bool, err error) {
	if revenueCents < 0 {
		return 0, false, fmt.Errorf("ingreso negativo: %w", ErrInvalidInput)
	}
	if investmentCents <= 0 {
		return 0, false, nil
	}

	profit := revenueCents - investmentCents
	return roundTwoDecimals(float64(profit) / float64(investmentCents) * 100), true, nil
}

// TargetCAC calcula el CAC objetivo para sostener un ratio deseado.
func TargetCAC(desiredLTVCents int64, targetRatio float64) int64 {
	if targetRatio <= 0 || desiredLTVCents <= 0 {
		return 0
	}
	return int64(math.Round(float64(desiredLTVCents) / targetRatio))
}

// GrowthRate es el crecimiento porcentual entre dos periodos (0-100, puede
// ser negativo). Sin periodo anterior devuelve 0.
func GrowthRate(current, previous int) float64 {
	if previous <= 0 {
		return 0
	}
	return roundTwoDecimals(float64(current-previous) / float64(previous) * 100)
}

// PaybackPeriodMonths estima en meses la recuperación del CAC con el ingreso
// mensual promedio por paciente, redondeado a un decimal.
func PaybackPeriodMonths(cacCents, avgMonthlyRevenueCents int64) float64 {
	if cacCents <= 0 || avgMonthlyRevenueCents <= 0 {
		return 0
	}
	months := float64(cacCents) / float64(avgMonthlyRevenueCents)
	return math.Round(months*10) / 10
}
