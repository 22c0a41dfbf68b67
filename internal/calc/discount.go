package calc

// DiscountType distingue entre sin descuento, porcentaje sobre el precio y
// monto fijo en centavos.
type DiscountType string

const (
	DiscountNone       DiscountType = "none"
	DiscountPercentage DiscountType = "percentage"
	DiscountFixed      DiscountType = "fixed"
)

// Discount es un descuento ya resuelto. Para tipo percentage, Value está en
// escala 0-100; para tipo fixed, Value son centavos.
type Discount struct {
	Type  DiscountType `json:"type"`
	Value float64      `json:"value"`
}

// ResolveDiscount aplica la regla de precedencia: un descuento por servicio,
// si existe y no es "none", anula por completo el descuento global de la
// clínica (no se acumulan). Sin descuento por servicio se cae al global.
// Devuelve nil cuando no aplica ninguno.
func ResolveDiscount(perService, global *Discount) *Discount {
	if perService != nil && perService.Type != DiscountNone && perService.Type != "" {
		return perService
	}
	if global != nil && global.Type != DiscountNone && global.Type != "" {
		return global
	}
	return nil
}

// DiscountAmountCents calcula el monto a descontar, con los valores
// recortados a rangos seguros: porcentaje a [0,100] y monto fijo a
// [0, priceCents]. El resultado siempre queda en [0, priceCents], por lo que
// el precio con descuento nunca es negativo.
func DiscountAmountCents(priceCents int64, d *Discount) int64 {
	if d == nil || priceCents <= 0 {
		return 0
	}

	switch d.Type {
	case DiscountPercentage:
		pct := d.Value
		if pct < 0 {
			pct = 0
		}
		if pct > 100 {
			pct = 100
		}
		return PercentageOf(priceCents, pct)
	case DiscountFixed:
		amount := int64(d.Value)
		if amount < 0 {
			return 0
		}
		if amount > priceCents {
			return priceCents
		}
		return amount
	}

	return 0
}

// PriceWithDiscountCents devuelve el precio final tras aplicar el descuento.
func PriceWithDiscountCents(priceCents int64, d *Discount) int64 {
	return priceCents - DiscountAmountCents(priceCents, d)
}
