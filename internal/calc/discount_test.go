package calc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveDiscount(t *testing.T) {
	perService := &Discount{Type: DiscountPercentage, Value: 10}
	global := &Discount{Type: DiscountFixed, Value: 5_000}
	none := &Discount{Type: DiscountNone}

	tests := []struct {
		name       string
		perService *Discount
		global     *Discount
		want       *Discount
	}{
		{"por servicio anula al global", perService, global, perService},
		{"sin descuento por servicio se usa el global", nil, global, global},
		{"descuento por servicio tipo none cae al global", none, global, global},
		{"ninguno configurado", nil, nil, nil},
		{"ambos en none", none, none, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveDiscount(tt.perService, tt.global))
		})
	}
}

func TestDiscountAmountCents(t *testing.T) {
	tests := []struct {
		name       string
		priceCents int64
		discount   *Discount
		want       int64
	}{
		{"sin descuento", 31_408, nil, 0},
		{"diez por ciento", 31_408, &Discount{Type: DiscountPercentage, Value: 10}, 3_141},
		{"cien por ciento", 31_408, &Discount{Type: DiscountPercentage, Value: 100}, 31_408},
		{"porcentaje por encima del tope se recorta", 31_408, &Discount{Type: DiscountPercentage, Value: 150}, 31_408},
		{"porcentaje negativo se recorta a cero", 31_408, &Discount{Type: DiscountPercentage, Value: -5}, 0},
		{"monto fijo", 31_408, &Discount{Type: DiscountFixed, Value: 5_000}, 5_000},
		{"monto fijo mayor al precio se recorta", 31_408, &Discount{Type: DiscountFixed, Value: 50_000}, 31_408},
		{"monto fijo negativo se recorta a cero", 31_408, &Discount{Type: DiscountFixed, Value: -100}, 0},
		{"precio cero", 0, &Discount{Type: DiscountPercentage, Value: 50}, 0},
		{"tipo none", 31_408, &Discount{Type: DiscountNone, Value: 50}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DiscountAmountCents(tt.priceCents, tt.discount)
			assert.Equal(t, tt.want, got)

			// El monto descontado siempre queda dentro del precio.
			assert.GreaterOrEqual(t, got, int64(0))
			assert.LessOrEqual(t, got, max(tt.priceCents, 0))
		})
	}
}

func TestPriceWithDiscountCents(t *testing.T) {
	d := &Discount{Type: DiscountPercentage, Value: 15}
	assert.Equal(t, int64(26_697), PriceWithDiscountCents(31_408, d))

	// Un descuento nunca deja el precio en negativo.
	assert.Equal(t, int64(0), PriceWithDiscountCents(1_000, &Discount{Type: DiscountFixed, Value: 2_000}))
}
