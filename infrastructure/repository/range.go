package repository

import (
	"time"

	"github.com/Masterminds/squirrel"
)

// occurredWithin filtra una columna de fecha al rango [from, to). El límite
// superior es exclusivo: un registro en la medianoche exacta del corte
// pertenece solo al periodo que empieza ahí, nunca a dos cortes mensuales.
func occurredWithin(column string, from, to time.Time) squirrel.And {
	return squirrel.And{
		squirrel.GtOrEq{column: from},
		squirrel.Lt{column: to},
	}
}
