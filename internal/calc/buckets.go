package calc

import (
	"fmt"
	"strings"
	"time"
)

// Granularity define el tamaño de los buckets de una serie de tendencia.
type Granularity string

const (
	GranularityDay    Granularity = "day"
	GranularityWeek   Granularity = "week"
	GranularityBiweek Granularity = "biweek"
	GranularityMonth  Granularity = "month"
)

// ParseGranularity valida la granularidad recibida por query param.
func ParseGranularity(s string) (Granularity, error) {
	switch Granularity(strings.ToLower(s)) {
	case GranularityDay:
		return GranularityDay, nil
	case GranularityWeek:
		return GranularityWeek, nil
	case GranularityBiweek:
		return GranularityBiweek, nil
	case GranularityMonth:
		return GranularityMonth, nil
	}
	return "", fmt.Errorf("granularidad desconocida %q: %w", s, ErrInvalidInput)
}

// Bucket es un intervalo [Start, End) de la serie. Los límites se generan
// antes de asignar registros para que los buckets vacíos aparezcan con
// valores en cero.
type Bucket struct {
	Label string    `json:"label"`
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Contains decide la pertenencia de una fecha al bucket. Intervalo cerrado
// en el inicio y abierto en el fin: una fecha cae exactamente en un bucket.
func (b Bucket) Contains(t time.Time) bool {
	t = dateOnly(t)
	return !t.Before(b.Start) && t.Before(b.End)
}

// BucketRange genera la lista ordenada de buckets que cubre [from, to].
// Las semanas inician en lunes; las quincenas parten cada mes calendario en
// días 1-15 y 16-fin. Los buckets de los extremos conservan sus límites
// naturales (un rango que empieza en miércoles pertenece a la semana cuyo
// lunes quedó fuera del rango), de modo que la asignación sea determinista.
func BucketRange(from, to time.Time, g Granularity) ([]Bucket, error) {
	from = dateOnly(from)
	to = dateOnly(to)
	if from.After(to) {
		return nil, fmt.Errorf("fecha inicial posterior a la final: %w", ErrInvalidRange)
	}

	var buckets []Bucket

	switch g {
	case GranularityDay:
		for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
			buckets = append(buckets, Bucket{
				Label: d.Format(time.DateOnly),
				Start: d,
				End:   d.AddDate(0, 0, 1),
			})
		}

	case GranularityWeek:
		for start := mondayOf(from); !start.After(to); start = start.AddDate(0, 0, 7) {
			buckets = append(buckets, Bucket{
				Label: start.Format(time.DateOnly),
				Start: start,
				End:   start.AddDate(0, 0, 7),
			})
		}

	case GranularityBiweek:
		for month := firstOfMonth(from); !month.After(to); month = month.AddDate(0, 1, 0) {
			mid := month.AddDate(0, 0, 15) // día 16
			next := month.AddDate(0, 1, 0)
			halves := []Bucket{
				{Label: month.Format("2006-01") + " Q1", Start: month, End: mid},
				{Label: month.Format("2006-01") + " Q2", Start: mid, End: next},
			}
			for _, half := range halves {
				// Omitir mitades que quedan por completo fuera del rango.
				if half.End.Before(from) || half.End.Equal(from) || half.Start.After(to) {
					continue
				}
				buckets = append(buckets, half)
			}
		}

	case GranularityMonth:
		for month := firstOfMonth(from); !month.After(to); month = month.AddDate(0, 1, 0) {
			buckets = append(buckets, Bucket{
				Label: month.Format("2006-01"),
				Start: month,
				End:   month.AddDate(0, 1, 0),
			})
		}

	default:
		return nil, fmt.Errorf("granularidad desconocida %q: %w", g, ErrInvalidInput)
	}

	return buckets, nil
}

// AssignBucket devuelve el índice del único bucket al que pertenece la
// fecha, o -1 si cae fuera de la serie. La pertenencia es exclusiva: los
// intervalos [Start, End) no se traslapan.
func AssignBucket(buckets []Bucket, date time.Time) int {
	for i, b := range buckets {
		if b.Contains(date) {
			return i
		}
	}
	return -1
}

// BucketSeries acumula montos y conteos por bucket. Los buckets sin registros
// quedan en cero, lo que mantiene la serie completa para graficar.
type BucketSeries struct {
	Buckets []Bucket
	Cents   []int64
	Counts  []int64
}

// NewBucketSeries arma la serie vacía sobre los límites ya generados.
func NewBucketSeries(buckets []Bucket) *BucketSeries {
	return &BucketSeries{
		Buckets: buckets,
		Cents:   make([]int64, len(buckets)),
		Counts:  make([]int64, len(buckets)),
	}
}

// Add suma un registro al bucket de su fecha. Registros fuera del rango se
// ignoran sin error: el caller ya filtró por rango en la consulta y un
// desfase de zona horaria no debe tumbar la serie.
func (s *BucketSeries) Add(date time.Time, amountCents int64) {
	idx := AssignBucket(s.Buckets, date)
	if idx < 0 {
		return
	}
	s.Cents[idx] += amountCents
	s.Counts[idx]++
}

// dateOnly descarta la hora y normaliza a UTC para que la pertenencia no
// dependa de la zona horaria del registro.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// mondayOf retrocede al lunes de la semana de la fecha dada.
func mondayOf(t time.Time) time.Time {
	weekday := int(t.Weekday())
	if weekday == 0 {
		weekday = 7 // domingo cierra la semana, no la abre
	}
	return t.AddDate(0, 0, -(weekday - 1))
}

func firstOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}
