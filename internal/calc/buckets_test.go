package calc

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestParseGranularity(t *testing.T) {
	g, err := ParseGranularity("WEEK")
	require.NoError(t, err)
	assert.Equal(t, GranularityWeek, g)

	_, err = ParseGranularity("quarter")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestBucketRangeDays(t *testing.T) {
	buckets, err := BucketRange(date(2024, time.March, 1), date(2024, time.March, 5), GranularityDay)
	require.NoError(t, err)

	require.Len(t, buckets, 5)
	assert.Equal(t, "2024-03-01", buckets[0].Label)
	assert.Equal(t, "2024-03-05", buckets[4].Label)
	assert.Equal(t, date(2024, time.March, 6), buckets[4].End)
}

func TestBucketRangeWeeks(t *testing.T) {
	// El 6 de marzo de 2024 es miércoles: la primera semana abre en el lunes
	// 4 aunque el lunes quede fuera del rango pedido.
	buckets, err := BucketRange(date(2024, time.March, 6), date(2024, time.March, 20), GranularityWeek)
	require.NoError(t, err)

	require.Len(t, buckets, 3)
	assert.Equal(t, date(2024, time.March, 4), buckets[0].Start)
	assert.Equal(t, date(2024, time.March, 11), buckets[1].Start)
	assert.Equal(t, date(2024, time.March, 18), buckets[2].Start)

	for _, b := range buckets {
		assert.Equal(t, time.Monday, b.Start.Weekday())
		assert.Equal(t, b.Start.AddDate(0, 0, 7), b.End)
	}
}

func TestBucketRangeWeekSundayBelongsToPreviousMonday(t *testing.T) {
	// El domingo cierra la semana: 10 de marzo de 2024 pertenece a la semana
	// del lunes 4.
	buckets, err := BucketRange(date(2024, time.March, 10), date(2024, time.March, 10), GranularityWeek)
	require.NoError(t, err)

	require.Len(t, buckets, 1)
	assert.Equal(t, date(2024, time.March, 4), buckets[0].Start)
}

func TestBucketRangeBiweeks(t *testing.T) {
	buckets, err := BucketRange(date(2024, time.February, 1), date(2024, time.March, 31), GranularityBiweek)
	require.NoError(t, err)

	require.Len(t, buckets, 4)
	assert.Equal(t, "2024-02 Q1", buckets[0].Label)
	assert.Equal(t, "2024-02 Q2", buckets[1].Label)
	assert.Equal(t, "2024-03 Q1", buckets[2].Label)
	assert.Equal(t, "2024-03 Q2", buckets[3].Label)

	// La primera quincena cubre días 1-15; la segunda del 16 al fin de mes,
	// incluido el 29 de un febrero bisiesto.
	assert.Equal(t, date(2024, time.February, 16), buckets[0].End)
	assert.Equal(t, date(2024, time.March, 1), buckets[1].End)
	assert.True(t, buckets[1].Contains(date(2024, time.February, 29)))
	assert.False(t, buckets[0].Contains(date(2024, time.February, 16)))
	assert.True(t, buckets[1].Contains(date(2024, time.February, 16)))
}

func TestBucketRangeBiweekSkipsHalvesOutsideRange(t *testing.T) {
	// Rango que inicia el 20: la primera quincena del mes queda fuera.
	buckets, err := BucketRange(date(2024, time.March, 20), date(2024, time.March, 31), GranularityBiweek)
	require.NoError(t, err)

	require.Len(t, buckets, 1)
	assert.Equal(t, "2024-03 Q2", buckets[0].Label)
}

func TestBucketRangeMonths(t *testing.T) {
	buckets, err := BucketRange(date(2023, time.November, 10), date(2024, time.February, 5), GranularityMonth)
	require.NoError(t, err)

	require.Len(t, buckets, 4)
	assert.Equal(t, "2023-11", buckets[0].Label)
	assert.Equal(t, "2024-02", buckets[3].Label)
}

func TestBucketRangeInvalidRange(t *testing.T) {
	_, err := BucketRange(date(2024, time.March, 10), date(2024, time.March, 1), GranularityDay)
	assert.ErrorIs(t, err, ErrInvalidRange)
}

func TestAssignBucket(t *testing.T) {
	buckets, err := BucketRange(date(2024, time.March, 1), date(2024, time.March, 31), GranularityWeek)
	require.NoError(t, err)

	// Cada fecha del rango cae exactamente en un bucket.
	for d := date(2024, time.March, 1); !d.After(date(2024, time.March, 31)); d = d.AddDate(0, 0, 1) {
		idx := AssignBucket(buckets, d)
		require.NotEqual(t, -1, idx, "fecha sin bucket: %s", d.Format(time.DateOnly))

		hits := 0
		for _, b := range buckets {
			if b.Contains(d) {
				hits++
			}
		}
		assert.Equal(t, 1, hits, "pertenencia no exclusiva: %s", d.Format(time.DateOnly))
	}

	// El fin de un bucket pertenece al siguiente, no al anterior.
	assert.Equal(t, -1, AssignBucket(buckets, date(2024, time.April, 10)))

	// La hora y la zona del registro no cambian la asignación.
	withTime := time.Date(2024, time.March, 10, 23, 45, 0, 0, time.FixedZone("CST", -6*3600))
	assert.Equal(t, AssignBucket(buckets, date(2024, time.March, 10)), AssignBucket(buckets, withTime))
}

func TestBucketSeries(t *testing.T) {
	buckets, err := BucketRange(date(2024, time.March, 1), date(2024, time.March, 31), GranularityBiweek)
	require.NoError(t, err)

	series := NewBucketSeries(buckets)
	series.Add(date(2024, time.March, 3), 50_000)
	series.Add(date(2024, time.March, 15), 30_000)
	series.Add(date(2024, time.March, 16), 20_000)
	series.Add(date(2024, time.April, 1), 99_999) // fuera de rango, se ignora

	require.Len(t, series.Cents, 2)
	assert.Equal(t, int64(80_000), series.Cents[0])
	assert.Equal(t, int64(20_000), series.Cents[1])
	assert.Equal(t, int64(2), series.Counts[0])
	assert.Equal(t, int64(1), series.Counts[1])
}

func TestFitLinearTrend(t *testing.T) {
	// Serie perfectamente lineal: y = 2x + 1.
	trend, ok := FitLinearTrend([]float64{1, 3, 5, 7})
	require.True(t, ok)
	assert.InDelta(t, 2.0, trend.Slope, 0.001)
	assert.InDelta(t, 1.0, trend.Intercept, 0.001)

	projected := trend.Project(4, 2)
	require.Len(t, projected, 2)
	assert.Equal(t, int64(9), projected[0])
	assert.Equal(t, int64(11), projected[1])

	_, ok = FitLinearTrend([]float64{5})
	assert.False(t, ok)
}

func TestLinearTrendProjectClampsNegative(t *testing.T) {
	// Una tendencia a la baja no proyecta conteos negativos.
	trend, ok := FitLinearTrend([]float64{10, 6, 2})
	require.True(t, ok)

	projected := trend.Project(3, 2)
	require.Len(t, projected, 2)
	for _, v := range projected {
		assert.GreaterOrEqual(t, v, int64(0))
	}
}
