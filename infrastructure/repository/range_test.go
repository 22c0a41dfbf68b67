package repository

import (
	"testing"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOccurredWithin(t *testing.T) {
	from := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	query, args, err := squirrel.
		Select("COUNT(*)").
		From(patientsTable).
		Where(occurredWithin("acquired_at", from, to)).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	require.NoError(t, err)

	// El corte superior es exclusivo: un registro en la medianoche exacta del
	// 1 de marzo pertenece a marzo, no a febrero
	assert.Contains(t, query, "acquired_at >= $1")
	assert.Contains(t, query, "acquired_at < $2")
	assert.NotContains(t, query, "acquired_at <= $2")
	assert.Equal(t, []interface{}{from, to}, args)
}
