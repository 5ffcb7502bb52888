package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/go-sql-driver/mysql"
	"github.com/jekabolt/stockroom/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActiveRange(t *testing.T) {
	start, end := int64(10), int64(20)

	where, params := activeRange(entity.DateRange{})
	assert.Equal(t, "deleted_at IS NULL", where)
	assert.Empty(t, params)

	where, params = activeRange(entity.DateRange{Start: &start, End: &end})
	assert.Equal(t, "deleted_at IS NULL AND created_at >= :start AND created_at < :end", where)
	assert.Equal(t, map[string]any{"start": start, "end": end}, params)
}

func TestNamedQueryExpandsSlices(t *testing.T) {
	query, args, err := namedQuery(
		`SELECT id FROM product WHERE id IN (:ids) AND deleted_at IS NULL AND created_at >= :start`,
		map[string]any{"ids": []string{"a", "b", "c"}, "start": int64(5)},
	)
	require.NoError(t, err)
	assert.Equal(t, `SELECT id FROM product WHERE id IN (?, ?, ?) AND deleted_at IS NULL AND created_at >= ?`, query)
	assert.Equal(t, []any{"a", "b", "c", int64(5)}, args)
}

func TestIsErrorRepeat(t *testing.T) {
	ms := &MYSQLStore{}
	deadlock := fmt.Errorf("insert: %w", &mysql.MySQLError{Number: errDeadlock})

	assert.True(t, ms.IsErrorRepeat(deadlock))
	assert.False(t, ms.IsErrorRepeat(&mysql.MySQLError{Number: 1062}))
	assert.False(t, ms.IsErrorRepeat(errors.New("boom")))
}

func TestMigrationsEmbedded(t *testing.T) {
	migrations, err := migrationSource().FindMigrations()
	require.NoError(t, err)
	require.NotEmpty(t, migrations)
	assert.Equal(t, "0001_inventory.sql", migrations[0].Id)
}
