package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func i64(v int64) *int64 { return &v }

func TestDateRangeContains(t *testing.T) {
	rng := DateRange{Start: i64(100), End: i64(200)}
	assert.True(t, rng.Contains(100))
	assert.True(t, rng.Contains(199))
	assert.False(t, rng.Contains(200))
	assert.False(t, rng.Contains(99))

	assert.True(t, DateRange{Start: i64(100)}.Contains(1_000_000))
	assert.True(t, DateRange{End: i64(100)}.Contains(-5))
	assert.True(t, DateRange{}.Unbounded())
	assert.False(t, rng.Unbounded())
}

func TestNewTimestamps(t *testing.T) {
	now := time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)
	ts := NewTimestamps(now)
	assert.Equal(t, now.Unix(), ts.CreatedAt)
	assert.Equal(t, ts.CreatedAt, ts.UpdatedAt)
	assert.Nil(t, ts.DeletedAt)
	assert.True(t, ts.Active())
}
