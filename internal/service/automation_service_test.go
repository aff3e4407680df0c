package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDayWindow(t *testing.T) {
	loc, err := time.LoadLocation("America/Sao_Paulo")
	require.NoError(t, err)

	at := time.Date(2024, 6, 10, 15, 45, 12, 0, loc)
	start, end := dayWindow(at)

	assert.Equal(t, time.Date(2024, 6, 10, 0, 0, 0, 0, loc), start)
	assert.Equal(t, time.Date(2024, 6, 11, 0, 0, 0, 0, loc), end)

	// The window preserves the caller's location, so a shop's "tomorrow"
	// follows the shop timezone.
	assert.Equal(t, loc, start.Location())
}

func TestDayWindowMidnightBoundary(t *testing.T) {
	at := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)
	start, end := dayWindow(at)

	assert.Equal(t, at, start)
	assert.Equal(t, at.AddDate(0, 0, 1), end)
	assert.True(t, !at.Before(start) && at.Before(end))
}
