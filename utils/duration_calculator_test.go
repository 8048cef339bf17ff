package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNextMidnight(t *testing.T) {
	now := time.Date(2026, 10, 16, 22, 30, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2026, 10, 17, 0, 0, 0, 0, time.UTC), NextMidnight(now))

	endOfYear := time.Date(2026, 12, 31, 23, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Hour, NextMidnight(endOfYear).Sub(endOfYear))

	midnight := time.Date(2026, 10, 16, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, midnight.AddDate(0, 0, 1), NextMidnight(midnight), "strictly after")
}

func TestStartOfDay(t *testing.T) {
	now := time.Date(2026, 10, 16, 22, 30, 5, 9, time.UTC)
	assert.Equal(t, time.Date(2026, 10, 16, 0, 0, 0, 0, time.UTC), StartOfDay(now))
}
