package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestToday(t *testing.T) {
	warsaw := time.FixedZone("CET", 3600)
	clock := FixedClock{At: time.Date(2024, 3, 31, 23, 30, 0, 0, warsaw)}

	today := Today(clock)

	assert.Equal(t, time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC), today)
}
