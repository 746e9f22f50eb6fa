package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTimeClocker(t *testing.T) {
	before := time.Now()
	now := New().Now()

	assert.Equal(t, time.UTC, now.Location())
	assert.False(t, now.Before(before.Truncate(time.Second)))
}

func TestFixed(t *testing.T) {
	at := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	var c Clocker = Fixed(at)
	assert.Equal(t, at, c.Now())
	assert.Equal(t, at, c.Now())
}
