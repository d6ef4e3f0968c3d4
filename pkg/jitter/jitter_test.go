package jitter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWithRand(t *testing.T) {
	assert.Equal(t, time.Second, WithRand(time.Second, 0.5, func() float64 { return 0 }))
	assert.Equal(t, 1500*time.Millisecond, WithRand(time.Second, 0.5, func() float64 { return 1 }))
	assert.Equal(t, time.Second, WithRand(time.Second, 0, func() float64 { return 1 }))
}

func TestExponentialBackoff_Bounds(t *testing.T) {
	for attempt := 0; attempt < 10; attempt++ {
		d := ExponentialBackoff(time.Second, 8*time.Second, attempt, DefaultJitter)

		expectedBase := time.Second << attempt
		if expectedBase > 8*time.Second {
			expectedBase = 8 * time.Second
		}
		assert.GreaterOrEqual(t, d, expectedBase)
		assert.LessOrEqual(t, d, expectedBase+expectedBase/2)
	}
}
