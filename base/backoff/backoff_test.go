package backoff

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExponential(t *testing.T) {
	b := NewExponential(time.Millisecond, 4*time.Millisecond)
	expected := []time.Duration{
		time.Millisecond,
		2 * time.Millisecond,
		4 * time.Millisecond,
		4 * time.Millisecond, // capped
	}
	for i, exp := range expected {
		assert.Equal(t, exp, b.NextDuration, "round %d", i)
		require.NoError(t, b.Backoff(context.Background()))
	}

	b.Reset()
	assert.Equal(t, time.Millisecond, b.NextDuration)
}

func TestBackoffCancelled(t *testing.T) {
	b := NewExponential(time.Hour, 0)
	c, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, b.Backoff(c), context.Canceled)
	assert.Equal(t, time.Hour, b.NextDuration)
}
