package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTag(t *testing.T) {
	assert.Equal(t, []string{"mode:full", "result:ok"}, parseTag([]string{"mode", "full", "result", "ok"}))
	assert.Empty(t, parseTag(nil))
	assert.Panics(t, func() { parseTag([]string{"dangling"}) })
}

func TestBumpWithoutAgent(t *testing.T) {
	met := New("purchase")
	require.NotPanics(t, func() {
		met.BumpSum("count", 1, "mode", "royalty")
		met.BumpAvg("price", 3.5)
		met.BumpHistogram("splits", 2)
		met.BumpTime("time").End()
		// odd tag count is swallowed by recoverBump
		met.BumpSum("count", 1, "mode")
		met.BumpTime("time", "mode").End()
	})
}
