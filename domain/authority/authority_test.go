package authority

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/x-xyz/royaltymarket/domain"
)

func TestGate(t *testing.T) {
	g := NewGate("0x00000000000000000000000000000000000000AD")

	assert.True(t, g.IsAdmin("0x00000000000000000000000000000000000000ad"))
	assert.True(t, g.IsAdmin("0x00000000000000000000000000000000000000AD"))
	assert.False(t, g.IsAdmin("0x00000000000000000000000000000000000000ae"))
	assert.False(t, g.IsAdmin(""))
	assert.Equal(t, domain.Address("0x00000000000000000000000000000000000000ad"), g.Admin())

	assert.Panics(t, func() { NewGate("") })
}
