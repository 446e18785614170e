package bot

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAdminGate(t *testing.T) {
	g := NewAdminGate([]int64{10, 20})

	assert.True(t, g.Allowed(10))
	assert.True(t, g.Allowed(20))
	assert.False(t, g.Allowed(30))
	assert.False(t, g.Allowed(0))
}

func TestAdminGateEmpty(t *testing.T) {
	g := NewAdminGate(nil)
	assert.False(t, g.Allowed(10))
}
