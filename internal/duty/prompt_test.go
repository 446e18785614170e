package duty

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPromptResolveOnce(t *testing.T) {
	p := newPrompt(1, time.Minute)

	require.NoError(t, p.Resolve(1, ActionContinue))
	assert.Equal(t, ActionContinue, <-p.ch)

	// the second press loses
	err := p.Resolve(1, ActionEnd)
	assert.ErrorIs(t, err, ErrPromptDone)
}

func TestPromptWrongUser(t *testing.T) {
	p := newPrompt(1, time.Minute)

	// identity mismatch is rejected before anything else
	err := p.Resolve(2, ActionContinue)
	assert.ErrorIs(t, err, ErrNotYourPrompt)

	// still unresolved, so the right user can answer
	require.NoError(t, p.Resolve(1, ActionEnd))

	// and a wrong user is still rejected as unauthorized, not as done
	err = p.Resolve(2, ActionEnd)
	assert.ErrorIs(t, err, ErrNotYourPrompt)
}

func TestPromptExpired(t *testing.T) {
	p := newPrompt(1, time.Minute)
	p.expire()

	err := p.Resolve(1, ActionContinue)
	assert.ErrorIs(t, err, ErrPromptDone)
}

func TestPromptIDsUnique(t *testing.T) {
	a := newPrompt(1, time.Minute)
	b := newPrompt(1, time.Minute)
	assert.NotEqual(t, a.ID, b.ID)
}
