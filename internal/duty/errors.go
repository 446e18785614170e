package duty

import "errors"

var (
	ErrAlreadyOnDuty = errors.New("already on duty")
	ErrNotOnDuty     = errors.New("not on duty")

	// ErrNotYourPrompt: the responder is not the user the prompt was
	// sent to. Checked before prompt state, so it wins every time.
	ErrNotYourPrompt = errors.New("prompt belongs to another user")

	// ErrPromptDone: the prompt was already answered or has expired.
	ErrPromptDone = errors.New("prompt already resolved")
)
