package bot

import (
	"context"
	"errors"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/yourname/duty-bot/internal/duty"
)

func (h *Handler) HandleCallback(ctx context.Context, q *tgbotapi.CallbackQuery) {
	h.names.remember(q.From)
	data := q.Data

	switch data {
	case "duty_start":
		if err := h.duty.Start(q.From.ID); err != nil {
			h.toast(q.ID, "You're already on duty!")
			return
		}
		h.toast(q.ID, "Duty started!")
		return

	case "duty_end":
		if _, err := h.duty.End(q.From.ID, false); err != nil {
			if errors.Is(err, duty.ErrNotOnDuty) {
				h.toast(q.ID, "You're not on duty.")
				return
			}
		}
		h.toast(q.ID, "Duty ended.")
		return
	}

	// prompt:<id>:<continue|end>
	parts := strings.Split(data, ":")
	if len(parts) != 3 || parts[0] != "prompt" {
		h.toast(q.ID, "")
		return
	}
	h.resolvePrompt(q, parts[1], parts[2])
}

func (h *Handler) resolvePrompt(q *tgbotapi.CallbackQuery, promptID, verb string) {
	var action duty.Action
	switch verb {
	case "continue":
		action = duty.ActionContinue
	case "end":
		action = duty.ActionEnd
	default:
		h.toast(q.ID, "")
		return
	}

	h.mu.Lock()
	p := h.prompts[promptID]
	h.mu.Unlock()
	if p == nil {
		h.toast(q.ID, "This reminder has expired.")
		return
	}

	switch err := p.Resolve(q.From.ID, action); {
	case errors.Is(err, duty.ErrNotYourPrompt):
		h.toast(q.ID, "This reminder isn't for you.")
	case errors.Is(err, duty.ErrPromptDone):
		h.toast(q.ID, "This reminder has already been answered.")
	case err == nil && action == duty.ActionContinue:
		h.toast(q.ID, "Duty continued.")
	case err == nil:
		h.toast(q.ID, "Duty ended.")
	}
}
