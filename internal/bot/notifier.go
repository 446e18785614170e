package bot

import (
	"context"
	"fmt"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/yourname/duty-bot/internal/duty"
)

const eventTimeFormat = "Monday, 02 January 2006 15:04"

// SendPrompt DMs the reminder with Continue/End buttons and registers
// the prompt so callbacks can resolve it. In a private chat the chat id
// equals the user id. A send failure is a delivery failure: no retry,
// the manager auto-ends the session.
func (h *Handler) SendPrompt(ctx context.Context, p *duty.Prompt) error {
	h.mu.Lock()
	h.prompts[p.ID] = p
	h.mu.Unlock()

	msg := tgbotapi.NewMessage(p.UserID,
		"⏰ *Duty Reminder*\nYou're currently on duty. Do you want to continue or end?\n\n_You have "+
			humanWindow(p.Window)+" to respond._")
	msg.ParseMode = "Markdown"
	msg.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("✅ Continue", "prompt:"+p.ID+":continue"),
			tgbotapi.NewInlineKeyboardButtonData("🛑 End", "prompt:"+p.ID+":end"),
		),
	)

	if _, err := h.api.Send(msg); err != nil {
		h.dropPrompt(p.ID)
		return err
	}

	// keep the registration a little past the deadline so a late press
	// still gets a proper "already answered" instead of "expired"
	time.AfterFunc(p.Window+time.Minute, func() { h.dropPrompt(p.ID) })
	return nil
}

// SendEvent renders a structured duty event into the log channel.
func (h *Handler) SendEvent(e duty.Event) {
	var b strings.Builder

	switch e.Kind {
	case duty.EventDutyStarted:
		b.WriteString("🟢 *Duty Started*\n")
		fmt.Fprintf(&b, "User: %s\n", h.names.display(e.UserID))
		fmt.Fprintf(&b, "Time: %s", e.At.Format(eventTimeFormat))

	case duty.EventReminderSent:
		b.WriteString("⏰ *Reminder Sent*\n")
		fmt.Fprintf(&b, "User: %s\n", h.names.display(e.UserID))
		fmt.Fprintf(&b, "Time: %s", e.At.Format(eventTimeFormat))

	case duty.EventContinued:
		b.WriteString("✅ *User Continued*\n")
		fmt.Fprintf(&b, "User: %s\n", h.names.display(e.UserID))
		fmt.Fprintf(&b, "Continues: %d\n", e.Continues)
		fmt.Fprintf(&b, "Time: %s", e.At.Format(eventTimeFormat))

	case duty.EventDutyEnded:
		if e.Auto {
			b.WriteString("🔴 *Duty Auto-Ended*\n")
		} else {
			b.WriteString("🔴 *Duty Ended*\n")
		}
		fmt.Fprintf(&b, "User: %s\n", h.names.display(e.UserID))
		fmt.Fprintf(&b, "End Time: %s\n", e.At.Format(eventTimeFormat))
		fmt.Fprintf(&b, "Duration: %s\n", e.Duration.Truncate(time.Second))
		fmt.Fprintf(&b, "Points Earned: %d\n", e.Earned)
		fmt.Fprintf(&b, "Continues: %d", e.Continues)

	case duty.EventDeliveryFailed:
		b.WriteString("⚠️ *Failed to DM reminder*\n")
		fmt.Fprintf(&b, "User: %s\n", h.names.display(e.UserID))
		fmt.Fprintf(&b, "Time: %s\n", e.At.Format(eventTimeFormat))
		fmt.Fprintf(&b, "Error: %v", e.Err)

	default:
		return
	}

	h.reply(h.cfg.LogChannelID, b.String(), true)
}

func (h *Handler) dropPrompt(id string) {
	h.mu.Lock()
	delete(h.prompts, id)
	h.mu.Unlock()
}

func humanWindow(d time.Duration) string {
	if d >= time.Minute && d%time.Minute == 0 {
		m := int(d / time.Minute)
		if m == 1 {
			return "1 minute"
		}
		return fmt.Sprintf("%d minutes", m)
	}
	return d.String()
}
