package bot

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/yourname/duty-bot/internal/duty"
)

func (h *Handler) handleTotal(ctx context.Context, msg *tgbotapi.Message, text string) {
	if !h.requireAdmin(msg) {
		return
	}
	userID, ok := h.argUserID(msg.Chat.ID, text, "/total <user id>")
	if !ok {
		return
	}

	total := h.ledger.Get(strconv.FormatInt(userID, 10))
	h.reply(msg.Chat.ID, fmt.Sprintf("%s has %d points.", h.names.display(userID), total), false)
}

func (h *Handler) handleAddPoints(ctx context.Context, msg *tgbotapi.Message, text string) {
	if !h.requireAdmin(msg) {
		return
	}

	parts := strings.Fields(text)
	if len(parts) < 3 {
		h.reply(msg.Chat.ID, "Use: /addpoints <user id> <amount>", false)
		return
	}
	userID, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		h.reply(msg.Chat.ID, "❌ Bad user id. Use: /addpoints <user id> <amount>", false)
		return
	}
	amount, err := strconv.ParseInt(parts[2], 10, 64)
	if err != nil {
		h.reply(msg.Chat.ID, "❌ Bad amount. Use: /addpoints <user id> <amount>", false)
		return
	}

	total, err := h.ledger.Add(ctx, strconv.FormatInt(userID, 10), amount)
	if err != nil {
		h.reply(msg.Chat.ID, "❌ Points updated but saving failed, check the logs.", false)
		return
	}
	h.reply(msg.Chat.ID, fmt.Sprintf("✅ Added %d points to %s (total %d).", amount, h.names.display(userID), total), false)
}

func (h *Handler) handleResetPoints(ctx context.Context, msg *tgbotapi.Message, text string) {
	if !h.requireAdmin(msg) {
		return
	}
	userID, ok := h.argUserID(msg.Chat.ID, text, "/resetpoints <user id>")
	if !ok {
		return
	}

	if err := h.ledger.Set(ctx, strconv.FormatInt(userID, 10), 0); err != nil {
		h.reply(msg.Chat.ID, "❌ Points reset but saving failed, check the logs.", false)
		return
	}
	h.reply(msg.Chat.ID, fmt.Sprintf("✅ Points reset for %s.", h.names.display(userID)), false)
}

func (h *Handler) handleForceEnd(ctx context.Context, msg *tgbotapi.Message, text string) {
	if !h.requireAdmin(msg) {
		return
	}
	userID, ok := h.argUserID(msg.Chat.ID, text, "/forceend <user id>")
	if !ok {
		return
	}

	if _, err := h.duty.ForceEnd(userID); err != nil {
		if errors.Is(err, duty.ErrNotOnDuty) {
			h.reply(msg.Chat.ID, "That user is not on duty.", false)
			return
		}
	}
	h.reply(msg.Chat.ID, fmt.Sprintf("✅ Force ended duty for %s.", h.names.display(userID)), false)
}

func (h *Handler) handleDuties(ctx context.Context, msg *tgbotapi.Message) {
	if !h.requireAdmin(msg) {
		return
	}

	active := h.duty.Active()
	if len(active) == 0 {
		h.reply(msg.Chat.ID, "No active duties.", false)
		return
	}

	var b strings.Builder
	b.WriteString("🛡 *Active Duties:*\n\n")
	for _, s := range active {
		fmt.Fprintf(&b, "%s — since %s, continues: %d\n",
			h.names.display(s.UserID),
			s.StartTime.Format("15:04:05"),
			s.Continues,
		)
	}
	h.reply(msg.Chat.ID, b.String(), true)
}

func (h *Handler) requireAdmin(msg *tgbotapi.Message) bool {
	if !h.gate.Allowed(msg.From.ID) {
		h.reply(msg.Chat.ID, "You are not authorized to use this command.", false)
		return false
	}
	return true
}

func (h *Handler) argUserID(chatID int64, text, usage string) (int64, bool) {
	parts := strings.Fields(text)
	if len(parts) < 2 {
		h.reply(chatID, "Use: "+usage, false)
		return 0, false
	}
	id, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil || id <= 0 {
		h.reply(chatID, "❌ Bad user id. Use: "+usage, false)
		return 0, false
	}
	return id, true
}
