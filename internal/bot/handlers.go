package bot

import (
	"context"
	"log"
	"strings"
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/yourname/duty-bot/internal/config"
	"github.com/yourname/duty-bot/internal/duty"
	"github.com/yourname/duty-bot/internal/ledger"
)

type Handler struct {
	api *tgbotapi.BotAPI
	cfg config.Config

	duty   *duty.Manager
	ledger *ledger.Ledger
	gate   *AdminGate
	names  *nameCache

	mu      sync.Mutex
	prompts map[string]*duty.Prompt
}

func NewHandler(ctx context.Context, api *tgbotapi.BotAPI, cfg config.Config, l *ledger.Ledger) *Handler {
	h := &Handler{
		api:     api,
		cfg:     cfg,
		ledger:  l,
		gate:    NewAdminGate(cfg.AdminIDs),
		names:   newNameCache(),
		prompts: make(map[string]*duty.Prompt),
	}
	h.duty = duty.NewManager(ctx, h, l, duty.Options{
		MinInterval:   cfg.MinInterval,
		MaxInterval:   cfg.MaxInterval,
		RespondWindow: cfg.RespondWindow,
	})
	return h
}

func (h *Handler) HandleUpdate(ctx context.Context, upd tgbotapi.Update) {
	if upd.CallbackQuery != nil {
		h.HandleCallback(ctx, upd.CallbackQuery)
		return
	}

	if upd.Message == nil {
		return
	}

	msg := upd.Message
	h.names.remember(msg.From)

	// commands only in private chats
	if !msg.Chat.IsPrivate() {
		return
	}

	text := strings.TrimSpace(msg.Text)
	if text == "" {
		return
	}

	switch {
	case strings.HasPrefix(text, "/start"):
		h.reply(msg.Chat.ID, "Hi! I'm DutyBot.\n\n"+
			"Use the buttons in the duty channel to start or end your duty shift. "+
			"While on duty I'll check in on you every 20-30 minutes; you get 1 point per 4 minutes served.\n\n"+
			"Admin commands:\n"+
			"/total <id>\n/addpoints <id> <amount>\n/resetpoints <id>\n/forceend <id>\n/duties", false)

	case strings.HasPrefix(text, "/total"):
		h.handleTotal(ctx, msg, text)

	case strings.HasPrefix(text, "/addpoints"):
		h.handleAddPoints(ctx, msg, text)

	case strings.HasPrefix(text, "/resetpoints"):
		h.handleResetPoints(ctx, msg, text)

	case strings.HasPrefix(text, "/forceend"):
		h.handleForceEnd(ctx, msg, text)

	case strings.HasPrefix(text, "/duties"):
		h.handleDuties(ctx, msg)
	}
}

// PostDutyBoard puts the start/end buttons into the duty channel.
func (h *Handler) PostDutyBoard() {
	msg := tgbotapi.NewMessage(h.cfg.DutyChannelID, "🛡 *Duty Handler*\nUse the buttons below to manage your duty.")
	msg.ParseMode = "Markdown"
	msg.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🟢 Start Duty", "duty_start"),
			tgbotapi.NewInlineKeyboardButtonData("🔴 End Duty", "duty_end"),
		),
	)
	if _, err := h.api.Send(msg); err != nil {
		log.Printf("post duty board: %v", err)
	}
}

func (h *Handler) reply(chatID int64, text string, markdown bool) {
	msg := tgbotapi.NewMessage(chatID, text)
	if markdown {
		msg.ParseMode = "Markdown"
	}
	_, _ = h.api.Send(msg)
}

func (h *Handler) toast(callbackID, text string) {
	_, _ = h.api.Request(tgbotapi.NewCallback(callbackID, text))
}
