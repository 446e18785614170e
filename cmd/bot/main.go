package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/yourname/duty-bot/internal/bot"
	"github.com/yourname/duty-bot/internal/config"
	"github.com/yourname/duty-bot/internal/db"
	"github.com/yourname/duty-bot/internal/ledger"
	"github.com/yourname/duty-bot/internal/store"
)

func main() {
	cfg := config.MustLoad()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var docStore store.DocumentStore
	if cfg.LedgerBackend == "postgres" {
		pool := db.MustConnect(ctx, cfg.DatabaseURL)
		defer pool.Close()
		if err := db.EnsureSchema(ctx, pool); err != nil {
			log.Fatalf("schema: %v", err)
		}
		docStore = store.NewPostgres(pool, "points")
	} else {
		docStore = store.NewFile(cfg.LedgerPath)
	}

	// Missing document means a fresh ledger; anything else is fatal.
	lgr, err := ledger.Open(ctx, docStore)
	if err != nil {
		log.Fatalf("ledger: %v", err)
	}

	botAPI, err := tgbotapi.NewBotAPI(cfg.BotToken)
	if err != nil {
		log.Fatalf("bot init: %v", err)
	}
	botAPI.Debug = false

	h := bot.NewHandler(ctx, botAPI, cfg, lgr)

	// Graceful shutdown
	go func() {
		ch := make(chan os.Signal, 1)
		signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
		<-ch
		cancel()
	}()

	// Keepalive endpoint for the hosting platform's uptime ping
	go func() {
		http.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("Bot is running!"))
		})
		if err := http.ListenAndServe(cfg.HTTPAddr, nil); err != nil {
			log.Printf("keepalive server: %v", err)
		}
	}()

	h.PostDutyBoard()

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates := botAPI.GetUpdatesChan(u)

	log.Printf("DutyBot started as @%s", botAPI.Self.UserName)

	for {
		select {
		case <-ctx.Done():
			log.Println("shutdown")
			return
		case upd := <-updates:
			h.HandleUpdate(ctx, upd)
		}
	}
}
