package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	BotToken      string
	LogChannelID  int64 // chat that receives duty event log messages
	DutyChannelID int64 // chat that gets the start/end button board

	AdminIDs []int64

	LedgerBackend string // "file" or "postgres"
	LedgerPath    string
	DatabaseURL   string

	HTTPAddr string // keepalive endpoint

	MinInterval   time.Duration
	MaxInterval   time.Duration
	RespondWindow time.Duration
}

func MustLoad() Config {
	bt := os.Getenv("BOT_TOKEN")
	if bt == "" {
		log.Fatal("BOT_TOKEN is required")
	}

	logCh := mustInt64("LOG_CHANNEL_ID")
	dutyCh := mustInt64("DUTY_CHANNEL_ID")

	admins := parseIDList(os.Getenv("ADMIN_IDS"))
	if len(admins) == 0 {
		log.Fatal("ADMIN_IDS is required (comma-separated telegram ids)")
	}

	backend := os.Getenv("LEDGER_BACKEND")
	if backend == "" {
		backend = "file"
	}
	if backend != "file" && backend != "postgres" {
		log.Fatalf("LEDGER_BACKEND must be file or postgres, got %q", backend)
	}

	path := os.Getenv("LEDGER_PATH")
	if path == "" {
		path = "points.json"
	}

	dsn := os.Getenv("DATABASE_URL")
	if backend == "postgres" && dsn == "" {
		log.Fatal("DATABASE_URL is required with LEDGER_BACKEND=postgres")
	}

	addr := os.Getenv("HTTP_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	return Config{
		BotToken:      bt,
		LogChannelID:  logCh,
		DutyChannelID: dutyCh,
		AdminIDs:      admins,
		LedgerBackend: backend,
		LedgerPath:    path,
		DatabaseURL:   dsn,
		HTTPAddr:      addr,
		MinInterval:   secondsEnv("DUTY_MIN_INTERVAL", 1200),
		MaxInterval:   secondsEnv("DUTY_MAX_INTERVAL", 1800),
		RespondWindow: secondsEnv("DUTY_RESPOND_WINDOW", 120),
	}
}

func mustInt64(name string) int64 {
	v := os.Getenv(name)
	if v == "" {
		log.Fatalf("%s is required", name)
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		log.Fatalf("%s must be an integer chat id: %v", name, err)
	}
	return n
}

func secondsEnv(name string, def int64) time.Duration {
	v := os.Getenv(name)
	if v == "" {
		return time.Duration(def) * time.Second
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil || n <= 0 {
		log.Fatalf("%s must be a positive number of seconds", name)
	}
	return time.Duration(n) * time.Second
}

func parseIDList(s string) []int64 {
	var out []int64
	for _, p := range strings.Split(s, ",") {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		n, err := strconv.ParseInt(p, 10, 64)
		if err != nil {
			log.Fatalf("bad id %q in ADMIN_IDS", p)
		}
		out = append(out, n)
	}
	return out
}
