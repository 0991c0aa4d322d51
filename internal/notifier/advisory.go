package notifier

import (
	"context"
	"log"
)

// LogNotifier writes advisory notices to the process log. Used when no
// chat transport is wired, and in tests.
type LogNotifier struct{}

func (LogNotifier) Notify(level, message string) {
	switch level {
	case "warn":
		log.Printf("[WARN] advisory: %s", message)
	default:
		log.Printf("[INFO] advisory: %s", message)
	}
}

// Advisory forwards engine advisory notices to a Telegram chat without
// blocking the caller. Delivery is best-effort.
type Advisory struct {
	Telegram *TelegramNotifier
}

func (a *Advisory) Notify(level, message string) {
	prefix := "ℹ️"
	if level == "warn" {
		prefix = "⚠️"
	}
	go func() {
		if err := a.Telegram.SendWithRetry(context.Background(), prefix+" "+message, 3); err != nil {
			log.Printf("[ERROR] send advisory: %v", err)
		}
	}()
}
