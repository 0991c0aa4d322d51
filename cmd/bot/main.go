package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"TreasureDig/internal/config"
	"TreasureDig/internal/engine"
	"TreasureDig/internal/limiter"
	"TreasureDig/internal/notifier"
	"TreasureDig/internal/recorder"
	"TreasureDig/internal/registry"
	"TreasureDig/internal/scheduler"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("[INFO] TreasureDig starting...")

	// Load config
	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("[FATAL] load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[FATAL] config validation: %v", err)
	}

	// Init pool registry from seed data
	reg := registry.New()

	// Init anti-abuse limiter
	lim := limiter.New(cfg.State.AbuseFile, cfg.Game.DailyCap,
		time.Duration(cfg.Game.CooldownSeconds)*time.Second)
	log.Printf("[INFO] session id: %s", lim.SessionID())

	// Init Telegram notifier
	tn := notifier.NewTelegramNotifier(cfg.Telegram.BotToken, cfg.Telegram.ChatID, cfg.Proxy)

	// Init recorder
	var rec recorder.Recorder
	if cfg.Database.SQLitePath != "" {
		sr, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath)
		if err != nil {
			log.Printf("[WARN] init sqlite recorder failed, using noop: %v", err)
			rec = recorder.NewNoopRecorder()
		} else {
			rec = sr
			defer sr.Close()
		}
	} else {
		rec = recorder.NewNoopRecorder()
	}

	// Init dig economy engine
	eng := engine.New(reg, lim, engine.Options{
		EconomyFile: cfg.State.EconomyFile,
		DigSeconds:  cfg.Game.DigSeconds,
		IntroReward: cfg.Game.IntroReward,
		EmptyRefill: cfg.Game.EmptyRefill,
		Recorder:    rec,
		Notifier:    &notifier.Advisory{Telegram: tn},
	})

	// Context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Init scheduler
	sched := scheduler.NewScheduler(ctx, eng, lim, reg, tn, rec)
	if err := sched.RegisterAll(cfg.Schedule.SnapshotCron); err != nil {
		log.Fatalf("[FATAL] register cron tasks: %v", err)
	}
	sched.Start()
	defer sched.Stop()

	// Start Telegram polling
	go tn.StartPolling(ctx, sched.HandleCommand)
	log.Println("[INFO] Telegram polling started")

	log.Println("[INFO] TreasureDig is running. Press Ctrl+C to stop.")

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Println("[INFO] shutdown signal received, stopping...")
	cancel()
	log.Println("[INFO] TreasureDig stopped")
}
