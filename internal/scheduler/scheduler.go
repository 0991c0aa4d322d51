package scheduler

import (
	"context"
	"fmt"
	"log"
	"time"

	"TreasureDig/internal/clock"
	"TreasureDig/internal/engine"
	"TreasureDig/internal/limiter"
	"TreasureDig/internal/notifier"
	"TreasureDig/internal/recorder"
	"TreasureDig/internal/registry"
	"TreasureDig/internal/wallet"

	"github.com/robfig/cron/v3"
)

// Scheduler manages the cron tasks and owns the bot command surface.
type Scheduler struct {
	Cron     *cron.Cron
	Engine   *engine.Engine
	Limiter  *limiter.Limiter
	Registry *registry.Registry
	Notifier *notifier.TelegramNotifier
	Recorder recorder.Recorder
	Ctx      context.Context

	conn *wallet.Connection // set by /connect
}

// NewScheduler creates a new Scheduler.
func NewScheduler(ctx context.Context, eng *engine.Engine, lim *limiter.Limiter, reg *registry.Registry, tn *notifier.TelegramNotifier, rec recorder.Recorder) *Scheduler {
	return &Scheduler{
		Cron:     cron.New(cron.WithSeconds()),
		Engine:   eng,
		Limiter:  lim,
		Registry: reg,
		Notifier: tn,
		Recorder: rec,
		Ctx:      ctx,
	}
}

// RegisterAll registers the recurring tasks.
func (s *Scheduler) RegisterAll(snapshotCron string) error {
	if _, err := s.Cron.AddFunc(snapshotCron, s.snapshotTask); err != nil {
		return fmt.Errorf("register snapshot task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Println("[INFO] scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	s.Cron.Stop()
	log.Println("[INFO] scheduler stopped")
}

// snapshotTask records the economy counters once per local day. Runs at
// midnight, which is also when the daily dig cap lazily rolls over.
func (s *Scheduler) snapshotTask() {
	log.Println("[INFO] recording daily snapshot")
	now := time.Now()
	st := s.Engine.Snapshot()

	if err := s.Recorder.RecordSnapshot(&recorder.DailySnapshot{
		DayKey:             clock.DayKey(now),
		Digs:               s.Limiter.DigsToday(now),
		Credits:            st.Credits,
		CreditsMinted:      st.CreditsMinted,
		CreditsSpent:       st.CreditsSpent,
		CreditsBurned:      st.CreditsBurned,
		CreditsTransferred: st.CreditsTransferred,
		DigCount:           st.DigCount,
	}); err != nil {
		log.Printf("[ERROR] record snapshot: %v", err)
	}
	log.Printf("[INFO] daily dig cap reset, %d digs available", s.Limiter.DailyCap())
}

func (s *Scheduler) trySend(text string) {
	if err := s.Notifier.SendWithRetry(s.Ctx, text, 3); err != nil {
		log.Printf("[ERROR] send notification: %v", err)
	}
}
