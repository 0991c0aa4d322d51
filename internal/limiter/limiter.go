package limiter

import (
	"log"
	"sync"
	"time"

	"TreasureDig/internal/clock"
	"TreasureDig/internal/model"
	"TreasureDig/internal/store"
)

// Limiter tracks per-pool dig cooldowns and the rolling daily dig
// counter. Both limits are local-only, best-effort controls: there is no
// server authority, acceptable because the domain has no real value
// transfer.
type Limiter struct {
	mu       sync.Mutex
	state    *model.AbuseState
	filePath string
	dailyCap int
	cooldown time.Duration
}

// New creates a Limiter, loading or initializing abuse state from disk.
func New(filePath string, dailyCap int, cooldown time.Duration) *Limiter {
	l := &Limiter{
		state:    store.LoadAbuse(filePath),
		filePath: filePath,
		dailyCap: dailyCap,
		cooldown: cooldown,
	}
	l.save()
	return l
}

// SessionID returns the opaque per-device session identifier.
func (l *Limiter) SessionID() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state.SessionID
}

// IsOnCooldown reports whether a pool is blocked at the given time. A
// stored timestamp strictly greater than now blocks.
func (l *Limiter) IsOnCooldown(poolID string, now time.Time) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state.Cooldowns[poolID] > now.UnixMilli()
}

// CooldownRemaining returns whole seconds left on a pool's cooldown,
// rounded up, or 0 when not on cooldown.
func (l *Limiter) CooldownRemaining(poolID string, now time.Time) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	ms := l.state.Cooldowns[poolID] - now.UnixMilli()
	if ms <= 0 {
		return 0
	}
	return int((ms + 999) / 1000)
}

// DigsToday returns the daily count, reading a stale day key as zero.
// The rollover is lazy: nothing is rewritten until the next dig.
func (l *Limiter) DigsToday(now time.Time) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.state.Daily.DayKey != clock.DayKey(now) {
		return 0
	}
	return l.state.Daily.Digs
}

// DigsLeft returns how many digs remain under today's cap.
func (l *Limiter) DigsLeft(now time.Time) int {
	left := l.dailyCap - l.DigsToday(now)
	if left < 0 {
		return 0
	}
	return left
}

// DailyCap returns the configured per-day global dig cap.
func (l *Limiter) DailyCap() int { return l.dailyCap }

// RecordDig rolls the daily bucket over if stale, increments today's
// count and arms the pool's cooldown. The only mutator; must be called
// exactly once per successful dig, never on a rejected attempt.
func (l *Limiter) RecordDig(poolID string, now time.Time) {
	l.mu.Lock()
	defer l.mu.Unlock()

	today := clock.DayKey(now)
	if l.state.Daily.DayKey != today {
		l.state.Daily.DayKey = today
		l.state.Daily.Digs = 0
	}
	l.state.Daily.Digs++
	l.state.Cooldowns[poolID] = now.Add(l.cooldown).UnixMilli()

	l.saveLocked()
}

// ResetLimits clears cooldowns and the daily bucket for a full demo
// reset. The session id is retained; it is never rotated automatically.
func (l *Limiter) ResetLimits() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.state.Cooldowns = make(map[string]int64)
	l.state.Daily = model.DailyBucket{}
	l.saveLocked()
}

func (l *Limiter) save() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.saveLocked()
}

func (l *Limiter) saveLocked() {
	if err := store.SaveAbuse(l.filePath, l.state); err != nil {
		log.Printf("[ERROR] failed to save abuse state: %v", err)
	}
}
