package limiter

import (
	"path/filepath"
	"testing"
	"time"
)

func newTestLimiter(t *testing.T, cap int, cooldown time.Duration) *Limiter {
	t.Helper()
	return New(filepath.Join(t.TempDir(), "abuse.json"), cap, cooldown)
}

func TestCooldown_ExclusionBoundaries(t *testing.T) {
	l := newTestLimiter(t, 20, 90*time.Second)
	at := time.Date(2026, 8, 28, 12, 0, 0, 0, time.Local)

	l.RecordDig("cavern", at)

	if !l.IsOnCooldown("cavern", at.Add(89*time.Second)) {
		t.Error("expected cooldown active 1s before expiry")
	}
	if l.IsOnCooldown("cavern", at.Add(90*time.Second)) {
		t.Error("expected cooldown clear exactly at expiry")
	}
	if l.IsOnCooldown("cavern", at.Add(91*time.Second)) {
		t.Error("expected cooldown clear 1s after expiry")
	}
	if l.IsOnCooldown("shipwreck", at) {
		t.Error("expected other pools unaffected")
	}
}

func TestCooldownRemaining_CeilsSeconds(t *testing.T) {
	l := newTestLimiter(t, 20, 90*time.Second)
	at := time.Date(2026, 8, 28, 12, 0, 0, 0, time.Local)

	l.RecordDig("cavern", at)

	if got := l.CooldownRemaining("cavern", at); got != 90 {
		t.Errorf("expected 90s remaining, got %d", got)
	}
	if got := l.CooldownRemaining("cavern", at.Add(89500*time.Millisecond)); got != 1 {
		t.Errorf("expected partial second rounded up to 1, got %d", got)
	}
	if got := l.CooldownRemaining("cavern", at.Add(2*time.Minute)); got != 0 {
		t.Errorf("expected 0 after expiry, got %d", got)
	}
	if got := l.CooldownRemaining("shipwreck", at); got != 0 {
		t.Errorf("expected 0 for pool without cooldown, got %d", got)
	}
}

func TestDigsToday_LazyRollover(t *testing.T) {
	l := newTestLimiter(t, 20, time.Second)
	yesterday := time.Date(2026, 8, 27, 23, 0, 0, 0, time.Local)
	today := time.Date(2026, 8, 28, 9, 0, 0, 0, time.Local)

	for i := 0; i < 5; i++ {
		l.RecordDig("cavern", yesterday)
	}
	if got := l.DigsToday(yesterday); got != 5 {
		t.Fatalf("expected 5 digs yesterday, got %d", got)
	}

	// Stale key reads as zero, repeatedly, without any write.
	if got := l.DigsToday(today); got != 0 {
		t.Errorf("expected stale day to read 0, got %d", got)
	}
	if got := l.DigsToday(today); got != 0 {
		t.Errorf("expected repeated stale read to stay 0, got %d", got)
	}

	// The next dig rolls the bucket over.
	l.RecordDig("cavern", today)
	if got := l.DigsToday(today); got != 1 {
		t.Errorf("expected 1 dig after rollover, got %d", got)
	}
}

func TestDigsLeft_Clamped(t *testing.T) {
	l := newTestLimiter(t, 3, time.Second)
	at := time.Date(2026, 8, 28, 12, 0, 0, 0, time.Local)

	if got := l.DigsLeft(at); got != 3 {
		t.Fatalf("expected 3 digs left, got %d", got)
	}
	for i := 0; i < 4; i++ {
		l.RecordDig("cavern", at)
	}
	if got := l.DigsLeft(at); got != 0 {
		t.Errorf("expected digs left clamped at 0, got %d", got)
	}
}

func TestPersistence_SurvivesReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "abuse.json")
	at := time.Date(2026, 8, 28, 12, 0, 0, 0, time.Local)

	l1 := New(path, 20, 90*time.Second)
	session := l1.SessionID()
	if session == "" {
		t.Fatal("expected a session id")
	}
	l1.RecordDig("cavern", at)

	l2 := New(path, 20, 90*time.Second)
	if l2.SessionID() != session {
		t.Error("session id must not rotate across reloads")
	}
	if got := l2.DigsToday(at); got != 1 {
		t.Errorf("expected daily count to survive reload, got %d", got)
	}
	if !l2.IsOnCooldown("cavern", at.Add(time.Second)) {
		t.Error("expected cooldown to survive reload")
	}
}

func TestResetLimits_KeepsSession(t *testing.T) {
	l := newTestLimiter(t, 20, 90*time.Second)
	at := time.Date(2026, 8, 28, 12, 0, 0, 0, time.Local)

	session := l.SessionID()
	l.RecordDig("cavern", at)
	l.ResetLimits()

	if l.SessionID() != session {
		t.Error("reset must not rotate the session id")
	}
	if l.IsOnCooldown("cavern", at.Add(time.Second)) {
		t.Error("expected cooldowns cleared")
	}
	if got := l.DigsToday(at); got != 0 {
		t.Errorf("expected daily count cleared, got %d", got)
	}
}
