package store

import (
	"os"
	"path/filepath"
	"testing"

	"TreasureDig/internal/model"
)

func TestEconomy_Roundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "economy.json")

	st := model.NewEconomyState()
	st.Credits = 4.5
	st.CreditsMinted = 5
	st.CreditsSpent = 0.5
	st.DigCount = 3
	st.Ledger["gem"] = 1.2345
	st.IntroRewards[model.IntroStart] = true

	if err := SaveEconomy(path, st); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded := LoadEconomy(path)
	if loaded.Credits != 4.5 || loaded.CreditsMinted != 5 || loaded.DigCount != 3 {
		t.Errorf("counters did not survive reload: %+v", loaded)
	}
	if loaded.Ledger["gem"] != 1.2345 {
		t.Errorf("ledger did not survive reload: %v", loaded.Ledger)
	}
	if !loaded.IntroRewards[model.IntroStart] {
		t.Error("intro flags did not survive reload")
	}
}

func TestEconomy_MissingFileStartsFresh(t *testing.T) {
	loaded := LoadEconomy(filepath.Join(t.TempDir(), "nope.json"))
	if loaded.Credits != 0 || loaded.Ledger == nil || loaded.IntroRewards == nil {
		t.Errorf("expected fresh defaults, got %+v", loaded)
	}
}

func TestEconomy_VersionMismatchStartsFresh(t *testing.T) {
	path := filepath.Join(t.TempDir(), "economy.json")
	old := `{"version": 1, "credits": 99.5, "ledger": {"ore": 7}}`
	if err := os.WriteFile(path, []byte(old), 0644); err != nil {
		t.Fatal(err)
	}

	loaded := LoadEconomy(path)
	if loaded.Credits != 0 {
		t.Errorf("expected stale version to be discarded, got credits %v", loaded.Credits)
	}
}

func TestEconomy_CorruptFileStartsFresh(t *testing.T) {
	path := filepath.Join(t.TempDir(), "economy.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}
	if loaded := LoadEconomy(path); loaded.Credits != 0 {
		t.Errorf("expected fresh state, got %+v", loaded)
	}
}

func TestAbuse_Roundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "abuse.json")

	st := &model.AbuseState{
		SessionID: "session-1",
		Cooldowns: map[string]int64{"cavern": 1700000000000},
		Daily:     model.DailyBucket{DayKey: "2026-08-28", Digs: 4},
	}
	if err := SaveAbuse(path, st); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded := LoadAbuse(path)
	if loaded.SessionID != "session-1" {
		t.Errorf("session id did not survive reload: %q", loaded.SessionID)
	}
	if loaded.Cooldowns["cavern"] != 1700000000000 {
		t.Errorf("cooldowns did not survive reload: %v", loaded.Cooldowns)
	}
	if loaded.Daily.DayKey != "2026-08-28" || loaded.Daily.Digs != 4 {
		t.Errorf("daily bucket did not survive reload: %+v", loaded.Daily)
	}
}

func TestAbuse_FreshStateGetsSessionID(t *testing.T) {
	loaded := LoadAbuse(filepath.Join(t.TempDir(), "nope.json"))
	if loaded.SessionID == "" {
		t.Error("expected a generated session id")
	}
	if loaded.Cooldowns == nil {
		t.Error("expected an initialized cooldown map")
	}
}

func TestAbuse_StructuralMismatchDiscardsRecord(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"missing session", `{"cooldowns": {}, "daily": {"day_key": "2026-08-28", "digs": 1}}`},
		{"empty session", `{"session_id": "", "cooldowns": {}, "daily": {"day_key": "x", "digs": 0}}`},
		{"missing cooldowns", `{"session_id": "s", "daily": {"day_key": "x", "digs": 0}}`},
		{"missing daily", `{"session_id": "s", "cooldowns": {}}`},
		{"missing digs", `{"session_id": "s", "cooldowns": {}, "daily": {"day_key": "x"}}`},
		{"wrong cooldown type", `{"session_id": "s", "cooldowns": "nope", "daily": {"day_key": "x", "digs": 0}}`},
		{"not json", `{broken`},
	}
	for _, tt := range tests {
		path := filepath.Join(t.TempDir(), "abuse.json")
		if err := os.WriteFile(path, []byte(tt.body), 0644); err != nil {
			t.Fatal(err)
		}
		loaded := LoadAbuse(path)
		if loaded.SessionID == "" || loaded.SessionID == "s" {
			t.Errorf("%s: expected whole record discarded and fresh session, got %q", tt.name, loaded.SessionID)
		}
		if len(loaded.Cooldowns) != 0 || loaded.Daily.Digs != 0 {
			t.Errorf("%s: expected fresh state, got %+v", tt.name, loaded)
		}
	}
}
