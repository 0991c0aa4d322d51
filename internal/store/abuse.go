package store

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"

	"TreasureDig/internal/model"

	"github.com/google/uuid"
)

// abuseFile shadows model.AbuseState with pointer fields so that missing
// keys can be told apart from zero values during validation.
type abuseFile struct {
	SessionID *string          `json:"session_id"`
	Cooldowns map[string]int64 `json:"cooldowns"`
	Daily     *struct {
		DayKey *string `json:"day_key"`
		Digs   *int    `json:"digs"`
	} `json:"daily"`
}

// LoadAbuse reads the anti-abuse aggregate from a JSON file. Any
// structural mismatch discards the whole record and starts fresh with a
// newly generated session id.
func LoadAbuse(filePath string) *model.AbuseState {
	data, err := os.ReadFile(filePath)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("[WARN] read abuse state: %v, starting fresh", err)
		}
		return freshAbuse()
	}

	var f abuseFile
	if err := json.Unmarshal(data, &f); err != nil {
		log.Printf("[WARN] parse abuse state: %v, starting fresh", err)
		return freshAbuse()
	}
	if f.SessionID == nil || *f.SessionID == "" || f.Cooldowns == nil ||
		f.Daily == nil || f.Daily.DayKey == nil || f.Daily.Digs == nil {
		log.Println("[WARN] abuse state failed validation, starting fresh")
		return freshAbuse()
	}

	return &model.AbuseState{
		SessionID: *f.SessionID,
		Cooldowns: f.Cooldowns,
		Daily: model.DailyBucket{
			DayKey: *f.Daily.DayKey,
			Digs:   *f.Daily.Digs,
		},
	}
}

// SaveAbuse writes the anti-abuse aggregate to a JSON file.
func SaveAbuse(filePath string, state *model.AbuseState) error {
	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(filePath), 0755); err != nil {
		return err
	}
	return os.WriteFile(filePath, data, 0644)
}

func freshAbuse() *model.AbuseState {
	return &model.AbuseState{
		SessionID: uuid.NewString(),
		Cooldowns: make(map[string]int64),
	}
}
