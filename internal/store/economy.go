package store

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"
	"time"

	"TreasureDig/internal/model"
)

// LoadEconomy reads the economy aggregate from a JSON file. A missing
// file, unreadable JSON or a schema version mismatch all degrade to a
// fresh default state; corrupt local storage is an expected condition,
// never an error.
func LoadEconomy(filePath string) *model.EconomyState {
	data, err := os.ReadFile(filePath)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("[WARN] read economy state: %v, starting fresh", err)
		}
		return model.NewEconomyState()
	}

	var state model.EconomyState
	if err := json.Unmarshal(data, &state); err != nil {
		log.Printf("[WARN] parse economy state: %v, starting fresh", err)
		return model.NewEconomyState()
	}
	if state.Version != model.EconomySchemaVersion {
		log.Printf("[WARN] economy state version %d != %d, starting fresh",
			state.Version, model.EconomySchemaVersion)
		return model.NewEconomyState()
	}

	if state.IntroRewards == nil {
		state.IntroRewards = make(map[model.IntroStep]bool)
	}
	if state.Ledger == nil {
		state.Ledger = make(map[string]float64)
	}
	return &state
}

// SaveEconomy writes the economy aggregate to a JSON file.
func SaveEconomy(filePath string, state *model.EconomyState) error {
	state.Version = model.EconomySchemaVersion
	state.UpdatedAt = time.Now()
	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(filePath), 0755); err != nil {
		return err
	}
	return os.WriteFile(filePath, data, 0644)
}
