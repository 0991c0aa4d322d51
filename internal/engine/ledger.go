package engine

import (
	"log"

	"TreasureDig/internal/recorder"
)

// Ledger returns a copy of the unwithdrawn reward balances.
func (e *Engine) Ledger() map[string]float64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make(map[string]float64, len(e.econ.Ledger))
	for k, v := range e.econ.Ledger {
		out[k] = v
	}
	return out
}

// WithdrawAll atomically clears the entire ledger and counts the
// distinct positive entries into CreditsTransferred. A withdrawal is a
// ledger-clearing receipt count, not a second balance movement: the
// credits were already spent when the rewards were dug, so the balance
// does not move here. No partial withdrawal exists.
func (e *Engine) WithdrawAll(address, txID string) (cleared int) {
	e.mu.Lock()
	defer e.mu.Unlock()

	for _, v := range e.econ.Ledger {
		if v > 0 {
			cleared++
		}
	}
	e.econ.Ledger = make(map[string]float64)
	e.econ.CreditsTransferred += float64(cleared)
	e.saveLocked()

	if err := e.rec.RecordWithdraw(&recorder.WithdrawEvent{
		AssetsCleared: cleared,
		Address:       address,
		TxID:          txID,
	}); err != nil {
		log.Printf("[ERROR] record withdraw: %v", err)
	}
	return cleared
}
