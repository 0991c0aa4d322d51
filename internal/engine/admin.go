package engine

import (
	"TreasureDig/internal/model"
	"TreasureDig/internal/rewards"
)

// Refill is the faucet: it only fires when the balance is exactly zero,
// minting the configured amount. A non-empty balance is a silent no-op,
// not an error.
func (e *Engine) Refill() bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.econ.Credits != 0 {
		return false
	}
	e.econ.Credits = rewards.Round2(e.emptyRefill)
	e.econ.CreditsMinted = rewards.Round2(e.econ.CreditsMinted + e.emptyRefill)
	e.saveLocked()
	e.recordCredit("REFILL", e.emptyRefill, "")
	return true
}

// AdminMint adds credits out of thin air, keeping the accounting
// identity by moving CreditsMinted in lockstep.
func (e *Engine) AdminMint(amount float64) bool {
	if amount <= 0 {
		return false
	}
	e.mu.Lock()
	defer e.mu.Unlock()

	e.econ.Credits = rewards.Round2(e.econ.Credits + amount)
	e.econ.CreditsMinted = rewards.Round2(e.econ.CreditsMinted + amount)
	e.saveLocked()
	e.recordCredit("ADMIN_MINT", amount, "")
	return true
}

// AdminBurn destroys up to amount credits, clamped to the available
// balance. Burned is tracked separately from spent; the accounting
// identity holds because Credits and CreditsBurned move together.
// Returns the amount actually burned.
func (e *Engine) AdminBurn(amount float64) float64 {
	if amount <= 0 {
		return 0
	}
	e.mu.Lock()
	defer e.mu.Unlock()

	burned := amount
	if burned > e.econ.Credits {
		burned = e.econ.Credits
	}
	e.econ.Credits = rewards.Round2(e.econ.Credits - burned)
	e.econ.CreditsBurned = rewards.Round2(e.econ.CreditsBurned + burned)
	e.saveLocked()
	e.recordCredit("ADMIN_BURN", burned, "")
	return burned
}

// Reset is the full demo reset: economy state back to defaults, pools
// reseeded, cooldowns and the daily bucket cleared. The session id is
// retained. A resolving dig is cancelled without settlement.
func (e *Engine) Reset() {
	e.mu.Lock()
	active := e.active
	e.mu.Unlock()
	if active != nil {
		active.Cancel()
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	e.econ = model.NewEconomyState()
	e.active = nil
	e.registry.Reset()
	e.limiter.ResetLimits()
	e.saveLocked()
	e.recordCredit("RESET", 0, "")
}
