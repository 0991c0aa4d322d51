package engine

import (
	"TreasureDig/internal/model"
	"TreasureDig/internal/rewards"
)

// GrantIntro mints the one-time onboarding bonus for a step. Repeated
// calls for the same step are a no-op, so replaying the intro can never
// double-mint. Returns whether the bonus was granted this call.
func (e *Engine) GrantIntro(step model.IntroStep) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.econ.IntroRewards[step] {
		return false
	}
	e.econ.IntroRewards[step] = true
	e.econ.Credits = rewards.Round2(e.econ.Credits + e.introReward)
	e.econ.CreditsMinted = rewards.Round2(e.econ.CreditsMinted + e.introReward)
	e.saveLocked()
	e.recordCredit("INTRO", e.introReward, string(step))
	return true
}

// MarkIntroComplete sets the completed-intro flag.
func (e *Engine) MarkIntroComplete() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.econ.HasCompletedIntro {
		return
	}
	e.econ.HasCompletedIntro = true
	e.saveLocked()
}

// HasCompletedIntro reports whether onboarding has been finished.
func (e *Engine) HasCompletedIntro() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.econ.HasCompletedIntro
}
