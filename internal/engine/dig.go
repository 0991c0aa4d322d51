package engine

import (
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"TreasureDig/internal/model"
	"TreasureDig/internal/recorder"
	"TreasureDig/internal/registry"
	"TreasureDig/internal/rewards"
)

// ErrDigInProgress guards the single-flight assumption: only one attempt
// may be resolving at a time.
var ErrDigInProgress = errors.New("a dig is already resolving")

// Rejection is an expected, recoverable refusal of a dig attempt. It
// causes no state mutation and is never retried automatically; the
// caller re-attempts only after the blocking condition clears.
type Rejection struct {
	Reason          model.RejectReason
	CooldownSeconds int     // set for RejectCooldown
	Shortfall       float64 // set for RejectInsufficientCredits
}

func (r *Rejection) Error() string {
	switch r.Reason {
	case model.RejectPoolPaused:
		return "pool is paused"
	case model.RejectPoolExhausted:
		return "pool is exhausted"
	case model.RejectDailyCapReached:
		return "daily dig cap reached"
	case model.RejectCooldown:
		return fmt.Sprintf("pool on cooldown for %ds", r.CooldownSeconds)
	case model.RejectInsufficientCredits:
		return fmt.Sprintf("insufficient credits, short %.2f", r.Shortfall)
	default:
		return string(r.Reason)
	}
}

// Attempt is one in-flight dig, owned by the resolving phase. The spend
// is already committed when an Attempt exists, so cancellation never
// refunds; it only discards the pending settlement.
type Attempt struct {
	PoolID  string
	AssetID string
	Symbol  string
	Cost    float64
	Seconds int

	remainingAfter int

	engine  *Engine
	cancel  chan struct{}
	done    chan struct{}
	once    sync.Once
	reward  model.DigReward
	settled bool
}

// Dig runs the evaluation checks in fixed order and, if all pass,
// commits the spend and starts the resolving countdown. The returned
// error is a *Rejection for the expected refusal conditions.
func (e *Engine) Dig(poolID string) (*Attempt, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.active != nil {
		return nil, ErrDigInProgress
	}
	p, ok := e.registry.FindByID(poolID)
	if !ok {
		return nil, fmt.Errorf("unknown pool %q", poolID)
	}

	now := e.clk.Now()

	// First failing check wins; nothing is mutated on a rejection.
	switch {
	case p.Paused:
		return nil, &Rejection{Reason: model.RejectPoolPaused}
	case p.Remaining <= 0:
		return nil, &Rejection{Reason: model.RejectPoolExhausted}
	case e.limiter.DigsLeft(now) <= 0:
		return nil, &Rejection{Reason: model.RejectDailyCapReached}
	case e.limiter.IsOnCooldown(p.ID, now):
		return nil, &Rejection{
			Reason:          model.RejectCooldown,
			CooldownSeconds: e.limiter.CooldownRemaining(p.ID, now),
		}
	case e.econ.Credits < p.DigCost:
		return nil, &Rejection{
			Reason:    model.RejectInsufficientCredits,
			Shortfall: rewards.Round2(p.DigCost - e.econ.Credits),
		}
	}

	// Commit: spend, counters, supply and limits all move together,
	// before the resolving delay begins. Abandoning the countdown later
	// never rolls any of this back.
	e.econ.Credits = rewards.Round2(e.econ.Credits - p.DigCost)
	e.econ.CreditsSpent = rewards.Round2(e.econ.CreditsSpent + p.DigCost)
	e.econ.DigCount++
	remaining, _ := e.registry.DecrementRemaining(p.ID)
	e.limiter.RecordDig(p.ID, now)

	if remaining == 0 {
		e.notify.Notify(LevelWarn, fmt.Sprintf("%s is exhausted — every treasure has been dug", p.Title))
	}

	symbol := ""
	if asset, ok := registry.AssetByID(p.RewardAssetID); ok {
		symbol = asset.Symbol
	}

	a := &Attempt{
		PoolID:         p.ID,
		AssetID:        p.RewardAssetID,
		Symbol:         symbol,
		Cost:           p.DigCost,
		Seconds:        e.digSeconds,
		remainingAfter: remaining,
		engine:         e,
		cancel:         make(chan struct{}),
		done:           make(chan struct{}),
	}
	e.active = a
	e.saveLocked()

	go a.run()
	return a, nil
}

// run counts the attempt down one tick at a time and settles at zero.
// No economic state changes during the countdown.
func (a *Attempt) run() {
	remaining := a.Seconds
	ticker := time.NewTicker(a.engine.tick)
	defer ticker.Stop()

	for {
		select {
		case <-a.cancel:
			a.engine.abandon(a)
			close(a.done)
			return
		case <-ticker.C:
			remaining--
			if remaining <= 0 {
				a.reward = a.engine.settle(a)
				a.settled = true
				close(a.done)
				return
			}
		}
	}
}

// Wait blocks until the attempt settles or is cancelled. ok is false for
// a cancelled attempt.
func (a *Attempt) Wait() (reward model.DigReward, ok bool) {
	<-a.done
	return a.reward, a.settled
}

// Cancel stops the countdown. The committed spend, pool decrement and
// cooldown all stand; only the pending settlement is discarded.
func (a *Attempt) Cancel() {
	a.once.Do(func() { close(a.cancel) })
}

func (e *Engine) settle(a *Attempt) model.DigReward {
	e.mu.Lock()
	defer e.mu.Unlock()

	amount := rewards.Roll(e.rng, a.Symbol)
	e.econ.Ledger[a.AssetID] += amount
	if e.active == a {
		e.active = nil
	}
	e.saveLocked()

	if err := e.rec.RecordDig(&recorder.DigEvent{
		PoolID:         a.PoolID,
		AssetID:        a.AssetID,
		Cost:           a.Cost,
		Reward:         amount,
		CreditsAfter:   e.econ.Credits,
		RemainingAfter: a.remainingAfter,
	}); err != nil {
		log.Printf("[ERROR] record dig: %v", err)
	}

	return model.DigReward{
		PoolID:  a.PoolID,
		AssetID: a.AssetID,
		Symbol:  a.Symbol,
		Amount:  amount,
	}
}

func (e *Engine) abandon(a *Attempt) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.active == a {
		e.active = nil
	}
}
