package model

import "time"

// EconomySchemaVersion gates loading of the persisted economy aggregate.
// A bump invalidates all prior saves; there is no migration path.
const EconomySchemaVersion = 3

// IntroStep identifies a one-shot onboarding reward gate.
type IntroStep string

const (
	IntroStart IntroStep = "start"
	IntroOne   IntroStep = "intro1"
	IntroTwo   IntroStep = "intro2"
	IntroThree IntroStep = "intro3"
)

// EconomyState is the persisted single-user credit economy aggregate.
//
// The intended accounting identity is
// Credits = CreditsMinted - CreditsSpent - CreditsBurned (within 0.01);
// transfers never move the balance. CreditsTransferred counts distinct
// assets withdrawn, not value.
type EconomyState struct {
	Version            int                `json:"version"`
	HasCompletedIntro  bool               `json:"has_completed_intro"`
	IntroRewards       map[IntroStep]bool `json:"intro_rewards"`
	Credits            float64            `json:"credits"`
	CreditsMinted      float64            `json:"credits_minted"`
	CreditsSpent       float64            `json:"credits_spent"`
	CreditsTransferred float64            `json:"credits_transferred"`
	CreditsBurned      float64            `json:"credits_burned"`
	DigCount           int64              `json:"dig_count"`
	Ledger             map[string]float64 `json:"ledger"` // asset id -> unwithdrawn amount
	UpdatedAt          time.Time          `json:"updated_at"`
}

// NewEconomyState returns a fresh default state at the current schema
// version.
func NewEconomyState() *EconomyState {
	return &EconomyState{
		Version:      EconomySchemaVersion,
		IntroRewards: make(map[IntroStep]bool),
		Ledger:       make(map[string]float64),
	}
}
