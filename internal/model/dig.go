package model

// RejectReason tags an expected, recoverable refusal of a dig attempt.
// The check order is fixed: paused, exhausted, daily cap, cooldown, funds.
type RejectReason string

const (
	RejectPoolPaused          RejectReason = "POOL_PAUSED"
	RejectPoolExhausted       RejectReason = "POOL_EXHAUSTED"
	RejectDailyCapReached     RejectReason = "DAILY_CAP_REACHED"
	RejectCooldown            RejectReason = "COOLDOWN"
	RejectInsufficientCredits RejectReason = "INSUFFICIENT_CREDITS"
)

// DigReward is the settled outcome of one dig attempt, already merged
// into the ledger when exposed to the caller.
type DigReward struct {
	PoolID  string
	AssetID string
	Symbol  string
	Amount  float64
}
