package recorder

// DigEvent records one settled dig.
type DigEvent struct {
	PoolID         string
	AssetID        string
	Cost           float64
	Reward         float64
	CreditsAfter   float64
	RemainingAfter int
}

// CreditEvent records a credit balance movement outside of digging.
type CreditEvent struct {
	Kind         string // "INTRO", "REFILL", "ADMIN_MINT", "ADMIN_BURN", "RESET"
	Amount       float64
	CreditsAfter float64
	Note         string
}

// WithdrawEvent records a ledger-clearing withdrawal.
type WithdrawEvent struct {
	AssetsCleared int
	Address       string
	TxID          string
}

// DailySnapshot captures the economy counters once per local day.
type DailySnapshot struct {
	DayKey             string
	Digs               int
	Credits            float64
	CreditsMinted      float64
	CreditsSpent       float64
	CreditsBurned      float64
	CreditsTransferred float64
	DigCount           int64
}

// Recorder persists historical data for analysis.
type Recorder interface {
	RecordDig(evt *DigEvent) error
	RecordCredit(evt *CreditEvent) error
	RecordWithdraw(evt *WithdrawEvent) error
	RecordSnapshot(snap *DailySnapshot) error
	Close() error
}
