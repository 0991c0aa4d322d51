package model

// DailyBucket is the rolling per-day dig counter, keyed by the device's
// local calendar day. A stale DayKey means the count reads as zero.
type DailyBucket struct {
	DayKey string `json:"day_key"` // local YYYY-MM-DD
	Digs   int    `json:"digs"`
}

// AbuseState is the persisted anti-abuse aggregate, kept in its own file
// so a corrupt record cannot take the economy state down with it.
// SessionID is generated once per device and never rotated automatically.
// Cooldown entries are never removed, only superseded; stale entries
// harmlessly fail the cooldown test once their timestamp passes.
type AbuseState struct {
	SessionID string           `json:"session_id"`
	Cooldowns map[string]int64 `json:"cooldowns"` // pool id -> epoch ms blocked until
	Daily     DailyBucket      `json:"daily"`
}
