package model

// TreasurePool is a finite-supply treasure source. Remaining only moves
// down by 1 per successful dig; admin restock and a full demo reset are
// the only ways it increases.
type TreasurePool struct {
	ID            string  `json:"id"`
	Title         string  `json:"title"`
	Remaining     int     `json:"remaining"`
	Ends          string  `json:"ends"` // free-text duration label, parsed heuristically for sorting
	DigCost       float64 `json:"dig_cost"`
	RewardAssetID string  `json:"reward_asset_id"`
	Paused        bool    `json:"paused"`
}
