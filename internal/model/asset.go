package model

// ChainKind tags which chain family an asset (or a connected wallet)
// belongs to. Withdrawal compatibility is decided on this tag alone.
type ChainKind string

const (
	ChainEVM    ChainKind = "evm"
	ChainSolana ChainKind = "solana"
)

// Asset is immutable reference data for a reward asset. Never mutated at
// runtime.
type Asset struct {
	ID       string    `json:"id"`
	Chain    ChainKind `json:"chain"`
	Symbol   string    `json:"symbol"`
	Name     string    `json:"name"`
	Decimals int       `json:"decimals"`
	Contract string    `json:"contract,omitempty"` // on-chain contract/mint, display only
}
