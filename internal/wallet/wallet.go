package wallet

import (
	"strings"

	"TreasureDig/internal/model"

	"github.com/google/uuid"
)

// Connection is a connected wallet: a non-empty address plus the chain
// family it can send on. That is all the engine ever needs to decide
// whether a withdrawal "can send" for a given asset.
type Connection struct {
	ChainKind model.ChainKind
	Address   string
}

// Connector supplies a wallet connection for one chain family.
type Connector interface {
	Connect() (Connection, error)
	Name() string
}

// CanSend reports whether a connection can carry the given asset: EVM
// wallets send EVM assets, non-EVM wallets send assets of their own
// chain.
func CanSend(conn Connection, asset model.Asset) bool {
	return conn.Address != "" && conn.ChainKind == asset.Chain
}

// NewTxID generates a display-only transaction identifier. Nothing is
// ever submitted on chain.
func NewTxID(kind model.ChainKind) string {
	raw := strings.ReplaceAll(uuid.NewString()+uuid.NewString(), "-", "")
	if kind == model.ChainEVM {
		return "0x" + raw
	}
	return raw
}
