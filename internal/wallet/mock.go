package wallet

import "TreasureDig/internal/model"

// MockEVMConnector returns a canned EVM address. Stands in for a real
// wallet-connect flow during the demo.
type MockEVMConnector struct{}

func (MockEVMConnector) Name() string { return "mock-evm" }

func (MockEVMConnector) Connect() (Connection, error) {
	return Connection{
		ChainKind: model.ChainEVM,
		Address:   "0x9aE2f41d6C3b87a04F51b2c9E7d8356Fb10c44Da",
	}, nil
}

// MockSolanaConnector returns a canned Solana address.
type MockSolanaConnector struct{}

func (MockSolanaConnector) Name() string { return "mock-solana" }

func (MockSolanaConnector) Connect() (Connection, error) {
	return Connection{
		ChainKind: model.ChainSolana,
		Address:   "7xKWvB4qdR3sJ2mTn8cYhFp5aGzL1uEoQ9iN6fHbAgMC",
	}, nil
}

// ForKind returns the connector for a chain family, defaulting to EVM.
func ForKind(kind model.ChainKind) Connector {
	if kind == model.ChainSolana {
		return MockSolanaConnector{}
	}
	return MockEVMConnector{}
}
