package registry

import "TreasureDig/internal/model"

// seedAssets is the immutable reward asset catalog.
var seedAssets = []model.Asset{
	{
		ID:       "ore",
		Chain:    model.ChainEVM,
		Symbol:   "ORE",
		Name:     "Raw Ore",
		Decimals: 18,
	},
	{
		ID:       "gem",
		Chain:    model.ChainEVM,
		Symbol:   "GEM",
		Name:     "Cut Gemstone",
		Decimals: 18,
		Contract: "0x7c5e04f6a2bd1e9a3f08c9a14b6d14e2b8a90dd1",
	},
	{
		ID:       "dust",
		Chain:    model.ChainSolana,
		Symbol:   "DUST",
		Name:     "Stardust",
		Decimals: 9,
		Contract: "Du5T4fQ9rWkXnYb3mH2cVep7LgqKzR8sA1jN6oPxE2vC",
	},
	{
		ID:       "relic",
		Chain:    model.ChainSolana,
		Symbol:   "RLC",
		Name:     "Ancient Relic",
		Decimals: 6,
		Contract: "RLCk3nW8uJf5xTqY7dHb2aZvMs9gE4rP6mK1oQiB8yNt",
	},
}

// seedPools is the pool lineup loaded at process start. Remaining counts
// reset to these values only on a full demo reset.
var seedPools = []model.TreasurePool{
	{
		ID:            "shipwreck",
		Title:         "Sunken Shipwreck",
		Remaining:     80,
		Ends:          "12h",
		DigCost:       2,
		RewardAssetID: "ore",
	},
	{
		ID:            "cavern",
		Title:         "Crystal Cavern",
		Remaining:     120,
		Ends:          "3d",
		DigCost:       1,
		RewardAssetID: "gem",
	},
	{
		ID:            "nebula",
		Title:         "Nebula Drift",
		Remaining:     200,
		Ends:          "1w 2d",
		DigCost:       0.5,
		RewardAssetID: "dust",
	},
	{
		ID:            "vault",
		Title:         "Forgotten Vault",
		Remaining:     25,
		Ends:          "ends soon",
		DigCost:       5,
		RewardAssetID: "relic",
	},
}
