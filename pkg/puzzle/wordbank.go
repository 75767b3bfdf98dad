// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package puzzle

// Category is a themed word list that can become one puzzle group.
type Category struct {
	Key   string
	Name  string
	Color string
	Words []string
}

// DefaultCategories is the built-in word bank. Order is part of the daily seed contract:
// reordering it changes every future daily puzzle.
var DefaultCategories = []Category{
	{
		Key:   "blockchains",
		Name:  "Layer 1 Blockchains",
		Color: "#FF6B6B",
		Words: []string{"Ethereum", "Bitcoin", "Solana", "Cardano", "Polkadot", "Avalanche", "Cosmos", "Near", "Algorand", "Tezos", "Fantom", "BNB Chain"},
	},
	{
		Key:   "defi",
		Name:  "DeFi Concepts",
		Color: "#4ECDC4",
		Words: []string{"Liquidity", "Staking", "Yield", "APY", "Lending", "Borrowing", "Swap", "Pool", "Farm", "Harvest", "Vault", "Bridge"},
	},
	{
		Key:   "wallets",
		Name:  "Wallet Components",
		Color: "#45B7D1",
		Words: []string{"Private Key", "Seed Phrase", "Address", "Signature", "Hardware", "Hot Wallet", "Cold Storage", "Keystore", "Recovery", "Backup", "Password", "PIN"},
	},
	{
		Key:   "nft",
		Name:  "NFT Concepts",
		Color: "#96CEB4",
		Words: []string{"Metadata", "Collection", "Mint", "Royalty", "Rarity", "Attribute", "Token ID", "Floor Price", "Airdrop", "Whitelist", "Reveal", "Trait"},
	},
	{
		Key:   "consensus",
		Name:  "Consensus Methods",
		Color: "#FFBE0B",
		Words: []string{"Proof of Work", "Proof of Stake", "Mining", "Validation", "Slashing", "Forging", "Delegation", "Node", "Block Time", "Finality", "Epoch", "Reward"},
	},
	{
		Key:   "smartContracts",
		Name:  "Smart Contracts",
		Color: "#FB5607",
		Words: []string{"Function", "Contract", "Deploy", "Gas", "Oracle", "ABI", "Bytecode", "Compiler", "Interface", "Library", "Proxy", "Event"},
	},
	{
		Key:   "trading",
		Name:  "Trading Terms",
		Color: "#FF006E",
		Words: []string{"Spot", "Futures", "Long", "Short", "Leverage", "Margin", "Order Book", "Limit", "Market", "Stop Loss", "Take Profit", "Volume"},
	},
	{
		Key:   "governance",
		Name:  "Governance",
		Color: "#8338EC",
		Words: []string{"DAO", "Proposal", "Vote", "Quorum", "Snapshot", "Treasury", "Delegate", "Token", "Forum", "Execution", "Veto", "Power"},
	},
	{
		Key:   "layer2",
		Name:  "Layer 2 Solutions",
		Color: "#3A86FF",
		Words: []string{"Rollup", "Sidechain", "Channel", "Plasma", "Optimistic", "ZK-Proof", "Batch", "Scale", "Bridge", "State", "Commit", "Verify"},
	},
	{
		Key:   "security",
		Name:  "Security Concepts",
		Color: "#FF69B4",
		Words: []string{"Encryption", "Hash", "Audit", "Bug Bounty", "Multisig", "Timelock", "Whitelist", "Access", "Permission", "Role", "Guard", "Lock"},
	},
}
