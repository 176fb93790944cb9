package main

import "moonpad/sdk"

// ContractConfigKey is the storage key of the singleton contract config.
const ContractConfigKey = "contract_config"

// Storage key prefixes. Singletons use a bare prefix byte, per-address
// records append the address string, index lists sit in their own prefix.
const (
	kSchedule   = 0x01
	kSaleConfig = 0x02
	kSaleLedger = 0x03

	kClaimUser = 0x10
	kBuyer     = 0x11

	kClaimIndex = 0x20
	kBuyerIndex = 0x21
)

// validAssets lists the tickers the contract accepts for payments, rewards
// and rescue withdrawals.
var validAssets = []string{
	sdk.AssetHive.String(),
	sdk.AssetHbd.String(),
}
