package main

import "moonpad/sdk"

// scheduleKey is the singleton vesting schedule slot.
func scheduleKey() string {
	return string([]byte{kSchedule})
}

// saleConfigKey is the singleton sale parameter slot.
func saleConfigKey() string {
	return string([]byte{kSaleConfig})
}

// saleLedgerKey holds the aggregate raised total, separate from the config
// so admin config swaps never touch accounting.
func saleLedgerKey() string {
	return string([]byte{kSaleLedger})
}

// claimUserKey builds the per-beneficiary claim record key.
func claimUserKey(addr sdk.Address) string {
	return string(append([]byte{kClaimUser}, addr.String()...))
}

// buyerKey builds the per-buyer sale record key.
func buyerKey(addr sdk.Address) string {
	return string(append([]byte{kBuyer}, addr.String()...))
}

// claimIndexKey holds the ordered list of enrolled beneficiary addresses.
func claimIndexKey() string {
	return string([]byte{kClaimIndex})
}

// buyerIndexKey holds the ordered list of enrolled buyer addresses.
func buyerIndexKey() string {
	return string([]byte{kBuyerIndex})
}
