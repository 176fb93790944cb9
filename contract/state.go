package main

import (
	"strconv"

	"moonpad/contract/ledger"
	"moonpad/sdk"
)

////////////////////////////////////////////////////////////////////////////////
// Contract State Persistence helpers
////////////////////////////////////////////////////////////////////////////////

// loadSchedule returns the vesting schedule or nil when none was set yet.
func loadSchedule() *ledger.VestingSchedule {
	ptr := sdk.StateGetObject(scheduleKey())
	if ptr == nil || *ptr == "" {
		return nil
	}
	s, err := DecodeSchedule([]byte(*ptr))
	if err != nil {
		sdk.Abort("corrupt schedule record")
	}
	return s
}

// saveSchedule overwrites the singleton schedule slot.
func saveSchedule(s *ledger.VestingSchedule) {
	sdk.StateSetObject(scheduleKey(), string(EncodeSchedule(s)))
}

// loadClaimAccount returns the beneficiary record or nil when not enrolled.
func loadClaimAccount(addr sdk.Address) *ledger.ClaimAccount {
	ptr := sdk.StateGetObject(claimUserKey(addr))
	if ptr == nil || *ptr == "" {
		return nil
	}
	a, err := DecodeClaimAccount([]byte(*ptr))
	if err != nil {
		sdk.Abort("corrupt claim record")
	}
	return a
}

// saveClaimAccount stores one beneficiary record.
func saveClaimAccount(addr sdk.Address, a *ledger.ClaimAccount) {
	sdk.StateSetObject(claimUserKey(addr), string(EncodeClaimAccount(a)))
}

// loadClaimIndex returns the enrolled beneficiary addresses in admin order.
func loadClaimIndex() []sdk.Address {
	return loadIndex(claimIndexKey())
}

// replaceClaimUsers swaps the whole beneficiary set: records of addresses
// missing from the new list are removed, not orphaned.
func replaceClaimUsers(users []ledger.ClaimAccount, addrs []sdk.Address) {
	for _, old := range loadClaimIndex() {
		sdk.StateDeleteObject(claimUserKey(old))
	}
	for i := range users {
		saveClaimAccount(addrs[i], &users[i])
	}
	sdk.StateSetObject(claimIndexKey(), string(EncodeAddressIndex(addrs)))
}

// loadSaleConfig returns the sale parameters or nil when none were set yet.
func loadSaleConfig() *ledger.SaleConfig {
	ptr := sdk.StateGetObject(saleConfigKey())
	if ptr == nil || *ptr == "" {
		return nil
	}
	c, err := DecodeSaleConfig([]byte(*ptr))
	if err != nil {
		sdk.Abort("corrupt sale config record")
	}
	return c
}

// saveSaleConfig overwrites the singleton sale parameter slot.
func saveSaleConfig(c *ledger.SaleConfig) {
	sdk.StateSetObject(saleConfigKey(), string(EncodeSaleConfig(c)))
}

// loadSaleLedger returns the aggregate raise record, zero when untouched.
func loadSaleLedger() ledger.SaleLedger {
	ptr := sdk.StateGetObject(saleLedgerKey())
	if ptr == nil || *ptr == "" {
		return ledger.SaleLedger{}
	}
	n, err := strconv.ParseUint(*ptr, 10, 64)
	if err != nil {
		sdk.Abort("corrupt sale ledger record")
	}
	return ledger.SaleLedger{TotalRaised: n}
}

// saveSaleLedger stores the aggregate raise as a plain decimal, same scheme
// as the id counters.
func saveSaleLedger(led ledger.SaleLedger) {
	sdk.StateSetObject(saleLedgerKey(), strconv.FormatUint(led.TotalRaised, 10))
}

// loadBuyer returns the buyer record or nil when not enrolled.
func loadBuyer(addr sdk.Address) *ledger.BuyerAccount {
	ptr := sdk.StateGetObject(buyerKey(addr))
	if ptr == nil || *ptr == "" {
		return nil
	}
	b, err := DecodeBuyer([]byte(*ptr))
	if err != nil {
		sdk.Abort("corrupt buyer record")
	}
	return b
}

// saveBuyer stores one buyer record.
func saveBuyer(addr sdk.Address, b *ledger.BuyerAccount) {
	sdk.StateSetObject(buyerKey(addr), string(EncodeBuyer(b)))
}

// loadBuyerIndex returns the enrolled buyer addresses in admin order.
func loadBuyerIndex() []sdk.Address {
	return loadIndex(buyerIndexKey())
}

// replaceBuyers swaps the whole buyer set, dropping records of addresses no
// longer on the list.
func replaceBuyers(buyers []ledger.BuyerAccount, addrs []sdk.Address) {
	for _, old := range loadBuyerIndex() {
		sdk.StateDeleteObject(buyerKey(old))
	}
	for i := range buyers {
		saveBuyer(addrs[i], &buyers[i])
	}
	sdk.StateSetObject(buyerIndexKey(), string(EncodeAddressIndex(addrs)))
}

// loadIndex is the shared decoder behind both enrollment lists.
func loadIndex(key string) []sdk.Address {
	ptr := sdk.StateGetObject(key)
	if ptr == nil || *ptr == "" {
		return nil
	}
	addrs, err := DecodeAddressIndex([]byte(*ptr))
	if err != nil {
		sdk.Abort("corrupt index record")
	}
	return addrs
}
