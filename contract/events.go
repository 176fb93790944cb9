package main

import (
	"fmt"

	"moonpad/sdk"
)

// emitInitEvent pings explorers once when the contract comes alive.
func emitInitEvent(owner string) {
	sdk.Log(fmt.Sprintf("in|by:%s", owner))
}

// emitScheduleSetEvent logs a vesting schedule swap with the curve corners.
func emitScheduleSetEvent(start int64, cliff int64, vesting int64) {
	sdk.Log(fmt.Sprintf(
		"vs|start:%d|cliff:%d|dur:%d",
		start,
		cliff,
		vesting,
	))
}

// emitClaimUsersSetEvent records how many beneficiaries the admin enrolled.
func emitClaimUsersSetEvent(count int) {
	sdk.Log(fmt.Sprintf("vu|n:%d", count))
}

// emitClaimEvent writes a tiny "cl" line for every claim, zero ones included.
func emitClaimEvent(to string, amount uint64) {
	sdk.Log(fmt.Sprintf(
		"cl|to:%s|amt:%d",
		to,
		amount,
	))
}

// emitSaleConfigSetEvent logs a sale window swap so watchers can track phases.
func emitSaleConfigSetEvent(start int64, end int64, maxRaise uint64) {
	sdk.Log(fmt.Sprintf(
		"sc|start:%d|end:%d|cap:%d",
		start,
		end,
		maxRaise,
	))
}

// emitSaleUsersSetEvent records how many buyers the admin enrolled.
func emitSaleUsersSetEvent(count int) {
	sdk.Log(fmt.Sprintf("su|n:%d", count))
}

// emitBuyEvent is the receipt line: who paid how much and what they got.
func emitBuyEvent(by string, paid uint64, received uint64) {
	sdk.Log(fmt.Sprintf(
		"by|by:%s|pay:%d|recv:%d",
		by,
		paid,
		received,
	))
}

// emitOwnershipEvent signals the owner handover.
func emitOwnershipEvent(from string, to string) {
	sdk.Log(fmt.Sprintf("ot|from:%s|to:%s", from, to))
}

// emitPauseEvent flags the claim engine pause flip.
func emitPauseEvent(paused bool) {
	sdk.Log(fmt.Sprintf("tp|paused:%t", paused))
}

// emitWithdrawEvent logs owner rescue transfers out of the contract balance.
func emitWithdrawEvent(to string, amount uint64, asset string) {
	sdk.Log(fmt.Sprintf(
		"wd|to:%s|amt:%d|asset:%s",
		to,
		amount,
		asset,
	))
}
