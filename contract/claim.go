package main

import (
	"strconv"

	"moonpad/contract/ledger"
	"moonpad/contract/wire"
	"moonpad/sdk"
)

// -----------------------------------------------------------------------------
// Claim Engine Entrypoints
// -----------------------------------------------------------------------------

// ClaimSetSchedule replaces the vesting schedule wholesale. Owner only.
// Payload: json wire.Schedule
func ClaimSetSchedule(payload *string) *string {
	requireInitialized()
	requireOwner()

	raw := unwrapPayload(payload, "schedule payload missing")
	var args wire.Schedule
	decodeJSON(raw, &args, "schedule")

	if !isValidAsset(args.RewardAsset) {
		sdk.Revert("unsupported reward asset", "input_error")
	}
	schedule := ledger.VestingSchedule{
		RewardAsset:      sdk.Asset(args.RewardAsset),
		InitialUnlockBps: args.InitialUnlockBps,
		StartTime:        args.StartTime,
		CliffSeconds:     args.CliffSeconds,
		VestingSeconds:   args.VestingSeconds,
		IntervalSeconds:  args.IntervalSeconds,
	}
	if err := schedule.Validate(); err != nil {
		sdk.Revert(err.Error(), "input_error")
	}
	saveSchedule(&schedule)

	emitScheduleSetEvent(schedule.StartTime, schedule.CliffSeconds, schedule.VestingSeconds)
	return strptr("schedule set")
}

// ClaimSetUsers replaces the whole beneficiary set. Records are stored
// verbatim, withdrawn included; rewriting history is an owner privilege.
// Payload: json wire.ClaimUserList
func ClaimSetUsers(payload *string) *string {
	requireInitialized()
	requireOwner()

	raw := unwrapPayload(payload, "user list payload missing")
	var args wire.ClaimUserList
	decodeJSON(raw, &args, "user list")

	addrs := make([]sdk.Address, 0, len(args.Users))
	accounts := make([]ledger.ClaimAccount, 0, len(args.Users))
	for _, u := range args.Users {
		addrs = append(addrs, parseAddressField(u.Address, "user address"))
		accounts = append(accounts, ledger.ClaimAccount{
			Reward:    u.Reward,
			Withdrawn: u.Withdrawn,
		})
	}
	replaceClaimUsers(accounts, addrs)

	emitClaimUsersSetEvent(len(accounts))
	return strptr("claim users set: " + strconv.Itoa(len(accounts)))
}

// Claim pays the sender everything the curve has unlocked for them so far.
// A zero withdrawable is a successful no-op transfer.
func Claim(_ *string) *string {
	requireInitialized()

	if cfg := loadContractConfig(); cfg.Paused {
		revertLedgerError(ledger.ErrPaused)
	}
	schedule := loadSchedule()
	if schedule == nil {
		sdk.Revert("vesting schedule not set", "not_found")
	}
	sender := getSenderAddress()
	acct := loadClaimAccount(sender)
	if acct == nil {
		sdk.Revert("no claim record for sender", "not_found")
	}

	updated, transfer, err := ledger.ApplyClaim(*acct, *schedule, sender, nowUnix())
	if err != nil {
		revertLedgerError(err)
	}
	saveClaimAccount(sender, &updated)
	if transfer.Amount > 0 {
		sdk.HiveTransfer(transfer.To, hostAmount(transfer.Amount), transfer.Asset)
	}

	emitClaimEvent(sender.String(), transfer.Amount)
	return strptr("claimed " + strconv.FormatUint(transfer.Amount, 10))
}

// -----------------------------------------------------------------------------
// Claim Engine Queries
// -----------------------------------------------------------------------------

// ClaimGetSchedule returns the current vesting schedule.
func ClaimGetSchedule(_ *string) *string {
	schedule := loadSchedule()
	if schedule == nil {
		sdk.Revert("vesting schedule not set", "not_found")
	}
	return encodeJSON(wire.Schedule{
		RewardAsset:      schedule.RewardAsset.String(),
		InitialUnlockBps: schedule.InitialUnlockBps,
		StartTime:        schedule.StartTime,
		CliffSeconds:     schedule.CliffSeconds,
		VestingSeconds:   schedule.VestingSeconds,
		IntervalSeconds:  schedule.IntervalSeconds,
	})
}

// ClaimGetUser returns one beneficiary record, zeroed when not enrolled.
// Payload: address
func ClaimGetUser(payload *string) *string {
	addr := parseAddressField(unwrapPayload(payload, "address required"), "address")
	acct := loadClaimAccount(addr)
	if acct == nil {
		acct = &ledger.ClaimAccount{}
	}
	return encodeJSON(wire.ClaimUser{
		Address:   addr.String(),
		Reward:    acct.Reward,
		Withdrawn: acct.Withdrawn,
	})
}

// ClaimGetWithdrawable returns the amount the address could claim right now.
// Payload: address
func ClaimGetWithdrawable(payload *string) *string {
	addr := parseAddressField(unwrapPayload(payload, "address required"), "address")
	schedule := loadSchedule()
	if schedule == nil {
		sdk.Revert("vesting schedule not set", "not_found")
	}
	acct := loadClaimAccount(addr)
	if acct == nil {
		acct = &ledger.ClaimAccount{}
	}
	amount, err := ledger.Withdrawable(*acct, *schedule, nowUnix())
	if err != nil {
		revertLedgerError(err)
	}
	return strptr(strconv.FormatUint(amount, 10))
}

// ClaimGetUsers returns every enrolled beneficiary in admin order.
func ClaimGetUsers(_ *string) *string {
	addrs := loadClaimIndex()
	users := make([]wire.ClaimUser, 0, len(addrs))
	for _, addr := range addrs {
		acct := loadClaimAccount(addr)
		if acct == nil {
			continue
		}
		users = append(users, wire.ClaimUser{
			Address:   addr.String(),
			Reward:    acct.Reward,
			Withdrawn: acct.Withdrawn,
		})
	}
	return encodeJSON(wire.ClaimUserList{Users: users})
}

// ClaimTotalAvailableAfter returns the instant the full reward unlocks.
func ClaimTotalAvailableAfter(_ *string) *string {
	schedule := loadSchedule()
	if schedule == nil {
		sdk.Revert("vesting schedule not set", "not_found")
	}
	return strptr(strconv.FormatInt(schedule.TotalAvailableAfter(), 10))
}
