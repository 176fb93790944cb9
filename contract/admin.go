package main

import (
	"moonpad/contract/wire"
	"moonpad/sdk"
)

// -----------------------------------------------------------------------------
// Shared Admin Entrypoints
// -----------------------------------------------------------------------------

// TransferOwnership hands the contract to a new owner. Owner only.
// Payload: address
func TransferOwnership(payload *string) *string {
	requireInitialized()
	sender := requireOwner()

	newOwner := parseAddressField(unwrapPayload(payload, "new owner address required"), "new owner")
	cfg := loadContractConfig()
	cfg.Owner = newOwner
	saveContractConfig(cfg)

	emitOwnershipEvent(sender.String(), newOwner.String())
	return strptr("ownership transferred")
}

// TogglePause flips the claim engine pause flag. Purchases are governed by
// the sale window alone and keep running. Owner only.
func TogglePause(_ *string) *string {
	requireInitialized()
	requireOwner()

	cfg := loadContractConfig()
	cfg.Paused = !cfg.Paused
	saveContractConfig(cfg)

	emitPauseEvent(cfg.Paused)
	if cfg.Paused {
		return strptr("claims paused")
	}
	return strptr("claims unpaused")
}

// Withdraw rescues funds from the contract balance. Owner only.
// Payload: json wire.WithdrawArgs
func Withdraw(payload *string) *string {
	requireInitialized()
	requireOwner()

	raw := unwrapPayload(payload, "withdraw payload missing")
	var args wire.WithdrawArgs
	decodeJSON(raw, &args, "withdraw")

	to := parseAddressField(args.To, "recipient")
	if !isValidAsset(args.Asset) {
		sdk.Revert("unsupported asset", "input_error")
	}
	if args.Amount == 0 {
		sdk.Revert("withdraw amount must be positive", "input_error")
	}
	amount := hostAmount(args.Amount)
	self := sdk.Address(currentEnv().ContractId)
	if sdk.GetBalance(self, sdk.Asset(args.Asset)) < amount {
		sdk.Revert("contract balance too low", "missing_funds")
	}
	sdk.HiveTransfer(to, amount, sdk.Asset(args.Asset))

	emitWithdrawEvent(to.String(), args.Amount, args.Asset)
	return strptr("withdrawn")
}

// ContractGetInfo returns the owner and pause flag.
func ContractGetInfo(_ *string) *string {
	requireInitialized()
	cfg := loadContractConfig()
	return encodeJSON(wire.ContractInfo{
		Owner:  cfg.Owner.String(),
		Paused: cfg.Paused,
	})
}
