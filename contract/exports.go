//go:build wasm

package main

// Host-facing export table. The gc toolchain rejects go:wasmexport off the
// wasm target, so the directives live here behind the build tag and the
// entrypoints themselves stay testable with plain go test.

//go:wasmexport contract_init
func wasmContractInit(payload *string) *string { return ContractInit(payload) }

//go:wasmexport claim_set_schedule
func wasmClaimSetSchedule(payload *string) *string { return ClaimSetSchedule(payload) }

//go:wasmexport claim_set_users
func wasmClaimSetUsers(payload *string) *string { return ClaimSetUsers(payload) }

//go:wasmexport claim
func wasmClaim(payload *string) *string { return Claim(payload) }

//go:wasmexport claim_get_schedule
func wasmClaimGetSchedule(payload *string) *string { return ClaimGetSchedule(payload) }

//go:wasmexport claim_get_user
func wasmClaimGetUser(payload *string) *string { return ClaimGetUser(payload) }

//go:wasmexport claim_get_withdrawable
func wasmClaimGetWithdrawable(payload *string) *string { return ClaimGetWithdrawable(payload) }

//go:wasmexport claim_get_users
func wasmClaimGetUsers(payload *string) *string { return ClaimGetUsers(payload) }

//go:wasmexport claim_total_available_after
func wasmClaimTotalAvailableAfter(payload *string) *string { return ClaimTotalAvailableAfter(payload) }

//go:wasmexport sale_set_config
func wasmSaleSetConfig(payload *string) *string { return SaleSetConfig(payload) }

//go:wasmexport sale_set_users
func wasmSaleSetUsers(payload *string) *string { return SaleSetUsers(payload) }

//go:wasmexport buy
func wasmBuy(payload *string) *string { return Buy(payload) }

//go:wasmexport sale_get_config
func wasmSaleGetConfig(payload *string) *string { return SaleGetConfig(payload) }

//go:wasmexport sale_get_user
func wasmSaleGetUser(payload *string) *string { return SaleGetUser(payload) }

//go:wasmexport sale_get_users
func wasmSaleGetUsers(payload *string) *string { return SaleGetUsers(payload) }

//go:wasmexport sale_quote
func wasmSaleQuote(payload *string) *string { return SaleQuote(payload) }

//go:wasmexport transfer_ownership
func wasmTransferOwnership(payload *string) *string { return TransferOwnership(payload) }

//go:wasmexport toggle_pause
func wasmTogglePause(payload *string) *string { return TogglePause(payload) }

//go:wasmexport withdraw
func wasmWithdraw(payload *string) *string { return Withdraw(payload) }

//go:wasmexport contract_get_info
func wasmContractGetInfo(payload *string) *string { return ContractGetInfo(payload) }
