////////////////////////////////////////////////////////////////////////////////
// Moonpad: vesting claims and capped token sales for the vsc network
////////////////////////////////////////////////////////////////////////////////

package main

import "moonpad/sdk"

// main is left empty on purpose
func main() {

}

// -----------------------------------------------------------------------------
// Contract Initialization
// -----------------------------------------------------------------------------

// ContractInit initializes the contract with the caller as owner.
// Must be called before any other function. The payload is ignored.
func ContractInit(payload *string) *string {
	if isContractInitialized() {
		sdk.Abort("contract already initialized")
	}

	cfg := ContractConfig{
		Owner:  getSenderAddress(),
		Paused: false,
	}
	saveContractConfig(&cfg)

	emitInitEvent(cfg.Owner.String())

	return strptr("initialized")
}
