package main

import (
	"strings"

	"moonpad/sdk"
)

// -----------------------------------------------------------------------------
// Contract Configuration State
// -----------------------------------------------------------------------------

// ContractConfig is the singleton admin record: who owns the contract and
// whether the claim engine is paused.
type ContractConfig struct {
	Owner  sdk.Address
	Paused bool
}

// isContractInitialized returns true if the contract has been initialized.
func isContractInitialized() bool {
	ptr := sdk.StateGetObject(ContractConfigKey)
	return ptr != nil && *ptr != ""
}

// requireInitialized aborts if the contract has not been initialized.
func requireInitialized() {
	if !isContractInitialized() {
		sdk.Abort("contract not initialized")
	}
}

// loadContractConfig loads the contract configuration from state.
func loadContractConfig() *ContractConfig {
	ptr := sdk.StateGetObject(ContractConfigKey)
	if ptr == nil || *ptr == "" {
		return nil
	}
	return decodeContractConfig(*ptr)
}

// saveContractConfig stores the contract configuration to state.
func saveContractConfig(cfg *ContractConfig) {
	sdk.StateSetObject(ContractConfigKey, encodeContractConfig(cfg))
}

// isContractOwner returns true if the given address is the contract owner.
func isContractOwner(addr sdk.Address) bool {
	cfg := loadContractConfig()
	return cfg != nil && cfg.Owner == addr
}

// requireOwner reverts with unauthorized unless the sender owns the contract.
func requireOwner() sdk.Address {
	sender := getSenderAddress()
	if !isContractOwner(sender) {
		sdk.Revert("sender is not the contract owner", "unauthorized")
	}
	return sender
}

// -----------------------------------------------------------------------------
// Contract Config Encoding
// -----------------------------------------------------------------------------

// encodeContractConfig serializes ContractConfig to a pipe-delimited string.
// Format: owner|paused
func encodeContractConfig(cfg *ContractConfig) string {
	pausedStr := "0"
	if cfg.Paused {
		pausedStr = "1"
	}
	return cfg.Owner.String() + "|" + pausedStr
}

// decodeContractConfig deserializes a pipe-delimited string to ContractConfig.
func decodeContractConfig(data string) *ContractConfig {
	parts := strings.Split(data, "|")
	if len(parts) < 2 {
		return nil
	}
	return &ContractConfig{
		Owner:  sdk.Address(parts[0]),
		Paused: parts[1] == "1",
	}
}
