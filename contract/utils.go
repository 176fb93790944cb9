package main

import (
	"errors"
	"math"
	"strconv"
	"time"

	"moonpad/contract/ledger"
	"moonpad/sdk"
)

// hostAmount converts a ledger amount to the signed range the hive host
// calls take. Anything past int64 would flip negative on the wire.
func hostAmount(v uint64) int64 {
	if v > math.MaxInt64 {
		sdk.Revert("amount exceeds transferable range", "input_error")
	}
	return int64(v)
}

// -----------------------------------------------------------------------------
// Timestamp Helpers
// -----------------------------------------------------------------------------

// nowUnix returns the current Unix timestamp.
// It prefers the chain's block timestamp from the environment if available.
func nowUnix() int64 {
	if ts := currentEnv().Timestamp; ts != "" {
		if v, ok := parseTimestamp(ts); ok {
			return v
		}
	}
	if tsPtr := sdk.GetEnvKey("block.timestamp"); tsPtr != nil && *tsPtr != "" {
		if v, ok := parseTimestamp(*tsPtr); ok {
			return v
		}
	}
	return time.Now().Unix()
}

// parseTimestamp accepts unix seconds or iso-ish strings since the env flips formats sometimes.
func parseTimestamp(val string) (int64, bool) {
	if v, err := strconv.ParseInt(val, 10, 64); err == nil {
		return v, true
	}
	if t, err := time.Parse(time.RFC3339, val); err == nil {
		return t.Unix(), true
	}
	if t, err := time.ParseInLocation("2006-01-02T15:04:05", val, time.UTC); err == nil {
		return t.Unix(), true
	}
	return 0, false
}

// -----------------------------------------------------------------------------
// Error mapping
// -----------------------------------------------------------------------------

// revertLedgerError translates an engine error into the matching revert
// symbol. It never returns.
func revertLedgerError(err error) {
	var uae *ledger.UserAllocationExceededError
	var sae *ledger.SaleAllocationExceededError
	switch {
	case errors.Is(err, ledger.ErrNotStarted):
		sdk.Revert(err.Error(), "not_started")
	case errors.Is(err, ledger.ErrPaused):
		sdk.Revert(err.Error(), "paused")
	case errors.Is(err, ledger.ErrSaleNotActive):
		sdk.Revert(err.Error(), "sale_not_active")
	case errors.Is(err, ledger.ErrMissingFunds):
		sdk.Revert(err.Error(), "missing_funds")
	case errors.Is(err, ledger.ErrNotParticipating):
		sdk.Revert(err.Error(), "not_participating")
	case errors.As(err, &uae):
		sdk.Revert(err.Error(), "user_allocation_exceeded")
	case errors.As(err, &sae):
		sdk.Revert(err.Error(), "sale_allocation_exceeded")
	default:
		sdk.Revert(err.Error(), "input_error")
	}
}
