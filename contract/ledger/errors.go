package ledger

import (
	"errors"
	"fmt"
)

// Every failure here is a permanent rejection of one action against one
// state snapshot. Nothing is retryable and no partial state survives an
// error; the caller persists either the whole returned snapshot or nothing.
var (
	// ErrNotStarted rejects claims evaluated before the vesting start time.
	ErrNotStarted = errors.New("vesting has not started")
	// ErrPaused rejects claims while the claim engine is administratively paused.
	ErrPaused = errors.New("claims are paused")
	// ErrSaleNotActive rejects purchases outside the configured sale window.
	ErrSaleNotActive = errors.New("sale not active")
	// ErrMissingFunds rejects purchases without a positive payment in the pay asset.
	ErrMissingFunds = errors.New("not enough funds")
	// ErrNotParticipating rejects buyers with no allocation at all.
	ErrNotParticipating = errors.New("not participating")
)

// Schedule validation failures, surfaced when the administrator replaces the
// vesting schedule with one the curve cannot evaluate.
var (
	errInvalidBps       = errors.New("initial unlock above 10000 bps")
	errNegativeDuration = errors.New("negative vesting duration")
	errInvalidInterval  = errors.New("vesting interval must be positive")
	errInvalidPrice     = errors.New("price denominator must be positive")
)

// UserAllocationExceededError reports a purchase above the buyer's remaining
// headroom. Max is what is left, not the total allocation.
type UserAllocationExceededError struct {
	Wanted uint64
	Max    uint64
}

func (e *UserAllocationExceededError) Error() string {
	return fmt.Sprintf("user allocation exceeded: wanted %d, max %d", e.Wanted, e.Max)
}

// SaleAllocationExceededError reports a purchase above the remaining global
// raise headroom.
type SaleAllocationExceededError struct {
	Wanted uint64
	Max    uint64
}

func (e *SaleAllocationExceededError) Error() string {
	return fmt.Sprintf("sale allocation exceeded: wanted %d, max %d", e.Wanted, e.Max)
}
