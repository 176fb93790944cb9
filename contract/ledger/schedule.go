// Package ledger holds the pure accounting engines of the contract: the
// vesting unlock curve, the claim ledger, and the allocation-bounded sale.
// Functions here take state snapshots and return new snapshots; storage and
// asset movement stay with the caller.
package ledger

import "moonpad/sdk"

// VestingSchedule describes the unlock curve for the claim engine.
// Times are unix seconds; the curve is a step function quantized to
// IntervalSeconds, not a continuous line.
type VestingSchedule struct {
	RewardAsset      sdk.Asset
	InitialUnlockBps uint64
	StartTime        int64
	CliffSeconds     int64
	VestingSeconds   int64
	IntervalSeconds  int64
}

// Started reports whether vesting has begun at the given instant.
func (s *VestingSchedule) Started(now int64) bool {
	return now >= s.StartTime
}

// TotalAvailableAfter returns the instant after which the full reward is
// unlocked: start + cliff + vesting duration.
func (s *VestingSchedule) TotalAvailableAfter() int64 {
	return s.StartTime + s.CliffSeconds + s.VestingSeconds
}

// Validate rejects schedules the curve cannot evaluate. An interval that
// does not divide the vesting duration is allowed; the step count truncates.
func (s *VestingSchedule) Validate() error {
	if s.InitialUnlockBps > BpsDenom {
		return errInvalidBps
	}
	if s.CliffSeconds < 0 || s.VestingSeconds < 0 {
		return errNegativeDuration
	}
	if s.VestingSeconds > 0 && s.IntervalSeconds <= 0 {
		return errInvalidInterval
	}
	return nil
}

// UnlockedAmount computes the cumulative share of total released at now.
//
// Before start nothing is unlocked. Through the cliff only the initial
// unlock (InitialUnlockBps of total) is available. After cliff+vesting the
// full total is released. In between, the remainder vests in discrete steps
// of IntervalSeconds; within one interval the amount is flat. Every division
// truncates, matching the balances already settled on chain bit for bit.
func (s *VestingSchedule) UnlockedAmount(total uint64, now int64) uint64 {
	if !s.Started(now) {
		return 0
	}

	elapsed := now - s.StartTime

	if elapsed <= s.CliffSeconds {
		return mulDiv(total, s.InitialUnlockBps, BpsDenom)
	}
	if elapsed > s.CliffSeconds+s.VestingSeconds {
		return total
	}

	initial := mulDiv(total, s.InitialUnlockBps, BpsDenom)
	vestable := total - initial
	stepsElapsed := uint64((elapsed - s.CliffSeconds) / s.IntervalSeconds)
	totalSteps := uint64(s.VestingSeconds / s.IntervalSeconds)
	if totalSteps == 0 {
		// Interval longer than the vesting duration: no step ever
		// completes inside the window, only the initial unlock is out.
		return initial
	}

	return mulDiv(vestable, stepsElapsed, totalSteps) + initial
}
