package ledger

import "moonpad/sdk"

// ClaimAccount is the per-beneficiary ledger record. Withdrawn only ever
// grows through ApplyClaim; the administrator may overwrite the whole record
// wholesale, which is a trust point rather than an accounting operation.
type ClaimAccount struct {
	Reward    uint64
	Withdrawn uint64
}

// Transfer is an asset movement instruction for the host to execute after
// the state snapshot commits. The engine never moves funds itself.
type Transfer struct {
	To     sdk.Address
	Asset  sdk.Asset
	Amount uint64
}

// Withdrawable returns how much the account can claim right now: the
// unlocked share of the reward minus what was already withdrawn.
func Withdrawable(acct ClaimAccount, schedule VestingSchedule, now int64) (uint64, error) {
	if !schedule.Started(now) {
		return 0, ErrNotStarted
	}
	unlocked := schedule.UnlockedAmount(acct.Reward, now)
	if unlocked < acct.Withdrawn {
		// an admin overwrite can leave withdrawn ahead of the curve;
		// nothing is claimable until the curve catches up
		return 0, nil
	}
	return unlocked - acct.Withdrawn, nil
}

// ApplyClaim moves the full withdrawable amount into Withdrawn and returns
// the updated account together with the transfer instruction. A zero
// withdrawable is a successful zero transfer, not an error.
func ApplyClaim(acct ClaimAccount, schedule VestingSchedule, beneficiary sdk.Address, now int64) (ClaimAccount, Transfer, error) {
	amount, err := Withdrawable(acct, schedule, now)
	if err != nil {
		return acct, Transfer{}, err
	}
	acct.Withdrawn += amount
	return acct, Transfer{To: beneficiary, Asset: schedule.RewardAsset, Amount: amount}, nil
}
