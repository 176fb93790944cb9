package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"moonpad/sdk"
)

// testSchedule mirrors the schedules the claim engine typically runs: a 20%
// initial unlock, a 30s cliff and 40s of second-by-second vesting.
func testSchedule() VestingSchedule {
	return VestingSchedule{
		RewardAsset:      sdk.AssetHive,
		InitialUnlockBps: 2000,
		StartTime:        0,
		CliffSeconds:     30,
		VestingSeconds:   40,
		IntervalSeconds:  1,
	}
}

func TestUnlockedAmountKnownValues(t *testing.T) {
	s := testSchedule()

	assert.Equal(t, uint64(20), s.UnlockedAmount(100, 0), "initial unlock at start")
	assert.Equal(t, uint64(20), s.UnlockedAmount(100, 30), "flat through the cliff")
	assert.Equal(t, uint64(22), s.UnlockedAmount(100, 31), "first vesting step")
	assert.Equal(t, uint64(400), s.UnlockedAmount(1000, 40), "quarter of the way through")
	assert.Equal(t, uint64(100), s.UnlockedAmount(100, 70), "fully vested at the end")
	assert.Equal(t, uint64(100), s.UnlockedAmount(100, 1_000_000), "stays at total forever")
}

func TestUnlockedAmountBeforeStart(t *testing.T) {
	s := testSchedule()
	s.StartTime = 1000

	assert.Zero(t, s.UnlockedAmount(100, 0))
	assert.Zero(t, s.UnlockedAmount(100, 999))
	assert.Equal(t, uint64(20), s.UnlockedAmount(100, 1000))
}

func TestUnlockedAmountMonotonic(t *testing.T) {
	s := testSchedule()

	prev := uint64(0)
	for now := int64(0); now <= 80; now++ {
		cur := s.UnlockedAmount(997, now)
		require.GreaterOrEqual(t, cur, prev, "curve dipped at t=%d", now)
		prev = cur
	}
	assert.Equal(t, uint64(997), prev)
}

func TestUnlockedAmountFlatWithinInterval(t *testing.T) {
	s := testSchedule()
	s.IntervalSeconds = 10

	// Between step boundaries the amount must not move.
	assert.Equal(t, s.UnlockedAmount(1000, 40), s.UnlockedAmount(1000, 49))
	assert.Less(t, s.UnlockedAmount(1000, 39), s.UnlockedAmount(1000, 40))
}

func TestUnlockedAmountTruncatesPartialSteps(t *testing.T) {
	// 40s of vesting with a 12s interval leaves only 3 full steps; the
	// remainder unlocks when elapsed passes cliff+vesting.
	s := testSchedule()
	s.IntervalSeconds = 12

	initial := uint64(20)
	vestable := uint64(80)
	assert.Equal(t, initial, s.UnlockedAmount(100, 41))
	assert.Equal(t, initial+mulDiv(vestable, 1, 3), s.UnlockedAmount(100, 42))
	assert.Equal(t, initial+mulDiv(vestable, 3, 3), s.UnlockedAmount(100, 66))
	assert.Equal(t, uint64(100), s.UnlockedAmount(100, 71))
}

func TestUnlockedAmountIntervalLongerThanVesting(t *testing.T) {
	// With zero full steps in the window the curve holds the initial
	// unlock between cliff and cliff+vesting, then releases the rest.
	s := testSchedule()
	s.IntervalSeconds = 90
	require.NoError(t, s.Validate())

	assert.Equal(t, uint64(20), s.UnlockedAmount(100, 31))
	assert.Equal(t, uint64(20), s.UnlockedAmount(100, 70))
	assert.Equal(t, uint64(100), s.UnlockedAmount(100, 71))
}

func TestUnlockedAmountZeroVesting(t *testing.T) {
	// Cliff-only schedule: initial unlock through the cliff, then everything.
	s := VestingSchedule{
		RewardAsset:      sdk.AssetHive,
		InitialUnlockBps: 500,
		StartTime:        100,
		CliffSeconds:     50,
		VestingSeconds:   0,
		IntervalSeconds:  0,
	}
	require.NoError(t, s.Validate())

	assert.Equal(t, uint64(50), s.UnlockedAmount(1000, 150))
	assert.Equal(t, uint64(1000), s.UnlockedAmount(1000, 151))
}

func TestTotalAvailableAfter(t *testing.T) {
	s := testSchedule()
	s.StartTime = 500

	assert.Equal(t, int64(570), s.TotalAvailableAfter())
}

func TestScheduleValidate(t *testing.T) {
	s := testSchedule()
	require.NoError(t, s.Validate())

	bad := s
	bad.InitialUnlockBps = 10001
	assert.Error(t, bad.Validate())

	bad = s
	bad.CliffSeconds = -1
	assert.Error(t, bad.Validate())

	bad = s
	bad.IntervalSeconds = 0
	assert.Error(t, bad.Validate())

	// An interval larger than the vesting duration is legal, it just
	// truncates to zero steps until the duration elapses.
	odd := s
	odd.IntervalSeconds = 90
	require.NoError(t, odd.Validate())
	assert.Equal(t, uint64(20), odd.UnlockedAmount(100, 50))
	assert.Equal(t, uint64(100), odd.UnlockedAmount(100, 71))
}
