package main

import (
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"moonpad/contract/wire"
	"moonpad/sdk"
)

// txCounter keeps tx ids unique across the whole test binary so the per-tx
// env cache never serves a stale snapshot.
var txCounter int

func newTx() {
	txCounter++
	sdk.MockBumpTx("tx-" + strconv.Itoa(txCounter))
}

// asUser switches the sender for the next call.
func asUser(addr string) {
	newTx()
	sdk.MockSetSender(addr)
}

// atTime moves the block clock, keeping the current sender.
func atTime(unix int64) {
	newTx()
	sdk.MockSetTimestamp(strconv.FormatInt(unix, 10))
}

// withAllowance installs a transfer.allow intent for the next call.
func withAllowance(limit uint64, token sdk.Asset) {
	newTx()
	sdk.MockSetIntents([]sdk.Intent{{
		Type: "transfer.allow",
		Args: map[string]string{
			"limit": strconv.FormatUint(limit, 10),
			"token": token.String(),
		},
	}})
}

// initContract resets the mock chain and initializes with the given owner.
func initContract(t *testing.T, owner string) {
	t.Helper()
	sdk.MockReset()
	asUser(owner)
	res := ContractInit(nil)
	require.Equal(t, "initialized", *res)
}

// expectRevert runs fn and asserts it reverts with the given symbol.
func expectRevert(t *testing.T, symbol string, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected revert %s, call returned", symbol)
		he, ok := r.(*sdk.HostError)
		require.True(t, ok, "panic was not a host error: %v", r)
		assert.Equal(t, symbol, he.Symbol)
	}()
	fn()
}

func jsonPayload(t *testing.T, v interface{ MarshalJSON() ([]byte, error) }) *string {
	t.Helper()
	b, err := v.MarshalJSON()
	require.NoError(t, err)
	return strptr(string(b))
}

func defaultSchedulePayload(t *testing.T) *string {
	return jsonPayload(t, wire.Schedule{
		RewardAsset:      "hive",
		InitialUnlockBps: 2000,
		StartTime:        0,
		CliffSeconds:     30,
		VestingSeconds:   40,
		IntervalSeconds:  1,
	})
}

func defaultSaleConfigPayload(t *testing.T) *string {
	return jsonPayload(t, wire.SaleConfig{
		StartTime:  100,
		EndTime:    200,
		PayAsset:   "hive",
		SaleAsset:  "hbd",
		MaxRaise:   10_000,
		PriceNum:   2,
		PriceDenom: 3,
	})
}

// -----------------------------------------------------------------------------
// Initialization and admin
// -----------------------------------------------------------------------------

func TestContractInit(t *testing.T) {
	initContract(t, "hive:owner")

	info := wire.ContractInfo{}
	require.NoError(t, info.UnmarshalJSON([]byte(*ContractGetInfo(nil))))
	assert.Equal(t, "hive:owner", info.Owner)
	assert.False(t, info.Paused)

	expectRevert(t, "abort", func() {
		ContractInit(nil)
	})
}

func TestUninitializedCallsAbort(t *testing.T) {
	sdk.MockReset()
	asUser("hive:anyone")
	expectRevert(t, "abort", func() {
		Claim(nil)
	})
}

func TestTransferOwnership(t *testing.T) {
	initContract(t, "hive:owner")

	expectRevert(t, "unauthorized", func() {
		asUser("hive:mallory")
		TransferOwnership(strptr("hive:mallory"))
	})

	asUser("hive:owner")
	TransferOwnership(strptr("hive:heir"))

	// The old owner lost admin rights, the heir gained them.
	expectRevert(t, "unauthorized", func() {
		asUser("hive:owner")
		ClaimSetSchedule(defaultSchedulePayload(t))
	})
	asUser("hive:heir")
	ClaimSetSchedule(defaultSchedulePayload(t))
}

func TestTogglePause(t *testing.T) {
	initContract(t, "hive:owner")
	asUser("hive:owner")
	ClaimSetSchedule(defaultSchedulePayload(t))
	ClaimSetUsers(jsonPayload(t, wire.ClaimUserList{Users: []wire.ClaimUser{
		{Address: "hive:alice", Reward: 1000},
	}}))

	asUser("hive:owner")
	res := TogglePause(nil)
	assert.Equal(t, "claims paused", *res)

	expectRevert(t, "paused", func() {
		asUser("hive:alice")
		Claim(nil)
	})

	asUser("hive:owner")
	res = TogglePause(nil)
	assert.Equal(t, "claims unpaused", *res)

	atTime(40)
	asUser("hive:alice")
	assert.Equal(t, "claimed 400", *Claim(nil))
}

func TestWithdrawRescue(t *testing.T) {
	initContract(t, "hive:owner")

	expectRevert(t, "unauthorized", func() {
		asUser("hive:mallory")
		Withdraw(jsonPayload(t, wire.WithdrawArgs{To: "hive:mallory", Asset: "hive", Amount: 5}))
	})

	asUser("hive:owner")
	expectRevert(t, "input_error", func() {
		Withdraw(jsonPayload(t, wire.WithdrawArgs{To: "hive:owner", Asset: "doge", Amount: 5}))
	})
	expectRevert(t, "input_error", func() {
		Withdraw(jsonPayload(t, wire.WithdrawArgs{To: "hive:owner", Asset: "hive", Amount: 0}))
	})
	expectRevert(t, "input_error", func() {
		Withdraw(jsonPayload(t, wire.WithdrawArgs{To: "hive:owner", Asset: "hive", Amount: 1 << 63}))
	})
	expectRevert(t, "missing_funds", func() {
		Withdraw(jsonPayload(t, wire.WithdrawArgs{To: "hive:owner", Asset: "hive", Amount: 5}))
	})

	sdk.MockSetBalance("contract:moonpad-test", sdk.AssetHive, 1000)
	Withdraw(jsonPayload(t, wire.WithdrawArgs{To: "hive:treasury", Asset: "hive", Amount: 777}))
	transfers := sdk.MockTransfers()
	require.Len(t, transfers, 1)
	assert.Equal(t, sdk.MockTransfer{To: "hive:treasury", Amount: 777, Asset: "hive"}, transfers[0])
}

// -----------------------------------------------------------------------------
// Claim engine
// -----------------------------------------------------------------------------

func TestClaimLifecycle(t *testing.T) {
	initContract(t, "hive:owner")
	asUser("hive:owner")
	ClaimSetSchedule(defaultSchedulePayload(t))
	ClaimSetUsers(jsonPayload(t, wire.ClaimUserList{Users: []wire.ClaimUser{
		{Address: "hive:alice", Reward: 1000},
		{Address: "hive:bob", Reward: 100},
	}}))

	atTime(40)
	asUser("hive:alice")
	assert.Equal(t, "claimed 400", *Claim(nil))

	transfers := sdk.MockTransfers()
	require.Len(t, transfers, 1)
	assert.Equal(t, sdk.MockTransfer{To: "hive:alice", Amount: 400, Asset: "hive"}, transfers[0])

	// Claiming again at the same instant succeeds with nothing to move.
	newTx()
	assert.Equal(t, "claimed 0", *Claim(nil))
	assert.Len(t, sdk.MockTransfers(), 1)

	// Later the rest of the curve pays out.
	atTime(70)
	assert.Equal(t, "claimed 600", *Claim(nil))

	user := wire.ClaimUser{}
	require.NoError(t, user.UnmarshalJSON([]byte(*ClaimGetUser(strptr("hive:alice")))))
	assert.Equal(t, uint64(1000), user.Withdrawn)
}

func TestClaimNotStarted(t *testing.T) {
	initContract(t, "hive:owner")
	asUser("hive:owner")
	ClaimSetSchedule(jsonPayload(t, wire.Schedule{
		RewardAsset:      "hive",
		InitialUnlockBps: 2000,
		StartTime:        1_000_000,
		CliffSeconds:     30,
		VestingSeconds:   40,
		IntervalSeconds:  1,
	}))
	ClaimSetUsers(jsonPayload(t, wire.ClaimUserList{Users: []wire.ClaimUser{
		{Address: "hive:alice", Reward: 1000},
	}}))

	atTime(500)
	expectRevert(t, "not_started", func() {
		asUser("hive:alice")
		Claim(nil)
	})
}

func TestClaimUnknownSender(t *testing.T) {
	initContract(t, "hive:owner")
	asUser("hive:owner")
	ClaimSetSchedule(defaultSchedulePayload(t))

	expectRevert(t, "not_found", func() {
		asUser("hive:stranger")
		Claim(nil)
	})
}

func TestClaimWithoutSchedule(t *testing.T) {
	initContract(t, "hive:owner")

	expectRevert(t, "not_found", func() {
		asUser("hive:alice")
		Claim(nil)
	})
}

func TestClaimRewardOverwrite(t *testing.T) {
	initContract(t, "hive:owner")
	asUser("hive:owner")
	ClaimSetSchedule(defaultSchedulePayload(t))
	ClaimSetUsers(jsonPayload(t, wire.ClaimUserList{Users: []wire.ClaimUser{
		{Address: "hive:alice", Reward: 1000},
	}}))

	atTime(40)
	asUser("hive:alice")
	assert.Equal(t, "claimed 400", *Claim(nil))

	// The admin rewrites the record wholesale: new entitlement, clean
	// withdrawal history. The next claim follows the new record verbatim.
	asUser("hive:owner")
	ClaimSetUsers(jsonPayload(t, wire.ClaimUserList{Users: []wire.ClaimUser{
		{Address: "hive:alice", Reward: 100, Withdrawn: 0},
	}}))

	atTime(70)
	asUser("hive:alice")
	assert.Equal(t, "claimed 100", *Claim(nil))

	transfers := sdk.MockTransfers()
	require.Len(t, transfers, 2)
	assert.Equal(t, int64(400), transfers[0].Amount)
	assert.Equal(t, int64(100), transfers[1].Amount)
}

func TestClaimCoarseInterval(t *testing.T) {
	// An interval longer than the vesting duration is a legal schedule;
	// mid-window claims pay out the initial unlock only.
	initContract(t, "hive:owner")
	asUser("hive:owner")
	ClaimSetSchedule(jsonPayload(t, wire.Schedule{
		RewardAsset:      "hive",
		InitialUnlockBps: 2000,
		StartTime:        0,
		CliffSeconds:     30,
		VestingSeconds:   40,
		IntervalSeconds:  90,
	}))
	ClaimSetUsers(jsonPayload(t, wire.ClaimUserList{Users: []wire.ClaimUser{
		{Address: "hive:alice", Reward: 100},
	}}))

	atTime(50)
	assert.Equal(t, "20", *ClaimGetWithdrawable(strptr("hive:alice")))
	asUser("hive:alice")
	atTime(50)
	res := Claim(nil)
	assert.Equal(t, "claimed 20", *res)

	atTime(71)
	res = Claim(nil)
	assert.Equal(t, "claimed 80", *res)
}

func TestClaimAmountBeyondHostRange(t *testing.T) {
	initContract(t, "hive:owner")
	asUser("hive:owner")
	ClaimSetSchedule(jsonPayload(t, wire.Schedule{
		RewardAsset:      "hive",
		InitialUnlockBps: 10000,
		StartTime:        0,
	}))
	ClaimSetUsers(jsonPayload(t, wire.ClaimUserList{Users: []wire.ClaimUser{
		{Address: "hive:whale", Reward: 1 << 63},
	}}))

	expectRevert(t, "input_error", func() {
		asUser("hive:whale")
		Claim(nil)
	})
	assert.Empty(t, sdk.MockTransfers())
}

func TestClaimSetUsersReplacesTheSet(t *testing.T) {
	initContract(t, "hive:owner")
	asUser("hive:owner")
	ClaimSetSchedule(defaultSchedulePayload(t))
	ClaimSetUsers(jsonPayload(t, wire.ClaimUserList{Users: []wire.ClaimUser{
		{Address: "hive:alice", Reward: 1000},
		{Address: "hive:bob", Reward: 100},
	}}))
	ClaimSetUsers(jsonPayload(t, wire.ClaimUserList{Users: []wire.ClaimUser{
		{Address: "hive:carol", Reward: 50},
	}}))

	list := wire.ClaimUserList{}
	require.NoError(t, list.UnmarshalJSON([]byte(*ClaimGetUsers(nil))))
	require.Len(t, list.Users, 1)
	assert.Equal(t, "hive:carol", list.Users[0].Address)

	// Dropped beneficiaries are gone, not just unlisted.
	expectRevert(t, "not_found", func() {
		asUser("hive:bob")
		Claim(nil)
	})
}

func TestClaimQueries(t *testing.T) {
	initContract(t, "hive:owner")
	asUser("hive:owner")
	ClaimSetSchedule(defaultSchedulePayload(t))
	ClaimSetUsers(jsonPayload(t, wire.ClaimUserList{Users: []wire.ClaimUser{
		{Address: "hive:alice", Reward: 1000},
	}}))

	sched := wire.Schedule{}
	require.NoError(t, sched.UnmarshalJSON([]byte(*ClaimGetSchedule(nil))))
	assert.Equal(t, uint64(2000), sched.InitialUnlockBps)

	assert.Equal(t, "70", *ClaimTotalAvailableAfter(nil))

	atTime(40)
	assert.Equal(t, "400", *ClaimGetWithdrawable(strptr("hive:alice")))
	assert.Equal(t, "0", *ClaimGetWithdrawable(strptr("hive:nobody")))

	// Unknown addresses read as zero records, same as the sale side.
	user := wire.ClaimUser{}
	require.NoError(t, user.UnmarshalJSON([]byte(*ClaimGetUser(strptr("hive:nobody")))))
	assert.Zero(t, user.Reward)
	assert.Zero(t, user.Withdrawn)
}

// -----------------------------------------------------------------------------
// Sale engine
// -----------------------------------------------------------------------------

func setupSale(t *testing.T) {
	t.Helper()
	initContract(t, "hive:owner")
	asUser("hive:owner")
	SaleSetConfig(defaultSaleConfigPayload(t))
	SaleSetUsers(jsonPayload(t, wire.BuyerList{Users: []wire.Buyer{
		{Address: "hive:alice", Allocation: 5000},
		{Address: "hive:bob", Allocation: 100},
	}}))
	sdk.MockSetBalance("hive:alice", sdk.AssetHive, 1_000_000)
	sdk.MockSetBalance("hive:bob", sdk.AssetHive, 1_000_000)
}

func TestBuyLifecycle(t *testing.T) {
	setupSale(t)

	atTime(150)
	asUser("hive:alice")
	withAllowance(1000, sdk.AssetHive)
	assert.Equal(t, "bought 666", *Buy(strptr("1000")))

	draws := sdk.MockDraws()
	require.Len(t, draws, 1)
	assert.Equal(t, int64(1000), draws[0].Amount)
	assert.Equal(t, "hive", draws[0].Asset)

	buyer := wire.Buyer{}
	require.NoError(t, buyer.UnmarshalJSON([]byte(*SaleGetUser(strptr("hive:alice")))))
	assert.Equal(t, uint64(1000), buyer.Spent)
	assert.Equal(t, uint64(666), buyer.Received)

	state := wire.SaleState{}
	require.NoError(t, state.UnmarshalJSON([]byte(*SaleGetConfig(nil))))
	assert.Equal(t, uint64(1000), state.TotalRaised)

	// A second purchase accumulates on the same record.
	withAllowance(300, sdk.AssetHive)
	assert.Equal(t, "bought 200", *Buy(strptr("300")))
	require.NoError(t, state.UnmarshalJSON([]byte(*SaleGetConfig(nil))))
	assert.Equal(t, uint64(1300), state.TotalRaised)
}

func TestBuyOutsideWindow(t *testing.T) {
	setupSale(t)

	// The window check comes first, even with no payment attached at all.
	atTime(50)
	expectRevert(t, "sale_not_active", func() {
		asUser("hive:alice")
		Buy(strptr("1000"))
	})
	atTime(200)
	expectRevert(t, "sale_not_active", func() {
		Buy(strptr("1000"))
	})
}

func TestBuyMissingFunds(t *testing.T) {
	setupSale(t)
	atTime(150)
	asUser("hive:alice")

	expectRevert(t, "missing_funds", func() {
		newTx()
		sdk.MockSetIntents(nil)
		Buy(strptr("1000"))
	})
	expectRevert(t, "missing_funds", func() {
		withAllowance(1000, sdk.AssetHbd)
		Buy(strptr("1000"))
	})
	expectRevert(t, "missing_funds", func() {
		withAllowance(999, sdk.AssetHive)
		Buy(strptr("1000"))
	})
	expectRevert(t, "missing_funds", func() {
		withAllowance(1000, sdk.AssetHive)
		Buy(strptr("0"))
	})
}

func TestBuyNotParticipating(t *testing.T) {
	setupSale(t)
	sdk.MockSetBalance("hive:stranger", sdk.AssetHive, 1_000_000)

	atTime(150)
	expectRevert(t, "not_participating", func() {
		asUser("hive:stranger")
		withAllowance(1000, sdk.AssetHive)
		Buy(strptr("1000"))
	})
}

func TestBuyUserAllocationExceeded(t *testing.T) {
	setupSale(t)

	atTime(150)
	expectRevert(t, "user_allocation_exceeded", func() {
		asUser("hive:bob")
		withAllowance(1000, sdk.AssetHive)
		Buy(strptr("1000"))
	})

	// The rejection left bob's record and the raise total untouched.
	buyer := wire.Buyer{}
	require.NoError(t, buyer.UnmarshalJSON([]byte(*SaleGetUser(strptr("hive:bob")))))
	assert.Zero(t, buyer.Spent)
	state := wire.SaleState{}
	require.NoError(t, state.UnmarshalJSON([]byte(*SaleGetConfig(nil))))
	assert.Zero(t, state.TotalRaised)
	assert.Empty(t, sdk.MockDraws())
}

func TestBuySaleAllocationExceeded(t *testing.T) {
	initContract(t, "hive:owner")
	asUser("hive:owner")
	SaleSetConfig(jsonPayload(t, wire.SaleConfig{
		StartTime:  100,
		EndTime:    200,
		PayAsset:   "hive",
		SaleAsset:  "hbd",
		MaxRaise:   10,
		PriceNum:   1,
		PriceDenom: 1,
	}))
	SaleSetUsers(jsonPayload(t, wire.BuyerList{Users: []wire.Buyer{
		{Address: "hive:alice", Allocation: 100_000},
	}}))
	sdk.MockSetBalance("hive:alice", sdk.AssetHive, 1_000_000)

	atTime(150)
	expectRevert(t, "sale_allocation_exceeded", func() {
		asUser("hive:alice")
		withAllowance(1000, sdk.AssetHive)
		Buy(strptr("1000"))
	})

	// Filling the cap exactly still works.
	asUser("hive:alice")
	withAllowance(10, sdk.AssetHive)
	assert.Equal(t, "bought 10", *Buy(strptr("10")))
}

func TestSaleSetUsersResetsReceived(t *testing.T) {
	setupSale(t)

	atTime(150)
	asUser("hive:alice")
	withAllowance(1000, sdk.AssetHive)
	Buy(strptr("1000"))

	// Re-enrolling keeps whatever spent the admin states but always zeroes
	// the receipt counter.
	asUser("hive:owner")
	SaleSetUsers(jsonPayload(t, wire.BuyerList{Users: []wire.Buyer{
		{Address: "hive:alice", Allocation: 5000, Spent: 1000, Received: 999},
	}}))

	buyer := wire.Buyer{}
	require.NoError(t, buyer.UnmarshalJSON([]byte(*SaleGetUser(strptr("hive:alice")))))
	assert.Equal(t, uint64(1000), buyer.Spent)
	assert.Zero(t, buyer.Received)
}

func TestSaleQueries(t *testing.T) {
	setupSale(t)

	assert.Equal(t, "666", *SaleQuote(strptr("1000")))

	list := wire.BuyerList{}
	require.NoError(t, list.UnmarshalJSON([]byte(*SaleGetUsers(nil))))
	require.Len(t, list.Users, 2)
	assert.Equal(t, "hive:alice", list.Users[0].Address)
	assert.Equal(t, "hive:bob", list.Users[1].Address)

	// Unknown buyers read as zero records rather than an error.
	buyer := wire.Buyer{}
	require.NoError(t, buyer.UnmarshalJSON([]byte(*SaleGetUser(strptr("hive:nobody")))))
	assert.Zero(t, buyer.Allocation)
}

func TestSaleNotConfigured(t *testing.T) {
	initContract(t, "hive:owner")

	expectRevert(t, "not_found", func() {
		asUser("hive:alice")
		Buy(strptr("10"))
	})
	expectRevert(t, "not_found", func() {
		SaleGetConfig(nil)
	})
}

func TestBuyMalformedAmount(t *testing.T) {
	setupSale(t)

	atTime(150)
	expectRevert(t, "input_error", func() {
		asUser("hive:alice")
		Buy(strptr("ten"))
	})
}

func TestBuyAmountBeyondHostRange(t *testing.T) {
	// Amounts past int64 would flip negative on the hive draw call, so the
	// entrypoint rejects them before touching any state.
	initContract(t, "hive:owner")
	asUser("hive:owner")
	SaleSetConfig(jsonPayload(t, wire.SaleConfig{
		StartTime:  100,
		EndTime:    200,
		PayAsset:   "hive",
		SaleAsset:  "hbd",
		MaxRaise:   math.MaxUint64,
		PriceNum:   1,
		PriceDenom: 1,
	}))
	SaleSetUsers(jsonPayload(t, wire.BuyerList{Users: []wire.Buyer{
		{Address: "hive:whale", Allocation: math.MaxUint64},
	}}))

	atTime(150)
	asUser("hive:whale")
	withAllowance(math.MaxUint64, sdk.AssetHive)
	expectRevert(t, "input_error", func() {
		Buy(strptr("9223372036854775808"))
	})
	assert.Empty(t, sdk.MockDraws())

	buyer := wire.Buyer{}
	require.NoError(t, buyer.UnmarshalJSON([]byte(*SaleGetUser(strptr("hive:whale")))))
	assert.Zero(t, buyer.Spent)
}
