// Package wire defines the JSON payload and response shapes of the contract
// entrypoints. Marshaling goes through tinyjson (see types_tinyjson.go);
// reflection-based encoding/json is too heavy for the wasm target.
package wire

//tinyjson:json
type Schedule struct {
	RewardAsset      string `json:"reward_asset"`
	InitialUnlockBps uint64 `json:"initial_unlock_bps"`
	StartTime        int64  `json:"start_time"`
	CliffSeconds     int64  `json:"cliff_seconds"`
	VestingSeconds   int64  `json:"vesting_seconds"`
	IntervalSeconds  int64  `json:"interval_seconds"`
}

//tinyjson:json
type ClaimUser struct {
	Address   string `json:"address"`
	Reward    uint64 `json:"reward"`
	Withdrawn uint64 `json:"withdrawn"`
}

//tinyjson:json
type ClaimUserList struct {
	Users []ClaimUser `json:"users"`
}

//tinyjson:json
type SaleConfig struct {
	StartTime  int64  `json:"start_time"`
	EndTime    int64  `json:"end_time"`
	PayAsset   string `json:"pay_asset"`
	SaleAsset  string `json:"sale_asset"`
	MaxRaise   uint64 `json:"max_raise"`
	PriceNum   uint64 `json:"price_num"`
	PriceDenom uint64 `json:"price_denom"`
}

//tinyjson:json
type SaleState struct {
	Config      SaleConfig `json:"config"`
	TotalRaised uint64     `json:"total_raised"`
}

//tinyjson:json
type Buyer struct {
	Address    string `json:"address"`
	Allocation uint64 `json:"allocation"`
	Spent      uint64 `json:"spent"`
	Received   uint64 `json:"received"`
}

//tinyjson:json
type BuyerList struct {
	Users []Buyer `json:"users"`
}

//tinyjson:json
type WithdrawArgs struct {
	To     string `json:"to"`
	Asset  string `json:"asset"`
	Amount uint64 `json:"amount"`
}

//tinyjson:json
type ContractInfo struct {
	Owner  string `json:"owner"`
	Paused bool   `json:"paused"`
}
