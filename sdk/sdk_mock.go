//go:build !wasm

package sdk

import (
	"encoding/json"
	"strconv"
)

// In-memory stand-in for the wasm host so plain `go test` can drive the
// contract end to end. State, balances and outgoing transfers live in a
// single mockHost instance that tests reset between cases.

type MockTransfer struct {
	To     string
	Amount int64
	Asset  string
}

type mockHost struct {
	kv        map[string]string
	env       Env
	balances  map[string]int64
	transfers []MockTransfer
	draws     []MockTransfer
}

var host = newMockHost()

func newMockHost() *mockHost {
	return &mockHost{
		kv:       map[string]string{},
		balances: map[string]int64{},
		env: Env{
			ContractId:  "contract:moonpad-test",
			TxId:        "tx-0",
			BlockId:     "block-0",
			BlockHeight: 1,
			Timestamp:   "2025-01-01T00:00:00",
			Sender:      Sender{Address: "hive:tester"},
			Caller:      Caller{Address: "hive:tester"},
			Payer:       "hive:tester",
		},
	}
}

// MockReset wipes storage, balances, env and transfer logs for the next test.
func MockReset() {
	host = newMockHost()
}

// MockSetSender switches the tx sender so tests can act as different users.
func MockSetSender(addr string) {
	host.env.Sender = Sender{Address: Address(addr)}
	host.env.Caller = Caller{Address: Address(addr)}
	host.env.Payer = addr
}

// MockSetTimestamp overrides block.timestamp for expiry/vesting checks.
func MockSetTimestamp(ts string) {
	host.env.Timestamp = ts
}

// MockSetIntents installs the intents (transfer.allow etc.) for the next call.
func MockSetIntents(intents []Intent) {
	host.env.Intents = intents
}

// MockBumpTx changes tx.id so per-tx caches in the contract refresh.
func MockBumpTx(id string) {
	host.env.TxId = id
}

// MockSetBalance seeds a hive balance for an account.
func MockSetBalance(addr Address, asset Asset, amount int64) {
	host.balances[addr.String()+"|"+asset.String()] = amount
}

// MockTransfers returns every HiveTransfer recorded since the last reset.
func MockTransfers() []MockTransfer {
	return host.transfers
}

// MockDraws returns every HiveDraw recorded since the last reset.
func MockDraws() []MockTransfer {
	return host.draws
}

func log(s *string) *string {
	return s
}

func stateSetObject(key *string, value *string) *string {
	host.kv[*key] = *value
	return nil
}

func stateGetObject(key *string) *string {
	val, ok := host.kv[*key]
	if !ok {
		return nil
	}
	return &val
}

func stateDeleteObject(key *string) *string {
	delete(host.kv, *key)
	return nil
}

func getEnv(arg *string) *string {
	m := map[string]interface{}{
		"contract.id":                host.env.ContractId,
		"tx.id":                      host.env.TxId,
		"tx.index":                   host.env.Index,
		"tx.op_index":                host.env.OpIndex,
		"tx.payer":                   host.env.Payer,
		"block.id":                   host.env.BlockId,
		"block.height":               host.env.BlockHeight,
		"block.timestamp":            host.env.Timestamp,
		"msg.sender":                 host.env.Sender.Address.String(),
		"msg.required_auths":         []string{host.env.Sender.Address.String()},
		"msg.required_posting_auths": []string{},
		"intents":                    host.env.Intents,
	}
	b, err := json.Marshal(m)
	if err != nil {
		panic(err)
	}
	s := string(b)
	return &s
}

func getEnvKey(arg *string) *string {
	var val string
	switch *arg {
	case "block.timestamp":
		val = host.env.Timestamp
	case "tx.id":
		val = host.env.TxId
	case "contract.id":
		val = host.env.ContractId
	case "block.height":
		val = strconv.FormatUint(host.env.BlockHeight, 10)
	default:
		return nil
	}
	return &val
}

func getBalance(arg1 *string, arg2 *string) *string {
	bal := host.balances[*arg1+"|"+*arg2]
	s := strconv.FormatInt(bal, 10)
	return &s
}

func hiveDraw(arg1 *string, arg2 *string) *string {
	amount, err := strconv.ParseInt(*arg1, 10, 64)
	if err != nil {
		panic(&HostError{Msg: "mock draw: bad amount", Symbol: "abort"})
	}
	sender := host.env.Sender.Address.String()
	key := sender + "|" + *arg2
	if host.balances[key] < amount {
		panic(&HostError{Msg: "mock draw: insufficient balance", Symbol: "abort"})
	}
	host.balances[key] -= amount
	host.balances[host.env.ContractId+"|"+*arg2] += amount
	host.draws = append(host.draws, MockTransfer{To: host.env.ContractId, Amount: amount, Asset: *arg2})
	return nil
}

func hiveTransfer(arg1 *string, arg2 *string, arg3 *string) *string {
	amount, err := strconv.ParseInt(*arg2, 10, 64)
	if err != nil {
		panic(&HostError{Msg: "mock transfer: bad amount", Symbol: "abort"})
	}
	host.balances[host.env.ContractId+"|"+*arg3] -= amount
	host.balances[*arg1+"|"+*arg3] += amount
	host.transfers = append(host.transfers, MockTransfer{To: *arg1, Amount: amount, Asset: *arg3})
	return nil
}

func hiveWithdraw(arg1 *string, arg2 *string, arg3 *string) *string {
	amount, err := strconv.ParseInt(*arg2, 10, 64)
	if err != nil {
		panic(&HostError{Msg: "mock withdraw: bad amount", Symbol: "abort"})
	}
	host.transfers = append(host.transfers, MockTransfer{To: *arg1, Amount: amount, Asset: *arg3})
	return nil
}

func contractRead(contractId *string, key *string) *string {
	return nil
}

func contractCall(contractId *string, method *string, payload *string, options *string) *string {
	return nil
}

func hostAbort(msg string) {
	// panic happens in the shared Abort wrapper
}

func hostRevert(msg string, symbol string) {
	// panic happens in the shared Revert wrapper
}
