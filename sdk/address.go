package sdk

import "strings"

type Intent struct {
	Type string            `json:"type"`
	Args map[string]string `json:"args"`
}

type Sender struct {
	Address              Address   `json:"id"`
	RequiredAuths        []Address `json:"required_auths"`
	RequiredPostingAuths []Address `json:"required_posting_auths"`
}

type Caller struct {
	Address Address `json:"id"`
}

type ContractCallOptions struct {
	Intents []Intent `json:"intents,omitempty"`
}

// Env is the per-transaction execution snapshot handed over by the host.
type Env struct {
	ContractId  string   `json:"contract.id"`
	TxId        string   `json:"tx.id"`
	Index       int64    `json:"tx.index"`
	OpIndex     int64    `json:"tx.op_index"`
	BlockId     string   `json:"block.id"`
	BlockHeight uint64   `json:"block.height"`
	Timestamp   string   `json:"block.timestamp"`
	Sender      Sender   `json:"-"`
	Caller      Caller   `json:"-"`
	Payer       string   `json:"tx.payer"`
	Intents     []Intent `json:"intents"`
}

type AddressDomain string

const (
	AddressDomainUser     AddressDomain = "user"
	AddressDomainContract AddressDomain = "contract"
	AddressDomainSystem   AddressDomain = "system"
)

type AddressType string

const (
	AddressTypeEVM     AddressType = "evm"
	AddressTypeKey     AddressType = "key"
	AddressTypeHive    AddressType = "hive"
	AddressTypeSystem  AddressType = "system"
	AddressTypeUnknown AddressType = "unknown"
)

type Address string

// String returns the literal representation (like hive:alice) of the address.
// Example payload: sdk.Address("hive:foo").String()
func (a Address) String() string {
	return string(a)
}

// Domain quickly checks the prefix to guess if we deal with user/contract/system domain.
// Example payload: sdk.Address("contract:moonpad").Domain()
func (a Address) Domain() AddressDomain {
	if strings.HasPrefix(a.String(), "system:") {
		return AddressDomainSystem
	}
	if strings.HasPrefix(a.String(), "contract:") {
		return AddressDomainContract
	}
	return AddressDomainUser
}

// Type inspects the DID prefix to categorize the address (evm, key, hive,...).
// Example payload: sdk.Address("did:pkh:eip155").Type()
func (a Address) Type() AddressType {
	if strings.HasPrefix(a.String(), "did:pkh:eip155") {
		return AddressTypeEVM
	} else if strings.HasPrefix(a.String(), "did:key:") {
		return AddressTypeKey
	} else if strings.HasPrefix(a.String(), "hive:") {
		return AddressTypeHive
	} else if strings.HasPrefix(a.String(), "system:") {
		return AddressTypeSystem
	} else {
		return AddressTypeUnknown
	}
}

// IsValid returns false if the address type detection failed, used as a light sanity check.
// Example payload: sdk.Address("foo").IsValid()
func (a Address) IsValid() bool {
	return a.Type() != AddressTypeUnknown
}
