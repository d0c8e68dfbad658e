// Package chain holds read-only snapshots of on-chain records as the
// explorer's fetch layer materializes them: addresses, verified smart
// contract metadata, candidate display names and token rate snapshots.
// Nothing in this package mutates or persists a record.
package chain

import (
	"encoding/json"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/shopspring/decimal"
)

// AddressHashLength is the canonical identifier size for this chain.
const AddressHashLength = 20

// Hash is a fixed-length byte identifier. ByteCount records the expected
// length so rendering can zero-pad short inputs instead of failing.
type Hash struct {
	ByteCount int
	Bytes     []byte
}

// NewHash builds a Hash whose expected length matches the given bytes.
func NewHash(b []byte) Hash {
	return Hash{ByteCount: len(b), Bytes: b}
}

// Hex renders the hash as "0x" followed by lowercase hex digits,
// left-padded with zeros to ByteCount*2 characters. Inputs longer than
// ByteCount are rendered in full rather than truncated; this is the
// best-effort choice for malformed callers.
func (h Hash) Hex() string {
	digits := hexutil.Encode(h.Bytes)[2:]
	if pad := h.ByteCount*2 - len(digits); pad > 0 {
		digits = strings.Repeat("0", pad) + digits
	}
	return "0x" + digits
}

// MarshalJSON renders the hash in its canonical hex form.
func (h Hash) MarshalJSON() ([]byte, error) {
	return json.Marshal(h.Hex())
}

// UnmarshalJSON decodes a "0x"-prefixed hex string.
func (h *Hash) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("decode hash: %w", err)
	}
	b, err := hexutil.Decode(s)
	if err != nil {
		return fmt.Errorf("decode hash %q: %w", s, err)
	}
	*h = NewHash(b)
	return nil
}

// AddressName is one candidate display name attached to an address.
// At most one name per address is expected to be primary, but the data
// layer does not enforce that.
type AddressName struct {
	Name    string `json:"name"`
	Primary bool   `json:"primary"`
}

// SmartContract is the verified-contract metadata attached to an address.
// Its presence on an Address means verification succeeded upstream.
type SmartContract struct {
	Name            string     `json:"name"`
	CompilerVersion string     `json:"compiler_version"`
	Optimization    bool       `json:"optimization"`
	SourceCode      string     `json:"source_code"`
	ABI             []ABIEntry `json:"abi"`
}

type smartContractJSON struct {
	Name            string          `json:"name"`
	CompilerVersion string          `json:"compiler_version"`
	Optimization    bool            `json:"optimization"`
	SourceCode      string          `json:"source_code"`
	ABI             json.RawMessage `json:"abi"`
}

// UnmarshalJSON decodes verified-contract metadata, routing the raw ABI
// document through ParseABI so descriptors are validated once here at the
// boundary.
func (c *SmartContract) UnmarshalJSON(data []byte) error {
	var raw smartContractJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("decode smart contract: %w", err)
	}

	out := SmartContract{
		Name:            raw.Name,
		CompilerVersion: raw.CompilerVersion,
		Optimization:    raw.Optimization,
		SourceCode:      raw.SourceCode,
	}
	if len(raw.ABI) > 0 {
		entries, err := ParseABI(raw.ABI)
		if err != nil {
			return err
		}
		out.ABI = entries
	}
	*c = out
	return nil
}

// Token is an exchange-rate snapshot for the chain's native coin.
// A nil USDValue means no rate was available when the snapshot was taken.
type Token struct {
	Name     string
	Symbol   string
	Decimals int
	USDValue *decimal.Decimal
}

// Address is a fully fetched address record. Optional fields are nil when
// the fetch layer did not load them or the chain has no value for them.
type Address struct {
	Hash                      Hash
	FetchedBalance            *big.Int
	FetchedBalanceBlockNumber *uint64
	ContractCode              []byte
	SmartContract             *SmartContract
	Names                     []AddressName
}

// addressJSON is the explorer's snapshot wire form: balances travel as
// decimal strings, code as hex.
type addressJSON struct {
	Hash                      Hash           `json:"hash"`
	FetchedBalance            *string        `json:"fetched_balance"`
	FetchedBalanceBlockNumber *uint64        `json:"fetched_balance_block_number"`
	ContractCode              *string        `json:"contract_code"`
	SmartContract             *SmartContract `json:"smart_contract"`
	Names                     []AddressName  `json:"names"`
}

// UnmarshalJSON decodes an address snapshot from its wire form.
func (a *Address) UnmarshalJSON(data []byte) error {
	var raw addressJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("decode address: %w", err)
	}

	out := Address{
		Hash:                      raw.Hash,
		FetchedBalanceBlockNumber: raw.FetchedBalanceBlockNumber,
		SmartContract:             raw.SmartContract,
		Names:                     raw.Names,
	}
	if raw.FetchedBalance != nil {
		bal, ok := new(big.Int).SetString(*raw.FetchedBalance, 10)
		if !ok {
			return fmt.Errorf("decode address: invalid balance %q", *raw.FetchedBalance)
		}
		if bal.Sign() < 0 {
			return fmt.Errorf("decode address: negative balance %q", *raw.FetchedBalance)
		}
		out.FetchedBalance = bal
	}
	if raw.ContractCode != nil {
		code, err := hexutil.Decode(*raw.ContractCode)
		if err != nil {
			return fmt.Errorf("decode contract code: %w", err)
		}
		out.ContractCode = code
	}
	*a = out
	return nil
}

// MarshalJSON renders the address back into its wire form.
func (a Address) MarshalJSON() ([]byte, error) {
	raw := addressJSON{
		Hash:                      a.Hash,
		FetchedBalanceBlockNumber: a.FetchedBalanceBlockNumber,
		SmartContract:             a.SmartContract,
		Names:                     a.Names,
	}
	if a.FetchedBalance != nil {
		s := a.FetchedBalance.String()
		raw.FetchedBalance = &s
	}
	if a.ContractCode != nil {
		s := hexutil.Encode(a.ContractCode)
		raw.ContractCode = &s
	}
	return json.Marshal(raw)
}
