package chain

import (
	"encoding/json"
	"fmt"

	"github.com/jsvisa/blockscout/internal/metrics"
)

// StateMutability is the declared mutability of an ABI function.
type StateMutability string

const (
	MutabilityPure       StateMutability = "pure"
	MutabilityView       StateMutability = "view"
	MutabilityNonPayable StateMutability = "nonpayable"
	MutabilityPayable    StateMutability = "payable"
)

// valid reports whether the value is one of the enumerated mutabilities.
// The empty string is allowed for pre-Solidity-0.4.16 ABIs that only
// carry the legacy constant/payable booleans.
func (m StateMutability) valid() bool {
	switch m {
	case "", MutabilityPure, MutabilityView, MutabilityNonPayable, MutabilityPayable:
		return true
	}
	return false
}

// ABI entry types.
const (
	EntryFunction    = "function"
	EntryConstructor = "constructor"
	EntryEvent       = "event"
	EntryFallback    = "fallback"
	EntryReceive     = "receive"
)

// ABIParameter is a typed input or output of an ABI entry.
type ABIParameter struct {
	Name         string `json:"name"`
	Type         string `json:"type"`
	InternalType string `json:"internalType,omitempty"`
}

// ABIEntry is one descriptor from a verified contract's ABI. Constant and
// Payable are pointers because legacy ABIs may omit them entirely.
type ABIEntry struct {
	Type            string          `json:"type"`
	Name            string          `json:"name,omitempty"`
	Inputs          []ABIParameter  `json:"inputs,omitempty"`
	Outputs         []ABIParameter  `json:"outputs,omitempty"`
	StateMutability StateMutability `json:"stateMutability,omitempty"`
	Constant        *bool           `json:"constant,omitempty"`
	Payable         *bool           `json:"payable,omitempty"`
	Anonymous       bool            `json:"anonymous,omitempty"`
}

// IsFunction reports whether the entry describes a callable function.
func (e ABIEntry) IsFunction() bool {
	return e.Type == EntryFunction
}

// ReadOnly reports whether calling the entry cannot alter chain state:
// either the legacy constant flag is set or the declared mutability is
// view or pure.
func (e ABIEntry) ReadOnly() bool {
	if e.Constant != nil && *e.Constant {
		return true
	}
	return e.StateMutability == MutabilityView || e.StateMutability == MutabilityPure
}

// ParseABI decodes a raw ABI JSON document into typed entries, validating
// every declared stateMutability against the enumeration. Entry order is
// preserved. The fetch layer calls this once when attaching verified
// contract metadata to an address.
func ParseABI(raw []byte) ([]ABIEntry, error) {
	var entries []ABIEntry
	if err := json.Unmarshal(raw, &entries); err != nil {
		metrics.ABIParsesTotal.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("parse abi: %w", err)
	}
	for i, e := range entries {
		if e.Type == "" {
			metrics.ABIParsesTotal.WithLabelValues("error").Inc()
			return nil, fmt.Errorf("parse abi: entry %d has no type", i)
		}
		if !e.StateMutability.valid() {
			metrics.ABIParsesTotal.WithLabelValues("error").Inc()
			return nil, fmt.Errorf("parse abi: entry %d (%s) has unknown stateMutability %q",
				i, e.Name, e.StateMutability)
		}
	}
	metrics.ABIParsesTotal.WithLabelValues("ok").Inc()
	return entries, nil
}
