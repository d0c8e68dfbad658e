// Package addressview derives the human-facing values the explorer shows
// for an address: canonical hex form, USD valuation, contract and
// verification status, scannable encoding and preferred display name.
// Every function is a pure derivation over an already-fetched snapshot
// and is safe to call concurrently.
package addressview

import (
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/jsvisa/blockscout/pkg/chain"
)

// coinScale converts the native coin's smallest integer unit into its
// display unit (18 decimals).
const coinScale = 18

// Hash returns the address identifier in its canonical hex form:
// "0x" plus lowercase hex digits, zero-padded to the identifier's
// declared byte count.
func Hash(a *chain.Address) string {
	return a.Hash.Hex()
}

// FormattedUSD converts the fetched balance into a display string such as
// "$0.000005 USD". The result is absent when either the balance or the
// USD rate is missing. Values are rounded half away from zero to six
// fractional digits.
func FormattedUSD(a *chain.Address, t *chain.Token) (string, bool) {
	if a == nil || a.FetchedBalance == nil {
		return "", false
	}
	if t == nil || t.USDValue == nil {
		return "", false
	}
	coins := decimal.NewFromBigInt(a.FetchedBalance, -coinScale)
	usd := coins.Mul(*t.USDValue)
	return "$" + usd.StringFixed(6) + " USD", true
}

// IsContract reports whether the address carries deployed code.
func IsContract(a *chain.Address) bool {
	return a != nil && len(a.ContractCode) > 0
}

// IsVerified reports whether verified smart contract metadata is attached
// to the address.
func IsVerified(a *chain.Address) bool {
	return a != nil && a.SmartContract != nil
}

// HasVerifiedReadOnlyFunctions reports whether the address is a verified
// contract whose ABI declares at least one read-only function. Stops at
// the first match.
func HasVerifiedReadOnlyFunctions(a *chain.Address) bool {
	if !IsVerified(a) {
		return false
	}
	for _, e := range a.SmartContract.ABI {
		if e.IsFunction() && e.ReadOnly() {
			return true
		}
	}
	return false
}

// BalanceBlockNumber returns the block number the balance was fetched at
// as a plain decimal string, or "" when it was never recorded.
func BalanceBlockNumber(a *chain.Address) string {
	if a == nil || a.FetchedBalanceBlockNumber == nil {
		return ""
	}
	return strconv.FormatUint(*a.FetchedBalanceBlockNumber, 10)
}

// PrimaryName returns the display name flagged primary, scanning names in
// stored order so the first flagged entry wins if several claim primary.
// Absent when no name is flagged; unflagged names are never used as a
// fallback.
func PrimaryName(a *chain.Address) (string, bool) {
	if a == nil {
		return "", false
	}
	for _, n := range a.Names {
		if n.Primary {
			return n.Name, true
		}
	}
	return "", false
}
