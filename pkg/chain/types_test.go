package chain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashHex(t *testing.T) {
	tests := []struct {
		name string
		hash Hash
		want string
	}{
		{
			name: "canonical 20 byte address",
			hash: NewHash([]byte{
				0x8b, 0xf3, 0x8d, 0x47, 0x64, 0x92, 0x90, 0x64, 0xf2, 0xd4,
				0xd3, 0xa5, 0x65, 0x20, 0xa7, 0x6a, 0xb3, 0xdf, 0x41, 0x5b,
			}),
			want: "0x8bf38d4764929064f2d4d3a56520a76ab3df415b",
		},
		{
			name: "leading zero byte is kept",
			hash: NewHash([]byte{0x00, 0x0f}),
			want: "0x000f",
		},
		{
			name: "short bytes are left padded to byte count",
			hash: Hash{ByteCount: 4, Bytes: []byte{0xab}},
			want: "0x000000ab",
		},
		{
			name: "empty hash",
			hash: NewHash(nil),
			want: "0x",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.hash.Hex()
			require.Equal(t, tt.want, got)
			require.Len(t, got, 2+2*tt.hash.ByteCount)
		})
	}
}

func TestHashJSONRoundTrip(t *testing.T) {
	in := NewHash([]byte{0xde, 0xad, 0xbe, 0xef})

	data, err := json.Marshal(in)
	require.NoError(t, err)
	require.JSONEq(t, `"0xdeadbeef"`, string(data))

	var out Hash
	require.NoError(t, json.Unmarshal(data, &out))
	require.Equal(t, in, out)
}

func TestAddressUnmarshalJSON(t *testing.T) {
	raw := `{
		"hash": "0x8bf38d4764929064f2d4d3a56520a76ab3df415b",
		"fetched_balance": "10000000000000",
		"fetched_balance_block_number": 1000000,
		"contract_code": "0x6080604052",
		"smart_contract": {
			"name": "Foundation",
			"compiler_version": "v0.4.24",
			"optimization": true,
			"abi": [
				{"type": "function", "name": "get", "stateMutability": "view"}
			]
		},
		"names": [
			{"name": "validator", "primary": false},
			{"name": "POA Foundation Wallet", "primary": true}
		]
	}`

	var addr Address
	require.NoError(t, json.Unmarshal([]byte(raw), &addr))

	require.Equal(t, "0x8bf38d4764929064f2d4d3a56520a76ab3df415b", addr.Hash.Hex())
	require.NotNil(t, addr.FetchedBalance)
	require.Equal(t, "10000000000000", addr.FetchedBalance.String())
	require.NotNil(t, addr.FetchedBalanceBlockNumber)
	require.Equal(t, uint64(1000000), *addr.FetchedBalanceBlockNumber)
	require.Equal(t, []byte{0x60, 0x80, 0x60, 0x40, 0x52}, addr.ContractCode)
	require.NotNil(t, addr.SmartContract)
	require.Equal(t, "Foundation", addr.SmartContract.Name)
	require.Len(t, addr.SmartContract.ABI, 1)
	require.Len(t, addr.Names, 2)
}

func TestAddressUnmarshalJSON_OptionalFieldsAbsent(t *testing.T) {
	raw := `{"hash": "0x8bf38d4764929064f2d4d3a56520a76ab3df415b"}`

	var addr Address
	require.NoError(t, json.Unmarshal([]byte(raw), &addr))

	require.Nil(t, addr.FetchedBalance)
	require.Nil(t, addr.FetchedBalanceBlockNumber)
	require.Nil(t, addr.ContractCode)
	require.Nil(t, addr.SmartContract)
	require.Empty(t, addr.Names)
}

func TestAddressUnmarshalJSON_BadBalance(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{
			name: "non numeric balance",
			raw:  `{"hash": "0x00", "fetched_balance": "lots"}`,
		},
		{
			name: "negative balance",
			raw:  `{"hash": "0x00", "fetched_balance": "-1"}`,
		},
		{
			name: "bad contract code hex",
			raw:  `{"hash": "0x00", "contract_code": "6080"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var addr Address
			require.Error(t, json.Unmarshal([]byte(tt.raw), &addr))
		})
	}
}

func TestSmartContractUnmarshalJSON_ValidatesABI(t *testing.T) {
	raw := `{
		"name": "Broken",
		"abi": [{"type": "function", "name": "get", "stateMutability": "readonly"}]
	}`

	var sc SmartContract
	err := json.Unmarshal([]byte(raw), &sc)
	require.Error(t, err)
	require.Contains(t, err.Error(), "unknown stateMutability")
}

func TestAddressJSONRoundTrip(t *testing.T) {
	blockNumber := uint64(42)
	in := Address{
		Hash:                      NewHash([]byte{0x01, 0x02}),
		FetchedBalanceBlockNumber: &blockNumber,
		ContractCode:              []byte{0x60},
		Names:                     []AddressName{{Name: "faucet", Primary: true}},
	}

	data, err := json.Marshal(in)
	require.NoError(t, err)

	var out Address
	require.NoError(t, json.Unmarshal(data, &out))
	require.Equal(t, in, out)
}
