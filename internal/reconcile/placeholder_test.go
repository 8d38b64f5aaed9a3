package reconcile

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlaceholderValuesPack(t *testing.T) {
	// Every placeholder must be encodable for its declared type; this is
	// the contract the deployment submitter relies on.
	types := []string{
		"address",
		"uint8",
		"uint64",
		"uint128",
		"uint256",
		"int8",
		"int256",
		"bool",
		"string",
		"bytes",
		"bytes4",
		"bytes32",
		"uint256[]",
		"address[]",
		"uint256[3]",
		"bytes32[2]",
		"string[]",
	}

	for _, name := range types {
		t.Run(name, func(t *testing.T) {
			typ, err := abi.NewType(name, "", nil)
			require.NoError(t, err)

			value := PlaceholderValue(typ)
			args := abi.Arguments{{Type: typ}}
			_, err = args.Pack(value)
			assert.NoError(t, err, "placeholder for %s must pack", name)
		})
	}
}

func TestPlaceholderTuplePacks(t *testing.T) {
	typ, err := abi.NewType("tuple", "", []abi.ArgumentMarshaling{
		{Name: "owner", Type: "address"},
		{Name: "threshold", Type: "uint256"},
		{Name: "tags", Type: "bytes32[]"},
	})
	require.NoError(t, err)

	value := PlaceholderValue(typ)
	args := abi.Arguments{{Type: typ}}
	_, err = args.Pack(value)
	assert.NoError(t, err)
}

func TestPlaceholderScalarValues(t *testing.T) {
	addr, _ := abi.NewType("address", "", nil)
	assert.Equal(t, common.Address{}, PlaceholderValue(addr))

	u256, _ := abi.NewType("uint256", "", nil)
	assert.Equal(t, big.NewInt(0), PlaceholderValue(u256))

	u64, _ := abi.NewType("uint64", "", nil)
	assert.Equal(t, uint64(0), PlaceholderValue(u64))

	str, _ := abi.NewType("string", "", nil)
	assert.Equal(t, "", PlaceholderValue(str))

	boolean, _ := abi.NewType("bool", "", nil)
	assert.Equal(t, false, PlaceholderValue(boolean))

	byteSlice, _ := abi.NewType("bytes", "", nil)
	assert.Equal(t, []byte{}, PlaceholderValue(byteSlice))

	b32, _ := abi.NewType("bytes32", "", nil)
	assert.Equal(t, [32]byte{}, PlaceholderValue(b32))
}

func TestFormatValue(t *testing.T) {
	assert.Equal(t, "0x0000000000000000000000000000000000000000", FormatValue(common.Address{}))
	assert.Equal(t, "42", FormatValue(big.NewInt(42)))
	assert.Equal(t, `"hello"`, FormatValue("hello"))
	assert.Equal(t, "false", FormatValue(false))
	assert.Equal(t, "0x0102", FormatValue([]byte{1, 2}))
	assert.Equal(t, "0x0000", FormatValue([2]byte{}))
	assert.Equal(t, "0", FormatValue(uint64(0)))
}
