package reconcile

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func coerce(t *testing.T, typeName, literal string) (any, error) {
	t.Helper()
	typ, err := abi.NewType(typeName, "", nil)
	require.NoError(t, err)
	return CoerceLiteral(typ, literal)
}

func TestCoerceAddress(t *testing.T) {
	v, err := coerce(t, "address", "0x5FbDB2315678afecb367f032d93F642f64180aa3")
	require.NoError(t, err)
	assert.Equal(t, common.HexToAddress("0x5FbDB2315678afecb367f032d93F642f64180aa3"), v)

	_, err = coerce(t, "address", "not-an-address")
	assert.Error(t, err)
}

func TestCoerceIntegers(t *testing.T) {
	v, err := coerce(t, "uint256", "1000000")
	require.NoError(t, err)
	assert.Equal(t, big.NewInt(1000000), v)

	// Base-prefix literals are accepted.
	v, err = coerce(t, "uint256", "0xff")
	require.NoError(t, err)
	assert.Equal(t, big.NewInt(255), v)

	// Native widths come back as native Go integers.
	v, err = coerce(t, "uint64", "42")
	require.NoError(t, err)
	assert.Equal(t, uint64(42), v)

	v, err = coerce(t, "int8", "-5")
	require.NoError(t, err)
	assert.Equal(t, int8(-5), v)

	v, err = coerce(t, "int8", "-128")
	require.NoError(t, err)
	assert.Equal(t, int8(-128), v)

	_, err = coerce(t, "uint8", "256")
	assert.Error(t, err, "overflow must be rejected")

	_, err = coerce(t, "int8", "200")
	assert.Error(t, err, "signed overflow must be rejected")

	_, err = coerce(t, "int8", "-129")
	assert.Error(t, err, "signed underflow must be rejected")

	_, err = coerce(t, "uint256", "-1")
	assert.Error(t, err, "negative unsigned must be rejected")

	_, err = coerce(t, "uint256", "twelve")
	assert.Error(t, err)
}

func TestCoerceBool(t *testing.T) {
	v, err := coerce(t, "bool", "true")
	require.NoError(t, err)
	assert.Equal(t, true, v)

	_, err = coerce(t, "bool", "yes")
	assert.Error(t, err)
}

func TestCoerceString(t *testing.T) {
	v, err := coerce(t, "string", `"MyToken"`)
	require.NoError(t, err)
	assert.Equal(t, "MyToken", v)

	v, err = coerce(t, "string", "MyToken")
	require.NoError(t, err)
	assert.Equal(t, "MyToken", v)

	v, err = coerce(t, "string", "'single'")
	require.NoError(t, err)
	assert.Equal(t, "single", v)
}

func TestCoerceBytes(t *testing.T) {
	v, err := coerce(t, "bytes", "0x0102")
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2}, v)

	_, err = coerce(t, "bytes", "0102")
	assert.Error(t, err, "hex without 0x prefix must be rejected")

	v, err = coerce(t, "bytes4", "0xdeadbeef")
	require.NoError(t, err)
	assert.Equal(t, [4]byte{0xde, 0xad, 0xbe, 0xef}, v)

	_, err = coerce(t, "bytes32", "0xdeadbeef")
	assert.Error(t, err, "wrong fixed-bytes length must be rejected")
}

func TestCoerceCompositeRejected(t *testing.T) {
	_, err := coerce(t, "uint256[]", "[1,2,3]")
	assert.Error(t, err)
}
