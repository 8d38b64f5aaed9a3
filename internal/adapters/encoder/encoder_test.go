package encoder

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hyperkit-labs/hyperkit/internal/domain"
)

func constructorInputs(t *testing.T, types ...string) abi.Arguments {
	t.Helper()

	args := make(abi.Arguments, len(types))
	for i, typ := range types {
		parsed, err := abi.NewType(typ, "", nil)
		require.NoError(t, err)
		args[i] = abi.Argument{Name: "arg", Type: parsed}
	}
	return args
}

func TestEncodeMatchesDirectPack(t *testing.T) {
	inputs := constructorInputs(t, "address", "uint256", "bool")
	iface := domain.NewContractInterface(inputs)

	owner := common.HexToAddress("0x5FbDB2315678afecb367f032d93F642f64180aa3")
	supply := big.NewInt(1_000_000)

	plan := &domain.ArgumentPlan{
		Values: []domain.ArgumentValue{
			{Value: owner},
			{Value: supply},
			{Value: true},
		},
	}

	got, err := New().Encode(iface, plan)
	require.NoError(t, err)

	want, err := inputs.Pack(owner, supply, true)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestEncodeZeroArity(t *testing.T) {
	iface := domain.NewContractInterface(nil)

	calldata, err := New().Encode(iface, &domain.ArgumentPlan{})
	require.NoError(t, err)
	assert.Nil(t, calldata)
}

func TestEncodeWrongRepresentation(t *testing.T) {
	iface := domain.NewContractInterface(constructorInputs(t, "uint256"))

	plan := &domain.ArgumentPlan{
		Values: []domain.ArgumentValue{{Value: "not a big.Int"}},
	}

	_, err := New().Encode(iface, plan)
	assert.Error(t, err)
}
