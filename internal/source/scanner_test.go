package source

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hyperkit-labs/hyperkit/internal/domain"
)

func TestScanBasicConstructor(t *testing.T) {
	src := `
// SPDX-License-Identifier: MIT
pragma solidity ^0.8.0;

contract Token {
    constructor(address owner, uint256 supply, string memory name) {
        _owner = owner;
    }
}`

	sig, err := Scan(src)
	require.NoError(t, err)
	require.Equal(t, 3, sig.Arity())

	assert.Equal(t, Param{RawType: "address", Name: "owner"}, sig.Params[0])
	assert.Equal(t, Param{RawType: "uint256", Name: "supply"}, sig.Params[1])
	assert.Equal(t, Param{RawType: "string", Name: "name"}, sig.Params[2])
}

func TestScanEmptyParameterList(t *testing.T) {
	sig, err := Scan(`contract C { constructor() payable {} }`)
	require.NoError(t, err)
	assert.Equal(t, 0, sig.Arity())
}

func TestScanNoConstructor(t *testing.T) {
	_, err := Scan(`contract C { function f() public {} }`)
	assert.ErrorIs(t, err, domain.ErrNoConstructor)

	_, err = Scan("")
	assert.ErrorIs(t, err, domain.ErrNoConstructor)
}

func TestScanIgnoresComments(t *testing.T) {
	src := `
contract C {
    // constructor(uint256 old) {}
    /* constructor(address a, address b) {} */
    constructor(bool flag) {}
}`

	sig, err := Scan(src)
	require.NoError(t, err)
	require.Equal(t, 1, sig.Arity())
	assert.Equal(t, "bool", sig.Params[0].RawType)
}

func TestScanStopsAtParameterListClose(t *testing.T) {
	// Base constructor calls after the parameter list must not leak
	// into the scanned signature.
	src := `constructor(uint256 cap) ERC20Capped(cap) Ownable(msg.sender) {}`

	sig, err := Scan(src)
	require.NoError(t, err)
	require.Equal(t, 1, sig.Arity())
	assert.Equal(t, Param{RawType: "uint256", Name: "cap"}, sig.Params[0])
}

func TestScanUnnamedParameter(t *testing.T) {
	sig, err := Scan(`constructor(uint256) {}`)
	require.NoError(t, err)
	require.Equal(t, 1, sig.Arity())
	assert.Equal(t, Param{RawType: "uint256"}, sig.Params[0])
}

func TestScanDroppedLocationKeywords(t *testing.T) {
	sig, err := Scan(`constructor(bytes calldata data, string memory label) {}`)
	require.NoError(t, err)
	require.Equal(t, 2, sig.Arity())
	assert.Equal(t, Param{RawType: "bytes", Name: "data"}, sig.Params[0])
	assert.Equal(t, Param{RawType: "string", Name: "label"}, sig.Params[1])
}

func TestScanDefaultLiterals(t *testing.T) {
	sig, err := Scan(`constructor(address owner = 0x5FbDB2315678afecb367f032d93F642f64180aa3, uint256 supply = 1000000) {}`)
	require.NoError(t, err)
	require.Equal(t, 2, sig.Arity())

	assert.Equal(t, "0x5FbDB2315678afecb367f032d93F642f64180aa3", sig.Params[0].Default)
	assert.Equal(t, "1000000", sig.Params[1].Default)
}

func TestScanNestedBracketsInParameters(t *testing.T) {
	sig, err := Scan(`constructor(uint256[2] memory pair, mapping(address => uint256) storage balances) {}`)
	require.NoError(t, err)
	require.Equal(t, 2, sig.Arity())
	assert.Equal(t, "uint256[2]", sig.Params[0].RawType)
	assert.Equal(t, "pair", sig.Params[0].Name)
}

func TestScanUnbalancedParensIsParseError(t *testing.T) {
	_, err := Scan(`constructor(uint256 a {`)
	require.Error(t, err)

	var parseErr *domain.SourceParseError
	assert.ErrorAs(t, err, &parseErr)
}

func TestScanFirstConstructorWins(t *testing.T) {
	src := `
contract A { constructor(uint256 a) {} }
contract B { constructor(bool x, bool y) {} }`

	sig, err := Scan(src)
	require.NoError(t, err)
	assert.Equal(t, 1, sig.Arity())
}
