package reconcile

import (
	"fmt"
	"math/big"
	"reflect"
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// CoerceLiteral converts a textual literal into a Go value matching the
// given ABI type. Only scalar types can be expressed as single literals;
// arrays and tuples return an error and callers fall back to
// placeholders or an args file.
func CoerceLiteral(t abi.Type, literal string) (any, error) {
	lit := strings.TrimSpace(literal)

	switch t.T {
	case abi.AddressTy:
		if !common.IsHexAddress(lit) {
			return nil, fmt.Errorf("%q is not a hex address", lit)
		}
		return common.HexToAddress(lit), nil

	case abi.UintTy, abi.IntTy:
		n, ok := new(big.Int).SetString(lit, 0)
		if !ok {
			return nil, fmt.Errorf("%q is not an integer", lit)
		}
		if t.T == abi.UintTy && n.Sign() < 0 {
			return nil, fmt.Errorf("negative value %s for %s", lit, t.String())
		}
		if !fitsWidth(t, n) {
			return nil, fmt.Errorf("%s overflows %s", lit, t.String())
		}
		if t.GetType().Kind() == reflect.Ptr {
			return n, nil
		}
		return sizedInt(t, n), nil

	case abi.BoolTy:
		b, err := strconv.ParseBool(lit)
		if err != nil {
			return nil, fmt.Errorf("%q is not a boolean", lit)
		}
		return b, nil

	case abi.StringTy:
		if len(lit) >= 2 && (lit[0] == '"' || lit[0] == '\'') && lit[len(lit)-1] == lit[0] {
			if unquoted, err := strconv.Unquote(`"` + lit[1:len(lit)-1] + `"`); err == nil {
				return unquoted, nil
			}
			return lit[1 : len(lit)-1], nil
		}
		return lit, nil

	case abi.BytesTy:
		b, err := hexutil.Decode(lit)
		if err != nil {
			return nil, fmt.Errorf("%q is not 0x-prefixed hex: %v", lit, err)
		}
		return b, nil

	case abi.FixedBytesTy:
		b, err := hexutil.Decode(lit)
		if err != nil {
			return nil, fmt.Errorf("%q is not 0x-prefixed hex: %v", lit, err)
		}
		if len(b) != t.Size {
			return nil, fmt.Errorf("expected %d bytes for %s, got %d", t.Size, t.String(), len(b))
		}
		arr := reflect.New(t.GetType()).Elem()
		reflect.Copy(arr, reflect.ValueOf(b))
		return arr.Interface(), nil

	default:
		return nil, fmt.Errorf("%s parameters cannot be expressed as a single literal", t.String())
	}
}

// fitsWidth reports whether n is representable in the declared integer
// width. Signed types lose one bit to the sign, and the minimum value
// -2^(size-1) is the one negative number whose magnitude uses the full
// width.
func fitsWidth(t abi.Type, n *big.Int) bool {
	if t.T == abi.UintTy {
		return n.BitLen() <= t.Size
	}
	if n.Sign() >= 0 {
		return n.BitLen() <= t.Size-1
	}
	min := new(big.Int).Lsh(big.NewInt(1), uint(t.Size-1))
	min.Neg(min)
	return n.Cmp(min) >= 0
}

// sizedInt converts a verified-in-range big.Int to the native Go integer
// type the ABI package expects for 8/16/32/64-bit widths.
func sizedInt(t abi.Type, n *big.Int) any {
	v := reflect.New(t.GetType()).Elem()
	if t.T == abi.UintTy {
		v.SetUint(n.Uint64())
	} else {
		v.SetInt(n.Int64())
	}
	return v.Interface()
}
