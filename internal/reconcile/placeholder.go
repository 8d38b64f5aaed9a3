package reconcile

import (
	"encoding/hex"
	"fmt"
	"math/big"
	"reflect"
	"strconv"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
)

// PlaceholderValue returns the deterministic zero value used when no
// explicit argument is available for a parameter of the given ABI type:
// zero address for address, 0 for numeric types, empty string for
// string, empty slices for dynamic types. Arrays are filled with element
// placeholders and tuples recurse per field. The returned Go value is
// always acceptable to abi.Arguments.Pack for the declared type.
func PlaceholderValue(t abi.Type) any {
	switch t.T {
	case abi.UintTy, abi.IntTy:
		// Non-native widths (uint256, int128, uint24, ...) are
		// represented as *big.Int by the ABI package.
		if t.GetType().Kind() == reflect.Ptr {
			return new(big.Int)
		}
		return reflect.Zero(t.GetType()).Interface()
	case abi.BoolTy:
		return false
	case abi.StringTy:
		return ""
	case abi.AddressTy:
		return common.Address{}
	case abi.BytesTy:
		return []byte{}
	case abi.SliceTy:
		return reflect.MakeSlice(t.GetType(), 0, 0).Interface()
	case abi.ArrayTy:
		arr := reflect.New(t.GetType()).Elem()
		elem := reflect.ValueOf(PlaceholderValue(*t.Elem))
		for i := 0; i < t.Size; i++ {
			arr.Index(i).Set(elem)
		}
		return arr.Interface()
	case abi.TupleTy:
		v := reflect.New(t.TupleType).Elem()
		for i, elem := range t.TupleElems {
			v.Field(i).Set(reflect.ValueOf(PlaceholderValue(*elem)))
		}
		return v.Interface()
	default:
		// FixedBytesTy, FunctionTy and anything else with a concrete
		// value representation.
		return reflect.Zero(t.GetType()).Interface()
	}
}

// FormatValue renders a plan value the way it appears in diagnostics and
// plan tables.
func FormatValue(v any) string {
	switch val := v.(type) {
	case common.Address:
		return val.Hex()
	case *big.Int:
		return val.String()
	case []byte:
		return "0x" + hex.EncodeToString(val)
	case string:
		return strconv.Quote(val)
	case bool:
		return strconv.FormatBool(val)
	default:
		rv := reflect.ValueOf(v)
		if rv.Kind() == reflect.Array && rv.Type().Elem().Kind() == reflect.Uint8 {
			b := make([]byte, rv.Len())
			reflect.Copy(reflect.ValueOf(b), rv)
			return "0x" + hex.EncodeToString(b)
		}
		return fmt.Sprintf("%v", v)
	}
}
