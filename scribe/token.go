package scribe

import (
	"encoding/json"
	"math"
	"math/big"
	"strconv"

	"github.com/tada/catch"
)

// Null is the JSON null literal token.
const Null = "null"

// BoolToken returns the JSON literal for b.
func BoolToken(b bool) string {
	if b {
		return "true"
	}
	return "false"
}

// IntToken returns the canonical base 10 rendering of i.
func IntToken(i int64) string {
	return strconv.FormatInt(i, 10)
}

// UintToken returns the canonical base 10 rendering of u.
func UintToken(u uint64) string {
	return strconv.FormatUint(u, 10)
}

// FloatToken returns the shortest rendering of f that parses back to the
// same value, or the null token when f is NaN or infinite. JSON has no
// representation for non finite numbers and null keeps the output
// parseable.
func FloatToken(f float64) string {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Null
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// Float32Token is FloatToken for 32 bit floats.
func Float32Token(f float32) string {
	f64 := float64(f)
	if math.IsNaN(f64) || math.IsInf(f64, 0) {
		return Null
	}
	return strconv.FormatFloat(f64, 'g', -1, 32)
}

// BigIntToken returns the decimal rendering of i, or the null token when
// i is nil.
func BigIntToken(i *big.Int) string {
	if i == nil {
		return Null
	}
	return i.String()
}

// BigFloatToken returns the shortest decimal rendering of f, or the null
// token when f is nil. Precision is never altered.
func BigFloatToken(f *big.Float) string {
	if f == nil {
		return Null
	}
	return f.Text('g', -1)
}

// Token renders v as a JSON literal token. A nil value renders as null,
// booleans as true or false, and the numeric types, including *big.Int,
// *big.Float and json.Number, as numeric literals subject to the non
// finite policy of FloatToken. Nil big values also render as null. Any
// other type panics with a catch error since it has no literal rendering;
// strings are not literals and must be written through the string value
// primitives.
func Token(v interface{}) string {
	switch v := v.(type) {
	case nil:
		return Null
	case bool:
		return BoolToken(v)
	case int:
		return IntToken(int64(v))
	case int8:
		return IntToken(int64(v))
	case int16:
		return IntToken(int64(v))
	case int32:
		return IntToken(int64(v))
	case int64:
		return IntToken(v)
	case uint:
		return UintToken(uint64(v))
	case uint8:
		return UintToken(uint64(v))
	case uint16:
		return UintToken(uint64(v))
	case uint32:
		return UintToken(uint64(v))
	case uint64:
		return UintToken(v)
	case float32:
		return Float32Token(v)
	case float64:
		return FloatToken(v)
	case *big.Int:
		return BigIntToken(v)
	case *big.Float:
		return BigFloatToken(v)
	case json.Number:
		return string(v)
	default:
		panic(catch.Error("jsonscribe: no JSON literal rendering for %T", v))
	}
}
