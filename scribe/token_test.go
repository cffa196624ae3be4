package scribe_test

import (
	"encoding/json"
	"math"
	"math/big"
	"testing"

	"github.com/tada/catch"
	"github.com/tada/jsonscribe/scribe"
	"github.com/tada/jsonscribe/testutils"
)

func TestToken(t *testing.T) {
	testutils.CheckEqual("null", scribe.Token(nil), t)
	testutils.CheckEqual("true", scribe.Token(true), t)
	testutils.CheckEqual("false", scribe.Token(false), t)
	testutils.CheckEqual("-42", scribe.Token(-42), t)
	testutils.CheckEqual("7", scribe.Token(int8(7)), t)
	testutils.CheckEqual("7", scribe.Token(int16(7)), t)
	testutils.CheckEqual("7", scribe.Token(int32(7)), t)
	testutils.CheckEqual("7", scribe.Token(int64(7)), t)
	testutils.CheckEqual("7", scribe.Token(uint(7)), t)
	testutils.CheckEqual("255", scribe.Token(uint8(255)), t)
	testutils.CheckEqual("7", scribe.Token(uint16(7)), t)
	testutils.CheckEqual("7", scribe.Token(uint32(7)), t)
	testutils.CheckEqual("18446744073709551615", scribe.Token(uint64(math.MaxUint64)), t)
	testutils.CheckEqual("1.5", scribe.Token(float32(1.5)), t)
	testutils.CheckEqual("3.14159", scribe.Token(3.14159), t)
	testutils.CheckEqual("1e-3", scribe.Token(json.Number("1e-3")), t)
}

func TestToken_nonFinite(t *testing.T) {
	testutils.CheckEqual("null", scribe.Token(math.NaN()), t)
	testutils.CheckEqual("null", scribe.Token(math.Inf(1)), t)
	testutils.CheckEqual("null", scribe.Token(math.Inf(-1)), t)
	testutils.CheckEqual("null", scribe.Token(float32(math.NaN())), t)
	testutils.CheckEqual("null", scribe.Token(float32(math.Inf(1))), t)
}

func TestToken_big(t *testing.T) {
	i, ok := new(big.Int).SetString("123456789012345678901234567890", 10)
	testutils.CheckTrue(ok, t)
	testutils.CheckEqual("123456789012345678901234567890", scribe.Token(i), t)
	testutils.CheckEqual("2.5", scribe.Token(big.NewFloat(2.5)), t)
	testutils.CheckEqual("null", scribe.Token((*big.Int)(nil)), t)
	testutils.CheckEqual("null", scribe.Token((*big.Float)(nil)), t)
}

func TestToken_unsupported(t *testing.T) {
	err := catch.Do(func() {
		scribe.Token(struct{}{})
	})
	testutils.CheckError(err, t)
}

func TestFloatToken(t *testing.T) {
	testutils.CheckEqual("0", scribe.FloatToken(0), t)
	testutils.CheckEqual("-0.5", scribe.FloatToken(-0.5), t)
	testutils.CheckEqual("null", scribe.FloatToken(math.NaN()), t)
	testutils.CheckEqual("null", scribe.Float32Token(float32(math.Inf(-1))), t)
}
