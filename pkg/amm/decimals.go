package amm

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/shopspring/decimal"
)

// Decimals is the number of fractional digits a token's raw amounts carry.
// The math in this package works on raw units only; Decimals converts at the
// edges so call sites never mix scaled and unscaled values.
type Decimals uint8

// SuiDecimals is the scale of the native SUI coin (1 SUI = 10^9 MIST).
const SuiDecimals Decimals = 9

// Format renders a raw amount as a decimal string, e.g. 1500000000 with 9
// decimals becomes "1.5".
func (d Decimals) Format(raw uint64) string {
	return decimal.NewFromBigInt(new(big.Int).SetUint64(raw), -int32(d)).String()
}

// Parse converts a decimal string into raw units.
func (d Decimals) Parse(s string) (uint64, error) {
	v, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	if v.IsNegative() {
		return 0, fmt.Errorf("%w: %q is negative", ErrInvalidAmount, s)
	}
	scaled := v.Shift(int32(d))
	if !scaled.Equal(scaled.Truncate(0)) {
		return 0, fmt.Errorf("%w: %q has more than %d decimals", ErrPrecision, s, d)
	}
	raw := scaled.BigInt()
	if !raw.IsUint64() {
		return 0, fmt.Errorf("%w: %q", ErrOverflow, s)
	}
	return raw.Uint64(), nil
}
