package amm

import (
	"errors"
	"fmt"
)

var (
	// ErrDivisionByZero is returned when a reserve or supply denominator is zero.
	ErrDivisionByZero = errors.New("amm: division by zero")

	// ErrOverflow is returned when a result does not fit in 64 bits.
	ErrOverflow = errors.New("amm: result overflows uint64")

	// ErrInvalidFee is returned for fees outside the accepted basis-point range.
	ErrInvalidFee = errors.New("amm: fee out of range")

	// ErrInvalidAmount is returned when a decimal amount cannot be parsed or is negative.
	ErrInvalidAmount = errors.New("amm: invalid amount")

	// ErrPrecision is returned when a decimal amount has more fractional digits
	// than its scale allows.
	ErrPrecision = errors.New("amm: amount exceeds decimal precision")

	// ErrInsufficientShares is returned when redeeming more LP than is outstanding.
	ErrInsufficientShares = errors.New("amm: insufficient lp supply")

	// ErrInsufficientLiquidityMinted is returned when a deposit would mint zero LP.
	ErrInsufficientLiquidityMinted = errors.New("amm: insufficient liquidity minted")
)

// ArithmeticError records which operation failed. It unwraps to one of the
// sentinel errors above.
type ArithmeticError struct {
	Op  string
	Err error
}

func (e *ArithmeticError) Error() string {
	return fmt.Sprintf("%v (in %s)", e.Err, e.Op)
}

func (e *ArithmeticError) Unwrap() error {
	return e.Err
}

func opError(op string, err error) error {
	return &ArithmeticError{Op: op, Err: err}
}
