// Package amm implements constant-product liquidity pool arithmetic over raw
// uint64 token amounts. Intermediate products are carried on 256-bit integers
// and only the final quotient is narrowed back to 64 bits, so no function
// wraps silently. Every function is pure and safe for concurrent use.
package amm

import "github.com/holiman/uint256"

// FeeDenominator is the basis-point scale of Fee.
const FeeDenominator = 10_000

// Fee is a swap fee in basis points out of FeeDenominator; 30 means 0.30%.
type Fee uint64

// Sqrt returns floor(sqrt(y)) computed with Newton's method.
func Sqrt(y uint64) uint64 {
	if y < 4 {
		if y == 0 {
			return 0
		}
		return 1
	}
	z := y
	x := y/2 + 1
	for x < z {
		z = x
		x = (y/x + x) / 2
	}
	return z
}

// SuiSqrt returns floor(sqrt(x)) by resolving one bit pair of the result per
// iteration. It matches the square root used by the on-chain pool module and
// always agrees with Sqrt.
func SuiSqrt(x uint64) uint64 {
	var (
		bit, res, sum uint256.Int
		rem           = uint256.NewInt(x)
	)
	bit.Lsh(uint256.NewInt(1), 64)
	for !bit.IsZero() {
		sum.Add(&res, &bit)
		if rem.Cmp(&sum) >= 0 {
			rem.Sub(rem, &sum)
			res.Rsh(&res, 1)
			res.Add(&res, &bit)
		} else {
			res.Rsh(&res, 1)
		}
		bit.Rsh(&bit, 2)
	}
	return res.Uint64()
}

func Min(a, b uint64) uint64 {
	if a > b {
		return b
	}
	return a
}

func Max(a, b uint64) uint64 {
	if a > b {
		return a
	}
	return b
}

// Quote returns the amount of token B worth inputA of token A at the pool
// ratio, as (reserveB / reserveA) * inputA. The ratio is truncated before the
// multiplication, exactly like the on-chain module; use QuotePrecise for the
// untruncated value.
func Quote(reserveA, reserveB, inputA uint64) (uint64, error) {
	const op = "Quote"
	if reserveA == 0 {
		return 0, opError(op, ErrDivisionByZero)
	}
	var z uint256.Int
	z.Mul(uint256.NewInt(reserveB/reserveA), uint256.NewInt(inputA))
	return narrow(op, &z)
}

// QuotePrecise returns reserveB * inputA / reserveA, dividing last.
func QuotePrecise(reserveA, reserveB, inputA uint64) (uint64, error) {
	return mulDiv("QuotePrecise", reserveB, inputA, reserveA)
}

// GetInput returns the output dy of a constant-product swap of dx into a pool
// holding x of the input token and y of the output token, charging fee f:
//
//	dy = (10000-f)*dx*y / (10000*x + (10000-f)*dx)
func GetInput(dx, x, y uint64, f Fee) (uint64, error) {
	const op = "GetInput"
	if f > FeeDenominator {
		return 0, opError(op, ErrInvalidFee)
	}
	var adjusted, num, den uint256.Int
	adjusted.Mul(uint256.NewInt(FeeDenominator-uint64(f)), uint256.NewInt(dx))
	num.Mul(&adjusted, uint256.NewInt(y))
	den.Mul(uint256.NewInt(FeeDenominator), uint256.NewInt(x))
	den.Add(&den, &adjusted)
	if den.IsZero() {
		return 0, opError(op, ErrDivisionByZero)
	}
	num.Div(&num, &den)
	return narrow(op, &num)
}

// MintedLPAfterIncreaseLiquidity returns the LP shares minted for depositing
// dx and dy into a non-empty pool: min(dx*lpSupply/x, dy*lpSupply/y). Taking
// the smaller side means an unbalanced deposit never mints more than its
// weakest contribution. Seeding an empty pool is InitialLiquidity.
func MintedLPAfterIncreaseLiquidity(x, y, dx, dy, lpSupply uint64) (uint64, error) {
	const op = "MintedLPAfterIncreaseLiquidity"
	if x == 0 || y == 0 {
		return 0, opError(op, ErrDivisionByZero)
	}
	var fromX, fromY uint256.Int
	supply := uint256.NewInt(lpSupply)
	fromX.Mul(uint256.NewInt(dx), supply)
	fromX.Div(&fromX, uint256.NewInt(x))
	fromY.Mul(uint256.NewInt(dy), supply)
	fromY.Div(&fromY, uint256.NewInt(y))
	if fromY.Lt(&fromX) {
		return narrow(op, &fromY)
	}
	return narrow(op, &fromX)
}

// WithdrawLiquidity returns the reserve amounts owed for redeeming lpValue
// out of lpSupply shares.
func WithdrawLiquidity(reserveX, reserveY, lpValue, lpSupply uint64) (uint64, uint64, error) {
	const op = "WithdrawLiquidity"
	outX, err := mulDiv(op, reserveX, lpValue, lpSupply)
	if err != nil {
		return 0, 0, err
	}
	outY, err := mulDiv(op, reserveY, lpValue, lpSupply)
	if err != nil {
		return 0, 0, err
	}
	return outX, outY, nil
}

// InitialLiquidity returns the LP supply seeded by the first deposit into an
// empty pool, floor(sqrt(dx*dy)). The product is taken on 128 bits so the
// root always fits.
func InitialLiquidity(dx, dy uint64) uint64 {
	var z uint256.Int
	z.Mul(uint256.NewInt(dx), uint256.NewInt(dy))
	z.Sqrt(&z)
	return z.Uint64()
}

func mulDiv(op string, a, b, d uint64) (uint64, error) {
	if d == 0 {
		return 0, opError(op, ErrDivisionByZero)
	}
	var z uint256.Int
	z.Mul(uint256.NewInt(a), uint256.NewInt(b))
	z.Div(&z, uint256.NewInt(d))
	return narrow(op, &z)
}

func narrow(op string, z *uint256.Int) (uint64, error) {
	if !z.IsUint64() {
		return 0, opError(op, ErrOverflow)
	}
	return z.Uint64(), nil
}
