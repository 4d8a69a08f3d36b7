package handler

import "github.com/gofiber/fiber/v3"

// ErrInvalidQueryParameters indicates that the request query string could not
// be parsed into the expected structure.
var ErrInvalidQueryParameters = fiber.NewError(fiber.StatusBadRequest, "invalid query parameters")

// ErrPoolIDRequired is returned when the pool path parameter is empty.
var ErrPoolIDRequired = fiber.NewError(fiber.StatusBadRequest, "pool id is required")

// ErrInvalidSideBadRequest is returned when side is neither x nor y.
var ErrInvalidSideBadRequest = fiber.NewError(fiber.StatusBadRequest, "side must be x or y")

// ErrAmountNonPositive is returned when an amount that must be positive is zero.
var ErrAmountNonPositive = fiber.NewError(fiber.StatusBadRequest, "amount must be greater than zero")

// ErrPoolNotFound maps a missing or non-pool object to a 404 error.
var ErrPoolNotFound = fiber.NewError(fiber.StatusNotFound, "pool not found")

// ErrEmptyReservesBadRequest maps empty-reserve pool state to a 400 error.
var ErrEmptyReservesBadRequest = fiber.NewError(fiber.StatusBadRequest, "pool has insufficient reserves")

// ErrInsufficientSharesBadRequest is returned when redeeming more LP than exists.
var ErrInsufficientSharesBadRequest = fiber.NewError(fiber.StatusBadRequest, "lp exceeds pool supply")

// ErrInsufficientLiquidityMintedBadRequest is returned when a deposit mints no LP.
var ErrInsufficientLiquidityMintedBadRequest = fiber.NewError(fiber.StatusBadRequest, "deposit mints no liquidity")

// ErrOverflowUnprocessable signals a result that does not fit in 64 bits.
var ErrOverflowUnprocessable = fiber.NewError(fiber.StatusUnprocessableEntity, "result overflows uint64")

// ErrInvalidFeeUnprocessable signals a pool whose fee is outside [0, 10000].
var ErrInvalidFeeUnprocessable = fiber.NewError(fiber.StatusUnprocessableEntity, "pool fee out of range")

// ErrEstimationFailedInternal signals a generic server-side estimation error.
var ErrEstimationFailedInternal = fiber.NewError(fiber.StatusInternalServerError, "estimation failed")

// NewAmountRequired returns a 400 Bad Request for a missing amount field.
func NewAmountRequired(field string) error {
	return fiber.NewError(fiber.StatusBadRequest, field+" is required")
}

// NewInvalidAmount returns a 400 Bad Request for an amount that is not a
// base-10 unsigned 64-bit integer.
func NewInvalidAmount(field string) error {
	return fiber.NewError(fiber.StatusBadRequest, "invalid "+field+" format")
}
