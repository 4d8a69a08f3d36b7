package handler

import (
	"errors"
	"log/slog"
	"strconv"

	"github.com/gofiber/fiber/v3"

	"github.com/nulln0ne/suilipse/internal/service"
	"github.com/nulln0ne/suilipse/pkg/amm"
)

type PoolHandler struct {
	BaseHandler
	service *service.PoolService
}

func NewPoolHandler(logger *slog.Logger, svc *service.PoolService) *PoolHandler {
	return &PoolHandler{
		BaseHandler: BaseHandler{
			logger: logger,
		},
		service: svc,
	}
}

// Register mounts the pool routes on r.
func (h *PoolHandler) Register(r fiber.Router) {
	r.Get("/pools/:id", h.Pool())
	r.Get("/pools/:id/swap", h.Swap())
	r.Get("/pools/:id/deposit", h.Deposit())
	r.Get("/pools/:id/withdraw", h.Withdraw())
	r.Get("/pools/:id/quote", h.Quote())
}

type SwapRequest struct {
	Side   string `query:"side" json:"side"`
	Amount string `query:"amount" json:"amount"`
}

type SwapResponse struct {
	Pool      string `json:"pool"`
	Side      string `json:"side"`
	AmountIn  string `json:"amount_in"`
	AmountOut string `json:"amount_out"`
}

type DepositRequest struct {
	X string `query:"x" json:"x"`
	Y string `query:"y" json:"y"`
}

type DepositResponse struct {
	Pool string `json:"pool"`
	X    string `json:"x"`
	Y    string `json:"y"`
	LP   string `json:"lp"`
}

type WithdrawRequest struct {
	LP string `query:"lp" json:"lp"`
}

type WithdrawResponse struct {
	Pool string `json:"pool"`
	LP   string `json:"lp"`
	X    string `json:"x"`
	Y    string `json:"y"`
}

type QuoteRequest struct {
	Side    string `query:"side" json:"side"`
	Amount  string `query:"amount" json:"amount"`
	Precise bool   `query:"precise" json:"precise"`
}

type QuoteResponse struct {
	Pool    string `json:"pool"`
	Side    string `json:"side"`
	Amount  string `json:"amount"`
	Quote   string `json:"quote"`
	Precise bool   `json:"precise"`
}

func (h *PoolHandler) Pool() fiber.Handler {
	return func(c fiber.Ctx) error {
		id, err := h.poolID(c)
		if err != nil {
			return err
		}

		p, err := h.service.Pool(c.Context(), id)
		if err != nil {
			return h.handleServiceError(err)
		}
		return c.JSON(p)
	}
}

func (h *PoolHandler) Swap() fiber.Handler {
	return func(c fiber.Ctx) error {
		id, err := h.poolID(c)
		if err != nil {
			return err
		}

		var req SwapRequest
		if err := h.bindQuery(c, &req); err != nil {
			return err
		}
		side, err := service.ParseSide(req.Side)
		if err != nil {
			return ErrInvalidSideBadRequest
		}
		amountIn, err := h.parseAmount("amount", req.Amount)
		if err != nil {
			return err
		}

		amountOut, err := h.service.EstimateSwap(c.Context(), id, side, amountIn)
		if err != nil {
			return h.handleServiceError(err)
		}

		h.logger.Debug("swap computed", "pool", id, "side", side, "in", amountIn, "out", amountOut)
		return c.JSON(SwapResponse{
			Pool:      id,
			Side:      string(side),
			AmountIn:  formatUint(amountIn),
			AmountOut: formatUint(amountOut),
		})
	}
}

func (h *PoolHandler) Deposit() fiber.Handler {
	return func(c fiber.Ctx) error {
		id, err := h.poolID(c)
		if err != nil {
			return err
		}

		var req DepositRequest
		if err := h.bindQuery(c, &req); err != nil {
			return err
		}
		dx, err := h.parseAmount("x", req.X)
		if err != nil {
			return err
		}
		dy, err := h.parseAmount("y", req.Y)
		if err != nil {
			return err
		}

		lp, err := h.service.EstimateDeposit(c.Context(), id, dx, dy)
		if err != nil {
			return h.handleServiceError(err)
		}
		return c.JSON(DepositResponse{Pool: id, X: formatUint(dx), Y: formatUint(dy), LP: formatUint(lp)})
	}
}

func (h *PoolHandler) Withdraw() fiber.Handler {
	return func(c fiber.Ctx) error {
		id, err := h.poolID(c)
		if err != nil {
			return err
		}

		var req WithdrawRequest
		if err := h.bindQuery(c, &req); err != nil {
			return err
		}
		lp, err := h.parseAmount("lp", req.LP)
		if err != nil {
			return err
		}

		x, y, err := h.service.EstimateWithdraw(c.Context(), id, lp)
		if err != nil {
			return h.handleServiceError(err)
		}
		return c.JSON(WithdrawResponse{Pool: id, LP: formatUint(lp), X: formatUint(x), Y: formatUint(y)})
	}
}

func (h *PoolHandler) Quote() fiber.Handler {
	return func(c fiber.Ctx) error {
		id, err := h.poolID(c)
		if err != nil {
			return err
		}

		var req QuoteRequest
		if err := h.bindQuery(c, &req); err != nil {
			return err
		}
		side, err := service.ParseSide(req.Side)
		if err != nil {
			return ErrInvalidSideBadRequest
		}
		amount, err := h.parseAmount("amount", req.Amount)
		if err != nil {
			return err
		}

		q, err := h.service.Quote(c.Context(), id, side, amount, req.Precise)
		if err != nil {
			return h.handleServiceError(err)
		}
		return c.JSON(QuoteResponse{
			Pool:    id,
			Side:    string(side),
			Amount:  formatUint(amount),
			Quote:   formatUint(q),
			Precise: req.Precise,
		})
	}
}

func (h *PoolHandler) poolID(c fiber.Ctx) (string, error) {
	id := c.Params("id")
	if id == "" {
		return "", ErrPoolIDRequired
	}
	return id, nil
}

func (h *PoolHandler) bindQuery(c fiber.Ctx, out any) error {
	if err := c.Bind().Query(out); err != nil {
		h.logger.Debug("failed to bind query parameters", "err", err)
		return ErrInvalidQueryParameters
	}
	return nil
}

func (h *PoolHandler) handleServiceError(err error) error {
	switch {
	case errors.Is(err, service.ErrPoolNotFound):
		return ErrPoolNotFound
	case errors.Is(err, service.ErrZeroAmount):
		return ErrAmountNonPositive
	case errors.Is(err, service.ErrInvalidSide):
		return ErrInvalidSideBadRequest
	case errors.Is(err, service.ErrEmptyReserves), errors.Is(err, amm.ErrDivisionByZero):
		return ErrEmptyReservesBadRequest
	case errors.Is(err, amm.ErrInsufficientShares):
		return ErrInsufficientSharesBadRequest
	case errors.Is(err, amm.ErrInsufficientLiquidityMinted):
		return ErrInsufficientLiquidityMintedBadRequest
	case errors.Is(err, amm.ErrOverflow):
		return ErrOverflowUnprocessable
	case errors.Is(err, amm.ErrInvalidFee):
		return ErrInvalidFeeUnprocessable
	default:
		h.logger.Error("pool estimate failed", "err", err)
		return ErrEstimationFailedInternal
	}
}

func formatUint(v uint64) string {
	return strconv.FormatUint(v, 10)
}
