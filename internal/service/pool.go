package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/nulln0ne/suilipse/internal/metrics"
	"github.com/nulln0ne/suilipse/internal/sui"
	"github.com/nulln0ne/suilipse/pkg/amm"
)

// PoolReader loads pool snapshots, normally from a Sui fullnode.
type PoolReader interface {
	GetPool(ctx context.Context, id string) (amm.Pool, error)
}

// Side names the token being sold (swap) or priced (quote).
type Side string

const (
	SideX Side = "x"
	SideY Side = "y"
)

// ParseSide accepts "x" or "y".
func ParseSide(s string) (Side, error) {
	switch Side(s) {
	case SideX, SideY:
		return Side(s), nil
	default:
		return "", ErrInvalidSide
	}
}

// Option configures a PoolService.
type Option func(*PoolService)

// WithCache keeps up to size pool snapshots for ttl. A non-positive size or
// ttl disables caching.
func WithCache(size int, ttl time.Duration) Option {
	return func(s *PoolService) {
		if size <= 0 || ttl <= 0 {
			s.cache = nil
			return
		}
		s.cache = expirable.NewLRU[string, amm.Pool](size, nil, ttl)
	}
}

// WithMetrics records estimates into m.
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *PoolService) {
		s.metrics = m
	}
}

// PoolService answers swap, deposit, withdrawal and quote estimates against
// the latest snapshot of a pool.
type PoolService struct {
	BaseService
	reader  PoolReader
	cache   *expirable.LRU[string, amm.Pool]
	metrics *metrics.Metrics
}

// NewPoolService constructs a PoolService. Without options it reads through
// to reader on every call and records metrics into unregistered collectors.
func NewPoolService(logger *slog.Logger, reader PoolReader, opts ...Option) *PoolService {
	s := &PoolService{
		BaseService: BaseService{logger: logger},
		reader:      reader,
		metrics:     metrics.New(nil),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Pool returns the current snapshot of pool id.
func (s *PoolService) Pool(ctx context.Context, id string) (amm.Pool, error) {
	if s.cache != nil {
		if p, ok := s.cache.Get(id); ok {
			s.metrics.PoolReads.WithLabelValues("cache").Inc()
			return p, nil
		}
	}

	start := time.Now()
	p, err := s.reader.GetPool(ctx, id)
	s.metrics.RPCLatency.Observe(time.Since(start).Seconds())
	s.metrics.PoolReads.WithLabelValues("rpc").Inc()
	if err != nil {
		if errors.Is(err, sui.ErrObjectNotFound) || errors.Is(err, sui.ErrNotPool) {
			return amm.Pool{}, fmt.Errorf("%w: %w", ErrPoolNotFound, err)
		}
		return amm.Pool{}, fmt.Errorf("read pool %s: %w", id, err)
	}
	s.logger.Debug("pool loaded", "pool", id, "reserve_x", p.ReserveX, "reserve_y", p.ReserveY, "lp_supply", p.LPSupply, "fee", p.Fee)
	if err := p.Validate(); err != nil {
		s.logger.Warn("pool fee outside the module range", "pool", id, "fee", p.Fee)
	}

	if s.cache != nil {
		s.cache.Add(id, p)
	}
	return p, nil
}

// EstimateSwap returns the amount received for selling amountIn of side.
func (s *PoolService) EstimateSwap(ctx context.Context, id string, side Side, amountIn uint64) (out uint64, err error) {
	defer func() { s.observe("swap", err) }()

	if amountIn == 0 {
		return 0, ErrZeroAmount
	}
	p, err := s.Pool(ctx, id)
	if err != nil {
		return 0, err
	}
	if p.Empty() {
		return 0, ErrEmptyReserves
	}

	switch side {
	case SideX:
		out, err = p.SwapX(amountIn)
	case SideY:
		out, err = p.SwapY(amountIn)
	default:
		return 0, ErrInvalidSide
	}
	if err != nil {
		return 0, fmt.Errorf("swap estimate: %w", err)
	}
	s.logger.Debug("swap estimated", "pool", id, "side", side, "in", amountIn, "out", out)
	return out, nil
}

// EstimateDeposit returns the LP minted for depositing dx and dy.
func (s *PoolService) EstimateDeposit(ctx context.Context, id string, dx, dy uint64) (lp uint64, err error) {
	defer func() { s.observe("deposit", err) }()

	if dx == 0 && dy == 0 {
		return 0, ErrZeroAmount
	}
	p, err := s.Pool(ctx, id)
	if err != nil {
		return 0, err
	}
	if p.LPSupply > 0 && p.Empty() {
		return 0, ErrEmptyReserves
	}

	lp, err = p.Deposit(dx, dy)
	if err != nil {
		return 0, fmt.Errorf("deposit estimate: %w", err)
	}
	s.logger.Debug("deposit estimated", "pool", id, "dx", dx, "dy", dy, "lp", lp)
	return lp, nil
}

// EstimateWithdraw returns the X and Y paid out for burning lp shares.
func (s *PoolService) EstimateWithdraw(ctx context.Context, id string, lp uint64) (x, y uint64, err error) {
	defer func() { s.observe("withdraw", err) }()

	if lp == 0 {
		return 0, 0, ErrZeroAmount
	}
	p, err := s.Pool(ctx, id)
	if err != nil {
		return 0, 0, err
	}

	x, y, err = p.Withdraw(lp)
	if err != nil {
		return 0, 0, fmt.Errorf("withdraw estimate: %w", err)
	}
	s.logger.Debug("withdraw estimated", "pool", id, "lp", lp, "x", x, "y", y)
	return x, y, nil
}

// Quote prices amount of side in the other token at the current reserve
// ratio. With precise unset the ratio is truncated first, matching the pool
// module. A zero amount fails with ErrZeroAmount like the other estimates.
func (s *PoolService) Quote(ctx context.Context, id string, side Side, amount uint64, precise bool) (out uint64, err error) {
	defer func() { s.observe("quote", err) }()

	if amount == 0 {
		return 0, ErrZeroAmount
	}
	p, err := s.Pool(ctx, id)
	if err != nil {
		return 0, err
	}
	if p.Empty() {
		return 0, ErrEmptyReserves
	}

	switch side {
	case SideX:
		out, err = p.PriceX(amount, precise)
	case SideY:
		out, err = p.PriceY(amount, precise)
	default:
		return 0, ErrInvalidSide
	}
	if err != nil {
		return 0, fmt.Errorf("quote: %w", err)
	}
	return out, nil
}

func (s *PoolService) observe(op string, err error) {
	s.metrics.Estimates.WithLabelValues(op, outcome(err)).Inc()
}

func outcome(err error) string {
	var aerr *amm.ArithmeticError
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, ErrPoolNotFound):
		return "not_found"
	case errors.Is(err, ErrZeroAmount), errors.Is(err, ErrEmptyReserves), errors.Is(err, ErrInvalidSide),
		errors.Is(err, amm.ErrInsufficientShares), errors.Is(err, amm.ErrInsufficientLiquidityMinted),
		errors.As(err, &aerr):
		return "invalid"
	default:
		return "error"
	}
}
