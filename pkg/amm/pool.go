package amm

// Pool is a snapshot of an on-chain constant-product pool object.
type Pool struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Symbol   string `json:"symbol"`
	ReserveX uint64 `json:"reserve_x,string"`
	ReserveY uint64 `json:"reserve_y,string"`
	LPSupply uint64 `json:"lp_supply,string"`
	Fee      Fee    `json:"fee_percentage"`
}

// Validate checks the fee against the range the pool module accepts,
// [1, FeeDenominator].
func (p Pool) Validate() error {
	if p.Fee == 0 || p.Fee > FeeDenominator {
		return ErrInvalidFee
	}
	return nil
}

// Empty reports whether either reserve is zero.
func (p Pool) Empty() bool {
	return p.ReserveX == 0 || p.ReserveY == 0
}

// SwapX returns the Y received for selling dx of X.
func (p Pool) SwapX(dx uint64) (uint64, error) {
	return GetInput(dx, p.ReserveX, p.ReserveY, p.Fee)
}

// SwapY returns the X received for selling dy of Y.
func (p Pool) SwapY(dy uint64) (uint64, error) {
	return GetInput(dy, p.ReserveY, p.ReserveX, p.Fee)
}

// PriceX returns the Y equivalent of amount X at the current ratio.
func (p Pool) PriceX(amount uint64, precise bool) (uint64, error) {
	if precise {
		return QuotePrecise(p.ReserveX, p.ReserveY, amount)
	}
	return Quote(p.ReserveX, p.ReserveY, amount)
}

// PriceY returns the X equivalent of amount Y at the current ratio.
func (p Pool) PriceY(amount uint64, precise bool) (uint64, error) {
	if precise {
		return QuotePrecise(p.ReserveY, p.ReserveX, amount)
	}
	return Quote(p.ReserveY, p.ReserveX, amount)
}

// Deposit returns the LP minted for adding dx and dy. A pool without LP
// supply is seeded with InitialLiquidity.
func (p Pool) Deposit(dx, dy uint64) (uint64, error) {
	var (
		lp  uint64
		err error
	)
	if p.LPSupply == 0 {
		lp = InitialLiquidity(dx, dy)
	} else {
		lp, err = MintedLPAfterIncreaseLiquidity(p.ReserveX, p.ReserveY, dx, dy, p.LPSupply)
		if err != nil {
			return 0, err
		}
	}
	if lp == 0 {
		return 0, ErrInsufficientLiquidityMinted
	}
	return lp, nil
}

// Withdraw returns the X and Y paid out for burning lp shares.
func (p Pool) Withdraw(lp uint64) (uint64, uint64, error) {
	if lp > p.LPSupply {
		return 0, 0, ErrInsufficientShares
	}
	return WithdrawLiquidity(p.ReserveX, p.ReserveY, lp, p.LPSupply)
}
