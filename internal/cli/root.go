// Package cli implements the ammcli command tree.
package cli

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/nulln0ne/suilipse/pkg/amm"
)

type rootOptions struct {
	decimals uint8
	logLevel string
}

// NewRootCmd builds the ammcli command tree.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "ammcli",
		Short: "Constant-product pool calculator for Sui AMM pools",
		Long: `ammcli evaluates the pool math used by the on-chain AMM module: swap
outputs, LP minted for deposits, withdrawal payouts and price quotes.
Token amounts are decimal strings scaled by --decimals; LP amounts are raw.`,
		SilenceUsage: true,
		Version:      "0.1.0",
	}

	rootCmd.PersistentFlags().Uint8Var(&opts.decimals, "decimals", uint8(amm.SuiDecimals), "decimal places of token amounts")
	rootCmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warn", "log level (debug, info, warn, error)")

	rootCmd.AddCommand(
		newSqrtCmd(),
		newQuoteCmd(opts),
		newSwapCmd(opts),
		newMintCmd(opts),
		newWithdrawCmd(opts),
		newSeedCmd(opts),
		newPoolCmd(opts),
	)
	return rootCmd
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func (o *rootOptions) scale() amm.Decimals {
	return amm.Decimals(o.decimals)
}

// amounts parses token amounts scaled by --decimals.
func (o *rootOptions) amounts(args ...string) ([]uint64, error) {
	out := make([]uint64, len(args))
	for i, a := range args {
		v, err := o.scale().Parse(a)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func parseRaw(s string) (uint64, error) {
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a raw integer amount", amm.ErrInvalidAmount, s)
	}
	return v, nil
}
