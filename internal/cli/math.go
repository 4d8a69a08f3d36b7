package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nulln0ne/suilipse/pkg/amm"
)

func newSqrtCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sqrt <n>",
		Short: "Integer square root of a raw value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := parseRaw(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d\n", amm.Sqrt(n))
			return nil
		},
	}
}

func newQuoteCmd(opts *rootOptions) *cobra.Command {
	var precise bool
	cmd := &cobra.Command{
		Use:   "quote <reserve-a> <reserve-b> <amount-a>",
		Short: "Amount of B worth amount-a of A at the reserve ratio",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := opts.amounts(args...)
			if err != nil {
				return err
			}
			var q uint64
			if precise {
				q, err = amm.QuotePrecise(v[0], v[1], v[2])
			} else {
				q, err = amm.Quote(v[0], v[1], v[2])
			}
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), opts.scale().Format(q))
			return nil
		},
	}
	cmd.Flags().BoolVar(&precise, "precise", false, "multiply before dividing instead of truncating the ratio")
	return cmd
}

func newSwapCmd(opts *rootOptions) *cobra.Command {
	var fee uint64
	cmd := &cobra.Command{
		Use:   "swap <amount-in> <reserve-in> <reserve-out>",
		Short: "Output of a constant-product swap",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := opts.amounts(args...)
			if err != nil {
				return err
			}
			out, err := amm.GetInput(v[0], v[1], v[2], amm.Fee(fee))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), opts.scale().Format(out))
			return nil
		},
	}
	cmd.Flags().Uint64Var(&fee, "fee", 30, "swap fee in basis points")
	return cmd
}

func newMintCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "mint <reserve-x> <reserve-y> <dx> <dy> <lp-supply>",
		Short: "LP minted for a deposit into a non-empty pool",
		Args:  cobra.ExactArgs(5),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := opts.amounts(args[:4]...)
			if err != nil {
				return err
			}
			supply, err := parseRaw(args[4])
			if err != nil {
				return err
			}
			lp, err := amm.MintedLPAfterIncreaseLiquidity(v[0], v[1], v[2], v[3], supply)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d\n", lp)
			return nil
		},
	}
}

func newWithdrawCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "withdraw <reserve-x> <reserve-y> <lp> <lp-supply>",
		Short: "Reserves paid out for burning lp shares",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := opts.amounts(args[:2]...)
			if err != nil {
				return err
			}
			lp, err := parseRaw(args[2])
			if err != nil {
				return err
			}
			supply, err := parseRaw(args[3])
			if err != nil {
				return err
			}
			x, y, err := amm.WithdrawLiquidity(v[0], v[1], lp, supply)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", opts.scale().Format(x), opts.scale().Format(y))
			return nil
		},
	}
}

func newSeedCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "seed <dx> <dy>",
		Short: "LP supply created by the first deposit into an empty pool",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := opts.amounts(args...)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d\n", amm.InitialLiquidity(v[0], v[1]))
			return nil
		},
	}
}
