package cli

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"

	"github.com/nulln0ne/suilipse/internal/config"
	"github.com/nulln0ne/suilipse/internal/logging"
	"github.com/nulln0ne/suilipse/internal/sui"
)

type poolView struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Symbol   string `json:"symbol"`
	ReserveX string `json:"reserve_x"`
	ReserveY string `json:"reserve_y"`
	LPSupply uint64 `json:"lp_supply,string"`
	FeeBps   uint64 `json:"fee_bps"`
}

func newPoolCmd(opts *rootOptions) *cobra.Command {
	var rpcURL string
	cmd := &cobra.Command{
		Use:   "pool <object-id>",
		Short: "Fetch a pool object from a Sui fullnode",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.New(cmd.ErrOrStderr(), opts.logLevel, "text")

			c, err := sui.Dial(cmd.Context(), rpcURL)
			if err != nil {
				return err
			}
			defer c.Close()

			logger.Debug("fetching pool", "pool", args[0], "rpc", rpcURL)
			p, err := c.GetPool(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if err := p.Validate(); err != nil {
				logger.Warn("pool fee outside the module range", "pool", p.ID, "fee", p.Fee)
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(poolView{
				ID:       p.ID,
				Name:     p.Name,
				Symbol:   p.Symbol,
				ReserveX: opts.scale().Format(p.ReserveX),
				ReserveY: opts.scale().Format(p.ReserveY),
				LPSupply: p.LPSupply,
				FeeBps:   uint64(p.Fee),
			})
		},
	}

	defaultURL := os.Getenv("SUI_RPC_URL")
	if defaultURL == "" {
		defaultURL = config.DefaultRPCEndpoint
	}
	cmd.Flags().StringVar(&rpcURL, "rpc-url", defaultURL, "Sui fullnode JSON-RPC endpoint")
	return cmd
}
