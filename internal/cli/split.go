package cli

import (
	"github.com/spf13/cobra"

	"github.com/Flarenzy/ipcalc/internal/render"
	"github.com/Flarenzy/ipcalc/internal/subnet"
)

var (
	splitPrefix    int
	splitCount     uint64
	splitCountOnly bool
)

var splitCmd = &cobra.Command{
	Use:   "split <cidr>",
	Short: "Generate subnets from a supernet",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cidr := args[0]

		if splitCountOnly {
			res, err := subnet.CountOnly(cidr, splitPrefix)
			if err != nil {
				return err
			}
			return writeResult(render.NewCountView(res))
		}

		var (
			res subnet.SplitResult
			err error
		)
		if cmd.Flags().Changed("count") {
			res, err = subnet.Split(cidr, splitPrefix, splitCount)
		} else {
			res, err = subnet.SplitMax(cidr, splitPrefix)
		}
		if err != nil {
			return err
		}
		return writeResult(render.NewSplitView(res))
	},
}

var rangeCmd = &cobra.Command{
	Use:   "range <start> <end>",
	Short: "Decompose an address range into the minimal CIDR list",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		res, err := subnet.FromRange(args[0], args[1])
		if err != nil {
			return err
		}
		return writeResult(render.NewFromRangeView(res))
	},
}

func init() {
	splitCmd.Flags().IntVarP(&splitPrefix, "prefix", "p", 0, "New prefix length for subnets")
	splitCmd.Flags().Uint64VarP(&splitCount, "count", "n", 0, "Number of subnets to generate (all when omitted)")
	splitCmd.Flags().BoolVar(&splitCountOnly, "count-only", false, "Report the available count without generating subnets")
	_ = splitCmd.MarkFlagRequired("prefix")

	rootCmd.AddCommand(splitCmd)
	rootCmd.AddCommand(rangeCmd)
}
