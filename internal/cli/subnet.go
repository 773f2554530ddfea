package cli

import (
	"github.com/spf13/cobra"

	"github.com/Flarenzy/ipcalc/internal/render"
	"github.com/Flarenzy/ipcalc/internal/subnet"
)

var v4Cmd = &cobra.Command{
	Use:   "v4 <cidr>",
	Short: "Calculate IPv4 subnet information",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := subnet.Parse(subnet.V4, args[0])
		if err != nil {
			return err
		}
		return writeResult(render.NewV4View(s))
	},
}

var v6Cmd = &cobra.Command{
	Use:   "v6 <cidr>",
	Short: "Calculate IPv6 subnet information",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := subnet.Parse(subnet.V6, args[0])
		if err != nil {
			return err
		}
		return writeResult(render.NewV6View(s))
	},
}

var containsCmd = &cobra.Command{
	Use:   "contains <cidr> <address>",
	Short: "Check whether a subnet contains an address",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		res, err := subnet.Contains(args[0], args[1])
		if err != nil {
			return err
		}
		return writeResult(render.NewContainsView(res))
	},
}

func init() {
	rootCmd.AddCommand(v4Cmd)
	rootCmd.AddCommand(v6Cmd)
	rootCmd.AddCommand(containsCmd)
}
