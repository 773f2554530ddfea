package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Flarenzy/ipcalc/internal/render"
	"github.com/Flarenzy/ipcalc/internal/subnet"
)

var (
	summarizeInput string
	batchInput     string
)

// collectCIDRs returns the positional arguments, or when there are none,
// the non-empty lines of the input file ("-" reads stdin).
func collectCIDRs(args []string, input string) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}
	if input == "" {
		return nil, fmt.Errorf("no CIDRs given: pass them as arguments or via --input")
	}

	var r io.Reader = os.Stdin
	if input != "-" {
		f, err := os.Open(input)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}

	var cidrs []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		cidrs = append(cidrs, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return cidrs, nil
}

var summarizeCmd = &cobra.Command{
	Use:   "summarize [cidr...]",
	Short: "Reduce a CIDR list to its minimal equivalent set",
	RunE: func(cmd *cobra.Command, args []string) error {
		cidrs, err := collectCIDRs(args, summarizeInput)
		if err != nil {
			return err
		}

		family := subnet.V4
		if len(cidrs) > 0 {
			family = subnet.DetectFamily(cidrs[0])
		}
		res, err := subnet.Summarize(family, cidrs)
		if err != nil {
			return err
		}
		return writeResult(render.NewSummaryView(res))
	},
}

var batchCmd = &cobra.Command{
	Use:   "batch [cidr...]",
	Short: "Calculate subnet details for many CIDRs at once",
	RunE: func(cmd *cobra.Command, args []string) error {
		cidrs, err := collectCIDRs(args, batchInput)
		if err != nil {
			return err
		}

		res, err := subnet.ProcessBatch(cidrs)
		if err != nil {
			return err
		}
		return writeResult(render.NewBatchView(res))
	},
}

func init() {
	summarizeCmd.Flags().StringVarP(&summarizeInput, "input", "i", "", "Read CIDRs from file, one per line (- for stdin)")
	batchCmd.Flags().StringVarP(&batchInput, "input", "i", "", "Read CIDRs from file, one per line (- for stdin)")

	rootCmd.AddCommand(summarizeCmd)
	rootCmd.AddCommand(batchCmd)
}
