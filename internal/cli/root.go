// Package cli implements the ipcalc command tree.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Flarenzy/ipcalc/internal/render"
	"github.com/Flarenzy/ipcalc/internal/version"
)

var rootCmd = &cobra.Command{
	Use:           version.Name,
	Short:         "IP subnet calculator for IPv4 and IPv6",
	Version:       version.Version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

var (
	formatName string
	outputPath string
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&formatName, "format", "f", "json", "Output format (json, text, yaml or csv)")
	rootCmd.PersistentFlags().StringVarP(&outputPath, "output", "o", "", "Output file path (prints to stdout if not specified)")
}

// Execute runs the command tree and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// writeResult renders the view per the global flags and prints it unless an
// output file was requested.
func writeResult(view any) error {
	format, err := render.ParseFormat(formatName)
	if err != nil {
		return err
	}
	out, err := render.NewWriter(format, outputPath).Render(view)
	if err != nil {
		return err
	}
	if outputPath == "" {
		fmt.Println(out)
	}
	return nil
}
