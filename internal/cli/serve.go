package cli

import (
	"context"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/Flarenzy/ipcalc/internal/app"
)

var (
	serveAddress string
	servePort    string
	serveLogLvl  string
	serveLogFile string
	serveLogJSON bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		cfg := app.LoadConfig()
		if cmd.Flags().Changed("address") {
			cfg.Address = serveAddress
		}
		if cmd.Flags().Changed("port") {
			cfg.Port = servePort
		}
		if cmd.Flags().Changed("log-level") {
			cfg.LogLevel = serveLogLvl
		}
		if cmd.Flags().Changed("log-file") {
			cfg.LogFile = serveLogFile
		}
		if cmd.Flags().Changed("log-json") {
			cfg.LogJSON = serveLogJSON
		}

		return app.Run(ctx, cfg)
	},
}

func init() {
	serveCmd.Flags().StringVarP(&serveAddress, "address", "a", "127.0.0.1", "Address to bind to")
	serveCmd.Flags().StringVarP(&servePort, "port", "p", "8080", "Port to listen on")
	serveCmd.Flags().StringVar(&serveLogLvl, "log-level", "info", "Log level (debug, info, warn, error)")
	serveCmd.Flags().StringVar(&serveLogFile, "log-file", "", "Log to file instead of stderr")
	serveCmd.Flags().BoolVar(&serveLogJSON, "log-json", false, "Output logs in JSON format")

	rootCmd.AddCommand(serveCmd)
}
