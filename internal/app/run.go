// Package app wires configuration, logging, and the HTTP API into a
// runnable server.
package app

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os"
	"strconv"
	"time"

	apihttp "github.com/Flarenzy/ipcalc/internal/http"
	"github.com/Flarenzy/ipcalc/internal/logger"
)

type Config struct {
	Address      string
	Port         string
	LogLevel     string
	LogJSON      bool
	LogFile      string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

func LoadConfig() Config {
	cfg := Config{
		Address:      os.Getenv("ADDRESS"),
		Port:         os.Getenv("PORT"),
		LogLevel:     os.Getenv("LOG_LEVEL"),
		LogFile:      os.Getenv("LOG_FILE"),
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	}

	if cfg.Address == "" {
		cfg.Address = "127.0.0.1"
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if v, err := strconv.ParseBool(os.Getenv("LOG_JSON")); err == nil {
		cfg.LogJSON = v
	}
	return cfg
}

func Run(ctx context.Context, cfg Config) error {
	listener, err := net.Listen("tcp", fmt.Sprintf("%s:%s", cfg.Address, cfg.Port))
	if err != nil {
		return err
	}
	return Serve(ctx, cfg, listener)
}

// Serve runs the API on an existing listener until ctx is cancelled. The
// listener is owned by the server once passed in.
func Serve(ctx context.Context, cfg Config, listener net.Listener) error {
	log, err := logger.New(cfg.LogLevel, cfg.LogJSON, cfg.LogFile)
	if err != nil {
		return err
	}

	api := apihttp.NewAPI(log)

	server := &http.Server{
		Handler:      api.Router(),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	go func() {
		log.Info().Str("addr", listener.Addr().String()).Msg("serving")
		if err := server.Serve(listener); err != nil && err != http.ErrServerClosed {
			log.Error().Err(err).Msg("serve")
		}
	}()

	<-ctx.Done()

	log.Info().Msg("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	return server.Shutdown(shutdownCtx)
}
