package cmd

import (
	"fmt"
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/chunghha/tui-sudoku/internal/server"
)

var (
	serveAddr     string
	serveLogLevel string
)

func init() {
	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve puzzles over HTTP and websockets",
		Long: `Start an HTTP server exposing the puzzle engine.

Endpoints:
  POST /api/puzzle  {"difficulty":"easy","seed":42}   build a new puzzle
  POST /api/rate    {"board":"..81 cells.."}          analyze a puzzle
  GET  /ws/play     ?difficulty=easy&seed=42          interactive session`,
		RunE: runServe,
	}

	serveCmd.Flags().StringVar(&serveAddr, "addr", ":8080", "Listen address")
	serveCmd.Flags().StringVar(&serveLogLevel, "log-level", "info", "Log level: debug, info, warn, or error")

	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	level, err := logrus.ParseLevel(serveLogLevel)
	if err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	log := logrus.New()
	log.SetLevel(level)

	srv := server.New(log)
	log.WithField("addr", serveAddr).Info("listening")
	if err := http.ListenAndServe(serveAddr, srv.Handler()); err != nil {
		return fmt.Errorf("server stopped: %w", err)
	}
	return nil
}
