// Package main is the entry point for the game server
package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"mirkwall-server/internal/server"
	"mirkwall-server/internal/version"
	"mirkwall-server/pkg/logger"
)

var (
	port string
	seed int64
)

var rootCmd = &cobra.Command{
	Use:   "mirkwall-server",
	Short: "Mirkwall roguelike server",
	Long:  `Mirkwall serves turn-based roguelike sessions over WebSocket. Each connection gets its own isolated dungeon.`,
	RunE:  runServer,
}

func init() {
	logger.Init()

	rootCmd.Flags().StringVar(&port, "port", "", "HTTP port (defaults to MW_PORT env or 8080)")
	rootCmd.Flags().Int64Var(&seed, "seed", 0, "World seed for all sessions (0 for random per session)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, args []string) error {
	logger.Log.Info("Starting Mirkwall...")
	logger.Log.Info(version.String())

	if seed != 0 {
		logger.Log.Infof("🎲 Using explicit Master Seed: %d", seed)
	}

	if port == "" {
		port = os.Getenv("MW_PORT")
	}
	if port == "" {
		port = "8080"
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	srv := server.New(port, seed)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Run()
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server start: %w", err)
	case <-stop:
		logger.Log.Info("Shutting down...")
	}

	logger.Log.Info("Done.")
	return nil
}
