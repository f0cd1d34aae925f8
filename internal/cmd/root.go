package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"loja-service/internal/config"
)

var credFile string

var rootCmd = &cobra.Command{
	Use:   "loja",
	Short: "Loja - REST API for customers, suppliers, products, carts and orders",
	Long: `Loja serves a JSON API over a MySQL database holding the store's
customers, suppliers, products, cart lines and orders.

Credentials are read from a dotenv file (.cred by default) and can be
overridden by environment variables of the same name.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&credFile, "cred", config.DefaultCredFile, "Path of the credential file")
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(credFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	zerolog.SetGlobalLevel(parseLevel(cfg.Log.Level))
	return cfg, nil
}

func parseLevel(lvl string) zerolog.Level {
	level, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(lvl)))
	if err != nil || level == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return level
}
