package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"loja-service/internal/database"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check that the database is reachable with the configured credentials",
	RunE:  runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	cfg.DB.ConnectRetries = 1

	db, err := database.Open(cfg.DB)
	if err != nil {
		return err
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := database.NewGateway(db).Ping(ctx); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Database %s at %s:%d is reachable\n", cfg.DB.Name, cfg.DB.Host, cfg.DB.Port)
	return nil
}
