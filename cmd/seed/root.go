package main

import (
	"context"
	"fmt"

	"github.com/marvik-ai/success-orchestry-api/internal/app"
	"github.com/marvik-ai/success-orchestry-api/internal/config"
	"github.com/marvik-ai/success-orchestry-api/internal/seed"
	"github.com/marvik-ai/success-orchestry-api/internal/shared/apperror"
	"github.com/marvik-ai/success-orchestry-api/internal/shared/connection"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const defaultQty = 50

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "seed",
		Short:        "Populate the database with sample employees",
		SilenceUsage: true,
	}
	cmd.AddCommand(newEmployeesCmd(), newAllCmd())
	return cmd
}

func newEmployeesCmd() *cobra.Command {
	var qty int
	cmd := &cobra.Command{
		Use:   "employees",
		Short: "Create employees with personal info and a current financial record",
		RunE: func(cmd *cobra.Command, args []string) error {
			if qty <= 0 {
				return fmt.Errorf("--qty must be positive, got %d", qty)
			}
			return run(cmd.Context(), qty)
		},
	}
	cmd.Flags().IntVar(&qty, "qty", defaultQty, "number of employees to create")
	return cmd
}

func newAllCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "all",
		Short: "Run every seeder with default quantities",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), defaultQty)
		},
	}
}

func run(ctx context.Context, qty int) error {
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger, err := zap.NewDevelopment()
	if err != nil {
		return err
	}
	defer logger.Sync()

	apperror.Init()

	db, err := connection.ConnectGORMWithRetry(cfg.Database, logger)
	if err != nil {
		return err
	}
	if sqlDB, err := db.DB(); err == nil {
		defer sqlDB.Close()
	}

	services, err := app.NewServices(db, logger)
	if err != nil {
		return err
	}

	created, err := seed.NewSeeder(services.Employee, services.Financial, nil, logger).Employees(ctx, qty)
	logger.Info("seed finished", zap.Int("created", created), zap.Int("requested", qty))
	return err
}
