package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gardaplan/gardaplan/cmd/cli/commands"
	"github.com/gardaplan/gardaplan/internal/config"
	"github.com/gardaplan/gardaplan/pkg/postgres"
	"github.com/gardaplan/gardaplan/pkg/utils/logging"
)

var (
	env string
	app *commands.AppContext
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "gardaplan",
		Short: "Gardaplan CLI - Manage hospital guard schedules",
		Long:  `A CLI tool for generating and publishing hospital guard (garda) schedules.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initApp()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if app != nil && app.Logger != nil {
				app.Logger.Sync()
			}
			if app != nil && app.Database != nil {
				app.Database.Close()
			}
		},
	}

	rootCmd.PersistentFlags().StringVarP(&env, "env", "e", "", "Environment (required: test, prod, etc.)")
	rootCmd.MarkPersistentFlagRequired("env")

	rootCmd.AddCommand(commands.GenerateScheduleCmd(appRef()))
	rootCmd.AddCommand(commands.QuotasCmd(appRef()))
	rootCmd.AddCommand(commands.ListStaffCmd(appRef()))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// appRef returns the shared AppContext, created empty before initApp fills it
func appRef() *commands.AppContext {
	if app == nil {
		app = &commands.AppContext{Ctx: context.Background()}
	}
	return app
}

// initApp sets up the logger, configuration, and database connection
func initApp() error {
	a := appRef()

	var err error
	a.Logger, err = logging.InitLogger(env)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	a.Logger.Info("Starting application", zap.String("environment", env))

	a.Logger.Info("Loading configuration")
	a.Cfg, err = config.LoadWithEnv(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	a.Logger.Debug("Configuration loaded", zap.Int("hospitals", len(a.Cfg.Hospitals)))

	a.Logger.Info("Connecting to database")
	a.Database, err = postgres.NewDB(a.Ctx, a.Cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	a.Logger.Info("Running database migrations")
	if err := a.Database.RunMigrations(a.Ctx); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	a.Logger.Info("Database initialized successfully")

	return nil
}
