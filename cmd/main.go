package main

import (
	"fmt"
	"os"

	"bookingcare-service/cmd/bootstrap"
	"bookingcare-service/config"
	"bookingcare-service/internal/infrastructure/database"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// actions are the operations the CLI dispatches to
type actions struct {
	serve       func(configPath string) error
	migrateUp   func(configPath string) error
	migrateDown func(configPath string, steps int) error
}

func defaultActions() actions {
	return actions{
		serve:       runServe,
		migrateUp:   runMigrateUp,
		migrateDown: runMigrateDown,
	}
}

func main() {
	if err := newRootCmd(defaultActions()).Execute(); err != nil {
		logrus.Error(err)
		os.Exit(1)
	}
}

func newRootCmd(act actions) *cobra.Command {
	var configPath string

	rootCmd := &cobra.Command{
		Use:   "bookingcare",
		Short: "Doctor profile and schedule service",
		// serve is the default action
		RunE: func(cmd *cobra.Command, args []string) error {
			return act.serve(configPath)
		},
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVar(&configPath, "config", ".env", "Path to the env config file")

	rootCmd.AddCommand(serveCmd(&configPath, act))
	rootCmd.AddCommand(migrateCmd(&configPath, act))

	return rootCmd
}

func serveCmd(configPath *string, act actions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return act.serve(*configPath)
		},
	}
}

func migrateCmd(configPath *string, act actions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the database schema",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return act.migrateUp(*configPath)
		},
	})

	var steps int
	downCmd := &cobra.Command{
		Use:   "down",
		Short: "Revert migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if steps < 0 {
				return fmt.Errorf("--steps must not be negative, got %d", steps)
			}
			return act.migrateDown(*configPath, steps)
		},
	}
	downCmd.Flags().IntVar(&steps, "steps", 1, "Number of migrations to revert (0 reverts all)")
	cmd.AddCommand(downCmd)

	return cmd
}

func runServe(configPath string) error {
	// Initialize application with all dependencies
	app, err := bootstrap.New(configPath)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	// Run the application
	app.Run()
	return nil
}

func runMigrateUp(configPath string) error {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return err
	}
	return database.MigrateUp(cfg.DB)
}

func runMigrateDown(configPath string, steps int) error {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return err
	}
	return database.MigrateDown(cfg.DB, steps)
}
