// Package cli provides the command-line interface for aldus.
package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/aldus-browser/aldus/internal/config"
	"github.com/aldus-browser/aldus/internal/extension"
	"github.com/aldus-browser/aldus/internal/logging"
	"github.com/aldus-browser/aldus/internal/persistence/sqlite"
	"github.com/aldus-browser/aldus/pkg/extview"
)

// NewRootCmd creates the root command for aldus.
func NewRootCmd(version, commit, buildDate string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "aldus",
		Short: "Extension view host service",
		Long:  `Hosts extension UI surfaces (popups, dialogs, infobars) in native views and routes their keyboard and navigation events.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Start the view host service",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runService(cmd.Context())
		},
	}

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Printf("aldus %s\n", version)
			fmt.Printf("commit: %s\n", commit)
			fmt.Printf("built: %s\n", buildDate)
		},
	}

	schemaCmd := &cobra.Command{
		Use:   "schema",
		Short: "Generate the JSON schema for config.toml",
		RunE: func(_ *cobra.Command, _ []string) error {
			path, err := config.GenerateSchemaFile()
			if err != nil {
				return err
			}
			fmt.Println("Generated JSON schema:", path)
			return nil
		},
	}

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration utilities",
	}
	configCmd.AddCommand(schemaCmd)

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(configCmd)
	return rootCmd
}

// runService wires config, logging, storage, and the host registry, then
// blocks until SIGINT or SIGTERM.
func runService(parent context.Context) error {
	mgr, err := config.NewManager()
	if err != nil {
		return fmt.Errorf("failed to create config manager: %w", err)
	}
	if err := mgr.Load(); err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	cfg := mgr.Get()

	logCfg := logging.DefaultConfig()
	if level, ok := logging.ParseLevel(cfg.Logging.Level); ok {
		logCfg.Level = level
	}
	logCfg.Format = cfg.Logging.Format
	logger := logging.New(logCfg)
	ctx := logging.WithContext(parent, logger)
	log := logging.FromContext(ctx)

	if err := mgr.Watch(); err != nil {
		log.Warn().Err(err).Msg("config watching disabled")
	}
	mgr.OnChange(func(c *config.Config) {
		log.Info().Str("level", c.Logging.Level).Msg("configuration reloaded")
	})

	dbPath, err := cfg.DatabasePath()
	if err != nil {
		return fmt.Errorf("failed to resolve database path: %w", err)
	}
	db, err := sqlite.NewConnection(ctx, dbPath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer func() {
		if closeErr := sqlite.Close(db); closeErr != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to close database: %v\n", closeErr)
		}
	}()

	var geometry extension.GeometryStore
	if cfg.Popup.RememberSize {
		geometry = sqlite.NewGeometryRepository(db)
	}
	hosts := extension.NewService(extview.Toolkit(cfg.Toolkit), geometry)

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		<-gctx.Done()
		log.Info().Int("open_hosts", hosts.Len()).Msg("shutting down")
		hosts.CloseAll(context.WithoutCancel(gctx))
		return nil
	})

	log.Info().Str("db", dbPath).Msg("aldus running")
	return g.Wait()
}
