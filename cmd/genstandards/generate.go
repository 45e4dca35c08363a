package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/nao1215/genstandards/internal/config"
	"github.com/nao1215/genstandards/internal/log"
	"github.com/nao1215/genstandards/internal/model"
	"github.com/nao1215/genstandards/internal/pipeline"
	"github.com/spf13/cobra"
)

// addGenerateFlags registers the flags of the generate run.
func addGenerateFlags(cmd *cobra.Command) {
	cmd.Flags().String("url", config.DefaultSourceURL,
		"URL of the technical reports index page")
	cmd.Flags().String("cache", config.DefaultCachePath,
		"Cache file for the index page (used instead of fetching when present)")
	cmd.Flags().String("checklist", config.DefaultChecklistPath,
		"Output file for the standards checklist")
	cmd.Flags().String("working-groups", config.DefaultWorkingGroupPath,
		"Output file for the working group list")
	cmd.Flags().Duration("timeout", config.DefaultTimeout,
		"HTTP request timeout (0 for none)")
	cmd.Flags().String("user-agent", config.DefaultUserAgent,
		"User-Agent header sent when fetching")
	cmd.Flags().StringP("config", "c", "",
		"Configuration file (default: .genstandards.yaml or XDG config)")
}

// runGenerateCmd executes the generate run.
func runGenerateCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logger := setupLogger(cmd.ErrOrStderr(), cfg.Verbose, getBoolFlag(cmd, "json-log"))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := runGenerate(ctx, cfg, logger); err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), "Done.")
	return nil
}

// runGenerate runs the default pipeline for cfg.
func runGenerate(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	if cfg.ConfigFilePath != "" {
		logger.Debug("configuration loaded", "path", cfg.ConfigFilePath)
	}

	run := model.NewRun(cfg.SourceURL)
	p := pipeline.DefaultPipeline(cfg, pipeline.WithLogger(logger))
	if err := p.Execute(ctx, run); err != nil {
		return err
	}

	logger.Debug("generation finished",
		"from_cache", run.FromCache,
		"entries", run.Catalog.Len(),
		"empty_sections", len(run.EmptySections),
		"written", run.Written,
	)
	return nil
}

// getBoolFlag retrieves a boolean flag from the command or the root's
// persistent flags.
func getBoolFlag(cmd *cobra.Command, name string) bool {
	v, err := cmd.Flags().GetBool(name)
	if err != nil {
		v, err = cmd.Root().PersistentFlags().GetBool(name)
		if err != nil {
			return false
		}
	}
	return v
}

// buildConfig creates a Config from defaults, the configuration file and
// the command flags. Flags set on the command line win over the file.
func buildConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.NewConfig()
	flags := cmd.Flags()

	var err error
	cfg.ConfigFilePath, err = flags.GetString("config")
	if err != nil {
		return nil, err
	}

	// An explicit path must exist; otherwise a missing file is fine.
	explicitConfigPath := cfg.ConfigFilePath != ""
	configPath := config.FindConfigFile(cfg.ConfigFilePath)
	switch {
	case configPath != "":
		cf, err := config.LoadConfigFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
		if err := cf.ApplyTo(cfg); err != nil {
			return nil, fmt.Errorf("failed to apply config file %s: %w", configPath, err)
		}
		cfg.ConfigFilePath = configPath
	case explicitConfigPath:
		return nil, fmt.Errorf("%w: %s", config.ErrConfigNotFound, cfg.ConfigFilePath)
	}

	stringFlags := []struct {
		name string
		dst  *string
	}{
		{name: "url", dst: &cfg.SourceURL},
		{name: "cache", dst: &cfg.CachePath},
		{name: "checklist", dst: &cfg.ChecklistPath},
		{name: "working-groups", dst: &cfg.WorkingGroupPath},
		{name: "user-agent", dst: &cfg.UserAgent},
	}
	for _, f := range stringFlags {
		if !flags.Changed(f.name) {
			continue
		}
		if *f.dst, err = flags.GetString(f.name); err != nil {
			return nil, err
		}
	}

	if flags.Changed("timeout") {
		if cfg.Timeout, err = flags.GetDuration("timeout"); err != nil {
			return nil, err
		}
	}

	cfg.Verbose = getBoolFlag(cmd, "verbose")

	return cfg, nil
}

// setupLogger creates the structured logger for a run.
func setupLogger(w io.Writer, verbose, jsonFormat bool) *slog.Logger {
	if jsonFormat {
		return log.NewJSONLogger(w, verbose)
	}
	return log.NewLogger(w, verbose)
}
