package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/espalier/internal/config"
	"github.com/aretw0/espalier/internal/logging"
)

var rootCmd = &cobra.Command{
	Use:   "espalier",
	Short: "Espalier is a dependency-driven memoizing evaluator",
	Long: `Espalier evaluates recursively-defined problems on an explicit dependency
stack instead of the native call stack: each distinct goal is solved at most
once, and cyclic goal dependencies are detected instead of looping.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("config", "espalier.yaml", "Path to the configuration file")
	rootCmd.PersistentFlags().Bool("verbose", false, "Enable debug logging")
}

// setup loads the configuration and builds the application logger.
func setup(cmd *cobra.Command) (*config.Config, *slog.Logger, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, nil, err
	}

	level := logging.ParseLevel(cfg.Log.Level)
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		level = slog.LevelDebug
	}

	return cfg, logging.New(level), nil
}
