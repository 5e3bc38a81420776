// Package main is the entry point for the gRPC server and its command line tools
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/duxrumyantsev-ux/DND-Manager-sub000/cmd/server/client"
	"github.com/duxrumyantsev-ux/DND-Manager-sub000/internal/config"
)

var (
	configFile string
	v          = config.New()
	cfg        *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "dnd-manager",
	Short: "D&D 5e character statistics service",
	Long: `dnd-manager stores D&D 5e characters and derives their statistics
(armor class, hit points, skill modifiers, passive perception, spell slots)
over gRPC.`,
	SilenceUsage:      true,
	PersistentPreRunE: loadConfig,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configFile, "config", "", "YAML config file")
	flags.String("log-level", "info", "log level (debug, info, warn, error)")
	flags.String("log-format", "text", "log format (text, json)")
	flags.String("catalog-source", config.CatalogSourceBuiltin, "reference data source (builtin, file, api)")
	flags.String("catalog-dir", "", "directory of catalog YAML files for the file source")

	for key, name := range map[string]string{
		"log.level":      "log-level",
		"log.format":     "log-format",
		"catalog.source": "catalog-source",
		"catalog.dir":    "catalog-dir",
	} {
		if err := v.BindPFlag(key, flags.Lookup(name)); err != nil {
			panic(err)
		}
	}

	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(computeCmd)
	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(repairCmd)
	rootCmd.AddCommand(client.ClientCmd)
}

// loadConfig runs before every command: .env, then the config file, then
// environment and flag overrides
func loadConfig(cmd *cobra.Command, _ []string) error {
	if err := config.LoadDotEnv(); err != nil {
		return err
	}
	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read config file %s: %w", configFile, err)
		}
	}

	loaded, err := config.FromViper(v)
	if err != nil {
		return err
	}
	cfg = loaded

	setupLogging(cmd, cfg.Log)
	return nil
}

func setupLogging(cmd *cobra.Command, logCfg config.LogConfig) {
	opts := &slog.HandlerOptions{Level: logCfg.SlogLevel()}
	var handler slog.Handler
	if logCfg.Format == "json" {
		handler = slog.NewJSONHandler(cmd.ErrOrStderr(), opts)
	} else {
		handler = slog.NewTextHandler(cmd.ErrOrStderr(), opts)
	}
	slog.SetDefault(slog.New(handler))
}
