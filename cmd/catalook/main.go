// Command catalook is a command line front end for the catalook lookup
// engine: it loads a product catalog from CSV/XLSX files and answers
// barcode, name, and scan queries against it.
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/hanbitlee/catalook"
	"github.com/hanbitlee/catalook/blobstore"
)

func main() {
	if err := rootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func rootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "catalook",
		Short:         "In-memory product catalog lookup",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "Config file (default: ./catalook.yaml)")
	pf.StringSliceP("catalog", "c", nil, "Catalog file(s), CSV or XLSX; merged in order")
	pf.String("store", ".", "Directory the catalog files are read from")
	pf.Int("throttle", 0, "Catalog read rate limit in bytes/sec (0 = unlimited)")
	pf.String("log-format", "text", "Log format: text or json")
	pf.BoolP("verbose", "v", false, "Enable debug logging")

	if err := viper.BindPFlags(pf); err != nil {
		panic(err)
	}

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		return loadConfig(viper.GetString("config"))
	}

	rootCmd.AddCommand(
		loadCommand(),
		searchCommand(),
		listCommand(),
		scanCommand(),
		exportCommand(),
	)

	return rootCmd
}

func loadConfig(path string) error {
	if path != "" {
		viper.SetConfigFile(path)
	} else {
		viper.SetConfigName("catalook")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
	}
	viper.SetEnvPrefix("CATALOOK")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path == "" && errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}
	return nil
}

func newLogger() *catalook.Logger {
	level := slog.LevelInfo
	if viper.GetBool("verbose") {
		level = slog.LevelDebug
	}
	if viper.GetString("log-format") == "json" {
		return catalook.NewJSONLogger(level)
	}
	return catalook.NewTextLogger(level)
}

func newStore() blobstore.Store {
	var store blobstore.Store = blobstore.NewLocal(viper.GetString("store"))
	if bps := viper.GetInt("throttle"); bps > 0 {
		store = blobstore.Throttled(store, bps)
	}
	return store
}
