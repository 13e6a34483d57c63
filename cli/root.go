// Package cli is the command line entry point: serve the HTTP API, run the
// interactive shell, or print the catalog.
package cli

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cherryprincess/shopping-cart-APP/config"
	"github.com/cherryprincess/shopping-cart-APP/logger"
)

type rootOptions struct {
	configPath    string
	logLevel      string
	development   bool
	catalogSource string
	catalogFile   string
	currency      string
}

func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:          "cart",
		Short:        "Shopping cart service",
		SilenceUsage: true,
	}

	flags := cmd.PersistentFlags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "path to YAML config file")
	flags.StringVar(&opts.logLevel, "log-level", "", "log level (debug, info, warn, error)")
	flags.BoolVar(&opts.development, "dev", false, "human-readable console logging")
	flags.StringVar(&opts.catalogSource, "catalog-source", "", "catalog source: static, yaml or postgres")
	flags.StringVar(&opts.catalogFile, "catalog-file", "", "YAML catalog file for --catalog-source=yaml")
	flags.StringVar(&opts.currency, "currency", "", "cart currency, lower-case ISO code")

	cmd.AddCommand(
		newServeCmd(opts),
		newShellCmd(opts),
		newProductsCmd(opts),
	)
	return cmd
}

// load reads the config file and applies the flags the user set on top of it.
func (o *rootOptions) load(cmd *cobra.Command) (config.Config, *zap.Logger, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return config.Config{}, nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.Log.Level = o.logLevel
	}
	if flags.Changed("dev") {
		cfg.Log.Development = o.development
	}
	if flags.Changed("catalog-source") {
		cfg.Catalog.Source = o.catalogSource
	}
	if flags.Changed("catalog-file") {
		cfg.Catalog.File = o.catalogFile
	}
	if flags.Changed("currency") {
		cfg.Cart.Currency = o.currency
	}
	if err = cfg.Validate(); err != nil {
		return config.Config{}, nil, err
	}

	log, err := logger.New(cfg.Log.Level, cfg.Log.Development)
	if err != nil {
		return config.Config{}, nil, err
	}
	return cfg, log, nil
}
