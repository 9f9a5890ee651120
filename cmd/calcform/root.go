package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-calcform/internal/config"
	"github.com/goliatone/go-calcform/internal/logging"
	"github.com/goliatone/go-calcform/pkg/calculator"
	"github.com/goliatone/go-calcform/pkg/i18n"
)

// app carries the resolved configuration into subcommands.
type app struct {
	cfgFile string
	cfg     config.Config
	catalog *i18n.Catalog
	calc    *calculator.Calculator
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "calcform",
		Short:         "Multiply two numbers through a web form, a prompt or the command line",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (default: ./calcform.yaml)")
	flags.String("log-level", "info", "log level: debug, info, warn, error")
	flags.String("parsing", "lenient", "number parsing: lenient (leading numeric prefix) or strict")
	flags.String("language", "en", "message language")

	root.AddCommand(newServeCmd(a), newPromptCmd(a), newMultiplyCmd(a))
	return root
}

func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.cfgFile, cmd.Flags())
	if err != nil {
		return err
	}
	a.cfg = cfg

	if err := logging.SetLevel(cfg.Log.Level); err != nil {
		return fmt.Errorf("log level: %w", err)
	}

	mode, err := calculator.ParseMode(cfg.Parsing)
	if err != nil {
		return err
	}

	catalog, err := i18n.New(cfg.Language)
	if err != nil {
		return err
	}
	a.catalog = catalog
	a.calc = calculator.New(
		calculator.WithMode(mode),
		calculator.WithMessages(catalog.Messages()),
		calculator.WithLogger(logging.L),
	)
	logging.L.Debug("configuration loaded", "parsing", mode, "language", cfg.Language)
	return nil
}
