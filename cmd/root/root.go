// Package root contains the root command for the application
package root

import (
	"rpires/nf-control/internal/config"
	"rpires/nf-control/internal/inference"
	"rpires/nf-control/internal/store"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	// Log is the shared logger instance for commands
	Log = logrus.New()

	// Cfg is the resolved application configuration, available to all
	// subcommands after PersistentPreRunE has run.
	Cfg *config.Config

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "nf-control",
		Short: "A CLI tool to register fiscal records (Notas Fiscais) in a control worksheet.",
		Long: `nf-control keeps a control worksheet of fiscal records (Notas Fiscais).
It normalizes and validates each entry, infers the transaction type and the
responsible department from the CFOP, and can forward free-text tax questions
to a locally hosted language model.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to nf-control!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Initialize and configure logging
			config.LoadEnv()
			Log = config.ConfigureLogging()

			cfg, err := config.InitializeConfig()
			if err != nil {
				return err
			}

			// Flags given on the command line win over env and config file.
			if flag := cmd.Flags().Lookup("file"); flag != nil && flag.Changed {
				cfg.Worksheet.Path = flag.Value.String()
			}
			if flag := cmd.Flags().Lookup("endpoint"); flag != nil && flag.Changed {
				cfg.Advisor.Endpoint = flag.Value.String()
			}
			if flag := cmd.Flags().Lookup("model"); flag != nil && flag.Changed {
				cfg.Advisor.Model = flag.Value.String()
			}
			Cfg = cfg

			// Set the configured logger for the packages that log
			store.SetLogger(Log)
			inference.SetLogger(Log)
			return nil
		},
	}
)

// Init initializes the root command and all persistent flags
func Init() {
	Cmd.PersistentFlags().StringP("file", "f", "", "Worksheet file path (overrides configuration)")
	Cmd.PersistentFlags().String("endpoint", "", "Advisory endpoint URL (overrides configuration)")
	Cmd.PersistentFlags().String("model", "", "Advisory model name (overrides configuration)")
}
