package commands

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/cardsight/cardexport/internal/buildinfo"
	"github.com/cardsight/cardexport/internal/config"
	"github.com/cardsight/cardexport/internal/logger"
)

// NewRootCommand creates the root CLI command with all subcommands
// registered.
func NewRootCommand() *cobra.Command {
	var (
		cfgFile  string
		logLevel string

		cfg *config.Config
		log zerolog.Logger
	)

	rootCmd := &cobra.Command{
		Use:     "cardexport",
		Short:   "Convert card transaction screenshots to CSV",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = config.Load(cfgFile)
			if err != nil {
				return err
			}
			if logLevel != "" {
				cfg.Logging.Level = logLevel
			}
			log = logger.New(cfg.Logging.Level)
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default ./cardexport.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: trace, debug, info, warn, error")

	rootCmd.AddCommand(newConvertCommand(&cfg, &log))
	rootCmd.AddCommand(newServeCommand(&cfg, &log))

	return rootCmd
}
