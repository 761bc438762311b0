package commands

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/cardsight/cardexport/internal/api"
	"github.com/cardsight/cardexport/internal/config"
)

func newServeCommand(cfg **config.Config, log *zerolog.Logger) *cobra.Command {
	var portFlag int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the conversion HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			port := (*cfg).Server.Port
			if cmd.Flags().Changed("port") {
				port = portFlag
			}

			app := api.New(*log, (*cfg).Server.StaticDir)

			log.Info().Int("port", port).Msg("starting server")
			return app.Listen(fmt.Sprintf(":%d", port))
		},
	}

	cmd.Flags().IntVarP(&portFlag, "port", "p", 8080, "listen port")

	return cmd
}
