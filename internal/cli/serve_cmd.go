package cli

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/alexanderramin/crewshift/internal/httpapi"
	"github.com/spf13/cobra"
)

func newServeCmd(app *App) *cobra.Command {
	var listen string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			srv := httpapi.NewServer(httpapi.Params{
				Addr:     listen,
				Logger:   app.Logger,
				Shifter:  app.Shifter,
				Projects: app.Projects,
				Manpower: app.Manpower,
				Calendar: app.Calendar,

				CORSOrigins: app.CORSOrigins,
			})
			return srv.Serve(ctx)
		},
	}

	cmd.Flags().StringVar(&listen, "listen", app.Listen, "Listen address")

	return cmd
}
