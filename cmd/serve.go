package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/bnema/terabox-cookie-cli/internal/adapters/httpapi"
	"github.com/spf13/cobra"
)

func newServeCmd(state *cliState) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app := state.app
			server := newHTTPServer(app)

			if addr == "" {
				addr = app.cfg.Server.Addr
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return server.Serve(ctx, addr, app.cfg.Server.ShutdownTimeout)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from server.addr)")

	return cmd
}

func newHTTPServer(app *app) *httpapi.Server {
	return httpapi.NewServer(app.service, app.regenerator(false), httpapi.Options{
		RegenerateTimeout: app.cfg.Server.RegenerateTimeout,
		RateLimit:         app.cfg.Server.RateLimit,
		RateBurst:         app.cfg.Server.RateBurst,
		CORSOrigins:       app.cfg.Server.CORSOrigins,
		Recorder:          app.recorder,
		Gatherer:          app.registry,
		Logger:            app.logger.Named("http"),
	})
}
