package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/Mirakulix/GuSp-Planungs-Assistent/internal/server"
)

var serverPort int

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the HTTP API server",
	Long:  `Starts the planning assistant HTTP server with the chat, game search, and Heimstunde planning APIs.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := buildServices(cmd.Context())
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("port") {
			svc.cfg.Port = serverPort
		}

		srv := server.New(svc.cfg, svc.store, svc.gateway, svc.search, svc.orchestrator, svc.logger)

		// Graceful shutdown.
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		go func() {
			<-ctx.Done()
			fmt.Fprintln(os.Stderr, "\nShutting down server...")
			srv.Shutdown(context.Background())
		}()

		svc.logger.Info().
			Str("version", Version).
			Int("port", svc.cfg.Port).
			Int("catalog_size", svc.store.Count()).
			Bool("azure_openai", svc.gateway.IsAvailable()).
			Msg("gusp server starting")

		return srv.Start()
	},
}

func init() {
	serverCmd.Flags().IntVar(&serverPort, "port", 8000, "Port to listen on")
	rootCmd.AddCommand(serverCmd)
}
