package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	mcpserver "github.com/Mirakulix/GuSp-Planungs-Assistent/internal/mcp"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server for AI agent integration",
	Long:  `Starts a Model Context Protocol (MCP) server on stdio, exposing the game search, planning, and knowledge tools for AI agents.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := buildServices(cmd.Context())
		if err != nil {
			return err
		}

		// Set version from the cmd package variable.
		mcpserver.Version = Version

		fmt.Fprintf(os.Stderr, "gusp MCP server started on stdio (catalog=%d games)\n", svc.store.Count())

		srv := mcpserver.NewServer(svc.registry)
		return srv.Serve()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
