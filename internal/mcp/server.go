package mcp

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/Mirakulix/GuSp-Planungs-Assistent/internal/tools"
)

// Version is set via ldflags at build time.
var Version = "dev"

// Server wraps an MCP server exposing the planning assistant tools over
// stdio, so editor agents can use the same tool surface as the chat
// model.
type Server struct {
	registry *tools.Registry
	mcp      *server.MCPServer
}

// NewServer creates the MCP server over the shared tool registry.
func NewServer(registry *tools.Registry) *Server {
	s := &Server{registry: registry}

	s.mcp = server.NewMCPServer(
		"gusp-assistent",
		Version,
		server.WithToolCapabilities(false),
	)

	s.registerTools()

	return s
}

// registerTools adds all tool definitions and their handlers to the MCP server.
func (s *Server) registerTools() {
	s.mcp.AddTool(searchGamesTool, s.handleSearchGames)
	s.mcp.AddTool(createHeimstundePlanTool, s.handleCreateHeimstundePlan)
	s.mcp.AddTool(pfadfinderKnowledgeTool, s.handlePfadfinderKnowledge)
}

// Serve starts the MCP server on stdio. Stdout is used for MCP protocol
// messages; all logging must go to stderr.
func (s *Server) Serve() error {
	return server.ServeStdio(s.mcp)
}
