package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/Mirakulix/GuSp-Planungs-Assistent/internal/llm"
	"github.com/Mirakulix/GuSp-Planungs-Assistent/internal/tools"
)

// dispatch funnels an MCP call through the shared registry so MCP
// clients and the chat model get identical tool semantics.
func (s *Server) dispatch(ctx context.Context, name string, args map[string]any) (*mcp.CallToolResult, error) {
	raw, err := json.Marshal(args)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
	}

	result := s.registry.Dispatch(ctx, llm.ToolCall{Name: name, Arguments: string(raw)})
	if result.IsError() {
		msg, _ := result["error"].(string)
		return mcp.NewToolResultError(msg), nil
	}

	serialized, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to serialize result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(serialized)), nil
}

func (s *Server) handleSearchGames(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if _, err := request.RequireString("query"); err != nil {
		return mcp.NewToolResultError("missing required parameter: query"), nil
	}
	return s.dispatch(ctx, tools.ToolSearchGames, request.GetArguments())
}

func (s *Server) handleCreateHeimstundePlan(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if request.GetInt("duration", 0) <= 0 {
		return mcp.NewToolResultError("missing required parameter: duration"), nil
	}
	if request.GetInt("participant_count", 0) <= 0 {
		return mcp.NewToolResultError("missing required parameter: participant_count"), nil
	}
	return s.dispatch(ctx, tools.ToolCreateHeimstundePlan, request.GetArguments())
}

func (s *Server) handlePfadfinderKnowledge(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if _, err := request.RequireString("question"); err != nil {
		return mcp.NewToolResultError("missing required parameter: question"), nil
	}
	return s.dispatch(ctx, tools.ToolPfadfinderKnowledge, request.GetArguments())
}
