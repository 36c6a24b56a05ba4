package llm

import (
	"context"
	"math"

	"github.com/rs/zerolog"
	openai "github.com/sashabaranov/go-openai"

	"github.com/Mirakulix/GuSp-Planungs-Assistent/internal/config"
)

const defaultTemperature = 0.7

// Gateway wraps the Azure OpenAI chat-completion and embedding
// deployments. It is the single place that knows whether a remote
// capability is configured; callers never inspect configuration
// themselves. Complete and Embed degrade instead of failing: a remote
// error produces a fallback reply or a zero vector, never an error to
// the caller.
type Gateway struct {
	client         *openai.Client
	chatDeployment string
	embDeployment  string
	dimensions     int
	logger         zerolog.Logger
}

// NewGateway creates a Gateway from configuration. When the Azure
// endpoint or API key are absent the Gateway stays unconfigured and
// serves fallback responses and zero vectors.
func NewGateway(cfg *config.Config, logger zerolog.Logger) *Gateway {
	g := &Gateway{
		chatDeployment: cfg.ChatDeployment,
		embDeployment:  cfg.EmbeddingDeployment,
		dimensions:     cfg.EmbeddingDimensions,
		logger:         logger,
	}

	if !cfg.AzureConfigured() {
		logger.Warn().
			Bool("endpoint_configured", cfg.AzureOpenAIEndpoint != "").
			Bool("key_configured", cfg.AzureOpenAIAPIKey != "").
			Msg("Azure OpenAI not configured, chat runs in fallback mode")
		return g
	}

	clientCfg := openai.DefaultAzureConfig(cfg.AzureOpenAIAPIKey, cfg.AzureOpenAIEndpoint)
	// Deployment names are passed through verbatim; the config already
	// holds deployment names, not model names.
	clientCfg.AzureModelMapperFunc = func(model string) string { return model }
	g.client = openai.NewClientWithConfig(clientCfg)

	logger.Info().Str("chat_deployment", cfg.ChatDeployment).
		Str("embedding_deployment", cfg.EmbeddingDeployment).
		Msg("Azure OpenAI client initialized")
	return g
}

// IsAvailable reports whether a remote capability is configured. It
// deliberately does not reflect the success of the last call.
func (g *Gateway) IsAvailable() bool {
	return g.client != nil
}

// Dimensions returns the fixed embedding vector length.
func (g *Gateway) Dimensions() int {
	return g.dimensions
}

// Complete generates a chat completion for the given transcript. It
// never returns an error: on a missing client or a remote failure it
// returns a fallback result derived from the last user message.
func (g *Gateway) Complete(ctx context.Context, req CompletionRequest) *CompletionResult {
	if g.client == nil {
		return g.fallback(req, "not configured")
	}

	temperature := float32(defaultTemperature)
	if req.Temperature != nil {
		temperature = *req.Temperature
		if temperature == 0 {
			// The wire encoding drops zero-valued fields, so an explicit
			// 0 is sent as the smallest positive value instead.
			temperature = math.SmallestNonzeroFloat32
		}
	}

	apiReq := openai.ChatCompletionRequest{
		Model:       g.chatDeployment,
		Messages:    toAPIMessages(req.Messages),
		Temperature: temperature,
	}
	if req.MaxTokens > 0 {
		apiReq.MaxTokens = req.MaxTokens
	}
	if len(req.Tools) > 0 {
		apiReq.Tools = toAPITools(req.Tools)
		apiReq.ToolChoice = "auto"
	}

	g.logger.Debug().
		Str("deployment", g.chatDeployment).
		Int("messages", len(req.Messages)).
		Int("tools", len(req.Tools)).
		Msg("sending chat completion request")

	resp, err := g.client.CreateChatCompletion(ctx, apiReq)
	if err != nil {
		g.logger.Error().Err(err).Msg("chat completion failed")
		return g.fallback(req, err.Error())
	}

	result := &CompletionResult{
		Usage: Usage{
			PromptTokens:     resp.Usage.PromptTokens,
			CompletionTokens: resp.Usage.CompletionTokens,
			TotalTokens:      resp.Usage.TotalTokens,
		},
	}

	if len(resp.Choices) > 0 {
		choice := resp.Choices[0]
		result.Content = choice.Message.Content
		result.FinishReason = string(choice.FinishReason)
		if len(choice.Message.ToolCalls) > 0 {
			tc := choice.Message.ToolCalls[0]
			result.ToolCall = &ToolCall{
				ID:        tc.ID,
				Name:      tc.Function.Name,
				Arguments: tc.Function.Arguments,
			}
		}
	}

	g.logger.Debug().
		Int("total_tokens", result.Usage.TotalTokens).
		Str("finish_reason", result.FinishReason).
		Bool("tool_call", result.ToolCall != nil).
		Msg("chat completion succeeded")

	return result
}

// Embed generates a fixed-length embedding vector for the given text.
// On failure or when unconfigured it returns an all-zero vector of the
// same length; callers treat that as "no signal", not a valid embedding.
func (g *Gateway) Embed(ctx context.Context, text string) []float32 {
	if g.client == nil {
		return make([]float32, g.dimensions)
	}

	resp, err := g.client.CreateEmbeddings(ctx, openai.EmbeddingRequest{
		Input: []string{text},
		Model: openai.EmbeddingModel(g.embDeployment),
	})
	if err != nil {
		g.logger.Error().Err(err).Int("text_length", len(text)).Msg("embedding request failed")
		return make([]float32, g.dimensions)
	}
	if len(resp.Data) == 0 || len(resp.Data[0].Embedding) == 0 {
		g.logger.Error().Msg("embedding response was empty")
		return make([]float32, g.dimensions)
	}

	return resp.Data[0].Embedding
}

// fallback builds the degraded completion result from the last user
// message in the request.
func (g *Gateway) fallback(req CompletionRequest, reason string) *CompletionResult {
	lastUser := ""
	for i := len(req.Messages) - 1; i >= 0; i-- {
		if req.Messages[i].Role == RoleUser {
			lastUser = req.Messages[i].Content
			break
		}
	}
	g.logger.Debug().Str("reason", reason).Msg("serving fallback completion")
	return fallbackResult(lastUser)
}

func toAPIMessages(messages []Message) []openai.ChatCompletionMessage {
	out := make([]openai.ChatCompletionMessage, 0, len(messages))
	for _, m := range messages {
		apiMsg := openai.ChatCompletionMessage{
			Role:    string(m.Role),
			Content: m.Content,
		}
		if m.ToolCall != nil {
			apiMsg.ToolCalls = []openai.ToolCall{{
				ID:   m.ToolCall.ID,
				Type: openai.ToolTypeFunction,
				Function: openai.FunctionCall{
					Name:      m.ToolCall.Name,
					Arguments: m.ToolCall.Arguments,
				},
			}}
		}
		if m.Role == RoleTool {
			apiMsg.ToolCallID = m.ToolCallID
			apiMsg.Name = m.Name
		}
		out = append(out, apiMsg)
	}
	return out
}

func toAPITools(defs []ToolDefinition) []openai.Tool {
	out := make([]openai.Tool, 0, len(defs))
	for _, d := range defs {
		out = append(out, openai.Tool{
			Type: openai.ToolTypeFunction,
			Function: &openai.FunctionDefinition{
				Name:        d.Name,
				Description: d.Description,
				Parameters:  d.Parameters,
			},
		})
	}
	return out
}
