package chat

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/Mirakulix/GuSp-Planungs-Assistent/internal/llm"
	"github.com/Mirakulix/GuSp-Planungs-Assistent/internal/tools"
)

const (
	apologyMessage = "Entschuldigung, es gab einen technischen Fehler. Bitte versuche es erneut."
	emptyAnswer    = "Keine Antwort erhalten."
)

// transcriptWindow caps how much retained history is sent to the model
// per turn. Retention (Memory's limit) is larger on purpose: history and
// export endpoints keep more context than a single completion sees.
const transcriptWindow = 20

// Request is one inbound user turn.
type Request struct {
	Message        string       `json:"message"`
	ConversationID string       `json:"conversation_id,omitempty"`
	UserContext    *UserContext `json:"user_context,omitempty"`
}

// Response is the outcome of one turn.
type Response struct {
	Message          string            `json:"message"`
	ConversationID   string            `json:"conversation_id"`
	Data             tools.Result      `json:"data,omitempty"`
	SuggestedActions []SuggestedAction `json:"suggested_actions"`
	Timestamp        time.Time         `json:"timestamp"`
	Usage            llm.Usage         `json:"usage"`
	Fallback         bool              `json:"mock_response,omitempty"`
}

// Orchestrator runs the per-turn state machine: assemble the
// transcript, first completion pass with tool schemas, dispatch a
// requested tool call, second pass folding the tool result back in,
// then finalize memory and suggestions.
type Orchestrator struct {
	gateway  *llm.Gateway
	registry *tools.Registry
	memory   *Memory
	logger   zerolog.Logger
}

// NewOrchestrator wires the orchestrator.
func NewOrchestrator(gateway *llm.Gateway, registry *tools.Registry, memory *Memory, logger zerolog.Logger) *Orchestrator {
	return &Orchestrator{
		gateway:  gateway,
		registry: registry,
		memory:   memory,
		logger:   logger,
	}
}

// ProcessMessage handles one user turn. It never fails: any unexpected
// error is converted into a generic apology, and the stored history is
// only updated once a response (real or fallback) exists. A failed tool
// call is not fatal; the second pass lets the model acknowledge it.
func (o *Orchestrator) ProcessMessage(ctx context.Context, req Request) (resp Response) {
	conversationID := req.ConversationID
	if conversationID == "" {
		conversationID = uuid.NewString()
	}

	defer func() {
		if r := recover(); r != nil {
			o.logger.Error().
				Interface("panic", r).
				Str("conversation_id", conversationID).
				Int("message_length", len(req.Message)).
				Msg("unexpected error processing message")
			resp = Response{
				Message:          apologyMessage,
				ConversationID:   conversationID,
				SuggestedActions: []SuggestedAction{},
				Timestamp:        time.Now().UTC(),
			}
		}
	}()

	// Concurrent turns on one conversation id are serialized so the
	// two histories cannot interleave.
	unlock := o.memory.Lock(conversationID)
	defer unlock()

	transcript := o.assembleTranscript(conversationID, req)

	result := o.gateway.Complete(ctx, llm.CompletionRequest{
		Messages: transcript,
		Tools:    o.registry.Definitions(),
	})

	var data tools.Result
	if result.ToolCall != nil {
		firstUsage := result.Usage
		data = o.registry.Dispatch(ctx, *result.ToolCall)

		serialized, err := json.Marshal(data)
		if err != nil {
			serialized = []byte(`{"error":"tool result could not be serialized"}`)
		}
		transcript = append(transcript,
			llm.Message{Role: llm.RoleAssistant, ToolCall: result.ToolCall},
			llm.Message{
				Role:       llm.RoleTool,
				Content:    string(serialized),
				ToolCallID: result.ToolCall.ID,
				Name:       result.ToolCall.Name,
			},
		)

		// No tools on the second pass: force a natural-language
		// synthesis of the tool result.
		result = o.gateway.Complete(ctx, llm.CompletionRequest{Messages: transcript})
		result.Usage = llm.Usage{
			PromptTokens:     firstUsage.PromptTokens + result.Usage.PromptTokens,
			CompletionTokens: firstUsage.CompletionTokens + result.Usage.CompletionTokens,
			TotalTokens:      firstUsage.TotalTokens + result.Usage.TotalTokens,
		}
	}

	answer := result.Content
	if answer == "" {
		answer = emptyAnswer
	}

	o.memory.Append(conversationID,
		llm.Message{Role: llm.RoleUser, Content: req.Message},
		llm.Message{Role: llm.RoleAssistant, Content: answer},
	)

	o.logger.Info().
		Str("conversation_id", conversationID).
		Int("response_length", len(answer)).
		Bool("fallback", result.IsFallback).
		Bool("tool_used", data != nil).
		Msg("chat turn processed")

	return Response{
		Message:          answer,
		ConversationID:   conversationID,
		Data:             data,
		SuggestedActions: suggestedActions(data, req.Message),
		Timestamp:        time.Now().UTC(),
		Usage:            result.Usage,
		Fallback:         result.IsFallback,
	}
}

// assembleTranscript builds system prompt + the trailing history window
// + the new user turn.
func (o *Orchestrator) assembleTranscript(conversationID string, req Request) []llm.Message {
	history := o.memory.History(conversationID)
	if len(history) > transcriptWindow {
		history = history[len(history)-transcriptWindow:]
	}

	transcript := make([]llm.Message, 0, len(history)+2)
	transcript = append(transcript, llm.Message{
		Role:    llm.RoleSystem,
		Content: systemPrompt(req.UserContext),
	})
	transcript = append(transcript, history...)
	transcript = append(transcript, llm.Message{
		Role:    llm.RoleUser,
		Content: req.Message,
	})
	return transcript
}

// History returns the stored messages of a conversation.
func (o *Orchestrator) History(conversationID string) []llm.Message {
	return o.memory.History(conversationID)
}

// DeleteConversation removes a conversation, reporting whether it
// existed.
func (o *Orchestrator) DeleteConversation(conversationID string) bool {
	return o.memory.Delete(conversationID)
}
