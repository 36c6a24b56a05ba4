package llm

// Role represents the role of a message sender in a conversation.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleTool      Role = "tool"
)

// Message represents a single turn in a conversation transcript.
// A tool-role message carries the serialized tool result; an assistant
// message may carry the tool call it requested instead of content.
type Message struct {
	Role       Role
	Content    string
	ToolCall   *ToolCall // set on the synthetic assistant turn recording a call
	ToolCallID string    // set on tool-role messages
	Name       string    // tool name on tool-role messages
}

// ToolCall is the model's structured request to invoke a named tool.
// Arguments is the raw JSON payload as emitted by the model; it is
// parsed by the dispatcher, never here.
type ToolCall struct {
	ID        string
	Name      string
	Arguments string
}

// ToolDefinition describes a callable tool in the schema form passed to
// the completion API.
type ToolDefinition struct {
	Name        string
	Description string
	Parameters  map[string]any
}

// Usage holds token counters for a completion. Zero-filled when the
// provider does not report them.
type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// CompletionRequest contains the parameters for a completion call.
// A nil Temperature means the service default; an explicit 0 requests
// deterministic sampling.
type CompletionRequest struct {
	Messages    []Message
	Temperature *float32
	MaxTokens   int
	Tools       []ToolDefinition
}

// CompletionResult is the outcome of Complete. It is always populated:
// when the remote capability is absent or fails, IsFallback is true and
// Content carries a locally generated reply.
type CompletionResult struct {
	Content      string
	ToolCall     *ToolCall
	Usage        Usage
	FinishReason string
	IsFallback   bool
}
