// Package llm provides the opaque model-adapter boundary: chat(prompt) ->
// text, embed(text) -> vector, and chat_with_tools(...) -> {text |
// tool_calls}. Providers behind it are interchangeable; nothing above the
// Adapter interface knows which one is configured.
package llm

import "context"

// Message is one turn of conversation content fed to a model call.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Tool describes one entry in the tool catalog passed to ChatWithTools.
type Tool struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Parameters  map[string]any `json:"parameters"`
}

// ToolCall is a single function-call the model asked the caller to execute.
type ToolCall struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	Arguments map[string]any `json:"arguments"`
}

// ChatRequest is the input to Chat and ChatWithTools.
type ChatRequest struct {
	Model       string
	Messages    []Message
	Temperature float32
}

// ChatResponse is a plain text completion.
type ChatResponse struct {
	Text      string
	ModelUsed string
}

// ChatToolsResponse is either a final text answer (len(ToolCalls) == 0) or a
// batch of tool calls the caller must execute and feed back.
type ChatToolsResponse struct {
	Text      string
	ToolCalls []ToolCall
	ModelUsed string
}

// Adapter is the opaque model boundary. Implementations (HTTPAdapter,
// StubAdapter) are swapped freely; nothing above this interface knows which
// provider is behind it.
type Adapter interface {
	Chat(ctx context.Context, req ChatRequest) (ChatResponse, error)
	ChatWithTools(ctx context.Context, req ChatRequest, tools []Tool) (ChatToolsResponse, error)
	Embed(ctx context.Context, model, text string) ([]float32, error)
}
