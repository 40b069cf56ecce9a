// Package toolloop is the bounded agentic tool-calling loop: interleave
// model generations with side-effecting tool invocations under a capability
// whitelist until the model stops asking for tools, or a hard iteration cap
// is hit. The shape is call-with-tools, execute each tool call, append
// results, repeat until a tool-call-free response.
package toolloop

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/codeready-toolchain/alex/pkg/llm"
)

// Handler executes one tool call's decoded arguments and returns a
// JSON-serializable result. A returned error is captured into the tool
// result as {success: false, error} rather than aborting the loop.
type Handler func(ctx context.Context, args map[string]any) (any, error)

// ToolEntry is one catalog entry: schema plus handler.
type ToolEntry struct {
	Name        string
	Description string
	Parameters  map[string]any
	Handler     Handler
}

// Catalog is the whitelisted set of tools available to one loop invocation.
type Catalog []ToolEntry

func (c Catalog) find(name string) *ToolEntry {
	for i := range c {
		if c[i].Name == name {
			return &c[i]
		}
	}
	return nil
}

// schemas converts the catalog into the llm.Adapter's tool-call shape.
func (c Catalog) schemas() []llm.Tool {
	tools := make([]llm.Tool, len(c))
	for i, e := range c {
		tools[i] = llm.Tool{Name: e.Name, Description: e.Description, Parameters: e.Parameters}
	}
	return tools
}

// CallRecord is one tool invocation's audit trail entry: name, decoded
// args, and result or error, in call order.
type CallRecord struct {
	Name   string
	Args   map[string]any
	Result any
	Error  string
}

// toolResultPayload is the JSON-serializable {success, error?} wrapper fed
// back to the model after each call.
type toolResultPayload struct {
	Success bool   `json:"success"`
	Result  any    `json:"result,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Outcome is one full loop run's result.
type Outcome struct {
	Text           string
	Calls          []CallRecord
	IterationsUsed int
	HitMaxIter     bool // true if the cap was hit without a terminal text response
}

// Loop runs the bounded generate-then-execute loop against a single model.
type Loop struct {
	model         llm.Adapter
	maxIterations int
}

// New builds a Loop. maxIterations is the hard cap, default 10; exceeding
// it ends the loop gracefully, not as an error.
func New(model llm.Adapter, maxIterations int) *Loop {
	if maxIterations <= 0 {
		maxIterations = 10
	}
	return &Loop{model: model, maxIterations: maxIterations}
}

// Run drives the loop: call chat_with_tools, execute any tool calls, feed
// results back as a synthetic user message, repeat.
func (l *Loop) Run(ctx context.Context, modelName string, seed []llm.Message, catalog Catalog) (Outcome, error) {
	contents := append([]llm.Message(nil), seed...)
	schemas := catalog.schemas()

	var calls []CallRecord
	var lastText string
	for iter := 0; iter < l.maxIterations; iter++ {
		resp, err := l.model.ChatWithTools(ctx, llm.ChatRequest{Model: modelName, Messages: contents}, schemas)
		if err != nil {
			return Outcome{Text: "", Calls: calls, IterationsUsed: iter + 1}, fmt.Errorf("tool loop: model call: %w", err)
		}

		if len(resp.ToolCalls) == 0 {
			return Outcome{Text: resp.Text, Calls: calls, IterationsUsed: iter + 1}, nil
		}

		lastText = resp.Text
		contents = append(contents, llm.Message{Role: "assistant", Content: resp.Text})

		var resultsText string
		for _, tc := range resp.ToolCalls {
			record, payload := l.execute(ctx, catalog, tc)
			calls = append(calls, record)
			encoded, _ := json.Marshal(payload)
			resultsText += fmt.Sprintf("Tool %s result: %s\n", tc.Name, encoded)
		}
		contents = append(contents, llm.Message{Role: "user", Content: resultsText})
	}

	// Iteration cap exceeded without a terminal response: return whatever
	// text the last call produced (possibly none), marked HitMaxIter.
	return Outcome{Text: lastText, Calls: calls, IterationsUsed: l.maxIterations, HitMaxIter: true}, nil
}

// execute looks up and invokes the handler for one tool call, capturing its
// result or error without letting a single tool failure abort the loop.
func (l *Loop) execute(ctx context.Context, catalog Catalog, tc llm.ToolCall) (CallRecord, toolResultPayload) {
	entry := catalog.find(tc.Name)
	if entry == nil {
		slog.Warn("toolloop: unknown tool requested", "name", tc.Name)
		return CallRecord{Name: tc.Name, Args: tc.Arguments, Error: "unknown tool"},
			toolResultPayload{Success: false, Error: fmt.Sprintf("unknown tool %q", tc.Name)}
	}

	result, err := entry.Handler(ctx, tc.Arguments)
	if err != nil {
		slog.Warn("toolloop: tool call failed", "name", tc.Name, "error", err)
		return CallRecord{Name: tc.Name, Args: tc.Arguments, Error: err.Error()},
			toolResultPayload{Success: false, Error: err.Error()}
	}

	return CallRecord{Name: tc.Name, Args: tc.Arguments, Result: result},
		toolResultPayload{Success: true, Result: result}
}
