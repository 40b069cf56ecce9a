// Package classifier is the turn graph's entry node: a single
// low-temperature model call that produces intent, complexity, topics, and
// entities for the turn's last user message.
//
// Parsing is deliberately forgiving: strip code-fence markers, then decode
// JSON; on any failure fall back to a safe default rather than aborting the
// turn.
package classifier

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/codeready-toolchain/alex/pkg/apperrors"
	"github.com/codeready-toolchain/alex/pkg/llm"
)

// Intent is the closed set of turn intents the router dispatches on.
type Intent string

const (
	IntentChat         Intent = "chat"
	IntentQuestion     Intent = "question"
	IntentCodeChange   Intent = "code_change"
	IntentRefactor     Intent = "refactor"
	IntentDebug        Intent = "debug"
	IntentTest         Intent = "test"
	IntentMemoryQuery  Intent = "memory_query"
	IntentTaskPlanning Intent = "task_planning"
	IntentCreative     Intent = "creative"
	IntentSelfModify   Intent = "self_modify"
	IntentTrade        Intent = "trade"
)

// defaultIntent and defaultComplexity are the parse-failure fallback:
// {intent: chat, complexity_score: 0.5}.
const (
	defaultIntent     = IntentChat
	defaultComplexity = 0.5
)

// Result is the classifier's output, merged into TurnState.metadata.
type Result struct {
	Intent          Intent   `json:"intent"`
	ComplexityScore float64  `json:"complexity_score"`
	Topics          []string `json:"topics"`
	Entities        []string `json:"entities"`
	RequiresMemory  bool     `json:"requires_memory"`
	IsAmbiguous     bool     `json:"is_ambiguous"`
}

// Classifier wraps a model adapter to produce classification Results.
type Classifier struct {
	model     llm.Adapter
	modelName string
}

// New builds a Classifier that calls modelName (typically the flash model)
// for every classification.
func New(model llm.Adapter, modelName string) *Classifier {
	return &Classifier{model: model, modelName: modelName}
}

// Classify runs the low-temperature classification call for the last user
// message and parses its JSON response. Never returns an error: a model
// failure or parse failure both recover to the default chat/0.5 result.
func (c *Classifier) Classify(ctx context.Context, userMessage string) Result {
	resp, err := c.model.Chat(ctx, llm.ChatRequest{
		Model:       c.modelName,
		Messages:    []llm.Message{{Role: "user", Content: classifyPrompt(userMessage)}},
		Temperature: 0.0,
	})
	if err != nil {
		return defaultResult()
	}
	return parseClassification(resp.Text)
}

func defaultResult() Result {
	return Result{Intent: defaultIntent, ComplexityScore: defaultComplexity}
}

// parseClassification tolerates leading/trailing code-fence markers
// (```json ... ``` or plain ```) around the JSON object.
func parseClassification(text string) Result {
	cleaned := stripCodeFence(text)

	var raw struct {
		Intent          string   `json:"intent"`
		ComplexityScore float64  `json:"complexity_score"`
		Topics          []string `json:"topics"`
		Entities        []string `json:"entities"`
		RequiresMemory  bool     `json:"requires_memory"`
		IsAmbiguous     bool     `json:"is_ambiguous"`
	}
	if err := json.Unmarshal([]byte(cleaned), &raw); err != nil {
		slog.Warn("classifier: parse failed, recovering to default",
			"error", &apperrors.ClassificationParseError{Cause: err})
		return defaultResult()
	}

	intent := Intent(raw.Intent)
	if !validIntent(intent) {
		return defaultResult()
	}

	score := raw.ComplexityScore
	if score < 0 {
		score = 0
	}
	if score > 1 {
		score = 1
	}

	return Result{
		Intent:          intent,
		ComplexityScore: score,
		Topics:          raw.Topics,
		Entities:        raw.Entities,
		RequiresMemory:  raw.RequiresMemory,
		IsAmbiguous:     raw.IsAmbiguous,
	}
}

func validIntent(i Intent) bool {
	switch i {
	case IntentChat, IntentQuestion, IntentCodeChange, IntentRefactor, IntentDebug,
		IntentTest, IntentMemoryQuery, IntentTaskPlanning, IntentCreative,
		IntentSelfModify, IntentTrade:
		return true
	default:
		return false
	}
}

// stripCodeFence trims a leading/trailing markdown code fence (with or
// without a "json" language tag) around a JSON blob.
func stripCodeFence(text string) string {
	s := strings.TrimSpace(text)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimPrefix(s, "json")
	s = strings.TrimPrefix(s, "JSON")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

func classifyPrompt(userMessage string) string {
	return fmt.Sprintf(`Classify the following user message. Respond with ONLY a JSON object of the form:
{"intent": "chat|question|code_change|refactor|debug|test|memory_query|task_planning|creative|self_modify|trade",
 "complexity_score": 0.0-1.0, "topics": ["..."], "entities": ["..."], "requires_memory": bool, "is_ambiguous": bool}

Complexity bands: 0-0.3 trivial, 0.4-0.6 multi-step, 0.7-0.9 complex, 1.0 deep analysis.

Message: %s`, userMessage)
}
