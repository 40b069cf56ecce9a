package graph

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/codeready-toolchain/alex/pkg/classifier"
	"github.com/codeready-toolchain/alex/pkg/llm"
	"github.com/codeready-toolchain/alex/pkg/memory"
	"github.com/codeready-toolchain/alex/pkg/retriever"
	"github.com/codeready-toolchain/alex/pkg/toolloop"
	"github.com/codeready-toolchain/alex/pkg/tools/filesystem"
	"github.com/codeready-toolchain/alex/pkg/trading"
)

// Deps wires every collaborator a turn's nodes may call. One Deps is built
// once at startup (cmd/alex-server/main.go) and reused across turns; nodes
// themselves hold no state of their own; a turn is a linear sequence of
// node invocations over one TurnState.
type Deps struct {
	Classifier *classifier.Classifier
	Retriever  *retriever.Retriever
	Model      llm.Adapter
	Store      *memory.Store
	Filesystem *filesystem.Toolset
	Trading    *trading.Ledger
	Sessions   *SessionStore

	FlashModel          string
	ProModel            string
	EngineerModel       string
	EmbeddingModel      string
	ComplexityThreshold float64
	ToolLoopMaxIters    int
}

// classify is the entry node: classify the last user message and merge
// intent/complexity/topics/entities into the state.
func classify(ctx context.Context, d Deps, s TurnState) Delta {
	result := d.Classifier.Classify(ctx, s.LastUserMessage())
	return Delta{
		Intent:          strPtr(string(result.Intent)),
		ComplexityScore: f64Ptr(result.ComplexityScore),
		Topics:          result.Topics,
		Entities:        result.Entities,
	}
}

// retrieveMemory is the retrieve_memory node: composes the MemoryContext
// via pkg/retriever, fail-soft by construction since Retriever.Retrieve
// itself never errors.
func retrieveMemory(ctx context.Context, d Deps, s TurnState) Delta {
	if d.Retriever == nil {
		// No retriever wired: proceed with an empty MemoryContext rather
		// than failing the turn.
		return Delta{MemoryContext: &MemoryContext{}, ProcessingStage: stagePtr(StageResponding)}
	}
	mc := d.Retriever.Retrieve(ctx, s.Now, s.LastUserMessage(), s.Metadata.Topics, s.Metadata.Entities)

	snippets := make([]string, 0, len(mc.RelevantInteractions))
	for _, in := range mc.RelevantInteractions {
		snippets = append(snippets, fmt.Sprintf("user: %s / assistant: %s", in.UserMessage, in.AssistantResponse))
	}

	graphMC := &MemoryContext{
		DailySummary:         mc.DailySummary,
		WeeklySummary:        mc.WeeklySummary,
		RelevantInteractions: snippets,
		RelevantCount:        len(mc.RelevantInteractions),
		RelatedConcepts:      mc.RelatedConcepts,
		RelatedProjects:      mc.RelatedProjects,
	}
	return Delta{MemoryContext: graphMC, ProcessingStage: stagePtr(StageResponding)}
}

// respondFlash is the respond_flash responder: a single chat call against
// the fast model. It is also the fallback target for
// respond_pro and (via respond_engineer's fallback through respond_pro)
// the final rung of the degradation ladder.
func respondFlash(ctx context.Context, d Deps, s TurnState) Delta {
	resp, err := d.Model.Chat(ctx, llm.ChatRequest{Model: d.FlashModel, Messages: promptMessages(s)})
	if err != nil {
		return errorDelta(fmt.Errorf("flash responder: %w", err))
	}
	return Delta{
		AppendMessages: []Message{{Role: RoleAssistant, Content: resp.Text}},
		ModelUsed:      strPtr(d.FlashModel),
	}
}

// respondPro is the respond_pro responder. On failure it degrades to Flash
// rather than surfacing the error.
func respondPro(ctx context.Context, d Deps, s TurnState) Delta {
	resp, err := d.Model.Chat(ctx, llm.ChatRequest{Model: d.ProModel, Messages: promptMessages(s)})
	if err != nil {
		return respondFlash(ctx, d, s)
	}
	return Delta{
		AppendMessages: []Message{{Role: RoleAssistant, Content: resp.Text}},
		ModelUsed:      strPtr(d.ProModel),
	}
}

// respondEngineer is the respond_engineer responder. If the engineering
// model is not configured or fails, it falls back to the Pro chat path and
// suffixes model_used with "(fallback)".
func respondEngineer(ctx context.Context, d Deps, s TurnState) Delta {
	if d.EngineerModel == "" {
		delta := respondPro(ctx, d, s)
		if delta.ModelUsed != nil {
			delta.ModelUsed = strPtr(*delta.ModelUsed + " (fallback)")
		}
		return delta
	}
	resp, err := d.Model.Chat(ctx, llm.ChatRequest{Model: d.EngineerModel, Messages: promptMessages(s)})
	if err != nil {
		delta := respondPro(ctx, d, s)
		if delta.ModelUsed != nil {
			delta.ModelUsed = strPtr(*delta.ModelUsed + " (fallback)")
		}
		return delta
	}
	return Delta{
		AppendMessages: []Message{{Role: RoleAssistant, Content: resp.Text}},
		ModelUsed:      strPtr(d.EngineerModel),
	}
}

// selfModifySystemPrompt seeds the tool loop with the operations the model
// may call and the sandbox rules the toolset enforces.
const selfModifySystemPrompt = "You can read, write, list, and search project files, and check/commit git status. " +
	"Writes outside the allowed subtrees, with disallowed extensions, or to protected files without explicit " +
	"confirmation will fail. Use read_file before write_file when modifying existing code."

// respondSelfModify is the respond_self_modify responder: runs the bounded
// tool loop against the filesystem catalog, then records a CodeChange for
// any files the loop wrote.
func respondSelfModify(ctx context.Context, d Deps, s TurnState) Delta {
	loop := toolloop.New(d.Model, d.ToolLoopMaxIters)
	seed := append([]llm.Message{{Role: "system", Content: selfModifySystemPrompt}}, promptMessages(s)...)
	outcome, err := loop.Run(ctx, d.EngineerModel, seed, filesystemCatalog(d.Filesystem))
	if err != nil {
		return errorDelta(fmt.Errorf("self-modify responder: %w", err))
	}

	delta := Delta{
		AppendMessages:    []Message{{Role: RoleAssistant, Content: outcome.Text}},
		ModelUsed:         strPtr(d.EngineerModel),
		AppendToolOutputs: toGraphCalls(outcome.Calls),
	}

	files := filesModifiedFrom(outcome.Calls)
	if len(files) > 0 && d.Store != nil {
		_, recErr := d.Store.RecordCodeChange(ctx, memory.RecordCodeChangeParams{
			UserID:        s.UserID,
			Timestamp:     s.Now,
			FilesModified: files,
			Description:   s.LastUserMessage(),
			Reasoning:     s.LastUserMessage(),
			ChangeType:    "feature",
			Topics:        s.Metadata.Topics,
		})
		if recErr != nil {
			// A failed audit write does not invalidate the turn's response.
			return delta
		}
	}
	return delta
}

// respondTrade is the respond_trade responder: runs the bounded tool loop
// against the trading catalog. User-confirmation gating is enforced by the
// system prompt; the ledger independently enforces that any confirm_trade
// references an existing, non-expired trade_id.
func respondTrade(ctx context.Context, d Deps, s TurnState) Delta {
	loop := toolloop.New(d.Model, d.ToolLoopMaxIters)
	seed := append([]llm.Message{{Role: "system", Content: tradeSystemPrompt}}, promptMessages(s)...)
	rec := &tradeCallRecorder{}
	outcome, err := loop.Run(ctx, d.ProModel, seed, tradingCatalog(d.Trading, s.UserID, rec))
	if err != nil {
		return errorDelta(fmt.Errorf("trade responder: %w", err))
	}
	if len(rec.executed) > 0 {
		slog.Info("trade responder executed trades", "user_id", s.UserID, "trade_ids", rec.executed)
	}
	return Delta{
		AppendMessages:    []Message{{Role: RoleAssistant, Content: outcome.Text}},
		ModelUsed:         strPtr(d.ProModel),
		AppendToolOutputs: toGraphCalls(outcome.Calls),
	}
}

const tradeSystemPrompt = "You can stage brokerage orders with place_order_dry_run or close_position_dry_run, " +
	"then execute a staged trade_id with confirm_trade only after the user has explicitly said to confirm it. " +
	"Use cancel_pending_trade if the user declines."

// storeInteraction is the store_interaction node: persists the completed
// turn. A storage failure never propagates; the response already produced
// is still returned.
func storeInteraction(ctx context.Context, d Deps, s TurnState) Delta {
	if d.Store == nil {
		return Delta{ProcessingStage: stagePtr(StageComplete)}
	}
	var intent *string
	if s.Metadata.Intent != "" {
		intent = &s.Metadata.Intent
	}
	var modelUsed *string
	if s.Metadata.ModelUsed != "" {
		modelUsed = &s.Metadata.ModelUsed
	}
	in, err := d.Store.RecordInteraction(ctx, memory.RecordInteractionParams{
		UserID:            s.UserID,
		Timestamp:         s.Now,
		UserMessage:       s.LastUserMessage(),
		AssistantResponse: s.LastAssistantMessage(),
		Intent:            intent,
		ComplexityScore:   s.Metadata.ComplexityScore,
		ModelUsed:         modelUsed,
		Topics:            s.Metadata.Topics,
	})
	if err != nil {
		return Delta{ProcessingStage: stagePtr(StageComplete)}
	}

	// Embed the exchange so it becomes semantically searchable right away;
	// rows missed here (embed failure, no embedding model) are picked up by
	// the admin backfill endpoint later.
	if d.EmbeddingModel != "" {
		embedding, embedErr := d.Model.Embed(ctx, d.EmbeddingModel, in.UserMessage+" "+in.AssistantResponse)
		if embedErr == nil && len(embedding) > 0 {
			_ = d.Store.SetInteractionEmbedding(ctx, in.ID, embedding)
		}
	}
	return Delta{ProcessingStage: stagePtr(StageComplete)}
}

// handleError is the handle_error node: emits the standard user-visible
// error message and marks the stage as error.
func handleError(s TurnState) Delta {
	msg := fmt.Sprintf("I encountered an error: %s. Please try again.", s.Error)
	return Delta{
		AppendMessages:  []Message{{Role: RoleAssistant, Content: msg}},
		ProcessingStage: stagePtr(StageError),
	}
}

// errorDelta converts a node-level failure into the Error field's
// last-writer-wins scalar, routing the turn to handle_error.
func errorDelta(err error) Delta {
	return Delta{Error: strPtr(err.Error())}
}

// promptMessages converts TurnState's conversation history (plus any
// memory context) into the llm.Adapter's Message shape.
func promptMessages(s TurnState) []llm.Message {
	out := make([]llm.Message, 0, len(s.Messages)+1)
	if s.MemoryContext != nil && (s.MemoryContext.DailySummary != "" || s.MemoryContext.WeeklySummary != "" || len(s.MemoryContext.RelevantInteractions) > 0) {
		out = append(out, llm.Message{Role: "system", Content: formatMemoryContext(*s.MemoryContext)})
	}
	for _, m := range s.Messages {
		out = append(out, llm.Message{Role: string(m.Role), Content: m.Content})
	}
	return out
}

func formatMemoryContext(mc MemoryContext) string {
	parts := "Relevant memory context:\n"
	if mc.DailySummary != "" {
		parts += "Today: " + mc.DailySummary + "\n"
	}
	if mc.WeeklySummary != "" {
		parts += "This week: " + mc.WeeklySummary + "\n"
	}
	for _, snippet := range mc.RelevantInteractions {
		parts += "- " + snippet + "\n"
	}
	return parts
}

func toGraphCalls(calls []toolloop.CallRecord) []ToolCallRecord {
	out := make([]ToolCallRecord, len(calls))
	for i, c := range calls {
		out[i] = ToolCallRecord{Name: c.Name, Args: c.Args, Result: c.Result, Error: c.Error}
	}
	return out
}
