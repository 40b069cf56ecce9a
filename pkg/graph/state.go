// Package graph is the turn graph: a typed, directed state machine that
// routes one turn among classification, memory retrieval, one of five
// responder nodes, and storage.
//
// Nodes are pure functions of TurnState that return a delta; a deterministic
// reducer merges each delta into the running state (append for messages,
// last-writer-wins for scalars). There is no generic graph runtime here:
// the topology is closed and known at compile time, so the driver in
// driver.go is a straight-line Go function with conditional branches: the
// router returns a cortex tag and the dispatcher matches on it.
package graph

import "time"

// Cortex is the responder variant a turn is routed to; it controls which
// model and tools the turn uses.
type Cortex string

const (
	CortexFlash      Cortex = "flash"
	CortexPro        Cortex = "pro"
	CortexEngineer   Cortex = "engineer"
	CortexSelfModify Cortex = "self_modify"
	CortexTrade      Cortex = "trade"
)

// ProcessingStage marks where a turn currently sits, mainly for
// observability and for should_store's error check.
type ProcessingStage string

const (
	StageClassifying      ProcessingStage = "classifying"
	StageRetrievingMemory ProcessingStage = "retrieving_memory"
	StageResponding       ProcessingStage = "responding"
	StageStoring          ProcessingStage = "storing"
	StageComplete         ProcessingStage = "complete"
	StageError            ProcessingStage = "error"
)

// Role is a conversation message's speaker.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one turn of conversation history.
type Message struct {
	Role    Role
	Content string
}

// Metadata carries the classifier's output plus responder bookkeeping,
// merged field-by-field with last-writer-wins semantics.
type Metadata struct {
	Intent          string
	ComplexityScore float64
	Topics          []string
	Entities        []string
	ModelUsed       string
	LatencyMS       int64
	TokenCounts     int
}

// MemoryContext is a minimal, graph-local view of the retriever's output:
// just enough for routing (relevant-interaction count) and for a responder
// prompt to consult. The full shape lives in pkg/retriever.MemoryContext;
// retrieve_memory's delta carries one of those, flattened into this view.
type MemoryContext struct {
	DailySummary         string
	WeeklySummary        string
	RelevantInteractions []string // formatted "user: ... / assistant: ..." snippets
	RelevantCount        int
	RelatedConcepts      []string
	RelatedProjects      []string
}

// ToolCallRecord mirrors pkg/toolloop.CallRecord, flattened for TurnState so
// this package does not need to import toolloop's types into its public
// surface.
type ToolCallRecord struct {
	Name   string
	Args   map[string]any
	Result any
	Error  string
}

// TurnState is the turn graph's full state: a plain record merged forward
// by Apply as each node returns its delta.
type TurnState struct {
	Messages        []Message
	UserID          string
	SessionID       string
	CurrentCortex   Cortex
	ProcessingStage ProcessingStage
	MemoryContext   *MemoryContext
	Metadata        Metadata
	ToolOutputs     []ToolCallRecord
	Error           string
	RetryCount      int
	MaxRetries      int

	// Now is the turn's reference clock, threaded through explicitly rather
	// than read from time.Now() inside nodes so routing and storage stay
	// pure functions of state.
	Now time.Time
}

// LastUserMessage returns the content of the most recent user-role message,
// or "" if none exists.
func (s TurnState) LastUserMessage() string {
	for i := len(s.Messages) - 1; i >= 0; i-- {
		if s.Messages[i].Role == RoleUser {
			return s.Messages[i].Content
		}
	}
	return ""
}

// LastAssistantMessage returns the content of the most recent
// assistant-role message, or "" if none exists.
func (s TurnState) LastAssistantMessage() string {
	for i := len(s.Messages) - 1; i >= 0; i-- {
		if s.Messages[i].Role == RoleAssistant {
			return s.Messages[i].Content
		}
	}
	return ""
}

// Delta is what a node returns: a sparse set of field updates merged into
// TurnState by Apply. Pointer/zero-value fields that a node does not touch
// are left nil/zero and do not overwrite the running state, except where
// noted below.
type Delta struct {
	AppendMessages []Message

	CurrentCortex   *Cortex
	ProcessingStage *ProcessingStage
	MemoryContext   *MemoryContext

	// Metadata fields are merged individually (last-writer-wins per field,
	// not as a whole-struct replacement), since e.g. classify sets Intent
	// and ComplexityScore while a responder later only sets ModelUsed.
	Intent          *string
	ComplexityScore *float64
	Topics          []string
	Entities        []string
	ModelUsed       *string
	LatencyMS       *int64

	AppendToolOutputs []ToolCallRecord

	Error      *string
	RetryCount *int
}

// Apply merges d into s and returns the resulting state: append for
// messages and tool outputs, last-writer-wins for every scalar field.
func (s TurnState) Apply(d Delta) TurnState {
	if len(d.AppendMessages) > 0 {
		s.Messages = append(append([]Message(nil), s.Messages...), d.AppendMessages...)
	}
	if d.CurrentCortex != nil {
		s.CurrentCortex = *d.CurrentCortex
	}
	if d.ProcessingStage != nil {
		s.ProcessingStage = *d.ProcessingStage
	}
	if d.MemoryContext != nil {
		s.MemoryContext = d.MemoryContext
	}
	if d.Intent != nil {
		s.Metadata.Intent = *d.Intent
	}
	if d.ComplexityScore != nil {
		s.Metadata.ComplexityScore = *d.ComplexityScore
	}
	if d.Topics != nil {
		s.Metadata.Topics = d.Topics
	}
	if d.Entities != nil {
		s.Metadata.Entities = d.Entities
	}
	if d.ModelUsed != nil {
		s.Metadata.ModelUsed = *d.ModelUsed
	}
	if d.LatencyMS != nil {
		s.Metadata.LatencyMS = *d.LatencyMS
	}
	if len(d.AppendToolOutputs) > 0 {
		s.ToolOutputs = append(append([]ToolCallRecord(nil), s.ToolOutputs...), d.AppendToolOutputs...)
	}
	if d.Error != nil {
		s.Error = *d.Error
	}
	if d.RetryCount != nil {
		s.RetryCount = *d.RetryCount
	}
	return s
}

func strPtr(s string) *string                     { return &s }
func cortexPtr(c Cortex) *Cortex                  { return &c }
func stagePtr(p ProcessingStage) *ProcessingStage { return &p }
func f64Ptr(f float64) *float64                   { return &f }
func i64Ptr(i int64) *int64                       { return &i }
