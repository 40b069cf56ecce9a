package graph

// DefaultComplexityThreshold is the Pro-routing cutoff, overridable via
// config.GraphConfig.ComplexityThreshold.
const DefaultComplexityThreshold = 0.7

// engineeringIntents route to respond_engineer.
var engineeringIntents = map[string]bool{
	"code_change": true,
	"refactor":    true,
	"debug":       true,
	"test":        true,
	"deploy":      true,
}

// memoryIntents route to retrieve_memory before a responder is chosen.
var memoryIntents = map[string]bool{
	"memory_query":  true,
	"question":      true,
	"task_planning": true,
}

// RouteAfterClassify picks the edge taken after the classify node: a pure
// function of TurnState, never reading external state, so that two calls
// given identical state always agree.
func RouteAfterClassify(s TurnState, complexityThreshold float64) Cortex {
	if complexityThreshold <= 0 {
		complexityThreshold = DefaultComplexityThreshold
	}
	if s.Error != "" {
		return CortexError
	}
	switch s.Metadata.Intent {
	case "self_modify":
		return CortexSelfModify
	case "trade":
		return CortexTrade
	}
	if engineeringIntents[s.Metadata.Intent] {
		return CortexEngineer
	}
	if memoryIntents[s.Metadata.Intent] {
		return cortexRetrieveMemory
	}
	if s.Metadata.ComplexityScore >= complexityThreshold {
		return CortexPro
	}
	return CortexFlash
}

// RouteAfterMemory picks the responder after retrieve_memory has run: Pro
// if the turn is complex or retrieval surfaced more than 3 relevant
// interactions, else Flash.
func RouteAfterMemory(s TurnState, complexityThreshold float64) Cortex {
	if complexityThreshold <= 0 {
		complexityThreshold = DefaultComplexityThreshold
	}
	relevant := 0
	if s.MemoryContext != nil {
		relevant = s.MemoryContext.RelevantCount
	}
	if s.Metadata.ComplexityScore >= complexityThreshold || relevant > 3 {
		return CortexPro
	}
	return CortexFlash
}

// ShouldStore decides whether a completed turn is persisted: errored turns
// and degenerate (too-short) exchanges are skipped.
func ShouldStore(s TurnState) bool {
	if s.Error != "" {
		return false
	}
	if len(s.LastUserMessage()) < 5 {
		return false
	}
	if len(s.LastAssistantMessage()) < 10 {
		return false
	}
	return true
}

// CortexError and cortexRetrieveMemory are internal routing tags distinct
// from the five responder Cortex values: handle_error and retrieve_memory
// are graph nodes, not responders, but the router returns a single tag type
// so the dispatcher has one thing to match on.
const (
	CortexError          Cortex = "error"
	cortexRetrieveMemory Cortex = "retrieve_memory"
)
