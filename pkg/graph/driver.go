package graph

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Request is the turn graph's external contract input, as supplied by
// POST /chat: `{user_message, user_id, session_id?, history?}`.
type Request struct {
	UserMessage string
	UserID      string
	SessionID   string
	History     []Message
}

// ResponseMetadata is the contract's metadata object:
// `{intent, complexity_score, model_used, latency_ms, cortex}`.
type ResponseMetadata struct {
	Intent          string
	ComplexityScore float64
	ModelUsed       string
	LatencyMS       int64
	Cortex          string
}

// Response is the turn graph's external contract output.
type Response struct {
	Response  string
	SessionID string
	Metadata  ResponseMetadata
}

// defaultMaxRetries is TurnState.MaxRetries's starting value. The
// retry_count/max_retries pair is reserved for escalation policy; no node
// performs blind network retries.
const defaultMaxRetries = 2

// Run drives one turn through the graph: classify, then conditionally
// retrieve_memory, then exactly one responder, then conditionally
// store_interaction. Now is the turn's reference clock so the whole run,
// including what gets persisted, is a pure function of (Deps, Request, now).
func Run(ctx context.Context, d Deps, req Request, now time.Time) Response {
	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = uuid.New().String()
	}

	history := req.History
	if len(history) == 0 && d.Sessions != nil {
		history = d.Sessions.History(sessionID)
	}

	messages := append(append([]Message(nil), history...), Message{Role: RoleUser, Content: req.UserMessage})
	s := TurnState{
		Messages:        messages,
		UserID:          req.UserID,
		SessionID:       sessionID,
		ProcessingStage: StageClassifying,
		MaxRetries:      defaultMaxRetries,
		Now:             now,
	}

	s = s.Apply(classify(ctx, d, s))

	route := RouteAfterClassify(s, d.ComplexityThreshold)
	s = dispatch(ctx, d, s, route)

	if ShouldStore(s) {
		s = s.Apply(storeInteraction(ctx, d, s))
	} else if s.ProcessingStage != StageError {
		s = s.Apply(Delta{ProcessingStage: stagePtr(StageComplete)})
	}

	if d.Sessions != nil {
		turn := []Message{{Role: RoleUser, Content: req.UserMessage}}
		if reply := s.LastAssistantMessage(); reply != "" {
			turn = append(turn, Message{Role: RoleAssistant, Content: reply})
		}
		d.Sessions.Append(sessionID, turn...)
	}

	elapsed := time.Since(now)
	return Response{
		Response:  s.LastAssistantMessage(),
		SessionID: s.SessionID,
		Metadata: ResponseMetadata{
			Intent:          s.Metadata.Intent,
			ComplexityScore: s.Metadata.ComplexityScore,
			ModelUsed:       s.Metadata.ModelUsed,
			LatencyMS:       elapsed.Milliseconds(),
			Cortex:          string(s.CurrentCortex),
		},
	}
}

// dispatch implements the conditional edges after classification, routing
// to retrieve_memory before a second routing decision for the intent groups
// that need it, and directly to a responder or handle_error for the rest.
func dispatch(ctx context.Context, d Deps, s TurnState, route Cortex) TurnState {
	switch route {
	case CortexError:
		return s.Apply(handleError(s))
	case CortexSelfModify:
		return respond(ctx, d, s, CortexSelfModify, respondSelfModify)
	case CortexTrade:
		return respond(ctx, d, s, CortexTrade, respondTrade)
	case CortexEngineer:
		return respond(ctx, d, s, CortexEngineer, respondEngineer)
	case cortexRetrieveMemory:
		s = s.Apply(retrieveMemory(ctx, d, s))
		switch RouteAfterMemory(s, d.ComplexityThreshold) {
		case CortexPro:
			return respond(ctx, d, s, CortexPro, respondPro)
		default:
			return respond(ctx, d, s, CortexFlash, respondFlash)
		}
	case CortexPro:
		return respond(ctx, d, s, CortexPro, respondPro)
	default:
		return respond(ctx, d, s, CortexFlash, respondFlash)
	}
}

// respond runs one responder node, stamping CurrentCortex to the arm that
// was entered. When a responder internally degrades (Pro to Flash, Engineer
// to Pro), metadata.cortex still reports the arm the turn was routed to;
// model_used carries the fallback annotation.
func respond(ctx context.Context, d Deps, s TurnState, cortex Cortex, node func(context.Context, Deps, TurnState) Delta) TurnState {
	s = s.Apply(Delta{ProcessingStage: stagePtr(StageResponding)})
	delta := node(ctx, d, s)
	delta.CurrentCortex = cortexPtr(cortex)
	s = s.Apply(delta)
	if s.Error != "" {
		return s.Apply(handleError(s))
	}
	return s
}
