package llm

import "context"

// StubAdapter is a scriptable Adapter for unit and e2e tests: callers
// preload canned responses rather than hitting a real model endpoint.
type StubAdapter struct {
	ChatResponses      []ChatResponse
	ChatToolsResponses []ChatToolsResponse
	EmbedVector        []float32
	Err                error

	chatCalls      int
	chatToolsCalls int
}

// NewStubAdapter creates a StubAdapter with no scripted responses.
func NewStubAdapter() *StubAdapter {
	return &StubAdapter{}
}

func (s *StubAdapter) Chat(_ context.Context, req ChatRequest) (ChatResponse, error) {
	if s.Err != nil {
		return ChatResponse{}, s.Err
	}
	if s.chatCalls >= len(s.ChatResponses) {
		return ChatResponse{Text: "", ModelUsed: req.Model}, nil
	}
	resp := s.ChatResponses[s.chatCalls]
	s.chatCalls++
	return resp, nil
}

func (s *StubAdapter) ChatWithTools(_ context.Context, req ChatRequest, _ []Tool) (ChatToolsResponse, error) {
	if s.Err != nil {
		return ChatToolsResponse{}, s.Err
	}
	if s.chatToolsCalls >= len(s.ChatToolsResponses) {
		return ChatToolsResponse{Text: "", ModelUsed: req.Model}, nil
	}
	resp := s.ChatToolsResponses[s.chatToolsCalls]
	s.chatToolsCalls++
	return resp, nil
}

func (s *StubAdapter) Embed(_ context.Context, _, _ string) ([]float32, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	return s.EmbedVector, nil
}
