package toolloop_test

import (
	"context"
	"errors"
	"testing"

	"github.com/codeready-toolchain/alex/pkg/llm"
	"github.com/codeready-toolchain/alex/pkg/toolloop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_ReturnsImmediatelyWithNoToolCalls(t *testing.T) {
	stub := llm.NewStubAdapter()
	stub.ChatToolsResponses = []llm.ChatToolsResponse{{Text: "hello there"}}

	loop := toolloop.New(stub, 10)
	outcome, err := loop.Run(context.Background(), "engineer", nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "hello there", outcome.Text)
	assert.Equal(t, 1, outcome.IterationsUsed)
	assert.False(t, outcome.HitMaxIter)
}

func TestRun_ExecutesToolCallsAndFeedsBackResults(t *testing.T) {
	stub := llm.NewStubAdapter()
	stub.ChatToolsResponses = []llm.ChatToolsResponse{
		{ToolCalls: []llm.ToolCall{{ID: "1", Name: "read_file", Arguments: map[string]any{"path": "a.go"}}}},
		{Text: "done"},
	}

	var invoked map[string]any
	catalog := toolloop.Catalog{{
		Name: "read_file",
		Handler: func(_ context.Context, args map[string]any) (any, error) {
			invoked = args
			return "file contents", nil
		},
	}}

	loop := toolloop.New(stub, 10)
	outcome, err := loop.Run(context.Background(), "engineer", []llm.Message{{Role: "user", Content: "read a.go"}}, catalog)
	require.NoError(t, err)
	assert.Equal(t, "done", outcome.Text)
	require.Len(t, outcome.Calls, 1)
	assert.Equal(t, "read_file", outcome.Calls[0].Name)
	assert.Equal(t, "file contents", outcome.Calls[0].Result)
	assert.Equal(t, "a.go", invoked["path"])
}

func TestRun_ToolFailureDoesNotAbortLoop(t *testing.T) {
	stub := llm.NewStubAdapter()
	stub.ChatToolsResponses = []llm.ChatToolsResponse{
		{ToolCalls: []llm.ToolCall{{ID: "1", Name: "write_file"}}},
		{Text: "recovered"},
	}

	catalog := toolloop.Catalog{{
		Name: "write_file",
		Handler: func(_ context.Context, _ map[string]any) (any, error) {
			return nil, errors.New("permission denied")
		},
	}}

	loop := toolloop.New(stub, 10)
	outcome, err := loop.Run(context.Background(), "engineer", nil, catalog)
	require.NoError(t, err)
	assert.Equal(t, "recovered", outcome.Text)
	require.Len(t, outcome.Calls, 1)
	assert.Equal(t, "permission denied", outcome.Calls[0].Error)
}

func TestRun_UnknownToolDoesNotAbortLoop(t *testing.T) {
	stub := llm.NewStubAdapter()
	stub.ChatToolsResponses = []llm.ChatToolsResponse{
		{ToolCalls: []llm.ToolCall{{ID: "1", Name: "nonexistent"}}},
		{Text: "ok"},
	}

	loop := toolloop.New(stub, 10)
	outcome, err := loop.Run(context.Background(), "engineer", nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "ok", outcome.Text)
	assert.Contains(t, outcome.Calls[0].Error, "unknown tool")
}

func TestRun_HitsMaxIterationsGracefully(t *testing.T) {
	stub := llm.NewStubAdapter()
	// Every response asks for a tool call, forever.
	forever := llm.ChatToolsResponse{ToolCalls: []llm.ToolCall{{ID: "1", Name: "noop"}}}
	for i := 0; i < 5; i++ {
		stub.ChatToolsResponses = append(stub.ChatToolsResponses, forever)
	}

	catalog := toolloop.Catalog{{
		Name:    "noop",
		Handler: func(_ context.Context, _ map[string]any) (any, error) { return "ok", nil },
	}}

	loop := toolloop.New(stub, 3)
	outcome, err := loop.Run(context.Background(), "engineer", nil, catalog)
	require.NoError(t, err)
	assert.True(t, outcome.HitMaxIter)
	assert.Equal(t, 3, outcome.IterationsUsed)
	assert.Empty(t, outcome.Text)
}
