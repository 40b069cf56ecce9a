package classifier_test

import (
	"context"
	"testing"

	"github.com/codeready-toolchain/alex/pkg/classifier"
	"github.com/codeready-toolchain/alex/pkg/llm"
	"github.com/stretchr/testify/assert"
)

func TestClassify_ParsesPlainJSON(t *testing.T) {
	stub := llm.NewStubAdapter()
	stub.ChatResponses = []llm.ChatResponse{
		{Text: `{"intent": "task_planning", "complexity_score": 0.85, "topics": ["deploy"], "entities": ["alex"], "requires_memory": true}`},
	}
	c := classifier.New(stub, "flash")
	result := c.Classify(context.Background(), "plan the next release")

	assert.Equal(t, classifier.IntentTaskPlanning, result.Intent)
	assert.Equal(t, 0.85, result.ComplexityScore)
	assert.Equal(t, []string{"deploy"}, result.Topics)
	assert.True(t, result.RequiresMemory)
}

func TestClassify_StripsCodeFence(t *testing.T) {
	stub := llm.NewStubAdapter()
	stub.ChatResponses = []llm.ChatResponse{
		{Text: "```json\n{\"intent\": \"chat\", \"complexity_score\": 0.1}\n```"},
	}
	c := classifier.New(stub, "flash")
	result := c.Classify(context.Background(), "hi")

	assert.Equal(t, classifier.IntentChat, result.Intent)
	assert.Equal(t, 0.1, result.ComplexityScore)
}

func TestClassify_FallsBackToDefaultOnParseFailure(t *testing.T) {
	stub := llm.NewStubAdapter()
	stub.ChatResponses = []llm.ChatResponse{{Text: "not json at all"}}
	c := classifier.New(stub, "flash")
	result := c.Classify(context.Background(), "whatever")

	assert.Equal(t, classifier.IntentChat, result.Intent)
	assert.Equal(t, 0.5, result.ComplexityScore)
}

func TestClassify_FallsBackToDefaultOnUnknownIntent(t *testing.T) {
	stub := llm.NewStubAdapter()
	stub.ChatResponses = []llm.ChatResponse{{Text: `{"intent": "unknown_thing", "complexity_score": 0.9}`}}
	c := classifier.New(stub, "flash")
	result := c.Classify(context.Background(), "whatever")

	assert.Equal(t, classifier.IntentChat, result.Intent)
	assert.Equal(t, 0.5, result.ComplexityScore)
}

func TestClassify_FallsBackToDefaultOnModelError(t *testing.T) {
	stub := llm.NewStubAdapter()
	stub.Err = assertError{}
	c := classifier.New(stub, "flash")
	result := c.Classify(context.Background(), "whatever")

	assert.Equal(t, classifier.IntentChat, result.Intent)
	assert.Equal(t, 0.5, result.ComplexityScore)
}

type assertError struct{}

func (assertError) Error() string { return "boom" }
