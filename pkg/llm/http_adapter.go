package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/codeready-toolchain/alex/pkg/apperrors"
	"github.com/codeready-toolchain/alex/pkg/config"
)

// HTTPAdapter calls a configured model endpoint over plain JSON/HTTP. Each
// logical model name (flash, pro, engineer, embedding) resolves through the
// ModelRegistry to its own endpoint + API key, so a deployment can mix
// providers without this package knowing about any of them.
type HTTPAdapter struct {
	registry   *config.ModelRegistry
	httpClient *http.Client
	logger     *slog.Logger
}

// NewHTTPAdapter constructs an adapter bound to a model registry.
func NewHTTPAdapter(registry *config.ModelRegistry) *HTTPAdapter {
	return &HTTPAdapter{
		registry:   registry,
		httpClient: &http.Client{Timeout: 60 * time.Second},
		logger:     slog.Default(),
	}
}

type chatWireRequest struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	Temperature float32   `json:"temperature,omitempty"`
	Tools       []Tool    `json:"tools,omitempty"`
}

type chatWireResponse struct {
	Text      string     `json:"text"`
	ToolCalls []ToolCall `json:"tool_calls"`
}

func (a *HTTPAdapter) Chat(ctx context.Context, req ChatRequest) (ChatResponse, error) {
	resp, err := a.chatWithTools(ctx, req, nil)
	if err != nil {
		return ChatResponse{}, err
	}
	return ChatResponse{Text: resp.Text, ModelUsed: req.Model}, nil
}

func (a *HTTPAdapter) ChatWithTools(ctx context.Context, req ChatRequest, tools []Tool) (ChatToolsResponse, error) {
	resp, err := a.chatWithTools(ctx, req, tools)
	if err != nil {
		return ChatToolsResponse{}, err
	}
	resp.ModelUsed = req.Model
	return resp, nil
}

func (a *HTTPAdapter) chatWithTools(ctx context.Context, req ChatRequest, tools []Tool) (ChatToolsResponse, error) {
	model, err := a.registry.Get(req.Model)
	if err != nil {
		return ChatToolsResponse{}, &apperrors.ConfigurationMissingError{Key: req.Model}
	}

	timeout := time.Duration(model.TimeoutSecs) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	callCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	wire := chatWireRequest{Model: model.Name, Messages: req.Messages, Temperature: req.Temperature, Tools: tools}
	body, err := json.Marshal(wire)
	if err != nil {
		return ChatToolsResponse{}, fmt.Errorf("encode chat request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(callCtx, http.MethodPost, model.Endpoint+"/chat", bytes.NewReader(body))
	if err != nil {
		return ChatToolsResponse{}, fmt.Errorf("build chat request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if key := os.Getenv(model.APIKeyEnv); key != "" {
		httpReq.Header.Set("Authorization", "Bearer "+key)
	}

	resp, err := a.httpClient.Do(httpReq)
	if err != nil {
		if callCtx.Err() != nil {
			return ChatToolsResponse{}, &apperrors.ModelTimeoutError{Model: req.Model, Cause: err}
		}
		return ChatToolsResponse{}, &apperrors.ModelFailureError{Model: req.Model, Cause: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return ChatToolsResponse{}, &apperrors.ModelFailureError{
			Model: req.Model,
			Cause: fmt.Errorf("model endpoint returned HTTP %d", resp.StatusCode),
		}
	}

	var wireResp chatWireResponse
	if err := json.NewDecoder(resp.Body).Decode(&wireResp); err != nil {
		return ChatToolsResponse{}, &apperrors.ModelFailureError{Model: req.Model, Cause: err}
	}

	return ChatToolsResponse{Text: wireResp.Text, ToolCalls: wireResp.ToolCalls}, nil
}

type embedWireRequest struct {
	Model string `json:"model"`
	Text  string `json:"text"`
}

type embedWireResponse struct {
	Vector []float32 `json:"vector"`
}

func (a *HTTPAdapter) Embed(ctx context.Context, model, text string) ([]float32, error) {
	modelCfg, err := a.registry.Get(model)
	if err != nil {
		return nil, &apperrors.ConfigurationMissingError{Key: model}
	}

	body, err := json.Marshal(embedWireRequest{Model: modelCfg.Name, Text: text})
	if err != nil {
		return nil, fmt.Errorf("encode embed request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, modelCfg.Endpoint+"/embed", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build embed request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if key := os.Getenv(modelCfg.APIKeyEnv); key != "" {
		req.Header.Set("Authorization", "Bearer "+key)
	}

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return nil, &apperrors.ModelFailureError{Model: model, Cause: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		drained, _ := io.ReadAll(resp.Body)
		a.logger.Warn("embed endpoint returned non-200", "status", resp.StatusCode, "body", string(drained))
		return nil, &apperrors.ModelFailureError{Model: model, Cause: fmt.Errorf("HTTP %d", resp.StatusCode)}
	}

	var wireResp embedWireResponse
	if err := json.NewDecoder(resp.Body).Decode(&wireResp); err != nil {
		return nil, &apperrors.ModelFailureError{Model: model, Cause: err}
	}
	return wireResp.Vector, nil
}
