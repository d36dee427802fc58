package oracle

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/UmmeHabiba1312/Kharedo-api/internal/intent"
	"github.com/UmmeHabiba1312/Kharedo-api/internal/logging"
	"github.com/UmmeHabiba1312/Kharedo-api/internal/observ"
)

const systemPrompt = "You are an e-commerce shopping assistant. " +
	"Handle catalog browsing, special offers and order placement, updates, " +
	"cancellation and status checks using the available tools. Ask for any " +
	"missing detail (item, phone number, address) before placing an order."

// OpenAIClient speaks the OpenAI chat-completions surface with function
// calling. Gemini exposes the same surface, so only base URL, key and
// model differ per environment.
type OpenAIClient struct {
	baseURL string
	apiKey  string
	model   string
	http    *http.Client
	log     *slog.Logger
}

func NewOpenAIClient(baseURL, apiKey, model string, timeout time.Duration) *OpenAIClient {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &OpenAIClient{
		baseURL: baseURL,
		apiKey:  apiKey,
		model:   model,
		http:    &http.Client{Timeout: timeout},
		log:     logging.New("oracle"),
	}
}

// Wire types for /chat/completions.

type wireFunc struct {
	Name      string          `json:"name"`
	Arguments json.RawMessage `json:"arguments,omitempty"`
}

type wireToolCall struct {
	ID       string   `json:"id,omitempty"`
	Type     string   `json:"type"`
	Function wireFunc `json:"function"`
}

type wireMessage struct {
	Role       string         `json:"role"`
	Content    string         `json:"content"`
	ToolCallID string         `json:"tool_call_id,omitempty"`
	ToolCalls  []wireToolCall `json:"tool_calls,omitempty"`
}

type wireTool struct {
	Type     string `json:"type"`
	Function struct {
		Name        string         `json:"name"`
		Description string         `json:"description"`
		Parameters  map[string]any `json:"parameters"`
	} `json:"function"`
}

type completionReq struct {
	Model    string        `json:"model"`
	Messages []wireMessage `json:"messages"`
	Tools    []wireTool    `json:"tools,omitempty"`
}

type completionResp struct {
	Choices []struct {
		Message wireMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

func (c *OpenAIClient) Decide(ctx context.Context, msgs []Message, tools []intent.ToolSpec) (Decision, error) {
	req := completionReq{
		Model:    c.model,
		Messages: make([]wireMessage, 0, len(msgs)+1),
		Tools:    make([]wireTool, 0, len(tools)),
	}
	req.Messages = append(req.Messages, wireMessage{Role: "system", Content: systemPrompt})
	for _, m := range msgs {
		wm := wireMessage{Role: m.Role, Content: m.Content, ToolCallID: m.ToolCallID}
		if m.Call != nil {
			// the wire format carries arguments as a JSON-encoded string
			quoted, _ := json.Marshal(string(m.Call.Args))
			wm.ToolCalls = []wireToolCall{{
				ID:       m.Call.ID,
				Type:     "function",
				Function: wireFunc{Name: m.Call.Name, Arguments: quoted},
			}}
		}
		req.Messages = append(req.Messages, wm)
	}
	for _, t := range tools {
		var wt wireTool
		wt.Type = "function"
		wt.Function.Name = t.Name
		wt.Function.Description = t.Description
		wt.Function.Parameters = t.Parameters
		req.Tools = append(req.Tools, wt)
	}

	body, err := json.Marshal(req)
	if err != nil {
		return Decision{}, fmt.Errorf("marshal request: %w", err)
	}

	hreq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return Decision{}, fmt.Errorf("build request: %w", err)
	}
	hreq.Header.Set("Content-Type", "application/json")
	hreq.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.http.Do(hreq)
	if err != nil {
		observ.OracleRequests.WithLabelValues("transport_error").Inc()
		return Decision{}, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		observ.OracleRequests.WithLabelValues("transport_error").Inc()
		return Decision{}, fmt.Errorf("%w: read body: %v", ErrUnavailable, err)
	}
	if resp.StatusCode != http.StatusOK {
		observ.OracleRequests.WithLabelValues("http_error").Inc()
		c.log.Error("oracle request failed", "status", resp.StatusCode, "body", string(raw))
		return Decision{}, fmt.Errorf("%w: status %d", ErrUnavailable, resp.StatusCode)
	}

	var cr completionResp
	if err := json.Unmarshal(raw, &cr); err != nil {
		observ.OracleRequests.WithLabelValues("decode_error").Inc()
		return Decision{}, fmt.Errorf("%w: decode: %v", ErrUnavailable, err)
	}
	if cr.Error != nil {
		observ.OracleRequests.WithLabelValues("api_error").Inc()
		return Decision{}, fmt.Errorf("%w: %s", ErrUnavailable, cr.Error.Message)
	}
	if len(cr.Choices) == 0 {
		observ.OracleRequests.WithLabelValues("empty").Inc()
		return Decision{}, fmt.Errorf("%w: empty response", ErrUnavailable)
	}

	msg := cr.Choices[0].Message
	if len(msg.ToolCalls) > 0 {
		tc := msg.ToolCalls[0]
		observ.OracleRequests.WithLabelValues("tool_call").Inc()
		return Decision{Call: &ToolCall{
			ID:   tc.ID,
			Name: tc.Function.Name,
			Args: normalizeArgs(tc.Function.Arguments),
		}}, nil
	}
	observ.OracleRequests.WithLabelValues("reply").Inc()
	return Decision{Reply: msg.Content}, nil
}

// normalizeArgs accepts tool arguments either as a JSON object or as
// the JSON-encoded string the OpenAI surface actually emits.
func normalizeArgs(raw json.RawMessage) json.RawMessage {
	if len(raw) > 0 && raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err == nil {
			return json.RawMessage(s)
		}
	}
	return raw
}

var _ Oracle = (*OpenAIClient)(nil)
