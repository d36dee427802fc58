package oracle_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/UmmeHabiba1312/Kharedo-api/internal/adapter/oracle"
	"github.com/UmmeHabiba1312/Kharedo-api/internal/intent"
	"github.com/UmmeHabiba1312/Kharedo-api/internal/logging"
	"github.com/UmmeHabiba1312/Kharedo-api/internal/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	logging.Init("test", filepath.Join(os.TempDir(), "kharedo-test.log"))
	os.Exit(m.Run())
}

func turns(contents ...string) []oracle.Message {
	ts := make([]session.Turn, 0, len(contents))
	for _, c := range contents {
		ts = append(ts, session.Turn{Role: session.RoleUser, Content: c})
	}
	return oracle.FromTurns(ts)
}

func TestDecideFinalReply(t *testing.T) {
	var gotReq map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/chat/completions", r.URL.Path)
		require.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))
		_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"Hi there!"}}]}`))
	}))
	defer srv.Close()

	c := oracle.NewOpenAIClient(srv.URL, "test-key", "gemini-2.0-flash", 5*time.Second)
	dec, err := c.Decide(context.Background(), turns("hello"), intent.Specs())
	require.NoError(t, err)
	require.Nil(t, dec.Call)
	assert.Equal(t, "Hi there!", dec.Reply)

	// system prompt + user turn on the wire, plus the advertised tools
	msgs := gotReq["messages"].([]any)
	require.Len(t, msgs, 2)
	assert.Equal(t, "system", msgs[0].(map[string]any)["role"])
	assert.Len(t, gotReq["tools"].([]any), len(intent.All()))
}

func TestDecideToolCall(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"choices":[{"message":{
			"role":"assistant","content":"",
			"tool_calls":[{"id":"call_7","type":"function","function":{
				"name":"place_order",
				"arguments":{"item":"OnePlus 11","phone_number":"03001234567","address":"X"}
			}}]
		}}]}`))
	}))
	defer srv.Close()

	c := oracle.NewOpenAIClient(srv.URL, "k", "m", 5*time.Second)
	dec, err := c.Decide(context.Background(), turns("order a oneplus"), intent.Specs())
	require.NoError(t, err)
	require.NotNil(t, dec.Call)
	assert.Equal(t, "call_7", dec.Call.ID)
	assert.Equal(t, "place_order", dec.Call.Name)
	assert.Contains(t, string(dec.Call.Args), "OnePlus 11")
}

func TestDecideToolCallStringArguments(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"choices":[{"message":{
			"role":"assistant","content":"",
			"tool_calls":[{"id":"call_8","type":"function","function":{
				"name":"check_order_status",
				"arguments":"{\"order_id\":\"1234\"}"
			}}]
		}}]}`))
	}))
	defer srv.Close()

	c := oracle.NewOpenAIClient(srv.URL, "k", "m", 5*time.Second)
	dec, err := c.Decide(context.Background(), turns("where is my order"), intent.Specs())
	require.NoError(t, err)
	require.NotNil(t, dec.Call)

	var args struct {
		OrderID string `json:"order_id"`
	}
	require.NoError(t, json.Unmarshal(dec.Call.Args, &args), "string-encoded arguments must be unwrapped")
	assert.Equal(t, "1234", args.OrderID)
}

func TestDecideServerErrorIsUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "overloaded", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c := oracle.NewOpenAIClient(srv.URL, "k", "m", 5*time.Second)
	_, err := c.Decide(context.Background(), turns("hi"), nil)
	assert.ErrorIs(t, err, oracle.ErrUnavailable)
}

func TestDecideConnectionRefusedIsUnavailable(t *testing.T) {
	c := oracle.NewOpenAIClient("http://127.0.0.1:1", "k", "m", time.Second)
	_, err := c.Decide(context.Background(), turns("hi"), nil)
	assert.ErrorIs(t, err, oracle.ErrUnavailable)
}

func TestDecideEmptyChoicesIsUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"choices":[]}`))
	}))
	defer srv.Close()

	c := oracle.NewOpenAIClient(srv.URL, "k", "m", 5*time.Second)
	_, err := c.Decide(context.Background(), turns("hi"), nil)
	assert.ErrorIs(t, err, oracle.ErrUnavailable)
}
