// Package oracle talks to the external NLU model that interprets the
// conversation. The model decides each turn: either a final answer for
// the user, or one tool call for the intent router to execute.
package oracle

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/UmmeHabiba1312/Kharedo-api/internal/intent"
	"github.com/UmmeHabiba1312/Kharedo-api/internal/session"
)

var ErrUnavailable = errors.New("oracle unavailable")

// ToolCall is the oracle's request to run one operation with concrete
// argument values.
type ToolCall struct {
	ID   string
	Name string
	Args json.RawMessage
}

// Message is one entry of the working transcript for a single chat
// request. Beyond the stored {role, content} turns it can carry the
// tool-call exchange of the current turn.
type Message struct {
	Role       string
	Content    string
	ToolCallID string    // set on tool-result messages
	Call       *ToolCall // set on assistant tool-call messages
}

// FromTurns lifts stored conversation turns into oracle messages.
func FromTurns(turns []session.Turn) []Message {
	out := make([]Message, 0, len(turns))
	for _, t := range turns {
		out = append(out, Message{Role: t.Role, Content: t.Content})
	}
	return out
}

// Decision is the oracle's verdict for a turn: Reply when Call is nil,
// otherwise exactly one tool invocation.
type Decision struct {
	Reply string
	Call  *ToolCall
}

type Oracle interface {
	Decide(ctx context.Context, msgs []Message, tools []intent.ToolSpec) (Decision, error)
}
