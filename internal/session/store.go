// Package session keeps per-session conversation transcripts. The
// transcript is append-only; reads return a bounded window of the most
// recent turns so replay to the oracle cannot grow without limit.
package session

import "context"

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleTool      = "tool"

	// DefaultSessionID is used when the caller does not identify itself.
	DefaultSessionID = "default_user"

	// DefaultWindow is the number of most-recent turns replayed to the
	// oracle on each request.
	DefaultWindow = 40
)

type Turn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type Store interface {
	Append(ctx context.Context, sessionID string, turns ...Turn) error
	// History returns up to window most-recent turns, oldest first.
	// window <= 0 means DefaultWindow.
	History(ctx context.Context, sessionID string, window int) ([]Turn, error)
}
