package http

import (
	"net/http"
	"strings"

	"github.com/UmmeHabiba1312/Kharedo-api/internal/adapter/oracle"
	"github.com/UmmeHabiba1312/Kharedo-api/internal/intent"
	"github.com/UmmeHabiba1312/Kharedo-api/internal/logging"
	"github.com/UmmeHabiba1312/Kharedo-api/internal/session"
	"github.com/gin-gonic/gin"
)

// maxToolRounds caps the oracle -> tool -> oracle loop within one turn.
const maxToolRounds = 6

type ChatHandler struct {
	oracle   oracle.Oracle
	router   *intent.Router
	sessions session.Store
	window   int
}

func NewChatHandler(o oracle.Oracle, r *intent.Router, s session.Store, window int) *ChatHandler {
	if window <= 0 {
		window = session.DefaultWindow
	}
	return &ChatHandler{oracle: o, router: r, sessions: s, window: window}
}

type chatMessage struct {
	Role    string `json:"role" binding:"required"`
	Content string `json:"content" binding:"required"`
}

type chatRequest struct {
	Messages []chatMessage `json:"messages" binding:"required,min=1,dive"`
}

// StartChat appends the incoming turns, replays the windowed transcript
// to the oracle and runs tool calls until the oracle produces a reply.
func (h *ChatHandler) StartChat(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad_request"})
		return
	}

	sessionID := c.GetHeader("X-Session-Id")
	if sessionID == "" {
		sessionID = session.DefaultSessionID
	}

	ctx := c.Request.Context()
	l := logging.From(c).With("session_id", sessionID)

	incoming := make([]session.Turn, 0, len(req.Messages))
	for _, m := range req.Messages {
		incoming = append(incoming, session.Turn{Role: m.Role, Content: m.Content})
	}
	if err := h.sessions.Append(ctx, sessionID, incoming...); err != nil {
		l.Error("session append failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "session_store"})
		return
	}

	hist, err := h.sessions.History(ctx, sessionID, h.window)
	if err != nil {
		l.Error("session read failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "session_store"})
		return
	}

	msgs := oracle.FromTurns(hist)
	for round := 0; round < maxToolRounds; round++ {
		dec, err := h.oracle.Decide(ctx, msgs, intent.Specs())
		if err != nil {
			l.Error("oracle turn failed", "round", round, "error", err)
			c.JSON(http.StatusBadGateway, gin.H{"error": "assistant_unavailable"})
			return
		}

		if dec.Call == nil {
			reply := strings.TrimSpace(dec.Reply)
			if err := h.sessions.Append(ctx, sessionID, session.Turn{Role: session.RoleAssistant, Content: reply}); err != nil {
				l.Error("session append failed", "error", err)
			}
			c.JSON(http.StatusOK, gin.H{"response": reply})
			return
		}

		result := h.router.Dispatch(ctx, dec.Call.Name, dec.Call.Args)
		l.Info("tool dispatched", "tool", dec.Call.Name, "round", round)
		msgs = append(msgs,
			oracle.Message{Role: session.RoleAssistant, Call: dec.Call},
			oracle.Message{Role: session.RoleTool, Content: result, ToolCallID: dec.Call.ID},
		)
	}

	l.Error("tool rounds exhausted")
	c.JSON(http.StatusBadGateway, gin.H{"error": "assistant_unavailable"})
}
