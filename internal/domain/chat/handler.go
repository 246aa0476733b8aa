package chat

import (
	"encoding/json"
	"net/http"

	gorillawebsocket "github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// Frame is one outbound WebSocket message. Type is "chunk" while text is
// flowing, "done" when the reply is complete and "error" on failure.
type Frame struct {
	Type string `json:"type"`
	Text string `json:"text,omitempty"`
}

// clientRequest is the inbound message starting one exchange.
type clientRequest struct {
	History []Message `json:"history"`
}

// Conn abstracts a WebSocket connection for testability.
type Conn interface {
	ReadMessage() (messageType int, p []byte, err error)
	WriteMessage(messageType int, data []byte) error
	Close() error
}

type Handler struct {
	streamer Streamer
	upgrader gorillawebsocket.Upgrader
	log      zerolog.Logger
}

func NewHandler(streamer Streamer, log zerolog.Logger) *Handler {
	return &Handler{
		streamer: streamer,
		upgrader: gorillawebsocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
		log: log,
	}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.GET("/chat/ws", h.ServeWS)
}

// ServeWS upgrades the connection and serves one streamed reply per
// inbound history message until the client disconnects.
func (h *Handler) ServeWS(c echo.Context) error {
	ws, err := h.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "websocket upgrade failed")
	}
	defer ws.Close()

	h.serve(c, ws)
	return nil
}

func (h *Handler) serve(c echo.Context, conn Conn) {
	ctx := c.Request().Context()
	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			return
		}
		var req clientRequest
		if err := json.Unmarshal(data, &req); err != nil {
			h.writeFrame(conn, Frame{Type: "error", Text: "invalid request"})
			continue
		}

		chunks, err := h.streamer.Stream(ctx, req.History)
		if err != nil {
			h.log.Error().Err(err).Msg("chat stream failed to start")
			h.writeFrame(conn, Frame{Type: "error", Text: "assistant unavailable; please retry"})
			continue
		}

		failed := false
		for chunk := range chunks {
			if chunk.Err != nil {
				h.log.Error().Err(chunk.Err).Msg("chat stream aborted")
				h.writeFrame(conn, Frame{Type: "error", Text: "assistant stream failed; please retry"})
				failed = true
				break
			}
			if err := h.writeFrame(conn, Frame{Type: "chunk", Text: chunk.Text}); err != nil {
				return
			}
		}
		if failed {
			continue
		}
		if err := h.writeFrame(conn, Frame{Type: "done"}); err != nil {
			return
		}
	}
}

func (h *Handler) writeFrame(conn Conn, f Frame) error {
	data, err := json.Marshal(f)
	if err != nil {
		return err
	}
	return conn.WriteMessage(gorillawebsocket.TextMessage, data)
}
