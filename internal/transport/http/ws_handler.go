package http

import (
	"log"
	"net/http"

	"github.com/gorilla/websocket"

	"awareness-hub-service/internal/app"
	"awareness-hub-service/internal/domain"
)

// WallHandler streams the published story wall over a websocket: one
// snapshot on connect, then a fresh one after every moderation change.
type WallHandler struct {
	stories  *app.StoryService
	wall     *app.Wall
	upgrader websocket.Upgrader
}

func NewWallHandler(stories *app.StoryService, wall *app.Wall) *WallHandler {
	return &WallHandler{
		stories: stories,
		wall:    wall,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
}

type wallMessage struct {
	Type    string         `json:"type"`
	Stories []domain.Story `json:"stories,omitempty"`
	Message string         `json:"message,omitempty"`
}

func (h *WallHandler) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("ws upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	snapshot, err := h.stories.Published(r.Context())
	if err != nil {
		_ = conn.WriteJSON(wallMessage{Type: "error", Message: "wall unavailable"})
		return
	}

	updates, cancel := h.wall.Subscribe()
	defer cancel()

	if err := conn.WriteJSON(wallMessage{Type: "wall", Stories: snapshot}); err != nil {
		return
	}

	// Reader goroutine only notices the peer going away; the wall is a
	// one-way feed.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case update, ok := <-updates:
			if !ok {
				return
			}
			if err := conn.WriteJSON(wallMessage{Type: "wall", Stories: update}); err != nil {
				log.Printf("ws write error: %v", err)
				return
			}
		case <-done:
			return
		}
	}
}
