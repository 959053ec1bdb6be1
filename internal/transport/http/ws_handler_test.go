package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"awareness-hub-service/internal/app"
	"awareness-hub-service/internal/domain"
	"awareness-hub-service/internal/infra/memory"
)

func TestWallFeedPushesModerationUpdates(t *testing.T) {
	wall := app.NewWall()
	storyService := app.NewStoryService(memory.NewStoryCollection(), nil, wall, time.Minute)
	handler := NewWallHandler(storyService, wall)

	mux := http.NewServeMux()
	mux.HandleFunc("/ws/wall", handler.ServeWS)
	server := httptest.NewServer(mux)
	defer server.Close()

	u := "ws" + server.URL[len("http"):] + "/ws/wall"
	conn, _, err := websocket.DefaultDialer.Dial(u, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	// Snapshot arrives first, empty wall.
	msg := readWallMessage(t, conn)
	if msg.Type != "wall" || len(msg.Stories) != 0 {
		t.Fatalf("expected empty wall snapshot, got %+v", msg)
	}

	ctx := context.Background()
	id, err := storyService.Submit(ctx, app.SubmitStoryInput{BodyText: strings.Repeat("s", 60)})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if err := storyService.Decide(ctx, id, domain.StoryApproved); err != nil {
		t.Fatalf("approve: %v", err)
	}

	msg = readWallMessage(t, conn)
	if msg.Type != "wall" || len(msg.Stories) != 1 || msg.Stories[0].ID != id {
		t.Fatalf("expected approved story pushed, got %+v", msg)
	}
}

func readWallMessage(t *testing.T, conn *websocket.Conn) wallMessage {
	t.Helper()
	var msg wallMessage
	_ = conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	if err := conn.ReadJSON(&msg); err != nil {
		t.Fatalf("read json: %v", err)
	}
	return msg
}
