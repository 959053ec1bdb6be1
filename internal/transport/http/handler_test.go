package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"awareness-hub-service/internal/app"
	"awareness-hub-service/internal/content"
	"awareness-hub-service/internal/infra/memory"
)

func TestSubmitStoryValidation(t *testing.T) {
	env := newTestEnv(t)
	defer env.server.Close()

	resp := env.postJSON(t, "/api/stories", map[string]any{"bodyText": strings.Repeat("x", 49)}, "")
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 for short story, got %d", resp.StatusCode)
	}

	resp = env.postJSON(t, "/api/stories", map[string]any{"bodyText": strings.Repeat("x", 50)}, "")
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.StatusCode)
	}
	var created struct {
		ID string `json:"id"`
	}
	decodeBody(t, resp, &created)
	if created.ID == "" {
		t.Fatalf("expected story id in response")
	}
}

func TestModerationRequiresToken(t *testing.T) {
	env := newTestEnv(t)
	defer env.server.Close()

	resp, err := http.Get(env.server.URL + "/api/admin/stories")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", resp.StatusCode)
	}
}

func TestModerationFlow(t *testing.T) {
	env := newTestEnv(t)
	defer env.server.Close()

	resp := env.postJSON(t, "/api/stories", map[string]any{"bodyText": strings.Repeat("x", 60)}, "")
	var created struct {
		ID string `json:"id"`
	}
	decodeBody(t, resp, &created)

	resp = env.postJSON(t, "/api/admin/stories/"+created.ID+"/decision", map[string]any{"decision": "approved"}, env.token)
	if resp.StatusCode != http.StatusNoContent {
		t.Fatalf("expected 204 on decision, got %d", resp.StatusCode)
	}
	resp.Body.Close()

	wallResp, err := http.Get(env.server.URL + "/api/wall")
	if err != nil {
		t.Fatalf("wall: %v", err)
	}
	var wall []struct {
		ID     string `json:"id"`
		Status string `json:"status"`
	}
	decodeBody(t, wallResp, &wall)
	found := false
	for _, story := range wall {
		if story.ID == created.ID {
			found = true
		}
	}
	if !found {
		t.Fatalf("approved story missing from wall: %+v", wall)
	}
}

func TestGamePlayEndpoints(t *testing.T) {
	env := newTestEnv(t)
	defer env.server.Close()

	// The later quizzes are locked until progress exists.
	resp := env.postJSON(t, "/api/games/prevention-steps/attempts", nil, "")
	if resp.StatusCode != http.StatusConflict {
		t.Fatalf("expected 409 for locked quiz, got %d", resp.StatusCode)
	}
	resp.Body.Close()

	resp = env.postJSON(t, "/api/games/myth-or-fact/attempts", nil, "")
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201 starting attempt, got %d", resp.StatusCode)
	}
	var attempt struct {
		AttemptID string `json:"attemptId"`
		Total     int    `json:"total"`
		Question  *struct {
			Prompt  string   `json:"prompt"`
			Options []string `json:"options"`
		} `json:"question"`
	}
	decodeBody(t, resp, &attempt)
	if attempt.AttemptID == "" || attempt.Total != 3 || attempt.Question == nil {
		t.Fatalf("unexpected attempt view: %+v", attempt)
	}

	finished := false
	for i := 0; i < attempt.Total; i++ {
		answerResp := env.postJSON(t, "/api/attempts/"+attempt.AttemptID+"/answers", map[string]any{"option": 0}, "")
		if answerResp.StatusCode != http.StatusOK {
			t.Fatalf("answer %d: status %d", i, answerResp.StatusCode)
		}
		answerResp.Body.Close()

		// Double answers are rejected.
		dup := env.postJSON(t, "/api/attempts/"+attempt.AttemptID+"/answers", map[string]any{"option": 1}, "")
		if dup.StatusCode != http.StatusConflict {
			t.Fatalf("expected 409 on duplicate answer, got %d", dup.StatusCode)
		}
		dup.Body.Close()

		advResp := env.postJSON(t, "/api/attempts/"+attempt.AttemptID+"/advance", nil, "")
		if advResp.StatusCode != http.StatusOK {
			t.Fatalf("advance %d: status %d", i, advResp.StatusCode)
		}
		var adv struct {
			Finished bool `json:"finished"`
		}
		decodeBody(t, advResp, &adv)
		finished = adv.Finished
	}
	if !finished {
		t.Fatalf("expected attempt to finish after %d questions", attempt.Total)
	}

	gamesResp, err := http.Get(env.server.URL + "/api/games")
	if err != nil {
		t.Fatalf("games: %v", err)
	}
	var games []struct {
		ID        string `json:"id"`
		BestScore int    `json:"bestScore"`
	}
	decodeBody(t, gamesResp, &games)
	if len(games) != 4 {
		t.Fatalf("expected 4 games, got %d", len(games))
	}
}

type testEnv struct {
	server *httptest.Server
	token  string
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	wall := app.NewWall()
	gameService := app.NewGameService(content.Quizzes(), memory.NewProgressStore(), memory.NewAttemptRegistry())
	storyService := app.NewStoryService(memory.NewStoryCollection(), nil, wall, time.Minute)
	podcastService := app.NewPodcastService(memory.NewPodcastCollection(), nopBlobStore{})

	auth := NewAdminAuth("test-secret")
	token, err := auth.GenerateToken(time.Hour)
	if err != nil {
		t.Fatalf("mint token: %v", err)
	}

	handler := NewHandler(gameService, storyService, podcastService, auth, "")
	server := httptest.NewServer(handler.Routes(NewWallHandler(storyService, wall)))
	return &testEnv{server: server, token: token}
}

func (e *testEnv) postJSON(t *testing.T, path string, payload any, token string) *http.Response {
	t.Helper()
	body := []byte("{}")
	if payload != nil {
		var err error
		body, err = json.Marshal(payload)
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
	}
	req, err := http.NewRequest(http.MethodPost, e.server.URL+path, bytes.NewReader(body))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do: %v", err)
	}
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, v any) {
	t.Helper()
	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		t.Fatalf("decode body: %v", err)
	}
}

type nopBlobStore struct{}

func (nopBlobStore) Upload(_ context.Context, name string, _ io.Reader) (string, error) {
	return "/media/" + name, nil
}

func (nopBlobStore) Delete(_ context.Context, _ string) error { return nil }
