package http

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"awareness-hub-service/internal/app"
	"awareness-hub-service/internal/domain"
)

// Handler wires the core services into the REST surface.
type Handler struct {
	games    *app.GameService
	stories  *app.StoryService
	podcasts *app.PodcastService
	auth     *AdminAuth
	mediaDir string
}

func NewHandler(games *app.GameService, stories *app.StoryService, podcasts *app.PodcastService, auth *AdminAuth, mediaDir string) *Handler {
	return &Handler{games: games, stories: stories, podcasts: podcasts, auth: auth, mediaDir: mediaDir}
}

// Routes builds the router: public content and game routes, an
// admin-only moderation subtree, and static media.
func (h *Handler) Routes(wall *WallHandler) chi.Router {
	r := chi.NewRouter()

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("ok"))
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/games", h.listGames)
		r.Post("/games/{quizID}/attempts", h.startAttempt)
		r.Post("/attempts/{attemptID}/answers", h.submitAnswer)
		r.Post("/attempts/{attemptID}/advance", h.advance)

		r.Post("/stories", h.submitStory)
		r.Get("/wall", h.wall)
		r.Post("/stories/{storyID}/reactions", h.react)

		r.Get("/podcasts", h.listPodcasts)

		r.Route("/admin", func(r chi.Router) {
			r.Use(h.auth.Middleware)
			r.Get("/stories", h.listStories)
			r.Post("/stories/{storyID}/decision", h.decide)
			r.Delete("/stories/{storyID}", h.removeStory)
			r.Post("/podcasts", h.publishPodcast)
			r.Delete("/podcasts/{podcastID}", h.deletePodcast)
		})
	})

	if wall != nil {
		r.Get("/ws/wall", wall.ServeWS)
	}
	if h.mediaDir != "" {
		fs := http.StripPrefix("/media/", http.FileServer(http.Dir(h.mediaDir)))
		r.Get("/media/*", fs.ServeHTTP)
	}
	return r
}

// questionView is what a player sees before answering: no correct index,
// no explanation.
type questionView struct {
	Prompt  string   `json:"prompt"`
	Options []string `json:"options"`
}

type attemptView struct {
	AttemptID string        `json:"attemptId"`
	QuizID    string        `json:"quizId"`
	Position  int           `json:"position"`
	Total     int           `json:"total"`
	Score     int           `json:"score"`
	Question  *questionView `json:"question,omitempty"`
}

func (h *Handler) listGames(w http.ResponseWriter, r *http.Request) {
	games, err := h.games.Games(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, games)
}

func (h *Handler) startAttempt(w http.ResponseWriter, r *http.Request) {
	attempt, err := h.games.StartAttempt(r.Context(), chi.URLParam(r, "quizID"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, h.attemptView(attempt))
}

func (h *Handler) submitAnswer(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Option int `json:"option"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "invalid answer payload", http.StatusBadRequest)
		return
	}

	attempt, correct, err := h.games.SubmitAnswer(r.Context(), chi.URLParam(r, "attemptID"), payload.Option)
	if err != nil {
		h.writeError(w, err)
		return
	}
	question, _ := h.games.CurrentQuestion(attempt)
	writeJSON(w, http.StatusOK, map[string]any{
		"correct":       correct,
		"correctOption": question.CorrectIdx,
		"explanation":   question.Explanation,
		"score":         attempt.Score,
	})
}

func (h *Handler) advance(w http.ResponseWriter, r *http.Request) {
	attempt, finished, err := h.games.Advance(r.Context(), chi.URLParam(r, "attemptID"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	if finished != nil {
		writeJSON(w, http.StatusOK, map[string]any{"finished": true, "result": finished})
		return
	}
	writeJSON(w, http.StatusOK, h.attemptView(attempt))
}

func (h *Handler) attemptView(attempt *domain.Attempt) attemptView {
	view := attemptView{
		AttemptID: attempt.ID,
		QuizID:    attempt.QuizID,
		Position:  attempt.Position,
		Total:     len(attempt.QuestionOrder),
		Score:     attempt.Score,
	}
	if question, ok := h.games.CurrentQuestion(attempt); ok {
		options := make([]string, len(question.Options))
		for i, opt := range question.Options {
			options[i] = opt.Text
		}
		view.Question = &questionView{Prompt: question.Prompt, Options: options}
	}
	return view
}

func (h *Handler) submitStory(w http.ResponseWriter, r *http.Request) {
	var in app.SubmitStoryInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "invalid story payload", http.StatusBadRequest)
		return
	}
	id, err := h.stories.Submit(r.Context(), in)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"id": id})
}

func (h *Handler) wall(w http.ResponseWriter, r *http.Request) {
	stories, err := h.stories.Published(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stories)
}

func (h *Handler) react(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Kind domain.ReactionKind `json:"kind"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "invalid reaction payload", http.StatusBadRequest)
		return
	}
	if err := h.stories.React(chi.URLParam(r, "storyID"), payload.Kind); err != nil {
		h.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) listStories(w http.ResponseWriter, r *http.Request) {
	status := domain.StoryStatus(r.URL.Query().Get("status"))
	stories, err := h.stories.ListByStatus(r.Context(), status)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stories)
}

func (h *Handler) decide(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Decision domain.StoryStatus `json:"decision"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "invalid decision payload", http.StatusBadRequest)
		return
	}
	if err := h.stories.Decide(r.Context(), chi.URLParam(r, "storyID"), payload.Decision); err != nil {
		h.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) removeStory(w http.ResponseWriter, r *http.Request) {
	if err := h.stories.Remove(r.Context(), chi.URLParam(r, "storyID")); err != nil {
		h.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) listPodcasts(w http.ResponseWriter, r *http.Request) {
	episodes, err := h.podcasts.List(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, episodes)
}

// publishPodcast accepts a multipart form: metadata fields plus an
// "audio" file part.
func (h *Handler) publishPodcast(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(64 << 20); err != nil {
		http.Error(w, "invalid multipart form", http.StatusBadRequest)
		return
	}
	file, header, err := r.FormFile("audio")
	if err != nil {
		http.Error(w, "missing audio file", http.StatusBadRequest)
		return
	}
	defer file.Close()

	in := app.PublishPodcastInput{
		Title:       r.FormValue("title"),
		Host:        r.FormValue("host"),
		Guest:       r.FormValue("guest"),
		Duration:    r.FormValue("duration"),
		Date:        r.FormValue("date"),
		Description: r.FormValue("description"),
		Category:    r.FormValue("category"),
	}
	podcast, err := h.podcasts.Publish(r.Context(), in, file, header.Filename)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, podcast)
}

func (h *Handler) deletePodcast(w http.ResponseWriter, r *http.Request) {
	if err := h.podcasts.Delete(r.Context(), chi.URLParam(r, "podcastID")); err != nil {
		h.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// writeError maps domain errors onto status codes: precondition failures
// are 4xx, anything else is a remote-store failure the caller may retry.
func (h *Handler) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrStoryTooShort),
		errors.Is(err, domain.ErrInvalidDecision),
		errors.Is(err, domain.ErrUnknownReaction),
		errors.Is(err, domain.ErrInvalidOption):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, domain.ErrAlreadyAnswered),
		errors.Is(err, domain.ErrMustAnswerFirst),
		errors.Is(err, domain.ErrAttemptFinished),
		errors.Is(err, domain.ErrQuizLocked):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, domain.ErrQuizNotFound),
		errors.Is(err, domain.ErrAttemptNotFound),
		errors.Is(err, domain.ErrStoryNotFound),
		errors.Is(err, domain.ErrPodcastNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	default:
		log.Printf("remote store error: %v", err)
		http.Error(w, "service temporarily unavailable", http.StatusServiceUnavailable)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("write response: %v", err)
	}
}
