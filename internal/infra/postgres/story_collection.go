package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4/pgxpool"

	"awareness-hub-service/internal/domain"
)

// StoryCollection stores stories as one JSONB document per row. Listing
// follows the created_at column so ordering does not depend on document
// contents.
type StoryCollection struct {
	pool *pgxpool.Pool
}

func NewStoryCollection(pool *pgxpool.Pool) *StoryCollection {
	return &StoryCollection{pool: pool}
}

func (c *StoryCollection) Add(ctx context.Context, story domain.Story) (string, error) {
	if story.ID == "" {
		story.ID = uuid.NewString()
	}
	raw, err := json.Marshal(story)
	if err != nil {
		return "", fmt.Errorf("marshal story: %w", err)
	}
	_, err = c.pool.Exec(ctx,
		`INSERT INTO stories (id, data, created_at) VALUES ($1, $2, $3)`,
		story.ID, raw, story.CreatedAt)
	if err != nil {
		return "", fmt.Errorf("insert story: %w", err)
	}
	return story.ID, nil
}

func (c *StoryCollection) List(ctx context.Context) ([]domain.Story, error) {
	rows, err := c.pool.Query(ctx, `SELECT data FROM stories ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list stories: %w", err)
	}
	defer rows.Close()

	var stories []domain.Story
	for rows.Next() {
		var raw []byte
		if err := rows.Scan(&raw); err != nil {
			return nil, fmt.Errorf("scan story: %w", err)
		}
		story, err := decodeStory(raw)
		if err != nil {
			return nil, err
		}
		stories = append(stories, story)
	}
	return stories, rows.Err()
}

func (c *StoryCollection) UpdateStatus(ctx context.Context, id string, status domain.StoryStatus) error {
	tag, err := c.pool.Exec(ctx,
		`UPDATE stories SET data = jsonb_set(data, '{status}', to_jsonb($2::text)) WHERE id = $1`,
		id, string(status))
	if err != nil {
		return fmt.Errorf("update story status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrStoryNotFound
	}
	return nil
}

func (c *StoryCollection) Delete(ctx context.Context, id string) error {
	tag, err := c.pool.Exec(ctx, `DELETE FROM stories WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete story: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrStoryNotFound
	}
	return nil
}

// decodeStory validates a schemaless document once, at the collection
// boundary. Missing fields get explicit defaults instead of being
// patched up ad hoc by callers.
func decodeStory(raw []byte) (domain.Story, error) {
	var story domain.Story
	if err := json.Unmarshal(raw, &story); err != nil {
		return domain.Story{}, fmt.Errorf("unmarshal story: %w", err)
	}
	if story.Language == "" {
		story.Language = "en"
	}
	if !domain.ValidStatus(story.Status) {
		story.Status = domain.StoryPending
	}
	if story.Reactions == nil {
		story.Reactions = map[domain.ReactionKind]int{
			domain.ReactStayStrong:     0,
			domain.ReactWeStandWithYou: 0,
			domain.ReactYouInspireMe:   0,
		}
	}
	return story, nil
}
