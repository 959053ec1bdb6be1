package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"

	"awareness-hub-service/internal/domain"
)

// PodcastCollection stores podcast episodes as JSONB documents.
type PodcastCollection struct {
	pool *pgxpool.Pool
}

func NewPodcastCollection(pool *pgxpool.Pool) *PodcastCollection {
	return &PodcastCollection{pool: pool}
}

func (c *PodcastCollection) Add(ctx context.Context, podcast domain.Podcast) (string, error) {
	if podcast.ID == "" {
		podcast.ID = uuid.NewString()
	}
	raw, err := json.Marshal(podcast)
	if err != nil {
		return "", fmt.Errorf("marshal podcast: %w", err)
	}
	_, err = c.pool.Exec(ctx,
		`INSERT INTO podcasts (id, data, created_at) VALUES ($1, $2, $3)`,
		podcast.ID, raw, podcast.CreatedAt)
	if err != nil {
		return "", fmt.Errorf("insert podcast: %w", err)
	}
	return podcast.ID, nil
}

func (c *PodcastCollection) List(ctx context.Context) ([]domain.Podcast, error) {
	rows, err := c.pool.Query(ctx, `SELECT data FROM podcasts ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list podcasts: %w", err)
	}
	defer rows.Close()

	var podcasts []domain.Podcast
	for rows.Next() {
		var raw []byte
		if err := rows.Scan(&raw); err != nil {
			return nil, fmt.Errorf("scan podcast: %w", err)
		}
		var podcast domain.Podcast
		if err := json.Unmarshal(raw, &podcast); err != nil {
			return nil, fmt.Errorf("unmarshal podcast: %w", err)
		}
		podcasts = append(podcasts, podcast)
	}
	return podcasts, rows.Err()
}

func (c *PodcastCollection) Get(ctx context.Context, id string) (domain.Podcast, error) {
	var raw []byte
	err := c.pool.QueryRow(ctx, `SELECT data FROM podcasts WHERE id = $1`, id).Scan(&raw)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Podcast{}, domain.ErrPodcastNotFound
	}
	if err != nil {
		return domain.Podcast{}, fmt.Errorf("get podcast: %w", err)
	}
	var podcast domain.Podcast
	if err := json.Unmarshal(raw, &podcast); err != nil {
		return domain.Podcast{}, fmt.Errorf("unmarshal podcast: %w", err)
	}
	return podcast, nil
}

func (c *PodcastCollection) Delete(ctx context.Context, id string) error {
	tag, err := c.pool.Exec(ctx, `DELETE FROM podcasts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete podcast: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrPodcastNotFound
	}
	return nil
}
