package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/pribylovaa/reddit-archive-service/internal/models"
	"github.com/pribylovaa/reddit-archive-service/internal/storage"

	"github.com/jackc/pgx/v5"
)

// SaveRun фиксирует завершённый проход архивации.
func (s *Storage) SaveRun(ctx context.Context, run models.Run) error {
	const op = "storage.postgres.SaveRun"

	_, err := s.db.Exec(ctx, `
	INSERT INTO runs (id, username, subreddit, started_at, finished_at, total_posts, total_comments)
	VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, run.ID, run.Username, run.Subreddit, run.StartedAt.UTC(), run.FinishedAt.UTC(),
		run.TotalPosts, run.TotalComments)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// LatestRun возвращает последний по started_at проход архивации.
// Если проходов ещё не было — storage.ErrNotFound.
func (s *Storage) LatestRun(ctx context.Context) (*models.Run, error) {
	const op = "storage.postgres.LatestRun"

	var run models.Run
	err := s.db.QueryRow(ctx, `
	SELECT id, username, subreddit, started_at, finished_at, total_posts, total_comments
	FROM runs
	ORDER BY started_at DESC, id DESC
	LIMIT 1
	`).Scan(
		&run.ID,
		&run.Username,
		&run.Subreddit,
		&run.StartedAt,
		&run.FinishedAt,
		&run.TotalPosts,
		&run.TotalComments,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	run.StartedAt = run.StartedAt.UTC()
	run.FinishedAt = run.FinishedAt.UTC()

	return &run, nil
}
