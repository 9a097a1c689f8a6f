package postgres

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/pribylovaa/reddit-archive-service/internal/models"
	"github.com/pribylovaa/reddit-archive-service/internal/storage"

	"github.com/jackc/pgx/v5"
)

// SavePosts сохраняет пачку постов с upsert по идентификатору поста.
//
// Политика обновления:
//   - title/selftext — обновляются, только если пришли непустые значения
//     (источник мог отдать удалённый пост с пустым телом);
//   - score/upvote_ratio/comment_count/user_comment_count — обновляются всегда;
//   - created_at — не меняется;
//   - fetched_at — обновляется всегда.
func (s *Storage) SavePosts(ctx context.Context, items []models.Post) error {
	const op = "storage.postgres.SavePosts"

	if len(items) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	for _, item := range items {
		batch.Queue(`
		INSERT INTO posts (id, title, selftext, score, upvote_ratio, comment_count, user_comment_count, url, permalink, created_at, fetched_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (id) DO UPDATE
		SET
		title = CASE WHEN EXCLUDED.title <> '' THEN EXCLUDED.title ELSE posts.title END,
		selftext = CASE WHEN EXCLUDED.selftext <> '' THEN EXCLUDED.selftext ELSE posts.selftext END,
		score = EXCLUDED.score,
		upvote_ratio = EXCLUDED.upvote_ratio,
		comment_count = EXCLUDED.comment_count,
		user_comment_count = EXCLUDED.user_comment_count,
		url = CASE WHEN EXCLUDED.url <> '' THEN EXCLUDED.url ELSE posts.url END,
		permalink = CASE WHEN EXCLUDED.permalink <> '' THEN EXCLUDED.permalink ELSE posts.permalink END,
		fetched_at = EXCLUDED.fetched_at
		`, item.ID, item.Title, item.Text, item.Score, item.UpvoteRatio, item.CommentCount,
			item.UserCommentCount, item.URL, item.Permalink, item.CreatedAt.UTC(), item.FetchedAt.UTC())
	}

	br := s.db.SendBatch(ctx, batch)
	defer br.Close()

	for i := 0; i < batch.Len(); i++ {
		if _, err := br.Exec(); err != nil {
			return fmt.Errorf("%s: batch item %d: %w", op, i, err)
		}
	}

	return nil
}

// ListPosts возвращает страницу постов с курсорной пагинацией.
// Сортировка фиксирована: created_at DESC, id DESC.
// page_token — непрозрачная строка (base64url).
// При некорректном токене возвращает storage.ErrInvalidCursor.
func (s *Storage) ListPosts(ctx context.Context, opts models.ListOptions) (*models.PostPage, error) {
	const op = "storage.postgres.ListPosts"

	limit := opts.Limit
	if limit <= 0 {
		// Защита от нуля/отрицательного значения.
		limit = 1
	}

	var rows pgx.Rows
	var err error

	if opts.PageToken == "" {
		rows, err = s.db.Query(ctx, `
		SELECT id, title, selftext, score, upvote_ratio, comment_count, user_comment_count, url, permalink, created_at, fetched_at
		FROM posts
		ORDER BY created_at DESC, id DESC
		LIMIT $1
		`, limit)
	} else {
		createdCur, idCur, decErr := decodePageToken(opts.PageToken)
		if decErr != nil {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrInvalidCursor)
		}

		rows, err = s.db.Query(ctx, `
		SELECT id, title, selftext, score, upvote_ratio, comment_count, user_comment_count, url, permalink, created_at, fetched_at
		FROM posts
		WHERE (created_at, id) < ($1, $2)
		ORDER BY created_at DESC, id DESC
		LIMIT $3
		`, createdCur, idCur, limit)
	}

	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var page models.PostPage
	for rows.Next() {
		var post models.Post
		if scanErr := rows.Scan(
			&post.ID,
			&post.Title,
			&post.Text,
			&post.Score,
			&post.UpvoteRatio,
			&post.CommentCount,
			&post.UserCommentCount,
			&post.URL,
			&post.Permalink,
			&post.CreatedAt,
			&post.FetchedAt,
		); scanErr != nil {
			return nil, fmt.Errorf("%s: scan row: %w", op, scanErr)
		}

		// Нормализация в UTC.
		post.CreatedAt = post.CreatedAt.UTC()
		post.FetchedAt = post.FetchedAt.UTC()

		page.Items = append(page.Items, post)
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("%s: rows: %w", op, rows.Err())
	}

	// Курсор следующей страницы — по последнему элементу.
	if l := len(page.Items); l > 0 {
		last := page.Items[l-1]
		page.NextPageToken = encodePageToken(last.CreatedAt, last.ID)
	} else {
		page.NextPageToken = ""
	}

	return &page, nil
}

// PostByID возвращает пост по идентификатору.
// Если запись не найдена — storage.ErrNotFound.
func (s *Storage) PostByID(ctx context.Context, id string) (*models.Post, error) {
	const op = "storage.postgres.PostByID"

	cleanID := strings.TrimSpace(id)
	if cleanID == "" {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	var post models.Post
	err := s.db.QueryRow(ctx, `
	SELECT id, title, selftext, score, upvote_ratio, comment_count, user_comment_count, url, permalink, created_at, fetched_at
	FROM posts
	WHERE id = $1
	`, cleanID).Scan(
		&post.ID,
		&post.Title,
		&post.Text,
		&post.Score,
		&post.UpvoteRatio,
		&post.CommentCount,
		&post.UserCommentCount,
		&post.URL,
		&post.Permalink,
		&post.CreatedAt,
		&post.FetchedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	post.CreatedAt = post.CreatedAt.UTC()
	post.FetchedAt = post.FetchedAt.UTC()

	return &post, nil
}

// encodePageToken кодирует пару ключей страницы в непрозрачный токен для клиента.
func encodePageToken(createdAt time.Time, id string) string {
	raw := fmt.Sprintf("%d|%s", createdAt.UTC().UnixNano(), id)

	return base64.RawURLEncoding.EncodeToString([]byte(raw))
}

// decodePageToken декодирует токен обратно в пару ключей.
func decodePageToken(token string) (time.Time, string, error) {
	res, err := base64.RawURLEncoding.DecodeString(strings.TrimSpace(token))
	if err != nil {
		return time.Time{}, "", err
	}

	parts := strings.SplitN(string(res), "|", 2)
	if len(parts) != 2 || parts[1] == "" {
		return time.Time{}, "", fmt.Errorf("bad parts")
	}

	t, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return time.Time{}, "", err
	}

	return time.Unix(0, t).UTC(), parts[1], nil
}
