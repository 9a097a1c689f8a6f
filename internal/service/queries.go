package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/pribylovaa/reddit-archive-service/internal/models"
	"github.com/pribylovaa/reddit-archive-service/internal/storage"

	"github.com/pribylovaa/reddit-archive-service/pkg/log"
)

// normalizeLimit приводит запрошенный размер страницы к [Default, Max].
func (s *Service) normalizeLimit(limit int32) int32 {
	if limit <= 0 {
		limit = s.cfg.LimitsConfig.Default
	}

	if s.cfg.LimitsConfig.Max > 0 && limit > s.cfg.LimitsConfig.Max {
		limit = s.cfg.LimitsConfig.Max
	}

	return limit
}

// ListPosts возвращает страницу заархивированных постов с нормализацией
// лимита по конфигу.
//
// Ошибки:
// - ErrInvalidCursor — битый/чужой page_token (маппинг storage.ErrInvalidCursor);
// - прочие ошибки стораджа — обёрнутые и прокинуты наверх.
func (s *Service) ListPosts(ctx context.Context, opts models.ListOptions) (*models.PostPage, error) {
	const op = "service.queries.ListPosts"

	lg := log.From(ctx)
	lg.Info("list_posts_request",
		slog.String("op", op),
		slog.Int("limit", int(opts.Limit)),
		slog.Bool("has_page_token", opts.PageToken != ""),
	)

	opts.Limit = s.normalizeLimit(opts.Limit)

	page, err := s.db.ListPosts(ctx, opts)
	if err != nil {
		if errors.Is(err, storage.ErrInvalidCursor) {
			lg.Warn("list_posts_invalid_cursor",
				slog.String("op", op),
			)

			return nil, fmt.Errorf("%s: %w", op, ErrInvalidCursor)
		}

		lg.Error("list_posts_storage_error",
			slog.String("op", op),
			slog.String("err", err.Error()),
		)

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	lg.Info("list_posts_ok",
		slog.String("op", op),
		slog.Int("items", len(page.Items)),
		slog.Bool("has_next_page", page.NextPageToken != ""),
	)

	return page, nil
}

// PostByID возвращает пост по идентификатору.
//
// Ошибки:
// - ErrInvalidArgument — пустой id;
// - ErrNotFound — если запись отсутствует (маппинг storage.ErrNotFound);
// - прочие ошибки стораджа — обёрнутые и прокинуты наверх.
func (s *Service) PostByID(ctx context.Context, id string) (*models.Post, error) {
	const op = "service.queries.PostByID"

	lg := log.From(ctx)
	lg.Info("post_by_id_request",
		slog.String("op", op),
		slog.String("id", id),
	)

	if strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	post, err := s.db.PostByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			lg.Warn("post_by_id_not_found",
				slog.String("op", op),
				slog.String("id", id),
			)

			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		lg.Error("post_by_id_storage_error",
			slog.String("op", op),
			slog.String("id", id),
			slog.String("err", err.Error()),
		)

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	lg.Info("post_by_id_ok",
		slog.String("op", op),
		slog.String("id", id),
	)

	return post, nil
}

// CommentsByPost возвращает страницу цепочки комментариев поста.
//
// Ошибки:
// - ErrInvalidArgument — пустой postID;
// - ErrNotFound — пост отсутствует в архиве;
// - ErrInvalidCursor — битый/чужой page_token;
// - прочие ошибки стораджа — обёрнутые и прокинуты наверх.
func (s *Service) CommentsByPost(ctx context.Context, postID string, opts models.ListOptions) (*models.CommentPage, error) {
	const op = "service.queries.CommentsByPost"

	lg := log.From(ctx)
	lg.Info("comments_by_post_request",
		slog.String("op", op),
		slog.String("post_id", postID),
		slog.Int("limit", int(opts.Limit)),
		slog.Bool("has_page_token", opts.PageToken != ""),
	)

	if strings.TrimSpace(postID) == "" {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	// Пост должен существовать в архиве — иначе 404, а не пустая страница.
	if _, err := s.db.PostByID(ctx, postID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			lg.Warn("comments_by_post_post_not_found",
				slog.String("op", op),
				slog.String("post_id", postID),
			)

			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	opts.Limit = s.normalizeLimit(opts.Limit)

	page, err := s.comments.ListByPost(ctx, postID, opts)
	if err != nil {
		if errors.Is(err, storage.ErrInvalidCursor) {
			lg.Warn("comments_by_post_invalid_cursor",
				slog.String("op", op),
				slog.String("post_id", postID),
			)

			return nil, fmt.Errorf("%s: %w", op, ErrInvalidCursor)
		}

		lg.Error("comments_by_post_storage_error",
			slog.String("op", op),
			slog.String("post_id", postID),
			slog.String("err", err.Error()),
		)

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	lg.Info("comments_by_post_ok",
		slog.String("op", op),
		slog.String("post_id", postID),
		slog.Int("items", len(page.Items)),
		slog.Bool("has_next_page", page.NextPageToken != ""),
	)

	return page, nil
}

// CommentByID возвращает заархивированный комментарий по идентификатору.
//
// Ошибки:
// - ErrInvalidArgument — пустой id;
// - ErrNotFound — если запись отсутствует;
// - прочие ошибки стораджа — обёрнутые и прокинуты наверх.
func (s *Service) CommentByID(ctx context.Context, id string) (*models.Comment, error) {
	const op = "service.queries.CommentByID"

	lg := log.From(ctx)
	lg.Info("comment_by_id_request",
		slog.String("op", op),
		slog.String("id", id),
	)

	if strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	comm, err := s.comments.CommentByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			lg.Warn("comment_by_id_not_found",
				slog.String("op", op),
				slog.String("id", id),
			)

			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		lg.Error("comment_by_id_storage_error",
			slog.String("op", op),
			slog.String("id", id),
			slog.String("err", err.Error()),
		)

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return comm, nil
}

// LatestRun возвращает сведения о последнем проходе архивации.
//
// Ошибки:
// - ErrNotFound — проходов ещё не было;
// - прочие ошибки стораджа — обёрнутые и прокинуты наверх.
func (s *Service) LatestRun(ctx context.Context) (*models.Run, error) {
	const op = "service.queries.LatestRun"

	lg := log.From(ctx)

	run, err := s.db.LatestRun(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			lg.Warn("latest_run_not_found", slog.String("op", op))

			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		lg.Error("latest_run_storage_error",
			slog.String("op", op),
			slog.String("err", err.Error()),
		)

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return run, nil
}
