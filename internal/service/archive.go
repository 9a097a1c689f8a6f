package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/pribylovaa/reddit-archive-service/internal/chains"
	"github.com/pribylovaa/reddit-archive-service/internal/models"
	"github.com/pribylovaa/reddit-archive-service/pkg/log"
)

// StartArchive запускает периодическую архивацию активности автора
// из конфига s.cfg.Reddit.
//
// Особенности:
//   - загрузка выполняется через переданный Source, сохранение — через
//     s.db (посты, журнал проходов) и s.comments (цепочки);
//   - первый проход выполняется сразу, далее — по тикеру;
//   - ошибка одного прохода логируется и не останавливает цикл;
//   - останавливается по ctx.
func (s *Service) StartArchive(ctx context.Context, source Source) error {
	const op = "service/archive/StartArchive"

	username := s.cfg.Reddit.Username
	subreddit := s.cfg.Reddit.Subreddit
	interval := s.cfg.Reddit.Interval

	if username == "" || subreddit == "" {
		return fmt.Errorf("%s: username and subreddit must be configured", op)
	}

	lg := log.From(ctx)
	lg.Info("archive_start",
		slog.String("op", op),
		slog.String("username", username),
		slog.String("subreddit", subreddit),
		slog.Duration("interval", interval),
	)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	if err := s.archiveOnce(ctx, source); err != nil {
		lg.Warn("archive_tick_error",
			slog.String("op", op),
			slog.String("err", err.Error()),
		)
	}

	for {
		select {
		case <-ctx.Done():
			lg.Info("archive_stop", slog.String("op", op))
			return nil
		case <-ticker.C:
			if err := s.archiveOnce(ctx, source); err != nil {
				lg.Warn("archive_tick_error",
					slog.String("op", op),
					slog.String("err", err.Error()),
				)
			}
		}
	}
}

// archiveOnce — один проход архивации: загрузка постов и комментариев,
// реконструкция цепочек, сохранение и запись в журнал проходов.
func (s *Service) archiveOnce(ctx context.Context, source Source) error {
	const op = "service/archive/archiveOnce"

	lg := log.From(ctx)
	started := time.Now().UTC()

	rawPosts, err := source.UserPosts(ctx, s.cfg.Reddit.Username, s.cfg.Reddit.Subreddit)
	if err != nil {
		return fmt.Errorf("%s: user_posts: %w", op, err)
	}

	posts := make([]models.Post, 0, len(rawPosts))
	targets := make(map[string]struct{}, len(rawPosts))
	for _, raw := range rawPosts {
		post, ok := finalizePost(raw, started)
		if !ok {
			continue
		}

		posts = append(posts, post)
		targets[post.ID] = struct{}{}
	}

	if len(posts) == 0 {
		lg.Info("archive_no_posts",
			slog.String("op", op),
			slog.String("username", s.cfg.Reddit.Username),
			slog.String("subreddit", s.cfg.Reddit.Subreddit),
		)
		return nil
	}

	rawComments, err := source.UserComments(ctx, s.cfg.Reddit.Username)
	if err != nil {
		return fmt.Errorf("%s: user_comments: %w", op, err)
	}

	comments := make([]models.Comment, 0, len(rawComments))
	for _, raw := range rawComments {
		if comm, ok := finalizeComment(raw, started); ok {
			comments = append(comments, comm)
		}
	}

	// Реконструкция цепочек: отбор комментариев, растущих из корневых
	// комментариев автора, с проставлением глубины.
	threads := chains.Reconstruct(comments, targets)

	var totalComments int64
	for i := range posts {
		thread := threads[posts[i].ID]
		posts[i].UserCommentCount = int64(len(thread))
		totalComments += int64(len(thread))
	}

	if err := s.db.SavePosts(ctx, posts); err != nil {
		return fmt.Errorf("%s: save_posts: %w", op, err)
	}

	// Цепочка заменяется даже пустой — у поста могли пропасть комментарии.
	for _, post := range posts {
		if err := s.comments.ReplaceThread(ctx, post.ID, threads[post.ID]); err != nil {
			return fmt.Errorf("%s: replace_thread %s: %w", op, post.ID, err)
		}
	}

	run := models.Run{
		ID:            uuid.New(),
		Username:      s.cfg.Reddit.Username,
		Subreddit:     s.cfg.Reddit.Subreddit,
		StartedAt:     started,
		FinishedAt:    time.Now().UTC(),
		TotalPosts:    int64(len(posts)),
		TotalComments: totalComments,
	}

	if err := s.db.SaveRun(ctx, run); err != nil {
		return fmt.Errorf("%s: save_run: %w", op, err)
	}

	lg.Info("archive_saved",
		slog.String("op", op),
		slog.Int("posts", len(posts)),
		slog.Int("comments_fetched", len(comments)),
		slog.Int64("comments_archived", totalComments),
		slog.Duration("took", run.FinishedAt.Sub(run.StartedAt)),
	)

	return nil
}
