// storage определяет контракты доступа к БД для reddit-archive-service.
package storage

import (
	"context"
	"errors"

	"github.com/pribylovaa/reddit-archive-service/internal/models"
)

var (
	// ErrNotFound — сущность отсутствует в хранилище.
	ErrNotFound = errors.New("not found")
	// ErrInvalidCursor - битый/чужой page_token (курсор пагинации).
	ErrInvalidCursor = errors.New("invalid cursor")
	// ErrConflict — конфликт уникальности, если политика не upsert.
	ErrConflict = errors.New("conflict")
)

// PostsStorage описывает операции над сущностью models.Post.
type PostsStorage interface {
	// SavePosts сохраняет пачку постов (upsert по идентификатору поста).
	SavePosts(ctx context.Context, items []models.Post) error
	// ListPosts возвращает страницу постов, отсортированных по created_at (DESC).
	// При некорректном page_token должна вернуться ошибка ErrInvalidCursor.
	ListPosts(ctx context.Context, opts models.ListOptions) (*models.PostPage, error)
	// PostByID возвращает пост по его идентификатору.
	// Если запись не найдена — ErrNotFound.
	PostByID(ctx context.Context, id string) (*models.Post, error)
}

// RunsStorage описывает журнал проходов архивации.
type RunsStorage interface {
	// SaveRun фиксирует завершённый проход архивации.
	SaveRun(ctx context.Context, run models.Run) error
	// LatestRun возвращает последний по started_at проход.
	// Если проходов ещё не было — ErrNotFound.
	LatestRun(ctx context.Context) (*models.Run, error)
}

// Storage задаёт контракт доступа к реляционному хранилищу сервиса.
type Storage interface {
	PostsStorage
	RunsStorage
	Close()
}

// CommentsStorage описывает хранилище цепочек комментариев.
type CommentsStorage interface {
	// ReplaceThread атомарно-по-документно заменяет цепочку комментариев поста:
	// upsert каждого комментария по его идентификатору.
	ReplaceThread(ctx context.Context, postID string, items []models.Comment) error
	// ListByPost возвращает страницу комментариев поста.
	// Сортировка: created_at ASC, _id ASC — порядок чтения цепочки.
	// При некорректном page_token — ErrInvalidCursor.
	ListByPost(ctx context.Context, postID string, opts models.ListOptions) (*models.CommentPage, error)
	// CommentByID возвращает комментарий по идентификатору.
	// Если запись не найдена — ErrNotFound.
	CommentByID(ctx context.Context, id string) (*models.Comment, error)
	Close(ctx context.Context) error
}
