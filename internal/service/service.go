// service содержит бизнес-логику reddit-archive-service.
package service

import (
	"errors"

	"github.com/pribylovaa/reddit-archive-service/internal/config"
	"github.com/pribylovaa/reddit-archive-service/internal/storage"
)

var (
	// ErrNotFound — сущность отсутствует.
	// Транспорт: 404 Not Found.
	ErrNotFound = errors.New("not found")
	// ErrInvalidCursor — битый/чужой page_token.
	// Транспорт: 400 Bad Request.
	ErrInvalidCursor = errors.New("invalid cursor")
	// ErrInvalidArgument - некорректные входные аргументы.
	// Транспорт: 400 Bad Request.
	ErrInvalidArgument = errors.New("invalid argument")
)

// Service — описывает бизнес-логику архива: периодическую архивацию
// активности автора и read-only выдачу накопленного.
type Service struct {
	db       storage.Storage
	comments storage.CommentsStorage
	cfg      config.Config
}

// New создает новый экземпляр Service.
func New(db storage.Storage, comments storage.CommentsStorage, cfg config.Config) *Service {
	return &Service{
		db:       db,
		comments: comments,
		cfg:      cfg,
	}
}
