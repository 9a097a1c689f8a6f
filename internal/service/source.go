package service

import (
	"context"

	"github.com/pribylovaa/reddit-archive-service/internal/models"
)

// Source описывает абстракцию источника архивируемых данных
// (публичный listing-API reddit и т.п.).
//
// Требования к реализации:
// 1) Поле FetchedAt в возвращаемых объектах должно быть нулевым —
// его проставляет оркестратор сервиса.
// 2) Идентификаторы — без префиксов вида (t1_/t3_); ссылка на родителя
// комментария — типизированная (models.ParentRef).
// 3) CreatedAt — в UTC.
// 4) Реализация обязана уважать ctx (отмена/таймауты).
type Source interface {
	// UserPosts возвращает текстовые посты пользователя в заданном сообществе,
	// от новых к старым.
	UserPosts(ctx context.Context, username, subreddit string) ([]models.Post, error)
	// UserComments возвращает все комментарии пользователя, от новых к старым.
	UserComments(ctx context.Context, username string) ([]models.Comment, error)
}
