// models содержит доменные сущности reddit-archive-service.
// Эти типы используются слоями бизнес-логики, хранилища и транспорта.
package models

import (
	"time"

	"github.com/google/uuid"
)

// ParentKind — тип родителя комментария.
type ParentKind int

const (
	// ParentUnknown — родитель не распознан (битый префикс у источника).
	ParentUnknown ParentKind = iota
	// ParentSubmission — родитель комментария — сам пост (верхний уровень).
	ParentSubmission
	// ParentComment — родитель — другой комментарий.
	ParentComment
)

// ParentRef — типизированная ссылка на родителя комментария.
// Заменяет строковые префиксы источника (t3_/t1_) на явный вариант.
type ParentRef struct {
	Kind ParentKind
	ID   string
}

// Post — доменная сущность текстового поста.
//
// Особенности:
//   - ID — идентификатор поста у источника (base36, без префикса t3_);
//   - Временные метки — в UTC.
type Post struct {
	// ID — идентификатор поста у источника.
	ID string
	// Title - заголовок поста.
	Title string
	// Text - полный текст поста (selftext).
	Text string
	// Score - рейтинг поста на момент обхода.
	Score int64
	// UpvoteRatio - доля положительных голосов.
	UpvoteRatio float64
	// CommentCount - общее число комментариев под постом у источника.
	CommentCount int64
	// UserCommentCount - число комментариев автора, сохранённых в архиве.
	UserCommentCount int64
	// URL - ссылка на материал.
	URL string
	// Permalink - абсолютная ссылка на пост.
	Permalink string
	// CreatedAt - время публикации у источника (UTC).
	CreatedAt time.Time
	// FetchedAt - время загрузки поста в архив (UTC).
	FetchedAt time.Time
}

// Comment — доменная сущность комментария автора.
//
// Важно:
//   - ID/PostID — идентификаторы источника без префиксов;
//   - Parent — типизированная ссылка на родителя (пост или комментарий);
//   - Depth — глубина в цепочке, корень = 0. Проставляется реконструкцией
//     цепочек (пакет chains), до этого значение не определено.
type Comment struct {
	ID          string
	PostID      string
	Parent      ParentRef
	Body        string
	Score       int64
	Permalink   string
	IsSubmitter bool
	CreatedAt   time.Time
	// FetchedAt - время загрузки комментария в архив (UTC).
	FetchedAt time.Time
	Depth     int32
}

// Run — итог одного прохода архивации.
type Run struct {
	ID            uuid.UUID
	Username      string
	Subreddit     string
	StartedAt     time.Time
	FinishedAt    time.Time
	TotalPosts    int64
	TotalComments int64
}

// ListOptions — параметры выборки списков доменных сущностей.
//
// Особенности:
//   - при Limit == 0 применяется серверный default (из config.LimitsConfig.Default);
//   - PageToken == "" -> первая страница.
type ListOptions struct {
	Limit     int32
	PageToken string
}

// PostPage — страница постов со ссылкой на продолжение.
type PostPage struct {
	Items         []Post
	NextPageToken string
}

// CommentPage — страница комментариев со ссылкой на продолжение.
type CommentPage struct {
	Items         []Comment
	NextPageToken string
}
