package service

import (
	"strings"
	"time"

	"github.com/pribylovaa/reddit-archive-service/internal/models"
)

// finalizePost доводит пост до инвариантов домена:
//   - ID/Title обязательны (после TrimSpace) — иначе запись отбрасывается;
//   - CreatedAt := CreatedAt || nowUTC (UTC);
//   - FetchedAt := nowUTC (перекрывает любые внешние значения).
//
// Возвращает (пост, ok=false если запись следует отбросить).
func finalizePost(post models.Post, nowUTC time.Time) (models.Post, bool) {
	post.ID = strings.TrimSpace(post.ID)
	post.Title = strings.TrimSpace(post.Title)

	if post.ID == "" || post.Title == "" {
		return models.Post{}, false
	}

	if post.CreatedAt.IsZero() {
		post.CreatedAt = nowUTC
	} else {
		post.CreatedAt = post.CreatedAt.UTC()
	}

	post.FetchedAt = nowUTC

	return post, true
}

// finalizeComment доводит комментарий до инвариантов домена:
//   - ID/PostID обязательны (после TrimSpace) — иначе запись отбрасывается;
//   - CreatedAt := CreatedAt || nowUTC (UTC);
//   - FetchedAt := nowUTC.
//
// Принадлежность цепочке здесь не проверяется — этим занимается
// chains.Reconstruct на полном наборе.
func finalizeComment(comm models.Comment, nowUTC time.Time) (models.Comment, bool) {
	comm.ID = strings.TrimSpace(comm.ID)
	comm.PostID = strings.TrimSpace(comm.PostID)

	if comm.ID == "" || comm.PostID == "" {
		return models.Comment{}, false
	}

	if comm.CreatedAt.IsZero() {
		comm.CreatedAt = nowUTC
	} else {
		comm.CreatedAt = comm.CreatedAt.UTC()
	}

	comm.FetchedAt = nowUTC

	return comm, true
}
