package service

import (
	"testing"
	"time"

	"github.com/pribylovaa/reddit-archive-service/internal/models"
	"github.com/stretchr/testify/require"
)

// Тесты финализации доменных записей (convert.go).

func TestFinalizePost(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC)

	t.Run("ok", func(t *testing.T) {
		t.Parallel()
		in := models.Post{
			ID:        "  p1  ",
			Title:     "  Story  ",
			CreatedAt: now.Add(-time.Hour),
			FetchedAt: now.Add(-24 * time.Hour), // внешнее значение перекрывается
		}

		got, ok := finalizePost(in, now)
		require.True(t, ok)
		require.Equal(t, "p1", got.ID)
		require.Equal(t, "Story", got.Title)
		require.Equal(t, now, got.FetchedAt)
		require.Equal(t, in.CreatedAt.UTC(), got.CreatedAt)
	})

	t.Run("empty id dropped", func(t *testing.T) {
		t.Parallel()
		_, ok := finalizePost(models.Post{Title: "T"}, now)
		require.False(t, ok)
	})

	t.Run("blank title dropped", func(t *testing.T) {
		t.Parallel()
		_, ok := finalizePost(models.Post{ID: "p1", Title: "   "}, now)
		require.False(t, ok)
	})

	t.Run("zero created_at becomes now", func(t *testing.T) {
		t.Parallel()
		got, ok := finalizePost(models.Post{ID: "p1", Title: "T"}, now)
		require.True(t, ok)
		require.Equal(t, now, got.CreatedAt)
	})
}

func TestFinalizeComment(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC)

	t.Run("ok", func(t *testing.T) {
		t.Parallel()
		in := models.Comment{
			ID:        " c1 ",
			PostID:    " p1 ",
			Parent:    models.ParentRef{Kind: models.ParentSubmission, ID: "p1"},
			CreatedAt: now.Add(-time.Minute),
			FetchedAt: now.Add(-24 * time.Hour), // внешнее значение перекрывается
		}

		got, ok := finalizeComment(in, now)
		require.True(t, ok)
		require.Equal(t, "c1", got.ID)
		require.Equal(t, "p1", got.PostID)
		require.Equal(t, now, got.FetchedAt)
	})

	t.Run("missing post id dropped", func(t *testing.T) {
		t.Parallel()
		_, ok := finalizeComment(models.Comment{ID: "c1"}, now)
		require.False(t, ok)
	})

	t.Run("zero created_at becomes now", func(t *testing.T) {
		t.Parallel()
		got, ok := finalizeComment(models.Comment{ID: "c1", PostID: "p1"}, now)
		require.True(t, ok)
		require.Equal(t, now, got.CreatedAt)
	})
}
