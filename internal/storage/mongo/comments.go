package mongo

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

	"go.mongodb.org/mongo-driver/bson"
	mongodriver "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// commentDoc — представление комментария в коллекции.
// _id — идентификатор комментария у источника, поэтому upsert по нему
// естественным образом дедуплицирует повторные проходы архивации.
type commentDoc struct {
	ID          string    `bson:"_id"`
	PostID      string    `bson:"post_id"`
	ParentKind  int       `bson:"parent_kind"`
	ParentID    string    `bson:"parent_id"`
	Body        string    `bson:"body"`
	Score       int64     `bson:"score"`
	Permalink   string    `bson:"permalink"`
	IsSubmitter bool      `bson:"is_submitter"`
	CreatedAt   time.Time `bson:"created_at"`
	Depth       int32     `bson:"depth"`
	ArchivedAt  time.Time `bson:"archived_at"`
}

// toDoc переводит доменный комментарий в документ коллекции.
func toDoc(c models.Comment) commentDoc {
	// MongoDB DateTime хранит миллисекунды.
	toMS := func(t time.Time) time.Time { return t.UTC().Truncate(time.Millisecond) }

	return commentDoc{
		ID:          c.ID,
		PostID:      c.PostID,
		ParentKind:  int(c.Parent.Kind),
		ParentID:    c.Parent.ID,
		Body:        c.Body,
		Score:       c.Score,
		Permalink:   c.Permalink,
		IsSubmitter: c.IsSubmitter,
		CreatedAt:   toMS(c.CreatedAt),
		Depth:       c.Depth,
		ArchivedAt:  toMS(c.FetchedAt),
	}
}

// fromDoc переводит документ обратно в доменную модель.
func fromDoc(d commentDoc) models.Comment {
	return models.Comment{
		ID:          d.ID,
		PostID:      d.PostID,
		Parent:      models.ParentRef{Kind: models.ParentKind(d.ParentKind), ID: d.ParentID},
		Body:        d.Body,
		Score:       d.Score,
		Permalink:   d.Permalink,
		IsSubmitter: d.IsSubmitter,
		CreatedAt:   d.CreatedAt.UTC(),
		Depth:       d.Depth,
		FetchedAt:   d.ArchivedAt.UTC(),
	}
}

// ReplaceThread заменяет цепочку комментариев поста: upsert каждого пришедшего
// комментария по _id и удаление из коллекции тех комментариев поста, которых
// в новой цепочке больше нет.
func (m *Mongo) ReplaceThread(ctx context.Context, postID string, items []models.Comment) error {
	const op = "storage/mongo/ReplaceThread"

	cleanPostID := strings.TrimSpace(postID)
	if cleanPostID == "" {
		return fmt.Errorf("%s: empty post id", op)
	}

	keep := make([]string, 0, len(items))

	if len(items) > 0 {
		writes := make([]mongodriver.WriteModel, 0, len(items))
		for _, item := range items {
			doc := toDoc(item)
			doc.PostID = cleanPostID
			keep = append(keep, doc.ID)

			writes = append(writes, mongodriver.NewReplaceOneModel().
				SetFilter(bson.D{{Key: "_id", Value: doc.ID}}).
				SetReplacement(doc).
				SetUpsert(true))
		}

		// Порядок внутри пачки не важен — включаем unordered для скорости.
		if _, err := m.comments.BulkWrite(ctx, writes, options.BulkWrite().SetOrdered(false)); err != nil {
			return fmt.Errorf("%s: bulk write: %w", op, err)
		}
	}

	// Чистка устаревших документов поста.
	filter := bson.D{{Key: "post_id", Value: cleanPostID}}
	if len(keep) > 0 {
		filter = append(filter, bson.E{Key: "_id", Value: bson.D{{Key: "$nin", Value: keep}}})
	}

	if _, err := m.comments.DeleteMany(ctx, filter); err != nil {
		return fmt.Errorf("%s: delete stale: %w", op, err)
	}

	return nil
}

// ListByPost возвращает страницу комментариев поста.
// Сортировка: created_at ASC, _id ASC — естественный порядок чтения цепочки.
// При некорректном page_token — storage.ErrInvalidCursor.
func (m *Mongo) ListByPost(ctx context.Context, postID string, opts models.ListOptions) (*models.CommentPage, error) {
	const op = "storage/mongo/ListByPost"

	cleanPostID := strings.TrimSpace(postID)
	if cleanPostID == "" {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	limit := int64(opts.Limit)
	if limit <= 0 {
		// Защита от нуля/отрицательного значения.
		limit = 1
	}

	filter := bson.D{
		{Key: "post_id", Value: cleanPostID},
	}

	findOpts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: 1}, {Key: "_id", Value: 1}}).
		SetLimit(limit)

	// Курсор "больше" для ASC сортировки.
	if strings.TrimSpace(opts.PageToken) != "" {
		t, id, decErr := decodeCursor(opts.PageToken)
		if decErr != nil {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrInvalidCursor)
		}

		filter = append(filter, bson.E{Key: "$or", Value: bson.A{
			bson.D{{Key: "created_at", Value: bson.D{{Key: "$gt", Value: t}}}},
			bson.D{
				{Key: "created_at", Value: t},
				{Key: "_id", Value: bson.D{{Key: "$gt", Value: id}}},
			},
		}})
	}

	cur, err := m.comments.Find(ctx, filter, findOpts)
	if err != nil {
		return nil, fmt.Errorf("%s: find: %w", op, err)
	}
	defer cur.Close(ctx)

	var page models.CommentPage
	for cur.Next(ctx) {
		var doc commentDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("%s: decode: %w", op, err)
		}

		page.Items = append(page.Items, fromDoc(doc))
	}

	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("%s: cursor: %w", op, err)
	}

	if n := len(page.Items); n > 0 {
		last := page.Items[n-1]
		page.NextPageToken = encodeCursor(last.CreatedAt, last.ID)
	}

	return &page, nil
}

// CommentByID возвращает комментарий по идентификатору.
// Если запись не найдена — storage.ErrNotFound.
func (m *Mongo) CommentByID(ctx context.Context, id string) (*models.Comment, error) {
	const op = "storage/mongo/CommentByID"

	cleanID := strings.TrimSpace(id)
	if cleanID == "" {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	var doc commentDoc
	if err := m.comments.FindOne(ctx, bson.D{{Key: "_id", Value: cleanID}}).Decode(&doc); err != nil {
		if errors.Is(err, mongodriver.ErrNoDocuments) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	out := fromDoc(doc)

	return &out, nil
}

// encodeCursor кодирует пару (created_at, _id) в непрозрачный токен для клиента.
func encodeCursor(createdAt time.Time, id string) string {
	raw := fmt.Sprintf("%d|%s", createdAt.UTC().UnixNano(), id)

	return base64.RawURLEncoding.EncodeToString([]byte(raw))
}

// decodeCursor декодирует токен обратно в пару ключей.
func decodeCursor(token string) (time.Time, string, error) {
	res, err := base64.RawURLEncoding.DecodeString(strings.TrimSpace(token))
	if err != nil {
		return time.Time{}, "", err
	}

	parts := strings.SplitN(string(res), "|", 2)
	if len(parts) != 2 || parts[1] == "" {
		return time.Time{}, "", fmt.Errorf("bad parts")
	}

	nanos, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return time.Time{}, "", err
	}

	return time.Unix(0, nanos).UTC(), parts[1], nil
}

// Проверка на соответствие интерфейсу CommentsStorage.
var _ storage.CommentsStorage = (*Mongo)(nil)
