package reddit

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/pribylovaa/reddit-archive-service/internal/config"
	"github.com/pribylovaa/reddit-archive-service/internal/models"
	"github.com/pribylovaa/reddit-archive-service/pkg/log"
)

const (
	prefixSubmission = "t3_"
	prefixComment    = "t1_"
)

// Client реализует service.Source для публичного listing-API reddit.
// Возвращает доменные объекты с незаполненным FetchedAt.
//
// HTTP-клиент настраивается извне (таймауты, прокси и т.д.). Листание по
// курсору after ограничено maxPages — защита от бесконечной выдачи.
type Client struct {
	client    *http.Client
	baseURL   string
	userAgent string
	pageLimit int
	maxPages  int
}

// New создаёт клиента listing-API по конфигурации источника.
func New(client *http.Client, cfg config.RedditConfig) *Client {
	if client == nil {
		client = &http.Client{Timeout: 15 * time.Second}
	}

	base := strings.TrimRight(cfg.BaseURL, "/")
	if base == "" {
		base = "https://www.reddit.com"
	}

	pageLimit := cfg.PageLimit
	if pageLimit <= 0 || pageLimit > 100 {
		pageLimit = 100
	}

	maxPages := cfg.MaxPages
	if maxPages <= 0 {
		maxPages = 40
	}

	return &Client{
		client:    client,
		baseURL:   base,
		userAgent: cfg.UserAgent,
		pageLimit: pageLimit,
		maxPages:  maxPages,
	}
}

// UserPosts возвращает текстовые (self) посты пользователя в заданном
// сообществе, от новых к старым, листая /user/{username}/submitted.json.
// Посты других сообществ и link-посты отбрасываются.
func (c *Client) UserPosts(ctx context.Context, username, subreddit string) ([]models.Post, error) {
	const op = "reddit.UserPosts"

	var output []models.Post

	err := c.walkListing(ctx, "/user/"+url.PathEscape(username)+"/submitted.json", func(t thing) {
		if t.Kind != "t3" {
			return
		}

		data := t.Data
		if !strings.EqualFold(data.Subreddit, subreddit) {
			return
		}

		// Только текстовые посты с непустым телом — как и ведёт себя архив.
		if !data.IsSelf || strings.TrimSpace(data.Selftext) == "" {
			return
		}

		output = append(output, models.Post{
			ID:           data.ID,
			Title:        data.Title,
			Text:         data.Selftext,
			Score:        data.Score,
			UpvoteRatio:  data.UpvoteRatio,
			CommentCount: data.NumComments,
			URL:          data.URL,
			Permalink:    absPermalink(data.Permalink),
			CreatedAt:    fromUnix(data.CreatedUTC),
		})
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return output, nil
}

// UserComments возвращает все комментарии пользователя, от новых к старым,
// листая /user/{username}/comments.json. Комментарии с нераспознанными
// идентификаторами пропускаются с warn-логом, но не валят весь проход.
func (c *Client) UserComments(ctx context.Context, username string) ([]models.Comment, error) {
	const op = "reddit.UserComments"

	lg := log.From(ctx)

	var output []models.Comment

	err := c.walkListing(ctx, "/user/"+url.PathEscape(username)+"/comments.json", func(t thing) {
		if t.Kind != "t1" {
			return
		}

		data := t.Data

		postID, ok := strings.CutPrefix(data.LinkID, prefixSubmission)
		if !ok || postID == "" {
			lg.Warn("comment_bad_link_id",
				slog.String("op", op),
				slog.String("comment_id", data.ID),
				slog.String("link_id", data.LinkID),
			)
			return
		}

		output = append(output, models.Comment{
			ID:          data.ID,
			PostID:      postID,
			Parent:      parseParentRef(data.ParentID),
			Body:        data.Body,
			Score:       data.Score,
			Permalink:   absPermalink(data.Permalink),
			IsSubmitter: data.IsSubmitter,
			CreatedAt:   fromUnix(data.CreatedUTC),
		})
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return output, nil
}

// walkListing листает один listing-эндпойнт по курсору after и отдаёт каждый
// элемент в visit. Останавливается на пустом after, пустой странице или
// достижении maxPages.
func (c *Client) walkListing(ctx context.Context, path string, visit func(thing)) error {
	after := ""

	for page := 0; page < c.maxPages; page++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		doc, err := c.fetchPage(ctx, path, after)
		if err != nil {
			return err
		}

		for _, child := range doc.Data.Children {
			visit(child)
		}

		if doc.Data.After == "" || len(doc.Data.Children) == 0 {
			return nil
		}

		after = doc.Data.After
	}

	return nil
}

// fetchPage загружает одну страницу listing-API.
func (c *Client) fetchPage(ctx context.Context, path, after string) (*listing, error) {
	const op = "reddit.fetchPage"

	q := url.Values{}
	q.Set("limit", strconv.Itoa(c.pageLimit))
	q.Set("raw_json", "1")
	if after != "" {
		q.Set("after", after)
	}

	src := c.baseURL + path + "?" + q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, src, nil)
	if err != nil {
		return nil, fmt.Errorf("%s: new_request: %w", op, err)
	}

	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		log.From(ctx).Warn("http_error",
			slog.String("op", op),
			slog.String("url", src),
			slog.String("err", err.Error()),
		)
		return nil, fmt.Errorf("%s: do: %w", op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("%s: status=%d", op, resp.StatusCode)
	}

	var doc listing
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		return nil, fmt.Errorf("%s: decode: %w", op, err)
	}

	return &doc, nil
}

// parseParentRef разбирает полный идентификатор родителя (t3_x/t1_x)
// в типизированную ссылку. Нераспознанный префикс даёт ParentUnknown —
// реконструкция цепочек трактует его как обрыв.
func parseParentRef(parentID string) models.ParentRef {
	if id, ok := strings.CutPrefix(parentID, prefixSubmission); ok && id != "" {
		return models.ParentRef{Kind: models.ParentSubmission, ID: id}
	}

	if id, ok := strings.CutPrefix(parentID, prefixComment); ok && id != "" {
		return models.ParentRef{Kind: models.ParentComment, ID: id}
	}

	return models.ParentRef{Kind: models.ParentUnknown, ID: parentID}
}

// absPermalink приводит относительный permalink к абсолютной ссылке.
func absPermalink(permalink string) string {
	if permalink == "" {
		return ""
	}

	if strings.HasPrefix(permalink, "http://") || strings.HasPrefix(permalink, "https://") {
		return permalink
	}

	return "https://reddit.com" + permalink
}

// fromUnix переводит unix-секунды источника (float) в UTC-время.
func fromUnix(sec float64) time.Time {
	if sec <= 0 {
		return time.Time{}
	}

	return time.Unix(int64(sec), 0).UTC()
}
