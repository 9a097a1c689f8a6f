package reddit

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/pribylovaa/reddit-archive-service/internal/config"
	"github.com/pribylovaa/reddit-archive-service/internal/models"
	"github.com/stretchr/testify/require"
)

// mkListing — собирает страницу listing-API из элементов-JSON.
func mkListing(after string, children ...string) string {
	return fmt.Sprintf(`{"kind":"Listing","data":{"after":%q,"children":[%s]}}`,
		after, strings.Join(children, ","))
}

// mkPostJSON — элемент t3 (пост).
func mkPostJSON(id, subreddit, title, selftext string, isSelf bool, createdUTC float64) string {
	raw := map[string]any{
		"id":           id,
		"subreddit":    subreddit,
		"title":        title,
		"selftext":     selftext,
		"is_self":      isSelf,
		"score":        42,
		"upvote_ratio": 0.97,
		"num_comments": 7,
		"url":          "https://www.reddit.com/r/" + subreddit + "/comments/" + id + "/",
		"permalink":    "/r/" + subreddit + "/comments/" + id + "/slug/",
		"created_utc":  createdUTC,
	}
	data, _ := json.Marshal(raw)
	return fmt.Sprintf(`{"kind":"t3","data":%s}`, data)
}

// mkCommentJSON — элемент t1 (комментарий).
func mkCommentJSON(id, linkID, parentID, body string, createdUTC float64) string {
	raw := map[string]any{
		"id":           id,
		"subreddit":    "hfy",
		"link_id":      linkID,
		"parent_id":    parentID,
		"body":         body,
		"score":        3,
		"is_submitter": true,
		"permalink":    "/r/hfy/comments/abc/slug/" + id + "/",
		"created_utc":  createdUTC,
	}
	data, _ := json.Marshal(raw)
	return fmt.Sprintf(`{"kind":"t1","data":%s}`, data)
}

func mkClient(t *testing.T, srv *httptest.Server, mut func(*config.RedditConfig)) *Client {
	t.Helper()

	cfg := config.RedditConfig{
		BaseURL:   srv.URL,
		UserAgent: "script:test:v0",
		PageLimit: 100,
		MaxPages:  40,
	}
	if mut != nil {
		mut(&cfg)
	}

	return New(srv.Client(), cfg)
}

// Test_UserPosts_FilterAndMapping — отбор self-постов нужного сообщества
// и маппинг полей в доменную модель.
func Test_UserPosts_FilterAndMapping(t *testing.T) {
	t.Parallel()

	page := mkListing("",
		mkPostJSON("aaa", "HFY", "Story One", "chapter text", true, 1717243200),
		mkPostJSON("bbb", "other", "Foreign", "text", true, 1717243300),
		mkPostJSON("ccc", "hfy", "Link post", "", false, 1717243400),
		mkPostJSON("ddd", "hfy", "Empty body", "   ", true, 1717243500),
		`{"kind":"t1","data":{"id":"zzz","body":"not a post"}}`,
	)

	mux := http.NewServeMux()
	mux.HandleFunc("/user/author/submitted.json", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "script:test:v0", r.Header.Get("User-Agent"))
		require.Equal(t, "1", r.URL.Query().Get("raw_json"))
		_, _ = w.Write([]byte(page))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	c := mkClient(t, srv, nil)

	got, err := c.UserPosts(context.Background(), "author", "hfy")
	require.NoError(t, err)
	require.Len(t, got, 1)

	p := got[0]
	require.Equal(t, "aaa", p.ID)
	require.Equal(t, "Story One", p.Title)
	require.Equal(t, "chapter text", p.Text)
	require.EqualValues(t, 42, p.Score)
	require.InDelta(t, 0.97, p.UpvoteRatio, 1e-9)
	require.EqualValues(t, 7, p.CommentCount)
	require.Equal(t, "https://reddit.com/r/HFY/comments/aaa/slug/", p.Permalink)
	require.Equal(t, time.Unix(1717243200, 0).UTC(), p.CreatedAt)
	require.True(t, p.FetchedAt.IsZero(), "источник должен вернуть нулевой FetchedAt")
}

// Test_UserPosts_Pagination — обход по курсору after до пустого значения.
func Test_UserPosts_Pagination(t *testing.T) {
	t.Parallel()

	pages := map[string]string{
		"":    mkListing("cur1", mkPostJSON("p1", "hfy", "One", "a", true, 1)),
		"cur1": mkListing("cur2", mkPostJSON("p2", "hfy", "Two", "b", true, 2)),
		"cur2": mkListing("", mkPostJSON("p3", "hfy", "Three", "c", true, 3)),
	}

	var requests int
	mux := http.NewServeMux()
	mux.HandleFunc("/user/author/submitted.json", func(w http.ResponseWriter, r *http.Request) {
		requests++
		page, ok := pages[r.URL.Query().Get("after")]
		require.True(t, ok, "unexpected after=%q", r.URL.Query().Get("after"))
		_, _ = w.Write([]byte(page))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	c := mkClient(t, srv, nil)

	got, err := c.UserPosts(context.Background(), "author", "hfy")
	require.NoError(t, err)
	require.Equal(t, 3, requests)
	require.Len(t, got, 3)
	require.Equal(t, "p1", got[0].ID)
	require.Equal(t, "p3", got[2].ID)
}

// Test_UserPosts_MaxPagesGuard — листание останавливается на max_pages,
// даже если источник продолжает отдавать курсор.
func Test_UserPosts_MaxPagesGuard(t *testing.T) {
	t.Parallel()

	var requests int
	mux := http.NewServeMux()
	mux.HandleFunc("/user/author/submitted.json", func(w http.ResponseWriter, r *http.Request) {
		requests++
		_, _ = w.Write([]byte(mkListing("next",
			mkPostJSON(fmt.Sprintf("p%d", requests), "hfy", "T", "b", true, float64(requests)))))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	c := mkClient(t, srv, func(cfg *config.RedditConfig) { cfg.MaxPages = 3 })

	got, err := c.UserPosts(context.Background(), "author", "hfy")
	require.NoError(t, err)
	require.Equal(t, 3, requests)
	require.Len(t, got, 3)
}

// Test_UserPosts_HTTPError — не-200 ответ возвращается ошибкой.
func Test_UserPosts_HTTPError(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("/user/author/submitted.json", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	c := mkClient(t, srv, nil)

	_, err := c.UserPosts(context.Background(), "author", "hfy")
	require.Error(t, err)
	require.Contains(t, err.Error(), "status=429")
}

// Test_UserPosts_ContextCancel — «подвисающий» хендлер + короткий таймаут контекста.
func Test_UserPosts_ContextCancel(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("/user/author/submitted.json", func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		_, _ = w.Write([]byte(mkListing("")))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	c := mkClient(t, srv, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := c.UserPosts(ctx, "author", "hfy")
	require.Error(t, err)
}

// Test_UserComments_Mapping — маппинг комментариев, разбор parent_id и link_id.
func Test_UserComments_Mapping(t *testing.T) {
	t.Parallel()

	page := mkListing("",
		mkCommentJSON("c1", "t3_post1", "t3_post1", "root comment", 1717243200),
		mkCommentJSON("c2", "t3_post1", "t1_c1", "reply", 1717243300),
		mkCommentJSON("bad", "garbage", "t1_c1", "broken link_id", 1717243400),
		mkCommentJSON("odd", "t3_post2", "weird_parent", "unknown parent kind", 1717243500),
	)

	mux := http.NewServeMux()
	mux.HandleFunc("/user/author/comments.json", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(page))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	c := mkClient(t, srv, nil)

	got, err := c.UserComments(context.Background(), "author")
	require.NoError(t, err)
	require.Len(t, got, 3, "комментарий с нечитаемым link_id пропускается")

	root := got[0]
	require.Equal(t, "c1", root.ID)
	require.Equal(t, "post1", root.PostID)
	require.Equal(t, models.ParentRef{Kind: models.ParentSubmission, ID: "post1"}, root.Parent)
	require.Equal(t, "root comment", root.Body)
	require.True(t, root.IsSubmitter)
	require.Equal(t, time.Unix(1717243200, 0).UTC(), root.CreatedAt)

	reply := got[1]
	require.Equal(t, models.ParentRef{Kind: models.ParentComment, ID: "c1"}, reply.Parent)

	odd := got[2]
	require.Equal(t, models.ParentUnknown, odd.Parent.Kind)
	require.Equal(t, "weird_parent", odd.Parent.ID)
}

// Test_parseParentRef — разбор префиксов полного идентификатора.
func Test_parseParentRef(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want models.ParentRef
	}{
		{"t3_abc", models.ParentRef{Kind: models.ParentSubmission, ID: "abc"}},
		{"t1_def", models.ParentRef{Kind: models.ParentComment, ID: "def"}},
		{"t5_sub", models.ParentRef{Kind: models.ParentUnknown, ID: "t5_sub"}},
		{"t3_", models.ParentRef{Kind: models.ParentUnknown, ID: "t3_"}},
		{"", models.ParentRef{Kind: models.ParentUnknown, ID: ""}},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, parseParentRef(tc.in), "in=%q", tc.in)
	}
}

// Test_absPermalink — относительные ссылки становятся абсолютными, прочие не трогаем.
func Test_absPermalink(t *testing.T) {
	t.Parallel()

	require.Equal(t, "https://reddit.com/r/hfy/comments/a/", absPermalink("/r/hfy/comments/a/"))
	require.Equal(t, "https://example.org/x", absPermalink("https://example.org/x"))
	require.Equal(t, "", absPermalink(""))
}
