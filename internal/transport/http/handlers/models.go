package handlers

import (
	"github.com/pribylovaa/reddit-archive-service/internal/models"
)

// DTO выдачи HTTP-слоя. Времена — Unix UTC (секунды).

type Post struct {
	ID               string  `json:"id"`
	Title            string  `json:"title"`
	Text             string  `json:"text"`
	Score            int64   `json:"score"`
	UpvoteRatio      float64 `json:"upvote_ratio"`
	CommentCount     int64   `json:"comment_count"`
	UserCommentCount int64   `json:"user_comment_count"`
	URL              string  `json:"url"`
	Permalink        string  `json:"permalink"`
	CreatedAt        int64   `json:"created_at"`
	FetchedAt        int64   `json:"fetched_at"`
}

type PostListResponse struct {
	Items         []Post `json:"items"`
	NextPageToken string `json:"next_page_token"`
}

type Comment struct {
	ID          string `json:"id"`
	PostID      string `json:"post_id"`
	ParentID    string `json:"parent_id"`
	Body        string `json:"body"`
	Score       int64  `json:"score"`
	Permalink   string `json:"permalink"`
	IsSubmitter bool   `json:"is_submitter"`
	CreatedAt   int64  `json:"created_at"`
	Depth       int32  `json:"depth"`
}

type CommentListResponse struct {
	Items         []Comment `json:"items"`
	NextPageToken string    `json:"next_page_token"`
}

type Run struct {
	ID            string `json:"id"`
	Username      string `json:"username"`
	Subreddit     string `json:"subreddit"`
	StartedAt     int64  `json:"started_at"`
	FinishedAt    int64  `json:"finished_at"`
	TotalPosts    int64  `json:"total_posts"`
	TotalComments int64  `json:"total_comments"`
}

func postFromDomain(p models.Post) Post {
	return Post{
		ID:               p.ID,
		Title:            p.Title,
		Text:             p.Text,
		Score:            p.Score,
		UpvoteRatio:      p.UpvoteRatio,
		CommentCount:     p.CommentCount,
		UserCommentCount: p.UserCommentCount,
		URL:              p.URL,
		Permalink:        p.Permalink,
		CreatedAt:        p.CreatedAt.Unix(),
		FetchedAt:        p.FetchedAt.Unix(),
	}
}

func commentFromDomain(c models.Comment) Comment {
	return Comment{
		ID:          c.ID,
		PostID:      c.PostID,
		ParentID:    c.Parent.ID,
		Body:        c.Body,
		Score:       c.Score,
		Permalink:   c.Permalink,
		IsSubmitter: c.IsSubmitter,
		CreatedAt:   c.CreatedAt.Unix(),
		Depth:       c.Depth,
	}
}

func runFromDomain(r models.Run) Run {
	return Run{
		ID:            r.ID.String(),
		Username:      r.Username,
		Subreddit:     r.Subreddit,
		StartedAt:     r.StartedAt.Unix(),
		FinishedAt:    r.FinishedAt.Unix(),
		TotalPosts:    r.TotalPosts,
		TotalComments: r.TotalComments,
	}
}
