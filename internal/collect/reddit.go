package collect

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"ticker-sentiment/internal/api"
	"ticker-sentiment/internal/logger"
	"ticker-sentiment/internal/types"
)

// RedditCollector fetches hot posts and their top comments from a
// subreddit through Reddit's public JSON listing endpoints.
type RedditCollector struct {
	client          *api.Client
	limiter         *rate.Limiter
	commentsPerPost int
}

// Config configures a RedditCollector.
type Config struct {
	BaseURL         string
	UserAgent       string
	Timeout         time.Duration
	RequestsPerSec  float64
	CommentsPerPost int
}

// DefaultConfig returns a collector configuration with conservative
// request pacing.
func DefaultConfig() Config {
	return Config{
		BaseURL:         "https://www.reddit.com",
		UserAgent:       "ticker-sentiment/1.0 (market sentiment research)",
		Timeout:         30 * time.Second,
		RequestsPerSec:  1,
		CommentsPerPost: 5,
	}
}

// NewRedditCollector creates a collector with the given configuration.
// Zero-valued fields fall back to the defaults individually.
func NewRedditCollector(cfg Config) *RedditCollector {
	def := DefaultConfig()
	if cfg.BaseURL == "" {
		cfg.BaseURL = def.BaseURL
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = def.UserAgent
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = def.Timeout
	}
	if cfg.RequestsPerSec <= 0 {
		cfg.RequestsPerSec = def.RequestsPerSec
	}
	if cfg.CommentsPerPost <= 0 {
		cfg.CommentsPerPost = def.CommentsPerPost
	}

	client := api.NewClient(
		api.WithBaseURL(cfg.BaseURL),
		api.WithTimeout(cfg.Timeout),
		api.WithHeader("User-Agent", cfg.UserAgent),
		api.WithLogging(true),
	)

	return &RedditCollector{
		client:          client,
		limiter:         rate.NewLimiter(rate.Limit(cfg.RequestsPerSec), 1),
		commentsPerPost: cfg.CommentsPerPost,
	}
}

// listing mirrors the subset of Reddit's listing JSON the collector needs.
type listing struct {
	Data struct {
		Children []struct {
			Data struct {
				Title     string `json:"title"`
				Selftext  string `json:"selftext"`
				Body      string `json:"body"`
				Score     int    `json:"score"`
				Permalink string `json:"permalink"`
				Stickied  bool   `json:"stickied"`
			} `json:"data"`
		} `json:"children"`
	} `json:"data"`
}

// Fetch returns up to limit hot documents from the given subreddit, each
// with its top comments attached.
func (rc *RedditCollector) Fetch(ctx context.Context, source string, limit int) ([]types.Document, error) {
	if err := rc.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	var posts listing
	listURL := fmt.Sprintf("/r/%s/hot.json?limit=%d&raw_json=1", url.PathEscape(source), limit)
	if err := rc.client.GetJSON(ctx, listURL, &posts); err != nil {
		return nil, fmt.Errorf("failed to fetch r/%s: %w", source, err)
	}

	docs := make([]types.Document, 0, len(posts.Data.Children))
	for _, child := range posts.Data.Children {
		post := child.Data
		if post.Stickied {
			continue
		}

		comments, err := rc.fetchComments(ctx, post.Permalink)
		if err != nil {
			// A post without comments is still analyzable.
			logger.Warn(ctx, "Failed to fetch comments", "source", source,
				"permalink", post.Permalink, "error", err)
		}

		docs = append(docs, types.Document{
			Title:     post.Title,
			Body:      post.Selftext,
			Comments:  comments,
			Score:     post.Score,
			Permalink: post.Permalink,
			Source:    source,
		})

		if len(docs) >= limit {
			break
		}
	}

	logger.Info(ctx, "Fetched documents", "source", source, "count", len(docs))
	return docs, nil
}

// fetchComments returns the bodies of the top comments of a post.
func (rc *RedditCollector) fetchComments(ctx context.Context, permalink string) ([]string, error) {
	if permalink == "" {
		return nil, nil
	}

	if err := rc.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	// The comments endpoint returns two listings: the post itself, then
	// the comment tree.
	var pages []listing
	commentURL := fmt.Sprintf("%s.json?limit=%d&depth=1&raw_json=1",
		strings.TrimSuffix(permalink, "/"), rc.commentsPerPost)
	if err := rc.client.GetJSON(ctx, commentURL, &pages); err != nil {
		return nil, err
	}

	if len(pages) < 2 {
		return nil, nil
	}

	var comments []string
	for _, child := range pages[1].Data.Children {
		body := strings.TrimSpace(child.Data.Body)
		if body == "" {
			continue
		}
		comments = append(comments, body)
		if len(comments) >= rc.commentsPerPost {
			break
		}
	}

	return comments, nil
}
