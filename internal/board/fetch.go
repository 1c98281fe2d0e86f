package board

import (
	"context"
	"log/slog"
	"time"

	"github.com/dmitrymomot/postboard/pkg/cache"
	"github.com/dmitrymomot/postboard/pkg/placeholder"
)

// API is the upstream the board reads from. *placeholder.Client implements it.
type API interface {
	Users(ctx context.Context) ([]placeholder.User, error)
	User(ctx context.Context, id int) (*placeholder.User, error)
	UserPosts(ctx context.Context, userID int) ([]placeholder.Post, error)
	PostComments(ctx context.Context, postID int) ([]placeholder.Comment, error)
}

const usersCacheKey = "users"

// Fetcher wraps API calls for page code: every failure is logged and
// reported as a nil result.
type Fetcher struct {
	api      API
	logger   *slog.Logger
	users    cache.Store[[]placeholder.User]
	usersTTL time.Duration
}

// FetcherOption configures a Fetcher.
type FetcherOption func(*Fetcher)

// WithUsersCache reuses the user list for ttl across page loads.
// Concurrent loads of an expired list share one upstream call.
func WithUsersCache(store cache.Store[[]placeholder.User], ttl time.Duration) FetcherOption {
	return func(f *Fetcher) {
		if store != nil && ttl > 0 {
			f.users = store
			f.usersTTL = ttl
		}
	}
}

// NewFetcher creates a Fetcher. A nil logger discards output.
func NewFetcher(api API, logger *slog.Logger, opts ...FetcherOption) *Fetcher {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	f := &Fetcher{api: api, logger: logger}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// GetUsers returns all users, or nil on failure.
func (f *Fetcher) GetUsers(ctx context.Context) []placeholder.User {
	var (
		users []placeholder.User
		err   error
	)
	if f.users != nil {
		users, err = cache.GetOrSet(ctx, f.users, usersCacheKey,
			func(ctx context.Context) ([]placeholder.User, time.Duration, error) {
				u, err := f.api.Users(ctx)
				return u, f.usersTTL, err
			})
	} else {
		users, err = f.api.Users(ctx)
	}
	if err != nil {
		f.logger.WarnContext(ctx, "fetch users failed", slog.String("error", err.Error()))
		return nil
	}
	return users
}

// GetUser returns one user, or nil on failure.
func (f *Fetcher) GetUser(ctx context.Context, id int) *placeholder.User {
	user, err := f.api.User(ctx, id)
	if err != nil {
		f.logger.WarnContext(ctx, "fetch user failed",
			slog.Int("user_id", id),
			slog.String("error", err.Error()))
		return nil
	}
	return user
}

// GetUserPosts returns the posts of a user, or nil on failure.
// A user without posts yields an empty, non-nil slice.
func (f *Fetcher) GetUserPosts(ctx context.Context, userID int) []placeholder.Post {
	posts, err := f.api.UserPosts(ctx, userID)
	if err != nil {
		f.logger.WarnContext(ctx, "fetch user posts failed",
			slog.Int("user_id", userID),
			slog.String("error", err.Error()))
		return nil
	}
	if posts == nil {
		posts = []placeholder.Post{}
	}
	return posts
}

// GetPostComments returns the comments of a post, or nil on failure.
func (f *Fetcher) GetPostComments(ctx context.Context, postID int) []placeholder.Comment {
	comments, err := f.api.PostComments(ctx, postID)
	if err != nil {
		f.logger.WarnContext(ctx, "fetch post comments failed",
			slog.Int("post_id", postID),
			slog.String("error", err.Error()))
		return nil
	}
	if comments == nil {
		comments = []placeholder.Comment{}
	}
	return comments
}
