package placeholder

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// Client is a read-only client for the JSONPlaceholder REST API.
// Every method issues exactly one GET request. There are no retries.
type Client struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
	timeout    time.Duration
}

// New creates a Client.
//
// Example:
//
//	api := placeholder.New(
//	    placeholder.WithBaseURL(cfg.BaseURL),
//	    placeholder.WithUserAgent("postboard/1.0"),
//	)
//	users, err := api.Users(ctx)
func New(opts ...Option) *Client {
	c := &Client{
		baseURL:    DefaultBaseURL,
		httpClient: http.DefaultClient,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.timeout > 0 {
		hc := *c.httpClient
		hc.Timeout = c.timeout
		c.httpClient = &hc
	}
	return c
}

// BaseURL returns the configured API base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Users fetches all users.
func (c *Client) Users(ctx context.Context) ([]User, error) {
	var users []User
	if err := c.get(ctx, "/users", nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// User fetches a single user by id.
func (c *Client) User(ctx context.Context, id int) (*User, error) {
	if id <= 0 {
		return nil, ErrInvalidID
	}
	var user User
	if err := c.get(ctx, "/users/"+strconv.Itoa(id), nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// UserPosts fetches the posts written by a user.
func (c *Client) UserPosts(ctx context.Context, userID int) ([]Post, error) {
	if userID <= 0 {
		return nil, ErrInvalidID
	}
	var posts []Post
	q := url.Values{"userId": {strconv.Itoa(userID)}}
	if err := c.get(ctx, "/posts", q, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

// PostComments fetches the comments on a post.
func (c *Client) PostComments(ctx context.Context, postID int) ([]Comment, error) {
	if postID <= 0 {
		return nil, ErrInvalidID
	}
	var comments []Comment
	q := url.Values{"postId": {strconv.Itoa(postID)}}
	if err := c.get(ctx, "/comments", q, &comments); err != nil {
		return nil, err
	}
	return comments, nil
}

// Ping checks that the API answers. It fetches the first user and discards it.
func (c *Client) Ping(ctx context.Context) error {
	_, err := c.User(ctx, 1)
	return err
}

// get performs a GET request and decodes the JSON body into dst.
func (c *Client) get(ctx context.Context, path string, query url.Values, dst any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("GET %s: %w", u, err)
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{URL: u, Code: resp.StatusCode}
	}

	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return errors.Join(ErrDecode, err)
	}
	return nil
}
