package board_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/dmitrymomot/postboard/internal/board"
	"github.com/dmitrymomot/postboard/pkg/placeholder"
)

var errUpstream = errors.New("upstream down")

// fakeAPI serves canned records and records every call in order.
type fakeAPI struct {
	mu       sync.Mutex
	users    []placeholder.User
	posts    map[int][]placeholder.Post
	comments map[int][]placeholder.Comment
	failing  map[string]bool
	calls    []string
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{
		users: []placeholder.User{
			{ID: 1, Name: "Leanne Graham", Email: "leanne@example.com",
				Company: placeholder.Company{Name: "Romaguera-Crona", CatchPhrase: "Multi-layered client-server neural-net"}},
			{ID: 2, Name: "Ervin Howell", Email: "ervin@example.com",
				Company: placeholder.Company{Name: "Deckow-Crist", CatchPhrase: "Proactive didactic contingency"}},
			{ID: 3, Name: "Clementine Bauch"},
		},
		posts: map[int][]placeholder.Post{
			1: {
				{ID: 1, UserID: 1, Title: "sunt aut facere", Body: "quia et suscipit"},
				{ID: 2, UserID: 1, Title: "qui est esse", Body: "est rerum tempore"},
			},
			2: {
				{ID: 11, UserID: 2, Title: "et ea vero", Body: "delectus reiciendis"},
			},
		},
		comments: map[int][]placeholder.Comment{
			1: {
				{ID: 1, PostID: 1, Name: "id labore ex", Email: "Eliseo@gardner.biz", Body: "laudantium enim"},
				{ID: 2, PostID: 1, Name: "quo vero", Email: "Jayne_Kuhic@sydney.com", Body: "est natus enim"},
			},
			11: {
				{ID: 51, PostID: 11, Name: "molestias", Email: "Oswaldo@gmail.com", Body: "ut dolorum"},
			},
		},
		failing: map[string]bool{},
	}
}

func (f *fakeAPI) fail(op string) *fakeAPI {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failing[op] = true
	return f
}

func (f *fakeAPI) record(op string, id int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if id > 0 {
		f.calls = append(f.calls, fmt.Sprintf("%s:%d", op, id))
	} else {
		f.calls = append(f.calls, op)
	}
	if f.failing[op] {
		return errUpstream
	}
	return nil
}

func (f *fakeAPI) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

func (f *fakeAPI) Users(context.Context) ([]placeholder.User, error) {
	if err := f.record("users", 0); err != nil {
		return nil, err
	}
	return f.users, nil
}

func (f *fakeAPI) User(_ context.Context, id int) (*placeholder.User, error) {
	if id <= 0 {
		return nil, placeholder.ErrInvalidID
	}
	if err := f.record("user", id); err != nil {
		return nil, err
	}
	for _, u := range f.users {
		if u.ID == id {
			return &u, nil
		}
	}
	return nil, &placeholder.StatusError{Code: 404}
}

func (f *fakeAPI) UserPosts(_ context.Context, userID int) ([]placeholder.Post, error) {
	if userID <= 0 {
		return nil, placeholder.ErrInvalidID
	}
	if err := f.record("posts", userID); err != nil {
		return nil, err
	}
	return f.posts[userID], nil
}

func (f *fakeAPI) PostComments(_ context.Context, postID int) ([]placeholder.Comment, error) {
	if postID <= 0 {
		return nil, placeholder.ErrInvalidID
	}
	if err := f.record("comments", postID); err != nil {
		return nil, err
	}
	return f.comments[postID], nil
}

func newFetcher(api board.API) *board.Fetcher {
	return board.NewFetcher(api, nil)
}

func newLoggedFetcher(api board.API) (*board.Fetcher, *bytes.Buffer) {
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return board.NewFetcher(api, log), &buf
}
