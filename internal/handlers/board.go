package handlers

import (
	"errors"
	"net/http"

	"github.com/dmitrymomot/postboard/internal"
	"github.com/dmitrymomot/postboard/internal/board"
)

// Board serves the post board page and the events its browser tab forwards.
type Board struct {
	sessions   *board.Sessions
	cookieName string
}

// NewBoard creates the board handler. Each document carries its page id in
// an htmx request header; the cookie named cookieName holds the id of the
// page opened last.
func NewBoard(sessions *board.Sessions, cookieName string) *Board {
	return &Board{sessions: sessions, cookieName: cookieName}
}

// Routes implements internal.Handler.
func (h *Board) Routes(r internal.Router) {
	r.GET("/", h.index)
	r.POST(board.RouteSelect, h.selectUser)
	r.POST(board.RouteToggle, h.toggle)
}

// index opens a fresh page for the tab. Pages left behind by reloads or
// other tabs stay until idle expiry or the page limit evicts them.
func (h *Board) index(c internal.Context) error {
	page, err := h.sessions.Open(c)
	if err != nil {
		return internal.ErrInternal("The page could not be opened.", internal.WithError(err))
	}
	if err := c.SetCookie(h.cookieName, page.ID()); err != nil {
		return err
	}

	c.SetHeader("Cache-Control", "no-store")
	return c.Render(http.StatusOK, page.Document())
}

// selectUser replays the selector's change event and answers with main.
func (h *Board) selectUser(c internal.Context) error {
	page, err := h.page(c)
	if err != nil {
		return h.pageError(c, err)
	}

	page.Change(c, c.Form(board.SelectMenuName))
	return c.Render(http.StatusOK, page.MainView())
}

// toggle replays a comment button click and answers with its article.
func (h *Board) toggle(c internal.Context) error {
	postID, ok := internal.Param[int](c, "postID")
	if !ok || postID <= 0 {
		return internal.ErrBadRequest("Invalid post id.")
	}

	page, err := h.page(c)
	if err != nil {
		return h.pageError(c, err)
	}

	if _, err := page.Click(c, postID); err != nil {
		return postError(err)
	}
	view, err := page.ArticleView(postID)
	if err != nil {
		return postError(err)
	}
	return c.Render(http.StatusOK, view)
}

// page finds the tab's page by the id its document sends in PageIDHeader.
// The cookie is a fallback for requests sent without the header; it names
// the page the browser opened last.
func (h *Board) page(c internal.Context) (*board.Page, error) {
	id := c.Header(board.PageIDHeader)
	if id == "" {
		var err error
		if id, err = c.Cookie(h.cookieName); err != nil {
			return nil, board.ErrPageNotFound
		}
	}
	return h.sessions.Lookup(c, id)
}

// pageError sends tabs with a missing or expired page back to a fresh one.
func (h *Board) pageError(c internal.Context, err error) error {
	if errors.Is(err, board.ErrPageNotFound) {
		c.LogDebug("page session missing, reloading")
		return c.Redirect("/")
	}
	return err
}

func postError(err error) error {
	if errors.Is(err, board.ErrPostNotFound) {
		return internal.ErrNotFound("This post is no longer on the page.", internal.WithError(err))
	}
	return err
}
