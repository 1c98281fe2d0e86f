package board

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"sync"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/postboard/pkg/dom"
	"github.com/dmitrymomot/postboard/pkg/htmx"
	"github.com/dmitrymomot/postboard/pkg/placeholder"
)

// Document settings.
const (
	Title          = "Postboard"
	StylesheetPath = "/static/app.css"
	HTMXScriptURL  = "https://unpkg.com/htmx.org@2.0.4"

	SelectMenuID   = "selectMenu"
	SelectMenuName = "userId"

	// DefaultUserID is selected when the change event carries no value.
	DefaultUserID = "1"

	// PageIDHeader carries the page id on every htmx request the document
	// sends, so each tab reaches its own page.
	PageIDHeader = "X-Page-ID"
)

var (
	ErrPostNotFound = errors.New("board: post not found")
	ErrPageClosed   = errors.New("board: page closed")
)

// Page is one browser tab's document held on the server.
//
// Network fetches run without the page lock; document mutations and
// renders run with it. Overlapping selections are not cancelled: the one
// that finishes last owns main.
type Page struct {
	mu sync.Mutex

	id     string
	fetch  *Fetcher
	render *Renderer
	logger *slog.Logger

	doc        *dom.Element
	main       *dom.Element
	selectMenu *dom.Element
	wiring     ButtonWiring
	change     dom.ListenerHandle
	closed     bool
}

// NewPage builds the initial document: a placeholder-only selector and a
// main element holding the empty state.
func NewPage(id string, fetch *Fetcher, logger *slog.Logger) *Page {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	p := &Page{
		id:     id,
		fetch:  fetch,
		render: NewRenderer(fetch),
		logger: logger.With(slog.String("page_id", id)),
	}
	p.build()
	return p
}

func (p *Page) build() {
	head := dom.NewElement("head").Append(
		dom.NewElement("meta").SetAttr("charset", "utf-8"),
		dom.NewElement("meta").
			SetAttr("name", "viewport").
			SetAttr("content", "width=device-width, initial-scale=1"),
		CreateElemWithText("title", Title, ""),
		dom.NewElement("link").SetAttr("rel", "stylesheet").SetAttr("href", StylesheetPath),
		dom.NewElement("script").SetAttr("src", HTMXScriptURL),
	)

	p.selectMenu = dom.NewElement("select").
		SetAttr("id", SelectMenuID).
		SetAttr("name", SelectMenuName).
		SetAttr(htmx.AttrPost, RouteSelect).
		SetAttr(htmx.AttrTrigger, dom.EventChange).
		SetAttr(htmx.AttrTarget, "main").
		SetAttr(htmx.AttrSwap, htmx.SwapOuterHTML.String()).
		Append(dom.NewElement("option").
			SetAttr("value", "").
			SetAttr("disabled", "").
			SetAttr("selected", "").
			SetText("Employees"))

	p.main = dom.NewElement("main").Append(CreateEmptyState())

	body := dom.NewElement("body").SetAttr(htmx.AttrHeaders, pageHeaders(p.id)).Append(
		dom.NewElement("header").Append(
			CreateElemWithText("h1", "Employee Posts", ""),
			dom.NewElement("label").SetAttr("for", SelectMenuID).SetText("Select an Employee"),
			p.selectMenu,
		),
		dom.NewElement("div").SetAttr("id", "errors"),
		p.main,
	)

	p.doc = dom.NewElement("html").SetAttr("lang", "en").Append(head, body)
}

func pageHeaders(id string) string {
	b, _ := json.Marshal(map[string]string{PageIDHeader: id})
	return string(b)
}

// ID returns the page session id.
func (p *Page) ID() string {
	return p.id
}

// Init fetches the users, fills the selector and registers the change
// listener. A failed fetch leaves the selector unpopulated. Calling Init
// again replaces the previous listener. Returns the selector, or nil when
// it was left unchanged.
func (p *Page) Init(ctx context.Context) *dom.Element {
	users := p.fetch.GetUsers(ctx)

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return nil
	}

	populated := p.populateSelectMenu(users)
	if p.change.Valid() {
		p.selectMenu.RemoveEventListener(p.change)
	}
	p.change = p.selectMenu.AddEventListener(dom.EventChange, p.onChange)
	return populated
}

// PopulateSelectMenu appends one option per user to the selector.
// Returns nil and leaves the selector unchanged for an empty list.
func (p *Page) PopulateSelectMenu(users []placeholder.User) *dom.Element {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.populateSelectMenu(users)
}

func (p *Page) populateSelectMenu(users []placeholder.User) *dom.Element {
	options := CreateSelectOptions(users)
	if options == nil {
		return nil
	}
	return p.selectMenu.Append(options...)
}

func (p *Page) onChange(ctx context.Context, ev dom.Event) {
	value := ev.Value
	if value == "" {
		value = DefaultUserID
	}
	userID, err := strconv.Atoi(value)
	if err != nil {
		p.logger.WarnContext(ctx, "invalid user id", slog.String("value", value))
		return
	}

	posts := p.fetch.GetUserPosts(ctx, userID)
	if p.RefreshPosts(ctx, posts) != nil {
		p.markSelected(value)
	}
}

func (p *Page) markSelected(value string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, opt := range p.selectMenu.FindAll(dom.ByTag("option")) {
		v, _ := opt.Attr("value")
		if v == value {
			opt.SetAttr("selected", "")
		} else {
			opt.RemoveAttr("selected")
		}
	}
}

// RefreshPosts replaces the content of main with posts and rewires the
// comment buttons. nil posts leave the page unchanged and return nil.
func (p *Page) RefreshPosts(ctx context.Context, posts []placeholder.Post) []*dom.Element {
	if posts == nil {
		return nil
	}
	frag := p.render.CreatePosts(ctx, posts)

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return nil
	}

	p.wiring.Remove()
	p.main.RemoveChildren()
	attached := AttachPosts(p.main, frag)
	p.wiring.Add(p.main, p.onClick)
	return attached
}

func (p *Page) onClick(_ context.Context, postID int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	ToggleComments(p.main, postID)
}

// Dispatch invokes the listeners registered on ev.Target for ev.Type and
// returns how many ran. Listeners run without the page lock.
func (p *Page) Dispatch(ctx context.Context, ev dom.Event) int {
	if ev.Target == nil {
		return 0
	}
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return 0
	}
	listeners := ev.Target.Listeners(ev.Type)
	p.mu.Unlock()

	for _, fn := range listeners {
		fn(ctx, ev)
	}
	return len(listeners)
}

// Change dispatches a change event with value to the selector.
func (p *Page) Change(ctx context.Context, value string) int {
	return p.Dispatch(ctx, dom.Event{Target: p.selectMenu, Type: dom.EventChange, Value: value})
}

// Click dispatches a click event to the comment button of postID.
func (p *Page) Click(ctx context.Context, postID int) (int, error) {
	p.mu.Lock()
	button := findByPost(p.main, "button", postID)
	p.mu.Unlock()
	if button == nil {
		return 0, ErrPostNotFound
	}
	return p.Dispatch(ctx, dom.Event{Target: button, Type: dom.EventClick}), nil
}

// Document renders the whole page with a doctype.
func (p *Page) Document() templ.Component {
	return templ.Join(templ.Raw("<!DOCTYPE html>"), p.view(func() *dom.Element { return p.doc }))
}

// MainView renders the main element.
func (p *Page) MainView() templ.Component {
	return p.view(func() *dom.Element { return p.main })
}

// ArticleView renders the article holding the comment button of postID.
func (p *Page) ArticleView(postID int) (templ.Component, error) {
	p.mu.Lock()
	var article *dom.Element
	if button := findByPost(p.main, "button", postID); button != nil {
		article = button.Parent()
	}
	p.mu.Unlock()
	if article == nil {
		return nil, ErrPostNotFound
	}
	return p.view(func() *dom.Element { return article }), nil
}

// view snapshots an element under the page lock and writes it unlocked.
func (p *Page) view(pick func() *dom.Element) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		p.mu.Lock()
		if p.closed {
			p.mu.Unlock()
			return ErrPageClosed
		}
		err := pick().Render(ctx, &b)
		p.mu.Unlock()
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, b.String())
		return err
	})
}

// Close removes every listener on the page. Later events and renders are
// ignored or fail with ErrPageClosed.
func (p *Page) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}
	p.wiring.Remove()
	if p.change.Valid() {
		p.selectMenu.RemoveEventListener(p.change)
		p.change = dom.ListenerHandle{}
	}
	p.closed = true
}
