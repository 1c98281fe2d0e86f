package board

import (
	"context"
	"strconv"
	"strings"

	"github.com/dmitrymomot/postboard/pkg/dom"
	"github.com/dmitrymomot/postboard/pkg/htmx"
)

// Routes the page forwards browser events to.
const (
	RouteSelect = "/users/select"
	RouteToggle = "/posts/{postID}/comments/toggle"
)

// TogglePath returns the toggle route of one post.
func TogglePath(postID int) string {
	return strings.Replace(RouteToggle, "{postID}", strconv.Itoa(postID), 1)
}

// ButtonWiring tracks the click listeners registered on comment buttons so
// they can be removed exactly.
type ButtonWiring struct {
	bound []boundButton
}

type boundButton struct {
	button *dom.Element
	handle dom.ListenerHandle
}

// Add registers onClick on every comment button in main and sets the htmx
// attributes that forward the browser click. Buttons wired earlier are
// unwired first. Returns the wired buttons.
func (w *ButtonWiring) Add(main *dom.Element, onClick func(ctx context.Context, postID int)) []*dom.Element {
	w.Remove()
	if main == nil || onClick == nil {
		return nil
	}

	var wired []*dom.Element
	for _, button := range main.FindAll(dom.ByTag("button")) {
		postID, err := strconv.Atoi(button.Data(DataPostID))
		if err != nil || postID <= 0 {
			continue
		}
		handle := button.AddEventListener(dom.EventClick, func(ctx context.Context, _ dom.Event) {
			onClick(ctx, postID)
		})
		button.SetAttr(htmx.AttrPost, TogglePath(postID)).
			SetAttr(htmx.AttrTarget, "closest article").
			SetAttr(htmx.AttrSwap, htmx.SwapOuterHTML.String())
		w.bound = append(w.bound, boundButton{button: button, handle: handle})
		wired = append(wired, button)
	}
	return wired
}

// Remove unregisters every listener added by Add and clears the htmx
// attributes. Returns the unwired buttons.
func (w *ButtonWiring) Remove() []*dom.Element {
	if len(w.bound) == 0 {
		return nil
	}
	unwired := make([]*dom.Element, 0, len(w.bound))
	for _, b := range w.bound {
		b.button.RemoveEventListener(b.handle)
		b.button.RemoveAttr(htmx.AttrPost)
		b.button.RemoveAttr(htmx.AttrTarget)
		b.button.RemoveAttr(htmx.AttrSwap)
		unwired = append(unwired, b.button)
	}
	w.bound = nil
	return unwired
}

// Len returns the number of wired buttons.
func (w *ButtonWiring) Len() int {
	return len(w.bound)
}
