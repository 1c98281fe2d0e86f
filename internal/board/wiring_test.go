package board_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/postboard/internal/board"
	"github.com/dmitrymomot/postboard/pkg/dom"
	"github.com/dmitrymomot/postboard/pkg/placeholder"
)

func TestTogglePath(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "/posts/42/comments/toggle", board.TogglePath(42))
}

func TestButtonWiring(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	newMain := func() *dom.Element {
		main := dom.NewElement("main")
		for _, id := range []int{1, 2} {
			main.Append(board.CreatePostArticle(placeholder.Post{ID: id}, nil))
		}
		return main
	}

	t.Run("add wires every button", func(t *testing.T) {
		t.Parallel()
		main := newMain()
		var clicked []int

		var w board.ButtonWiring
		wired := w.Add(main, func(_ context.Context, postID int) { clicked = append(clicked, postID) })
		require.Len(t, wired, 2)
		assert.Equal(t, 2, w.Len())

		button := wired[1]
		assert.Equal(t, 1, button.ListenerCount(dom.EventClick))
		v, _ := button.Attr("hx-post")
		assert.Equal(t, "/posts/2/comments/toggle", v)
		v, _ = button.Attr("hx-target")
		assert.Equal(t, "closest article", v)
		v, _ = button.Attr("hx-swap")
		assert.Equal(t, "outerHTML", v)

		for _, fn := range button.Listeners(dom.EventClick) {
			fn(ctx, dom.Event{Target: button, Type: dom.EventClick})
		}
		assert.Equal(t, []int{2}, clicked)
	})

	t.Run("remove unwires exactly", func(t *testing.T) {
		t.Parallel()
		main := newMain()
		button := main.Find(dom.ByTag("button"))
		foreign := button.AddEventListener(dom.EventClick, func(context.Context, dom.Event) {})

		var w board.ButtonWiring
		w.Add(main, func(context.Context, int) {})
		assert.Equal(t, 2, button.ListenerCount(dom.EventClick))

		unwired := w.Remove()
		assert.Len(t, unwired, 2)
		assert.Equal(t, 0, w.Len())
		assert.Equal(t, 1, button.ListenerCount(dom.EventClick))
		_, ok := button.Attr("hx-post")
		assert.False(t, ok)

		assert.True(t, button.RemoveEventListener(foreign))
		assert.Nil(t, w.Remove())
	})

	t.Run("adding twice keeps one listener per button", func(t *testing.T) {
		t.Parallel()
		main := newMain()

		var w board.ButtonWiring
		w.Add(main, func(context.Context, int) {})
		w.Add(main, func(context.Context, int) {})

		for _, b := range main.FindAll(dom.ByTag("button")) {
			assert.Equal(t, 1, b.ListenerCount(dom.EventClick))
		}
		assert.Equal(t, 2, w.Len())
	})

	t.Run("nil main", func(t *testing.T) {
		t.Parallel()
		var w board.ButtonWiring
		assert.Nil(t, w.Add(nil, func(context.Context, int) {}))
	})
}
