package board_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/postboard/internal/board"
	"github.com/dmitrymomot/postboard/pkg/placeholder"
)

func TestCreateElemWithText(t *testing.T) {
	t.Parallel()

	t.Run("defaults to paragraph", func(t *testing.T) {
		t.Parallel()
		el := board.CreateElemWithText("", "", "")
		assert.Equal(t, "<p></p>", el.HTML())
	})

	t.Run("sets text and class", func(t *testing.T) {
		t.Parallel()
		el := board.CreateElemWithText("h2", "Hello <world>", "title")
		assert.Equal(t, "h2", el.Tag())
		assert.True(t, el.HasClass("title"))
		assert.Equal(t, `<h2 class="title">Hello &lt;world&gt;</h2>`, el.HTML())
	})
}

func TestCreateSelectOptions(t *testing.T) {
	t.Parallel()

	assert.Nil(t, board.CreateSelectOptions(nil))
	assert.Nil(t, board.CreateSelectOptions([]placeholder.User{}))

	options := board.CreateSelectOptions([]placeholder.User{
		{ID: 1, Name: "Leanne Graham"},
		{ID: 2, Name: "Ervin Howell"},
	})
	require.Len(t, options, 2)
	assert.Equal(t, `<option value="1">Leanne Graham</option>`, options[0].HTML())
	assert.Equal(t, `<option value="2">Ervin Howell</option>`, options[1].HTML())
}

func TestCreateComments(t *testing.T) {
	t.Parallel()

	t.Run("nil yields empty fragment", func(t *testing.T) {
		t.Parallel()
		frag := board.CreateComments(nil)
		require.NotNil(t, frag)
		assert.True(t, frag.IsFragment())
		assert.Empty(t, frag.Children())
	})

	t.Run("one article per comment", func(t *testing.T) {
		t.Parallel()
		frag := board.CreateComments([]placeholder.Comment{
			{Name: "id labore ex", Body: "laudantium enim", Email: "Eliseo@gardner.biz"},
			{Name: "quo vero", Body: "est natus enim", Email: "Jayne_Kuhic@sydney.com"},
		})
		articles := frag.Children()
		require.Len(t, articles, 2)
		assert.Equal(t,
			`<article><h3>id labore ex</h3><p>laudantium enim</p><p>From: Eliseo@gardner.biz</p></article>`,
			articles[0].HTML())
		assert.Contains(t, articles[1].TextContent(), "From: Jayne_Kuhic@sydney.com")
	})
}

func TestCreatePostArticle(t *testing.T) {
	t.Parallel()

	post := placeholder.Post{ID: 7, UserID: 1, Title: "sunt aut facere", Body: "quia et suscipit"}

	t.Run("with author", func(t *testing.T) {
		t.Parallel()
		author := &placeholder.User{
			ID:      1,
			Name:    "Leanne Graham",
			Company: placeholder.Company{Name: "Romaguera-Crona", CatchPhrase: "Multi-layered client-server neural-net"},
		}

		article := board.CreatePostArticle(post, author)
		assert.Equal(t, "article", article.Tag())

		html := article.HTML()
		assert.Contains(t, html, "<h2>sunt aut facere</h2>")
		assert.Contains(t, html, "<p>quia et suscipit</p>")
		assert.Contains(t, html, "<p>Post ID: 7</p>")
		assert.Contains(t, html, "<p>Author: Leanne Graham with Romaguera-Crona</p>")
		assert.Contains(t, html, "<p>Multi-layered client-server neural-net</p>")
		assert.Contains(t, html, `<button type="button" data-post-id="7">Show Comments</button>`)

		children := article.Children()
		require.Len(t, children, 6)
		assert.Equal(t, "button", children[5].Tag())
		assert.Equal(t, board.CommentsHidden, board.StateOf(children[5]))
	})

	t.Run("without author", func(t *testing.T) {
		t.Parallel()
		article := board.CreatePostArticle(post, nil)
		assert.NotContains(t, article.HTML(), "Author:")
		assert.Len(t, article.Children(), 4)
	})
}

func TestCreateCommentSection(t *testing.T) {
	t.Parallel()

	section := board.CreateCommentSection(3, []placeholder.Comment{{Name: "a", Body: "b", Email: "c@d.e"}})
	assert.Equal(t, "section", section.Tag())
	assert.Equal(t, "3", section.Data(board.DataPostID))
	assert.True(t, section.HasClass(board.ClassComments))
	assert.True(t, section.HasClass(board.ClassHide))
	assert.Len(t, section.Children(), 1)

	empty := board.CreateCommentSection(4, nil)
	assert.Empty(t, empty.Children())
	assert.Equal(t, `<section data-post-id="4" class="comments hide"></section>`, empty.HTML())
}

func TestCreateEmptyState(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "<p>Select an Employee to display their posts.</p>", board.CreateEmptyState().HTML())
}
