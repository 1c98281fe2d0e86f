package board

import (
	"context"

	"github.com/dmitrymomot/postboard/pkg/dom"
	"github.com/dmitrymomot/postboard/pkg/placeholder"
)

// Renderer turns fetched posts into detached document fragments.
type Renderer struct {
	fetch *Fetcher
}

// NewRenderer creates a Renderer reading through f.
func NewRenderer(f *Fetcher) *Renderer {
	return &Renderer{fetch: f}
}

// DisplayComments fetches the comments of postID and returns its hidden
// comment section. Returns nil for an invalid id.
func (r *Renderer) DisplayComments(ctx context.Context, postID int) *dom.Element {
	if postID <= 0 {
		return nil
	}
	comments := r.fetch.GetPostComments(ctx, postID)
	return CreateCommentSection(postID, comments)
}

// CreatePosts builds one article per post, in order. The author and the
// comments of each post are fetched before moving on to the next post.
// Returns nil for nil posts.
func (r *Renderer) CreatePosts(ctx context.Context, posts []placeholder.Post) *dom.Element {
	if posts == nil {
		return nil
	}
	frag := dom.NewFragment()
	for _, post := range posts {
		author := r.fetch.GetUser(ctx, post.UserID)
		article := CreatePostArticle(post, author)
		article.Append(r.DisplayComments(ctx, post.ID))
		frag.Append(article)
	}
	return frag
}

// DisplayPosts builds posts and attaches them to main.
// Returns the attached elements, or nil when main is nil.
func (r *Renderer) DisplayPosts(ctx context.Context, main *dom.Element, posts []placeholder.Post) []*dom.Element {
	if main == nil {
		return nil
	}
	return AttachPosts(main, r.CreatePosts(ctx, posts))
}

// AttachPosts appends a fragment built by CreatePosts to main. An empty or
// nil fragment attaches the empty state paragraph instead.
// Returns the attached elements.
func AttachPosts(main, posts *dom.Element) []*dom.Element {
	if main == nil {
		return nil
	}
	var attached []*dom.Element
	if posts == nil || len(posts.Children()) == 0 {
		attached = []*dom.Element{CreateEmptyState()}
	} else {
		attached = posts.Children()
	}
	main.Append(attached...)
	return attached
}
