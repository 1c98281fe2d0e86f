package board

import (
	"strconv"

	"github.com/dmitrymomot/postboard/pkg/dom"
	"github.com/dmitrymomot/postboard/pkg/placeholder"
)

// Texts and markers shared by the builders and the toggle.
const (
	EmptyStateText   = "Select an Employee to display their posts."
	ShowCommentsText = "Show Comments"
	HideCommentsText = "Hide Comments"

	ClassHide     = "hide"
	ClassComments = "comments"

	// DataPostID is the data-* key linking a button and its comment section.
	DataPostID = "post-id"
)

// CreateElemWithText returns a detached element with text and an optional
// class. An empty tag means "p".
func CreateElemWithText(tag, text, class string) *dom.Element {
	if tag == "" {
		tag = "p"
	}
	el := dom.NewElement(tag).SetText(text)
	if class != "" {
		el.AddClass(class)
	}
	return el
}

// CreateSelectOptions returns one option per user, valued by id.
// Returns nil for an empty list.
func CreateSelectOptions(users []placeholder.User) []*dom.Element {
	if len(users) == 0 {
		return nil
	}
	options := make([]*dom.Element, 0, len(users))
	for _, u := range users {
		options = append(options, dom.NewElement("option").
			SetAttr("value", strconv.Itoa(u.ID)).
			SetText(u.Name))
	}
	return options
}

// CreateComments returns a fragment with one article per comment.
func CreateComments(comments []placeholder.Comment) *dom.Element {
	frag := dom.NewFragment()
	for _, c := range comments {
		frag.Append(dom.NewElement("article").Append(
			CreateElemWithText("h3", c.Name, ""),
			CreateElemWithText("p", c.Body, ""),
			CreateElemWithText("p", "From: "+c.Email, ""),
		))
	}
	return frag
}

// CreatePostArticle builds the article for one post. The author lines are
// left out when author is nil.
func CreatePostArticle(post placeholder.Post, author *placeholder.User) *dom.Element {
	article := dom.NewElement("article").Append(
		CreateElemWithText("h2", post.Title, ""),
		CreateElemWithText("p", post.Body, ""),
		CreateElemWithText("p", "Post ID: "+strconv.Itoa(post.ID), ""),
	)
	if author != nil {
		article.Append(
			CreateElemWithText("p", "Author: "+author.Name+" with "+author.Company.Name, ""),
			CreateElemWithText("p", author.Company.CatchPhrase, ""),
		)
	}
	button := CreateElemWithText("button", CommentsHidden.ButtonLabel(), "").
		SetAttr("type", "button").
		SetData(DataPostID, strconv.Itoa(post.ID)).
		SetProp(propCommentsState, CommentsHidden)
	return article.Append(button)
}

// CreateCommentSection returns the hidden comment section of a post.
func CreateCommentSection(postID int, comments []placeholder.Comment) *dom.Element {
	return dom.NewElement("section").
		SetData(DataPostID, strconv.Itoa(postID)).
		AddClass(ClassComments, ClassHide).
		Append(CreateComments(comments))
}

// CreateEmptyState returns the paragraph shown when main has no posts.
func CreateEmptyState() *dom.Element {
	return CreateElemWithText("p", EmptyStateText, "")
}
