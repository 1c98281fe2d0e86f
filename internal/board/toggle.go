package board

import (
	"strconv"

	"github.com/dmitrymomot/postboard/pkg/dom"
)

// ToggleState is the visibility of one post's comments.
type ToggleState int

const (
	CommentsHidden ToggleState = iota
	CommentsShown
)

const propCommentsState = "comments-state"

// Next returns the opposite state.
func (s ToggleState) Next() ToggleState {
	if s == CommentsShown {
		return CommentsHidden
	}
	return CommentsShown
}

// ButtonLabel is the button text offered in state s.
func (s ToggleState) ButtonLabel() string {
	if s == CommentsShown {
		return HideCommentsText
	}
	return ShowCommentsText
}

func (s ToggleState) String() string {
	if s == CommentsShown {
		return "shown"
	}
	return "hidden"
}

// StateOf returns the state stored on a comment button.
// Buttons without a stored state are hidden.
func StateOf(button *dom.Element) ToggleState {
	if button == nil {
		return CommentsHidden
	}
	if s, ok := button.Prop(propCommentsState).(ToggleState); ok {
		return s
	}
	return CommentsHidden
}

// ToggleCommentSection shows or hides the comment section of postID.
// Returns nil when the id is invalid or the section is missing.
func ToggleCommentSection(main *dom.Element, postID int, state ToggleState) *dom.Element {
	section := findByPost(main, "section", postID)
	if section == nil {
		return nil
	}
	if state == CommentsShown {
		section.RemoveClass(ClassHide)
	} else {
		section.AddClass(ClassHide)
	}
	return section
}

// ToggleCommentButton relabels the button of postID and stores state on it.
// Returns nil when the id is invalid or the button is missing.
func ToggleCommentButton(main *dom.Element, postID int, state ToggleState) *dom.Element {
	button := findByPost(main, "button", postID)
	if button == nil {
		return nil
	}
	button.SetText(state.ButtonLabel()).SetProp(propCommentsState, state)
	return button
}

// ToggleComments advances the comment state of postID and applies it to
// both the section and the button.
func ToggleComments(main *dom.Element, postID int) (section, button *dom.Element) {
	if main == nil || postID <= 0 {
		return nil, nil
	}
	next := StateOf(findByPost(main, "button", postID)).Next()
	return ToggleCommentSection(main, postID, next), ToggleCommentButton(main, postID, next)
}

func findByPost(main *dom.Element, tag string, postID int) *dom.Element {
	if main == nil || postID <= 0 {
		return nil
	}
	return main.Find(dom.ByTagData(tag, DataPostID, strconv.Itoa(postID)))
}
