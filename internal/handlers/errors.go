package handlers

import (
	"net/http"
	"strconv"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/postboard/internal"
	"github.com/dmitrymomot/postboard/internal/board"
	"github.com/dmitrymomot/postboard/middlewares"
	"github.com/dmitrymomot/postboard/pkg/dom"
	"github.com/dmitrymomot/postboard/pkg/htmx"
)

// ErrorsTarget is the page element htmx error fragments are swapped into.
const ErrorsTarget = "#errors"

// ErrorHandler renders handler errors. htmx requests get a fragment swapped
// into the page's error area; other requests get a full error page.
func ErrorHandler(c internal.Context, err error) error {
	httpErr := *internal.AsHTTPError(err)
	if httpErr.RequestID == "" {
		httpErr.RequestID = middlewares.GetRequestID(c)
	}

	if httpErr.Code >= http.StatusInternalServerError {
		c.LogError("request failed", "status", httpErr.Code, "error", httpErr.Error())
	} else {
		c.LogDebug("request rejected", "status", httpErr.Code, "error", httpErr.Error())
	}

	return c.RenderPartial(httpErr.Code,
		errorPage(&httpErr),
		errorContent(&httpErr),
		htmx.WithRetarget(ErrorsTarget),
		htmx.WithReswap(htmx.SwapInnerHTML),
	)
}

// NotFound answers unknown routes.
func NotFound(internal.Context) error {
	return internal.ErrNotFound("The page you're looking for doesn't exist.")
}

// MethodNotAllowed answers known routes called with the wrong method.
func MethodNotAllowed(internal.Context) error {
	return internal.NewHTTPError(http.StatusMethodNotAllowed,
		"This HTTP method is not allowed for this resource.")
}

func errorContent(e *internal.HTTPError) *dom.Element {
	content := dom.NewElement("div").AddClass("error").Append(
		board.CreateElemWithText("h2", strconv.Itoa(e.Code)+" "+e.DisplayTitle(), ""),
		board.CreateElemWithText("p", e.Message, ""),
	)
	if e.RequestID != "" {
		content.Append(board.CreateElemWithText("p", "Request ID: "+e.RequestID, "request-id"))
	}
	return content
}

func errorPage(e *internal.HTTPError) templ.Component {
	doc := dom.NewElement("html").SetAttr("lang", "en").Append(
		dom.NewElement("head").Append(
			dom.NewElement("meta").SetAttr("charset", "utf-8"),
			board.CreateElemWithText("title", e.DisplayTitle()+" | "+board.Title, ""),
			dom.NewElement("link").SetAttr("rel", "stylesheet").SetAttr("href", board.StylesheetPath),
		),
		dom.NewElement("body").Append(
			dom.NewElement("main").Append(
				errorContent(e),
				dom.NewElement("a").SetAttr("href", "/").SetText("Back to posts"),
			),
		),
	)
	return templ.Join(templ.Raw("<!DOCTYPE html>"), doc)
}
