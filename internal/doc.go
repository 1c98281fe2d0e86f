// Package internal is the HTTP core of the postboard server: the App,
// its chi-backed Router, the request Context, the htmx-aware
// ResponseWriter, HTTPError and the server runtime with graceful shutdown.
//
// Handlers and middleware work on Context instead of the raw
// http.ResponseWriter/*http.Request pair:
//
//	func (h *Board) toggle(c internal.Context) error {
//	    id, ok := internal.Param[int](c, "postID")
//	    if !ok {
//	        return internal.ErrBadRequest("invalid post id")
//	    }
//	    ...
//	    return c.Render(http.StatusOK, article)
//	}
//
// Errors returned from handlers go to the ErrorHandler unless a response
// has already started. Responses to htmx requests are always sent as 200
// so htmx swaps error fragments too; ResponseWriter.Status keeps the
// original code for logging.
package internal
