package internal

// Handler declares routes on a router.
//
// Example:
//
//	type Board struct {
//	    sessions *board.Sessions
//	}
//
//	func (h *Board) Routes(r internal.Router) {
//	    r.GET("/", h.index)
//	    r.POST("/users/select", h.selectUser)
//	}
type Handler interface {
	Routes(r Router)
}

// HandlerFunc is the signature for route handlers.
// Returning a non-nil error hands the request to the ErrorHandler.
type HandlerFunc func(c Context) error

// Middleware wraps a HandlerFunc to add cross-cutting behavior.
type Middleware func(next HandlerFunc) HandlerFunc

// ErrorHandler renders errors returned from handlers.
type ErrorHandler func(Context, error) error
