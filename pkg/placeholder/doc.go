// Package placeholder is a small client for the JSONPlaceholder REST API
// (https://jsonplaceholder.typicode.com).
//
// It covers the four read endpoints the post board needs:
//
//	GET /users
//	GET /users/{id}
//	GET /posts?userId={id}
//	GET /comments?postId={id}
//
// Each call issues a single request bound to the caller's context. Non-2xx
// responses return a *StatusError that matches ErrUnexpectedStatus with
// errors.Is. Ids must be positive; ErrInvalidID is returned without touching
// the network otherwise.
package placeholder
