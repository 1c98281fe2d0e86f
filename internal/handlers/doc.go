// Package handlers wires the board pages to HTTP routes and renders errors.
//
//	GET  /                                full page, opens a page session
//	POST /users/select                    change on the user selector
//	POST /posts/{postID}/comments/toggle  click on a comment button
//
// Event routes look the page up through a signed cookie. A tab whose page
// expired is redirected to / to start over.
package handlers
