// Package htmx holds the request and response conventions of the htmx
// runtime: header and attribute names, request detection, redirects, and
// per-response render options.
//
// Handlers read the triggering element from the request:
//
//	if htmx.IsHTMX(r) {
//	    id := htmx.TriggerID(r)
//	}
//
// and shape the swap with render options:
//
//	cfg := htmx.NewConfig(htmx.WithReswap(htmx.SwapOuterHTML), htmx.WithTrigger("posts-loaded"))
//	cfg.ApplyHeaders(w)
//
// Redirect and Refresh answer htmx requests with headers and plain requests
// with a 303.
package htmx
