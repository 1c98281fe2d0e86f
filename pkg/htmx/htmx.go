package htmx

import "net/http"

// IsHTMX returns true if the request originated from htmx.
func IsHTMX(r *http.Request) bool {
	return r.Header.Get(HeaderHXRequest) == "true"
}

// TriggerID returns the id of the element that fired the request, if any.
func TriggerID(r *http.Request) string {
	if !IsHTMX(r) {
		return ""
	}
	return r.Header.Get(HeaderHXTriggerID)
}

// Target returns the id of the swap target element, if any.
func Target(r *http.Request) string {
	if !IsHTMX(r) {
		return ""
	}
	return r.Header.Get(HeaderHXTarget)
}
