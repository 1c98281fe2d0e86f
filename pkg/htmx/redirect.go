package htmx

import "net/http"

// Redirect sends the client to url. htmx requests get HX-Redirect with a 200
// because htmx does not follow 3xx responses into a full navigation.
func Redirect(w http.ResponseWriter, r *http.Request, url string) {
	if IsHTMX(r) {
		w.Header().Set(HeaderHXRedirect, url)
		w.WriteHeader(http.StatusOK)
		return
	}
	http.Redirect(w, r, url, http.StatusSeeOther)
}

// Refresh asks htmx to reload the whole page. Plain requests are redirected
// to the current URL.
func Refresh(w http.ResponseWriter, r *http.Request) {
	if IsHTMX(r) {
		w.Header().Set(HeaderHXRefresh, "true")
		w.WriteHeader(http.StatusOK)
		return
	}
	http.Redirect(w, r, r.URL.RequestURI(), http.StatusSeeOther)
}
