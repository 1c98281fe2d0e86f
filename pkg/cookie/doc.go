// Package cookie reads and writes HTTP cookies with shared attributes and
// optional HMAC-SHA256 signing.
//
//	m, err := cookie.New(
//	    cookie.WithSecret(os.Getenv("COOKIE_SECRET")),
//	    cookie.WithSecure(true),
//	)
//	_ = m.Write(w, "postboard_page", pageID)
//	id, err := m.Read(r, "postboard_page")
//
// Read and Write sign when a secret is configured and fall back to raw
// values otherwise, so local development works without a secret. Signed
// values are stored as base64(value).base64(mac); a tampered cookie fails
// with ErrBadSig.
package cookie
