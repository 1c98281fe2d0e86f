package cookie

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"net/http"
	"strings"
	"time"
)

// MinSecretLen is the shortest accepted signing secret.
const MinSecretLen = 32

var (
	ErrNotFound  = errors.New("cookie: not found")
	ErrNoSecret  = errors.New("cookie: secret required")
	ErrBadSecret = errors.New("cookie: secret must be 32+ bytes")
	ErrBadSig    = errors.New("cookie: invalid signature")
)

// Manager reads and writes cookies with shared attributes.
type Manager struct {
	secret   []byte
	domain   string
	path     string
	maxAge   time.Duration
	secure   bool
	httpOnly bool
	sameSite http.SameSite
}

// Option configures the Manager.
type Option func(*Manager) error

// New creates a Manager. It fails only when an option is invalid.
func New(opts ...Option) (*Manager, error) {
	m := &Manager{
		path:     "/",
		httpOnly: true,
		sameSite: http.SameSiteLaxMode,
	}
	for _, opt := range opts {
		if err := opt(m); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// WithSecret enables signing. An empty secret leaves signing off.
func WithSecret(secret string) Option {
	return func(m *Manager) error {
		if secret == "" {
			return nil
		}
		if len(secret) < MinSecretLen {
			return ErrBadSecret
		}
		m.secret = []byte(secret)
		return nil
	}
}

// WithDomain sets the cookie domain.
func WithDomain(domain string) Option {
	return func(m *Manager) error {
		m.domain = domain
		return nil
	}
}

// WithPath sets the cookie path. Default "/".
func WithPath(path string) Option {
	return func(m *Manager) error {
		m.path = path
		return nil
	}
}

// WithMaxAge sets the lifetime of written cookies. Zero means a browser
// session cookie.
func WithMaxAge(d time.Duration) Option {
	return func(m *Manager) error {
		m.maxAge = d
		return nil
	}
}

// WithSecure sets the Secure flag.
func WithSecure(secure bool) Option {
	return func(m *Manager) error {
		m.secure = secure
		return nil
	}
}

// WithSameSite sets the SameSite attribute. Default Lax.
func WithSameSite(ss http.SameSite) Option {
	return func(m *Manager) error {
		m.sameSite = ss
		return nil
	}
}

// Signed reports whether the Manager signs values.
func (m *Manager) Signed() bool {
	return m.secret != nil
}

// Get returns the raw cookie value.
func (m *Manager) Get(r *http.Request, name string) (string, error) {
	c, err := r.Cookie(name)
	if err != nil {
		if errors.Is(err, http.ErrNoCookie) {
			return "", ErrNotFound
		}
		return "", err
	}
	return c.Value, nil
}

// Set writes a raw cookie.
func (m *Manager) Set(w http.ResponseWriter, name, value string) {
	http.SetCookie(w, m.cookie(name, value, m.maxAgeSeconds()))
}

// Delete expires a cookie.
func (m *Manager) Delete(w http.ResponseWriter, name string) {
	http.SetCookie(w, m.cookie(name, "", -1))
}

// GetSigned returns a value written by SetSigned after checking its
// signature.
func (m *Manager) GetSigned(r *http.Request, name string) (string, error) {
	if m.secret == nil {
		return "", ErrNoSecret
	}

	raw, err := m.Get(r, name)
	if err != nil {
		return "", err
	}
	return m.verify(raw)
}

// SetSigned writes value as base64(value).base64(hmac).
func (m *Manager) SetSigned(w http.ResponseWriter, name, value string) error {
	if m.secret == nil {
		return ErrNoSecret
	}
	m.Set(w, name, m.sign(value))
	return nil
}

// Read returns a signed value when signing is on, or the raw value otherwise.
func (m *Manager) Read(r *http.Request, name string) (string, error) {
	if m.Signed() {
		return m.GetSigned(r, name)
	}
	return m.Get(r, name)
}

// Write is the counterpart of Read.
func (m *Manager) Write(w http.ResponseWriter, name, value string) error {
	if m.Signed() {
		return m.SetSigned(w, name, value)
	}
	m.Set(w, name, value)
	return nil
}

func (m *Manager) sign(value string) string {
	return base64.RawURLEncoding.EncodeToString([]byte(value)) +
		"." + base64.RawURLEncoding.EncodeToString(m.mac([]byte(value)))
}

func (m *Manager) verify(raw string) (string, error) {
	encValue, encSig, ok := strings.Cut(raw, ".")
	if !ok {
		return "", ErrBadSig
	}

	value, err := base64.RawURLEncoding.DecodeString(encValue)
	if err != nil {
		return "", ErrBadSig
	}
	sig, err := base64.RawURLEncoding.DecodeString(encSig)
	if err != nil {
		return "", ErrBadSig
	}

	if !hmac.Equal(sig, m.mac(value)) {
		return "", ErrBadSig
	}
	return string(value), nil
}

func (m *Manager) mac(value []byte) []byte {
	h := hmac.New(sha256.New, m.secret)
	h.Write(value)
	return h.Sum(nil)
}

func (m *Manager) maxAgeSeconds() int {
	return int(m.maxAge / time.Second)
}

func (m *Manager) cookie(name, value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     m.path,
		Domain:   m.domain,
		MaxAge:   maxAge,
		Secure:   m.secure,
		HttpOnly: m.httpOnly,
		SameSite: m.sameSite,
	}
}
