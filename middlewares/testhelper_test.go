package middlewares_test

import (
	"bytes"
	"log/slog"
	"net/http"
	"sync"

	"github.com/dmitrymomot/postboard/internal"
)

func newTestContext(w http.ResponseWriter, r *http.Request) internal.Context {
	return internal.NewContext(w, r, nil, nil)
}

// logBuffer is a goroutine-safe sink for a JSON slog handler.
type logBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *logBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *logBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func newLoggedContext(w http.ResponseWriter, r *http.Request) (internal.Context, *logBuffer) {
	out := &logBuffer{}
	log := slog.New(slog.NewJSONHandler(out, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return internal.NewContext(w, r, log, nil), out
}
