package http

import (
	"context"
	"net/http"
	"sync"
	"time"

	"newsboard/internal/handler/http/respond"
)

// TimeoutMessage is returned with 504 responses.
const TimeoutMessage = "请求超时"

// Timeout bounds the whole request, upstream round trips included. If the
// deadline passes before the handler has written anything the client gets a
// 504 envelope. Either way nothing the handler writes after the deadline
// reaches the client. A non-positive d disables the middleware.
func Timeout(d time.Duration) func(http.Handler) http.Handler {
	if d <= 0 {
		return func(next http.Handler) http.Handler { return next }
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), d)
			defer cancel()

			gw := &guardedWriter{w: w, hdr: w.Header().Clone()}
			done := make(chan any, 1)
			go func() {
				defer func() { done <- recover() }()
				next.ServeHTTP(gw, r.WithContext(ctx))
			}()

			select {
			case p := <-done:
				if p != nil {
					// re-raised here so Recover, which runs on this goroutine, sees it
					panic(p)
				}
			case <-ctx.Done():
				gw.expire(func() {
					respond.Fail(w, http.StatusGatewayTimeout, TimeoutMessage)
				})
			}
		})
	}
}

// guardedWriter forwards to w until expire is called. The handler edits its
// own header map, copied into w when the response starts, so a handler that
// outlives the deadline never touches w's headers.
type guardedWriter struct {
	mu      sync.Mutex
	w       http.ResponseWriter
	hdr     http.Header
	started bool
	expired bool
}

func (g *guardedWriter) Header() http.Header {
	return g.hdr
}

// start sends the handler's headers and status. Callers hold mu.
func (g *guardedWriter) start(code int) {
	g.started = true
	dst := g.w.Header()
	clear(dst)
	for k, v := range g.hdr {
		dst[k] = v
	}
	g.w.WriteHeader(code)
}

func (g *guardedWriter) WriteHeader(code int) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.expired || g.started {
		return
	}
	g.start(code)
}

func (g *guardedWriter) Write(b []byte) (int, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.expired {
		return 0, http.ErrHandlerTimeout
	}
	if !g.started {
		g.start(http.StatusOK)
	}
	return g.w.Write(b)
}

// expire stops forwarding and, if nothing was written yet, runs onIdle
// while still holding the lock.
func (g *guardedWriter) expire(onIdle func()) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.expired = true
	if !g.started {
		onIdle()
	}
}
