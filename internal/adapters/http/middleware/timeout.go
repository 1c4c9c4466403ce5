package middleware

import (
	"bytes"
	"context"
	"maps"
	"net/http"
	"sync"
	"time"

	"github.com/jsamuelsen11/listsync/internal/adapters/http/dto"
)

// Timeout bounds how long a client waits for a response. The handler sees a
// context with the deadline and writes into a buffer; if the deadline passes
// first the client gets a problem+json 504 and later handler writes fail
// with http.ErrHandlerTimeout. Store and marketing API writes run on a
// context detached from cancellation, so a committed local write still
// finishes its remote step after the 504.
func Timeout(timeout time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), timeout)
			defer cancel()

			bw := &bufferedWriter{header: make(http.Header)}
			done := make(chan struct{})
			var panicked any
			go func() {
				defer close(done)
				// Re-raised on the serving goroutine so Recovery sees it.
				defer func() { panicked = recover() }()
				next.ServeHTTP(bw, r.WithContext(ctx))
				bw.finish()
			}()

			select {
			case <-done:
				if panicked != nil {
					panic(panicked)
				}
				bw.copyTo(w)
			case <-ctx.Done():
				if bw.expire() {
					writeTimeout(w, r)
				} else {
					// The handler finished writing just as the deadline hit.
					<-done
					if panicked != nil {
						panic(panicked)
					}
					bw.copyTo(w)
				}
			}
		})
	}
}

// bufferedWriter holds a handler's response until Timeout decides whether
// it reaches the client.
type bufferedWriter struct {
	mu       sync.Mutex
	header   http.Header
	body     bytes.Buffer
	status   int
	expired  bool
	finished bool
}

func (bw *bufferedWriter) Header() http.Header {
	return bw.header
}

func (bw *bufferedWriter) WriteHeader(code int) {
	bw.mu.Lock()
	defer bw.mu.Unlock()
	if bw.status == 0 && !bw.expired {
		bw.status = code
	}
}

func (bw *bufferedWriter) Write(b []byte) (int, error) {
	bw.mu.Lock()
	defer bw.mu.Unlock()
	if bw.expired {
		return 0, http.ErrHandlerTimeout
	}
	if bw.status == 0 {
		bw.status = http.StatusOK
	}
	return bw.body.Write(b)
}

// expire marks the response abandoned. It reports false when the handler
// already completed, in which case its response wins.
func (bw *bufferedWriter) expire() bool {
	bw.mu.Lock()
	defer bw.mu.Unlock()
	if bw.finished {
		return false
	}
	bw.expired = true
	return true
}

func (bw *bufferedWriter) finish() {
	bw.mu.Lock()
	defer bw.mu.Unlock()
	bw.finished = true
}

func (bw *bufferedWriter) copyTo(w http.ResponseWriter) {
	bw.mu.Lock()
	defer bw.mu.Unlock()

	maps.Copy(w.Header(), bw.header)
	if bw.status != 0 {
		w.WriteHeader(bw.status)
	}
	if bw.body.Len() > 0 {
		_, _ = w.Write(bw.body.Bytes())
	}
}

func writeTimeout(w http.ResponseWriter, r *http.Request) {
	dto.WriteProblem(w, r, dto.Problem(r, http.StatusGatewayTimeout, "request did not complete in time"))
}
