package handler

import (
	"fmt"
	"io"
	"net/http"
	"runtime/debug"
	"time"

	"fsanano/hello-api/internal/web"

	"github.com/andybalholm/brotli"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

var compressibleTypes = []string{
	"application/json",
	"text/html",
	"text/plain",
}

// requestLogger attaches a request-scoped logger to the context and logs
// one line per request once the handler returns.
func requestLogger(logger zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			reqLogger := logger.With().
				Str("request_id", middleware.GetReqID(r.Context())).
				Logger()
			r = r.WithContext(reqLogger.WithContext(r.Context()))

			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			defer func() {
				status := ww.Status()
				if status == 0 {
					status = http.StatusOK
				}
				reqLogger.Info().
					Str("method", r.Method).
					Str("path", r.URL.Path).
					Int("status", status).
					Int("bytes", ww.BytesWritten()).
					Dur("duration", time.Since(start)).
					Msg("request")
			}()

			next.ServeHTTP(ww, r)
		})
	}
}

// recoverer turns a panic into a 500. In development the response is a
// detailed page with the panic value and stack; otherwise the body is the
// bare status text.
func recoverer(development bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rvr := recover()
				if rvr == nil {
					return
				}
				if rvr == http.ErrAbortHandler {
					panic(rvr)
				}

				stack := debug.Stack()
				zerolog.Ctx(r.Context()).Error().
					Interface("panic", rvr).
					Bytes("stack", stack).
					Msg("handler panicked")

				if r.Header.Get("Connection") == "Upgrade" {
					return
				}
				if !development {
					http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
					return
				}
				writeHTML(w, r, http.StatusInternalServerError, func(out io.Writer) error {
					return web.DeveloperError(out, r.Method, r.URL.Path, fmt.Sprint(rvr), string(stack))
				})
			}()

			next.ServeHTTP(w, r)
		})
	}
}

// newCompressor returns chi's compressor with brotli registered ahead of
// the built-in gzip and deflate encoders.
func newCompressor() *middleware.Compressor {
	c := middleware.NewCompressor(5, compressibleTypes...)
	c.SetEncoder("br", func(w io.Writer, level int) io.Writer {
		return brotli.NewWriterLevel(w, level)
	})
	return c
}
