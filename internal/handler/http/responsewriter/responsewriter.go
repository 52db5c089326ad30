// Package responsewriter records the status code and body size of a response
// so that logging, metrics and tracing middleware can report them.
package responsewriter

import "net/http"

// ResponseWriter remembers the status and size of what passes through it.
// Several middleware layers share one recorder: see Wrap.
type ResponseWriter struct {
	http.ResponseWriter
	status int // 0 until the header is sent
	size   int
}

// Wrap returns w itself when it is already a *ResponseWriter.
func Wrap(w http.ResponseWriter) *ResponseWriter {
	if rw, ok := w.(*ResponseWriter); ok {
		return rw
	}
	return &ResponseWriter{ResponseWriter: w}
}

// WriteHeader sends the first status code and ignores the rest.
func (w *ResponseWriter) WriteHeader(code int) {
	if w.status != 0 {
		return
	}
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *ResponseWriter) Write(b []byte) (int, error) {
	w.WriteHeader(http.StatusOK)
	n, err := w.ResponseWriter.Write(b)
	w.size += n
	return n, err
}

// Flush sends the header if needed and flushes when the underlying writer can.
func (w *ResponseWriter) Flush() {
	f, ok := w.ResponseWriter.(http.Flusher)
	if !ok {
		return
	}
	w.WriteHeader(http.StatusOK)
	f.Flush()
}

// StatusCode is the status sent, or 200 if the handler has not written yet,
// which is what net/http would send.
func (w *ResponseWriter) StatusCode() int {
	if w.status == 0 {
		return http.StatusOK
	}
	return w.status
}

// BytesWritten is the body size so far.
func (w *ResponseWriter) BytesWritten() int { return w.size }

// Written reports whether the header has been sent.
func (w *ResponseWriter) Written() bool { return w.status != 0 }

// Unwrap lets http.ResponseController reach the underlying writer.
func (w *ResponseWriter) Unwrap() http.ResponseWriter { return w.ResponseWriter }
