package http

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"newsboard/internal/handler/http/requestid"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestLogging_WritesAccessRecord(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	handler := requestid.Middleware(Logging(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"success":false}`))
	})))

	req := httptest.NewRequest(http.MethodGet, "/api/weather?city=Beijing&key=leaked", nil)
	req.Header.Set(requestid.RequestIDHeader, "req-42")
	handler.ServeHTTP(httptest.NewRecorder(), req)

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "request completed", record["msg"])
	assert.Equal(t, "req-42", record["request_id"])
	assert.Equal(t, "/api/weather", record["path"])
	assert.Equal(t, "city=Beijing&key=****", record["query"])
	assert.EqualValues(t, http.StatusBadRequest, record["status"])
	assert.EqualValues(t, len(`{"success":false}`), record["bytes"])
}

func TestRecover(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	handler := Recover(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("upstream decoder exploded")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/shici", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), `"success":false`)
	assert.Contains(t, buf.String(), "panic recovered")
	assert.Contains(t, buf.String(), "upstream decoder exploded")
}

func TestRecover_AfterHeaderWritten(t *testing.T) {
	handler := Recover(discardLogger())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		panic("late")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/bing", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestLimitRequestBody(t *testing.T) {
	handler := LimitRequestBody(8)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, err := io.ReadAll(r.Body); err != nil {
			w.WriteHeader(http.StatusRequestEntityTooLarge)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/news", strings.NewReader("0123456789")))
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/news", strings.NewReader("ok")))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRateLimiter_Limit(t *testing.T) {
	tests := []struct {
		name           string
		burst          int
		requests       int
		expectedStatus []int
	}{
		{
			name:           "within burst",
			burst:          3,
			requests:       3,
			expectedStatus: []int{200, 200, 200},
		},
		{
			name:           "burst exceeded",
			burst:          3,
			requests:       5,
			expectedStatus: []int{200, 200, 200, 429, 429},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// a near-zero refill rate keeps the test independent of wall time
			rl := NewRateLimiter(0.0001, tt.burst, false)
			handler := rl.Limit(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			}))

			for i := 0; i < tt.requests; i++ {
				req := httptest.NewRequest(http.MethodGet, "/news", nil)
				req.RemoteAddr = "192.168.1.1:12345"
				rec := httptest.NewRecorder()
				handler.ServeHTTP(rec, req)

				assert.Equal(t, tt.expectedStatus[i], rec.Code, "request %d", i+1)
				if rec.Code == http.StatusTooManyRequests {
					assert.Equal(t, "1", rec.Header().Get("Retry-After"))
					assert.Contains(t, rec.Body.String(), RateLimitedMessage)
				}
			}
		})
	}
}

func TestRateLimiter_PerClient(t *testing.T) {
	rl := NewRateLimiter(0.0001, 1, false)
	handler := rl.Limit(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	for _, addr := range []string{"10.0.0.1:1000", "10.0.0.2:1000"} {
		req := httptest.NewRequest(http.MethodGet, "/news", nil)
		req.RemoteAddr = addr
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code, addr)
	}
	assert.Equal(t, 2, rl.ActiveClients())
}

func TestRateLimiter_SweepsIdleClients(t *testing.T) {
	rl := NewRateLimiter(1, 1, false)
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	rl.now = func() time.Time { return now }
	rl.lastSweep = now

	assert.True(t, rl.allow("10.0.0.1"))
	assert.True(t, rl.allow("10.0.0.2"))
	assert.Equal(t, 2, rl.ActiveClients())

	now = now.Add(11 * time.Minute)
	assert.True(t, rl.allow("10.0.0.3"))
	assert.Equal(t, 1, rl.ActiveClients())
}

func TestClientIP(t *testing.T) {
	tests := []struct {
		name           string
		remoteAddr     string
		headers        map[string]string
		trustForwarded bool
		want           string
	}{
		{
			name:       "remote addr",
			remoteAddr: "203.0.113.9:5555",
			want:       "203.0.113.9",
		},
		{
			name:       "forwarded header ignored when untrusted",
			remoteAddr: "203.0.113.9:5555",
			headers:    map[string]string{"X-Forwarded-For": "198.51.100.1"},
			want:       "203.0.113.9",
		},
		{
			name:           "first forwarded address when trusted",
			remoteAddr:     "10.0.0.1:5555",
			headers:        map[string]string{"X-Forwarded-For": "198.51.100.1, 10.0.0.1"},
			trustForwarded: true,
			want:           "198.51.100.1",
		},
		{
			name:           "real ip when trusted",
			remoteAddr:     "10.0.0.1:5555",
			headers:        map[string]string{"X-Real-IP": "198.51.100.7"},
			trustForwarded: true,
			want:           "198.51.100.7",
		},
		{
			name:           "garbage forwarded header falls back",
			remoteAddr:     "10.0.0.1:5555",
			headers:        map[string]string{"X-Forwarded-For": "not-an-ip"},
			trustForwarded: true,
			want:           "10.0.0.1",
		},
		{
			name:       "remote addr without port",
			remoteAddr: "unix-socket",
			want:       "unix-socket",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remoteAddr
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			assert.Equal(t, tt.want, ClientIP(req, tt.trustForwarded))
		})
	}
}
