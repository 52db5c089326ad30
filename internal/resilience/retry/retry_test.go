package retry

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fastConfig(attempts int) Config {
	return Config{
		Name:         "test",
		MaxAttempts:  attempts,
		InitialDelay: time.Millisecond,
		MaxDelay:     5 * time.Millisecond,
		Multiplier:   2.0,
	}
}

func TestWithBackoff(t *testing.T) {
	serverErr := &HTTPError{StatusCode: http.StatusBadGateway, Message: "502 Bad Gateway"}
	badRequest := &HTTPError{StatusCode: http.StatusBadRequest, Message: "400 Bad Request"}

	tests := []struct {
		name         string
		attempts     int
		failures     int   // calls that fail before success
		failWith     error // error returned by failing calls
		wantCalls    int
		wantErr      bool
		wantSameErr  bool // error returned unwrapped
		wantWrapping error
	}{
		{name: "first call succeeds", attempts: 3, failures: 0, wantCalls: 1},
		{name: "succeeds after retries", attempts: 3, failures: 2, failWith: serverErr, wantCalls: 3},
		{name: "gives up", attempts: 3, failures: 5, failWith: serverErr, wantCalls: 3, wantErr: true, wantWrapping: serverErr},
		{name: "non-retryable stops at once", attempts: 3, failures: 5, failWith: badRequest, wantCalls: 1, wantErr: true, wantSameErr: true},
		{name: "single attempt returns error unchanged", attempts: 1, failures: 5, failWith: serverErr, wantCalls: 1, wantErr: true, wantSameErr: true},
		{name: "zero attempts still calls once", attempts: 0, failures: 0, wantCalls: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calls := 0
			err := WithBackoff(context.Background(), fastConfig(tt.attempts), func() error {
				calls++
				if calls <= tt.failures {
					return tt.failWith
				}
				return nil
			})

			assert.Equal(t, tt.wantCalls, calls)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			if tt.wantSameErr {
				assert.Same(t, tt.failWith, err)
			}
			if tt.wantWrapping != nil {
				assert.ErrorIs(t, err, tt.wantWrapping)
				assert.Contains(t, err.Error(), "giving up after 3 attempts")
			}
		})
	}
}

func TestWithBackoff_ContextCancelledWhileWaiting(t *testing.T) {
	cfg := fastConfig(5)
	cfg.InitialDelay = time.Hour
	cfg.MaxDelay = time.Hour

	ctx, cancel := context.WithCancel(context.Background())
	calls := 0
	err := WithBackoff(ctx, cfg, func() error {
		calls++
		cancel()
		return &HTTPError{StatusCode: http.StatusServiceUnavailable, Message: "503"}
	})

	require.Error(t, err)
	assert.Equal(t, 1, calls)
	assert.ErrorIs(t, err, context.Canceled)

	var httpErr *HTTPError
	assert.ErrorAs(t, err, &httpErr, "the last upstream error is kept")
}

func TestConfig_Delay(t *testing.T) {
	cfg := Config{InitialDelay: 100 * time.Millisecond, MaxDelay: time.Second, Multiplier: 2}

	assert.Equal(t, 100*time.Millisecond, cfg.Delay(1))
	assert.Equal(t, 200*time.Millisecond, cfg.Delay(2))
	assert.Equal(t, 400*time.Millisecond, cfg.Delay(3))
	assert.Equal(t, 800*time.Millisecond, cfg.Delay(4))
	assert.Equal(t, time.Second, cfg.Delay(5), "capped")
	assert.Equal(t, 100*time.Millisecond, cfg.Delay(0), "clamped to the first retry")

	flat := Config{InitialDelay: 50 * time.Millisecond, Multiplier: 0.5}
	assert.Equal(t, 50*time.Millisecond, flat.Delay(3), "multiplier below 1 never shrinks the wait")
}

func TestConfig_WaitHonorsRetryAfter(t *testing.T) {
	cfg := Config{InitialDelay: 10 * time.Millisecond, MaxDelay: 2 * time.Second, Multiplier: 2}

	hinted := &HTTPError{StatusCode: http.StatusTooManyRequests, RetryAfter: time.Second}
	assert.Equal(t, time.Second, cfg.wait(1, fmt.Errorf("weather: %w", hinted)))

	tooLong := &HTTPError{StatusCode: http.StatusServiceUnavailable, RetryAfter: time.Minute}
	assert.Equal(t, 2*time.Second, cfg.wait(1, tooLong), "capped at MaxDelay")

	assert.Equal(t, 10*time.Millisecond, cfg.wait(1, errors.New("plain")))
}

func TestIsRetryable(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "nil", err: nil, want: false},
		{name: "canceled", err: context.Canceled, want: false},
		{name: "deadline", err: fmt.Errorf("GET x: %w", context.DeadlineExceeded), want: false},
		{name: "connection refused", err: fmt.Errorf("dial: %w", syscall.ECONNREFUSED), want: true},
		{name: "connection reset", err: syscall.ECONNRESET, want: true},
		{name: "truncated body", err: fmt.Errorf("read: %w", io.ErrUnexpectedEOF), want: true},
		{name: "timeout net error", err: timeoutErr{}, want: true},
		{name: "500", err: &HTTPError{StatusCode: 500}, want: true},
		{name: "503 wrapped", err: fmt.Errorf("poetry: %w", &HTTPError{StatusCode: 503}), want: true},
		{name: "429", err: &HTTPError{StatusCode: 429}, want: true},
		{name: "408", err: &HTTPError{StatusCode: 408}, want: true},
		{name: "404", err: &HTTPError{StatusCode: 404}, want: false},
		{name: "plain error", err: errors.New("decode"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsRetryable(tt.err))
		})
	}
}

type timeoutErr struct{}

func (timeoutErr) Error() string   { return "i/o timeout" }
func (timeoutErr) Timeout() bool   { return true }
func (timeoutErr) Temporary() bool { return true }

func TestParseRetryAfter(t *testing.T) {
	now := time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		value string
		want  time.Duration
	}{
		{value: "", want: 0},
		{value: "3", want: 3 * time.Second},
		{value: " 120 ", want: 2 * time.Minute},
		{value: "0", want: 0},
		{value: "-1", want: 0},
		{value: "soon", want: 0},
		{value: "Mon, 15 Jan 2024 10:00:30 GMT", want: 30 * time.Second},
		{value: "Mon, 15 Jan 2024 09:00:00 GMT", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseRetryAfter(tt.value, now))
		})
	}
}

func TestAddJitter(t *testing.T) {
	base := 100 * time.Millisecond

	assert.Equal(t, base, addJitter(base, 0))
	for range 50 {
		got := addJitter(base, 0.5)
		assert.GreaterOrEqual(t, got, base)
		assert.LessOrEqual(t, got, base+base/2)
	}
	for range 50 {
		assert.LessOrEqual(t, addJitter(base, 3), 2*base, "fraction is capped at 1")
	}
}

func TestHTTPError_Error(t *testing.T) {
	err := &HTTPError{StatusCode: 503, Message: "503 Service Unavailable"}
	assert.Equal(t, "HTTP 503: 503 Service Unavailable", err.Error())
}
