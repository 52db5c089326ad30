package respond

import (
	"errors"
	"log/slog"
	"net/http"

	"newsboard/internal/domain/entity"
)

// UpstreamMessages are the user-facing messages of one proxied endpoint.
type UpstreamMessages struct {
	// Rejected is used when the upstream reports a failure status and gives
	// no message, or when PassUpstreamMessage is false.
	Rejected string
	// Unavailable is used for transport, decode and circuit failures.
	Unavailable string
	// PassUpstreamMessage shows the upstream's own message on rejection.
	PassUpstreamMessage bool
}

// UpstreamFailure writes the envelope for an error returned by an upstream
// call: 400 when the upstream answered with a failure status, 500 otherwise.
func UpstreamFailure(w http.ResponseWriter, logger *slog.Logger, err error, msgs UpstreamMessages) {
	if logger == nil {
		logger = slog.Default()
	}

	var upErr *entity.UpstreamError
	if errors.As(err, &upErr) {
		msg := msgs.Rejected
		if msgs.PassUpstreamMessage && upErr.Message != "" {
			msg = upErr.Message
		}
		logger.Warn("upstream rejected request",
			slog.String("provider", upErr.Provider),
			slog.String("upstream_status", upErr.Status),
			slog.String("error", SanitizeError(err)))
		Fail(w, http.StatusBadRequest, msg)
		return
	}

	SafeError(w, logger, NewAppError(http.StatusInternalServerError, msgs.Unavailable, err))
}
