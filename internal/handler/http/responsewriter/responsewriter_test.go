package responsewriter

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrap(t *testing.T) {
	rec := httptest.NewRecorder()
	rw := Wrap(rec)

	assert.Equal(t, http.StatusOK, rw.StatusCode(), "nothing written yet reports the implicit 200")
	assert.Zero(t, rw.BytesWritten())
	assert.False(t, rw.Written())
	assert.Same(t, rw, Wrap(rw))
}

func TestResponseWriter_StatusRecorded(t *testing.T) {
	for _, code := range []int{http.StatusOK, http.StatusBadRequest, http.StatusNotFound, http.StatusInternalServerError} {
		rec := httptest.NewRecorder()
		rw := Wrap(rec)

		rw.WriteHeader(code)

		assert.Equal(t, code, rw.StatusCode())
		assert.Equal(t, code, rec.Code)
		assert.True(t, rw.Written())
	}
}

func TestResponseWriter_FirstStatusWins(t *testing.T) {
	rec := httptest.NewRecorder()
	rw := Wrap(rec)

	rw.WriteHeader(http.StatusBadRequest)
	rw.WriteHeader(http.StatusInternalServerError)
	_, _ = rw.Write([]byte(`{}`))

	assert.Equal(t, http.StatusBadRequest, rw.StatusCode())
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestResponseWriter_CountsBody(t *testing.T) {
	rec := httptest.NewRecorder()
	rw := Wrap(rec)

	n, err := rw.Write([]byte(`{"success":true}`))
	require.NoError(t, err)
	_, err = rw.Write([]byte("\n"))
	require.NoError(t, err)

	assert.Equal(t, 16, n)
	assert.Equal(t, 17, rw.BytesWritten())
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestResponseWriter_SharedAcrossLayers(t *testing.T) {
	rec := httptest.NewRecorder()
	outer := Wrap(rec)
	inner := Wrap(outer)

	inner.WriteHeader(http.StatusBadGateway)
	_, _ = inner.Write([]byte("x"))

	assert.Equal(t, http.StatusBadGateway, outer.StatusCode())
	assert.Equal(t, 1, outer.BytesWritten())
}

func TestResponseWriter_Flush(t *testing.T) {
	rec := httptest.NewRecorder()
	rw := Wrap(rec)

	rw.Flush()

	assert.True(t, rec.Flushed)
	assert.True(t, rw.Written())
}

func TestResponseWriter_Unwrap(t *testing.T) {
	rec := httptest.NewRecorder()
	assert.Equal(t, rec, Wrap(rec).Unwrap())
}
