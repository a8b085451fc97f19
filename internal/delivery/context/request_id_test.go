package context

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func newEchoContext() echo.Context {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	return e.NewContext(req, httptest.NewRecorder())
}

func TestRequestID_SetAndGet(t *testing.T) {
	c := newEchoContext()

	SetRequestID(c, "req-123")
	assert.Equal(t, "req-123", GetRequestID(c))
}

func TestGetRequestID_GeneratesWhenAbsent(t *testing.T) {
	c := newEchoContext()

	id := GetRequestID(c)
	assert.NotEmpty(t, id)
}

func TestGetLoggerOrDefault(t *testing.T) {
	fallback := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("falls back when absent", func(t *testing.T) {
		got := GetLoggerOrDefault(context.Background(), fallback)
		assert.Same(t, fallback, got)
	})

	t.Run("returns the request-scoped logger", func(t *testing.T) {
		scoped := fallback.With(slog.String("request_id", "req-123"))
		ctx := WithLogger(context.Background(), scoped)

		got := GetLoggerOrDefault(ctx, fallback)
		assert.Same(t, scoped, got)
	})
}
