// Copyright (c) 2026 Keymaster Team
// tuikit - terminal and HTML UI widgets
// This source code is licensed under the MIT license found in the LICENSE file.

package web

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/toeirei/tuikit/ui/html"
)

func newServer(t *testing.T, opts html.PageOptions) *echo.Echo {
	t.Helper()
	e, err := New(opts)
	require.NoError(t, err)
	return e
}

func get(e *echo.Echo, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestPage(t *testing.T) {
	e := newServer(t, html.PageOptions{})

	t.Run("Should render the filtered roster", func(t *testing.T) {
		rec := get(e, "/?q=anup")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, echo.MIMETextHTMLCharsetUTF8, rec.Header().Get(echo.HeaderContentType))
		assert.Contains(t, rec.Body.String(), "Anup Patil")
		assert.NotContains(t, rec.Body.String(), "Santosh Rathod")
		assert.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID))
	})

	t.Run("Should use the configured empty text", func(t *testing.T) {
		e := newServer(t, html.PageOptions{EmptyText: "Nobody aboard"})
		rec := get(e, "/?q=zz")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Nobody aboard")
	})

	t.Run("Should ignore malformed state", func(t *testing.T) {
		rec := get(e, "/?sort=name&dir=up&sel=a,b")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `aria-sort="none"`)
		assert.NotContains(t, rec.Body.String(), `aria-checked="true"`)
	})
}

func TestHealthCheck(t *testing.T) {
	e := newServer(t, html.PageOptions{})

	rec := get(e, "/healthz")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"healthy","service":"tuikit"}`, rec.Body.String())

	assert.Equal(t, http.StatusNotFound, get(e, "/nope").Code)
}

func TestServe_StopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.NoError(t, Serve(ctx, "127.0.0.1:0", html.PageOptions{}))
}
