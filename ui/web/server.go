// Copyright (c) 2026 Keymaster Team
// tuikit - terminal and HTML UI widgets
// This source code is licensed under the MIT license found in the LICENSE file.

// Package web serves the HTML demo page over echo.
package web

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/toeirei/tuikit/internal/logging"
	"github.com/toeirei/tuikit/ui/html"
)

const shutdownTimeout = 5 * time.Second

type Handler struct {
	renderer *html.Renderer
	opts     html.PageOptions
}

func NewHandler(opts html.PageOptions) (*Handler, error) {
	r, err := html.NewRenderer()
	if err != nil {
		return nil, err
	}
	return &Handler{renderer: r, opts: opts}, nil
}

// Page renders the demo page for the state in the request URL.
func (h *Handler) Page(c echo.Context) error {
	state := html.NewState(c.Request().URL)

	var buf bytes.Buffer
	if err := h.renderer.Page(&buf, html.BuildPage(state, h.opts)); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "render page").SetInternal(err)
	}
	return c.HTMLBlob(http.StatusOK, buf.Bytes())
}

func (h *Handler) HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": "tuikit",
	})
}

func SetupRoutes(e *echo.Echo, h *Handler) {
	e.Use(middleware.Recover())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		LogValuesFunc: func(_ echo.Context, v middleware.RequestLoggerValues) error {
			if v.Error != nil {
				logging.Warnf("%s %s %d %s [%s]: %v", v.Method, v.URI, v.Status, v.Latency, v.RequestID, v.Error)
				return nil
			}
			logging.Infof("%s %s %d %s [%s]", v.Method, v.URI, v.Status, v.Latency, v.RequestID)
			return nil
		},
	}))
	e.Use(middleware.GzipWithConfig(middleware.GzipConfig{
		Level: 5,
	}))

	e.GET("/", h.Page)
	e.GET("/healthz", h.HealthCheck)
}

// New builds the echo instance serving the demo page.
func New(opts html.PageOptions) (*echo.Echo, error) {
	h, err := NewHandler(opts)
	if err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	SetupRoutes(e, h)
	return e, nil
}

// Serve listens on addr until ctx is done, then shuts down gracefully.
func Serve(ctx context.Context, addr string, opts html.PageOptions) error {
	e, err := New(opts)
	if err != nil {
		return err
	}

	errc := make(chan error, 1)
	go func() {
		logging.Infof("serving on http://%s", addr)
		errc <- e.Start(addr)
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		logging.Infof("shutting down web server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return e.Shutdown(shutdownCtx)
	}
}
