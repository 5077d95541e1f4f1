package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/oggyb/nearby/internal/app"
	"github.com/oggyb/nearby/internal/logger"
	"github.com/oggyb/nearby/internal/realtime"
)

const (
	headerRequestID = "X-Request-ID"
	checkTimeout    = 2 * time.Second
	shutdownTimeout = 5 * time.Second
)

// NewRouter builds the HTTP side channel: GET /health and the /ws endpoint.
func NewRouter(appCtx *app.AppContext, reg *realtime.Registry, auth *realtime.Authenticator) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(ginLogger(appCtx.Logger))

	h := &healthHandler{appCtx: appCtx, registry: reg, startedAt: time.Now()}
	r.GET("/health", h.Check)
	r.GET("/ws", realtime.Handler(reg, auth, appCtx.Logger))
	return r
}

type healthHandler struct {
	appCtx    *app.AppContext
	registry  *realtime.Registry
	startedAt time.Time
}

// Check reports process uptime and the reachability of the database and
// Redis. Any failing dependency turns the response into a 503.
func (h *healthHandler) Check(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), checkTimeout)
	defer cancel()

	checks := gin.H{}
	healthy := true

	if err := h.pingDB(ctx); err != nil {
		checks["database"] = err.Error()
		healthy = false
	} else {
		checks["database"] = "ok"
	}
	if err := h.appCtx.RedisCache.Ping(ctx); err != nil {
		checks["redis"] = err.Error()
		healthy = false
	} else {
		checks["redis"] = "ok"
	}

	status, code := "ok", http.StatusOK
	if !healthy {
		status, code = "degraded", http.StatusServiceUnavailable
	}
	c.JSON(code, gin.H{
		"status":      status,
		"timestamp":   time.Now().UTC().Format(time.RFC3339),
		"uptime":      time.Since(h.startedAt).Round(time.Second).String(),
		"connections": h.registry.Count(),
		"checks":      checks,
	})
}

func (h *healthHandler) pingDB(ctx context.Context) error {
	sqlDB, err := h.appCtx.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// ginLogger reads or generates a request id, stores a child logger in the
// request context and logs the completed request.
func ginLogger(log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		reqID := c.GetHeader(headerRequestID)
		if reqID == "" {
			reqID = uuid.NewString()
		}
		child := log.With("request_id", reqID, "method", c.Request.Method, "path", c.Request.URL.Path)

		c.Header(headerRequestID, reqID)
		c.Request = c.Request.WithContext(logger.WithContext(c.Request.Context(), child))

		c.Next()

		child.Info("request completed", "status", c.Writer.Status(), "latency_ms", time.Since(start).Milliseconds())
	}
}

// StartHTTPServer serves handler on addr until ctx is done, then shuts down
// gracefully.
func StartHTTPServer(ctx context.Context, addr string, handler http.Handler, log *slog.Logger) error {
	srv := &http.Server{Addr: addr, Handler: handler, ReadHeaderTimeout: 10 * time.Second}

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting HTTP server", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Warn("HTTP server forced to shutdown", "err", err)
			return err
		}
		return nil
	}
}
