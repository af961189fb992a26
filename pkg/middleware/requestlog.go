package middleware

import (
	"time"

	"github.com/aminafridi/PhysioCare-sub000/pkg/logger"

	"github.com/google/uuid"
	"github.com/pocketbase/pocketbase/core"
	"go.uber.org/zap"
)

const RequestIDHeader = "X-Request-ID"

// RequestLogger gives every request an id, echoed in X-Request-ID, and a
// logger carrying it in the request context. One line is logged per request
// once the handler chain returns.
func RequestLogger(base *zap.Logger) func(e *core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		id := e.Request.Header.Get(RequestIDHeader)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}
		e.Response.Header().Set(RequestIDHeader, id)

		ctx := logger.With(e.Request.Context(), base, zap.String("request_id", id))
		e.Request = e.Request.WithContext(ctx)

		start := time.Now()
		err := e.Next()

		fields := []zap.Field{
			zap.String("method", e.Request.Method),
			zap.String("path", e.Request.URL.Path),
			zap.Int("status", e.Status()),
			zap.Duration("duration", time.Since(start)),
		}
		l := logger.FromContext(e.Request.Context(), base)
		if err != nil {
			l.Warn("Request failed", append(fields, zap.Error(err))...)
		} else {
			l.Info("Request served", fields...)
		}
		return err
	}
}
