package middleware

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/andrescamacho/puremvc-go/pkg/mvc"
	"github.com/andrescamacho/puremvc-go/pkg/mvc/logging"
)

// Logging logs every command execution through the context logger
func Logging() mvc.Middleware {
	return func(ctx context.Context, notification mvc.Notification, next mvc.ExecuteFunc) error {
		logger := logging.LoggerFromContext(ctx)
		start := time.Now()

		err := next(ctx, notification)

		metadata := map[string]interface{}{
			"notification":    notification.Name(),
			"notification_id": notification.ID(),
			"duration_ms":     time.Since(start).Milliseconds(),
		}
		if err != nil {
			metadata["error"] = err.Error()
			logger.Log(logging.LevelError, "Command failed", metadata)
			return err
		}
		logger.Log(logging.LevelDebug, "Command executed", metadata)
		return nil
	}
}

// Recover turns a panicking command into a *mvc.CommandPanicError
func Recover() mvc.Middleware {
	return func(ctx context.Context, notification mvc.Notification, next mvc.ExecuteFunc) (err error) {
		defer func() {
			if r := recover(); r != nil {
				err = mvc.NewCommandPanicError(notification.Name(), r)
			}
		}()
		return next(ctx, notification)
	}
}

// RateLimit throttles command executions per notification name.
// Each name gets its own token bucket; executions wait for a token or
// fail with the context's error.
func RateLimit(limit rate.Limit, burst int) mvc.Middleware {
	var (
		mu       sync.Mutex
		limiters = make(map[string]*rate.Limiter)
	)

	limiterFor := func(name string) *rate.Limiter {
		mu.Lock()
		defer mu.Unlock()

		limiter, ok := limiters[name]
		if !ok {
			limiter = rate.NewLimiter(limit, burst)
			limiters[name] = limiter
		}
		return limiter
	}

	return func(ctx context.Context, notification mvc.Notification, next mvc.ExecuteFunc) error {
		if err := limiterFor(notification.Name()).Wait(ctx); err != nil {
			return err
		}
		return next(ctx, notification)
	}
}
