package metrics

import (
	"context"
	"time"

	"github.com/andrescamacho/puremvc-go/pkg/mvc"
)

// PrometheusMiddleware creates a middleware that records command execution metrics
//
// This middleware wraps every command execution and records:
// - Execution duration (histogram)
// - Success/failure counts (counter)
// - In-flight executions (gauge)
//
// Commands are labelled by the notification name they are mapped to.
func PrometheusMiddleware(collector *CommandMetricsCollector) mvc.Middleware {
	return func(ctx context.Context, notification mvc.Notification, next mvc.ExecuteFunc) error {
		// Skip metrics if collector is nil (metrics disabled)
		if collector == nil {
			return next(ctx, notification)
		}

		name := notification.Name()
		collector.RecordCommandStart(name)
		start := time.Now()

		err := next(ctx, notification)

		collector.RecordCommandExecution(name, time.Since(start).Seconds(), err == nil)
		return err
	}
}
