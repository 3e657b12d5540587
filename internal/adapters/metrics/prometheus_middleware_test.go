package metrics_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/puremvc-go/internal/adapters/metrics"
	"github.com/andrescamacho/puremvc-go/pkg/mvc"
	"github.com/andrescamacho/puremvc-go/pkg/mvc/core"
	"github.com/andrescamacho/puremvc-go/pkg/mvc/notification"
	"github.com/andrescamacho/puremvc-go/test/helpers"
)

func TestPrometheusMiddleware_RecordsExecutions(t *testing.T) {
	// Arrange
	metrics.InitRegistry()
	t.Cleanup(func() { metrics.Registry = nil })
	collector := metrics.NewCommandMetricsCollector()
	require.NoError(t, collector.Register())

	view := core.NewView()
	controller := core.NewController(view, core.WithMiddleware(metrics.PrometheusMiddleware(collector)))
	recorder := helpers.NewCommandRecorder()
	require.NoError(t, controller.RegisterCommand("ok", recorder.Factory("ok", nil)))
	require.NoError(t, controller.RegisterCommand("fail", recorder.Factory("fail", errors.New("boom"))))

	// Act
	require.NoError(t, controller.ExecuteCommand(context.Background(), notification.Named("ok")))
	require.NoError(t, controller.ExecuteCommand(context.Background(), notification.Named("ok")))
	require.Error(t, controller.ExecuteCommand(context.Background(), notification.Named("fail")))

	// Assert
	families, err := metrics.Registry.Gather()
	require.NoError(t, err)
	totals := map[string]float64{}
	for _, family := range families {
		if family.GetName() != "puremvc_controller_commands_total" {
			continue
		}
		for _, metric := range family.GetMetric() {
			labels := map[string]string{}
			for _, label := range metric.GetLabel() {
				labels[label.GetName()] = label.GetValue()
			}
			totals[labels["notification"]+"/"+labels["status"]] = metric.GetCounter().GetValue()
		}
	}
	assert.Len(t, totals, 2)
	assert.Equal(t, 2.0, totals["ok/success"])
	assert.Equal(t, 1.0, totals["fail/error"])
}

func TestPrometheusMiddleware_NilCollectorPassesThrough(t *testing.T) {
	called := false
	mw := metrics.PrometheusMiddleware(nil)

	err := mw(context.Background(), notification.Named("x"), func(ctx context.Context, n mvc.Notification) error {
		called = true
		return nil
	})

	require.NoError(t, err)
	assert.True(t, called)
}

func TestRegister_NoOpWhenDisabled(t *testing.T) {
	metrics.Registry = nil

	assert.NoError(t, metrics.NewCommandMetricsCollector().Register())
	assert.False(t, metrics.IsEnabled())
}

func TestHandler(t *testing.T) {
	metrics.Registry = nil
	rec := httptest.NewRecorder()
	metrics.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	metrics.InitRegistry()
	t.Cleanup(func() { metrics.Registry = nil })
	require.NoError(t, metrics.NewCommandMetricsCollector().Register())
	rec = httptest.NewRecorder()
	metrics.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, metrics.IsEnabled())
	assert.Same(t, metrics.Registry, metrics.GetRegistry())
}
