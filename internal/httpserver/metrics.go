package httpserver

import (
	"bytes"
	"net/http"

	"lead-notification-srv/internal/notification"
	"lead-notification-srv/internal/websocket"

	"github.com/gin-gonic/gin"
	dto "github.com/prometheus/client_model/go"
	"github.com/prometheus/common/expfmt"
)

const metricsNamespace = "lead_notification_"

// metrics renders gateway and dispatcher counters in the Prometheus text format.
func (srv *HTTPServer) metrics(c *gin.Context) {
	ctx := c.Request.Context()

	var hub websocket.HubStats
	if srv.wsUC != nil {
		hub, _ = srv.wsUC.GetStats(ctx)
	}
	var disp notification.DispatcherStats
	if srv.dispatcher != nil {
		disp = srv.dispatcher.Stats()
	}

	var buf bytes.Buffer
	for _, mf := range metricFamilies(hub, disp) {
		if _, err := expfmt.MetricFamilyToText(&buf, mf); err != nil {
			srv.l.Errorf(ctx, "internal.httpserver.metrics: %v", err)
			c.Status(http.StatusInternalServerError)
			return
		}
	}
	c.Data(http.StatusOK, string(expfmt.NewFormat(expfmt.TypeTextPlain)), buf.Bytes())
}

func metricFamilies(hub websocket.HubStats, disp notification.DispatcherStats) []*dto.MetricFamily {
	return []*dto.MetricFamily{
		gauge("ws_active_connections", "Open WebSocket connections.", float64(hub.ActiveConnections)),
		gauge("ws_connected_users", "Users with at least one open connection.", float64(hub.TotalUniqueUsers)),
		counter("ws_messages_sent_total", "Frames enqueued to connections.", float64(hub.TotalMessagesSent)),
		counter("ws_messages_failed_total", "Frames dropped on full or closed buffers.", float64(hub.TotalMessagesFailed)),
		counter("ws_evicted_total", "Connections evicted by the liveness sweep.", float64(hub.TotalEvicted)),
		counter("ws_rejected_total", "Upgrades refused at capacity.", float64(hub.TotalRejected)),
		gauge("dispatch_queue_depth", "Tasks waiting in the dispatch queue.", float64(disp.QueueDepth)),
		counter("dispatch_enqueued_total", "Tasks accepted by the dispatcher.", float64(disp.Enqueued)),
		counter("dispatch_dropped_total", "Tasks refused on a full queue.", float64(disp.Dropped)),
		counter("dispatch_completed_total", "Tasks that finished without error.", float64(disp.Completed)),
		counter("dispatch_failed_total", "Tasks that returned an error.", float64(disp.Failed)),
		counter("dispatch_panicked_total", "Tasks that panicked.", float64(disp.Panicked)),
	}
}

func gauge(name, help string, v float64) *dto.MetricFamily {
	return family(name, help, dto.MetricType_GAUGE, &dto.Metric{Gauge: &dto.Gauge{Value: &v}})
}

func counter(name, help string, v float64) *dto.MetricFamily {
	return family(name, help, dto.MetricType_COUNTER, &dto.Metric{Counter: &dto.Counter{Value: &v}})
}

func family(name, help string, t dto.MetricType, m *dto.Metric) *dto.MetricFamily {
	fullName := metricsNamespace + name
	return &dto.MetricFamily{
		Name:   &fullName,
		Help:   &help,
		Type:   t.Enum(),
		Metric: []*dto.Metric{m},
	}
}
