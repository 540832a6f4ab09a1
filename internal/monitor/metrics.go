// internal/monitor/metrics.go
package monitor

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
)

var (
	commandsSent = promauto.NewCounter(prometheus.CounterOpts{
		Name: "powermeter_commands_sent_total",
		Help: "SCPI commands transmitted to the instrument",
	})

	deviceErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "powermeter_device_errors_total",
			Help: "Non-zero entries drained from the instrument error queue",
		},
		[]string{"code"},
	)

	commFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "powermeter_comm_failures_total",
		Help: "Transport-level send/read failures",
	})
)

// Monitor implements scpi.Reporter on top of prometheus counters.
type Monitor struct {
	log *logrus.Logger
}

func New(log *logrus.Logger) *Monitor {
	return &Monitor{log: log}
}

func (m *Monitor) ReportCommand(cmd string) {
	commandsSent.Inc()
}

func (m *Monitor) ReportDeviceError(code int) {
	deviceErrors.WithLabelValues(strconv.Itoa(code)).Inc()
}

func (m *Monitor) ReportCommFailure() {
	commFailures.Inc()
}

// StartMetricsServer serves /metrics and a health endpoint in the
// background.
func (m *Monitor) StartMetricsServer(port int) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	addr := fmt.Sprintf(":%d", port)
	m.log.Infof("metrics server listening on %s", addr)

	go func() {
		if err := http.ListenAndServe(addr, mux); err != nil {
			m.log.Errorf("metrics server: %v", err)
		}
	}()
}
