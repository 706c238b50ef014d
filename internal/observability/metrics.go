package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Channels a dataset can be delivered through.
const (
	ChannelDownload  = "download"
	ChannelPreview   = "preview"
	ChannelWebsocket = "websocket"
	ChannelCLI       = "cli"
)

var (
	datasetsGenerated = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "weightloss_datagen",
		Subsystem: "generation",
		Name:      "datasets_total",
		Help:      "Number of datasets generated, by delivery channel.",
	}, []string{"channel"})
	rowsGenerated = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "weightloss_datagen",
		Subsystem: "generation",
		Name:      "rows_total",
		Help:      "Number of synthetic rows generated.",
	})
	generationDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "weightloss_datagen",
		Subsystem: "generation",
		Name:      "duration_seconds",
		Help:      "Time spent generating and encoding one dataset.",
		Buckets:   prometheus.ExponentialBuckets(0.0005, 4, 10),
	})
	archiveFailures = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "weightloss_datagen",
		Subsystem: "archive",
		Name:      "failures_total",
		Help:      "Datasets that could not be archived for a signed-in user.",
	})
)

func init() {
	prometheus.MustRegister(datasetsGenerated, rowsGenerated, generationDuration, archiveFailures)
}

// RecordGeneration counts one dataset of rows records delivered through channel.
func RecordGeneration(channel string, rows int, elapsed time.Duration) {
	datasetsGenerated.WithLabelValues(channel).Inc()
	rowsGenerated.Add(float64(rows))
	generationDuration.Observe(elapsed.Seconds())
}

// RecordArchiveFailure counts a failed archive attempt.
func RecordArchiveFailure() {
	archiveFailures.Inc()
}
