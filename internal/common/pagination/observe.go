package pagination

import (
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	listRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "news_list_requests_total",
			Help: "Paginated news list requests by outcome and requested page range",
		},
		[]string{"outcome", "page_range"},
	)

	listDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "news_list_duration_seconds",
			Help:    "Time spent serving a paginated news list",
			Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 2},
		},
	)

	listResultSize = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "news_list_result_size",
			Help:    "Items matching the filter before slicing",
			Buckets: prometheus.ExponentialBuckets(1, 2, 10),
		},
	)
)

// Observation records one list request in the log and in metrics.
// Start it before calling the provider, then call exactly one of Done or Fail.
type Observation struct {
	logger *slog.Logger
	params Params
	start  time.Time
}

// Observe logs the incoming request and starts timing it.
func Observe(logger *slog.Logger, category string, p Params) *Observation {
	logger.Info("list request",
		slog.String("category", category),
		slog.Int("page", p.Page),
		slog.Int("page_size", p.PageSize))
	return &Observation{logger: logger, params: p, start: time.Now()}
}

// Done records a served page.
func (o *Observation) Done(returned, total int) {
	elapsed := time.Since(o.start)
	listRequests.WithLabelValues("ok", pageRange(o.params.Page)).Inc()
	listDuration.Observe(elapsed.Seconds())
	listResultSize.Observe(float64(total))

	o.logger.Info("list response",
		slog.Int("page", o.params.Page),
		slog.Int("returned", returned),
		slog.Int("total", total),
		slog.Int64("duration_ms", elapsed.Milliseconds()))
}

// Fail records a request that could not be served.
func (o *Observation) Fail(err error) {
	listRequests.WithLabelValues("error", pageRange(o.params.Page)).Inc()
	listDuration.Observe(time.Since(o.start).Seconds())

	o.logger.Error("list failed",
		slog.Int("page", o.params.Page),
		slog.Int("page_size", o.params.PageSize),
		slog.Any("error", err))
}

// pageRange keeps the page label bounded.
func pageRange(page int) string {
	switch {
	case page <= 10:
		return "1-10"
	case page <= 50:
		return "11-50"
	case page <= 100:
		return "51-100"
	}
	return "100+"
}
