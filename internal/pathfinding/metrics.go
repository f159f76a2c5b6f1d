package pathfinding

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	outcomeFound   = "found"
	outcomeTrivial = "trivial"
	outcomeNoPath  = "no_path"
)

var (
	searchesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pathfinding_searches_total",
		Help: "Grid searches by outcome",
	}, []string{"outcome"})

	searchDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "pathfinding_search_duration_seconds",
		Help:    "Time spent inside a single grid search",
		Buckets: prometheus.ExponentialBuckets(0.00001, 2, 16), // 10µs to ~300ms
	})

	searchIterations = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "pathfinding_search_iterations",
		Help:    "Open-list pops per grid search",
		Buckets: prometheus.ExponentialBuckets(1, 4, 10),
	})

	obstacleRebuilds = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pathfinding_obstacle_rebuilds_total",
		Help: "Obstacle grid rebuilds from terrain and buildings",
	})

	obstacleRebuildDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "pathfinding_obstacle_rebuild_duration_seconds",
		Help:    "Time spent rebuilding the obstacle grid",
		Buckets: prometheus.ExponentialBuckets(0.0001, 2, 12),
	})

	queuedRequests = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pathfinding_queued_requests_total",
		Help: "Requests handed to the path worker",
	})

	droppedResults = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pathfinding_dropped_results_total",
		Help: "Completed results evicted before being fetched",
	})
)

func observeSearch(path []Point, stats searchStats, elapsed time.Duration) {
	outcome := outcomeFound
	switch {
	case len(path) == 0:
		outcome = outcomeNoPath
	case len(path) == 1:
		outcome = outcomeTrivial
	}
	searchesTotal.WithLabelValues(outcome).Inc()
	searchDuration.Observe(elapsed.Seconds())
	searchIterations.Observe(float64(stats.iterations))
}
