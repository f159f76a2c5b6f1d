package navigation

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	loadedLevels = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "navigation_levels_loaded",
		Help: "Levels with a live pathfinder.",
	})

	unitMoves = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "navigation_unit_moves_total",
		Help: "Unit move requests by how they were served.",
	}, []string{"mode"})

	unitRoutes = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "navigation_unit_routes_total",
		Help: "Completed unit routes by outcome.",
	}, []string{"outcome"})
)

const (
	moveDirect = "direct"
	moveSearch = "search"

	routeWaypoints = "waypoints"
	routeFallback  = "fallback"
	routeStop      = "stop"
)
