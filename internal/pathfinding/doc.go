// Package pathfinding provides the grid pathfinding engine shared by every
// mobile unit of a level.
//
// A Pathfinder owns a fixed-size walkability grid built from two injected
// sources: a TerrainSource describing static walkability and a
// BuildingRegistry describing building footprints. Queries run A* over the
// grid and return raw cell sequences:
//
//   - FindPath blocks the caller for the duration of the search.
//   - FindPathAsync queues the query and returns a Future.
//   - SubmitPathRequest queues an id-tagged query whose result is later
//     drained with FetchCompletedPaths.
//
// Queued work is served in FIFO order by a single worker goroutine. Every
// search, queued or not, runs under one mutex, so at most one search executes
// at a time per Pathfinder.
package pathfinding
