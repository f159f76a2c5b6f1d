package pathfinding

import (
	"context"
)

// Future is the pending result of FindPathAsync.
type Future struct {
	done chan struct{}
	path []Point
}

func newFuture() *Future {
	return &Future{done: make(chan struct{})}
}

func (f *Future) resolve(path []Point) {
	f.path = path
	close(f.done)
}

// Done is closed once the path is available.
func (f *Future) Done() <-chan struct{} {
	return f.done
}

// Wait blocks until the path is available or ctx ends. Abandoning the wait
// does not cancel the search.
func (f *Future) Wait(ctx context.Context) ([]Point, error) {
	select {
	case <-f.done:
		return f.path, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}
