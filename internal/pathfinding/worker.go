package pathfinding

import (
	"github.com/Esderin/Standard-of-Iron/internal/errors"
)

// job is one queued query. Exactly one of future and tagged is meaningful:
// tagged jobs report through the result queue, the rest resolve their future.
type job struct {
	requestID uint64
	tagged    bool
	start     Point
	end       Point
	future    *Future
}

// SubmitPathRequest queues a query tagged with a caller-chosen id. The result
// becomes available from FetchCompletedPaths once the worker reaches it.
// Ids are not deduplicated.
func (p *Pathfinder) SubmitPathRequest(requestID uint64, start, end Point) error {
	return p.enqueue(job{requestID: requestID, tagged: true, start: start, end: end})
}

// FindPathAsync queues a query on the worker and returns a Future for its
// path.
func (p *Pathfinder) FindPathAsync(start, end Point) (*Future, error) {
	future := newFuture()
	if err := p.enqueue(job{start: start, end: end, future: future}); err != nil {
		return nil, err
	}
	return future, nil
}

// FetchCompletedPaths drains every completed tagged request in completion
// order. It never blocks on a search.
func (p *Pathfinder) FetchCompletedPaths() []PathResult {
	p.resultMu.Lock()
	defer p.resultMu.Unlock()

	results := p.results
	p.results = nil
	return results
}

// Close stops the worker after it drains the queued requests. Further
// submissions fail with Unavailable. Safe to call more than once.
func (p *Pathfinder) Close() {
	p.queueMu.Lock()
	if p.closed {
		p.queueMu.Unlock()
		<-p.done
		return
	}
	p.closed = true
	p.queueMu.Unlock()

	close(p.stop)
	<-p.done
}

func (p *Pathfinder) enqueue(j job) error {
	p.queueMu.Lock()
	if p.closed {
		p.queueMu.Unlock()
		return errors.Unavailable("pathfinder is closed")
	}
	p.queue = append(p.queue, j)
	p.queueMu.Unlock()

	queuedRequests.Inc()

	select {
	case p.wake <- struct{}{}:
	default:
	}
	return nil
}

func (p *Pathfinder) work() {
	defer close(p.done)

	for {
		j, ok := p.next()
		if !ok {
			p.logger.Debug("Path worker stopped")
			return
		}

		path := p.FindPath(j.start, j.end)
		if j.tagged {
			p.publish(PathResult{RequestID: j.requestID, Path: path})
		} else {
			j.future.resolve(path)
		}
	}
}

// next blocks until a job is queued or the pathfinder is stopping with an
// empty queue.
func (p *Pathfinder) next() (job, bool) {
	for {
		p.queueMu.Lock()
		if len(p.queue) > 0 {
			j := p.queue[0]
			p.queue[0] = job{}
			p.queue = p.queue[1:]
			p.queueMu.Unlock()
			return j, true
		}
		p.queueMu.Unlock()

		select {
		case <-p.wake:
		case <-p.stop:
			p.queueMu.Lock()
			empty := len(p.queue) == 0
			p.queueMu.Unlock()
			if empty {
				return job{}, false
			}
		}
	}
}

func (p *Pathfinder) publish(result PathResult) {
	p.resultMu.Lock()
	defer p.resultMu.Unlock()

	if p.maxPendingResults > 0 && len(p.results) >= p.maxPendingResults {
		dropped := p.results[0]
		p.results[0] = PathResult{}
		p.results = p.results[1:]
		droppedResults.Inc()
		p.logger.Warn("Dropping unfetched path result",
			"request_id", dropped.RequestID,
			"max_pending_results", p.maxPendingResults,
		)
	}
	p.results = append(p.results, result)
}
