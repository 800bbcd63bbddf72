// Package worker runs independent chess computations on a pool of
// goroutines. Every work item carries its own board; boards are never
// shared between workers.
package worker

import (
	"fmt"
	"runtime"
	"sort"
	"sync"
	"sync/atomic"

	"github.com/lgbarn/cpuchess-go/internal/chess"
	"github.com/lgbarn/cpuchess-go/internal/errors"
)

// WorkItem is one unit of work: a private board and what to compute on it.
type WorkItem struct {
	Board *chess.Board // Owned by the worker that receives the item
	Color chess.Color  // Side the computation is for
	Depth int          // Search, perft or mate depth
	Index int          // Original index for ordering results
	Label string       // Caller's name for the item, e.g. a root move
}

// ProcessResult is the outcome of one work item.
type ProcessResult struct {
	Index int
	Label string
	Nodes uint64        // Leaf or node count, when the work counts
	Line  []*chess.Move // Moves found, bound to the item's board
	Score int
	Error error
}

// ProcessFunc is the function signature for processing a work item.
type ProcessFunc func(item WorkItem) ProcessResult

// Pool manages a pool of workers.
type Pool struct {
	numWorkers  int
	bufferSize  int
	workChan    chan WorkItem
	resultChan  chan ProcessResult
	processFunc ProcessFunc
	wg          sync.WaitGroup
	stopFlag    int32 // Atomic flag for early termination
}

// PoolOption configures a Pool.
type PoolOption func(*Pool)

// WithWorkers sets the number of worker goroutines. Zero selects one per CPU.
func WithWorkers(n int) PoolOption {
	return func(p *Pool) {
		switch {
		case n >= 1:
			p.numWorkers = n
		case n == 0:
			p.numWorkers = runtime.NumCPU()
		}
	}
}

// WithBufferSize sets the channel buffer size.
func WithBufferSize(size int) PoolOption {
	return func(p *Pool) {
		if size >= 1 {
			p.bufferSize = size
		}
	}
}

// NewPool creates a worker pool. Default: 1 worker, buffer size of 10.
func NewPool(processFunc ProcessFunc, opts ...PoolOption) *Pool {
	p := &Pool{
		numWorkers:  1,
		bufferSize:  10,
		processFunc: processFunc,
	}
	for _, opt := range opts {
		opt(p)
	}
	// Create channels after options are applied
	p.workChan = make(chan WorkItem, p.bufferSize)
	p.resultChan = make(chan ProcessResult, p.bufferSize)
	return p
}

// Start starts the worker goroutines.
func (p *Pool) Start() {
	for i := 0; i < p.numWorkers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

// worker processes items from the work channel until it is closed.
func (p *Pool) worker() {
	defer p.wg.Done()

	for item := range p.workChan {
		if p.IsStopped() {
			continue // Drain channel without processing
		}
		p.resultChan <- p.process(item)
	}
}

// process runs processFunc and turns a panic into an error result, so one
// broken board cannot take the other workers down.
func (p *Pool) process(item WorkItem) (result ProcessResult) {
	defer func() {
		if r := recover(); r != nil {
			err, ok := r.(error)
			if !ok {
				err = fmt.Errorf("%w: %v", errors.ErrIllegalState, r)
			}
			result = ProcessResult{Index: item.Index, Label: item.Label, Error: err}
		}
	}()
	return p.processFunc(item)
}

// Submit submits a work item for processing.
// This may block if the work channel buffer is full.
func (p *Pool) Submit(item WorkItem) {
	p.workChan <- item
}

// Stop signals workers to stop processing new items.
// Items already in the channel will be drained but not processed.
func (p *Pool) Stop() {
	atomic.StoreInt32(&p.stopFlag, 1)
}

// IsStopped returns true if the pool has been stopped.
func (p *Pool) IsStopped() bool {
	return atomic.LoadInt32(&p.stopFlag) != 0
}

// Close closes the work channel and waits for all workers to finish.
// After calling Close, the result channel will be closed when all workers are done.
func (p *Pool) Close() {
	close(p.workChan)
	p.wg.Wait()
	close(p.resultChan)
}

// Results returns the result channel for reading processed results.
func (p *Pool) Results() <-chan ProcessResult {
	return p.resultChan
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Run processes items on a new pool and returns the results ordered by
// Index. The first failing item stops the pool and its error is returned
// along with whatever results completed.
func Run(items []WorkItem, processFunc ProcessFunc, opts ...PoolOption) ([]ProcessResult, error) {
	pool := NewPool(processFunc, opts...)
	pool.Start()

	go func() {
		for _, item := range items {
			pool.Submit(item)
		}
		pool.Close()
	}()

	var firstErr error
	results := make([]ProcessResult, 0, len(items))
	for result := range pool.Results() {
		if result.Error != nil {
			if firstErr == nil {
				firstErr = errors.Wrapf(result.Error, "item %d (%s)", result.Index, result.Label)
			}
			pool.Stop()
			continue
		}
		results = append(results, result)
	}

	sort.Slice(results, func(i, j int) bool { return results[i].Index < results[j].Index })
	return results, firstErr
}
