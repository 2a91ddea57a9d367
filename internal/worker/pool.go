// Package worker runs independent game scripts on a pool of goroutines.
// Each job owns its game, so workers share nothing but the channels.
package worker

import (
	"sort"
	"sync"
	"sync/atomic"
)

// Job names one script to play.
type Job struct {
	Index int    // Position in the submitted batch
	Name  string // Script file name
}

// Result is what playing a script produced.
type Result struct {
	Index    int
	Name     string
	Output   []byte // Boards and move lists written by the script
	Log      []byte // Log lines written while playing
	Commands int
	Failures int
	Ply      int
	Err      error
}

// ProcessFunc plays one job.
type ProcessFunc func(job Job) Result

// Pool feeds jobs to a fixed number of workers.
type Pool struct {
	numWorkers  int
	bufferSize  int
	jobs        chan Job
	results     chan Result
	processFunc ProcessFunc
	wg          sync.WaitGroup
	stopFlag    int32
}

// PoolOption configures a Pool.
type PoolOption func(*Pool)

// WithWorkers sets the number of worker goroutines.
func WithWorkers(n int) PoolOption {
	return func(p *Pool) {
		if n >= 1 {
			p.numWorkers = n
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

// NewPool creates a pool. Defaults: 1 worker, buffer size of 10.
func NewPool(processFunc ProcessFunc, opts ...PoolOption) *Pool {
	p := &Pool{
		numWorkers:  1,
		bufferSize:  10,
		processFunc: processFunc,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.jobs = make(chan Job, p.bufferSize)
	p.results = make(chan Result, p.bufferSize)
	return p
}

// Start starts the worker goroutines.
func (p *Pool) Start() {
	for i := 0; i < p.numWorkers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

func (p *Pool) worker() {
	defer p.wg.Done()

	for job := range p.jobs {
		if p.IsStopped() {
			continue // drain without playing
		}
		p.results <- p.processFunc(job)
	}
}

// Submit queues a job. It blocks while the buffer is full.
func (p *Pool) Submit(job Job) {
	p.jobs <- job
}

// Stop makes workers skip the jobs still queued.
func (p *Pool) Stop() {
	atomic.StoreInt32(&p.stopFlag, 1)
}

// IsStopped reports whether Stop was called.
func (p *Pool) IsStopped() bool {
	return atomic.LoadInt32(&p.stopFlag) != 0
}

// Close stops accepting jobs, waits for the workers and closes Results.
func (p *Pool) Close() {
	close(p.jobs)
	p.wg.Wait()
	close(p.results)
}

// Results returns the result channel. Results arrive in completion order.
func (p *Pool) Results() <-chan Result {
	return p.results
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// RunAll plays every named script and returns the results in name order.
// With stopOnError the first failed script stops jobs not yet started.
func RunAll(names []string, stopOnError bool, processFunc ProcessFunc, opts ...PoolOption) []Result {
	p := NewPool(processFunc, opts...)
	p.Start()

	go func() {
		for i, name := range names {
			p.Submit(Job{Index: i, Name: name})
		}
		p.Close()
	}()

	results := make([]Result, 0, len(names))
	for r := range p.Results() {
		if stopOnError && (r.Err != nil || r.Failures > 0) {
			p.Stop()
		}
		results = append(results, r)
	}

	sort.Slice(results, func(i, j int) bool { return results[i].Index < results[j].Index })
	return results
}
