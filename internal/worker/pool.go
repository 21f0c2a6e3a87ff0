// Package worker runs multiple reputation checks concurrently with a
// bounded worker pool.
package worker

import (
	"context"
	"sync"
)

// Job represents a unit of work to be executed
type Job interface {
	Execute(ctx context.Context) Result
}

// Result represents the result of a job execution
type Result interface {
	GetError() error
}

// Pool executes jobs across a fixed number of workers
type Pool struct {
	workers  int
	jobQueue chan Job
	results  chan Result
	wg       sync.WaitGroup
}

// NewPool creates a worker pool
func NewPool(workers int) *Pool {
	if workers <= 0 {
		workers = 1
	}
	return &Pool{
		workers:  workers,
		jobQueue: make(chan Job, workers*2),
		results:  make(chan Result, workers*2),
	}
}

// Run starts the workers, feeds them the given jobs and returns all results
// once every job has finished or the context is cancelled
func (p *Pool) Run(ctx context.Context, jobs []Job) []Result {
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.worker(ctx)
	}

	go func() {
		defer close(p.jobQueue)
		for _, job := range jobs {
			select {
			case <-ctx.Done():
				return
			case p.jobQueue <- job:
			}
		}
	}()

	go func() {
		p.wg.Wait()
		close(p.results)
	}()

	var results []Result
	for result := range p.results {
		results = append(results, result)
	}
	return results
}

func (p *Pool) worker(ctx context.Context) {
	defer p.wg.Done()
	for job := range p.jobQueue {
		select {
		case <-ctx.Done():
			return
		default:
		}
		result := job.Execute(ctx)
		select {
		case p.results <- result:
		case <-ctx.Done():
			return
		}
	}
}
