package worker

import (
	"context"
	"sync/atomic"
	"testing"
)

type countJob struct {
	counter *int32
}

type countResult struct{}

func (r *countResult) GetError() error { return nil }

func (j *countJob) Execute(ctx context.Context) Result {
	atomic.AddInt32(j.counter, 1)
	return &countResult{}
}

func TestPool_RunsAllJobs(t *testing.T) {
	var counter int32
	jobs := make([]Job, 20)
	for i := range jobs {
		jobs[i] = &countJob{counter: &counter}
	}

	pool := NewPool(4)
	results := pool.Run(context.Background(), jobs)

	if len(results) != len(jobs) {
		t.Errorf("Expected %d results, got %d", len(jobs), len(results))
	}
	if n := atomic.LoadInt32(&counter); n != int32(len(jobs)) {
		t.Errorf("Expected %d executions, got %d", len(jobs), n)
	}
}

func TestPool_ZeroWorkersClamped(t *testing.T) {
	var counter int32
	pool := NewPool(0)
	results := pool.Run(context.Background(), []Job{&countJob{counter: &counter}})
	if len(results) != 1 {
		t.Errorf("Expected 1 result, got %d", len(results))
	}
}

func TestPool_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var counter int32
	jobs := make([]Job, 50)
	for i := range jobs {
		jobs[i] = &countJob{counter: &counter}
	}

	pool := NewPool(2)
	results := pool.Run(ctx, jobs)

	if len(results) == len(jobs) {
		t.Error("Expected cancellation to stop the batch early")
	}
}
