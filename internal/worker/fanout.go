// Package worker provides the concurrency primitive used to run
// independent generation tasks in parallel.
package worker

import (
	"context"
	"sync"
)

// Task produces one value. Tasks passed to JoinAll must be safe to run
// concurrently with each other.
type Task[T any] func(ctx context.Context) (T, error)

// Outcome holds the result of one task. Exactly one of Value and Err is
// meaningful.
type Outcome[T any] struct {
	Value T
	Err   error
}

// JoinAll runs every task in its own goroutine and waits for all of them.
// Outcomes are returned in task order regardless of completion order, and
// one failing task never disturbs the others.
func JoinAll[T any](ctx context.Context, tasks []Task[T]) []Outcome[T] {
	outcomes := make([]Outcome[T], len(tasks))

	var wg sync.WaitGroup
	for i, task := range tasks {
		wg.Add(1)
		go func(i int, task Task[T]) {
			defer wg.Done()
			value, err := task(ctx)
			outcomes[i] = Outcome[T]{Value: value, Err: err}
		}(i, task)
	}
	wg.Wait()

	return outcomes
}
