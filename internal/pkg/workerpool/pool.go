package workerpool

import (
	"context"
	"sync"
	"time"
)

type Task struct {
	Name string
	Fn   func(ctx context.Context) error
}

type Result struct {
	Name string
	Err  error
}

// Pool runs tasks on a fixed number of workers, optionally capped to a
// number of task starts per second shared by all workers.
type Pool struct {
	workers  int
	interval time.Duration
}

func New(workers, rps int) *Pool {
	if workers <= 0 {
		workers = 1
	}
	p := &Pool{workers: workers}
	if rps > 0 {
		p.interval = time.Second / time.Duration(rps)
	}
	return p
}

// Run executes every task and returns one Result per task in input order.
// Tasks not started before ctx is done report ctx.Err().
func (p *Pool) Run(ctx context.Context, tasks []Task) []Result {
	results := make([]Result, len(tasks))
	for i, t := range tasks {
		results[i].Name = t.Name
	}
	if len(tasks) == 0 {
		return results
	}
	started := make([]bool, len(tasks))

	var rate <-chan time.Time
	if p.interval > 0 {
		ticker := time.NewTicker(p.interval)
		defer ticker.Stop()
		rate = ticker.C
	}

	idx := make(chan int)
	var wg sync.WaitGroup
	workers := p.workers
	if workers > len(tasks) {
		workers = len(tasks)
	}
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := range idx {
				if rate != nil {
					select {
					case <-ctx.Done():
						continue
					case <-rate:
					}
				}
				if ctx.Err() != nil {
					continue
				}
				started[i] = true
				if fn := tasks[i].Fn; fn != nil {
					results[i].Err = fn(ctx)
				}
			}
		}()
	}

feed:
	for i := range tasks {
		select {
		case <-ctx.Done():
			break feed
		case idx <- i:
		}
	}
	close(idx)
	wg.Wait()

	for i := range results {
		if !started[i] {
			results[i].Err = ctx.Err()
		}
	}
	return results
}
