// Package job runs the backend's periodic background work: the rate-limit
// window reset and the capabilities cache warmer.
package job

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Job is one periodic background task.
type Job struct {
	Name     string
	Interval time.Duration
	Timeout  time.Duration
	Fn       func(ctx context.Context) error
}

// Scheduler runs registered jobs on fixed cadences until its context is
// cancelled, then Shutdown waits for in-flight runs to finish.
type Scheduler struct {
	jobs []Job
	wg   sync.WaitGroup
}

func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Add registers a job to be run when Start is called.
func (s *Scheduler) Add(j Job) {
	s.jobs = append(s.jobs, j)
}

// Start launches every registered job in its own goroutine. Each job runs
// once immediately, then on every interval tick, until ctx is cancelled.
func (s *Scheduler) Start(ctx context.Context) {
	for _, j := range s.jobs {
		s.wg.Add(1)
		go s.run(ctx, j)
	}
}

func (s *Scheduler) run(ctx context.Context, j Job) {
	defer s.wg.Done()

	s.execute(ctx, j)

	ticker := time.NewTicker(j.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			slog.InfoContext(ctx, "job stopping", "job", j.Name)
			return
		case <-ticker.C:
			s.execute(ctx, j)
		}
	}
}

func (s *Scheduler) execute(ctx context.Context, j Job) {
	if ctx.Err() != nil {
		return
	}

	jobCtx, cancel := context.WithTimeout(ctx, j.Timeout)
	defer cancel()

	if err := j.Fn(jobCtx); err != nil {
		slog.ErrorContext(ctx, "job failed", "job", j.Name, "error", err)
	}
}

// Shutdown blocks until all running jobs complete.
func (s *Scheduler) Shutdown() {
	s.wg.Wait()
}
