package jobs

import (
	"fmt"
	"log/slog"
)

// Job is a scheduled background task.
type Job interface {
	Start() error
	Stop()
}

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	jobs   []Job
	logger *slog.Logger
}

// NewJobManager creates a job manager for the given jobs. They start in order and stop in reverse.
func NewJobManager(logger *slog.Logger, jobs ...Job) *JobManager {
	return &JobManager{
		jobs:   jobs,
		logger: logger.With("component", "job_manager"),
	}
}

// StartAll starts all scheduled jobs.
// If one fails, the jobs already started are stopped again.
func (jm *JobManager) StartAll() error {
	for i, job := range jm.jobs {
		if err := job.Start(); err != nil {
			for k := i - 1; k >= 0; k-- {
				jm.jobs[k].Stop()
			}
			return fmt.Errorf("failed to start job %d: %w", i, err)
		}
	}

	jm.logger.Info("Jobs started", "count", len(jm.jobs))
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	for i := len(jm.jobs) - 1; i >= 0; i-- {
		jm.jobs[i].Stop()
	}
}
