package jobs

import (
	"context"
	"log/slog"

	"bakery/internal/core/application/usecases/commands"
	"bakery/internal/core/domain/model/user"

	"github.com/robfig/cron/v3"
)

// DefaultPurgeSchedule runs the purge every night at 03:00, seconds field first.
const DefaultPurgeSchedule = "0 0 3 * * *"

// PurgeHandler is the use case run by ClosingPeriodPurgeJob.
type PurgeHandler interface {
	Handle(ctx context.Context, caller *user.User, cmd commands.PurgeExpiredClosingPeriodsCommand) (int, error)
}

// ClosingPeriodPurgeJob deletes closing periods that ended before today.
// It acts as the system admin account so that the use case authorization applies unchanged.
type ClosingPeriodPurgeJob struct {
	handler  PurgeHandler
	caller   *user.User
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewClosingPeriodPurgeJob creates the job. An empty schedule selects DefaultPurgeSchedule.
func NewClosingPeriodPurgeJob(
	handler PurgeHandler,
	adminUsername string,
	schedule string,
	options []cron.Option,
	logger *slog.Logger,
) *ClosingPeriodPurgeJob {
	if schedule == "" {
		schedule = DefaultPurgeSchedule
	}

	return &ClosingPeriodPurgeJob{
		handler:  handler,
		caller:   user.NewAdmin(adminUsername),
		schedule: schedule,
		cron:     cron.New(append([]cron.Option{cron.WithSeconds()}, options...)...),
		logger:   logger.With("component", "closing_period_purge_job"),
	}
}

// Start registers the purge on its schedule and starts the scheduler.
func (j *ClosingPeriodPurgeJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, j.Run); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Closing period purge job started", "schedule", j.schedule)
	return nil
}

// Run purges once.
func (j *ClosingPeriodPurgeJob) Run() {
	ctx := context.Background()

	purged, err := j.handler.Handle(ctx, j.caller, commands.NewPurgeExpiredClosingPeriodsCommand())
	if err != nil {
		j.logger.ErrorContext(ctx, "Closing period purge job failed", "error", err)
		return
	}

	if purged > 0 {
		j.logger.InfoContext(ctx, "Expired closing periods purged", "count", purged)
	}
}

// Stop stops the scheduler and waits for a running purge to finish.
func (j *ClosingPeriodPurgeJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Closing period purge job stopped")
}
