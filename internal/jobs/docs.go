// Package jobs provides scheduled background tasks for the bakery.
//
// Jobs are cron based, built on github.com/robfig/cron/v3 with a seconds field.
//
// # Available Jobs
//
// ClosingPeriodPurgeJob deletes closing periods whose end date is before today. It runs
// nightly by default (DefaultPurgeSchedule) in the business time zone and calls the purge
// use case as the configured admin account.
//
// # Usage
//
//	purge := jobs.NewClosingPeriodPurgeJob(handler, cfg.AdminUsername, cfg.PurgeSchedule,
//		[]cron.Option{cron.WithLocation(clock.Location())}, logger)
//	jobManager := jobs.NewJobManager(logger, purge)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failed purge is logged and retried at the next tick. Failed job starts stop any
// already running jobs.
package jobs
