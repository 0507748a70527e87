// Package jobs provides scheduled background tasks for the store.
//
// Jobs are cron-based, built on github.com/robfig/cron/v3 with a seconds
// field enabled.
//
// # Available Jobs
//
// 1. DiscountPurgeJob - deletes promo codes whose expiry has passed
//
// # Usage
//
//	jobManager := jobs.NewJobManager(purgeHandler, cfg.Jobs.DiscountPurgeSchedule, logger)
//	if err := jobManager.StartAll(); err != nil {
//		return err
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failed run is logged and retried on the next tick. A schedule that
// cannot be parsed fails StartAll.
package jobs
