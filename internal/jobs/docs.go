// Package jobs provides scheduled background tasks for the group ordering
// service, implemented with github.com/robfig/cron/v3.
//
// # Available Jobs
//
// FulfillmentRetryJob resubmits locked group orders whose storefront
// confirmation is still pending, on a configurable cron schedule (every
// thirty seconds by default). Each retry reuses the snapshot frozen at lock
// time, so the storefront always receives the payload of the original
// attempt.
//
// # Usage
//
// Jobs are managed through JobManager:
//
//	jobManager := jobs.NewJobManager(deliverPendingHandler, "*/30 * * * * *", logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failing retry pass is logged and retried on the next tick; individual
// orders that still cannot be confirmed simply stay pending.
package jobs
