// Package jobs provides scheduled background tasks for the order service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. PendingOrderExpiryJob - Cancels orders that stayed Pending for longer than
// the configured TTL. Cancellation goes through the order state context, so
// each expired order gets the usual refund note and an "order was not
// confirmed in time" reason.
//
// # Usage
//
//	jobManager := jobs.NewJobManager(expireHandler, 48*time.Hour, "0 * * * * *", logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Scheduling
//
// Schedules are cron expressions with a leading seconds field. The default
// "0 * * * * *" runs once a minute.
//
// # Error Handling
//
// - Orders changed concurrently while being expired are skipped silently
// - Any other failure is logged; the next run retries the remaining orders
// - An invalid TTL or schedule makes StartAll fail
package jobs
