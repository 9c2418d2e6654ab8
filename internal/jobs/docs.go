// Package jobs provides scheduled background tasks for the coffee shop.
//
// Jobs are built on github.com/robfig/cron/v3 with a seconds field in the
// schedule.
//
// # Available Jobs
//
// ActiveOrdersReportJob logs how many orders are still open and their ids.
// The default schedule "*/30 * * * * *" runs it every thirty seconds.
//
// # Usage
//
//	jobManager, err := jobs.NewJobManager(getActiveOrdersHandler, schedule, logger)
//	if err != nil {
//		return err
//	}
//	if err := jobManager.StartAll(); err != nil {
//		return err
//	}
//	defer jobManager.StopAll()
//
// A failed report is logged and retried on the next tick.
package jobs
