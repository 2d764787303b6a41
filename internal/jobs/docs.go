// Package jobs provides scheduled background tasks for the order-taking service.
//
// Jobs use github.com/robfig/cron/v3 with a leading seconds field.
//
// # Available Jobs
//
// 1. CatalogRefreshJob - reloads the cached product catalog, every five minutes by default
//
// # Usage
//
//	jobManager := jobs.NewJobManager(productCatalog, config.CatalogRefreshSchedule, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failed refresh is logged and the previous catalog stays in use until the next run.
package jobs
