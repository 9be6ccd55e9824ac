// Package jobs provides scheduled background tasks for the laundry service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required by the order workflow.
//
// # Available Jobs
//
// 1. OverdueOrdersJob - Runs every minute and warns about orders past their
// expected delivery date that have not been delivered or cancelled.
//
// All jobs are coordinated by the JobManager, which the composition root
// starts at application boot and stops on shutdown.
package jobs
