// Package jobs contains the scheduled background work of the marketplace.
// Jobs run on cron schedules and execute command handlers, keeping the
// order pool healthy without operator involvement.
package jobs
