package config

// CronJob maps a schedule to a job function.
type CronJob struct {
	Schedule string
	Job      func(...string)
}

// CronJobs is the static job table. Jobs that depend on other packages
// register themselves via cron.Register from init() instead (see cron/jobs).
var CronJobs = map[string]CronJob{
	// Add more jobs here
}
