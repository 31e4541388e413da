package cron

import (
	"log"
	"os"

	"github.com/robfig/cron/v3"
)

// Job is a named scheduled task.
type Job struct {
	Schedule string
	Run      func(...string)
}

// Jobs returns the job table. Schedules can be overridden per job via the
// environment.
func Jobs() map[string]Job {
	return map[string]Job{
		"stockreport": {Schedule: scheduleEnv("CRON_STOCK_REPORT", "@hourly"), Run: StockReportJob},
		// Add more jobs here
	}
}

func scheduleEnv(key, fallback string) string {
	if s := os.Getenv(key); s != "" {
		return s
	}
	return fallback
}

func StartCron() *cron.Cron {
	c := cron.New()
	for name, j := range Jobs() {
		run := j.Run
		_, err := c.AddFunc(j.Schedule, func() { run() })
		if err != nil {
			log.Fatalf("Failed to register job %s: %v", name, err)
		}
	}
	c.Start()
	return c
}
