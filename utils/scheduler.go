package utils

import (
	"github.com/robfig/cron/v3"
)

// InitializeSweepScheduler starts the periodic expiry sweep on the
// given cron schedule and returns the running scheduler.
func InitializeSweepScheduler(schedule string) (*cron.Cron, error) {
	LogInfo("Starting expiry sweep scheduler (%s)", schedule)

	c := cron.New()
	_, err := c.AddFunc(schedule, func() {
		deleted, err := SweepExpiredOffers()
		if err != nil {
			LogError("Scheduled sweep failed: %v", err)
			return
		}
		if deleted > 0 {
			LogInfo("Scheduled sweep removed %d expired offers", deleted)
		}
	})
	if err != nil {
		return nil, err
	}

	c.Start()
	return c, nil
}
