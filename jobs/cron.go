package jobs

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"

	"pacificreef/utils"
)

// AvailabilitySnapshotter refreshes the cached room availability counts.
type AvailabilitySnapshotter interface {
	RefreshAvailabilitySnapshot(ctx context.Context) error
}

var snapshotter AvailabilitySnapshotter

// SetSnapshotter installs the implementation the nightly job calls.
func SetSnapshotter(s AvailabilitySnapshotter) {
	snapshotter = s
}

// InitCronJobs registers the nightly availability snapshot and starts
// the scheduler.
func InitCronJobs(c *cron.Cron) error {
	_, err := c.AddFunc("0 0 * * *", func() {
		utils.LogInfo("running nightly availability snapshot at %v", time.Now())
		if snapshotter == nil {
			utils.LogError("availability snapshotter not configured")
			return
		}
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()
		if err := snapshotter.RefreshAvailabilitySnapshot(ctx); err != nil {
			utils.LogError("availability snapshot failed: %v", err)
		}
	})
	if err != nil {
		return err
	}

	c.Start()
	utils.LogInfo("cron jobs initialized")
	return nil
}
