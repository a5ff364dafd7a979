package discord

import (
	"context"
	"log"
	"time"

	"github.com/go-co-op/gocron/v2"

	"contestbot/internal/application"
)

// StartScheduler runs the contest lifecycle reconciliation on a fixed
// interval. The returned scheduler is shut down by the caller to stop the
// pass cleanly; a pass never outlives its interval.
func StartScheduler(svc *application.SchedulerService, interval time.Duration) (gocron.Scheduler, error) {
	sched, err := gocron.NewScheduler()
	if err != nil {
		return nil, err
	}
	_, err = sched.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(func() {
			ctx, cancel := context.WithTimeout(context.Background(), interval)
			defer cancel()
			if err := svc.Reconcile(ctx, time.Now()); err != nil {
				log.Printf("⚠️ Contest reconciliation pass failed: %v", err)
			}
		}),
	)
	if err != nil {
		_ = sched.Shutdown()
		return nil, err
	}
	sched.Start()
	return sched, nil
}
