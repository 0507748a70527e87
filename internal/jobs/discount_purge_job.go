package jobs

import (
	"context"
	"log/slog"

	"store/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DefaultDiscountPurgeSchedule runs the purge at the top of every hour.
const DefaultDiscountPurgeSchedule = "0 0 * * * *"

// DiscountPurger deletes expired discounts and reports how many were removed.
type DiscountPurger interface {
	Handle(ctx context.Context, cmd commands.PurgeExpiredDiscountsCommand) (int64, error)
}

// DiscountPurgeJob removes expired promo codes on a cron schedule.
type DiscountPurgeJob struct {
	handler  DiscountPurger
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewDiscountPurgeJob creates a job for purging expired discounts.
// schedule is a six-field cron expression (seconds first); an empty
// schedule falls back to DefaultDiscountPurgeSchedule.
func NewDiscountPurgeJob(handler DiscountPurger, schedule string, logger *slog.Logger) *DiscountPurgeJob {
	if schedule == "" {
		schedule = DefaultDiscountPurgeSchedule
	}
	return &DiscountPurgeJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "discount_purge_job"),
	}
}

// Start registers the purge on the schedule and starts the scheduler.
func (j *DiscountPurgeJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, j.Run); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Discount purge job started", "schedule", j.schedule)
	return nil
}

// Run performs a single purge.
func (j *DiscountPurgeJob) Run() {
	ctx := context.Background()

	deleted, err := j.handler.Handle(ctx, commands.NewPurgeExpiredDiscountsCommand())
	if err != nil {
		j.logger.ErrorContext(ctx, "Discount purge job failed", "error", err)
		return
	}
	if deleted > 0 {
		j.logger.InfoContext(ctx, "Expired discounts purged", "deleted", deleted)
	}
}

// Stop stops the scheduler and waits for a running purge to finish.
func (j *DiscountPurgeJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Discount purge job stopped")
}
