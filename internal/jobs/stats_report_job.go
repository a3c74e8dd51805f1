package jobs

import (
	"context"
	"log/slog"

	"github.com/robfig/cron/v3"
)

// StatsSource exposes the running creation counters the report is built from.
type StatsSource interface {
	Snapshot() (ordersCreated int64, ordersValue float64)
}

// StatsReportJob periodically logs how many orders were created since the
// process started, together with their accumulated value.
type StatsReportJob struct {
	source StatsSource
	cron   *cron.Cron
	logger *slog.Logger
}

// NewStatsReportJob creates a new stats report job reading from source.
func NewStatsReportJob(source StatsSource, logger *slog.Logger) *StatsReportJob {
	return &StatsReportJob{
		source: source,
		cron:   cron.New(),
		logger: logger.With("component", "stats_report_job"),
	}
}

// Start begins the stats report job to run every minute.
func (j *StatsReportJob) Start() error {
	_, err := j.cron.AddFunc("@every 1m", func() {
		ctx := context.Background()
		created, value := j.source.Snapshot()

		j.logger.InfoContext(ctx, "Order creation stats",
			"ordersCreated", created,
			"ordersValue", value)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Stats report job started (running every minute)")
	return nil
}

// Stop stops the stats report job.
func (j *StatsReportJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Stats report job stopped")
}
