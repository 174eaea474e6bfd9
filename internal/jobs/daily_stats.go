package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/Leganyst/barber-booking/internal/booking"
	"github.com/Leganyst/barber-booking/internal/utils"
)

// StatsSource — откуда брать дневную статистику.
type StatsSource interface {
	Stats(ctx context.Context, date string) (booking.Stats, error)
}

// DailyStats пишет в лог сводку броней за день.
type DailyStats struct {
	stats   StatsSource
	log     *zap.Logger
	timeout time.Duration
}

func NewDailyStats(stats StatsSource, log *zap.Logger) *DailyStats {
	return &DailyStats{stats: stats, log: log.Named("jobs.daily_stats"), timeout: 30 * time.Second}
}

// Run считает сводку на сегодня.
func (j *DailyStats) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), j.timeout)
	defer cancel()

	st, err := j.stats.Stats(ctx, "")
	if err != nil {
		j.log.Error("daily stats failed", zap.Error(err))
		return
	}
	j.log.Info("daily stats",
		zap.String("date", utils.FormatDate(st.Date)),
		zap.Int64("total", st.Total),
		zap.Int64("pending", st.Pending),
		zap.Int64("confirmed", st.Confirmed),
		zap.Int64("completed", st.Completed),
		zap.Int64("cancelled", st.Cancelled),
	)
}

// Schedule регистрирует задачу в cron. Пустое выражение — задача выключена.
func Schedule(c *cron.Cron, spec string, job cron.Job) (cron.EntryID, error) {
	if spec == "" {
		return 0, nil
	}
	id, err := c.AddJob(spec, job)
	if err != nil {
		return 0, fmt.Errorf("schedule %q: %w", spec, err)
	}
	return id, nil
}

// NewCron — планировщик в UTC, паники задач не роняют процесс.
func NewCron() *cron.Cron {
	return cron.New(
		cron.WithLocation(time.UTC),
		cron.WithChain(cron.Recover(cron.DefaultLogger)),
	)
}
