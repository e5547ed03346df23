package staged_cleanup

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
)

const runTimeout = 30 * time.Second

// Job периодически удаляет черновики заказов с истекшим сроком
type Job struct {
	repo         StagedOrderRepository
	metrics      Metrics
	timeProvider TimeProvider
	logger       Logger
	cron         *cron.Cron
}

// NewJob создает задачу очистки
func NewJob(repo StagedOrderRepository, metrics Metrics, logger Logger) *Job {
	return &Job{
		repo:         repo,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Start регистрирует задачу по расписанию cron ("@every 5m", "*/10 * * * *") и запускает планировщик
func (j *Job) Start(schedule string) error {
	c := cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)))
	if _, err := c.AddFunc(schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), runTimeout)
		defer cancel()
		_, _ = j.RunOnce(ctx)
	}); err != nil {
		return fmt.Errorf("staged cleanup: invalid schedule %q: %w", schedule, err)
	}

	j.cron = c
	c.Start()
	j.logger.Info("StagedCleanup: scheduled with %q", schedule)
	return nil
}

// Stop останавливает планировщик и ждет завершения текущего запуска
func (j *Job) Stop(ctx context.Context) {
	if j.cron == nil {
		return
	}
	select {
	case <-j.cron.Stop().Done():
	case <-ctx.Done():
		j.logger.Warn("StagedCleanup: stop timed out")
	}
}

// RunOnce удаляет истекшие черновики и возвращает их количество
func (j *Job) RunOnce(ctx context.Context) (int64, error) {
	n, err := j.repo.DeleteExpired(ctx, j.timeProvider.Now())
	if err != nil {
		j.logger.Error("StagedCleanup: failed to delete expired staged orders: %v", err)
		return 0, err
	}

	j.metrics.AddStagedOrdersExpired(n)
	if n > 0 {
		j.logger.Info("StagedCleanup: deleted %d expired staged orders", n)
	}
	return n, nil
}
