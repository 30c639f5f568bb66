package alerts

import (
	"context"

	"go.uber.org/zap"
)

// WorkerPoolI bounds concurrent alert deliveries so a burst of crossed
// thresholds cannot flood the notification service.
type WorkerPoolI interface {
	AddTask(ctx context.Context, task Task) error
	Close()
}

// Task is one alert delivery: the triggered setting plus the work that
// records and announces it.
type Task struct {
	SettingID int
	Run       func() error
}

type WorkerPool struct {
	tasks chan Task
}

func NewWorkerPool(size int) *WorkerPool {
	wp := &WorkerPool{tasks: make(chan Task, size)}

	for i := 0; i < size; i++ {
		go wp.worker()
	}
	return wp
}

func (wp *WorkerPool) worker() {
	for task := range wp.tasks {
		if err := task.Run(); err != nil {
			zap.L().Error("Alert delivery failed",
				zap.Int("settingID", task.SettingID),
				zap.Error(err),
			)
		}
	}
}

func (wp *WorkerPool) AddTask(ctx context.Context, task Task) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case wp.tasks <- task:
		return nil
	}
}

func (wp *WorkerPool) Close() {
	select {
	case <-wp.tasks:
	default:
		close(wp.tasks)
	}
}
