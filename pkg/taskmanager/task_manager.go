package taskmanager

import (
	"context"
	"sync"

	"github.com/ibn-network/ccm-backend/internal/logger"
	"github.com/ibn-network/ccm-backend/pkg/domain/entities"

	"go.uber.org/zap"
)

// TaskManager runs background work, one goroutine per worker. Deployment
// executions go through here so HTTP handlers return immediately.
type TaskManager struct {
	tasks      chan entities.Task
	numWorkers int
	ctx        context.Context
	cancel     context.CancelFunc
	wg         sync.WaitGroup
}

func NewTaskManager(numWorkers int, bufferSize int) *TaskManager {
	ctx, cancel := context.WithCancel(context.Background())
	return &TaskManager{
		tasks:      make(chan entities.Task, bufferSize),
		numWorkers: numWorkers,
		ctx:        ctx,
		cancel:     cancel,
	}
}

func (tm *TaskManager) Start() {
	for i := 0; i < tm.numWorkers; i++ {
		tm.wg.Add(1)
		go func(workerID int) {
			defer tm.wg.Done()
			for {
				select {
				case <-tm.ctx.Done():
					logger.Debug("worker exiting", zap.Int("worker", workerID))
					return
				case task, ok := <-tm.tasks:
					if !ok {
						return
					}
					run(workerID, task)
				}
			}
		}(i)
	}
}

func (tm *TaskManager) AddTask(task entities.Task) {
	tm.tasks <- task
}

func (tm *TaskManager) Stop() {
	tm.cancel()
	close(tm.tasks)
	tm.wg.Wait()
	logger.Info("all workers stopped")
}

// run isolates a task so a panic kills neither the worker nor its siblings.
func run(workerID int, task entities.Task) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("task panicked",
				zap.Int("worker", workerID),
				zap.Any("panic", r))
		}
	}()
	task()
}
