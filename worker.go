package shop

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/cherryprincess/shopping-cart-APP/models"
)

const defaultQueueSize = 1000

type CommandProcessor interface {
	ProcessCommand(ctx context.Context, cmd *models.Command) error
}

// WorkerPool runs submitted commands on a fixed number of goroutines. With
// a single worker, commands are applied in the order they were submitted.
type WorkerPool struct {
	tasks     chan func()
	wg        sync.WaitGroup
	mu        sync.RWMutex
	closed    bool
	logger    *zap.Logger
	processor CommandProcessor
}

func NewWorkerPool(size int, processor CommandProcessor, logger *zap.Logger) *WorkerPool {
	if size <= 0 {
		size = 1
	}

	wp := &WorkerPool{
		tasks:     make(chan func(), defaultQueueSize),
		logger:    logger,
		processor: processor,
	}

	wp.wg.Add(size)
	for i := 0; i < size; i++ {
		go wp.worker()
	}

	return wp
}

func (wp *WorkerPool) worker() {
	defer wp.wg.Done()
	for task := range wp.tasks {
		task()
	}
}

// Submit queues cmd. It returns false if the pool has been shut down.
func (wp *WorkerPool) Submit(ctx context.Context, cmd *models.Command) bool {
	wp.mu.RLock()
	defer wp.mu.RUnlock()
	if wp.closed {
		wp.logger.Warn("Worker pool closed, dropping command", zap.String("command_id", cmd.ID))
		return false
	}

	wp.tasks <- func() {
		if err := wp.processor.ProcessCommand(ctx, cmd); err != nil {
			wp.logger.Error("Failed to process command",
				zap.Error(err),
				zap.String("command_type", string(cmd.Type)),
				zap.String("command_id", cmd.ID))
		}
	}
	return true
}

// Shutdown stops accepting commands and waits for queued ones to finish.
func (wp *WorkerPool) Shutdown() {
	wp.mu.Lock()
	if wp.closed {
		wp.mu.Unlock()
		return
	}
	wp.closed = true
	close(wp.tasks)
	wp.mu.Unlock()

	wp.wg.Wait()
}
