package worker

import (
	"context"
)

// Worker - фоновая задача, управляемая WorkerManager
type Worker interface {
	// Start блокирует до остановки воркера или отмены контекста
	Start(ctx context.Context) error

	// Stop сигнализирует воркеру завершиться, повторный вызов безопасен
	Stop() error

	Name() string
}
