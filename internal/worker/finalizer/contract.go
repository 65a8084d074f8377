package finalizer

import (
	"context"
	"time"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	CompletePastConfirmed(ctx context.Context, now time.Time) (int64, error)
	CancelPastPending(ctx context.Context, now time.Time) (int64, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Metrics интерфейс счетчиков финализации
type Metrics interface {
	ObserveTransition(transition string, count int64)
	ObserveTickError()
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
