package finalizer

import (
	"context"
	"time"
)

const (
	transitionCompleted = "confirmed_to_completed"
	transitionCancelled = "pending_to_cancelled"
)

// Worker фоновая финализация записей с прошедшей датой:
// confirmed -> completed, pending -> cancelled (неподтверждённая запись
// автоматически истекает). Оба перехода - массовые обновления по предикату,
// повторный тик для уже переведённых строк ничего не меняет.
//
// Запускается и останавливается явно из main через контекст - никаких
// глобальных таймеров. Tick вызывается напрямую в тестах.
type Worker struct {
	repo         AppointmentRepository
	logger       Logger
	metrics      Metrics
	timeProvider TimeProvider
	interval     time.Duration
}

// NewWorker создает новый экземпляр воркера финализации
func NewWorker(repo AppointmentRepository, logger Logger, metrics Metrics, interval time.Duration) *Worker {
	if interval <= 0 {
		interval = time.Minute
	}
	return &Worker{
		repo:         repo,
		logger:       logger,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{},
		interval:     interval,
	}
}

// Run крутит цикл финализации до отмены контекста.
// Ошибка одного тика логируется и не останавливает цикл:
// следующий тик выполняется независимо.
func (w *Worker) Run(ctx context.Context) {
	w.logger.Info("Finalizer: started with interval %s", w.interval)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("Finalizer: stopped")
			return
		case <-ticker.C:
			w.Tick(ctx)
		}
	}
}

// Tick выполняет один проход финализации.
// Каждое из двух обновлений атомарно на уровне БД; они независимы -
// ошибка первого не отменяет второе.
func (w *Worker) Tick(ctx context.Context) {
	now := w.timeProvider.Now()

	completed, err := w.repo.CompletePastConfirmed(ctx, now)
	if err != nil {
		w.logger.Error("Finalizer: failed to complete past confirmed appointments: %v", err)
		if w.metrics != nil {
			w.metrics.ObserveTickError()
		}
	} else if completed > 0 {
		w.logger.Info("Finalizer: completed %d past confirmed appointments", completed)
		if w.metrics != nil {
			w.metrics.ObserveTransition(transitionCompleted, completed)
		}
	}

	cancelled, err := w.repo.CancelPastPending(ctx, now)
	if err != nil {
		w.logger.Error("Finalizer: failed to cancel past pending appointments: %v", err)
		if w.metrics != nil {
			w.metrics.ObserveTickError()
		}
	} else if cancelled > 0 {
		w.logger.Info("Finalizer: cancelled %d past pending appointments", cancelled)
		if w.metrics != nil {
			w.metrics.ObserveTransition(transitionCancelled, cancelled)
		}
	}
}
