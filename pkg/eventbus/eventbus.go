package eventbus

import (
	"context"
	"runtime/debug"
	"sync"

	"parceltrack/pkg/logger"
)

// Handler получает доменное событие. Ошибка обработчика не влияет на
// остальных подписчиков.
type Handler[E any] func(ctx context.Context, event E) error

type handlerLogger interface {
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

// Bus — внутрипроцессная шина fan-out. Publish не блокируется на подписчиках:
// обработка идет в отдельной горутине с recover, по аналогии с background.Worker.
type Bus[E any] struct {
	log handlerLogger

	mu       sync.RWMutex
	handlers []Handler[E]
}

func New[E any](log handlerLogger) *Bus[E] {
	return &Bus[E]{
		log: log.With(),
	}
}

// Subscribe регистрирует обработчик. Вызывать до начала публикаций.
func (b *Bus[E]) Subscribe(h Handler[E]) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers = append(b.handlers, h)
}

// Publish рассылает событие всем подписчикам асинхронно.
func (b *Bus[E]) Publish(ctx context.Context, event E) {
	b.mu.RLock()
	handlers := make([]Handler[E], len(b.handlers))
	copy(handlers, b.handlers)
	b.mu.RUnlock()

	for _, h := range handlers {
		go b.dispatchSafely(ctx, h, event)
	}
}

// PublishSync рассылает событие синхронно. Для тестов и для мест, где
// важно дождаться подписчиков.
func (b *Bus[E]) PublishSync(ctx context.Context, event E) {
	b.mu.RLock()
	handlers := make([]Handler[E], len(b.handlers))
	copy(handlers, b.handlers)
	b.mu.RUnlock()

	for _, h := range handlers {
		b.dispatchSafely(ctx, h, event)
	}
}

func (b *Bus[E]) dispatchSafely(ctx context.Context, h Handler[E], event E) {
	defer func() {
		if r := recover(); r != nil {
			stack := debug.Stack()
			b.log.Error("event handler panic",
				logger.NewField("recover", r),
				logger.NewField("stack", stack),
			)
		}
	}()

	if err := h(ctx, event); err != nil {
		b.log.Warn("event handler failed",
			logger.NewField("error", err),
		)
	}
}
