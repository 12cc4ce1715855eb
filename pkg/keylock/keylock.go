package keylock

import (
	"sync"
	"time"
)

/*
взаимное исключение по ключу: операции над одной посылкой сериализуются,
над разными — идут параллельно. Ожидание ограничено, при таймауте caller
получает false и должен вернуть Busy, а не висеть на локе.
*/

type KeyLock struct {
	mu    sync.Mutex
	locks map[int64]*entry
}

type entry struct {
	ch   chan struct{}
	refs int
}

func New() *KeyLock {
	return &KeyLock{
		locks: make(map[int64]*entry),
	}
}

// TryLock захватывает лок ключа, ожидая не дольше wait.
// Возвращает false, если лок занят дольше таймаута.
func (k *KeyLock) TryLock(key int64, wait time.Duration) bool {
	k.mu.Lock()
	e, ok := k.locks[key]
	if !ok {
		e = &entry{ch: make(chan struct{}, 1)}
		k.locks[key] = e
	}
	e.refs++
	k.mu.Unlock()

	select {
	case e.ch <- struct{}{}:
		return true
	default:
	}

	if wait <= 0 {
		k.release(key, e)
		return false
	}

	timer := time.NewTimer(wait)
	defer timer.Stop()

	select {
	case e.ch <- struct{}{}:
		return true
	case <-timer.C:
		k.release(key, e)
		return false
	}
}

// Unlock освобождает лок ключа. Вызывать только после успешного TryLock.
func (k *KeyLock) Unlock(key int64) {
	k.mu.Lock()
	e, ok := k.locks[key]
	k.mu.Unlock()
	if !ok {
		panic("keylock: unlock of unlocked key")
	}

	<-e.ch
	k.release(key, e)
}

func (k *KeyLock) release(key int64, e *entry) {
	k.mu.Lock()
	defer k.mu.Unlock()

	e.refs--
	if e.refs == 0 {
		delete(k.locks, key)
	}
}
