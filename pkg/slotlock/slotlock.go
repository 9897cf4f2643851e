package slotlock

import "sync"

// Registry реестр мьютексов по ID слота.
// Гарантия: в каждый момент времени не более одной операции
// Reserve/Extend на слот; операции по разным слотам не блокируют друг друга.
// Записи создаются по требованию и удаляются, когда последний владелец
// отпускает блокировку, поэтому реестр не растёт бесконечно.
type Registry struct {
	mu    sync.Mutex
	locks map[int64]*entry
}

type entry struct {
	mu   sync.Mutex
	refs int
}

// New создает пустой реестр блокировок
func New() *Registry {
	return &Registry{locks: make(map[int64]*entry)}
}

// Lock блокирует слот, при необходимости дожидаясь освобождения
func (r *Registry) Lock(slotID int64) {
	r.mu.Lock()
	e, ok := r.locks[slotID]
	if !ok {
		e = &entry{}
		r.locks[slotID] = e
	}
	e.refs++
	r.mu.Unlock()

	e.mu.Lock()
}

// Unlock освобождает слот. Вызывать строго после Lock того же слота.
func (r *Registry) Unlock(slotID int64) {
	r.mu.Lock()
	e, ok := r.locks[slotID]
	if ok {
		e.refs--
		if e.refs == 0 {
			delete(r.locks, slotID)
		}
	}
	r.mu.Unlock()

	if ok {
		e.mu.Unlock()
	}
}
