package slotlock

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRegistry_MutualExclusionPerSlot(t *testing.T) {
	r := New()

	const workers = 50
	var inCritical int32
	var maxObserved int32
	var mu sync.Mutex

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.Lock(1)
			defer r.Unlock(1)

			mu.Lock()
			inCritical++
			if inCritical > maxObserved {
				maxObserved = inCritical
			}
			mu.Unlock()

			time.Sleep(time.Millisecond)

			mu.Lock()
			inCritical--
			mu.Unlock()
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), maxObserved, "only one goroutine may hold the slot at a time")
}

func TestRegistry_IndependentSlots(t *testing.T) {
	r := New()

	r.Lock(1)

	// Блокировка другого слота не должна ждать первого
	acquired := make(chan struct{})
	go func() {
		r.Lock(2)
		close(acquired)
		r.Unlock(2)
	}()

	select {
	case <-acquired:
	case <-time.After(time.Second):
		t.Fatal("lock on an unrelated slot blocked behind slot 1")
	}

	r.Unlock(1)
}

func TestRegistry_CleansUpEntries(t *testing.T) {
	r := New()

	r.Lock(7)
	r.Unlock(7)

	r.mu.Lock()
	defer r.mu.Unlock()
	assert.Empty(t, r.locks, "registry must not retain released entries")
}
