package concurrency

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLockManager_SameKeySameMutex(t *testing.T) {
	lm := NewLockManager[int]()
	assert.Same(t, lm.GetLock(1), lm.GetLock(1))
	assert.NotSame(t, lm.GetLock(1), lm.GetLock(2))
}

func TestLockManager_SerialisesPerKey(t *testing.T) {
	lm := NewLockManager[int]()

	var (
		wg      sync.WaitGroup
		counter int
	)
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock := lm.Lock(7)
			defer unlock()
			counter++
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, counter)
}
