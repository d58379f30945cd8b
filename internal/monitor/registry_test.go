package monitor

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryArmReplacesPreviousHandle(t *testing.T) {
	r := NewRegistry()
	t.Cleanup(func() { r.CancelAll() })

	noop := func(*Handle) {}
	h1 := r.Arm(7, RolePausedChecker, time.Hour, noop)
	h2 := r.Arm(7, RoleActiveChecker, time.Hour, noop)

	assert.False(t, r.Current(h1))
	assert.True(t, r.Current(h2))
	assert.Equal(t, 1, r.Len())

	role, ok := r.Armed(7)
	require.True(t, ok)
	assert.Equal(t, RoleActiveChecker, role)
}

func TestRegistrySingleTimerUnderConcurrentArming(t *testing.T) {
	r := NewRegistry()
	t.Cleanup(func() { r.CancelAll() })

	roles := []Role{RoleActiveChecker, RolePausedChecker, RolePricingWait, RoleBatchSweep}
	var wg sync.WaitGroup
	for i := 0; i < 200; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			r.Arm(int64(i%3), roles[i%len(roles)], time.Hour, func(*Handle) {})
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 3, r.Len())
	assert.Equal(t, []int64{0, 1, 2}, r.IDs())
}

func TestRegistryCancelPreventsFire(t *testing.T) {
	r := NewRegistry()

	var fired atomic.Int32
	r.Arm(1, RolePricingWait, 20*time.Millisecond, func(h *Handle) {
		if r.Current(h) {
			fired.Add(1)
		}
	})
	require.True(t, r.Cancel(1))
	require.False(t, r.Cancel(1))

	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, int32(0), fired.Load())
	assert.Equal(t, 0, r.Len())
}

func TestRegistryFiresCurrentHandle(t *testing.T) {
	r := NewRegistry()
	t.Cleanup(func() { r.CancelAll() })

	done := make(chan bool, 1)
	r.Arm(3, RoleBatchSweep, time.Millisecond, func(h *Handle) {
		done <- r.Current(h)
	})

	select {
	case current := <-done:
		assert.True(t, current)
	case <-time.After(time.Second):
		t.Fatal("timer did not fire")
	}
}

func TestRegistryStaleHandleIsNotCurrent(t *testing.T) {
	r := NewRegistry()
	t.Cleanup(func() { r.CancelAll() })

	release := make(chan struct{})
	results := make(chan bool, 1)
	r.Arm(9, RoleActiveChecker, 0, func(h *Handle) {
		<-release
		results <- r.Current(h)
	})
	// Let the first callback start, then replace it while it is running.
	time.Sleep(10 * time.Millisecond)
	r.Arm(9, RolePausedChecker, time.Hour, func(*Handle) {})
	close(release)

	select {
	case current := <-results:
		assert.False(t, current)
	case <-time.After(time.Second):
		t.Fatal("callback did not finish")
	}
}

func TestKeyedMutexSerializesPerKey(t *testing.T) {
	k := NewKeyedMutex()

	counter := 0
	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock := k.Lock(42)
			defer unlock()
			v := counter
			time.Sleep(time.Microsecond)
			counter = v + 1
		}()
	}
	wg.Wait()

	assert.Equal(t, 100, counter)
	assert.Equal(t, 0, k.Len())
}

func TestKeyedMutexIndependentKeys(t *testing.T) {
	k := NewKeyedMutex()

	unlockA := k.Lock(1)
	defer unlockA()

	acquired := make(chan struct{})
	go func() {
		unlock := k.Lock(2)
		unlock()
		close(acquired)
	}()

	select {
	case <-acquired:
	case <-time.After(time.Second):
		t.Fatal("lock on another key blocked")
	}
}
