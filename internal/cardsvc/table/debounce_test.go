package table

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDebounceLastInputWins(t *testing.T) {
	var fired int32
	call, cancel := Debounce(20*time.Millisecond, func() {
		atomic.AddInt32(&fired, 1)
	})
	defer cancel()

	call()
	call()
	call()

	time.Sleep(80 * time.Millisecond)
	assert.Equal(t, int32(1), atomic.LoadInt32(&fired), "burst collapses to one invocation")
}

func TestDebounceCancelStopsPending(t *testing.T) {
	var fired int32
	call, cancel := Debounce(20*time.Millisecond, func() {
		atomic.AddInt32(&fired, 1)
	})

	call()
	cancel()

	time.Sleep(80 * time.Millisecond)
	assert.Zero(t, atomic.LoadInt32(&fired))
}

func TestDebounceFiresAgainAfterSettle(t *testing.T) {
	var fired int32
	call, cancel := Debounce(10*time.Millisecond, func() {
		atomic.AddInt32(&fired, 1)
	})
	defer cancel()

	call()
	time.Sleep(50 * time.Millisecond)
	call()
	time.Sleep(50 * time.Millisecond)

	assert.Equal(t, int32(2), atomic.LoadInt32(&fired))
}
