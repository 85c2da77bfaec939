package table

import (
	"sync"
	"time"
)

// SearchDebounce is the settle window applied to search-input
// re-filtering.
const SearchDebounce = 300 * time.Millisecond

// Debounce wraps fn so that only the last call within the window
// fires. Each new call cancels and restarts the timer (last input
// wins). The returned cancel stops any pending invocation.
func Debounce(window time.Duration, fn func()) (call func(), cancel func()) {
	var mu sync.Mutex
	var timer *time.Timer

	call = func() {
		mu.Lock()
		defer mu.Unlock()
		if timer != nil {
			timer.Stop()
		}
		timer = time.AfterFunc(window, fn)
	}
	cancel = func() {
		mu.Lock()
		defer mu.Unlock()
		if timer != nil {
			timer.Stop()
			timer = nil
		}
	}
	return call, cancel
}
