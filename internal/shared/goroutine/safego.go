// Package goroutine launches background work that must not take the process
// down when it panics.
package goroutine

import (
	"fmt"
	"runtime/debug"
	"sync"

	"github.com/orris-inc/complaintdesk/internal/shared/logger"
)

// SafeGo runs fn in a goroutine and logs any panic with its stack.
func SafeGo(log logger.Interface, name string, fn func()) {
	go Run(log, name, fn)
}

// SafeGoWG is SafeGo tracked by wg, for workers that are joined on shutdown.
func SafeGoWG(wg *sync.WaitGroup, log logger.Interface, name string, fn func()) {
	wg.Add(1)
	go func() {
		defer wg.Done()
		Run(log, name, fn)
	}()
}

// Run executes fn on the calling goroutine, converting a panic into a log entry.
// It reports whether fn returned normally.
func Run(log logger.Interface, name string, fn func()) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			log.Errorw("goroutine panicked",
				"goroutine", name,
				"panic", fmt.Sprintf("%v", r),
				"stack", string(debug.Stack()),
			)
			ok = false
		}
	}()
	fn()
	return true
}
