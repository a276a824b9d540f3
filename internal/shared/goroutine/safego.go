// Package goroutine runs fire-and-forget work off the request path.
package goroutine

import (
	"fmt"
	"runtime/debug"

	"github.com/chamados/servicedesk/internal/shared/logger"
)

// SafeGo runs fn in its own goroutine. A panic is logged with its stack and swallowed.
// The returned channel is closed once fn has returned or panicked; callers that do not
// need to wait may ignore it.
func SafeGo(log logger.Interface, name string, fn func()) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		defer close(done)
		defer func() {
			if r := recover(); r != nil {
				log.Errorw("background task panicked",
					"task", name,
					"panic", fmt.Sprintf("%v", r),
					"stack", string(debug.Stack()),
				)
			}
		}()
		fn()
	}()
	return done
}
