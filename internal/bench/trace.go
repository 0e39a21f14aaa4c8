package bench

import (
	"log"
	"os"
	"sync/atomic"
)

// Opt-in tracing for sweep and audit progress. Enable by setting
// GOCHANGE_TRACE=1 or calling SetTrace(true).

var traceEnabled atomic.Bool

func init() {
	if os.Getenv("GOCHANGE_TRACE") == "1" {
		traceEnabled.Store(true)
	}
}

// SetTrace turns progress tracing on or off.
func SetTrace(on bool) { traceEnabled.Store(on) }

func tracef(format string, args ...any) {
	if !traceEnabled.Load() {
		return
	}
	log.Printf("[bench] "+format, args...)
}
