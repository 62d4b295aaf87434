package par

import (
	"os"
	"strconv"
	"sync"
)

// SerialEnv checks if the STRIDE_SERIAL environment variable is set.
// When set, Default returns the inline Serial engine regardless of
// GOMAXPROCS. This is useful for testing and debugging.
func SerialEnv() bool {
	val := os.Getenv("STRIDE_SERIAL")
	if val == "" {
		return false
	}
	// Any non-empty value is considered true, but also parse as bool
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}

// defaultEngine builds the process-wide engine on first use.
var defaultEngine = sync.OnceValue(func() Engine {
	if SerialEnv() {
		return Serial{}
	}
	return NewPool(0)
})

// Default returns the process-wide engine used by kernels called with a nil
// engine: a Pool sized to GOMAXPROCS, or Serial when STRIDE_SERIAL is set.
// The engine is created on first use and lives for the process; it is never
// Closed.
func Default() Engine {
	return defaultEngine()
}
