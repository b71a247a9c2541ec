// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard
// dependencies on specific observability backends. Consumers register hooks
// at startup to receive events about enumeration runs and input loading.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// Hooks are registered by main, not by libraries, which keeps package perm
// free of any observability dependency.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetEnumerationHooks(&myHooks{})
//	    // ... run application
//	}
//
// The pipeline runner calls hooks to emit events:
//
//	observability.Enumeration().OnEnumerateStart(ctx, "plain", 5)
//	// ... enumerate ...
//	observability.Enumeration().OnEnumerateComplete(ctx, "plain", 120, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Enumeration Hooks
// =============================================================================

// EnumerationHooks receives events from enumeration runs.
type EnumerationHooks interface {
	// OnEnumerateStart is called once the input has been validated.
	OnEnumerateStart(ctx context.Context, algorithm string, elements int)

	// OnEnumerateComplete is called when a run ends, whether it finished,
	// was stopped early, or failed.
	OnEnumerateComplete(ctx context.Context, algorithm string, visited int, duration time.Duration, err error)
}

// =============================================================================
// Input Hooks
// =============================================================================

// InputHooks receives events from loading the element multiset.
type InputHooks interface {
	// OnInputLoaded records where the elements came from ("file" or
	// "identity") and how many there are.
	OnInputLoaded(ctx context.Context, source string, elements int)

	// OnInputError records a failure to load elements.
	OnInputError(ctx context.Context, source string, err error)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopEnumerationHooks is a no-op implementation of EnumerationHooks.
type NoopEnumerationHooks struct{}

func (NoopEnumerationHooks) OnEnumerateStart(context.Context, string, int) {}
func (NoopEnumerationHooks) OnEnumerateComplete(context.Context, string, int, time.Duration, error) {
}

// NoopInputHooks is a no-op implementation of InputHooks.
type NoopInputHooks struct{}

func (NoopInputHooks) OnInputLoaded(context.Context, string, int)  {}
func (NoopInputHooks) OnInputError(context.Context, string, error) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	enumerationHooks EnumerationHooks = NoopEnumerationHooks{}
	inputHooks       InputHooks       = NoopInputHooks{}
	hooksMu          sync.RWMutex
)

// SetEnumerationHooks registers custom enumeration hooks.
// This should be called once at application startup before any runs.
func SetEnumerationHooks(h EnumerationHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		enumerationHooks = h
	}
}

// SetInputHooks registers custom input hooks.
func SetInputHooks(h InputHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		inputHooks = h
	}
}

// Enumeration returns the registered enumeration hooks.
func Enumeration() EnumerationHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return enumerationHooks
}

// Input returns the registered input hooks.
func Input() InputHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return inputHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	enumerationHooks = NoopEnumerationHooks{}
	inputHooks = NoopInputHooks{}
}
