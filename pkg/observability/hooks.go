// Package observability provides hooks for game event instrumentation.
//
// This package enables optional instrumentation without coupling the game
// loop to a specific logging or metrics backend. Front-ends register hooks at
// startup to receive events about game sessions.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define a hook interface for game events
//   - Provide a no-op default implementation
//   - Allow registration of a custom implementation at startup
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetGameHooks(&myGameHooks{})
//	    // ... run application
//	}
//
// Interaction loops call hooks to emit events:
//
//	observability.Game().OnGameStart(ctx, id, disks)
//	// ... play ...
//	observability.Game().OnGameWon(ctx, id, moves, elapsed)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Game Hooks
// =============================================================================

// GameHooks receives events from an interactive game session.
// The id identifies the session across events.
type GameHooks interface {
	// OnGameStart records a new game with the given disk count.
	OnGameStart(ctx context.Context, id string, disks int)

	// OnMove records an accepted move; moves is the counter after the move.
	OnMove(ctx context.Context, id string, from, to, moves int)

	// OnMoveRejected records a move refused for a bad index or the stacking rule.
	OnMoveRejected(ctx context.Context, id string, from, to int, err error)

	// OnGameWon records a finished game.
	OnGameWon(ctx context.Context, id string, moves int, duration time.Duration)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopGameHooks is a no-op implementation of GameHooks.
type NoopGameHooks struct{}

func (NoopGameHooks) OnGameStart(context.Context, string, int)                 {}
func (NoopGameHooks) OnMove(context.Context, string, int, int, int)           {}
func (NoopGameHooks) OnMoveRejected(context.Context, string, int, int, error) {}
func (NoopGameHooks) OnGameWon(context.Context, string, int, time.Duration)   {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	gameHooks GameHooks = NoopGameHooks{}
	hooksMu   sync.RWMutex
)

// SetGameHooks registers custom game hooks.
// This should be called once at application startup before any game starts.
func SetGameHooks(h GameHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		gameHooks = h
	}
}

// Game returns the registered game hooks.
func Game() GameHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return gameHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	gameHooks = NoopGameHooks{}
}
