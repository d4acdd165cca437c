// Package pkg provides the libraries behind the hanoi terminal game.
//
// # Overview
//
// The pkg directory is organized into a few areas:
//
//  1. [core] - Game rules and state (stack container, towers, solver, ASCII rendering)
//  2. [config] - Settings file loading
//  3. [errors] - Coded error types shared by the core and the CLI
//  4. [observability] - Hooks for game events
//  5. [buildinfo] - Version information injected at build time
//
// # Architecture
//
// One turn of the game flows through:
//
//	player input (source, destination)
//	         ↓
//	    [core/hanoi] Game.ApplyMove (validate, then mutate or reject)
//	         ↓
//	    [core/hanoi] Game.IsWon
//	         ↓
//	    [core/render/ascii] board rendering
//
// # Quick Start
//
//	import (
//	    "os"
//	    "github.com/matzehuels/hanoi/pkg/core/hanoi"
//	    "github.com/matzehuels/hanoi/pkg/core/render/ascii"
//	)
//
//	g, _ := hanoi.New(3)
//	moves, _ := hanoi.Solve(3, 0, 2)
//	for _, m := range moves {
//	    _ = g.ApplyMove(m.From, m.To)
//	}
//	_ = ascii.Render(os.Stdout, g)
package pkg
