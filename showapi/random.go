// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package showapi

import "math/rand/v2"

// Random is the source of chance for simulated failures.
// Implementations must be safe for concurrent use.
type Random interface {
	Float64() float64
}

// SystemRandom uses the goroutine-safe top-level math/rand/v2 functions
type SystemRandom struct{}

func (SystemRandom) Float64() float64 { return rand.Float64() }

func (SystemRandom) IntN(n int) int { return rand.IntN(n) }
