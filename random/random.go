// Package random is the injectable source of randomness for question ordering
// and game boards. *math/rand/v2.Rand satisfies Source.
package random

import (
	"math/rand/v2"
	"sync"
	"time"
)

type Source interface {
	IntN(n int) int
	Shuffle(n int, swap func(i, j int))
}

// New returns a deterministic source for the given seed.
func New(seed uint64) Source {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Locked wraps a Source so it can be shared between goroutines.
type Locked struct {
	mu  sync.Mutex
	src Source
}

func NewLocked(src Source) *Locked { return &Locked{src: src} }

// NewTimeSeeded returns a goroutine-safe source seeded from the clock, for
// production use.
func NewTimeSeeded() *Locked {
	return NewLocked(New(uint64(time.Now().UnixNano())))
}

func (l *Locked) IntN(n int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.src.IntN(n)
}

func (l *Locked) Shuffle(n int, swap func(i, j int)) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.src.Shuffle(n, swap)
}

// ShuffleSlice shuffles s in place with a uniform Fisher-Yates permutation.
func ShuffleSlice[T any](src Source, s []T) {
	src.Shuffle(len(s), func(i, j int) { s[i], s[j] = s[j], s[i] })
}
