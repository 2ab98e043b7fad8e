package bot

import (
	"math/rand/v2"
	"sync"
)

// Chooser picks an index in [0, n). It decides which of several
// equivalent replies is shown and nothing else.
type Chooser interface {
	Choose(n int) int
}

// RandomChooser draws uniformly from a seeded PCG source. It is safe for
// concurrent use so one bot can serve several conversations.
type RandomChooser struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

func NewRandomChooser(seed uint64) *RandomChooser {
	return &RandomChooser{rnd: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (c *RandomChooser) Choose(n int) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.rnd.IntN(n)
}

// ChooserFunc adapts a function to the Chooser interface.
type ChooserFunc func(n int) int

func (f ChooserFunc) Choose(n int) int {
	return f(n)
}
