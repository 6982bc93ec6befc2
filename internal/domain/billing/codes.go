package billing

import (
	"math/rand"
	"strconv"
	"sync"
	"time"
)

// CodeGenerator produces the ATOT/VTOT reconciliation codes printed on
// a receipt: independent uniform draws from [100000, 999999], so the
// decimal form is always six digits with no leading zero.
type CodeGenerator struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewCodeGenerator returns a generator seeded from the wall clock.
func NewCodeGenerator() *CodeGenerator {
	return NewSeededCodeGenerator(time.Now().UnixNano())
}

// NewSeededCodeGenerator returns a deterministic generator for tests.
func NewSeededCodeGenerator(seed int64) *CodeGenerator {
	return &CodeGenerator{rng: rand.New(rand.NewSource(seed))}
}

// GenerateCodes draws a fresh ATOT and VTOT pair.
func (g *CodeGenerator) GenerateCodes() (atot, vtot string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.draw(), g.draw()
}

func (g *CodeGenerator) draw() string {
	return strconv.Itoa(g.rng.Intn(900000) + 100000)
}
