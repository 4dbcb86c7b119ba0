package fuzz

import (
	"math"
	"math/rand/v2"

	"github.com/oisee/i8080-core/pkg/cpu"
	"github.com/oisee/i8080-core/pkg/inst"
)

// Chain is a single Metropolis-Hastings MCMC chain with simulated
// annealing — ported from the teacher's stoke.Chain. Where the teacher's
// chain mutates toward a fixed target sequence, this one mutates toward
// whatever maximizes invariant violations from a fixed initial
// register/memory state owned by the chain.
type Chain struct {
	current     []inst.Instruction
	best        []inst.Instruction
	cost        int
	bestCost    int
	temperature float64
	rng         *rand.Rand
	mutator     *Mutator
	initial     cpu.CPU
	initialMem  cpu.Array

	Accepted int64
	Rejected int64
}

// NewChain creates a chain with its own random initial CPU/memory image and
// a single random seed instruction, seeded deterministically from seed.
func NewChain(seed uint64, maxLen int, temperature float64) *Chain {
	rng := rand.New(rand.NewPCG(seed, seed^0xDEADBEEF))
	initial, initialMem := randomState(rng)
	mutator := NewMutator(rng, maxLen)
	current := []inst.Instruction{mutator.randomInstruction()}
	cost := Cost(initial, initialMem, current)

	return &Chain{
		current:     current,
		best:        copySeq(current),
		cost:        cost,
		bestCost:    cost,
		temperature: temperature,
		rng:         rng,
		mutator:     mutator,
		initial:     initial,
		initialMem:  initialMem,
	}
}

// Step performs one MCMC iteration: mutate, evaluate, accept/reject, anneal.
// Returns true if the mutation was accepted.
func (c *Chain) Step(decay float64) bool {
	candidate := c.mutator.Mutate(c.current)
	newCost := Cost(c.initial, c.initialMem, candidate)
	delta := newCost - c.cost

	accepted := false
	if delta <= 0 {
		accepted = true
	} else if c.temperature > 0 {
		if c.rng.Float64() < math.Exp(-float64(delta)/c.temperature) {
			accepted = true
		}
	}

	if accepted {
		c.current = candidate
		c.cost = newCost
		c.Accepted++
		if newCost < c.bestCost {
			c.best = copySeq(candidate)
			c.bestCost = newCost
		}
	} else {
		c.Rejected++
	}

	c.temperature *= decay
	return accepted
}

// Best returns the chain's best candidate stream and its cost.
func (c *Chain) Best() ([]inst.Instruction, int) {
	return c.best, c.bestCost
}

// BestViolations returns the violation count of the chain's best candidate.
func (c *Chain) BestViolations() int {
	return Violations(c.initial, c.initialMem, c.best)
}
