package fuzz

import (
	"math/rand/v2"

	"github.com/oisee/i8080-core/pkg/cpu"
)

// randomState builds a random initial CPU/memory pair for a chain to fuzz
// from, the same shape as conformance.randomCPU/randomMemory, duplicated
// rather than imported for the same reason as redirectsPC.
func randomState(rng *rand.Rand) (cpu.CPU, cpu.Array) {
	pc := uint16(rng.IntN(0xF000))
	sp := uint16(rng.IntN(0x10000))
	c := cpu.New(&pc, &sp)
	c.A = uint8(rng.IntN(256))
	c.B = uint8(rng.IntN(256))
	c.C = uint8(rng.IntN(256))
	c.D = uint8(rng.IntN(256))
	c.E = uint8(rng.IntN(256))
	c.H = uint8(rng.IntN(256))
	c.L = uint8(rng.IntN(256))

	var mem cpu.Array
	for i := range mem {
		mem[i] = uint8(rng.IntN(256))
	}
	return *c, mem
}
