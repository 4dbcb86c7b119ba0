package fuzz

import (
	"fmt"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/oisee/i8080-core/pkg/cpu"
	"github.com/oisee/i8080-core/pkg/inst"
)

// Config holds fuzz-run configuration, ported from stoke.Config with Target
// dropped (each chain generates its own initial state rather than aiming at
// a fixed target) and MaxLen added to bound candidate stream length.
type Config struct {
	Chains     int // Number of independent MCMC chains (goroutines)
	Iterations int // Iterations per chain
	Decay      float64
	MaxLen     int
	Seed       uint64 // base seed; 0 means draw a random base seed
	Verbose    bool
}

// Finding is a confirmed invariant violation surfaced by a chain: the
// instruction stream that triggers it, the state it was run from, and how
// many invariants it broke.
type Finding struct {
	Stream     []inst.Instruction
	Initial    cpu.CPU
	Violations int
	ChainID    int
	Iter       int
}

// Run launches cfg.Chains independent MCMC chains in parallel, each
// searching for instruction streams that break the core's invariants from
// its own random initial state, and collects every distinct stream whose
// best candidate has at least one confirmed violation.
func Run(cfg Config) []Finding {
	if cfg.Chains <= 0 {
		cfg.Chains = 1
	}
	if cfg.Iterations <= 0 {
		cfg.Iterations = 100_000
	}
	if cfg.Decay <= 0 || cfg.Decay >= 1 {
		cfg.Decay = 0.9999
	}
	if cfg.MaxLen <= 0 {
		cfg.MaxLen = 8
	}

	if cfg.Verbose {
		fmt.Printf("fuzz run: %d chains x %d iterations (decay=%.6f, maxlen=%d)\n",
			cfg.Chains, cfg.Iterations, cfg.Decay, cfg.MaxLen)
	}

	var mu sync.Mutex
	var findings []Finding
	seen := make(map[Fingerprint]bool)
	var wg sync.WaitGroup

	baseSeed := cfg.Seed
	if baseSeed == 0 {
		baseSeed = rand.Uint64()
	}

	startTime := time.Now()
	done := make(chan struct{})

	if cfg.Verbose {
		go func() {
			ticker := time.NewTicker(10 * time.Second)
			defer ticker.Stop()
			for {
				select {
				case <-done:
					return
				case <-ticker.C:
					elapsed := time.Since(startTime)
					mu.Lock()
					found := len(findings)
					mu.Unlock()
					fmt.Printf("  [%s] %d findings so far\n", elapsed.Round(time.Second), found)
				}
			}
		}()
	}

	for i := 0; i < cfg.Chains; i++ {
		wg.Add(1)
		go func(chainID int) {
			defer wg.Done()

			seed := baseSeed + uint64(chainID)*0x9E3779B97F4A7C15
			chain := NewChain(seed, cfg.MaxLen, 1.0)

			for iter := 0; iter < cfg.Iterations; iter++ {
				chain.Step(cfg.Decay)

				best, bestCost := chain.Best()
				if bestCost >= 0 {
					continue
				}
				violations := chain.BestViolations()
				if violations == 0 {
					continue
				}

				fp := FingerprintOf(best)
				mu.Lock()
				isNew := !seen[fp]
				if isNew {
					seen[fp] = true
				}
				mu.Unlock()
				if !isNew {
					continue
				}

				f := Finding{
					Stream:     copySeq(best),
					Initial:    chain.initial,
					Violations: violations,
					ChainID:    chainID,
					Iter:       iter,
				}
				mu.Lock()
				findings = append(findings, f)
				mu.Unlock()

				if cfg.Verbose {
					fmt.Printf("  chain %d @ iter %d: ", chainID, iter)
					for j, instr := range best {
						if j > 0 {
							fmt.Print(" : ")
						}
						fmt.Print(inst.Disassemble(instr))
					}
					fmt.Printf(" (%d violations)\n", violations)
				}

				chain = NewChain(seed+uint64(iter), cfg.MaxLen, 1.0)
			}

			if cfg.Verbose {
				fmt.Printf("  chain %d done: %d accepted, %d rejected\n",
					chainID, chain.Accepted, chain.Rejected)
			}
		}(i)
	}

	wg.Wait()
	close(done)

	if cfg.Verbose {
		elapsed := time.Since(startTime)
		fmt.Printf("\nfuzz run complete: %d findings in %s\n",
			len(findings), elapsed.Round(time.Millisecond))
	}

	return findings
}
