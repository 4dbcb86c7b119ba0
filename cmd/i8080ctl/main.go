package main

import (
	"encoding/json"
	"fmt"
	"os"
	"runtime"

	"github.com/oisee/i8080-core/pkg/conformance"
	"github.com/oisee/i8080-core/pkg/cpu"
	"github.com/oisee/i8080-core/pkg/fuzz"
	"github.com/oisee/i8080-core/pkg/inst"
	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "i8080ctl",
		Short: "Intel 8080 core driver — run, disassemble, and stress-test the interpreter",
	}

	rootCmd.AddCommand(newRunCmd(), newDisasmCmd(), newConformanceCmd(), newFuzzCmd())
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRunCmd() *cobra.Command {
	var startPC uint16
	var startSP uint16
	var maxSteps int
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "run [file]",
		Short: "Load a raw binary image at address 0 and run it to HLT or a step limit",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("reading %s: %w", args[0], err)
			}
			var mem cpu.Array
			copy(mem[:], data)

			pc, sp := startPC, startSP
			c := cpu.New(&pc, &sp)

			steps := 0
			var lastErr error
			for ; maxSteps <= 0 || steps < maxSteps; steps++ {
				_, err := c.Step(&mem)
				if err != nil {
					lastErr = err
					break
				}
			}

			if asJSON {
				out := map[string]any{
					"steps": steps,
					"halted": lastErr != nil,
					"pc":     c.PC,
					"sp":     c.SP,
					"a":      c.A,
					"flags":  c.F.Byte(),
				}
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(out)
			}

			fmt.Printf("ran %d step(s)\n", steps)
			if lastErr != nil {
				fmt.Printf("stopped: %v\n", lastErr)
			}
			fmt.Printf("PC=%04X SP=%04X A=%02X F=%02X BC=%04X DE=%04X HL=%04X\n",
				c.PC, c.SP, c.A, c.F.Byte(), c.BC(), c.DE(), c.HL())
			return nil
		},
	}
	cmd.Flags().Uint16Var(&startPC, "pc", 0, "initial program counter")
	cmd.Flags().Uint16Var(&startSP, "sp", 0, "initial stack pointer")
	cmd.Flags().IntVar(&maxSteps, "max-steps", 1_000_000, "step budget (0 = unbounded, runs until HLT)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "emit final state as JSON")
	return cmd
}

func newDisasmCmd() *cobra.Command {
	var start int

	cmd := &cobra.Command{
		Use:   "disasm [file]",
		Short: "Disassemble a raw binary image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("reading %s: %w", args[0], err)
			}
			for _, line := range inst.DisassembleRange(data, start) {
				fmt.Println(line)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&start, "start", 0, "starting offset")
	return cmd
}

func newConformanceCmd() *cobra.Command {
	var workers int
	var samples int
	var output string
	var checkpoint string
	var verbose bool

	cmd := &cobra.Command{
		Use:   "conformance",
		Short: "Sweep all 256 opcodes against random states and check invariants and round-trip laws",
		RunE: func(cmd *cobra.Command, args []string) error {
			if workers <= 0 {
				workers = runtime.NumCPU()
			}
			fmt.Printf("conformance sweep: %d workers x %d samples/opcode\n", workers, samples)

			wp := conformance.NewWorkerPool(workers)
			report := wp.Sweep(samples, uint64(0x5EED), verbose)

			completed, violations := wp.Stats()
			fmt.Printf("checked %d opcodes, %d violations\n", completed, violations)

			if checkpoint != "" {
				ckpt := &conformance.Checkpoint{Violations: report.Violations(), CompletedOp: 255}
				if err := conformance.SaveCheckpoint(checkpoint, ckpt); err != nil {
					return fmt.Errorf("writing checkpoint: %w", err)
				}
				fmt.Printf("checkpoint written to %s\n", checkpoint)
			}
			if output != "" {
				if err := report.WriteJSON(output); err != nil {
					return fmt.Errorf("writing report: %w", err)
				}
				fmt.Printf("report written to %s\n", output)
			}

			for _, v := range report.Violations() {
				fmt.Printf("  0x%02X: %s\n", v.Opcode, v.Description)
			}
			if report.Len() > 0 {
				os.Exit(1)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&workers, "workers", 0, "worker goroutines (0 = NumCPU)")
	cmd.Flags().IntVar(&samples, "samples", 256, "random samples per opcode")
	cmd.Flags().StringVar(&output, "output", "", "write JSON report to this path")
	cmd.Flags().StringVar(&checkpoint, "checkpoint", "", "write a gob checkpoint to this path")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "print progress every few seconds")
	return cmd
}

func newFuzzCmd() *cobra.Command {
	var chains int
	var iterations int
	var decay float64
	var seed uint64
	var maxLen int
	var output string
	var verbose bool

	cmd := &cobra.Command{
		Use:   "fuzz",
		Short: "Run Metropolis-Hastings chains hunting for invariant violations in random instruction streams",
		RunE: func(cmd *cobra.Command, args []string) error {
			if chains <= 0 {
				chains = runtime.NumCPU()
			}
			cfg := fuzz.Config{
				Chains:     chains,
				Iterations: iterations,
				Decay:      decay,
				MaxLen:     maxLen,
				Seed:       seed,
				Verbose:    verbose,
			}
			findings := fuzz.Run(cfg)
			fmt.Printf("%d distinct findings\n", len(findings))
			for i, f := range findings {
				fmt.Printf("  %d. chain=%d iter=%d violations=%d: ", i+1, f.ChainID, f.Iter, f.Violations)
				for j, instr := range f.Stream {
					if j > 0 {
						fmt.Print(" : ")
					}
					fmt.Print(inst.Disassemble(instr))
				}
				fmt.Println()
			}

			if output != "" {
				type jsonFinding struct {
					ChainID    int    `json:"chain_id"`
					Iter       int    `json:"iter"`
					Violations int    `json:"violations"`
					Stream     string `json:"stream"`
				}
				out := make([]jsonFinding, len(findings))
				for i, f := range findings {
					text := ""
					for j, instr := range f.Stream {
						if j > 0 {
							text += " : "
						}
						text += inst.Disassemble(instr)
					}
					out[i] = jsonFinding{f.ChainID, f.Iter, f.Violations, text}
				}
				data, err := json.MarshalIndent(out, "", "  ")
				if err != nil {
					return err
				}
				if err := os.WriteFile(output, data, 0o644); err != nil {
					return err
				}
				fmt.Printf("findings written to %s\n", output)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&chains, "chains", 0, "MCMC chain count (0 = NumCPU)")
	cmd.Flags().IntVar(&iterations, "iterations", 100_000, "iterations per chain")
	cmd.Flags().Float64Var(&decay, "decay", 0.9999, "temperature decay factor")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "base random seed (0 = nondeterministic)")
	cmd.Flags().IntVar(&maxLen, "max-len", 8, "maximum instruction stream length")
	cmd.Flags().StringVar(&output, "output", "", "write findings as JSON to this path")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "print progress every few seconds")
	return cmd
}
