package fuzz

import (
	"errors"

	"github.com/oisee/i8080-core/pkg/cpu"
	"github.com/oisee/i8080-core/pkg/inst"
)

// redirectsPC is duplicated from pkg/conformance rather than imported: fuzz
// and conformance are sibling tiers over the same core, and neither should
// depend on the other for a four-line table, the same reasoning the teacher
// gives for duplicating testVectors between pkg/search and pkg/stoke.
var redirectsPC = map[inst.Family]bool{
	inst.FamJMP: true, inst.FamJcc: true, inst.FamCALL: true, inst.FamCcc: true,
	inst.FamRET: true, inst.FamRcc: true, inst.FamRST: true, inst.FamPCHL: true,
}

// runSeq executes seq from (initial, mem) and counts invariant violations
// the way conformance.Sweep does per-step, stopping early on a decoder bug
// or HLT. It returns the violation count and the final CPU state.
func runSeq(initial cpu.CPU, mem cpu.Array, seq []inst.Instruction) (violations int, final cpu.CPU) {
	c := initial
	m := mem
	for _, instr := range seq {
		m.WriteByte(c.PC, instr.Op)
		switch instr.Len() {
		case 2:
			m.WriteByte(c.PC+1, uint8(instr.Imm))
		case 3:
			m.WriteByte(c.PC+1, uint8(instr.Imm))
			m.WriteByte(c.PC+2, uint8(instr.Imm>>8))
		}
		before := c
		info := inst.Catalog[instr.Op]
		_, err := c.Step(&m)

		var dbErr *cpu.DecoderBugError
		if errors.As(err, &dbErr) {
			violations++
			break
		}
		if b := uint8(c.F); b&0x20 != 0 || b&0x08 != 0 || b&0x02 == 0 {
			violations++
		}
		if !redirectsPC[info.Family] {
			if c.PC != before.PC+uint16(info.Length) {
				violations++
			}
		}
		if errors.Is(err, cpu.ErrHalted) {
			break
		}
	}
	return violations, c
}

// Cost scores a candidate stream run from a chain's fixed initial state:
// lower is better, and more invariant violations always lowers the cost, so
// a Metropolis chain minimizing Cost is biased toward streams that break
// more of the core's guarantees — the mirror image of the teacher's Cost,
// which is biased toward streams that match a target.
func Cost(initial cpu.CPU, mem cpu.Array, seq []inst.Instruction) int {
	violations, _ := runSeq(initial, mem, seq)
	return -1000*violations + len(seq)
}

// Violations reports just the violation count, the signal Run uses to
// decide whether a chain's best candidate is worth reporting as a Finding.
func Violations(initial cpu.CPU, mem cpu.Array, seq []inst.Instruction) int {
	v, _ := runSeq(initial, mem, seq)
	return v
}
