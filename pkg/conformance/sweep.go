package conformance

import (
	"errors"
	"math/rand/v2"

	"github.com/oisee/i8080-core/pkg/cpu"
	"github.com/oisee/i8080-core/pkg/inst"
)

// redirectsPC holds the families that deliberately redirect PC, for which
// the simple "PC advanced by instruction length" invariant does not apply.
var redirectsPC = map[inst.Family]bool{
	inst.FamJMP: true, inst.FamJcc: true, inst.FamCALL: true, inst.FamCcc: true,
	inst.FamRET: true, inst.FamRcc: true, inst.FamRST: true, inst.FamPCHL: true,
}

func randomCPU(rng *rand.Rand) *cpu.CPU {
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
	return c
}

func randomMemory(rng *rand.Rand) *cpu.Array {
	var a cpu.Array
	for i := range a {
		a[i] = uint8(rng.IntN(256))
	}
	return &a
}

// Sweep samples `samples` random register/memory states, executes opcode
// from each, and checks the invariants and round-trip laws that apply to it:
// the dispatch table must not fault, a non-branch opcode must advance PC by
// its documented length, the flag byte's reserved bits must stay pinned, and
// (for CMA, CMC, PUSH/POP, XCHG, XTHL) running the opcode's companion a
// second time must restore the state it changed.
func Sweep(opcode uint8, samples int, rng *rand.Rand) []Violation {
	var out []Violation
	info := inst.Catalog[opcode]

	for i := 0; i < samples; i++ {
		c := randomCPU(rng)
		mem := randomMemory(rng)
		mem.WriteByte(c.PC, opcode)
		before := *c

		cycles, err := c.Step(mem)

		var dbErr *cpu.DecoderBugError
		if errors.As(err, &dbErr) {
			out = append(out, Violation{opcode, "dispatch table resolved to fault handler", before, *c})
			continue
		}
		if err != nil && !errors.Is(err, cpu.ErrHalted) {
			out = append(out, Violation{opcode, "unexpected error: " + err.Error(), before, *c})
			continue
		}
		if cycles != info.Cycles && cycles != info.AltCycles {
			out = append(out, Violation{opcode, "cycle count matched neither Cycles nor AltCycles", before, *c})
		}
		if !redirectsPC[info.Family] {
			want := before.PC + uint16(info.Length)
			if c.PC != want {
				out = append(out, Violation{opcode, "PC did not advance by instruction length", before, *c})
			}
		}
		if b := uint8(c.F); b&0x20 != 0 || b&0x08 != 0 || b&0x02 == 0 {
			out = append(out, Violation{opcode, "reserved flag bits not pinned on the live register", before, *c})
		}
		if v, ok := checkRoundTrip(opcode, before, mem); !ok {
			out = append(out, v)
		}
	}
	return out
}

// checkRoundTrip re-derives the before/after pair for opcodes with a
// documented round-trip law and reports a Violation if the law doesn't
// hold. ok is true both when the opcode has no such law and when the law
// held.
func checkRoundTrip(opcode uint8, before cpu.CPU, mem *cpu.Array) (Violation, bool) {
	switch opcode {
	case 0x2F: // CMA;CMA restores A
		c := before
		mem.WriteByte(c.PC, 0x2F)
		mem.WriteByte(c.PC+1, 0x2F)
		c.Step(mem)
		c.Step(mem)
		if c.A != before.A {
			return Violation{opcode, "CMA;CMA did not restore A", before, c}, false
		}
	case 0x3F: // CMC;CMC restores Carry
		c := before
		mem.WriteByte(c.PC, 0x3F)
		mem.WriteByte(c.PC+1, 0x3F)
		c.Step(mem)
		c.Step(mem)
		if c.F.Carry() != before.F.Carry() {
			return Violation{opcode, "CMC;CMC did not restore Carry", before, c}, false
		}
	case 0xEB: // XCHG;XCHG restores HL and DE
		c := before
		mem.WriteByte(c.PC, 0xEB)
		mem.WriteByte(c.PC+1, 0xEB)
		c.Step(mem)
		c.Step(mem)
		if c.HL() != before.HL() || c.DE() != before.DE() {
			return Violation{opcode, "XCHG;XCHG did not restore HL/DE", before, c}, false
		}
	case 0xE3: // XTHL;XTHL restores HL and the stack word
		c := before
		mem.WriteByte(c.PC, 0xE3)
		mem.WriteByte(c.PC+1, 0xE3)
		stackWord := func() uint16 {
			return uint16(mem.ReadByte(c.SP)) | uint16(mem.ReadByte(c.SP+1))<<8
		}
		word := stackWord()
		c.Step(mem)
		c.Step(mem)
		if c.HL() != before.HL() || stackWord() != word {
			return Violation{opcode, "XTHL;XTHL did not restore HL/stack word", before, c}, false
		}
	case 0xC5, 0xD5, 0xE5, 0xF5: // PUSH rp;POP rp restores rp, SP unchanged
		popOp := opcode &^ 0x04 // C5->C1, D5->D1, E5->E1, F5->F1
		c := before
		mem.WriteByte(c.PC, opcode)
		mem.WriteByte(c.PC+1, popOp)
		beforeRP := c.GetRPPSW(opcode)
		c.Step(mem)
		c.Step(mem)
		if c.GetRPPSW(opcode) != beforeRP {
			return Violation{opcode, "PUSH;POP did not restore rp", before, c}, false
		}
		if c.SP != before.SP {
			return Violation{opcode, "PUSH;POP did not restore SP", before, c}, false
		}
	}
	return Violation{}, true
}

// DispatchComplete walks all 256 opcodes and returns any that resolve to the
// fault handler — the executable form of spec.md §8's dispatch-table
// completeness property. A correctly built table returns an empty slice.
func DispatchComplete() []uint8 {
	var faulty []uint8
	for op := 0; op < 256; op++ {
		pc := uint16(0)
		c := cpu.New(&pc, nil)
		mem := &cpu.Array{}
		mem[0] = uint8(op)
		_, err := c.Step(mem)
		var dbErr *cpu.DecoderBugError
		if errors.As(err, &dbErr) {
			faulty = append(faulty, uint8(op))
		}
	}
	return faulty
}
