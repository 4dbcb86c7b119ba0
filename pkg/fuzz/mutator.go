// Package fuzz hunts for 8080 core invariant violations by mutating random
// instruction streams with a Metropolis-Hastings chain, biased toward
// streams that break more invariants rather than toward streams matching a
// target — the teacher's STOKE superoptimizer steered toward equivalence;
// this steers toward bugs.
package fuzz

import (
	"math/rand/v2"

	"github.com/oisee/i8080-core/pkg/inst"
)

// Mutator applies random mutations to instruction streams — ported from the
// teacher's stoke.Mutator, unchanged in shape since mutating an
// []inst.Instruction is domain-independent.
type Mutator struct {
	rng      *rand.Rand
	nonImm   []uint8
	imm8Ops  []uint8
	imm16Ops []uint8
	allOps   []uint8
	maxLen   int
}

// NewMutator creates a Mutator with cached opcode lists.
func NewMutator(rng *rand.Rand, maxLen int) *Mutator {
	return &Mutator{
		rng:      rng,
		nonImm:   inst.NonImmediateOps(),
		imm8Ops:  inst.ImmediateOps(),
		imm16Ops: inst.Imm16Ops(),
		allOps:   inst.AllOps(),
		maxLen:   maxLen,
	}
}

// Mutate applies a random mutation to seq and returns a new stream; the
// input is left untouched. Weighted the same way as the teacher's Mutator:
// 40% replace, 20% swap, 20% delete, 10% insert, 10% change-immediate.
func (m *Mutator) Mutate(seq []inst.Instruction) []inst.Instruction {
	r := m.rng.IntN(100)
	switch {
	case r < 40:
		return m.ReplaceInstruction(seq)
	case r < 60:
		return m.SwapInstructions(seq)
	case r < 80:
		return m.DeleteInstruction(seq)
	case r < 90:
		return m.InsertInstruction(seq)
	default:
		return m.ChangeImmediate(seq)
	}
}

func (m *Mutator) ReplaceInstruction(seq []inst.Instruction) []inst.Instruction {
	out := copySeq(seq)
	if len(out) == 0 {
		return append(out, m.randomInstruction())
	}
	pos := m.rng.IntN(len(out))
	out[pos] = m.randomInstruction()
	return out
}

func (m *Mutator) SwapInstructions(seq []inst.Instruction) []inst.Instruction {
	out := copySeq(seq)
	if len(out) < 2 {
		return out
	}
	pos := m.rng.IntN(len(out) - 1)
	out[pos], out[pos+1] = out[pos+1], out[pos]
	return out
}

func (m *Mutator) DeleteInstruction(seq []inst.Instruction) []inst.Instruction {
	if len(seq) <= 1 {
		return copySeq(seq)
	}
	pos := m.rng.IntN(len(seq))
	out := make([]inst.Instruction, 0, len(seq)-1)
	out = append(out, seq[:pos]...)
	out = append(out, seq[pos+1:]...)
	return out
}

func (m *Mutator) InsertInstruction(seq []inst.Instruction) []inst.Instruction {
	if len(seq) >= m.maxLen {
		return m.ReplaceInstruction(seq)
	}
	pos := m.rng.IntN(len(seq) + 1)
	newInstr := m.randomInstruction()
	out := make([]inst.Instruction, 0, len(seq)+1)
	out = append(out, seq[:pos]...)
	out = append(out, newInstr)
	out = append(out, seq[pos:]...)
	return out
}

// ChangeImmediate randomizes the immediate value of one instruction in seq
// that carries one, falling back to ReplaceInstruction if none do.
func (m *Mutator) ChangeImmediate(seq []inst.Instruction) []inst.Instruction {
	var immPos []int
	for i, instr := range seq {
		if inst.HasImmediate(instr.Op) {
			immPos = append(immPos, i)
		}
	}
	if len(immPos) == 0 {
		return m.ReplaceInstruction(seq)
	}
	out := copySeq(seq)
	pos := immPos[m.rng.IntN(len(immPos))]
	if inst.HasImm16(out[pos].Op) {
		out[pos].Imm = uint16(m.rng.IntN(65536))
	} else {
		out[pos].Imm = uint16(m.rng.IntN(256))
	}
	return out
}

func (m *Mutator) randomInstruction() inst.Instruction {
	op := m.allOps[m.rng.IntN(len(m.allOps))]
	var imm uint16
	if inst.HasImm16(op) {
		imm = uint16(m.rng.IntN(65536))
	} else if inst.HasImmediate(op) {
		imm = uint16(m.rng.IntN(256))
	}
	return inst.Instruction{Op: op, Imm: imm}
}

func copySeq(seq []inst.Instruction) []inst.Instruction {
	out := make([]inst.Instruction, len(seq))
	copy(out, seq)
	return out
}
