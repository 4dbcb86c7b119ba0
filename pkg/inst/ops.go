package inst

// AllOps returns every opcode byte, 0x00 through 0xFF.
func AllOps() []uint8 {
	ops := make([]uint8, 256)
	for i := range ops {
		ops[i] = uint8(i)
	}
	return ops
}

// NonImmediateOps returns every 1-byte opcode.
func NonImmediateOps() []uint8 {
	return opsOfLength(1)
}

// ImmediateOps returns every 2-byte opcode (one 8-bit immediate).
func ImmediateOps() []uint8 {
	return opsOfLength(2)
}

// Imm16Ops returns every 3-byte opcode (one 16-bit immediate/address).
func Imm16Ops() []uint8 {
	return opsOfLength(3)
}

func opsOfLength(n int) []uint8 {
	var ops []uint8
	for i := 0; i < 256; i++ {
		if Catalog[i].Length == n {
			ops = append(ops, uint8(i))
		}
	}
	return ops
}

// HasImmediate reports whether op carries an 8- or 16-bit immediate operand.
func HasImmediate(op uint8) bool {
	return Catalog[op].Length > 1
}

// HasImm16 reports whether op carries a 16-bit immediate/address operand.
func HasImm16(op uint8) bool {
	return Catalog[op].Length == 3
}

// SeqByteSize returns the total encoded length of an instruction sequence.
func SeqByteSize(seq []Instruction) int {
	n := 0
	for _, instr := range seq {
		n += instr.Len()
	}
	return n
}

// SeqCycles returns the total (taken-path) cycle cost of an instruction
// sequence.
func SeqCycles(seq []Instruction) int {
	n := 0
	for _, instr := range seq {
		n += Catalog[instr.Op].Cycles
	}
	return n
}
