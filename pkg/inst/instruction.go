package inst

// Instruction is a decoded 8080 instruction: the opcode byte plus whatever
// immediate or address operand followed it in the instruction stream. Imm
// holds an 8-bit immediate in its low byte for 2-byte instructions, or a
// 16-bit address/immediate for 3-byte instructions; it is unused (left 0)
// for 1-byte instructions.
type Instruction struct {
	Op  uint8
	Imm uint16
}

// Info returns the catalog entry for this instruction's opcode.
func (i Instruction) Info() Info {
	return Catalog[i.Op]
}

// Len returns the instruction's encoded length in bytes (1, 2 or 3).
func (i Instruction) Len() int {
	return Catalog[i.Op].Length
}

// Decode reads one instruction starting at code[pc]. It returns the zero
// Instruction and ok=false if the opcode's operand bytes run past the end
// of code.
func Decode(code []byte, pc int) (instr Instruction, ok bool) {
	if pc < 0 || pc >= len(code) {
		return Instruction{}, false
	}
	op := code[pc]
	length := Catalog[op].Length
	if pc+length > len(code) {
		return Instruction{}, false
	}
	instr.Op = op
	switch length {
	case 2:
		instr.Imm = uint16(code[pc+1])
	case 3:
		instr.Imm = uint16(code[pc+1]) | uint16(code[pc+2])<<8
	}
	return instr, true
}
