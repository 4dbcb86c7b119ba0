package inst

import (
	"fmt"
	"strings"
)

// Disassemble renders a single decoded instruction as assembly text,
// substituting Info.Mnemonic's "d8"/"d16"/"a16" placeholder with the
// instruction's actual immediate value.
func Disassemble(instr Instruction) string {
	mnem := Catalog[instr.Op].Mnemonic
	switch {
	case strings.HasSuffix(mnem, "d8"):
		return strings.TrimSuffix(mnem, "d8") + fmt.Sprintf("0x%02X", uint8(instr.Imm))
	case strings.HasSuffix(mnem, "d16"):
		return strings.TrimSuffix(mnem, "d16") + fmt.Sprintf("0x%04X", instr.Imm)
	case strings.HasSuffix(mnem, "a16"):
		return strings.TrimSuffix(mnem, "a16") + fmt.Sprintf("0x%04X", instr.Imm)
	default:
		return mnem
	}
}

// DisassembleRange decodes and renders every instruction in code starting at
// offset start, stopping at the end of code or at the first byte that
// decodes past the end of the buffer. It returns one line per instruction in
// "addr: text" form, the shape cmd/i8080ctl's disasm subcommand prints.
func DisassembleRange(code []byte, start int) []string {
	var lines []string
	pc := start
	for pc < len(code) {
		instr, ok := Decode(code, pc)
		if !ok {
			break
		}
		lines = append(lines, fmt.Sprintf("%04X: %s", pc, Disassemble(instr)))
		pc += instr.Len()
	}
	return lines
}
