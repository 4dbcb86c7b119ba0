package cpu

import "github.com/oisee/i8080-core/pkg/inst"

// hPUSH implements PUSH rp. rp code 3 pushes the program status word
// (A<<8 | F) rather than SP.
func hPUSH(c *CPU, mem Memory, op uint8) (int, error) {
	c.push(mem, c.GetRPPSW(op))
	c.PC += 1
	return inst.Catalog[op].Cycles, nil
}

// hPOP implements POP rp. rp code 3 pops into the program status word.
func hPOP(c *CPU, mem Memory, op uint8) (int, error) {
	c.SetRPPSW(op, c.pop(mem))
	c.PC += 1
	return inst.Catalog[op].Cycles, nil
}

// hXTHL implements XTHL: exchange HL with the 16-bit word at (SP).
func hXTHL(c *CPU, mem Memory, op uint8) (int, error) {
	word := readWord(mem, c.SP)
	writeWord(mem, c.SP, c.HL())
	c.setHL(word)
	c.PC += 1
	return inst.Catalog[op].Cycles, nil
}

// hSPHL implements SPHL: SP := HL.
func hSPHL(c *CPU, mem Memory, op uint8) (int, error) {
	c.SP = c.HL()
	c.PC += 1
	return inst.Catalog[op].Cycles, nil
}
