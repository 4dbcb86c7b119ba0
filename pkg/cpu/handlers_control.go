package cpu

import "github.com/oisee/i8080-core/pkg/inst"

func hJMP(c *CPU, mem Memory, op uint8) (int, error) {
	c.PC = readWord(mem, c.PC+1)
	return inst.Catalog[op].Cycles, nil
}

// hJcc implements conditional jump. Unlike Ccc/Rcc, the 8080 charges the
// same 10 cycles whether or not the branch is taken.
func hJcc(c *CPU, mem Memory, op uint8) (int, error) {
	addr := readWord(mem, c.PC+1)
	if c.Cond(op) {
		c.PC = addr
	} else {
		c.PC += 3
	}
	return inst.Catalog[op].Cycles, nil
}

// hCALL pushes PC+3 — the address of the instruction following the call —
// and jumps. PC+3, not the address of CALL itself, per the documented
// 8080 behavior.
func hCALL(c *CPU, mem Memory, op uint8) (int, error) {
	addr := readWord(mem, c.PC+1)
	c.push(mem, c.PC+3)
	c.PC = addr
	return inst.Catalog[op].Cycles, nil
}

// hCcc implements conditional call: when taken, pushes PC+3 and jumps,
// costing the family's Cycles; when not taken, PC += 3 and the call costs
// the family's AltCycles.
func hCcc(c *CPU, mem Memory, op uint8) (int, error) {
	info := inst.Catalog[op]
	if c.Cond(op) {
		addr := readWord(mem, c.PC+1)
		c.push(mem, c.PC+3)
		c.PC = addr
		return info.Cycles, nil
	}
	c.PC += 3
	return info.AltCycles, nil
}

// hRET pops the return address with no added offset.
func hRET(c *CPU, mem Memory, op uint8) (int, error) {
	c.PC = c.pop(mem)
	return inst.Catalog[op].Cycles, nil
}

// hRcc implements conditional return, costing Cycles when taken and
// AltCycles when not.
func hRcc(c *CPU, mem Memory, op uint8) (int, error) {
	info := inst.Catalog[op]
	if c.Cond(op) {
		c.PC = c.pop(mem)
		return info.Cycles, nil
	}
	c.PC += 1
	return info.AltCycles, nil
}

// hRST pushes the address following RST and jumps to vector n*8, n the
// opcode's bits [5:3].
func hRST(c *CPU, mem Memory, op uint8) (int, error) {
	n := (op >> 3) & 0x7
	c.push(mem, c.PC+1)
	c.PC = uint16(n) * 8
	return inst.Catalog[op].Cycles, nil
}

// hPCHL implements PCHL: PC := HL.
func hPCHL(c *CPU, mem Memory, op uint8) (int, error) {
	c.PC = c.HL()
	return inst.Catalog[op].Cycles, nil
}

func hEI(c *CPU, mem Memory, op uint8) (int, error) {
	c.iff = true
	c.PC += 1
	return inst.Catalog[op].Cycles, nil
}

func hDI(c *CPU, mem Memory, op uint8) (int, error) {
	c.iff = false
	c.PC += 1
	return inst.Catalog[op].Cycles, nil
}

// hHLT halts the core. The host's Step loop sees ErrHalted and decides
// whether to stop driving the core or inject an interrupt via RST.
func hHLT(c *CPU, mem Memory, op uint8) (int, error) {
	c.halted = true
	c.PC += 1
	return inst.Catalog[op].Cycles, ErrHalted
}

func hNOP(c *CPU, mem Memory, op uint8) (int, error) {
	c.PC += 1
	return inst.Catalog[op].Cycles, nil
}
