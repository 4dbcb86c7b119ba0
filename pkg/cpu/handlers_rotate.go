package cpu

import "github.com/oisee/i8080-core/pkg/inst"

// hRLC implements RLC: A rotates left 1, old bit 7 becomes Carry and
// reappears in bit 0.
func hRLC(c *CPU, mem Memory, op uint8) (int, error) {
	bit7 := c.A&0x80 != 0
	c.A = c.A<<1
	if bit7 {
		c.A |= 0x01
	}
	c.F.SetCarry(bit7)
	c.PC += 1
	return inst.Catalog[op].Cycles, nil
}

// hRRC implements RRC: A rotates right 1, old bit 0 becomes Carry and
// reappears in bit 7.
func hRRC(c *CPU, mem Memory, op uint8) (int, error) {
	bit0 := c.A&0x01 != 0
	c.A = c.A >> 1
	if bit0 {
		c.A |= 0x80
	}
	c.F.SetCarry(bit0)
	c.PC += 1
	return inst.Catalog[op].Cycles, nil
}

// hRAL implements RAL: A rotates left through Carry — the old Carry enters
// bit 0, old bit 7 becomes the new Carry.
func hRAL(c *CPU, mem Memory, op uint8) (int, error) {
	oldCarry := c.F.Carry()
	bit7 := c.A&0x80 != 0
	c.A = c.A << 1
	if oldCarry {
		c.A |= 0x01
	}
	c.F.SetCarry(bit7)
	c.PC += 1
	return inst.Catalog[op].Cycles, nil
}

// hRAR implements RAR: A rotates right through Carry. The 8080 rotates
// through Carry here; it does not sign-extend A the way a naive arithmetic
// shift-right would.
func hRAR(c *CPU, mem Memory, op uint8) (int, error) {
	oldCarry := c.F.Carry()
	bit0 := c.A&0x01 != 0
	c.A = c.A >> 1
	if oldCarry {
		c.A |= 0x80
	}
	c.F.SetCarry(bit0)
	c.PC += 1
	return inst.Catalog[op].Cycles, nil
}

// hCMA implements CMA: A := ~A. No flags.
func hCMA(c *CPU, mem Memory, op uint8) (int, error) {
	c.A = ^c.A
	c.PC += 1
	return inst.Catalog[op].Cycles, nil
}

// hCMC implements CMC: Carry := !Carry.
func hCMC(c *CPU, mem Memory, op uint8) (int, error) {
	c.F.SetCarry(!c.F.Carry())
	c.PC += 1
	return inst.Catalog[op].Cycles, nil
}

// hSTC implements STC: Carry := 1.
func hSTC(c *CPU, mem Memory, op uint8) (int, error) {
	c.F.SetCarry(true)
	c.PC += 1
	return inst.Catalog[op].Cycles, nil
}
