package cpu

import "github.com/oisee/i8080-core/pkg/inst"

// addWithCarry computes a+b(+cin), updates Carry, Aux, Sign, Zero, Parity,
// and returns the 8-bit result.
func (c *CPU) addWithCarry(a, b uint8, cin bool) uint8 {
	var ci uint16
	if cin {
		ci = 1
	}
	sum := uint16(a) + uint16(b) + ci
	result := uint8(sum)
	aux := (a&0x0F)+(b&0x0F)+uint8(ci) > 0x0F
	c.F.SetCarry(sum > 0xFF)
	c.F.SetAux(aux)
	c.F.SetSZP(result)
	return result
}

// subWithBorrow computes a-b(-bin), updates Carry (set on borrow), Aux,
// Sign, Zero, Parity, and returns the 8-bit result.
func (c *CPU) subWithBorrow(a, b uint8, bin bool) uint8 {
	var bi int
	if bin {
		bi = 1
	}
	diff := int(a) - int(b) - bi
	result := uint8(diff)
	auxBorrow := int(a&0x0F)-int(b&0x0F)-bi < 0
	c.F.SetCarry(diff < 0)
	c.F.SetAux(auxBorrow)
	c.F.SetSZP(result)
	return result
}

func hADD(c *CPU, mem Memory, op uint8) (int, error) {
	s, _ := c.GetS(op, mem)
	c.A = c.addWithCarry(c.A, s, false)
	c.PC += 1
	return inst.Catalog[op].Cycles, nil
}

func hADI(c *CPU, mem Memory, op uint8) (int, error) {
	s := mem.ReadByte(c.PC + 1)
	c.A = c.addWithCarry(c.A, s, false)
	c.PC += 2
	return inst.Catalog[op].Cycles, nil
}

func hADC(c *CPU, mem Memory, op uint8) (int, error) {
	s, _ := c.GetS(op, mem)
	c.A = c.addWithCarry(c.A, s, c.F.Carry())
	c.PC += 1
	return inst.Catalog[op].Cycles, nil
}

func hACI(c *CPU, mem Memory, op uint8) (int, error) {
	s := mem.ReadByte(c.PC + 1)
	c.A = c.addWithCarry(c.A, s, c.F.Carry())
	c.PC += 2
	return inst.Catalog[op].Cycles, nil
}

func hSUB(c *CPU, mem Memory, op uint8) (int, error) {
	s, _ := c.GetS(op, mem)
	c.A = c.subWithBorrow(c.A, s, false)
	c.PC += 1
	return inst.Catalog[op].Cycles, nil
}

func hSUI(c *CPU, mem Memory, op uint8) (int, error) {
	s := mem.ReadByte(c.PC + 1)
	c.A = c.subWithBorrow(c.A, s, false)
	c.PC += 2
	return inst.Catalog[op].Cycles, nil
}

func hSBB(c *CPU, mem Memory, op uint8) (int, error) {
	s, _ := c.GetS(op, mem)
	c.A = c.subWithBorrow(c.A, s, c.F.Carry())
	c.PC += 1
	return inst.Catalog[op].Cycles, nil
}

func hSBI(c *CPU, mem Memory, op uint8) (int, error) {
	s := mem.ReadByte(c.PC + 1)
	c.A = c.subWithBorrow(c.A, s, c.F.Carry())
	c.PC += 2
	return inst.Catalog[op].Cycles, nil
}

func hCMP(c *CPU, mem Memory, op uint8) (int, error) {
	s, _ := c.GetS(op, mem)
	c.subWithBorrow(c.A, s, false) // flags only, A unchanged
	c.PC += 1
	return inst.Catalog[op].Cycles, nil
}

func hCPI(c *CPU, mem Memory, op uint8) (int, error) {
	s := mem.ReadByte(c.PC + 1)
	c.subWithBorrow(c.A, s, false)
	c.PC += 2
	return inst.Catalog[op].Cycles, nil
}

// hINR implements INR r: r := r+1. Carry is deliberately left untouched —
// the one arithmetic instruction besides DCR that does so.
func hINR(c *CPU, mem Memory, op uint8) (int, error) {
	v, code := c.GetD(op, mem)
	res := v + 1
	c.F.SetAux((v&0x0F)+1 > 0x0F)
	c.F.SetSZP(res)
	c.regWrite(code, mem, res)
	c.PC += 1
	return inst.Catalog[op].Cycles, nil
}

// hDCR implements DCR r: r := r-1. Carry untouched.
func hDCR(c *CPU, mem Memory, op uint8) (int, error) {
	v, code := c.GetD(op, mem)
	res := v - 1
	c.F.SetAux((v & 0x0F) != 0)
	c.F.SetSZP(res)
	c.regWrite(code, mem, res)
	c.PC += 1
	return inst.Catalog[op].Cycles, nil
}

func hINX(c *CPU, mem Memory, op uint8) (int, error) {
	c.SetRP(op, c.GetRP(op)+1)
	c.PC += 1
	return inst.Catalog[op].Cycles, nil
}

func hDCX(c *CPU, mem Memory, op uint8) (int, error) {
	c.SetRP(op, c.GetRP(op)-1)
	c.PC += 1
	return inst.Catalog[op].Cycles, nil
}

// hDAD implements DAD rp: HL := HL+rp. Only Carry is updated.
func hDAD(c *CPU, mem Memory, op uint8) (int, error) {
	sum := uint32(c.HL()) + uint32(c.GetRP(op))
	c.setHL(uint16(sum))
	c.F.SetCarry(sum > 0xFFFF)
	c.PC += 1
	return inst.Catalog[op].Cycles, nil
}

// hDAA implements decimal-adjust accumulator, per spec.md §4 and the
// worked example in §8 scenario 6.
func hDAA(c *CPU, mem Memory, op uint8) (int, error) {
	a := c.A
	carry := c.F.Carry()
	if a&0x0F > 9 || c.F.Aux() {
		c.F.SetAux((a&0x0F)+6 > 0x0F)
		a += 6
	} else {
		c.F.SetAux(false)
	}
	if a&0xF0 > 0x90 || c.F.Carry() {
		a += 0x60
		carry = true
	}
	c.F.SetCarry(carry)
	c.F.SetSZP(a)
	c.A = a
	c.PC += 1
	return inst.Catalog[op].Cycles, nil
}

// hANA implements ANA/ANI r: A := A & s. Carry is cleared; Aux is set from
// bit 3 of (A | operand) before the AND — the documented 8080 behavior,
// not the Aux-clearing variant some sources show.
func hANA(c *CPU, mem Memory, op uint8) (int, error) {
	s, _ := c.GetS(op, mem)
	c.F.SetAux((c.A|s)&0x08 != 0)
	c.A &= s
	c.F.SetCarry(false)
	c.F.SetSZP(c.A)
	c.PC += 1
	return inst.Catalog[op].Cycles, nil
}

func hANI(c *CPU, mem Memory, op uint8) (int, error) {
	s := mem.ReadByte(c.PC + 1)
	c.F.SetAux((c.A|s)&0x08 != 0)
	c.A &= s
	c.F.SetCarry(false)
	c.F.SetSZP(c.A)
	c.PC += 2
	return inst.Catalog[op].Cycles, nil
}

func hORA(c *CPU, mem Memory, op uint8) (int, error) {
	s, _ := c.GetS(op, mem)
	c.A |= s
	c.F.SetCarry(false)
	c.F.SetAux(false)
	c.F.SetSZP(c.A)
	c.PC += 1
	return inst.Catalog[op].Cycles, nil
}

func hORI(c *CPU, mem Memory, op uint8) (int, error) {
	s := mem.ReadByte(c.PC + 1)
	c.A |= s
	c.F.SetCarry(false)
	c.F.SetAux(false)
	c.F.SetSZP(c.A)
	c.PC += 2
	return inst.Catalog[op].Cycles, nil
}

func hXRA(c *CPU, mem Memory, op uint8) (int, error) {
	s, _ := c.GetS(op, mem)
	c.A ^= s
	c.F.SetCarry(false)
	c.F.SetAux(false)
	c.F.SetSZP(c.A)
	c.PC += 1
	return inst.Catalog[op].Cycles, nil
}

func hXRI(c *CPU, mem Memory, op uint8) (int, error) {
	s := mem.ReadByte(c.PC + 1)
	c.A ^= s
	c.F.SetCarry(false)
	c.F.SetAux(false)
	c.F.SetSZP(c.A)
	c.PC += 2
	return inst.Catalog[op].Cycles, nil
}
