package cpu

import "github.com/oisee/i8080-core/pkg/inst"

// hMOV implements MOV dst,src: copy src to dst. No flags.
func hMOV(c *CPU, mem Memory, op uint8) (int, error) {
	v, _ := c.GetS(op, mem)
	c.SetD(op, mem, v)
	c.PC += 1
	return inst.Catalog[op].Cycles, nil
}

// hMVI implements MVI r,d8: r := immediate byte. No flags.
func hMVI(c *CPU, mem Memory, op uint8) (int, error) {
	imm := mem.ReadByte(c.PC + 1)
	c.SetD(op, mem, imm)
	c.PC += 2
	return inst.Catalog[op].Cycles, nil
}

// hLXI implements LXI rp,d16: load a 16-bit immediate into the pair. No
// flags.
func hLXI(c *CPU, mem Memory, op uint8) (int, error) {
	imm := readWord(mem, c.PC+1)
	c.SetRP(op, imm)
	c.PC += 3
	return inst.Catalog[op].Cycles, nil
}

// hLDAX implements LDAX rp: A := mem[BC] or mem[DE]. Only BC and DE are
// valid here; the descriptor's RP field never resolves to HL or SP.
func hLDAX(c *CPU, mem Memory, op uint8) (int, error) {
	addr := c.BC()
	if (op>>4)&0x3 == 1 {
		addr = c.DE()
	}
	c.A = mem.ReadByte(addr)
	c.PC += 1
	return inst.Catalog[op].Cycles, nil
}

// hSTAX implements STAX rp: mem[BC|DE] := A.
func hSTAX(c *CPU, mem Memory, op uint8) (int, error) {
	addr := c.BC()
	if (op>>4)&0x3 == 1 {
		addr = c.DE()
	}
	mem.WriteByte(addr, c.A)
	c.PC += 1
	return inst.Catalog[op].Cycles, nil
}

// hLDA implements LDA addr: A := mem[addr].
func hLDA(c *CPU, mem Memory, op uint8) (int, error) {
	addr := readWord(mem, c.PC+1)
	c.A = mem.ReadByte(addr)
	c.PC += 3
	return inst.Catalog[op].Cycles, nil
}

// hSTA implements STA addr: mem[addr] := A.
func hSTA(c *CPU, mem Memory, op uint8) (int, error) {
	addr := readWord(mem, c.PC+1)
	mem.WriteByte(addr, c.A)
	c.PC += 3
	return inst.Catalog[op].Cycles, nil
}

// hLHLD implements LHLD addr: L := mem[addr]; H := mem[addr+1].
func hLHLD(c *CPU, mem Memory, op uint8) (int, error) {
	addr := readWord(mem, c.PC+1)
	c.L = mem.ReadByte(addr)
	c.H = mem.ReadByte(addr + 1)
	c.PC += 3
	return inst.Catalog[op].Cycles, nil
}

// hSHLD implements SHLD addr: mem[addr] := L; mem[addr+1] := H.
func hSHLD(c *CPU, mem Memory, op uint8) (int, error) {
	addr := readWord(mem, c.PC+1)
	mem.WriteByte(addr, c.L)
	mem.WriteByte(addr+1, c.H)
	c.PC += 3
	return inst.Catalog[op].Cycles, nil
}

// hXCHG implements XCHG: swap HL with DE.
func hXCHG(c *CPU, mem Memory, op uint8) (int, error) {
	c.H, c.D = c.D, c.H
	c.L, c.E = c.E, c.L
	c.PC += 1
	return inst.Catalog[op].Cycles, nil
}
