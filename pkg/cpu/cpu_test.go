package cpu

import (
	"errors"
	"testing"
)

func newArray(code ...uint8) *Array {
	var a Array
	copy(a[:], code)
	return &a
}

// TestScenario1 is spec.md §8 scenario 1: MVI then RET.
func TestScenario1(t *testing.T) {
	sp := uint16(0x1000)
	pc := uint16(0)
	c := New(&pc, &sp)
	mem := newArray(0x3E, 0x42, 0xC9)
	mem.WriteByte(0x1000, 0xAD)
	mem.WriteByte(0x1001, 0xDE)

	cycles, err := c.Step(mem)
	if err != nil {
		t.Fatalf("step 1: %v", err)
	}
	if c.A != 0x42 || c.PC != 2 || cycles != 7 {
		t.Fatalf("after MVI A,0x42: A=%#x PC=%#x cycles=%d", c.A, c.PC, cycles)
	}

	cycles, err = c.Step(mem)
	if err != nil {
		t.Fatalf("step 2: %v", err)
	}
	if c.PC != 0xDEAD || cycles != 10 {
		t.Fatalf("after RET: PC=%#x cycles=%d", c.PC, cycles)
	}
}

// TestScenario2 is spec.md §8 scenario 2: ADI with a worked flag result.
func TestScenario2(t *testing.T) {
	pc := uint16(0)
	c := New(&pc, nil)
	c.A = 0x0F
	mem := newArray(0xC6, 0x01)

	cycles, err := c.Step(mem)
	if err != nil {
		t.Fatalf("step: %v", err)
	}
	if c.A != 0x10 {
		t.Fatalf("A = %#x, want 0x10", c.A)
	}
	if c.F.Zero() || c.F.Sign() || c.F.Parity() || !c.F.Aux() || c.F.Carry() {
		t.Fatalf("flags: Z=%v S=%v P=%v A=%v C=%v", c.F.Zero(), c.F.Sign(), c.F.Parity(), c.F.Aux(), c.F.Carry())
	}
	if c.PC != 2 || cycles != 7 {
		t.Fatalf("PC=%#x cycles=%d", c.PC, cycles)
	}
}

// TestScenario3 is spec.md §8 scenario 3: RLC.
func TestScenario3(t *testing.T) {
	pc := uint16(0)
	c := New(&pc, nil)
	c.A = 0x80
	mem := newArray(0x07)

	cycles, err := c.Step(mem)
	if err != nil {
		t.Fatalf("step: %v", err)
	}
	if c.A != 0x01 || !c.F.Carry() || c.PC != 1 || cycles != 4 {
		t.Fatalf("A=%#x Carry=%v PC=%#x cycles=%d", c.A, c.F.Carry(), c.PC, cycles)
	}
}

// TestScenario4 is spec.md §8 scenario 4: XTHL.
func TestScenario4(t *testing.T) {
	sp := uint16(0x1000)
	pc := uint16(0)
	c := New(&pc, &sp)
	c.setHL(0x1234)
	mem := newArray(0xE3)
	mem.WriteByte(0x1000, 0xCD)
	mem.WriteByte(0x1001, 0xAB)

	cycles, err := c.Step(mem)
	if err != nil {
		t.Fatalf("step: %v", err)
	}
	if c.HL() != 0xABCD {
		t.Fatalf("HL = %#x, want 0xABCD", c.HL())
	}
	if mem.ReadByte(0x1000) != 0x34 || mem.ReadByte(0x1001) != 0x12 {
		t.Fatalf("stack word = %#x %#x, want 0x34 0x12", mem.ReadByte(0x1000), mem.ReadByte(0x1001))
	}
	if c.SP != 0x1000 || cycles != 18 {
		t.Fatalf("SP=%#x cycles=%d", c.SP, cycles)
	}
}

// TestScenario5 is spec.md §8 scenario 5: CALL.
func TestScenario5(t *testing.T) {
	sp := uint16(0x1000)
	pc := uint16(0x0100)
	c := New(&pc, &sp)
	mem := newArray()
	mem.WriteByte(0x0100, 0xCD)
	mem.WriteByte(0x0101, 0x00)
	mem.WriteByte(0x0102, 0x02)

	cycles, err := c.Step(mem)
	if err != nil {
		t.Fatalf("step: %v", err)
	}
	if c.PC != 0x0200 || c.SP != 0x0FFE || cycles != 17 {
		t.Fatalf("PC=%#x SP=%#x cycles=%d", c.PC, c.SP, cycles)
	}
	if mem.ReadByte(0x0FFE) != 0x03 || mem.ReadByte(0x0FFF) != 0x01 {
		t.Fatalf("pushed return addr = %#x %#x, want 0x03 0x01", mem.ReadByte(0x0FFE), mem.ReadByte(0x0FFF))
	}
}

// TestScenario6 is spec.md §8 scenario 6: DAA.
func TestScenario6(t *testing.T) {
	pc := uint16(0)
	c := New(&pc, nil)
	c.A = 0x9B
	mem := newArray(0x27)

	if _, err := c.Step(mem); err != nil {
		t.Fatalf("step: %v", err)
	}
	if c.A != 0x01 || !c.F.Carry() || !c.F.Aux() {
		t.Fatalf("A=%#x Carry=%v Aux=%v", c.A, c.F.Carry(), c.F.Aux())
	}
}

// TestDAAAuxClearedOnNoOverflow covers the case scenario 6 doesn't: entering
// the low-nibble +6 branch because Aux was already set, not because the low
// nibble exceeds 9, must not leave Aux set unless the +6 itself overflows
// bit 3.
func TestDAAAuxClearedOnNoOverflow(t *testing.T) {
	pc := uint16(0)
	c := New(&pc, nil)
	c.A = 0x30
	c.F.SetAux(true)
	c.F.SetCarry(false)
	mem := newArray(0x27)

	if _, err := c.Step(mem); err != nil {
		t.Fatalf("step: %v", err)
	}
	if c.A != 0x36 || c.F.Aux() {
		t.Fatalf("A=%#x Aux=%v, want A=0x36 Aux=false", c.A, c.F.Aux())
	}
}

// TestReservedFlagBits checks spec.md §8: bits 1, 3, 5 stay at their
// 8080-reserved values (1, 0, 0) across every instruction, on the live F
// register itself — not only through the Byte() accessor.
func TestReservedFlagBits(t *testing.T) {
	pc := uint16(0)
	c := New(&pc, nil)
	c.F = 0xFF // deliberately corrupt, to prove a flag-touching instruction re-pins it
	mem := newArray(0xC6, 0x00)
	if _, err := c.Step(mem); err != nil {
		t.Fatalf("step: %v", err)
	}
	b := uint8(c.F)
	if b&0x20 != 0 || b&0x08 != 0 || b&0x02 == 0 {
		t.Fatalf("F = %#08b, reserved bits not pinned on the live register", b)
	}
}

// TestResetFlagsArePinned checks that New() leaves F with bit 1 set and
// bits 3, 5 clear even before any instruction runs.
func TestResetFlagsArePinned(t *testing.T) {
	c := New(nil, nil)
	b := uint8(c.F)
	if b&0x20 != 0 || b&0x08 != 0 || b&0x02 == 0 {
		t.Fatalf("New() F = %#08b, reserved bits not pinned at reset", b)
	}
}

// TestDispatchCompleteness checks spec.md §8: every opcode maps to a
// non-fault handler.
func TestDispatchCompleteness(t *testing.T) {
	for op := 0; op < 256; op++ {
		pc := uint16(op)
		c := New(&pc, nil)
		h := dispatchTable[op]
		var dbErr *DecoderBugError
		if _, err := h(c, newArray(), uint8(op)); errors.As(err, &dbErr) {
			t.Errorf("opcode 0x%02X: dispatched to fault handler", op)
		}
	}
}

// TestRPRoundTrip checks spec.md §8: SetRP(GetRP(op), op) is a no-op.
func TestRPRoundTrip(t *testing.T) {
	for op := 0; op <= 0xFF; op++ {
		pc := uint16(0)
		c := New(&pc, nil)
		c.B, c.C, c.D, c.E, c.H, c.L, c.SP = 0x11, 0x22, 0x33, 0x44, 0x55, 0x66, 0x7788
		before := *c
		c.SetRP(uint8(op), c.GetRP(uint8(op)))
		if *c != before {
			t.Fatalf("opcode 0x%02X: SetRP(GetRP(op), op) mutated state", op)
		}
	}
}

// TestCMARoundTrip checks spec.md §8: CMA;CMA restores A.
func TestCMARoundTrip(t *testing.T) {
	pc := uint16(0)
	c := New(&pc, nil)
	c.A = 0x5A
	mem := newArray(0x2F, 0x2F)
	c.Step(mem)
	c.Step(mem)
	if c.A != 0x5A {
		t.Fatalf("A = %#x after CMA;CMA, want 0x5A", c.A)
	}
}

// TestPushPopRoundTrip checks spec.md §8: PUSH rp;POP rp restores rp and
// leaves SP unchanged.
func TestPushPopRoundTrip(t *testing.T) {
	sp := uint16(0x2000)
	pc := uint16(0)
	c := New(&pc, &sp)
	c.B, c.C = 0x12, 0x34
	mem := newArray(0xC5, 0xC1) // PUSH B; POP B
	c.Step(mem)
	c.B, c.C = 0, 0
	c.Step(mem)
	if c.B != 0x12 || c.C != 0x34 {
		t.Fatalf("BC = %02x%02x, want 1234", c.B, c.C)
	}
	if c.SP != 0x2000 {
		t.Fatalf("SP = %#x, want 0x2000", c.SP)
	}
}

// TestXCHGRoundTrip checks spec.md §8: XCHG;XCHG restores HL and DE.
func TestXCHGRoundTrip(t *testing.T) {
	pc := uint16(0)
	c := New(&pc, nil)
	c.setHL(0x1111)
	c.setDE(0x2222)
	mem := newArray(0xEB, 0xEB)
	c.Step(mem)
	c.Step(mem)
	if c.HL() != 0x1111 || c.DE() != 0x2222 {
		t.Fatalf("HL=%#x DE=%#x after XCHG;XCHG", c.HL(), c.DE())
	}
}

// TestXTHLRoundTrip checks spec.md §8: XTHL;XTHL restores HL and the word
// at (SP).
func TestXTHLRoundTrip(t *testing.T) {
	sp := uint16(0x3000)
	pc := uint16(0)
	c := New(&pc, &sp)
	c.setHL(0xBEEF)
	mem := newArray(0xE3, 0xE3)
	mem.WriteByte(0x3000, 0x01)
	mem.WriteByte(0x3001, 0x02)
	c.Step(mem)
	c.Step(mem)
	if c.HL() != 0xBEEF {
		t.Fatalf("HL = %#x after XTHL;XTHL, want 0xBEEF", c.HL())
	}
	if mem.ReadByte(0x3000) != 0x01 || mem.ReadByte(0x3001) != 0x02 {
		t.Fatalf("stack word corrupted by XTHL;XTHL")
	}
}

// TestHLTReturnsErrHalted checks HLT surfaces ErrHalted without being a
// fatal error.
func TestHLTReturnsErrHalted(t *testing.T) {
	pc := uint16(0)
	c := New(&pc, nil)
	mem := newArray(0x76)
	_, err := c.Step(mem)
	if err != ErrHalted {
		t.Fatalf("err = %v, want ErrHalted", err)
	}
	if _, err := c.Step(mem); err != ErrHalted {
		t.Fatalf("second Step after HLT should still report ErrHalted, got %v", err)
	}
}

// TestRSTWakesHaltedCore checks a host-injected RST resumes a halted core.
func TestRSTWakesHaltedCore(t *testing.T) {
	sp := uint16(0x4000)
	pc := uint16(0)
	c := New(&pc, &sp)
	mem := newArray(0x76)
	c.Step(mem) // HLT
	c.RST(mem, 1)
	if c.PC != 8 {
		t.Fatalf("PC = %#x after RST 1, want 8", c.PC)
	}
	if _, err := c.Step(mem); err == ErrHalted {
		t.Fatal("core still reports halted after RST")
	}
}
