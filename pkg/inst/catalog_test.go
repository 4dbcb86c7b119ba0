package inst

import "testing"

// TestCatalogCompleteness verifies every one of the 256 opcode bytes got a
// resolved catalog entry from Descriptors — no byte should be left at the
// "???" placeholder init() seeds the table with.
func TestCatalogCompleteness(t *testing.T) {
	for op := 0; op < 256; op++ {
		info := Catalog[op]
		if info.Family < 0 {
			t.Errorf("opcode 0x%02X has no family assigned", op)
		}
		if info.Mnemonic == "???" {
			t.Errorf("opcode 0x%02X has no mnemonic", op)
		}
		if info.Length < 1 || info.Length > 3 {
			t.Errorf("opcode 0x%02X: length %d out of range", op, info.Length)
		}
		if info.Cycles == 0 {
			t.Errorf("opcode 0x%02X (%s): 0 cycles", op, info.Mnemonic)
		}
	}
}

// TestKnownEncodings checks a sample of opcodes against their documented
// family, length and cycle count from spec.md §4/§6.
func TestKnownEncodings(t *testing.T) {
	cases := []struct {
		op     uint8
		family Family
		length int
		cycles int
	}{
		{0x00, FamNOP, 1, 4},
		{0x76, FamHLT, 1, 7},
		{0x41, FamMOV, 1, 5},   // MOV B,C
		{0x46, FamMOV, 1, 7},   // MOV B,M
		{0x70, FamMOV, 1, 7},   // MOV M,B
		{0x06, FamMVI, 2, 7},   // MVI B,d8
		{0x36, FamMVI, 2, 10},  // MVI M,d8
		{0x80, FamADD, 1, 4},   // ADD B
		{0x86, FamADD, 1, 7},   // ADD M
		{0xC6, FamADI, 2, 7},   // ADI d8
		{0x04, FamINR, 1, 5},   // INR B
		{0x34, FamINR, 1, 10},  // INR M
		{0x01, FamLXI, 3, 10},  // LXI B,d16
		{0xC3, FamJMP, 3, 10},  // JMP
		{0xCD, FamCALL, 3, 17}, // CALL
		{0xC9, FamRET, 1, 10},  // RET
		{0xC4, FamCcc, 3, 17},  // CNZ
		{0xC0, FamRcc, 1, 11},  // RNZ
		{0xC5, FamPUSH, 1, 11}, // PUSH B
		{0xC1, FamPOP, 1, 10},  // POP B
		{0xE3, FamXTHL, 1, 18},
		{0xDB, FamIN, 2, 10},
		{0xD3, FamOUT, 2, 10},
		{0x27, FamDAA, 1, 4},
	}
	for _, c := range cases {
		info := Catalog[c.op]
		if info.Family != c.family {
			t.Errorf("opcode 0x%02X: family = %s, want %s", c.op, info.Family, c.family)
		}
		if info.Length != c.length {
			t.Errorf("opcode 0x%02X (%s): length = %d, want %d", c.op, info.Mnemonic, info.Length, c.length)
		}
		if info.Cycles != c.cycles {
			t.Errorf("opcode 0x%02X (%s): cycles = %d, want %d", c.op, info.Mnemonic, info.Cycles, c.cycles)
		}
	}
}

// TestConditionalAltCycles verifies the not-taken cost of Ccc/Rcc opcodes.
func TestConditionalAltCycles(t *testing.T) {
	if got := Catalog[0xC4].AltCycles; got != 11 {
		t.Errorf("CNZ AltCycles = %d, want 11", got)
	}
	if got := Catalog[0xC0].AltCycles; got != 5 {
		t.Errorf("RNZ AltCycles = %d, want 5", got)
	}
	if got := Catalog[0xC3].AltCycles; got != 0 {
		t.Errorf("JMP AltCycles = %d, want 0 (unconditional)", got)
	}
}

// TestHLTOverwritesMOV confirms HLT's descriptor, placed after MOV's in
// Descriptors, wins ownership of opcode 0x76.
func TestHLTOverwritesMOV(t *testing.T) {
	if Catalog[0x76].Family != FamHLT {
		t.Errorf("opcode 0x76: family = %s, want FamHLT", Catalog[0x76].Family)
	}
}

// TestNOPFillsRemainder confirms NOP's "00NNN000" pattern, placed last,
// claims all eight 00NNN000 opcodes. The reserved map lists DAA/RLC/RRC/RAL/
// RAR/CMA/CMC/STC, whose opcodes end in 111, so none of them is visited by
// the loop and every visited opcode must be NOP.
func TestNOPFillsRemainder(t *testing.T) {
	reserved := map[uint8]Family{
		0x07: FamRLC, 0x0F: FamRRC, 0x17: FamRAL, 0x1F: FamRAR,
		0x27: FamDAA, 0x2F: FamCMA, 0x37: FamSTC, 0x3F: FamCMC,
	}
	for n := uint8(0); n < 8; n++ {
		op := n<<3 | 0x00
		want, isReserved := reserved[op]
		if isReserved {
			if Catalog[op].Family != want {
				t.Errorf("opcode 0x%02X: family = %s, want %s", op, Catalog[op].Family, want)
			}
			continue
		}
		if Catalog[op].Family != FamNOP {
			t.Errorf("opcode 0x%02X: family = %s, want FamNOP", op, Catalog[op].Family)
		}
	}
}

func TestDisassemble(t *testing.T) {
	tests := []struct {
		instr Instruction
		want  string
	}{
		{Instruction{Op: 0x00}, "NOP"},
		{Instruction{Op: 0x41}, "MOV B,C"},
		{Instruction{Op: 0x06, Imm: 0x42}, "MVI B,0x42"},
		{Instruction{Op: 0x01, Imm: 0x1234}, "LXI B,0x1234"},
		{Instruction{Op: 0xC3, Imm: 0x0100}, "JMP 0x0100"},
	}
	for _, tc := range tests {
		if got := Disassemble(tc.instr); got != tc.want {
			t.Errorf("Disassemble(%+v) = %q, want %q", tc.instr, got, tc.want)
		}
	}
}

func TestDecodeTruncated(t *testing.T) {
	code := []byte{0x01, 0x34} // LXI B,d16 needs 3 bytes, only 2 present
	if _, ok := Decode(code, 0); ok {
		t.Error("Decode should report truncated instruction as not ok")
	}
}

func TestDisassembleRange(t *testing.T) {
	code := []byte{0x00, 0x3E, 0x05, 0x76} // NOP; MVI A,5; HLT
	lines := DisassembleRange(code, 0)
	want := []string{"0000: NOP", "0001: MVI A,0x05", "0003: HLT"}
	if len(lines) != len(want) {
		t.Fatalf("DisassembleRange: got %d lines, want %d", len(lines), len(want))
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d: got %q, want %q", i, lines[i], want[i])
		}
	}
}
