package inst

import "fmt"

// Descriptor is one entry of the authoritative, order-sensitive instruction
// table from spec.md §6. Pattern is an 8-character bit descriptor; Family
// names the instruction it describes. Two descriptors may both match the
// same opcode byte (e.g. "01DDDSSS" and "01110110" both match 0x76) — when
// that happens the later entry in Descriptors wins, because Catalog and the
// cpu package's dispatch table are both built by iterating this slice in
// order and overwriting on every match.
type Descriptor struct {
	Pattern string
	Family  Family
}

// Descriptors is the authoritative 57-entry instruction table, reproduced in
// insertion order from spec.md §6. HLT is placed after MOV so it overwrites
// MOV's claim on opcode 0x76; NOP's "00NNN000" pattern is placed last and
// claims all eight 00NNN000 opcodes (0x00, 0x08, ..., 0x38). No earlier
// descriptor matches any of those bytes: DAA, RLC, RRC, RAL, RAR, CMA, CMC
// and STC all end in 111.
var Descriptors = []Descriptor{
	{"01DDDSSS", FamMOV},
	{"00DDD110", FamMVI},
	{"00RP0001", FamLXI},
	{"00RP1010", FamLDAX},
	{"00RP0010", FamSTAX},
	{"00111010", FamLDA},
	{"00110010", FamSTA},
	{"00101010", FamLHLD},
	{"00100010", FamSHLD},
	{"11101011", FamXCHG},
	{"10000SSS", FamADD},
	{"11000110", FamADI},
	{"10001SSS", FamADC},
	{"11001110", FamACI},
	{"10010SSS", FamSUB},
	{"11010110", FamSUI},
	{"10011SSS", FamSBB},
	{"11011110", FamSBI},
	{"00DDD100", FamINR},
	{"00DDD101", FamDCR},
	{"00RP0011", FamINX},
	{"00RP1011", FamDCX},
	{"00RP1001", FamDAD},
	{"00100111", FamDAA},
	{"10100SSS", FamANA},
	{"11100110", FamANI},
	{"10110SSS", FamORA},
	{"11110110", FamORI},
	{"10101SSS", FamXRA},
	{"11101110", FamXRI},
	{"10111SSS", FamCMP},
	{"11111110", FamCPI},
	{"00000111", FamRLC},
	{"00001111", FamRRC},
	{"00010111", FamRAL},
	{"00011111", FamRAR},
	{"00101111", FamCMA},
	{"00111111", FamCMC},
	{"00110111", FamSTC},
	{"1100N011", FamJMP},
	{"11CCC010", FamJcc},
	{"11NN1101", FamCALL},
	{"11CCC100", FamCcc},
	{"110N1001", FamRET},
	{"11CCC000", FamRcc},
	{"11NNN111", FamRST},
	{"11101001", FamPCHL},
	{"11RP0101", FamPUSH},
	{"11RP0001", FamPOP},
	{"11100011", FamXTHL},
	{"11111001", FamSPHL},
	{"11011011", FamIN},
	{"11010011", FamOUT},
	{"11111011", FamEI},
	{"11110011", FamDI},
	{"01110110", FamHLT},
	{"00NNN000", FamNOP},
}

// Info is the static metadata the catalog carries for one concrete opcode
// byte — as opposed to Descriptor, which describes a whole family of bytes.
type Info struct {
	Family Family
	// Mnemonic is disassembly text for this exact opcode, operands resolved
	// (e.g. "MOV B,C"), with "d8"/"d16"/"a16" standing in for an immediate
	// or address that follows in the instruction stream.
	Mnemonic string
	// Length is the instruction's total byte length, including any
	// immediate or address bytes.
	Length int
	// Cycles is the T-state cost spec.md §4 assigns this exact opcode —
	// already resolved for opcodes whose cost depends on the opcode byte
	// itself (MOV/ALU/INR/DCR through M cost more; which register is M is
	// fixed by the byte's SSS/DDD field). For the conditional call/return
	// families, Cycles holds the "taken" cost and AltCycles the "not taken"
	// cost; AltCycles is 0 when the instruction's cost never varies.
	Cycles    int
	AltCycles int
}

// Catalog maps every opcode byte to its resolved Info, built once at package
// load by walking Descriptors in order — the same list, and the same
// left-to-right overwrite rule, that package cpu uses to build its dispatch
// table.
var Catalog [256]Info

func init() {
	for i := range Catalog {
		Catalog[i] = Info{Family: -1, Mnemonic: "???", Length: 1}
	}
	for _, d := range Descriptors {
		fam := d.Family
		ForEachMatch(d.Pattern, func(op uint8) {
			Catalog[op] = buildInfo(fam, op)
		})
	}
}

func ddd(op uint8) uint8     { return (op >> 3) & 0x7 }
func sss(op uint8) uint8     { return op & 0x7 }
func rpCode(op uint8) uint8  { return (op >> 4) & 0x3 }
func cccCode(op uint8) uint8 { return (op >> 3) & 0x7 }

func pswName(rp uint8) string {
	if rp == 3 {
		return "PSW"
	}
	return rpNames[rp]
}

func buildInfo(fam Family, op uint8) Info {
	switch fam {
	case FamMOV:
		d, s := ddd(op), sss(op)
		cyc := 5
		if d == 6 || s == 6 {
			cyc = 7
		}
		return Info{fam, "MOV " + regNames[d] + "," + regNames[s], 1, cyc, 0}
	case FamMVI:
		d := ddd(op)
		cyc := 7
		if d == 6 {
			cyc = 10
		}
		return Info{fam, "MVI " + regNames[d] + ",d8", 2, cyc, 0}
	case FamLXI:
		return Info{fam, "LXI " + rpNames[rpCode(op)] + ",d16", 3, 10, 0}
	case FamLDAX:
		return Info{fam, "LDAX " + rpNames[rpCode(op)], 1, 7, 0}
	case FamSTAX:
		return Info{fam, "STAX " + rpNames[rpCode(op)], 1, 7, 0}
	case FamLDA:
		return Info{fam, "LDA a16", 3, 13, 0}
	case FamSTA:
		return Info{fam, "STA a16", 3, 13, 0}
	case FamLHLD:
		return Info{fam, "LHLD a16", 3, 16, 0}
	case FamSHLD:
		return Info{fam, "SHLD a16", 3, 16, 0}
	case FamXCHG:
		return Info{fam, "XCHG", 1, 5, 0}
	case FamADD, FamADC, FamSUB, FamSBB, FamANA, FamORA, FamXRA, FamCMP:
		s := sss(op)
		cyc := 4
		if s == 6 {
			cyc = 7
		}
		return Info{fam, fam.String() + " " + regNames[s], 1, cyc, 0}
	case FamADI, FamACI, FamSUI, FamSBI, FamANI, FamORI, FamXRI, FamCPI:
		return Info{fam, fam.String() + " d8", 2, 7, 0}
	case FamINR:
		d := ddd(op)
		cyc := 5
		if d == 6 {
			cyc = 10
		}
		return Info{fam, "INR " + regNames[d], 1, cyc, 0}
	case FamDCR:
		d := ddd(op)
		cyc := 5
		if d == 6 {
			cyc = 10
		}
		return Info{fam, "DCR " + regNames[d], 1, cyc, 0}
	case FamINX:
		return Info{fam, "INX " + rpNames[rpCode(op)], 1, 5, 0}
	case FamDCX:
		return Info{fam, "DCX " + rpNames[rpCode(op)], 1, 5, 0}
	case FamDAD:
		return Info{fam, "DAD " + rpNames[rpCode(op)], 1, 10, 0}
	case FamDAA:
		return Info{fam, "DAA", 1, 4, 0}
	case FamRLC:
		return Info{fam, "RLC", 1, 4, 0}
	case FamRRC:
		return Info{fam, "RRC", 1, 4, 0}
	case FamRAL:
		return Info{fam, "RAL", 1, 4, 0}
	case FamRAR:
		return Info{fam, "RAR", 1, 4, 0}
	case FamCMA:
		return Info{fam, "CMA", 1, 4, 0}
	case FamCMC:
		return Info{fam, "CMC", 1, 4, 0}
	case FamSTC:
		return Info{fam, "STC", 1, 4, 0}
	case FamJMP:
		return Info{fam, "JMP a16", 3, 10, 0}
	case FamJcc:
		return Info{fam, "J" + condNames[cccCode(op)] + " a16", 3, 10, 0}
	case FamCALL:
		return Info{fam, "CALL a16", 3, 17, 0}
	case FamCcc:
		return Info{fam, "C" + condNames[cccCode(op)] + " a16", 3, 17, 11}
	case FamRET:
		return Info{fam, "RET", 1, 10, 0}
	case FamRcc:
		return Info{fam, "R" + condNames[cccCode(op)], 1, 11, 5}
	case FamRST:
		return Info{fam, fmt.Sprintf("RST %d", ddd(op)), 1, 11, 0}
	case FamPCHL:
		return Info{fam, "PCHL", 1, 5, 0}
	case FamPUSH:
		return Info{fam, "PUSH " + pswName(rpCode(op)), 1, 11, 0}
	case FamPOP:
		return Info{fam, "POP " + pswName(rpCode(op)), 1, 10, 0}
	case FamXTHL:
		return Info{fam, "XTHL", 1, 18, 0}
	case FamSPHL:
		return Info{fam, "SPHL", 1, 5, 0}
	case FamIN:
		return Info{fam, "IN d8", 2, 10, 0}
	case FamOUT:
		return Info{fam, "OUT d8", 2, 10, 0}
	case FamEI:
		return Info{fam, "EI", 1, 4, 0}
	case FamDI:
		return Info{fam, "DI", 1, 4, 0}
	case FamHLT:
		return Info{fam, "HLT", 1, 7, 0}
	case FamNOP:
		return Info{fam, "NOP", 1, 4, 0}
	}
	return Info{fam, "???", 1, 0, 0}
}
