package inst

// Family names the logical instruction a descriptor pattern stands for. It
// exists so the single authoritative descriptor list in Descriptors can
// drive both Catalog (this package) and the handler dispatch table
// (package cpu) without the pattern strings being duplicated anywhere.
type Family int

const (
	FamMOV Family = iota
	FamMVI
	FamLXI
	FamLDAX
	FamSTAX
	FamLDA
	FamSTA
	FamLHLD
	FamSHLD
	FamXCHG
	FamADD
	FamADI
	FamADC
	FamACI
	FamSUB
	FamSUI
	FamSBB
	FamSBI
	FamINR
	FamDCR
	FamINX
	FamDCX
	FamDAD
	FamDAA
	FamANA
	FamANI
	FamORA
	FamORI
	FamXRA
	FamXRI
	FamCMP
	FamCPI
	FamRLC
	FamRRC
	FamRAL
	FamRAR
	FamCMA
	FamCMC
	FamSTC
	FamJMP
	FamJcc
	FamCALL
	FamCcc
	FamRET
	FamRcc
	FamRST
	FamPCHL
	FamPUSH
	FamPOP
	FamXTHL
	FamSPHL
	FamIN
	FamOUT
	FamEI
	FamDI
	FamHLT
	FamNOP

	FamilyCount
)

var familyNames = [FamilyCount]string{
	FamMOV: "MOV", FamMVI: "MVI", FamLXI: "LXI", FamLDAX: "LDAX", FamSTAX: "STAX",
	FamLDA: "LDA", FamSTA: "STA", FamLHLD: "LHLD", FamSHLD: "SHLD", FamXCHG: "XCHG",
	FamADD: "ADD", FamADI: "ADI", FamADC: "ADC", FamACI: "ACI",
	FamSUB: "SUB", FamSUI: "SUI", FamSBB: "SBB", FamSBI: "SBI",
	FamINR: "INR", FamDCR: "DCR", FamINX: "INX", FamDCX: "DCX", FamDAD: "DAD",
	FamDAA: "DAA", FamANA: "ANA", FamANI: "ANI", FamORA: "ORA", FamORI: "ORI",
	FamXRA: "XRA", FamXRI: "XRI", FamCMP: "CMP", FamCPI: "CPI",
	FamRLC: "RLC", FamRRC: "RRC", FamRAL: "RAL", FamRAR: "RAR",
	FamCMA: "CMA", FamCMC: "CMC", FamSTC: "STC",
	FamJMP: "JMP", FamJcc: "Jcc", FamCALL: "CALL", FamCcc: "Ccc",
	FamRET: "RET", FamRcc: "Rcc", FamRST: "RST", FamPCHL: "PCHL",
	FamPUSH: "PUSH", FamPOP: "POP", FamXTHL: "XTHL", FamSPHL: "SPHL",
	FamIN: "IN", FamOUT: "OUT", FamEI: "EI", FamDI: "DI", FamHLT: "HLT", FamNOP: "NOP",
}

// String returns the family's mnemonic stem, e.g. "MOV" or "Jcc".
func (f Family) String() string {
	if f < 0 || f >= FamilyCount {
		return "???"
	}
	return familyNames[f]
}

// regNames maps an SSS/DDD register code (0..7) to its assembly name.
// Code 6 is the M pseudo-register: memory at (HL).
var regNames = [8]string{"B", "C", "D", "E", "H", "L", "M", "A"}

// rpNames maps an RP pair code (0..3) to its assembly name in
// arithmetic/INX/DCX/DAD/LXI contexts (code 3 is SP).
var rpNames = [4]string{"B", "D", "H", "SP"}

// condNames maps a CCC condition code (0..7) to its mnemonic.
var condNames = [8]string{"NZ", "Z", "NC", "C", "PO", "PE", "P", "M"}
