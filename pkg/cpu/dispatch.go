package cpu

import "github.com/oisee/i8080-core/pkg/inst"

// Handler implements one instruction family: it reads operands from the
// CPU and Memory, performs the effect, advances PC (including for
// instructions that deliberately redirect it), and returns the elapsed
// cycle count.
type Handler func(c *CPU, mem Memory, op uint8) (int, error)

// dispatchTable is the 256-entry opcode table. It is built once, here, by
// walking inst.Descriptors — the same ordered list package inst uses to
// build Catalog — so there is exactly one authoritative descriptor list in
// the module and the two tables cannot silently diverge.
var dispatchTable [256]Handler

var familyHandlers = map[inst.Family]Handler{
	inst.FamMOV:   hMOV,
	inst.FamMVI:   hMVI,
	inst.FamLXI:   hLXI,
	inst.FamLDAX:  hLDAX,
	inst.FamSTAX:  hSTAX,
	inst.FamLDA:   hLDA,
	inst.FamSTA:   hSTA,
	inst.FamLHLD:  hLHLD,
	inst.FamSHLD:  hSHLD,
	inst.FamXCHG:  hXCHG,
	inst.FamADD:   hADD,
	inst.FamADI:   hADI,
	inst.FamADC:   hADC,
	inst.FamACI:   hACI,
	inst.FamSUB:   hSUB,
	inst.FamSUI:   hSUI,
	inst.FamSBB:   hSBB,
	inst.FamSBI:   hSBI,
	inst.FamINR:   hINR,
	inst.FamDCR:   hDCR,
	inst.FamINX:   hINX,
	inst.FamDCX:   hDCX,
	inst.FamDAD:   hDAD,
	inst.FamDAA:   hDAA,
	inst.FamANA:   hANA,
	inst.FamANI:   hANI,
	inst.FamORA:   hORA,
	inst.FamORI:   hORI,
	inst.FamXRA:   hXRA,
	inst.FamXRI:   hXRI,
	inst.FamCMP:   hCMP,
	inst.FamCPI:   hCPI,
	inst.FamRLC:   hRLC,
	inst.FamRRC:   hRRC,
	inst.FamRAL:   hRAL,
	inst.FamRAR:   hRAR,
	inst.FamCMA:   hCMA,
	inst.FamCMC:   hCMC,
	inst.FamSTC:   hSTC,
	inst.FamJMP:   hJMP,
	inst.FamJcc:   hJcc,
	inst.FamCALL:  hCALL,
	inst.FamCcc:   hCcc,
	inst.FamRET:   hRET,
	inst.FamRcc:   hRcc,
	inst.FamRST:   hRST,
	inst.FamPCHL:  hPCHL,
	inst.FamPUSH:  hPUSH,
	inst.FamPOP:   hPOP,
	inst.FamXTHL:  hXTHL,
	inst.FamSPHL:  hSPHL,
	inst.FamIN:    hIN,
	inst.FamOUT:   hOUT,
	inst.FamEI:    hEI,
	inst.FamDI:    hDI,
	inst.FamHLT:   hHLT,
	inst.FamNOP:   hNOP,
}

func init() {
	for i := range dispatchTable {
		dispatchTable[i] = faultHandler
	}
	for _, d := range inst.Descriptors {
		h, ok := familyHandlers[d.Family]
		if !ok {
			continue
		}
		inst.ForEachMatch(d.Pattern, func(op uint8) {
			dispatchTable[op] = h
		})
	}
}

// faultHandler is installed at every opcode no descriptor claims. A table
// built from the full descriptor list never leaves any opcode here; reaching
// it means a caller hand-built a broken table.
func faultHandler(c *CPU, mem Memory, op uint8) (int, error) {
	return 0, &DecoderBugError{Opcode: op, PC: c.PC, Dump: *c}
}
