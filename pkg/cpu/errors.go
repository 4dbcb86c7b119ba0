package cpu

import (
	"errors"
	"fmt"
)

// ErrHalted is returned by Step after executing HLT. It is not fatal: the
// host decides whether to stop driving the core or inject an interrupt via
// RST and keep going.
var ErrHalted = errors.New("cpu: halted")

// DecoderBugError is returned by Step when the opcode at PC dispatched to
// the fault handler. A dispatch table built from the full 57-descriptor list
// in package inst never produces this; reaching it means the caller handed
// Step a corrupt table, which cpu.New never does.
type DecoderBugError struct {
	Opcode uint8
	PC     uint16
	Dump   CPU
}

func (e *DecoderBugError) Error() string {
	d := &e.Dump
	return fmt.Sprintf("cpu: decoder bug: opcode 0x%02X at PC=0x%04X has no handler (A=%02X F=%02X BC=%04X DE=%04X HL=%04X SP=%04X)",
		e.Opcode, e.PC, d.A, d.F.Byte(), d.BC(), d.DE(), d.HL(), d.SP)
}
