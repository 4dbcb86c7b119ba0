package conformance

import (
	"math/rand/v2"
	"testing"
)

func TestDispatchCompleteIsEmpty(t *testing.T) {
	if faulty := DispatchComplete(); len(faulty) != 0 {
		t.Errorf("DispatchComplete() = %v, want empty", faulty)
	}
}

func TestSweepFindsNoViolations(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	for op := 0; op < 256; op++ {
		if vs := Sweep(uint8(op), 8, rng); len(vs) != 0 {
			t.Errorf("opcode 0x%02X: %d violations, first: %+v", op, len(vs), vs[0])
		}
	}
}

func TestWorkerPoolSweep(t *testing.T) {
	wp := NewWorkerPool(2)
	report := wp.Sweep(4, 42, false)
	if report.Checked() != 256*4 {
		t.Errorf("Checked() = %d, want %d", report.Checked(), 256*4)
	}
	if report.Len() != 0 {
		t.Errorf("unexpected violations: %+v", report.Violations())
	}
}
