// Package conformance drives exhaustive and statistical property checks
// over the 8080 core: dispatch-table completeness and the per-instruction
// invariants and round-trip laws the core is required to satisfy for every
// opcode and register state, not just the handful exercised by unit tests.
package conformance

import (
	"encoding/gob"
	"encoding/json"
	"os"
	"sort"
	"sync"

	"github.com/oisee/i8080-core/pkg/cpu"
)

// Violation records one sample that broke an invariant or round-trip law.
type Violation struct {
	Opcode      uint8
	Description string
	Before      cpu.CPU
	After       cpu.CPU
}

// Report collects violations found across a sweep of many opcodes, guarded
// by a mutex so concurrent workers can add to it directly — ported from the
// teacher's result.Table.
type Report struct {
	mu         sync.Mutex
	violations []Violation
	checked    int
}

// NewReport returns an empty Report.
func NewReport() *Report {
	return &Report{}
}

// Add records a violation.
func (r *Report) Add(v Violation) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.violations = append(r.violations, v)
}

// AddChecked increments the number of samples the report has seen,
// independent of whether they violated anything — used for a pass/fail
// summary even when Violations() is empty.
func (r *Report) AddChecked(n int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.checked += n
}

// Violations returns a copy of all recorded violations, sorted by opcode.
func (r *Report) Violations() []Violation {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Violation, len(r.violations))
	copy(out, r.violations)
	sort.Slice(out, func(i, j int) bool { return out[i].Opcode < out[j].Opcode })
	return out
}

// Len returns the number of recorded violations.
func (r *Report) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.violations)
}

// Checked returns the total number of samples examined.
func (r *Report) Checked() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.checked
}

// WriteJSON writes the report's violations to path as JSON, for CI
// consumption.
func (r *Report) WriteJSON(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(r.Violations())
}

// ReadJSON loads a previously written violation list back into a Report.
func ReadJSON(path string) (*Report, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var vs []Violation
	if err := json.NewDecoder(f).Decode(&vs); err != nil {
		return nil, err
	}
	return &Report{violations: vs}, nil
}

// Checkpoint holds a sweep's violations and the last opcode it completed —
// ported from result.Checkpoint. WorkerPool.Sweep always covers all 256
// opcodes and does not take a Checkpoint to resume from.
type Checkpoint struct {
	Violations     []Violation
	CompletedOp    int // last opcode fully swept
}

func init() {
	gob.Register(Violation{})
}

// SaveCheckpoint writes sweep progress to path.
func SaveCheckpoint(path string, ckpt *Checkpoint) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return gob.NewEncoder(f).Encode(ckpt)
}

// LoadCheckpoint restores sweep progress from path.
func LoadCheckpoint(path string) (*Checkpoint, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var ckpt Checkpoint
	if err := gob.NewDecoder(f).Decode(&ckpt); err != nil {
		return nil, err
	}
	return &ckpt, nil
}
