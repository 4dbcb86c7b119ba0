package fuzz

import "github.com/oisee/i8080-core/pkg/inst"

const (
	maxFingerprintInstrs = 16
	fingerprintFieldSize = 3 // opcode byte + 2 immediate bytes
	// FingerprintLen is the width of a Fingerprint, truncating any stream
	// longer than maxFingerprintInstrs.
	FingerprintLen = fingerprintFieldSize * maxFingerprintInstrs
)

// Fingerprint is a fixed-width digest of an instruction stream used to
// deduplicate findings across chains and across runs, the way
// search.Fingerprint deduplicates candidate rewrite sequences.
type Fingerprint [FingerprintLen]byte

// FingerprintOf truncates seq to its first maxFingerprintInstrs instructions
// and packs each as (opcode, imm-low, imm-high) so two streams that agree on
// their first 16 instructions collide even if one runs on longer.
func FingerprintOf(seq []inst.Instruction) Fingerprint {
	var fp Fingerprint
	n := len(seq)
	if n > maxFingerprintInstrs {
		n = maxFingerprintInstrs
	}
	for i := 0; i < n; i++ {
		instr := seq[i]
		base := i * fingerprintFieldSize
		fp[base] = instr.Op
		fp[base+1] = uint8(instr.Imm)
		fp[base+2] = uint8(instr.Imm >> 8)
	}
	return fp
}
