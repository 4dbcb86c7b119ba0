package cpu

// Flags is the 8080 flag byte: Sign, Zero, a hard-wired zero, Auxiliary
// carry, a second hard-wired zero, Parity, a hard-wired one, and Carry.
type Flags uint8

// Flag bit positions in F, high bit first per the 8080's documented layout.
const (
	FlagS  Flags = 0x80 // Sign
	FlagZ  Flags = 0x40 // Zero
	flag5  Flags = 0x20 // reserved, always 0
	FlagA  Flags = 0x10 // Auxiliary carry
	flag3  Flags = 0x08 // reserved, always 0
	FlagP  Flags = 0x04 // Parity
	flag1  Flags = 0x02 // reserved, always 1
	FlagC  Flags = 0x01 // Carry
	resMask      = flag5 | flag3 // bits the core never sets
)

// parityTable[v] is true when v has an even number of set bits.
var parityTable [256]bool

func init() {
	for i := 0; i < 256; i++ {
		v := uint8(i)
		p := uint8(0)
		for b := 0; b < 8; b++ {
			p ^= v & 1
			v >>= 1
		}
		parityTable[i] = p == 0
	}
}

func (f Flags) get(bit Flags) bool { return f&bit != 0 }

// set mutates bit and then re-pins the reserved bits on the live value, so
// the invariant (bit 1 set, bits 3 and 5 clear) holds on F itself rather
// than only at the Byte()/FlagsFromByte() boundary — a host reading F
// directly between instructions must see the same byte real 8080 silicon
// would.
func (f *Flags) set(bit Flags, v bool) {
	if v {
		*f |= bit
	} else {
		*f &^= bit
	}
	*f = f.normalize()
}

func (f Flags) Sign() bool    { return f.get(FlagS) }
func (f Flags) Zero() bool    { return f.get(FlagZ) }
func (f Flags) Aux() bool     { return f.get(FlagA) }
func (f Flags) Parity() bool  { return f.get(FlagP) }
func (f Flags) Carry() bool   { return f.get(FlagC) }

func (f *Flags) SetSign(v bool)   { f.set(FlagS, v) }
func (f *Flags) SetZero(v bool)   { f.set(FlagZ, v) }
func (f *Flags) SetAux(v bool)    { f.set(FlagA, v) }
func (f *Flags) SetParity(v bool) { f.set(FlagP, v) }
func (f *Flags) SetCarry(v bool)  { f.set(FlagC, v) }

// SetSZP sets Sign, Zero and Parity from result the way every 8080 ALU
// instruction that touches flags does; Carry and Aux follow operation-
// specific rules and are left untouched here.
func (f *Flags) SetSZP(result uint8) {
	f.SetSign(result&0x80 != 0)
	f.SetZero(result == 0)
	f.SetParity(parityTable[result])
}

// normalize pins the reserved bits to their 8080-documented values (1 and
// 0, 0) regardless of how the byte was constructed — the reset value and
// every PUSH PSW / POP PSW round trip must produce a byte with bit 1 set
// and bits 3 and 5 clear.
func (f Flags) normalize() Flags {
	return (f &^ resMask) | flag1
}

// Byte returns F as a raw uint8, reserved bits pinned to their
// 8080-documented values.
func (f Flags) Byte() uint8 { return uint8(f.normalize()) }

// FlagsFromByte builds a Flags value from a raw byte (e.g. popped off the
// stack by POP PSW), pinning the reserved bits the same way Byte does.
func FlagsFromByte(b uint8) Flags { return Flags(b).normalize() }
