package cpu

import "strings"

// Bits of a format 3/4 instruction. N and I live in the opcode byte, the
// others in the nibble that follows it.
const (
	// BitN marks indirect addressing when set alone.
	BitN byte = 1 << 1
	// BitI marks immediate addressing when set alone.
	BitI byte = 1 << 0

	// BitX adds the index register to the target address.
	BitX byte = 1 << 3
	// BitB makes the displacement base-relative.
	BitB byte = 1 << 2
	// BitP makes the displacement PC-relative.
	BitP byte = 1 << 1
	// BitE selects format 4 with a 20-bit address field.
	BitE byte = 1 << 0
)

// Flags holds the nixbpe bits of a format 3/4 instruction.
type Flags struct {
	N, I, X, B, P, E bool
}

// NewFlags unpacks the n/i bits of the opcode byte and the xbpe nibble.
func NewFlags(op, xbpe byte) Flags {
	return Flags{
		N: op&BitN != 0,
		I: op&BitI != 0,
		X: xbpe&BitX != 0,
		B: xbpe&BitB != 0,
		P: xbpe&BitP != 0,
		E: xbpe&BitE != 0,
	}
}

// Immediate reports i set without n.
func (f Flags) Immediate() bool {
	return f.I && !f.N
}

// Indirect reports n set without i.
func (f Flags) Indirect() bool {
	return f.N && !f.I
}

// OperandPrefix is the assembler decoration for the n/i combination.
func (f Flags) OperandPrefix() string {
	switch {
	case f.Immediate():
		return "#"
	case f.Indirect():
		return "@"
	}
	return ""
}

// OperandMode names how the operand value is obtained.
func (f Flags) OperandMode() string {
	switch {
	case f.Immediate():
		return "immediate"
	case f.Indirect():
		return "indirect"
	}
	return "simple"
}

// TargetMode names how the target address is computed, with an "_indexed"
// suffix when x is set.
func (f Flags) TargetMode() string {
	mode := "absolute"
	switch {
	case f.E:
	case f.B:
		mode = "base"
	case f.P:
		mode = "pc"
	}
	if f.X {
		mode += "_indexed"
	}
	return mode
}

// String renders the six bits in nixbpe order, e.g. "110010".
func (f Flags) String() string {
	var sb strings.Builder
	for _, b := range []bool{f.N, f.I, f.X, f.B, f.P, f.E} {
		if b {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}
