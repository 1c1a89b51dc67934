package cpu

import (
	"strconv"

	"github.com/sirupsen/logrus"
)

// Register numbers as encoded in the r1/r2 fields of format 2 instructions.
const (
	// RegA is the accumulator.
	RegA = 0
	// RegX is the index register.
	RegX = 1
	// RegL is the linkage register.
	RegL = 2
	// RegB is the base register.
	RegB = 3
	// RegS is a general working register.
	RegS = 4
	// RegT is a general working register.
	RegT = 5
	// RegF is the 48-bit floating point accumulator.
	RegF = 6
	// RegPC is the program counter.
	RegPC = 8
	// RegSW is the status word.
	RegSW = 9
)

var registerNames = map[byte]string{
	RegA:  "A",
	RegX:  "X",
	RegL:  "L",
	RegB:  "B",
	RegS:  "S",
	RegT:  "T",
	RegF:  "F",
	RegPC: "PC",
	RegSW: "SW",
}

// RegisterName returns the assembler name of a register number.
func RegisterName(n byte) (string, bool) {
	name, ok := registerNames[n]
	return name, ok
}

// RegisterText returns the register name, or the number in decimal when the
// encoding has no register behind it.
func RegisterText(n byte) string {
	if name, ok := RegisterName(n); ok {
		return name
	}
	logrus.Warnf("register %d has no name", n)
	return strconv.Itoa(int(n))
}

// AddressMask limits an address to the 20 bits a SIC/XE machine can reach.
const AddressMask = 0xFFFFF
