package disassembler

import (
	"github.com/sirupsen/logrus"

	"github.com/Urethramancer/sicxe/cpu"
)

// registers tracks the last values statically loaded into B and X by
// LDB and LDX, in listing order. Loads from memory are taken at their
// target address since the contents cannot be known.
type registers struct {
	base uint32
	x    uint32
}

// resolve fills in operands and format 4 markers. PC-relative targets are
// computed against the address of the following row.
func resolve(rows []*Row) {
	var regs registers
	for i, row := range rows {
		var next uint32
		if i+1 < len(rows) {
			next = rows[i+1].Address
		}

		switch row.Kind {
		case KindInstruction:
			regs.resolveInstruction(row, next)
		case KindDecoration:
			if row.Mnemonic == "BASE" {
				row.Operand = formatHex(regs.base)
			}
		}
	}
}

func (r *registers) resolveInstruction(row *Row, next uint32) {
	in := row.Inst
	switch in.Format {
	case cpu.FormatOne:
		row.Operand = ""

	case cpu.FormatTwo:
		row.Operand = formatTwoOperand(in)

	case cpu.FormatThreeFour:
		target := r.target(in, next)
		row.Operand = in.Flags.OperandPrefix() + formatHex(target)
		if in.Extended() {
			row.Mnemonic = "+" + in.Mnemonic
		}

		switch in.Opcode {
		case cpu.OPLDB:
			r.base = target
		case cpu.OPLDX:
			r.x = target
		}
	}
}

// target computes the address (or immediate value) a format 3/4 instruction
// refers to.
func (r *registers) target(in *cpu.Instruction, next uint32) uint32 {
	f := in.Flags
	var t uint32
	switch {
	case in.Extended():
		logrus.Debugf("direct (extended): %s", in.Mnemonic)
		t = in.Field
	case f.B:
		logrus.Debugf("base relative: %s", in.Mnemonic)
		t = in.Field + r.base
	case f.P:
		logrus.Debugf("pc relative: %s", in.Mnemonic)
		t = cpu.SignExtend12(in.Field) + next
	default:
		logrus.Debugf("direct: %s", in.Mnemonic)
		t = in.Field
	}
	if f.X {
		t += r.x
	}
	return t & cpu.AddressMask
}
