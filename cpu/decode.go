package cpu

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

var (
	// ErrUnknownOpcode is returned for opcode bytes missing from the catalogue.
	ErrUnknownOpcode = errors.New("unknown opcode")
	// ErrTruncatedRecord is returned when a payload ends inside an instruction.
	ErrTruncatedRecord = errors.New("truncated record")
	// ErrInvalidHex is returned for payload characters that are not hex digits.
	ErrInvalidHex = errors.New("invalid hex digit")
)

// Instruction holds the raw fields of one decoded SIC/XE instruction.
// Operand values are not resolved here.
type Instruction struct {
	// Opcode is the opcode byte with n and i cleared.
	Opcode   byte
	Mnemonic string
	Format   Format
	// Flags is only meaningful for FormatThreeFour.
	Flags Flags
	// R1 and R2 are the register fields of FormatTwo.
	R1, R2 byte
	// Field is the 12-bit displacement, or the 20-bit address when Flags.E is set.
	Field uint32
	// Object is the slice of the payload the instruction was decoded from.
	Object string
	// Length in bytes: 1, 2, 3 or 4.
	Length int
}

// Extended reports a format 4 instruction.
func (in *Instruction) Extended() bool {
	return in.Format == FormatThreeFour && in.Flags.E
}

// FormatNumber is the concrete format, 1 to 4.
func (in *Instruction) FormatNumber() int {
	switch in.Format {
	case FormatOne:
		return 1
	case FormatTwo:
		return 2
	case FormatThreeFour:
		if in.Flags.E {
			return 4
		}
		return 3
	}
	return 0
}

// Decode reads one instruction from a hex payload, starting at the character
// offset cursor. The returned instruction's Length tells the caller how far to
// advance: 2*Length characters.
func Decode(payload string, cursor int) (*Instruction, error) {
	op, err := ReadByte(payload, cursor)
	if err != nil {
		return nil, err
	}

	entry, ok := Lookup(op)
	if !ok {
		return nil, errors.Wrapf(ErrUnknownOpcode, "%02X at offset %d", op, cursor)
	}

	inst := &Instruction{
		Opcode:   op & OpcodeMask,
		Mnemonic: entry.Mnemonic,
		Format:   entry.Format,
	}

	switch entry.Format {
	case FormatOne:
		inst.Length = 1

	case FormatTwo:
		regs, err := ReadByte(payload, cursor+2)
		if err != nil {
			return nil, err
		}
		inst.R1 = regs >> 4
		inst.R2 = regs & 0xF
		inst.Length = 2

	case FormatThreeFour:
		xbpe, err := readHex(payload, cursor+2, 1)
		if err != nil {
			return nil, err
		}
		inst.Flags = NewFlags(op, byte(xbpe))

		// The e bit decides between a 12-bit displacement and a 20-bit address.
		width := 3
		inst.Length = 3
		if inst.Flags.E {
			width = 5
			inst.Length = 4
		}
		inst.Field, err = readHex(payload, cursor+3, width)
		if err != nil {
			return nil, err
		}

	default:
		return nil, errors.Errorf("opcode %02X has no format", op)
	}

	inst.Object = payload[cursor : cursor+2*inst.Length]
	logrus.Debugf("decoded %s (format %d) from %s", inst.Mnemonic, inst.FormatNumber(), inst.Object)
	return inst, nil
}
