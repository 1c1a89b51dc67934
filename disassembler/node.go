package disassembler

import (
	"github.com/Urethramancer/sicxe/cpu"
	"github.com/Urethramancer/sicxe/symtab"
)

// RowKind tells which variant of Row is populated.
type RowKind int

const (
	// KindInstruction is a decoded instruction; Inst is set.
	KindInstruction RowKind = iota
	// KindLiteral is a literal pool entry; Literal is set.
	KindLiteral
	// KindDecoration is a synthetic START, BASE or END line.
	KindDecoration
)

func (k RowKind) String() string {
	switch k {
	case KindInstruction:
		return "instruction"
	case KindLiteral:
		return "literal"
	case KindDecoration:
		return "decoration"
	}
	return "unknown"
}

// Row is one line of the listing.
type Row struct {
	Kind RowKind
	// AddressHex is the displayed address; empty for BASE and END.
	AddressHex string
	// Address is the numeric address used for look-ahead. It is zero for
	// BASE.
	Address    uint32
	Label      string
	Mnemonic   string
	Operand    string
	ObjectCode string

	Inst    *cpu.Instruction
	Literal *symtab.Literal
}

// Length is the number of bytes the row occupies in memory.
func (r *Row) Length() int {
	switch r.Kind {
	case KindInstruction:
		return r.Inst.Length
	case KindLiteral:
		return int(r.Literal.Length)
	}
	return 0
}

// Listing is the result of a disassembly.
type Listing struct {
	Name  string
	Start uint32
	Rows  []*Row
}
