package disassembler

import (
	"github.com/Urethramancer/sicxe/symtab"
)

// literalRow renders a literal pool entry as a BYTE directive. The literal's
// own name is preferred as the label; a symbol at the same address is used
// when the literal is unnamed.
func literalRow(lit symtab.Literal, addr uint32, label string) *Row {
	if lit.Name != "" {
		label = lit.Name
	}
	return &Row{
		Kind:       KindLiteral,
		AddressHex: formatAddress(addr),
		Address:    addr,
		Label:      label,
		Mnemonic:   "BYTE",
		Operand:    lit.Operand(),
		ObjectCode: lit.Bytes(),
		Literal:    &lit,
	}
}
