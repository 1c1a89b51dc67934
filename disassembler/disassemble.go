package disassembler

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/Urethramancer/sicxe/cpu"
	"github.com/Urethramancer/sicxe/objfile"
	"github.com/Urethramancer/sicxe/symtab"
)

// Disassembler turns object programs back into listings, using a symbol
// table for labels and the literal pool.
type Disassembler struct {
	symbols *symtab.Table
}

// New creates a Disassembler. A nil table is treated as empty.
func New(symbols *symtab.Table) *Disassembler {
	if symbols == nil {
		symbols = symtab.New(nil, nil)
	}
	return &Disassembler{symbols: symbols}
}

// Disassemble builds the complete listing for prog. On error no listing is
// returned.
func (d *Disassembler) Disassemble(prog *objfile.Program) (*Listing, error) {
	// --- PASS A: decode every text record ---
	var rows []*Row
	var end uint32
	for i := range prog.Texts {
		text := &prog.Texts[i]
		decoded, next, err := d.decodeText(text)
		if err != nil {
			return nil, errors.Wrapf(err, "text record at %06X (line %d)", text.Start, text.Line)
		}
		rows = append(rows, decoded...)
		end = next
	}

	// --- PASS B: frame with START/END and resolve operands ---
	l := &Listing{Name: prog.Header.Name, Start: prog.Header.Start}
	l.Rows = make([]*Row, 0, len(rows)+2)
	l.Rows = append(l.Rows, startRow(prog.Header))
	l.Rows = append(l.Rows, rows...)
	l.Rows = append(l.Rows, endRow(prog.Header, end))

	resolve(l.Rows)
	return l, nil
}

// decodeText walks one text record. It returns the rows and the address just
// past the last one.
func (d *Disassembler) decodeText(text *objfile.Text) ([]*Row, uint32, error) {
	var rows []*Row
	addr := text.Start
	end := text.End()
	cursor := 0

	for addr < end {
		label := ""
		if sym, ok := d.symbols.SymbolAt(addr); ok {
			label = sym.Name
		}

		if lit, ok := d.symbols.LiteralAt(addr); ok && lit.Length > 0 {
			n := 2 * int(lit.Length)
			if cursor+n > len(text.Payload) {
				return nil, 0, errors.Wrapf(cpu.ErrTruncatedRecord, "literal %s at %04X needs %d characters, have %d",
					lit.Value, addr, n, len(text.Payload)-cursor)
			}
			rows = append(rows, literalRow(lit, addr, label))
			addr += uint32(lit.Length)
			cursor += n
			continue
		}

		inst, err := cpu.Decode(text.Payload, cursor)
		if err != nil {
			return nil, 0, errors.Wrapf(err, "at %04X", addr)
		}
		rows = append(rows, &Row{
			Kind:       KindInstruction,
			AddressHex: formatAddress(addr),
			Address:    addr,
			Label:      label,
			Mnemonic:   inst.Mnemonic,
			ObjectCode: inst.Object,
			Inst:       inst,
		})

		addr += uint32(inst.Length)
		cursor += 2 * inst.Length

		// A base register load is followed by the BASE directive an
		// assembler needs; its operand is known only after resolution.
		// The directive has no address, so a pc-relative LDB resolves
		// against zero.
		if inst.Opcode == cpu.OPLDB {
			rows = append(rows, &Row{
				Kind:     KindDecoration,
				Mnemonic: "BASE",
			})
		}
	}

	logrus.Debugf("text record at %06X: %d rows", text.Start, len(rows))
	return rows, addr, nil
}

func startRow(h objfile.Header) *Row {
	return &Row{
		Kind:       KindDecoration,
		AddressHex: "0000",
		Address:    h.Start,
		Label:      h.Name,
		Mnemonic:   "START",
		Operand:    formatDecimal(h.Start),
	}
}

func endRow(h objfile.Header, addr uint32) *Row {
	return &Row{
		Kind:     KindDecoration,
		Address:  addr,
		Mnemonic: "END",
		Operand:  h.Name,
	}
}
