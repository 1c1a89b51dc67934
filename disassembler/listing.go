package disassembler

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
)

// DefaultColumnWidth is the width of every listing column.
const DefaultColumnWidth = 12

// Write emits the listing as five left-justified columns: address, label,
// mnemonic, operand and object code.
func Write(w io.Writer, l *Listing, width int) error {
	bw := bufio.NewWriter(w)
	for _, r := range l.Rows {
		writeColumns(bw, width, r.AddressHex, r.Label, r.Mnemonic, r.Operand, r.ObjectCode)
	}
	return bw.Flush()
}

// WriteModes emits one line per instruction naming its format and
// addressing modes, under an INSTR FORMAT OAT TAAM OBJ header.
func WriteModes(w io.Writer, l *Listing, width int) error {
	bw := bufio.NewWriter(w)
	writeColumns(bw, width, "INSTR", "FORMAT", "OAT", "TAAM", "OBJ")
	for _, r := range l.Rows {
		if r.Kind != KindInstruction {
			continue
		}

		var oat, taam string
		if f := r.Inst.Flags; r.Inst.FormatNumber() >= 3 {
			oat = f.OperandMode()
			taam = f.TargetMode()
		}
		writeColumns(bw, width, r.Mnemonic, strconv.Itoa(r.Inst.FormatNumber()), oat, taam, r.ObjectCode)
	}
	return bw.Flush()
}

func writeColumns(w *bufio.Writer, width int, cols ...string) {
	for _, c := range cols {
		fmt.Fprintf(w, "%-*s", width, c)
	}
	w.WriteByte('\n')
}
