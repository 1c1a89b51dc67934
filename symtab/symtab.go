// Package symtab loads the symbol and literal tables an assembler produced
// alongside an object program.
package symtab

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// ErrOpen is returned when the symbol table file cannot be opened.
var ErrOpen = errors.New("cannot open symbol table")

// Symbol is a user-defined label and its absolute address.
type Symbol struct {
	Name    string
	Address uint32
	Flags   string
}

// Literal is an entry of the literal pool.
type Literal struct {
	Name string
	// Value is the literal as written, e.g. =C'EOF' or =X'05'.
	Value string
	// Length is the number of bytes the literal occupies.
	Length  uint16
	Address uint32
}

// Operand is the literal constant without the leading '='.
func (l Literal) Operand() string {
	return strings.TrimPrefix(l.Value, "=")
}

// Bytes returns the text between the quotes of the literal, or the whole
// operand when it is not quoted.
func (l Literal) Bytes() string {
	v := l.Operand()
	start := strings.IndexByte(v, '\'')
	if start < 0 {
		return v
	}
	end := strings.IndexByte(v[start+1:], '\'')
	if end < 0 {
		return v[start+1:]
	}
	return v[start+1 : start+1+end]
}

// Table holds both sections, in file order, with address indexes.
type Table struct {
	Symbols  []Symbol
	Literals []Literal

	symbolAt  map[uint32]int
	literalAt map[uint32]int
}

// New builds a table from already parsed entries.
// When several entries share an address the last one wins.
func New(symbols []Symbol, literals []Literal) *Table {
	t := &Table{
		Symbols:   symbols,
		Literals:  literals,
		symbolAt:  make(map[uint32]int, len(symbols)),
		literalAt: make(map[uint32]int, len(literals)),
	}
	for i, s := range symbols {
		t.symbolAt[s.Address] = i
	}
	for i, l := range literals {
		t.literalAt[l.Address] = i
	}
	return t
}

// SymbolAt returns the symbol defined at addr.
func (t *Table) SymbolAt(addr uint32) (Symbol, bool) {
	if t == nil {
		return Symbol{}, false
	}
	i, ok := t.symbolAt[addr]
	if !ok {
		return Symbol{}, false
	}
	return t.Symbols[i], true
}

// LiteralAt returns the literal placed at addr.
func (t *Table) LiteralAt(addr uint32) (Literal, bool) {
	if t == nil {
		return Literal{}, false
	}
	i, ok := t.literalAt[addr]
	if !ok {
		return Literal{}, false
	}
	return t.Literals[i], true
}

// Load opens and parses a symbol table file.
func Load(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(ErrOpen, "%s: %v", path, err)
	}
	defer f.Close()

	t, err := Parse(f)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", path)
	}
	logrus.Debugf("loaded %d symbols and %d literals from %s", len(t.Symbols), len(t.Literals), path)
	return t, nil
}

type section int

const (
	sectionSymbols section = iota
	sectionLiterals
	sectionDone
)

// headerLines is the number of human-readable lines above each section.
const headerLines = 2

// Parse reads the two-section table. Each section starts with a two-line
// header. The first line that does not parse as a row of the current section
// ends it and is taken as the first header line of the next one.
func Parse(r io.Reader) (*Table, error) {
	var (
		symbols  []Symbol
		literals []Literal
	)

	sc := bufio.NewScanner(r)
	state := sectionSymbols
	skip := headerLines
	for state != sectionDone && sc.Scan() {
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		if skip > 0 {
			skip--
			continue
		}

		switch state {
		case sectionSymbols:
			if s, ok := parseSymbol(fields); ok {
				symbols = append(symbols, s)
				continue
			}
			logrus.Debugf("symbol section ends at %q", sc.Text())
			state = sectionLiterals
			skip = headerLines - 1
		case sectionLiterals:
			if l, ok := parseLiteral(fields); ok {
				literals = append(literals, l)
				continue
			}
			logrus.Debugf("literal section ends at %q", sc.Text())
			state = sectionDone
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	return New(symbols, literals), nil
}

// parseSymbol accepts "name address [flags]".
func parseSymbol(fields []string) (Symbol, bool) {
	if len(fields) < 2 {
		return Symbol{}, false
	}
	addr, err := parseAddress(fields[1])
	if err != nil {
		return Symbol{}, false
	}
	s := Symbol{Name: fields[0], Address: addr}
	if len(fields) > 2 {
		s.Flags = fields[2]
	}
	return s, true
}

// parseLiteral accepts "name literal length address", or the same without a
// name when the first column is itself a literal. A zero length is rejected.
func parseLiteral(fields []string) (Literal, bool) {
	var l Literal
	switch {
	case len(fields) >= 4:
		l.Name = fields[0]
		fields = fields[1:]
	case len(fields) == 3 && isLiteral(fields[0]):
	default:
		return Literal{}, false
	}

	l.Value = fields[0]
	length, err := strconv.ParseUint(fields[1], 16, 16)
	if err != nil || length == 0 {
		return Literal{}, false
	}
	l.Length = uint16(length)

	l.Address, err = parseAddress(fields[2])
	if err != nil {
		return Literal{}, false
	}
	return l, true
}

func isLiteral(s string) bool {
	return strings.HasPrefix(s, "=") || strings.Contains(s, "'")
}

func parseAddress(s string) (uint32, error) {
	v, err := strconv.ParseUint(s, 16, 24)
	return uint32(v), err
}
