package symtab_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Urethramancer/sicxe/symtab"
)

const sample = `Symbol  Value   Flags:
-----------------------
FIRST   000000  R
CLOOP   000006  R
ENDFIL  00001A    R
RETADR  00002A  R

Name    Literal  Length Address:
------------------------------
LTRL1   =C'EOF'  3      00002D
LTRL2   =X'05'   1      001062
`

func TestParse(t *testing.T) {
	tab, err := symtab.Parse(strings.NewReader(sample))
	require.NoError(t, err)

	require.Len(t, tab.Symbols, 4)
	assert.Equal(t, symtab.Symbol{Name: "FIRST", Address: 0, Flags: "R"}, tab.Symbols[0])
	assert.Equal(t, symtab.Symbol{Name: "ENDFIL", Address: 0x1A, Flags: "R"}, tab.Symbols[2])

	require.Len(t, tab.Literals, 2)
	assert.Equal(t, symtab.Literal{Name: "LTRL1", Value: "=C'EOF'", Length: 3, Address: 0x2D}, tab.Literals[0])
	assert.Equal(t, uint32(0x1062), tab.Literals[1].Address)

	s, ok := tab.SymbolAt(6)
	require.True(t, ok)
	assert.Equal(t, "CLOOP", s.Name)
	_, ok = tab.SymbolAt(7)
	assert.False(t, ok)

	l, ok := tab.LiteralAt(0x2D)
	require.True(t, ok)
	assert.Equal(t, "C'EOF'", l.Operand())
	assert.Equal(t, "EOF", l.Bytes())
}

func TestParseMalformedRowEndsSection(t *testing.T) {
	src := `Symbol  Value   Flags:
-----------------------
FIRST   000000  R
BROKEN  ZZZZ    R
-----------------------
=X'F1'  1  000010
junk
LATER   =X'00'  1  000020
`
	tab, err := symtab.Parse(strings.NewReader(src))
	require.NoError(t, err)
	require.Len(t, tab.Symbols, 1)
	require.Len(t, tab.Literals, 1)
	assert.Empty(t, tab.Literals[0].Name)
	assert.Equal(t, "F1", tab.Literals[0].Bytes())
}

func TestParseZeroLengthLiteralEndsSection(t *testing.T) {
	src := `Symbol  Value   Flags:
-----------------------
FIRST   000000  R

Name    Literal  Length Address:
--------------------------------
L1      =X'05'   1      000003
L0      =C''     0      000000
L2      =X'06'   1      000004
`
	tab, err := symtab.Parse(strings.NewReader(src))
	require.NoError(t, err)
	require.Len(t, tab.Literals, 1)
	assert.Equal(t, "L1", tab.Literals[0].Name)
	_, ok := tab.LiteralAt(0)
	assert.False(t, ok)
}

func TestParseEmpty(t *testing.T) {
	tab, err := symtab.Parse(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, tab.Symbols)
	assert.Empty(t, tab.Literals)
	_, ok := tab.LiteralAt(0)
	assert.False(t, ok)
}

func TestLastDuplicateWins(t *testing.T) {
	tab := symtab.New([]symtab.Symbol{{Name: "A", Address: 3}, {Name: "B", Address: 3}}, nil)
	s, ok := tab.SymbolAt(3)
	require.True(t, ok)
	assert.Equal(t, "B", s.Name)
}

func TestNilTable(t *testing.T) {
	var tab *symtab.Table
	_, ok := tab.SymbolAt(0)
	assert.False(t, ok)
}

func TestLiteralBytes(t *testing.T) {
	tests := []struct {
		value string
		want  string
	}{
		{"=C'EOF'", "EOF"},
		{"=X'05'", "05"},
		{"X'F1", "F1"},
		{"=12", "12"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, symtab.Literal{Value: tt.value}.Bytes(), tt.value)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample.st")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o644))

	tab, err := symtab.Load(path)
	require.NoError(t, err)
	assert.Len(t, tab.Symbols, 4)

	_, err = symtab.Load(filepath.Join(t.TempDir(), "missing.st"))
	assert.True(t, errors.Is(err, symtab.ErrOpen))
}
