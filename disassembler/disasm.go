package disassembler

import (
	"github.com/Urethramancer/sicxe/objfile"
	"github.com/Urethramancer/sicxe/symtab"
)

// DisassembleFiles loads a symbol table and an object program, in that order,
// and returns the listing. Both files are closed before it returns.
func DisassembleFiles(objectPath, symbolPath string) (*Listing, error) {
	symbols, err := symtab.Load(symbolPath)
	if err != nil {
		return nil, err
	}

	prog, err := objfile.Load(objectPath)
	if err != nil {
		return nil, err
	}

	return New(symbols).Disassemble(prog)
}
