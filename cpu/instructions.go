package cpu

// Format defines how many bytes an instruction occupies and how its fields are laid out.
type Format int

const (
	// FormatInvalid is the zero value.
	FormatInvalid Format = iota
	// FormatOne is a single opcode byte.
	FormatOne
	// FormatTwo is an opcode byte followed by two 4-bit register fields.
	FormatTwo
	// FormatThreeFour is an opcode with n/i bits, the xbpe nibble and a 12-bit
	// displacement (format 3) or a 20-bit address when e is set (format 4).
	FormatThreeFour
)

// String returns the catalogue notation of the format class.
func (f Format) String() string {
	switch f {
	case FormatOne:
		return "1"
	case FormatTwo:
		return "2"
	case FormatThreeFour:
		return "3/4"
	}
	return "?"
}

// Opcodes with the n and i bits cleared.
const (
	// Load and store
	OPLDA  = 0x00 // LDA
	OPLDX  = 0x04 // LDX
	OPLDL  = 0x08 // LDL
	OPSTA  = 0x0C // STA
	OPSTX  = 0x10 // STX
	OPSTL  = 0x14 // STL
	OPLDCH = 0x50 // LDCH
	OPSTCH = 0x54 // STCH
	OPLDB  = 0x68 // LDB
	OPLDS  = 0x6C // LDS
	OPLDF  = 0x70 // LDF
	OPLDT  = 0x74 // LDT
	OPSTB  = 0x78 // STB
	OPSTS  = 0x7C // STS
	OPSTF  = 0x80 // STF
	OPSTT  = 0x84 // STT
	OPSTI  = 0xD4 // STI (privileged)
	OPSTSW = 0xE8 // STSW (privileged)
	OPLPS  = 0xD0 // LPS (privileged)

	// Arithmetic and logic
	OPADD  = 0x18 // ADD
	OPSUB  = 0x1C // SUB
	OPMUL  = 0x20 // MUL
	OPDIV  = 0x24 // DIV
	OPCOMP = 0x28 // COMP
	OPTIX  = 0x2C // TIX
	OPAND  = 0x40 // AND
	OPOR   = 0x44 // OR

	// Floating point
	OPADDF  = 0x58 // ADDF
	OPSUBF  = 0x5C // SUBF
	OPMULF  = 0x60 // MULF
	OPDIVF  = 0x64 // DIVF
	OPCOMPF = 0x88 // COMPF
	OPFLOAT = 0xC0 // FLOAT
	OPFIX   = 0xC4 // FIX
	OPNORM  = 0xC8 // NORM

	// Flow
	OPJEQ  = 0x30 // JEQ
	OPJGT  = 0x34 // JGT
	OPJLT  = 0x38 // JLT
	OPJ    = 0x3C // J
	OPJSUB = 0x48 // JSUB
	OPRSUB = 0x4C // RSUB

	// Register-to-register
	OPADDR   = 0x90 // ADDR
	OPSUBR   = 0x94 // SUBR
	OPMULR   = 0x98 // MULR
	OPDIVR   = 0x9C // DIVR
	OPCOMPR  = 0xA0 // COMPR
	OPSHIFTL = 0xA4 // SHIFTL
	OPSHIFTR = 0xA8 // SHIFTR
	OPRMO    = 0xAC // RMO
	OPSVC    = 0xB0 // SVC
	OPCLEAR  = 0xB4 // CLEAR
	OPTIXR   = 0xB8 // TIXR

	// I/O and system
	OPRD  = 0xD8 // RD
	OPWD  = 0xDC // WD
	OPTD  = 0xE0 // TD
	OPSSK = 0xEC // SSK (privileged)
	OPSIO = 0xF0 // SIO (privileged)
	OPHIO = 0xF4 // HIO (privileged)
	OPTIO = 0xF8 // TIO (privileged)
)

// OpcodeMask clears the n and i bits from a format 3/4 opcode byte.
const OpcodeMask = 0xFC

// Opcode is one entry of the catalogue.
type Opcode struct {
	Mnemonic string
	Format   Format
}

// Catalogue maps masked opcode bytes to their mnemonic and format class.
var Catalogue = map[byte]Opcode{
	OPADD:    {"ADD", FormatThreeFour},
	OPADDF:   {"ADDF", FormatThreeFour},
	OPADDR:   {"ADDR", FormatTwo},
	OPAND:    {"AND", FormatThreeFour},
	OPCLEAR:  {"CLEAR", FormatTwo},
	OPCOMP:   {"COMP", FormatThreeFour},
	OPCOMPF:  {"COMPF", FormatThreeFour},
	OPCOMPR:  {"COMPR", FormatTwo},
	OPDIV:    {"DIV", FormatThreeFour},
	OPDIVF:   {"DIVF", FormatThreeFour},
	OPDIVR:   {"DIVR", FormatTwo},
	OPFIX:    {"FIX", FormatOne},
	OPFLOAT:  {"FLOAT", FormatOne},
	OPHIO:    {"HIO", FormatOne},
	OPJ:      {"J", FormatThreeFour},
	OPJEQ:    {"JEQ", FormatThreeFour},
	OPJGT:    {"JGT", FormatThreeFour},
	OPJLT:    {"JLT", FormatThreeFour},
	OPJSUB:   {"JSUB", FormatThreeFour},
	OPLDA:    {"LDA", FormatThreeFour},
	OPLDB:    {"LDB", FormatThreeFour},
	OPLDCH:   {"LDCH", FormatThreeFour},
	OPLDF:    {"LDF", FormatThreeFour},
	OPLDL:    {"LDL", FormatThreeFour},
	OPLDS:    {"LDS", FormatThreeFour},
	OPLDT:    {"LDT", FormatThreeFour},
	OPLDX:    {"LDX", FormatThreeFour},
	OPLPS:    {"LPS", FormatThreeFour},
	OPMUL:    {"MUL", FormatThreeFour},
	OPMULF:   {"MULF", FormatThreeFour},
	OPMULR:   {"MULR", FormatTwo},
	OPNORM:   {"NORM", FormatOne},
	OPOR:     {"OR", FormatThreeFour},
	OPRD:     {"RD", FormatThreeFour},
	OPRMO:    {"RMO", FormatTwo},
	OPRSUB:   {"RSUB", FormatThreeFour},
	OPSHIFTL: {"SHIFTL", FormatTwo},
	OPSHIFTR: {"SHIFTR", FormatTwo},
	OPSIO:    {"SIO", FormatOne},
	OPSSK:    {"SSK", FormatThreeFour},
	OPSTA:    {"STA", FormatThreeFour},
	OPSTB:    {"STB", FormatThreeFour},
	OPSTCH:   {"STCH", FormatThreeFour},
	OPSTF:    {"STF", FormatThreeFour},
	OPSTI:    {"STI", FormatThreeFour},
	OPSTL:    {"STL", FormatThreeFour},
	OPSTS:    {"STS", FormatThreeFour},
	OPSTSW:   {"STSW", FormatThreeFour},
	OPSTT:    {"STT", FormatThreeFour},
	OPSTX:    {"STX", FormatThreeFour},
	OPSUB:    {"SUB", FormatThreeFour},
	OPSUBF:   {"SUBF", FormatThreeFour},
	OPSUBR:   {"SUBR", FormatTwo},
	OPSVC:    {"SVC", FormatTwo},
	OPTD:     {"TD", FormatThreeFour},
	OPTIO:    {"TIO", FormatOne},
	OPTIX:    {"TIX", FormatThreeFour},
	OPTIXR:   {"TIXR", FormatTwo},
	OPWD:     {"WD", FormatThreeFour},
}

// Lookup finds the catalogue entry for a raw opcode byte.
// The n and i bits are masked off before the lookup.
func Lookup(op byte) (Opcode, bool) {
	entry, ok := Catalogue[op&OpcodeMask]
	return entry, ok
}
