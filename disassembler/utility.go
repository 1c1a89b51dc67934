package disassembler

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Urethramancer/sicxe/cpu"
)

// formatAddress renders a listing address as at least four uppercase hex digits.
func formatAddress(addr uint32) string {
	return fmt.Sprintf("%04X", addr)
}

// formatHex renders an operand value in uppercase hex without padding.
func formatHex(v uint32) string {
	return strings.ToUpper(strconv.FormatUint(uint64(v), 16))
}

func formatDecimal(v uint32) string {
	return strconv.FormatUint(uint64(v), 10)
}

// registerPair formats "r1,r2" as in ADDR S,A.
func registerPair(in *cpu.Instruction) string {
	return cpu.RegisterText(in.R1) + "," + cpu.RegisterText(in.R2)
}

// registerCount formats "r1,n" for shifts. The count field holds n-1.
func registerCount(in *cpu.Instruction) string {
	return cpu.RegisterText(in.R1) + "," + strconv.Itoa(int(in.R2)+1)
}

// formatTwoOperand builds the operand of a register-to-register instruction.
func formatTwoOperand(in *cpu.Instruction) string {
	switch in.Opcode {
	case cpu.OPADDR, cpu.OPSUBR, cpu.OPMULR, cpu.OPDIVR, cpu.OPCOMPR:
		return registerPair(in)
	case cpu.OPCLEAR, cpu.OPTIXR:
		return cpu.RegisterText(in.R1)
	case cpu.OPSHIFTL, cpu.OPSHIFTR:
		return registerCount(in)
	case cpu.OPSVC:
		return strconv.Itoa(int(in.R1))
	}
	return ""
}
