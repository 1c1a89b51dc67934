package cpu_test

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Urethramancer/sicxe/cpu"
)

func TestCatalogue(t *testing.T) {
	assert.Len(t, cpu.Catalogue, 59)

	tests := []struct {
		op       byte
		mnemonic string
		format   cpu.Format
	}{
		{0x18, "ADD", cpu.FormatThreeFour},
		{0xB4, "CLEAR", cpu.FormatTwo},
		{0xC4, "FIX", cpu.FormatOne},
		{0x68, "LDB", cpu.FormatThreeFour},
		{0x6B, "LDB", cpu.FormatThreeFour},
		{0x03, "LDA", cpu.FormatThreeFour},
	}
	for _, tt := range tests {
		entry, ok := cpu.Lookup(tt.op)
		require.True(t, ok, "opcode %02X", tt.op)
		assert.Equal(t, tt.mnemonic, entry.Mnemonic)
		assert.Equal(t, tt.format, entry.Format)
	}

	_, ok := cpu.Lookup(0xFC)
	assert.False(t, ok)
}

func TestCatalogueMasked(t *testing.T) {
	for op := range cpu.Catalogue {
		assert.Zero(t, op&^cpu.OpcodeMask, "opcode %02X has n/i bits set", op)
	}
}

func TestDecodeFormatOne(t *testing.T) {
	inst, err := cpu.Decode("C4", 0)
	require.NoError(t, err)
	assert.Equal(t, "FIX", inst.Mnemonic)
	assert.Equal(t, 1, inst.Length)
	assert.Equal(t, "C4", inst.Object)
	assert.Equal(t, 1, inst.FormatNumber())
}

func TestDecodeFormatTwo(t *testing.T) {
	inst, err := cpu.Decode("XXA403", 2)
	require.NoError(t, err)
	assert.Equal(t, "SHIFTL", inst.Mnemonic)
	assert.Equal(t, byte(0), inst.R1)
	assert.Equal(t, byte(3), inst.R2)
	assert.Equal(t, 2, inst.Length)
	assert.Equal(t, "A403", inst.Object)
}

func TestDecodeFormatThree(t *testing.T) {
	inst, err := cpu.Decode("3B2FFA", 0)
	require.NoError(t, err)
	assert.Equal(t, "JLT", inst.Mnemonic)
	assert.Equal(t, byte(cpu.OPJLT), inst.Opcode)
	assert.Equal(t, cpu.Flags{N: true, I: true, P: true}, inst.Flags)
	assert.Equal(t, uint32(0xFFA), inst.Field)
	assert.Equal(t, 3, inst.Length)
	assert.Equal(t, "110010", inst.Flags.String())
	assert.False(t, inst.Extended())
}

func TestDecodeFormatFour(t *testing.T) {
	inst, err := cpu.Decode("691002C6", 0)
	require.NoError(t, err)
	assert.Equal(t, "LDB", inst.Mnemonic)
	assert.True(t, inst.Extended())
	assert.True(t, inst.Flags.Immediate())
	assert.Equal(t, uint32(0x2C6), inst.Field)
	assert.Equal(t, 4, inst.Length)
	assert.Equal(t, 4, inst.FormatNumber())
	assert.Equal(t, "691002C6", inst.Object)
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		payload string
		cursor  int
		want    error
	}{
		{"FF0000", 0, cpu.ErrUnknownOpcode},
		{"03", 0, cpu.ErrTruncatedRecord},
		{"0320", 0, cpu.ErrTruncatedRecord},
		{"031000", 0, cpu.ErrTruncatedRecord},
		{"A4", 0, cpu.ErrTruncatedRecord},
		{"", 0, cpu.ErrTruncatedRecord},
		{"0G2000", 0, cpu.ErrInvalidHex},
		{"03Z000", 0, cpu.ErrInvalidHex},
	}
	for _, tt := range tests {
		_, err := cpu.Decode(tt.payload, tt.cursor)
		assert.True(t, errors.Is(err, tt.want), "%q: got %v, want %v", tt.payload, err, tt.want)
	}
}

func TestSignExtend12(t *testing.T) {
	assert.Equal(t, uint32(0xFFFFFFFF), cpu.SignExtend12(0xFFF))
	assert.Equal(t, uint32(0xFFFFFFFA), cpu.SignExtend12(0xFFA))
	assert.Equal(t, uint32(0x7FF), cpu.SignExtend12(0x7FF))
	assert.Equal(t, int32(-6), int32(cpu.SignExtend12(0xFFA)))
}

func TestFlagModes(t *testing.T) {
	tests := []struct {
		flags   cpu.Flags
		prefix  string
		operand string
		target  string
	}{
		{cpu.Flags{N: true, I: true}, "", "simple", "absolute"},
		{cpu.Flags{I: true, P: true}, "#", "immediate", "pc"},
		{cpu.Flags{N: true, B: true, X: true}, "@", "indirect", "base_indexed"},
		{cpu.Flags{N: true, I: true, E: true, P: true}, "", "simple", "absolute"},
		{cpu.Flags{}, "", "simple", "absolute"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.prefix, tt.flags.OperandPrefix())
		assert.Equal(t, tt.operand, tt.flags.OperandMode())
		assert.Equal(t, tt.target, tt.flags.TargetMode())
	}
}

func TestRegisterText(t *testing.T) {
	hook := logtest.NewGlobal()
	defer hook.Reset()

	assert.Equal(t, "PC", cpu.RegisterText(cpu.RegPC))
	assert.Equal(t, "SW", cpu.RegisterText(9))
	assert.Empty(t, hook.AllEntries())

	assert.Equal(t, "7", cpu.RegisterText(7))
	_, ok := cpu.RegisterName(7)
	assert.False(t, ok)

	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, logrus.WarnLevel, hook.LastEntry().Level)
	assert.Equal(t, "register 7 has no name", hook.LastEntry().Message)
}
