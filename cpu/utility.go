package cpu

import (
	"strconv"

	"github.com/pkg/errors"
)

// readHex parses n hex characters of payload starting at cursor.
func readHex(payload string, cursor, n int) (uint32, error) {
	if cursor+n > len(payload) {
		return 0, errors.Wrapf(ErrTruncatedRecord, "need %d characters at offset %d, have %d", n, cursor, len(payload)-cursor)
	}
	v, err := strconv.ParseUint(payload[cursor:cursor+n], 16, 32)
	if err != nil {
		return 0, errors.Wrapf(ErrInvalidHex, "%q at offset %d", payload[cursor:cursor+n], cursor)
	}
	return uint32(v), nil
}

// ReadByte parses the two hex characters at cursor.
func ReadByte(payload string, cursor int) (byte, error) {
	v, err := readHex(payload, cursor, 2)
	return byte(v), err
}

// SignExtend12 widens a 12-bit two's complement displacement to 32 bits.
func SignExtend12(v uint32) uint32 {
	v &= 0xFFF
	if v&0x800 != 0 {
		v |= 0xFFFFF000
	}
	return v
}
