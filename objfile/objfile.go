// Package objfile reads SIC/XE object programs in the textual record format.
package objfile

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

var (
	// ErrOpen is returned when the object file cannot be opened.
	ErrOpen = errors.New("cannot open object file")
	// ErrMalformedRecord is returned for H or T records with missing or non-hex columns.
	ErrMalformedRecord = errors.New("malformed record")
)

// RecordType is the leading character of a record.
type RecordType byte

const (
	// RecordHeader carries the program name, start address and length.
	RecordHeader RecordType = 'H'
	// RecordText carries object code to load at an address.
	RecordText RecordType = 'T'
	// RecordModification marks a field to relocate. Disassembly ignores it.
	RecordModification RecordType = 'M'
	// RecordEnd gives the first executable instruction. Disassembly ignores it.
	RecordEnd RecordType = 'E'
)

// Header is the program name, load address and length from the H record.
type Header struct {
	Name   string
	Start  uint32
	Length uint32
}

// Text is one T record: Length bytes, given as 2*Length hex characters in
// Payload, to be loaded at Start.
type Text struct {
	Start   uint32
	Length  int
	Payload string
	// Line is the 1-based line number in the source file.
	Line int
}

// End is the address just past the last byte of the record.
func (t Text) End() uint32 {
	return t.Start + uint32(t.Length)
}

// Record is either a header or a text record.
type Record struct {
	Type   RecordType
	Header *Header
	Text   *Text
}

// Reader yields the H and T records of an object program in file order.
// M and E records are skipped, as are lines of any other type after a
// warning.
type Reader struct {
	sc        *bufio.Scanner
	line      int
	gotHeader bool
}

// NewReader wraps r.
func NewReader(r io.Reader) *Reader {
	return &Reader{sc: bufio.NewScanner(r)}
}

// Next returns the next header or text record, or io.EOF.
// The header is yielded once; later H records are ignored.
func (rd *Reader) Next() (*Record, error) {
	for rd.sc.Scan() {
		rd.line++
		line := strings.TrimRight(rd.sc.Text(), " \t\r")
		if line == "" {
			continue
		}

		switch RecordType(line[0]) {
		case RecordHeader:
			if rd.gotHeader {
				logrus.Warnf("line %d: ignoring extra header record", rd.line)
				continue
			}
			h, err := parseHeader(line)
			if err != nil {
				return nil, errors.Wrapf(err, "line %d", rd.line)
			}
			rd.gotHeader = true
			logrus.Debugf("header %q starts at %06X, %d bytes", h.Name, h.Start, h.Length)
			return &Record{Type: RecordHeader, Header: h}, nil

		case RecordText:
			t, err := parseText(line)
			if err != nil {
				return nil, errors.Wrapf(err, "line %d", rd.line)
			}
			t.Line = rd.line
			logrus.Debugf("text record at %06X, %d bytes", t.Start, t.Length)
			return &Record{Type: RecordText, Text: t}, nil

		case RecordModification, RecordEnd:
			logrus.Debugf("line %d: skipping %c record", rd.line, line[0])

		default:
			logrus.Warnf("line %d: skipping unknown record %q", rd.line, line)
		}
	}
	if err := rd.sc.Err(); err != nil {
		return nil, err
	}
	return nil, io.EOF
}

// Program is a fully read object file.
type Program struct {
	Header Header
	Texts  []Text
}

// Parse drains a Reader.
func Parse(r io.Reader) (*Program, error) {
	prog := &Program{}
	rd := NewReader(r)
	for {
		rec, err := rd.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		switch rec.Type {
		case RecordHeader:
			prog.Header = *rec.Header
		case RecordText:
			prog.Texts = append(prog.Texts, *rec.Text)
		}
	}
	return prog, nil
}

// Load opens, reads and closes an object file.
func Load(path string) (*Program, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(ErrOpen, "%s: %v", path, err)
	}
	defer f.Close()

	prog, err := Parse(f)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", path)
	}
	return prog, nil
}

// parseHeader reads "Hnnnnnnssssssllllll", or the caret-separated form.
func parseHeader(line string) (*Header, error) {
	var name, start, length string
	if strings.Contains(line, "^") {
		f := strings.Split(line, "^")
		if len(f) < 4 {
			return nil, errors.Wrap(ErrMalformedRecord, "header needs name, start and length")
		}
		name, start, length = f[1], f[2], f[3]
	} else {
		if len(line) < 19 {
			return nil, errors.Wrapf(ErrMalformedRecord, "header is %d characters, need 19", len(line))
		}
		name, start, length = line[1:7], line[7:13], line[13:19]
	}

	h := &Header{Name: strings.TrimSpace(name)}
	var err error
	if h.Start, err = parseHex(start, "start address"); err != nil {
		return nil, err
	}
	if h.Length, err = parseHex(length, "length"); err != nil {
		return nil, err
	}
	return h, nil
}

// parseText reads "Tssssssllpp...", or the caret-separated form.
func parseText(line string) (*Text, error) {
	var start, length, payload string
	if strings.Contains(line, "^") {
		f := strings.Split(line, "^")
		if len(f) < 3 {
			return nil, errors.Wrap(ErrMalformedRecord, "text record needs start and length")
		}
		start, length, payload = f[1], f[2], strings.Join(f[3:], "")
	} else {
		if len(line) < 9 {
			return nil, errors.Wrapf(ErrMalformedRecord, "text record is %d characters, need at least 9", len(line))
		}
		start, length, payload = line[1:7], line[7:9], line[9:]
	}

	addr, err := parseHex(start, "start address")
	if err != nil {
		return nil, err
	}
	n, err := parseHex(length, "byte count")
	if err != nil {
		return nil, err
	}
	t := &Text{Start: addr, Length: int(n), Payload: payload}
	if len(payload) > 2*t.Length {
		t.Payload = payload[:2*t.Length]
	}
	return t, nil
}

func parseHex(s, what string) (uint32, error) {
	v, err := strconv.ParseUint(strings.TrimSpace(s), 16, 32)
	if err != nil {
		return 0, errors.Wrapf(ErrMalformedRecord, "%s %q", what, s)
	}
	return uint32(v), nil
}
