package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/Urethramancer/sicxe/cpu"
	"github.com/Urethramancer/sicxe/objfile"
	"github.com/Urethramancer/sicxe/symtab"
)

// Process exit codes.
const (
	exitOK          = 0
	exitFailure     = 1
	exitUsage       = -1
	exitSymbolTable = -2
	exitObjectCode  = -3
)

var errUsage = errors.New("wrong number of arguments")

// objectErrors are the failures reading or decoding the object program.
var objectErrors = []error{
	objfile.ErrOpen,
	objfile.ErrMalformedRecord,
	cpu.ErrUnknownOpcode,
	cpu.ErrTruncatedRecord,
	cpu.ErrInvalidHex,
}

func exitCode(err error) int {
	if err == nil {
		return exitOK
	}
	if errors.Is(err, errUsage) {
		return exitUsage
	}
	if errors.Is(err, symtab.ErrOpen) {
		return exitSymbolTable
	}
	for _, e := range objectErrors {
		if errors.Is(err, e) {
			return exitObjectCode
		}
	}
	return exitFailure
}

func outputError(err error) {
	if logrus.IsLevelEnabled(logrus.DebugLevel) {
		logrus.Errorf("%+v", err)
		return
	}
	fmt.Fprintln(os.Stderr, "Error:", err.Error())
}
