package main

import (
	"fmt"
	"io"
	"os"

	"github.com/k0kubun/pp/v3"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/Urethramancer/sicxe/objfile"
	"github.com/Urethramancer/sicxe/symtab"
)

func newRootCommand(w io.Writer) *cobra.Command {
	var noColor bool
	cmd := &cobra.Command{
		Use:   "sicdump <object code file> [symbol table file]",
		Short: "Print the parsed records of a SIC/XE object program",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			printer := pp.New()
			printer.SetColoringEnabled(!noColor)
			printer.SetOutput(w)
			return dump(printer, args)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable coloured output")
	return cmd
}

func dump(printer *pp.PrettyPrinter, args []string) error {
	prog, err := objfile.Load(args[0])
	if err != nil {
		return err
	}
	printer.Println(prog)

	if len(args) < 2 {
		return nil
	}
	tab, err := symtab.Load(args[1])
	if err != nil {
		return err
	}
	printer.Println(tab.Symbols)
	printer.Println(tab.Literals)
	return nil
}

func main() {
	logrus.SetOutput(os.Stderr)
	if err := newRootCommand(os.Stdout).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
