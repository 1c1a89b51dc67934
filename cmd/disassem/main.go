package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/Urethramancer/sicxe/config"
	"github.com/Urethramancer/sicxe/disassembler"
)

const usage = "usage: ./disassem <object code file> <symbol table file>"

type options struct {
	config   string
	output   string
	width    int
	logLevel string
	modes    bool
}

func newRootCommand() *cobra.Command {
	var opts options
	cmd := &cobra.Command{
		Use:   "disassem [flags] <object code file> <symbol table file>",
		Short: "Rebuild a SIC/XE assembly listing from an object program",
		Long: "Disassembles a SIC/XE object program, using the assembler's symbol table\n" +
			"for labels and the literal pool, and writes a five-column listing.",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 2 {
				return errors.Wrapf(errUsage, "got %d arguments", len(args))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, &opts, args[0], args[1])
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		return errors.Wrap(errUsage, err.Error())
	})

	flags := cmd.Flags()
	flags.StringVar(&opts.config, "config", "", "Path of a TOML config file")
	flags.StringVarP(&opts.output, "output", "o", "out.lst", "Listing file to write")
	flags.IntVarP(&opts.width, "width", "w", disassembler.DefaultColumnWidth, "Width of each listing column")
	flags.StringVar(&opts.logLevel, "log-level", "warn", "Log messages above specified level: debug, info, warn, error")
	flags.BoolVarP(&opts.modes, "modes", "m", false, "Write the addressing-mode report instead of the listing")
	return cmd
}

// settings merges the config file with the flags that were given explicitly.
func settings(cmd *cobra.Command, opts *options) (*config.Config, error) {
	cfg := config.Default()
	if opts.config != "" {
		var err error
		if cfg, err = config.Load(opts.config); err != nil {
			return nil, err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("output") {
		cfg.Output = opts.output
	}
	if flags.Changed("width") {
		cfg.ColumnWidth = opts.width
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = opts.logLevel
	}
	if flags.Changed("modes") && opts.modes {
		cfg.Format = config.FormatModes
	}
	return cfg, cfg.Validate()
}

func run(cmd *cobra.Command, opts *options, objectPath, symbolPath string) error {
	cfg, err := settings(cmd, opts)
	if err != nil {
		return err
	}
	level, _ := logrus.ParseLevel(cfg.LogLevel)
	logrus.SetLevel(level)

	listing, err := disassembler.DisassembleFiles(objectPath, symbolPath)
	if err != nil {
		return err
	}
	logrus.Infof("%s: %d listing rows", listing.Name, len(listing.Rows))

	var buf bytes.Buffer
	switch cfg.Format {
	case config.FormatModes:
		err = disassembler.WriteModes(&buf, listing, cfg.ColumnWidth)
	default:
		err = disassembler.Write(&buf, listing, cfg.ColumnWidth)
	}
	if err != nil {
		return err
	}

	if err := os.WriteFile(cfg.Output, buf.Bytes(), 0644); err != nil {
		return errors.Wrapf(err, "writing %s", cfg.Output)
	}
	logrus.Infof("listing written to %s", cfg.Output)
	return nil
}

func main() {
	logrus.SetOutput(os.Stderr)
	logrus.SetLevel(logrus.WarnLevel)

	cmd := newRootCommand()
	if err := cmd.Execute(); err != nil {
		code := exitCode(err)
		if code == exitUsage {
			fmt.Println(usage)
		} else {
			outputError(err)
		}
		os.Exit(code)
	}
}
