package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/eigerco/serialnumber/pkg/log"
	"github.com/eigerco/serialnumber/pkg/serial"
	"lukechampine.com/uint128"
)

var (
	errUsage            = errors.New("expected exactly two serial numbers")
	errUnsupportedWidth = errors.New("unsupported width, use 8, 16, 32, 64 or 128")
)

// main prints how two serial numbers compare under RFC 1982.
// go run ./cmd/serialcmp -width 8 10 250
func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "serialcmp: %v\n", err)
		os.Exit(2)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("serialcmp", flag.ContinueOnError)
	fs.SetOutput(stderr)
	width := fs.Uint("width", 8, "serial number width in bits: 8, 16, 32, 64 or 128")
	logLevel := fs.String("loglevel", "info", "log level: trace, debug, info, warn, error")
	jsonLog := fs.Bool("json", false, "write logs as JSON")
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "usage: serialcmp [flags] s1 s2")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return err
	}

	lvl, err := log.ParseLogLevel(*logLevel)
	if err != nil {
		return fmt.Errorf("invalid -loglevel: %w", err)
	}
	log.Init(log.Options{LogLevel: lvl, Type: log.ParseLoggerType(*jsonLog), Out: stderr})

	if fs.NArg() != 2 {
		return errUsage
	}
	a, b := fs.Arg(0), fs.Arg(1)

	switch *width {
	case 8:
		return compare[uint8](stdout, a, b)
	case 16:
		return compare[uint16](stdout, a, b)
	case 32:
		return compare[uint32](stdout, a, b)
	case 64:
		return compare[uint64](stdout, a, b)
	case 128:
		return compare[uint128.Uint128](stdout, a, b)
	default:
		return fmt.Errorf("width %d: %w", *width, errUnsupportedWidth)
	}
}

func compare[T serial.Width](w io.Writer, a, b string) error {
	s1, err := serial.Parse[T](a)
	if err != nil {
		return fmt.Errorf("s1: %w", err)
	}
	s2, err := serial.Parse[T](b)
	if err != nil {
		return fmt.Errorf("s2: %w", err)
	}

	log.CLI.Debug().
		Uint("width", serial.Bits[T]()).
		Stringer("s1", s1).
		Stringer("s2", s2).
		Msg("comparing serial numbers")

	_, err = io.WriteString(w, comparisonTable(s1, s2))
	return err
}
