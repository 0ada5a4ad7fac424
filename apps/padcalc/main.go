//
// main.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// padcalc prints the SHA-256 padding layout of messages. Messages are
// read from files, from the --string argument, or from standard input.
// With --length only the layout for a message of the given size is
// computed.
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/markkurossi/text/superscript"
	"github.com/spf13/pflag"

	"github.com/markkurossi/shapad/padding"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "padcalc: %v\n", err)
		os.Exit(1)
	}
}

type options struct {
	hex     bool
	digest  bool
	json    bool
	verbose bool
}

// message is one input. Length-only inputs carry no data.
type message struct {
	name       string
	length     uint64
	lengthOnly bool
	data       []byte
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	var opts options
	var str string
	var length uint64

	flags := pflag.NewFlagSet("padcalc", pflag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.StringVarP(&str, "string", "s", "", "pad the literal string instead of files")
	flags.Uint64VarP(&length, "length", "l", 0, "compute the layout for a message of `N` bytes")
	flags.BoolVarP(&opts.hex, "hex", "x", false, "dump the padded message in hex")
	flags.BoolVarP(&opts.digest, "digest", "d", false, "print the SHA-256 digest of the message")
	flags.BoolVarP(&opts.json, "json", "j", false, "emit JSON records instead of tables")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "debug logging")
	flags.BoolP("help", "h", false, "show help")

	if err := flags.Parse(args); err != nil {
		return err
	}
	if help, _ := flags.GetBool("help"); help {
		printHelp(stderr, flags)
		return nil
	}

	level := slog.LevelWarn
	if opts.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{
		Level: level,
	}))

	var messages []message
	if flags.Changed("length") {
		if opts.hex || opts.digest {
			return errors.New("--hex and --digest need message data, not --length")
		}
		messages = append(messages, message{
			name:       fmt.Sprintf("length %d", length),
			length:     length,
			lengthOnly: true,
		})
	}
	if flags.Changed("string") {
		messages = append(messages, newMessage("string", []byte(str)))
	}
	files := flags.Args()
	if len(files) == 0 && len(messages) == 0 {
		files = []string{"-"}
	}
	for _, file := range files {
		var data []byte
		var err error
		if file == "-" {
			data, err = io.ReadAll(stdin)
		} else {
			data, err = os.ReadFile(file)
		}
		if err != nil {
			return err
		}
		logger.Debug("read message", "file", file, "bytes", len(data))
		messages = append(messages, newMessage(file, data))
	}

	for _, msg := range messages {
		rec, err := process(logger, opts, msg)
		if err != nil {
			if errors.Is(err, padding.ErrOverflow) {
				return fmt.Errorf("%s: %w (messages must be shorter than 2%s bytes)",
					msg.name, err, superscript.Itoa(61))
			}
			return fmt.Errorf("%s: %w", msg.name, err)
		}
		if opts.json {
			err = printJSON(stdout, rec)
		} else {
			err = printTable(stdout, rec)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func newMessage(name string, data []byte) message {
	return message{
		name:   name,
		length: uint64(len(data)),
		data:   data,
	}
}

func printHelp(w io.Writer, flags *pflag.FlagSet) {
	fmt.Fprintf(w, `padcalc prints the SHA-256 padding of messages.

Usage:
  padcalc [flags] [file ...]

With no files, --string or --length, the message is read from
standard input. A file named "-" also reads standard input.

Examples:
  padcalc --string abc
  padcalc --hex --digest message.bin
  padcalc --json --length 56

Flags:
`)
	flags.SetOutput(w)
	flags.PrintDefaults()
}
