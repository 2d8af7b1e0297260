// Copyright 2025 Jonathan Amsterdam. All rights reserved.
// Use of this source code is governed by a
// license that can be found in the LICENSE file.

// huff compresses files with a byte-oriented Huffman code.
//
// Usage:
//
//	huff compress [-v] [-o output] input [output]
//	huff decompress [-v] [-o output] input [output]
//	huff print input      print the code for each byte of input
//	huff stat input       report how well input compresses
//
// The spellings --compress, --decompress and --print are also accepted.
// The output file is written only if the whole operation succeeds.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jba/huffpack"
	"github.com/sirupsen/logrus"
)

func main() {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	if err := run(os.Args[1:], os.Stdout, log); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}

var errUsage = errors.New("usage: huff compress|decompress|print|stat [-v] [-o output] input [output]")

func run(args []string, stdout io.Writer, log *logrus.Logger) error {
	if len(args) == 0 {
		return errUsage
	}
	cmd := strings.TrimPrefix(args[0], "--")
	switch cmd {
	case "compress", "decompress", "print", "stat":
	default:
		return fmt.Errorf("unknown command %q; %w", args[0], errUsage)
	}

	fs := flag.NewFlagSet(cmd, flag.ContinueOnError)
	fs.SetOutput(log.Out)
	verbose := fs.Bool("v", false, "log debug messages")
	output := fs.String("o", "", "output `file`")
	// Flags may also follow the file names.
	var files []string
	for rest := args[1:]; ; {
		if err := fs.Parse(rest); err != nil {
			return err
		}
		if fs.NArg() == 0 {
			break
		}
		files = append(files, fs.Arg(0))
		rest = fs.Args()[1:]
	}
	if *verbose {
		log.SetLevel(logrus.DebugLevel)
	}
	if len(files) < 1 || len(files) > 2 {
		return errUsage
	}
	in, out := files[0], *output
	if len(files) == 2 {
		out = files[1]
	}

	data, err := os.ReadFile(in)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}
	log.WithFields(logrus.Fields{"file": in, "bytes": len(data)}).Debug("read input")

	switch cmd {
	case "compress", "decompress":
		if out == "" {
			return errUsage
		}
		convert := huffpack.Encode
		if cmd == "decompress" {
			convert = huffpack.Decode
		}
		res, err := convert(data, huffpack.WithLogger(log))
		if err != nil {
			return fmt.Errorf("%s %s: %w", cmd, in, err)
		}
		if err := os.WriteFile(out, res, 0o644); err != nil {
			return fmt.Errorf("writing output: %w", err)
		}
		log.WithFields(logrus.Fields{"file": out, "bytes": len(res)}).Debug("wrote output")
		return nil

	case "print":
		c, err := huffpack.NewCode(huffpack.Count(data))
		if err != nil {
			return fmt.Errorf("%s: %w", in, err)
		}
		return c.WriteTable(stdout)

	default: // stat
		s, err := huffpack.Analyze(data)
		if err != nil {
			return fmt.Errorf("%s: %w", in, err)
		}
		return printStats(stdout, s)
	}
}

func printStats(w io.Writer, s *huffpack.Stats) error {
	_, err := fmt.Fprintf(w, `input      %d bytes
symbols    %d
table      %d bytes
payload    %d bits (%.3f bits/byte)
container  %d bytes (%.1f%%)
zstd       %d bytes (%.1f%%)
`,
		s.InputBytes,
		s.Symbols,
		s.TableBytes,
		s.PayloadBits, s.BitsPerByte(),
		s.ContainerBytes, 100*s.Ratio(),
		s.ZstdBytes, 100*float64(s.ZstdBytes)/float64(s.InputBytes))
	return err
}
