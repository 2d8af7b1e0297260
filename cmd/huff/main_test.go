// Copyright 2025 Jonathan Amsterdam. All rights reserved.
// Use of this source code is governed by a
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jba/huffpack"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
)

func newLogger() *logrus.Logger {
	log, _ := logtest.NewNullLogger()
	return log
}

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestCompressDecompress(t *testing.T) {
	want := []byte(strings.Repeat("a man a plan a canal panama\n", 50))
	in := writeFile(t, "in.txt", want)
	dir := t.TempDir()
	packed := filepath.Join(dir, "in.huff")
	unpacked := filepath.Join(dir, "out.txt")

	if err := run([]string{"compress", in, packed}, nil, newLogger()); err != nil {
		t.Fatal(err)
	}
	// The old spelling and -o work too.
	if err := run([]string{"--decompress", "-o", unpacked, packed}, nil, newLogger()); err != nil {
		t.Fatal(err)
	}
	got, err := os.ReadFile(unpacked)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, want) {
		t.Error("round trip through files failed")
	}
}

func TestPrint(t *testing.T) {
	in := writeFile(t, "in", []byte("aaaabbc"))
	var out bytes.Buffer
	if err := run([]string{"--print", in}, &out, newLogger()); err != nil {
		t.Fatal(err)
	}
	if got, want := out.String(), "97: 0\n98: 10\n99: 11\n"; got != want {
		t.Errorf("got\n%s\nwant\n%s", got, want)
	}
}

func TestStat(t *testing.T) {
	in := writeFile(t, "in", bytes.Repeat([]byte("xy"), 150))
	var out bytes.Buffer
	if err := run([]string{"stat", in}, &out, newLogger()); err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"input      300 bytes", "symbols    2", "payload    300 bits", "container  304 bytes"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("output missing %q:\n%s", want, out.String())
		}
	}
}

func TestVerbose(t *testing.T) {
	log, hook := logtest.NewNullLogger()
	in := writeFile(t, "in", []byte("aab"))
	out := filepath.Join(t.TempDir(), "out")
	if err := run([]string{"compress", "-v", in, out}, nil, log); err != nil {
		t.Fatal(err)
	}
	if log.Level != logrus.DebugLevel {
		t.Errorf("level = %s, want debug", log.Level)
	}
	if got := hook.LastEntry(); got == nil || got.Message != "wrote output" || got.Data["bytes"] != 267 {
		t.Errorf("last entry = %+v", got)
	}
}

func TestFlagsAfterFiles(t *testing.T) {
	in := writeFile(t, "in", []byte("aab"))
	dir := t.TempDir()
	for _, args := range [][]string{
		{"compress", in, filepath.Join(dir, "a"), "-v"},
		{"compress", in, "-o", filepath.Join(dir, "b"), "-v"},
		{"compress", "-v", in, "-o", filepath.Join(dir, "c")},
	} {
		log, hook := logtest.NewNullLogger()
		if err := run(args, nil, log); err != nil {
			t.Fatalf("%q: %v", args, err)
		}
		if e := hook.LastEntry(); e == nil || e.Message != "wrote output" {
			t.Errorf("%q: -v not applied, last entry %+v", args, e)
		}
	}
	for _, name := range []string{"a", "b", "c"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Error(err)
		}
	}
}

func TestErrors(t *testing.T) {
	empty := writeFile(t, "empty", nil)
	good := writeFile(t, "good", []byte("aab"))
	corrupt := writeFile(t, "corrupt", []byte("not a container"))
	missing := filepath.Join(t.TempDir(), "missing")
	unwritable := filepath.Join(t.TempDir(), "no", "such", "dir", "out")

	for _, test := range []struct {
		name string
		args []string
		want error
	}{
		{"no args", nil, errUsage},
		{"unknown command", []string{"squash", good}, errUsage},
		{"no output", []string{"compress", good}, errUsage},
		{"too many args", []string{"compress", good, "a", "b"}, errUsage},
		{"missing input", []string{"compress", missing, good + ".out"}, fs.ErrNotExist},
		{"unwritable output", []string{"compress", good, unwritable}, fs.ErrNotExist},
		{"empty input", []string{"compress", empty, good + ".out"}, huffpack.ErrEmptyInput},
		{"print empty", []string{"print", empty}, huffpack.ErrEmptyInput},
		{"corrupt", []string{"decompress", corrupt, good + ".out"}, huffpack.ErrMalformed},
	} {
		err := run(test.args, &bytes.Buffer{}, newLogger())
		if !errors.Is(err, test.want) {
			t.Errorf("%s: got %v, want %v", test.name, err, test.want)
		}
	}
	// Failed operations leave no output behind.
	if _, err := os.Stat(good + ".out"); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("output file exists after failures: %v", err)
	}
}
