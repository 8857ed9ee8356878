// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package prompt implements the interactive input loops: collecting
// validated filenames until the quit sentinel, asking yes/no questions, and
// obtaining the output filename.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

// IsQuit reports whether line is the collection sentinel. Both the short and
// long forms are accepted, case-insensitively.
func IsQuit(line string) bool {
	switch strings.ToLower(line) {
	case "q", "quit":
		return true
	}
	return false
}

// readLine reads one trimmed line from in. ok is false at end of input,
// which callers treat like the sentinel so a closed stdin cannot loop forever.
func readLine(in *bufio.Reader) (line string, ok bool) {
	s, err := in.ReadString('\n')
	if err != nil && s == "" {
		return "", false
	}
	return strings.TrimSpace(s), true
}

// Collect reads filenames from in until the sentinel, passing each through
// check. Accepted names are echoed and accumulated in input order; rejected
// ones print the failure reason and are re-prompted. An empty result is
// valid and means the caller should abort its feature.
func Collect(in *bufio.Reader, out io.Writer, check func(string) error) []string {
	var accepted []string
	for {
		fmt.Fprint(out, "> ")
		line, ok := readLine(in)
		if !ok || IsQuit(line) {
			return accepted
		}
		if line == "" {
			continue
		}
		if err := check(line); err != nil {
			fmt.Fprintf(out, "error: %v\n", err)
			continue
		}
		accepted = append(accepted, line)
		fmt.Fprintf(out, "validated: %s\n", line)
	}
}

// WithPDFSuffix appends ".pdf" to name unless it already ends in it
// (any case). Names already suffixed are returned unchanged.
func WithPDFSuffix(name string) string {
	if strings.HasSuffix(strings.ToLower(name), ".pdf") {
		return name
	}
	return name + ".pdf"
}

// OutputName prompts for the output filename, offering def when the user
// enters nothing. The result always carries a .pdf suffix and never a
// directory component.
func OutputName(in *bufio.Reader, out io.Writer, def string) string {
	for {
		fmt.Fprintf(out, "\nEnter output filename (%s): ", def)
		line, ok := readLine(in)
		if !ok {
			return def
		}
		if line == "" {
			line = def
		}
		line = WithPDFSuffix(line)
		if line != filepath.Base(line) || strings.ContainsAny(line, `/\`) {
			fmt.Fprintln(out, "error: please enter a filename only, not a path")
			continue
		}
		return line
	}
}

// Confirm asks question and reports whether the user answered "y".
func Confirm(in *bufio.Reader, out io.Writer, question string) bool {
	fmt.Fprintf(out, "%s (y/n): ", question)
	line, ok := readLine(in)
	return ok && strings.EqualFold(line, "y")
}
