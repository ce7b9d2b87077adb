// Package trace parses address trace files: plain text, one hexadecimal
// address per line, optional 0x prefix, blank lines skipped. A malformed
// line rejects the whole trace with its line number, so no partial trace is
// ever installed.
package trace

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// MalformedLineError reports the first unparseable line of a trace.
// Line numbers are 1-based and count every line, including blanks.
type MalformedLineError struct {
	Line int
	Text string
}

func (e *MalformedLineError) Error() string {
	return fmt.Sprintf("trace line %d: malformed hex address %q", e.Line, e.Text)
}

// Parse reads one hexadecimal address per line from r, preserving file
// order. Leading/trailing whitespace is tolerated and blank lines are
// skipped. The load is atomic: any malformed line fails the whole parse.
func Parse(r io.Reader) ([]uint64, error) {
	addrs := []uint64{}
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		hex := strings.TrimPrefix(strings.TrimPrefix(line, "0x"), "0X")
		addr, err := strconv.ParseUint(hex, 16, 64)
		if err != nil {
			return nil, &MalformedLineError{Line: lineNo, Text: line}
		}
		addrs = append(addrs, addr)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading trace: %w", err)
	}
	return addrs, nil
}

// ParseFile opens path and parses it with Parse.
func ParseFile(path string) ([]uint64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening trace: %w", err)
	}
	defer f.Close()
	return Parse(f)
}
