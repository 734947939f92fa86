// Package filter streams terminal-capture lines from a reader to a writer,
// cleaning each one.
package filter

import (
	"bufio"
	"fmt"
	"io"

	"github.com/interpretive-systems/delog/internal/ansi"
)

// maxLine caps a single capture line. Captures with heavy cursor
// addressing run far past the bufio default.
const maxLine = 1024 * 1024

// Run reads r line by line until end of stream, cleans each line, and
// writes it to w followed by a newline, in input order. Lines are
// processed independently; no state spans lines. The first read or write
// fault ends the stream and is returned.
func Run(r io.Reader, w io.Writer) error {
	s := bufio.NewScanner(bufio.NewReader(r))
	s.Buffer(make([]byte, 0, 64*1024), maxLine)
	bw := bufio.NewWriter(w)
	for s.Scan() {
		if _, err := fmt.Fprintln(bw, ansi.CleanLine(s.Text())); err != nil {
			return fmt.Errorf("write: %w", err)
		}
	}
	if err := s.Err(); err != nil {
		return fmt.Errorf("read: %w", err)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write: %w", err)
	}
	return nil
}
