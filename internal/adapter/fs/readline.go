package fs

import (
	"bufio"
	"strings"
)

// readLine reads one raw line from r, terminator included. A line ends at
// "\n", "\r\n" or a lone "\r". The final unterminated line is returned with
// io.EOF; at end of input the result is "" and io.EOF.
func readLine(r *bufio.Reader) (string, error) {
	var b strings.Builder
	for {
		c, err := r.ReadByte()
		if err != nil {
			return b.String(), err
		}
		b.WriteByte(c)

		switch c {
		case '\n':
			return b.String(), nil
		case '\r':
			// A failed peek surfaces on the next ReadByte.
			if next, err := r.Peek(1); err == nil && next[0] == '\n' {
				r.ReadByte()
				b.WriteByte('\n')
			}
			return b.String(), nil
		}
	}
}

// CountLines counts the lines in s using the same terminators as the line
// and chunk iterators, including a final unterminated line.
func CountLines(s string) int {
	n := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\n':
			n++
		case '\r':
			n++
			if i+1 < len(s) && s[i+1] == '\n' {
				i++
			}
		}
	}
	if s != "" && s[len(s)-1] != '\n' && s[len(s)-1] != '\r' {
		n++
	}
	return n
}
