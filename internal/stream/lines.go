package stream

import (
	"bufio"
	"errors"
	"io"
	"iter"
)

// readLines yields records from r split at LF, CRLF or a lone CR. A CRLF
// pair is one delimiter even when it straddles two reads. A final record
// without a terminator is yielded when non-empty. Records may be
// arbitrarily long.
func readLines(r io.Reader) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		br := bufio.NewReader(r)
		var buf []byte
		for {
			c, err := br.ReadByte()
			if err != nil {
				if !errors.Is(err, io.EOF) {
					yield("", err)
					return
				}
				if len(buf) > 0 {
					yield(string(buf), nil)
				}
				return
			}

			switch c {
			case '\n':
			case '\r':
				next, peekErr := br.Peek(1)
				if peekErr != nil && !errors.Is(peekErr, io.EOF) {
					yield("", peekErr)
					return
				}
				if len(next) == 1 && next[0] == '\n' {
					_, _ = br.ReadByte()
				}
			default:
				buf = append(buf, c)
				continue
			}

			if !yield(string(buf), nil) {
				return
			}
			buf = buf[:0]
		}
	}
}
