package indexer

import (
	"bufio"
	"errors"
	"io"
)

// LineReader produces the lines of a reader. Each line keeps its trailing
// newline; a final line without one is produced as it is.
type LineReader struct {
	reader *bufio.Reader
	err    error
	done   bool
}

// NewLineReader creates a line producer over r
func NewLineReader(r io.Reader) *LineReader {
	return &LineReader{reader: bufio.NewReader(r)}
}

// Next returns the next line. A read error other than io.EOF ends the
// stream and is kept for Err.
func (lr *LineReader) Next() (string, bool) {
	if lr.done {
		return "", false
	}

	line, err := lr.reader.ReadString('\n')
	if err != nil {
		lr.done = true
		if !errors.Is(err, io.EOF) {
			lr.err = err
		}
	}

	if line == "" && lr.done {
		return "", false
	}
	return line, true
}

// Err returns the read error that ended the stream, if any
func (lr *LineReader) Err() error {
	return lr.err
}
