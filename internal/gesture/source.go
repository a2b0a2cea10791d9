package gesture

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// Source yields landmark frames. Next returns io.EOF when the stream ends.
type Source interface {
	Next() (Frame, error)
}

// FrameError reports a line that could not be decoded. The stream itself
// is still usable.
type FrameError struct {
	Line int
	Err  error
}

func (e *FrameError) Error() string {
	return fmt.Sprintf("gesture: frame on line %d: %v", e.Line, e.Err)
}

func (e *FrameError) Unwrap() error { return e.Err }

// JSONLines reads one JSON-encoded Frame per line, as written by an
// external hand-landmark detector.
type JSONLines struct {
	sc     *bufio.Scanner
	closer io.Closer
	line   int
}

const maxFrameLine = 1 << 20

// NewJSONLines reads frames from r. If r is an io.Closer, Close closes it.
func NewJSONLines(r io.Reader) *JSONLines {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxFrameLine)
	s := &JSONLines{sc: sc}
	if c, ok := r.(io.Closer); ok {
		s.closer = c
	}
	return s
}

// Open opens a landmark stream at path; "-" means standard input. Closing
// the stream closes stdin too, which is what unblocks a pending read.
func Open(path string) (*JSONLines, error) {
	if path == "-" {
		return NewJSONLines(os.Stdin), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("gesture: cannot open landmark stream: %w", err)
	}
	return NewJSONLines(f), nil
}

// Next returns the next frame, skipping blank lines.
func (s *JSONLines) Next() (Frame, error) {
	for s.sc.Scan() {
		s.line++
		line := bytes.TrimSpace(s.sc.Bytes())
		if len(line) == 0 {
			continue
		}
		var f Frame
		if err := json.Unmarshal(line, &f); err != nil {
			return Frame{}, &FrameError{Line: s.line, Err: err}
		}
		return f, nil
	}
	if err := s.sc.Err(); err != nil {
		return Frame{}, fmt.Errorf("gesture: read landmarks: %w", err)
	}
	return Frame{}, io.EOF
}

// Close closes the underlying reader, unblocking a pending Next.
func (s *JSONLines) Close() error {
	if s.closer == nil {
		return nil
	}
	return s.closer.Close()
}
