// Package framing implements ports.FrameReader for the two wire disciplines
// the orchestrator can speak: line-delimited JSON and length-prefixed text.
package framing

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/bft-labs/yqrt/internal/ports"
)

// Discipline names, as accepted by configuration.
const (
	DisciplineJSON   = "json"
	DisciplineLength = "length"
)

// maxHeaderBytes bounds a length-prefixed header line ("<event-name> <byte-length>").
const maxHeaderBytes = 1024

var errLineTooLong = errors.New("line exceeds limit")

// Limits constrains frame decode memory use.
type Limits struct {
	MaxFrameBytes int
}

// DefaultLimits returns the limits used when none are configured.
func DefaultLimits() Limits {
	return Limits{
		MaxFrameBytes: 8 * 1024 * 1024,
	}
}

// NewReader returns the FrameReader for the named discipline.
func NewReader(discipline string, r io.Reader, limits Limits) (ports.FrameReader, error) {
	switch discipline {
	case DisciplineJSON:
		return NewJSONReader(r, limits), nil
	case DisciplineLength:
		return NewLengthReader(r, limits), nil
	default:
		return nil, fmt.Errorf("unknown framing discipline %q (want %s or %s)", discipline, DisciplineJSON, DisciplineLength)
	}
}

// readLine reads through the next '\n', refusing to buffer more than max bytes
// of content. At end of stream it returns whatever was read along with io.EOF.
func readLine(r *bufio.Reader, max int) ([]byte, error) {
	var line []byte
	for {
		chunk, err := r.ReadSlice('\n')
		line = append(line, chunk...)
		if max > 0 && len(line) > max+1 {
			return line, errLineTooLong
		}
		if errors.Is(err, bufio.ErrBufferFull) {
			continue
		}
		return line, err
	}
}
