package framing

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/bft-labs/yqrt/internal/domain"
)

// LengthReader reads length-prefixed frames:
//
//	<event-name> <byte-length>\n<exactly byte-length raw bytes>
//
// The body carries no trailing delimiter; the next header follows immediately.
// Whitespace between frames is skipped.
type LengthReader struct {
	r      *bufio.Reader
	limits Limits
}

// NewLengthReader creates a reader for the length-prefixed discipline.
func NewLengthReader(r io.Reader, limits Limits) *LengthReader {
	return &LengthReader{r: bufio.NewReader(r), limits: limits}
}

// Discipline implements ports.FrameReader.
func (l *LengthReader) Discipline() string { return DisciplineLength }

// Next implements ports.FrameReader.
func (l *LengthReader) Next() (domain.Frame, error) {
	skipped, err := l.skipSpace()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return domain.Frame{}, io.EOF
		}
		return domain.Frame{}, fmt.Errorf("read frame: %w", err)
	}

	header, err := readLine(l.r, maxHeaderBytes)
	switch {
	case errors.Is(err, errLineTooLong):
		return domain.Frame{}, l.fail(fmt.Sprintf("header longer than %d bytes", maxHeaderBytes), nil)
	case errors.Is(err, io.EOF):
		return domain.Frame{}, l.fail("header not terminated", io.ErrUnexpectedEOF)
	case err != nil:
		return domain.Frame{}, fmt.Errorf("read frame: %w", err)
	}

	fields := strings.Fields(string(header))
	if len(fields) != 2 {
		return domain.Frame{}, l.fail(fmt.Sprintf("malformed header %q", strings.TrimSpace(string(header))), nil)
	}
	name := fields[0]
	n, err := strconv.Atoi(fields[1])
	if err != nil || n < 0 {
		return domain.Frame{}, l.fail(fmt.Sprintf("invalid length %q", fields[1]), err)
	}
	if l.limits.MaxFrameBytes > 0 && n > l.limits.MaxFrameBytes {
		return domain.Frame{}, l.fail(fmt.Sprintf("declared length %d exceeds limit %d", n, l.limits.MaxFrameBytes), nil)
	}

	body := make([]byte, n)
	if n > 0 {
		if _, err := io.ReadFull(l.r, body); err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
				return domain.Frame{}, l.fail("declared length not satisfied", io.ErrUnexpectedEOF)
			}
			return domain.Frame{}, fmt.Errorf("read frame body: %w", err)
		}
	}

	frame := domain.Frame{
		Kind: domain.ParseKind(name),
		Name: name,
		Size: skipped + len(header) + n,
	}
	if frame.Kind != domain.KindInit {
		frame.Payload = domain.Text(body)
	}
	return frame, nil
}

// skipSpace discards whitespace before the next header and reports how many
// bytes it consumed. It returns io.EOF if the stream ends first.
func (l *LengthReader) skipSpace() (int, error) {
	n := 0
	for {
		b, err := l.r.ReadByte()
		if err != nil {
			return n, err
		}
		switch b {
		case ' ', '\t', '\n', '\r', '\v', '\f':
			n++
			continue
		}
		return n, l.r.UnreadByte()
	}
}

func (l *LengthReader) fail(reason string, err error) error {
	return &domain.FramingError{Discipline: DisciplineLength, Reason: reason, Err: err}
}
