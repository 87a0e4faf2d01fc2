package framing

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/bft-labs/yqrt/internal/domain"
)

// wireEvent is one line of the JSON discipline. Pointer fields distinguish
// a missing key from a zero value.
type wireEvent struct {
	Kind      *string `json:"kind"`
	Author    *int64  `json:"author"`
	Timestamp *int64  `json:"timestamp"`
	Text      *string `json:"text"`
}

// JSONReader reads one JSON object per line:
//
//	{"kind":"init"}
//	{"kind":"message","author":1,"timestamp":1000,"text":"hi"}
//
// Key order is irrelevant and unknown keys are ignored.
type JSONReader struct {
	r      *bufio.Reader
	limits Limits
}

// NewJSONReader creates a reader for the line-delimited JSON discipline.
func NewJSONReader(r io.Reader, limits Limits) *JSONReader {
	return &JSONReader{r: bufio.NewReader(r), limits: limits}
}

// Discipline implements ports.FrameReader.
func (j *JSONReader) Discipline() string { return DisciplineJSON }

// Next implements ports.FrameReader.
func (j *JSONReader) Next() (domain.Frame, error) {
	line, err := readLine(j.r, j.limits.MaxFrameBytes)
	switch {
	case errors.Is(err, errLineTooLong):
		return domain.Frame{}, j.fail(fmt.Sprintf("line longer than %d bytes", j.limits.MaxFrameBytes), nil)
	case errors.Is(err, io.EOF):
		if len(line) == 0 {
			return domain.Frame{}, io.EOF
		}
		// A final line without a newline still counts.
	case err != nil:
		return domain.Frame{}, fmt.Errorf("read frame: %w", err)
	}

	size := len(line)
	line = bytes.TrimSuffix(line, []byte("\n"))
	line = bytes.TrimSuffix(line, []byte("\r"))
	if j.limits.MaxFrameBytes > 0 && len(line) > j.limits.MaxFrameBytes {
		return domain.Frame{}, j.fail(fmt.Sprintf("line longer than %d bytes", j.limits.MaxFrameBytes), nil)
	}
	if len(bytes.TrimSpace(line)) == 0 {
		return domain.Frame{}, j.fail("empty line", nil)
	}

	var ev wireEvent
	if err := json.Unmarshal(line, &ev); err != nil {
		return domain.Frame{}, j.fail("malformed event", err)
	}
	if ev.Kind == nil {
		return domain.Frame{}, j.fail(`missing "kind"`, nil)
	}

	frame := domain.Frame{
		Kind: domain.ParseKind(*ev.Kind),
		Name: *ev.Kind,
		Size: size,
	}
	if frame.Kind != domain.KindMessage {
		return frame, nil
	}

	switch {
	case ev.Author == nil:
		return domain.Frame{}, j.fail(`message missing "author"`, nil)
	case ev.Timestamp == nil:
		return domain.Frame{}, j.fail(`message missing "timestamp"`, nil)
	case ev.Text == nil:
		return domain.Frame{}, j.fail(`message missing "text"`, nil)
	}
	frame.Payload = domain.Message{
		Author:    *ev.Author,
		Timestamp: *ev.Timestamp,
		Text:      *ev.Text,
	}
	return frame, nil
}

func (j *JSONReader) fail(reason string, err error) error {
	return &domain.FramingError{Discipline: DisciplineJSON, Reason: reason, Err: err}
}
