package stdio

import (
	"bufio"
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingWriter records each Write call so tests can see what was flushed when.
type countingWriter struct {
	writes [][]byte
	err    error
}

func (c *countingWriter) Write(p []byte) (int, error) {
	if c.err != nil {
		return 0, c.err
	}
	c.writes = append(c.writes, append([]byte(nil), p...))
	return len(p), nil
}

func TestBellAcknowledger_WritesAndFlushesOneByte(t *testing.T) {
	cw := &countingWriter{}
	ack := NewBellAcknowledger(bufio.NewWriter(cw))

	require.NoError(t, ack.Ack())
	require.Len(t, cw.writes, 1)
	assert.Equal(t, []byte{0x07}, cw.writes[0])

	require.NoError(t, ack.Ack())
	require.Len(t, cw.writes, 2)
	assert.Equal(t, []byte{0x07}, cw.writes[1])
}

func TestBellAcknowledger_BufferedOutputPrecedesSentinel(t *testing.T) {
	var out bytes.Buffer
	w := bufio.NewWriter(&out)
	ack := NewBellAcknowledger(w)

	_, err := w.WriteString("#0: hello\n")
	require.NoError(t, err)
	assert.Equal(t, 0, out.Len(), "hook output must stay buffered until the ack")

	require.NoError(t, ack.Ack())
	assert.Equal(t, "#0: hello\n\a", out.String())
}

func TestBellAcknowledger_FlushError(t *testing.T) {
	broken := errors.New("broken pipe")
	ack := NewBellAcknowledger(bufio.NewWriter(&countingWriter{err: broken}))

	err := ack.Ack()
	assert.ErrorIs(t, err, broken)
}
