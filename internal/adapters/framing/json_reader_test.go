package framing

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bft-labs/yqrt/internal/domain"
)

func TestJSONReader_Message(t *testing.T) {
	r := NewJSONReader(strings.NewReader(`{"kind":"message","author":1,"timestamp":1000,"text":"hi"}`+"\n"), DefaultLimits())

	f, err := r.Next()
	require.NoError(t, err)
	assert.Equal(t, domain.KindMessage, f.Kind)
	assert.Equal(t, domain.Message{Author: 1, Timestamp: 1000, Text: "hi"}, f.Payload)

	_, err = r.Next()
	assert.ErrorIs(t, err, io.EOF)
}

func TestJSONReader_KeyOrderAndExtraKeys(t *testing.T) {
	in := `{"text":"yo","extra":[1,2],"timestamp":5,"kind":"message","author":-3}` + "\r\n" + `{"kind":"init"}`
	r := NewJSONReader(strings.NewReader(in), DefaultLimits())

	f, err := r.Next()
	require.NoError(t, err)
	assert.Equal(t, domain.Message{Author: -3, Timestamp: 5, Text: "yo"}, f.Payload)

	// Final line without trailing newline.
	f, err = r.Next()
	require.NoError(t, err)
	assert.Equal(t, domain.KindInit, f.Kind)
	assert.Nil(t, f.Payload)

	_, err = r.Next()
	assert.ErrorIs(t, err, io.EOF)
}

func TestJSONReader_UnknownKindIsReturned(t *testing.T) {
	r := NewJSONReader(strings.NewReader(`{"kind":"shutdown"}`+"\n"), DefaultLimits())

	f, err := r.Next()
	require.NoError(t, err)
	assert.Equal(t, domain.KindUnknown, f.Kind)
	assert.Equal(t, "shutdown", f.Name)
}

func TestJSONReader_LargeTimestamp(t *testing.T) {
	r := NewJSONReader(strings.NewReader(`{"kind":"message","author":9007199254740993,"timestamp":1700000000000,"text":""}`), DefaultLimits())

	f, err := r.Next()
	require.NoError(t, err)
	msg, ok := f.Payload.(domain.Message)
	require.True(t, ok)
	assert.Equal(t, int64(9007199254740993), msg.Author)
	assert.Equal(t, int64(1700000000000), msg.Timestamp)
	assert.Equal(t, "", msg.Text)
}

func TestJSONReader_FramingErrors(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		limits Limits
		reason string
	}{
		{"not json", "hello\n", DefaultLimits(), "malformed event"},
		{"truncated object", `{"kind":"init"` + "\n", DefaultLimits(), "malformed event"},
		{"array", "[1,2]\n", DefaultLimits(), "malformed event"},
		{"trailing garbage", `{"kind":"init"} x` + "\n", DefaultLimits(), "malformed event"},
		{"empty line", "\n", DefaultLimits(), "empty line"},
		{"missing kind", `{"text":"hi"}` + "\n", DefaultLimits(), `missing "kind"`},
		{"null kind", `{"kind":null}` + "\n", DefaultLimits(), `missing "kind"`},
		{"numeric kind", `{"kind":1}` + "\n", DefaultLimits(), "malformed event"},
		{"missing author", `{"kind":"message","timestamp":1,"text":"x"}` + "\n", DefaultLimits(), `missing "author"`},
		{"missing timestamp", `{"kind":"message","author":1,"text":"x"}` + "\n", DefaultLimits(), `missing "timestamp"`},
		{"missing text", `{"kind":"message","author":1,"timestamp":1}` + "\n", DefaultLimits(), `missing "text"`},
		{"fractional author", `{"kind":"message","author":1.5,"timestamp":1,"text":"x"}` + "\n", DefaultLimits(), "malformed event"},
		{"string author", `{"kind":"message","author":"1","timestamp":1,"text":"x"}` + "\n", DefaultLimits(), "malformed event"},
		{"line over limit", `{"kind":"init"}` + "\n", Limits{MaxFrameBytes: 8}, "longer than"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewJSONReader(strings.NewReader(tt.input), tt.limits)
			_, err := r.Next()
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrFraming)

			var fe *domain.FramingError
			require.True(t, errors.As(err, &fe))
			assert.Equal(t, DisciplineJSON, fe.Discipline)
			assert.Contains(t, fe.Reason, tt.reason)
		})
	}
}

func TestNewReader(t *testing.T) {
	r, err := NewReader(DisciplineJSON, strings.NewReader(""), DefaultLimits())
	require.NoError(t, err)
	assert.Equal(t, DisciplineJSON, r.Discipline())

	r, err = NewReader(DisciplineLength, strings.NewReader(""), DefaultLimits())
	require.NoError(t, err)
	assert.Equal(t, DisciplineLength, r.Discipline())

	_, err = NewReader("xml", strings.NewReader(""), DefaultLimits())
	assert.Error(t, err)
}
