package curriculum

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecodeRecord(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   Record
		wantOK bool
	}{
		{
			name:   "current and done",
			input:  "header\n\nintro2\n\nintro1\nvars1\n",
			want:   Record{Current: "intro2", Done: []string{"intro1", "vars1"}},
			wantOK: true,
		},
		{
			name:   "no done exercises",
			input:  "header\n\nintro1\n\n",
			want:   Record{Current: "intro1"},
			wantOK: true,
		},
		{
			name:   "minimum four lines",
			input:  "header\n\nintro1\n",
			want:   Record{Current: "intro1"},
			wantOK: true,
		},
		{
			name:   "done list stops at blank line",
			input:  "header\n\nintro1\n\na\nb\n\nc\n",
			want:   Record{Current: "intro1", Done: []string{"a", "b"}},
			wantOK: true,
		},
		{
			name:   "crlf line endings",
			input:  "header\r\n\r\nintro1\r\n\r\na\r\n",
			want:   Record{Current: "intro1", Done: []string{"a"}},
			wantOK: true,
		},
		{name: "empty", input: ""},
		{name: "three lines", input: "header\n\nintro1"},
		{name: "blank current", input: "header\n\n   \n\nintro1\n"},
		{name: "garbage", input: "\x00\x01\x02"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := DecodeRecord([]byte(tt.input))
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEncodeRecord_Layout(t *testing.T) {
	got := string(EncodeRecord(Record{Current: "b", Done: []string{"a", "c"}}))
	assert.Equal(t, progressHeader+"\n\nb\n\na\nc\n", got)
}
