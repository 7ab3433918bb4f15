package bridge

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFramer_Push(t *testing.T) {
	var testCases = []struct {
		description string
		chunks      []string
		expect      []string
		expectRest  string
		hasRest     bool
	}{
		{
			description: "single complete line",
			chunks:      []string{"{\"id\":1}\n"},
			expect:      []string{`{"id":1}`},
		},
		{
			description: "line split across chunks",
			chunks:      []string{"{\"id\"", ":1}\n{\"id\":", "2}\n"},
			expect:      []string{`{"id":1}`, `{"id":2}`},
		},
		{
			description: "blank lines dropped",
			chunks:      []string{"\n  \n{\"id\":1}\n\t\n"},
			expect:      []string{`{"id":1}`},
		},
		{
			description: "unterminated remainder flushed",
			chunks:      []string{"{\"id\":1}\n{\"id\":2}"},
			expect:      []string{`{"id":1}`},
			expectRest:  `{"id":2}`,
			hasRest:     true,
		},
		{
			description: "whitespace remainder discarded",
			chunks:      []string{"{\"id\":1}\n   "},
			expect:      []string{`{"id":1}`},
		},
	}

	for _, testCase := range testCases {
		framer := &Framer{}
		var actual []string
		for _, chunk := range testCase.chunks {
			actual = append(actual, framer.Push([]byte(chunk))...)
		}
		assert.EqualValues(t, testCase.expect, actual, testCase.description)
		rest, ok := framer.Flush()
		assert.EqualValues(t, testCase.hasRest, ok, testCase.description)
		assert.EqualValues(t, testCase.expectRest, rest, testCase.description)
	}
}

func TestFramer_FlushResets(t *testing.T) {
	framer := &Framer{}
	framer.Push([]byte(`{"a":1}`))
	rest, ok := framer.Flush()
	assert.True(t, ok)
	assert.Equal(t, `{"a":1}`, rest)
	_, ok = framer.Flush()
	assert.False(t, ok)
}
