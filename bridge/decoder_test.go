package bridge

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecode(t *testing.T) {
	var testCases = []struct {
		description string
		contentType string
		body        string
		expect      []string
	}{
		{
			description: "empty body",
			contentType: "application/json",
			body:        "",
		},
		{
			description: "whitespace body",
			contentType: "text/event-stream",
			body:        " \n\t",
		},
		{
			description: "plain json",
			contentType: "application/json",
			body:        `{"jsonrpc":"2.0","id":1,"result":{}}`,
			expect:      []string{`{"jsonrpc":"2.0","id":1,"result":{}}`},
		},
		{
			description: "plain json without content type",
			body:        "[1,2]\n",
			expect:      []string{`[1,2]`},
		},
		{
			description: "malformed plain json",
			contentType: "application/json",
			body:        `{bad`,
		},
		{
			description: "event stream skips malformed data",
			contentType: "text/event-stream",
			body:        "data: {\"a\":1}\ndata: not-json\ndata: {\"b\":2}\n",
			expect:      []string{`{"a":1}`, `{"b":2}`},
		},
		{
			description: "event stream with charset and sse fields",
			contentType: "text/event-stream; charset=utf-8",
			body:        "event: message\nid: 7\ndata: {\"a\":1}\r\n\r\n: keep-alive\ndata:{\"c\":3}\n\ndata: {\"b\":2}",
			expect:      []string{`{"a":1}`, `{"b":2}`},
		},
		{
			description: "event stream body ignored as plain json",
			contentType: "application/json",
			body:        "data: {\"a\":1}\n",
		},
	}

	for _, testCase := range testCases {
		actual := Decode(testCase.contentType, []byte(testCase.body))
		if !assert.Len(t, actual, len(testCase.expect), testCase.description) {
			continue
		}
		for i, expect := range testCase.expect {
			assert.JSONEq(t, expect, string(actual[i]), testCase.description)
			assert.True(t, json.Valid(actual[i]), testCase.description)
		}
	}
}
