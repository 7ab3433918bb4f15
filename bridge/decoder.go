package bridge

import (
	"bufio"
	"bytes"
	"encoding/json"
	"strings"

	"github.com/elnormous/contenttype"
)

const dataPrefix = "data: "

var (
	jsonMediaType        = contenttype.NewMediaType("application/json")
	eventStreamMediaType = contenttype.NewMediaType("text/event-stream")
)

// Decode turns a response body into the ordered JSON events it carries.
// Event streams yield one event per parseable "data: " line, anything else is
// treated as a single JSON document. Unparseable input yields no events.
func Decode(contentType string, body []byte) []json.RawMessage {
	if len(bytes.TrimSpace(body)) == 0 {
		return nil
	}
	if isEventStream(contentType) {
		return decodeEventStream(body)
	}
	if !json.Valid(body) {
		return nil
	}
	return []json.RawMessage{json.RawMessage(bytes.TrimSpace(body))}
}

func isEventStream(contentType string) bool {
	if contentType == "" {
		return false
	}
	mediaType := contenttype.NewMediaType(contentType)
	return mediaType.Matches(eventStreamMediaType)
}

func decodeEventStream(body []byte) []json.RawMessage {
	var events []json.RawMessage
	scanner := bufio.NewScanner(bytes.NewReader(body))
	scanner.Buffer(make([]byte, 0, 64*1024), len(body)+1)
	for scanner.Scan() {
		line := scanner.Text()
		if !strings.HasPrefix(line, dataPrefix) {
			continue
		}
		payload := strings.TrimSpace(strings.TrimPrefix(line, dataPrefix))
		if payload == "" || !json.Valid([]byte(payload)) {
			continue
		}
		events = append(events, json.RawMessage(payload))
	}
	return events
}
