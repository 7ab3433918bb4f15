package bridge

import (
	"bytes"
	"encoding/json"
	"io"
	"sync"
)

// Writer emits decoded events as newline delimited JSON. Events of a single
// response are written as one contiguous block.
type Writer struct {
	mu  sync.Mutex
	out io.Writer
}

// NewWriter creates a writer on top of out.
func NewWriter(out io.Writer) *Writer {
	return &Writer{out: out}
}

// Write writes every non null, well formed event followed by a newline and
// returns the number of lines written.
func (w *Writer) Write(events []json.RawMessage) (int, error) {
	block := &bytes.Buffer{}
	count := 0
	for _, event := range events {
		trimmed := bytes.TrimSpace(event)
		if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
			continue
		}
		mark := block.Len()
		if err := json.Compact(block, trimmed); err != nil {
			block.Truncate(mark)
			continue
		}
		block.WriteByte('\n')
		count++
	}
	if count == 0 {
		return 0, nil
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	if _, err := w.out.Write(block.Bytes()); err != nil {
		return 0, err
	}
	return count, nil
}
