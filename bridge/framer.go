package bridge

import (
	"bytes"
	"strings"
)

// Framer splits an arriving byte stream into newline delimited request lines.
type Framer struct {
	buffer []byte
}

// Push appends chunk and returns every complete, non blank line it closes.
func (f *Framer) Push(chunk []byte) []string {
	f.buffer = append(f.buffer, chunk...)
	var lines []string
	for {
		index := bytes.IndexByte(f.buffer, '\n')
		if index == -1 {
			break
		}
		line := string(f.buffer[:index])
		f.buffer = f.buffer[index+1:]
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	if len(f.buffer) == 0 {
		f.buffer = nil
	}
	return lines
}

// Flush returns the unterminated remainder at end of input, if it is not blank.
func (f *Framer) Flush() (string, bool) {
	rest := string(f.buffer)
	f.buffer = nil
	if strings.TrimSpace(rest) == "" {
		return "", false
	}
	return rest, true
}
