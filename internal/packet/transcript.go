package packet

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Transcript is a fully parsed packet log.
type Transcript struct {
	Packets      []Packet
	Unrecognized []Unrecognized
	Counts       map[Kind]int
}

// ReadTranscript parses every line of r. Blank lines are skipped, unknown
// lines are collected, and the first malformed packet aborts the read.
// Lines may be of any length.
func (reg *Registry) ReadTranscript(r io.Reader) (*Transcript, error) {
	t := &Transcript{Counts: make(map[Kind]int)}

	br := bufio.NewReader(r)
	var prev Packet // previous non-blank line's packet, nil when unrecognized
	lineNo := 0
	for {
		raw, err := br.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("read transcript: %w", err)
		}
		if raw == "" && err != nil {
			break
		}
		lineNo++
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		p, err := reg.Parse(line, lineNo)
		if err != nil {
			return nil, err
		}
		if p == nil {
			// A board name and its label are split across two lines in most
			// captures; the line right after rbr is the label.
			if rbr, ok := prev.(*RbrPacket); ok && rbr.Label == "" {
				rbr.Label = line
				prev = nil
				continue
			}
			t.Unrecognized = append(t.Unrecognized, Unrecognized{LineNo: lineNo, Raw: line})
			prev = nil
			continue
		}
		t.Packets = append(t.Packets, p)
		t.Counts[p.Kind()]++
		prev = p
	}
	return t, nil
}

// ParseLines is ReadTranscript over an in-memory slice of lines.
func (reg *Registry) ParseLines(lines []string) (*Transcript, error) {
	return reg.ReadTranscript(strings.NewReader(strings.Join(lines, "\n")))
}
