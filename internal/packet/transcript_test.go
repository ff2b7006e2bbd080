package packet

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadTranscript(t *testing.T) {
	reg := newTestRegistry(t)
	input := strings.Join([]string{
		"rbr 1.0 4 15 5.20 1001.2 -1 -1 -1 0. 0 0 MyInstance",
		"Defeat every monster",
		"",
		"at 7 1002 10 5 2 0 0 0",
		"   ",
		"c_close 1",
		"walk 10 6 0 5",
		"in 3 50 900 10 6 2 0 0 0",
		"in 3 51 901 11 6 2 0 0 0",
	}, "\r\n")

	tr, err := reg.ReadTranscript(strings.NewReader(input))
	require.NoError(t, err)

	require.Len(t, tr.Packets, 5)
	assert.Equal(t, KindRbr, tr.Packets[0].Kind())
	assert.Equal(t, "Defeat every monster", tr.Packets[0].(*RbrPacket).Label)
	assert.Equal(t, 4, tr.Packets[1].Line())

	assert.Equal(t, map[Kind]int{KindRbr: 1, KindAt: 1, KindWalk: 1, KindIn: 2}, tr.Counts)
	assert.Equal(t, []Unrecognized{{LineNo: 6, Raw: "c_close 1"}}, tr.Unrecognized)
}

func TestReadTranscriptLabelOnlyDirectlyAfterBoard(t *testing.T) {
	reg := newTestRegistry(t)
	tr, err := reg.ParseLines([]string{
		"rbr 1.0 4 15 5.20 0 MyInstance",
		"at 7 1002 10 5 2 0 0 0",
		"not a label",
	})
	require.NoError(t, err)
	assert.Empty(t, tr.Packets[0].(*RbrPacket).Label)
	require.Len(t, tr.Unrecognized, 1)
	assert.Equal(t, "not a label", tr.Unrecognized[0].Raw)
}

func TestReadTranscriptKeepsInlineLabel(t *testing.T) {
	reg := newTestRegistry(t)
	tr, err := reg.ParseLines([]string{
		`rbr 1.0 4 15 5.20 0 Name\nInline`,
		"second line",
	})
	require.NoError(t, err)
	assert.Equal(t, "Inline", tr.Packets[0].(*RbrPacket).Label)
	assert.Len(t, tr.Unrecognized, 1)
}

func TestReadTranscriptAbortsOnMalformed(t *testing.T) {
	reg := newTestRegistry(t)
	tr, err := reg.ParseLines([]string{
		"at 7 1002 10 5 2 0 0 0",
		"walk 10",
		"walk 10 6 0 5",
	})
	require.Error(t, err)
	assert.Nil(t, tr)

	var me *MalformedError
	require.True(t, errors.As(err, &me))
	assert.Equal(t, KindWalk, me.Kind)
	assert.Equal(t, 2, me.LineNo)
}

func TestReadTranscriptEmpty(t *testing.T) {
	reg := newTestRegistry(t)
	tr, err := reg.ReadTranscript(strings.NewReader("\n\n"))
	require.NoError(t, err)
	assert.Empty(t, tr.Packets)
	assert.Empty(t, tr.Unrecognized)
}

func TestReadTranscriptLongLine(t *testing.T) {
	reg := newTestRegistry(t)
	text := strings.Repeat("x", 3<<20)
	input := "at 7 1002 10 5 2 0 0 0\nmsg 0 " + text + "\nwalk 10 6 0 5"

	tr, err := reg.ReadTranscript(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, tr.Packets, 3)
	msg, ok := tr.Packets[1].(*MsgPacket)
	require.True(t, ok)
	assert.Len(t, msg.Message, len(text))
	assert.Equal(t, 3, tr.Packets[2].Line())
}
