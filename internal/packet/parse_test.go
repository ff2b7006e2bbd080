package packet

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func newTestRegistry(t *testing.T, sendPackets ...string) *Registry {
	t.Helper()
	return NewRegistry(zaptest.NewLogger(t), sendPackets)
}

func TestParsePackets(t *testing.T) {
	reg := newTestRegistry(t, "sinfo")
	ignoreHeader := cmpopts.IgnoreFields(Header{}, "RawLine", "LineNo")

	tests := []struct {
		name string
		line string
		want Packet
	}{
		{
			name: "at",
			line: "at 7 1002 10 5 2 0 0 0",
			want: &AtPacket{CharacterID: 7, MapVNum: 1002, X: 10, Y: 5, Direction: 2},
		},
		{
			name: "at with trailing field",
			line: "at 7 1002 10 5 2 0 53 1 -1",
			want: &AtPacket{CharacterID: 7, MapVNum: 1002, X: 10, Y: 5, Direction: 2, Music: 53, Unknown2: 1, Unknown3: -1},
		},
		{
			name: "rsfp",
			line: "rsfp 3 9",
			want: &RsfPacket{Type: RsfPosition, Values: []int32{3, 9}},
		},
		{
			name: "rsfn skips junk values",
			line: "rsfn 1 a 2",
			want: &RsfPacket{Type: RsfNode, Values: []int32{1, 2}},
		},
		{
			name: "walk",
			line: "walk 10 6 0 5",
			want: &WalkPacket{X: 10, Y: 6, Speed: 5},
		},
		{
			name: "su",
			line: "su 1 7 3 900 240 8 11 200 10 6 0 0 550 0 0",
			want: &SuPacket{Type: 1, CallerID: 7, TargetType: 3, TargetID: 900, SkillVNum: 240,
				Cooldown: 8, AttackAnim: 11, SkillEffect: 200, X: 10, Y: 6, Damage: 550},
		},
		{
			name: "gp",
			line: "gp 14 1 2 0 3",
			want: &GpPacket{X: 14, Y: 1, DestMapID: 2, PortalID: 3},
		},
		{
			name: "gp disabled",
			line: "gp 14 28 1 2 1 1",
			want: &GpPacket{X: 14, Y: 28, DestMapID: 1, Type: 2, PortalID: 1, IsDisabled: 1},
		},
		{
			name: "msg keeps inner spacing",
			line: "msg 0  Kill   all monsters!",
			want: &MsgPacket{Message: "Kill   all monsters!"},
		},
		{
			name: "npc_req",
			line: "npc_req 2 9000 6001",
			want: &NpcReqPacket{Type: 2, Owner: 9000, DialogID: 6001},
		},
		{
			name: "evnt",
			line: "evnt 1 0 3000 3000",
			want: &EvntPacket{Type: 1, Time1: 3000, Time2: 3000},
		},
		{
			name: "out",
			line: "out 3 900",
			want: &OutPacket{TypeCode: 3, Entity: EntityMonster, EntityID: 900},
		},
		{
			name: "out tolerates garbage",
			line: "out x",
			want: &OutPacket{},
		},
		{
			name: "eff",
			line: "eff 3 900 824",
			want: &EffPacket{Type: 3, EntityID: 900, EffectID: 824},
		},
		{
			name: "preq",
			line: "preq",
			want: &PreqPacket{},
		},
		{
			name: "mapclean",
			line: "MapClean",
			want: &MapCleanPacket{},
		},
		{
			name: "send packet",
			line: "sinfo 1 2  3",
			want: &SendPacket{Value: "sinfo 1 2  3"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := reg.Parse(tt.line, 1)
			require.NoError(t, err)
			require.NotNil(t, got)
			assert.Equal(t, tt.want.Kind(), got.Kind())
			if diff := cmp.Diff(tt.want, got, ignoreHeader); diff != "" {
				t.Errorf("Parse(%q) mismatch (-want +got):\n%s", tt.line, diff)
			}
		})
	}
}

func TestParseKeepsSourceLine(t *testing.T) {
	reg := newTestRegistry(t)
	p, err := reg.Parse("  walk 1 2 0 5  ", 42)
	require.NoError(t, err)
	assert.Equal(t, "walk 1 2 0 5", p.Raw())
	assert.Equal(t, 42, p.Line())
}

func TestParseIn(t *testing.T) {
	reg := newTestRegistry(t)

	tests := []struct {
		name string
		line string
		want *InPacket
	}{
		{
			name: "monster without name",
			line: "in 3 50 900 10 6 2 100 100 0",
			want: &InPacket{TypeCode: 3, Entity: EntityMonster, VNum: 50, EntityID: 900,
				X: 10, Y: 6, Direction: 2, HP: 100, MP: 100},
		},
		{
			name: "npc with a single word name",
			line: "in 2 Guard 320 9000 5 7 1 100 100 6001 0 0",
			want: &InPacket{TypeCode: 2, Entity: EntityNpc, Name: "Guard", VNum: 320, EntityID: 9000,
				X: 5, Y: 7, Direction: 1, HP: 100, MP: 100, Dialog: 6001, Additional: []string{"0", "0"}},
		},
		{
			name: "player name with spaces",
			line: "in 1 Big Bad Wolf 7 12 13 2 0 0 0",
			want: &InPacket{TypeCode: 1, Entity: EntityPlayer, Name: "Big Bad Wolf", VNum: 7, EntityID: 12,
				X: 13, Y: 2},
		},
		{
			name: "object",
			line: "in 9 1000 2001 10 12 0 1 0",
			want: &InPacket{TypeCode: 9, Entity: EntityObject, VNum: 1000, EntityID: 2001,
				X: 10, Y: 12, Additional: []string{"1", "0"}},
		},
		{
			name: "unknown type",
			line: "in 5 60 901 1 2 3 0 0",
			want: &InPacket{TypeCode: 5, Entity: EntityUnknown, VNum: 60, EntityID: 901,
				X: 1, Y: 2, Direction: 3},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := reg.Parse(tt.line, 1)
			require.NoError(t, err)
			in, ok := got.(*InPacket)
			require.True(t, ok, "got %T", got)
			if diff := cmp.Diff(tt.want, in, cmpopts.IgnoreFields(InPacket{}, "Header"), cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseInNameWithoutNumbers(t *testing.T) {
	reg := newTestRegistry(t)
	p, err := reg.Parse("in 1 a b c d e f g", 1)
	require.NoError(t, err)
	in := p.(*InPacket)
	assert.Equal(t, "a b c", in.Name)
	assert.Zero(t, in.VNum)
}

func TestParseRbrBoard(t *testing.T) {
	reg := newTestRegistry(t)

	p, err := reg.Parse("rbr 1.0 4 15 5.20 1001.2 -1 -1 -1 0. 0 0 MyInstance", 1)
	require.NoError(t, err)
	rbr := p.(*RbrPacket)
	assert.Equal(t, "1.0", rbr.Version)
	assert.Equal(t, int32(4), rbr.FixedValue1)
	assert.Equal(t, int32(15), rbr.FixedValue2)
	assert.Equal(t, int32(5), rbr.LevelMinimum)
	assert.Equal(t, int32(20), rbr.LevelMaximum)
	assert.Equal(t, "MyInstance", rbr.Name)
	assert.Empty(t, rbr.Label)
	assert.Empty(t, rbr.DrawItems)
}

func TestParseRbrFullBoard(t *testing.T) {
	reg := newTestRegistry(t)

	line := `rbr 0.0.0 4 15 20.35 0 1012.3 -1 -1 -1 -1 2072.1 -1 1013.5 1014.2 -1 0. 0 0 Rescue the kid\nBring him home`
	p, err := reg.Parse(line, 1)
	require.NoError(t, err)
	rbr := p.(*RbrPacket)

	assert.Equal(t, int32(20), rbr.LevelMinimum)
	assert.Equal(t, int32(35), rbr.LevelMaximum)
	assert.Equal(t, []Item{{VNum: 1012, Amount: 3}}, rbr.DrawItems)
	assert.Equal(t, []Item{{VNum: 2072, Amount: 1}}, rbr.SpecialItems)
	assert.Equal(t, []Item{{VNum: 1013, Amount: 5}, {VNum: 1014, Amount: 2}}, rbr.GiftItems)
	assert.Equal(t, "Rescue the kid", rbr.Name)
	assert.Equal(t, "Bring him home", rbr.Label)
}

func TestParseMalformed(t *testing.T) {
	reg := newTestRegistry(t)

	tests := []struct {
		line string
		kind Kind
	}{
		{"at 1 2 3", KindAt},
		{"walk 10 x 0 5", KindWalk},
		{"su 1 2 3", KindSu},
		{"gp 14 1 2 0", KindGp},
		{"gp a 1 2 0 3", KindGp},
		{"msg 0", KindMsg},
		{"npc_req 1 2", KindNpcReq},
		{"evnt 1 0 10", KindEvnt},
		{"eff 3 x 824", KindEff},
		{"in 3 50 900", KindIn},
		{"in x 50 900 1 2 3 4 5", KindIn},
		{"in 9 1000 x 10 12 0 1 0", KindIn},
		{"rbr 1.0 4 15", KindRbr},
		{"rbr 1.0 x 15 5.20", KindRbr},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			p, err := reg.Parse(tt.line, 3)
			require.Error(t, err)
			assert.Nil(t, p)

			var me *MalformedError
			require.True(t, errors.As(err, &me))
			assert.Equal(t, tt.kind, me.Kind)
			assert.Equal(t, 3, me.LineNo)
			assert.Equal(t, tt.line, me.Raw)
			assert.Contains(t, err.Error(), "line 3")
		})
	}
}

func TestRecognize(t *testing.T) {
	reg := newTestRegistry(t, "sinfo", "AT")

	tests := []struct {
		line string
		kind Kind
		ok   bool
	}{
		{"at 1 2 3 4 5 6 7 8", KindAt, true},
		{"AT 1 2 3 4 5 6 7 8", KindAt, true},
		{"Walk 1 2 3 4", KindWalk, true},
		{"rsfm 1 2", KindRsf, true},
		{"preq", KindPreq, true},
		{"  PREQ  ", KindPreq, true},
		{"preq 1", KindUnknown, false},
		{"preqx", KindUnknown, false},
		{"mapclean", KindMapClean, true},
		{"mapclean now", KindUnknown, false},
		{"at", KindUnknown, false},
		{"atlas 1 2", KindUnknown, false},
		{"c_info 1 2", KindUnknown, false},
		{"sinfo 3", KindSendPacket, true},
		{"", KindUnknown, false},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			kind, ok := reg.Recognize(tt.line)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.kind, kind)
		})
	}
}

func TestUnrecognizedLineParsesToNil(t *testing.T) {
	reg := newTestRegistry(t)
	p, err := reg.Parse("say hello", 1)
	assert.NoError(t, err)
	assert.Nil(t, p)
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "AT", KindAt.String())
	assert.Equal(t, "NPC_REQ", KindNpcReq.String())
	assert.Equal(t, "MAPCLEAN", KindMapClean.String())
	assert.Equal(t, "Unknown(99)", Kind(99).String())
}
