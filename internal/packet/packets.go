package packet

// Packet is one parsed transcript line. Concrete types are the *XxxPacket
// structs below; consumers switch on the dynamic type.
type Packet interface {
	Kind() Kind
	Raw() string
	Line() int
}

// Header carries the source line of a packet for diagnostics.
type Header struct {
	RawLine string
	LineNo  int // 1-based, 0 when parsed outside a transcript
}

func (h Header) Raw() string { return h.RawLine }
func (h Header) Line() int   { return h.LineNo }

// AtPacket: at {charId} {mapVnum} {x} {y} {dir} 0 {music} 2 [-1]
type AtPacket struct {
	Header
	CharacterID int32
	MapVNum     int32
	X           int32
	Y           int32
	Direction   int32
	Unknown1    int32
	Music       int32
	Unknown2    int32
	Unknown3    int32
}

// RsfPacket: rsfn|rsfm|rsfp {values...}
type RsfPacket struct {
	Header
	Type   RsfType
	Values []int32
}

// WalkPacket: walk {x} {y} {checksum} {speed}
type WalkPacket struct {
	Header
	X        int32
	Y        int32
	Unknown1 int32
	Speed    int32
}

// InPacket: in {type} [name...] {vnum} {id} {x} {y} {dir} ...
// Objects (type 9) carry no name: in 9 {vnum} {id} {x} {y} {dir} ...
type InPacket struct {
	Header
	TypeCode   int32
	Entity     EntityType
	Name       string
	VNum       int32
	EntityID   int32
	X          int32
	Y          int32
	Direction  int32
	HP         int32
	MP         int32
	Dialog     int32
	Additional []string
}

// SuPacket: su {type} {callerId} {targetType} {targetId} {skill} {cooldown}
// {anim} {effect} {x} {y} {isAlive} {hp%} {damage} {hitMode} [skillType]
type SuPacket struct {
	Header
	Type        int32
	CallerID    int32
	TargetType  int32
	TargetID    int32
	SkillVNum   int32
	Cooldown    int32
	AttackAnim  int32
	SkillEffect int32
	X           int32
	Y           int32
	IsAlive     int32
	HealthPct   int32
	Damage      int32
	HitMode     int32
	SkillType   int32
}

// TargetKilled reports whether the hit left the target dead.
func (p *SuPacket) TargetKilled() bool {
	return p.IsAlive == 0
}

// GpPacket: gp {x} {y} {destMap} {type} {portalId} [isDisabled]
type GpPacket struct {
	Header
	X          int32
	Y          int32
	DestMapID  int32
	Type       int32
	PortalID   int32
	IsDisabled int32
}

// MsgPacket: msg {type} {text...}
type MsgPacket struct {
	Header
	Type    int32
	Message string
}

// NpcReqPacket: npc_req {type} {owner} {dialogId}
type NpcReqPacket struct {
	Header
	Type     int32
	Owner    int32
	DialogID int32
}

// EvntPacket: evnt {type} {unknown} {time1} {time2}
type EvntPacket struct {
	Header
	Type     int32
	Unknown1 int32
	Time1    int32
	Time2    int32
}

// OutPacket: out [type] [id]
type OutPacket struct {
	Header
	TypeCode int32
	Entity   EntityType
	EntityID int32
}

// PreqPacket is the bare "preq" line.
type PreqPacket struct {
	Header
}

// EffPacket: eff {type} {entityId} {effectId}
type EffPacket struct {
	Header
	Type     int32
	EntityID int32
	EffectID int32
}

// Item is a "vnum.amount" pair from the RBR board.
type Item struct {
	VNum   int32
	Amount int32
}

// RbrPacket: rbr {version} {f1} {f2} {min.max} {required} {draw x5} {special x2}
// {gift x3} {score.} {winner} {value} {name...}
type RbrPacket struct {
	Header
	Version       string
	FixedValue1   int32
	FixedValue2   int32
	LevelMinimum  int32
	LevelMaximum  int32
	RequiredItems int32
	DrawItems     []Item
	SpecialItems  []Item
	GiftItems     []Item
	WinnerScore   int32
	Winner        int32
	ScoreValue    int32
	Name          string
	Label         string
}

// MapCleanPacket is the literal "mapclean" marker line.
type MapCleanPacket struct {
	Header
}

// SendPacket is a configured raw packet replayed verbatim by the instance.
type SendPacket struct {
	Header
	Value string
}

func (*AtPacket) Kind() Kind       { return KindAt }
func (*RsfPacket) Kind() Kind      { return KindRsf }
func (*WalkPacket) Kind() Kind     { return KindWalk }
func (*InPacket) Kind() Kind       { return KindIn }
func (*SuPacket) Kind() Kind       { return KindSu }
func (*GpPacket) Kind() Kind       { return KindGp }
func (*MsgPacket) Kind() Kind      { return KindMsg }
func (*NpcReqPacket) Kind() Kind   { return KindNpcReq }
func (*EvntPacket) Kind() Kind     { return KindEvnt }
func (*OutPacket) Kind() Kind      { return KindOut }
func (*PreqPacket) Kind() Kind     { return KindPreq }
func (*EffPacket) Kind() Kind      { return KindEff }
func (*RbrPacket) Kind() Kind      { return KindRbr }
func (*MapCleanPacket) Kind() Kind { return KindMapClean }
func (*SendPacket) Kind() Kind     { return KindSendPacket }
