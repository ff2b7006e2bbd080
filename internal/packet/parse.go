package packet

import (
	"fmt"
	"strings"
	"unicode"
)

// parseFunc builds a typed packet from a reader positioned after the keyword.
type parseFunc func(r *Reader, h Header) (Packet, error)

func minArity(r *Reader, n int) error {
	if r.Len() < n {
		return fmt.Errorf("too short: expected at least %d fields, got %d", n, r.Len())
	}
	return nil
}

// parseAt: at {charId} {mapVnum} {x} {y} {dir} {u1} {music} {u2} [u3]
func parseAt(r *Reader, h Header) (Packet, error) {
	if err := minArity(r, 9); err != nil {
		return nil, err
	}
	p := &AtPacket{Header: h}
	p.CharacterID = r.ReadInt()
	p.MapVNum = r.ReadInt()
	p.X = r.ReadInt()
	p.Y = r.ReadInt()
	p.Direction = r.ReadInt()
	p.Unknown1 = r.ReadInt()
	p.Music = r.ReadInt()
	p.Unknown2 = r.ReadInt()
	if r.Remaining() > 0 {
		p.Unknown3 = r.ReadInt()
	}
	return p, r.Err()
}

func parseRsf(r *Reader, h Header) (Packet, error) {
	if err := minArity(r, 2); err != nil {
		return nil, err
	}
	p := &RsfPacket{Header: h}
	switch r.Keyword() {
	case "rsfn":
		p.Type = RsfNode
	case "rsfm":
		p.Type = RsfMap
	case "rsfp":
		p.Type = RsfPosition
	}
	for _, tok := range r.Rest() {
		if v, ok := atoi32(tok); ok {
			p.Values = append(p.Values, v)
		}
	}
	return p, nil
}

func parseWalk(r *Reader, h Header) (Packet, error) {
	if err := minArity(r, 5); err != nil {
		return nil, err
	}
	p := &WalkPacket{Header: h}
	p.X = r.ReadInt()
	p.Y = r.ReadInt()
	p.Unknown1 = r.ReadInt()
	p.Speed = r.ReadInt()
	return p, r.Err()
}

func parseSu(r *Reader, h Header) (Packet, error) {
	if err := minArity(r, 15); err != nil {
		return nil, err
	}
	p := &SuPacket{Header: h}
	p.Type = r.ReadInt()
	p.CallerID = r.ReadInt()
	p.TargetType = r.ReadInt()
	p.TargetID = r.ReadInt()
	p.SkillVNum = r.ReadInt()
	p.Cooldown = r.ReadInt()
	p.AttackAnim = r.ReadInt()
	p.SkillEffect = r.ReadInt()
	p.X = r.ReadInt()
	p.Y = r.ReadInt()
	p.IsAlive = r.ReadInt()
	p.HealthPct = r.ReadInt()
	p.Damage = r.ReadInt()
	p.HitMode = r.ReadInt()
	if r.Remaining() > 0 {
		p.SkillType = r.ReadInt()
	}
	return p, r.Err()
}

func parseGp(r *Reader, h Header) (Packet, error) {
	if err := minArity(r, 6); err != nil {
		return nil, err
	}
	p := &GpPacket{Header: h}
	p.X = r.ReadInt()
	p.Y = r.ReadInt()
	p.DestMapID = r.ReadInt()
	p.Type = r.ReadInt()
	p.PortalID = r.ReadInt()
	if r.Remaining() > 0 {
		p.IsDisabled = r.ReadInt()
	}
	return p, r.Err()
}

// parseMsg keeps the message text verbatim, inner spacing included.
func parseMsg(r *Reader, h Header) (Packet, error) {
	if err := minArity(r, 3); err != nil {
		return nil, err
	}
	p := &MsgPacket{Header: h}
	p.Type = r.ReadInt()
	p.Message = restAfter(h.RawLine, 2)
	return p, r.Err()
}

func parseNpcReq(r *Reader, h Header) (Packet, error) {
	if err := minArity(r, 4); err != nil {
		return nil, err
	}
	p := &NpcReqPacket{Header: h}
	p.Type = r.ReadInt()
	p.Owner = r.ReadInt()
	p.DialogID = r.ReadInt()
	return p, r.Err()
}

func parseEvnt(r *Reader, h Header) (Packet, error) {
	if err := minArity(r, 5); err != nil {
		return nil, err
	}
	p := &EvntPacket{Header: h}
	p.Type = r.ReadInt()
	p.Unknown1 = r.ReadInt()
	p.Time1 = r.ReadInt()
	p.Time2 = r.ReadInt()
	return p, r.Err()
}

func parseOut(r *Reader, h Header) (Packet, error) {
	p := &OutPacket{Header: h}
	p.TypeCode = r.ReadIntOr(0)
	p.Entity = EntityTypeFromCode(p.TypeCode)
	p.EntityID = r.ReadIntOr(0)
	return p, nil
}

func parseEff(r *Reader, h Header) (Packet, error) {
	if err := minArity(r, 4); err != nil {
		return nil, err
	}
	p := &EffPacket{Header: h}
	p.Type = r.ReadInt()
	p.EntityID = r.ReadInt()
	p.EffectID = r.ReadInt()
	return p, r.Err()
}

func parsePreq(_ *Reader, h Header) (Packet, error) {
	return &PreqPacket{Header: h}, nil
}

func parseMapClean(_ *Reader, h Header) (Packet, error) {
	return &MapCleanPacket{Header: h}, nil
}

func parseSendPacket(_ *Reader, h Header) (Packet, error) {
	return &SendPacket{Header: h, Value: strings.TrimSpace(h.RawLine)}, nil
}

// restAfter skips n whitespace-separated tokens of line and returns the
// trimmed remainder without collapsing inner whitespace.
func restAfter(line string, n int) string {
	s := strings.TrimLeftFunc(line, unicode.IsSpace)
	for i := 0; i < n; i++ {
		idx := strings.IndexFunc(s, unicode.IsSpace)
		if idx < 0 {
			return ""
		}
		s = strings.TrimLeftFunc(s[idx:], unicode.IsSpace)
	}
	return strings.TrimSpace(s)
}
