package packet

import "strings"

// parseIn handles both IN layouts. Objects have fixed positions; players,
// npcs and monsters may carry an unquoted name of any length first.
func parseIn(r *Reader, h Header) (Packet, error) {
	if err := minArity(r, 8); err != nil {
		return nil, err
	}
	p := &InPacket{Header: h}
	p.TypeCode = r.ReadInt()
	if err := r.Err(); err != nil {
		return nil, err
	}
	p.Entity = EntityTypeFromCode(p.TypeCode)

	if p.Entity == EntityObject {
		// in 9 {vnum} {id} {x} {y} {dir} ...
		p.VNum = r.ReadInt()
		p.EntityID = r.ReadInt()
		p.X = r.ReadInt()
		p.Y = r.ReadInt()
		p.Direction = r.ReadInt()
		p.Additional = r.Rest()
		return p, r.Err()
	}

	nameEnd := findNameEnd(r, 2)
	if nameEnd > 2 {
		var parts []string
		for i := 2; i < nameEnd; i++ {
			tok, _ := r.Token(i)
			parts = append(parts, tok)
		}
		p.Name = strings.TrimSpace(strings.Join(parts, " "))
	}
	r.Skip(nameEnd - 2)

	p.VNum = r.ReadIntOr(0)
	p.EntityID = r.ReadIntOr(0)
	p.X = r.ReadIntOr(0)
	p.Y = r.ReadIntOr(0)
	p.Direction = r.ReadIntOr(0)
	p.HP = r.ReadIntOr(0)
	p.MP = r.ReadIntOr(0)
	p.Dialog = r.ReadIntOr(0)
	p.Additional = r.Rest()
	return p, nil
}

// findNameEnd returns the index of the first integer token at or after
// start. The name is everything before it. When no integer follows, the
// name is assumed to span at most three tokens.
func findNameEnd(r *Reader, start int) int {
	for i := start; i < r.Len(); i++ {
		tok, _ := r.Token(i)
		if isInt(tok) {
			return i
		}
	}
	return min(start+3, r.Len())
}
