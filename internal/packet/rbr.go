package packet

import (
	"regexp"
	"strings"
)

// numericTok matches the tokens that may precede the board name: integers,
// decimals and the trailing-dot score form ("0.").
var numericTok = regexp.MustCompile(`^-?\d+(\.\d*)?$`)

// Positions of the item slots on the board.
const (
	rbrDrawFirst    = 6
	rbrDrawLast     = 10
	rbrSpecialFirst = 11
	rbrSpecialLast  = 12
	rbrGiftFirst    = 13
	rbrGiftLast     = 15
	rbrScore        = 16
	rbrWinner       = 17
	rbrScoreValue   = 18
)

// parseRbr reads the time-space board. Everything after the level range is
// optional: truncated boards keep whatever fields are present, and the name
// starts at the first token that is not a number.
func parseRbr(r *Reader, h Header) (Packet, error) {
	if err := minArity(r, 5); err != nil {
		return nil, err
	}
	p := &RbrPacket{Header: h}
	p.Version = r.ReadS()
	p.FixedValue1 = r.ReadInt()
	p.FixedValue2 = r.ReadInt()
	if err := r.Err(); err != nil {
		return nil, err
	}

	levels, _ := r.Token(4)
	if lo, hi, ok := splitPair(levels); ok {
		p.LevelMinimum, p.LevelMaximum = lo, hi
	}

	nameStart := r.Len()
	for i := 5; i < r.Len(); i++ {
		tok, _ := r.Token(i)
		if !numericTok.MatchString(tok) {
			nameStart = i
			break
		}
	}

	at := func(i int) (string, bool) {
		if i >= nameStart {
			return "", false
		}
		return r.Token(i)
	}

	if tok, ok := at(5); ok {
		if v, ok := atoi32(tok); ok {
			p.RequiredItems = v
		}
	}
	p.DrawItems = itemList(at, rbrDrawFirst, rbrDrawLast)
	p.SpecialItems = itemList(at, rbrSpecialFirst, rbrSpecialLast)
	p.GiftItems = itemList(at, rbrGiftFirst, rbrGiftLast)

	if tok, ok := at(rbrScore); ok {
		head, _, _ := strings.Cut(tok, ".")
		if v, ok := atoi32(head); ok {
			p.WinnerScore = v
		}
	}
	if tok, ok := at(rbrWinner); ok {
		p.Winner, _ = atoi32(tok)
	}
	if tok, ok := at(rbrScoreValue); ok {
		p.ScoreValue, _ = atoi32(tok)
	}

	if nameStart < r.Len() {
		name := strings.Join(r.fields[nameStart:], " ")
		// Some captures keep the name/label separator as a literal "\n".
		if head, tail, found := strings.Cut(name, `\n`); found {
			p.Name = strings.TrimSpace(head)
			p.Label = strings.TrimSpace(tail)
		} else {
			p.Name = strings.TrimSpace(name)
		}
	}
	return p, nil
}

// itemList collects the "vnum.amount" pairs in token range [first, last].
// Empty slots ("-1", "-1.0") and non-positive vnums are skipped.
func itemList(at func(int) (string, bool), first, last int) []Item {
	var items []Item
	for i := first; i <= last; i++ {
		tok, ok := at(i)
		if !ok {
			break
		}
		vnum, amount, ok := splitPair(tok)
		if !ok || vnum <= 0 {
			continue
		}
		items = append(items, Item{VNum: vnum, Amount: amount})
	}
	return items
}

// splitPair parses "a.b" into two integers.
func splitPair(tok string) (int32, int32, bool) {
	head, tail, found := strings.Cut(tok, ".")
	if !found {
		return 0, 0, false
	}
	a, ok := atoi32(head)
	if !ok {
		return 0, 0, false
	}
	b, ok := atoi32(tail)
	if !ok {
		return 0, 0, false
	}
	return a, b, true
}
