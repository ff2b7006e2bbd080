package packet

import (
	"strings"
	"unicode"

	"go.uber.org/zap"
)

type kindEntry struct {
	kind  Kind
	exact bool // whole trimmed line must equal the keyword
	parse parseFunc
}

// Registry maps packet keywords to their parsers.
type Registry struct {
	entries map[string]*kindEntry
	log     *zap.Logger
}

// NewRegistry registers every built-in packet kind. sendPacketKeywords adds
// extra keywords whose lines are forwarded verbatim as SendPacket records.
func NewRegistry(log *zap.Logger, sendPacketKeywords []string) *Registry {
	reg := &Registry{
		entries: make(map[string]*kindEntry),
		log:     log,
	}
	reg.Register("at", KindAt, false, parseAt)
	reg.Register("rsfn", KindRsf, false, parseRsf)
	reg.Register("rsfm", KindRsf, false, parseRsf)
	reg.Register("rsfp", KindRsf, false, parseRsf)
	reg.Register("walk", KindWalk, false, parseWalk)
	reg.Register("in", KindIn, false, parseIn)
	reg.Register("su", KindSu, false, parseSu)
	reg.Register("gp", KindGp, false, parseGp)
	reg.Register("msg", KindMsg, false, parseMsg)
	reg.Register("npc_req", KindNpcReq, false, parseNpcReq)
	reg.Register("evnt", KindEvnt, false, parseEvnt)
	reg.Register("out", KindOut, false, parseOut)
	reg.Register("preq", KindPreq, true, parsePreq)
	reg.Register("rbr", KindRbr, false, parseRbr)
	reg.Register("eff", KindEff, false, parseEff)
	reg.Register("mapclean", KindMapClean, true, parseMapClean)
	for _, kw := range sendPacketKeywords {
		kw = strings.ToLower(strings.TrimSpace(kw))
		if kw == "" {
			continue
		}
		if _, taken := reg.entries[kw]; taken {
			log.Warn("send packet keyword shadows a built-in packet, ignored", zap.String("keyword", kw))
			continue
		}
		reg.Register(kw, KindSendPacket, false, parseSendPacket)
	}
	return reg
}

// Register maps a keyword to a parser. Non-exact keywords match a line whose
// first token equals the keyword (case-insensitive) and is followed by at
// least one more token; exact keywords match the whole trimmed line.
func (reg *Registry) Register(keyword string, kind Kind, exact bool, fn parseFunc) {
	reg.entries[strings.ToLower(keyword)] = &kindEntry{kind: kind, exact: exact, parse: fn}
}

// Recognize reports which kind a line belongs to.
func (reg *Registry) Recognize(line string) (Kind, bool) {
	e := reg.lookup(line)
	if e == nil {
		return KindUnknown, false
	}
	return e.kind, true
}

func (reg *Registry) lookup(line string) *kindEntry {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return nil
	}
	keyword := trimmed
	hasRest := false
	if idx := strings.IndexFunc(trimmed, unicode.IsSpace); idx >= 0 {
		keyword, hasRest = trimmed[:idx], true
	}
	e, ok := reg.entries[strings.ToLower(keyword)]
	if !ok || e.exact == hasRest {
		return nil
	}
	return e
}

// Parse recognizes and parses one line. It returns (nil, nil) for a line no
// kind recognizes and a *MalformedError when the recognized kind's fields
// cannot be extracted.
func (reg *Registry) Parse(line string, lineNo int) (Packet, error) {
	e := reg.lookup(line)
	if e == nil {
		return nil, nil
	}
	h := Header{RawLine: strings.TrimSpace(line), LineNo: lineNo}
	p, err := e.parse(NewReader(h.RawLine), h)
	if err != nil {
		return nil, &MalformedError{Kind: e.kind, LineNo: lineNo, Raw: h.RawLine, Err: err}
	}
	reg.log.Debug("parsed packet",
		zap.Int("line", lineNo),
		zap.String("kind", e.kind.String()),
	)
	return p, nil
}
