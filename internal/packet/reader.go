package packet

import (
	"fmt"
	"strconv"
	"strings"
)

// Reader reads positional fields from one transcript line.
// Token 0 is always the packet keyword; reads start at token 1.
// The first failing strict read is remembered and reported by Err.
type Reader struct {
	fields []string
	off    int
	err    error
}

func NewReader(line string) *Reader {
	return &Reader{fields: strings.Fields(line), off: 1} // skip keyword
}

// Keyword returns token 0 lowercased, or "" for an empty line.
func (r *Reader) Keyword() string {
	if len(r.fields) == 0 {
		return ""
	}
	return strings.ToLower(r.fields[0])
}

// Len returns the total number of tokens, keyword included.
func (r *Reader) Len() int {
	return len(r.fields)
}

// Remaining returns the number of unread tokens.
func (r *Reader) Remaining() int {
	if r.off >= len(r.fields) {
		return 0
	}
	return len(r.fields) - r.off
}

// Err returns the first strict read failure, if any.
func (r *Reader) Err() error {
	return r.err
}

// ReadInt reads a required integer token.
func (r *Reader) ReadInt() int32 {
	if r.off >= len(r.fields) {
		r.fail(fmt.Errorf("missing field %d", r.off))
		return 0
	}
	tok := r.fields[r.off]
	r.off++
	v, err := strconv.ParseInt(tok, 10, 32)
	if err != nil {
		r.fail(fmt.Errorf("field %d: %q is not an integer", r.off-1, tok))
		return 0
	}
	return int32(v)
}

// ReadIntOr reads an optional integer token. Missing or unparsable tokens
// yield def and never set Err.
func (r *Reader) ReadIntOr(def int32) int32 {
	if r.off >= len(r.fields) {
		return def
	}
	tok := r.fields[r.off]
	r.off++
	v, err := strconv.ParseInt(tok, 10, 32)
	if err != nil {
		return def
	}
	return int32(v)
}

// ReadS reads one token as a string ("" when exhausted).
func (r *Reader) ReadS() string {
	if r.off >= len(r.fields) {
		return ""
	}
	v := r.fields[r.off]
	r.off++
	return v
}

// Peek returns the token at the current offset without consuming it.
func (r *Reader) Peek() (string, bool) {
	if r.off >= len(r.fields) {
		return "", false
	}
	return r.fields[r.off], true
}

// Skip advances past n tokens.
func (r *Reader) Skip(n int) {
	r.off += n
	if r.off > len(r.fields) {
		r.off = len(r.fields)
	}
}

// Rest returns all unread tokens and exhausts the reader.
func (r *Reader) Rest() []string {
	if r.off >= len(r.fields) {
		return nil
	}
	rest := r.fields[r.off:]
	r.off = len(r.fields)
	return rest
}

// Token returns token i regardless of the read offset.
func (r *Reader) Token(i int) (string, bool) {
	if i < 0 || i >= len(r.fields) {
		return "", false
	}
	return r.fields[i], true
}

func (r *Reader) fail(err error) {
	if r.err == nil {
		r.err = err
	}
}

func atoi32(tok string) (int32, bool) {
	v, err := strconv.ParseInt(tok, 10, 32)
	if err != nil {
		return 0, false
	}
	return int32(v), true
}

func isInt(tok string) bool {
	_, ok := atoi32(tok)
	return ok
}
