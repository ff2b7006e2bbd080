package packet

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/zstd"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/traditionalchinese"
	"golang.org/x/text/transform"
)

// Open opens a transcript file for reading. Files ending in ".zst" are
// decompressed on the fly, and text in a legacy code page is converted to
// UTF-8 (charset "" or "utf-8" reads the bytes unchanged).
func Open(path, charset string) (io.ReadCloser, error) {
	enc, err := LookupEncoding(charset)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open transcript %s: %w", path, err)
	}

	src := &source{closers: []io.Closer{f}, r: f}
	if strings.EqualFold(filepath.Ext(path), ".zst") {
		dec, err := zstd.NewReader(f)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("open zstd stream %s: %w", path, err)
		}
		rc := dec.IOReadCloser()
		src.closers = append([]io.Closer{rc}, src.closers...)
		src.r = rc
	}
	if enc != nil {
		src.r = transform.NewReader(src.r, enc.NewDecoder())
	}
	return src, nil
}

// LookupEncoding resolves a charset name. It returns nil for UTF-8.
// "ms950" is accepted as an alias of Big5, the name the Taiwanese client uses.
func LookupEncoding(charset string) (encoding.Encoding, error) {
	name := strings.ToLower(strings.TrimSpace(charset))
	switch name {
	case "", "utf-8", "utf8":
		return nil, nil
	case "ms950", "cp950":
		return traditionalchinese.Big5, nil
	}
	enc, err := htmlindex.Get(name)
	if err != nil {
		return nil, fmt.Errorf("unknown transcript charset %q: %w", charset, err)
	}
	return enc, nil
}

type source struct {
	r       io.Reader
	closers []io.Closer
}

func (s *source) Read(p []byte) (int, error) {
	return s.r.Read(p)
}

func (s *source) Close() error {
	var first error
	for _, c := range s.closers {
		if err := c.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}
