package instance

import (
	"bufio"
	"encoding/xml"
	"fmt"
	"io"
	"os"
)

// Encode writes doc as an indented XML document. The output depends on
// nothing but doc, so the same model always produces the same bytes.
func Encode(w io.Writer, doc *Definition, indent string) error {
	bw := bufio.NewWriter(w)
	if _, err := io.WriteString(bw, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(bw)
	enc.Indent("", indent)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode instance: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("encode instance: %w", err)
	}
	if _, err := io.WriteString(bw, "\n"); err != nil {
		return err
	}
	return bw.Flush()
}

// Save writes doc to path, replacing any existing file.
func Save(path string, doc *Definition, indent string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := Encode(f, doc, indent); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}
