package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
)

// ErrDuplicateKey indicates a key was added to a Document twice.
var ErrDuplicateKey = errors.New("config: duplicate document key")

// commentValue marks a pseudo-entry carrying a section banner or remark:
// the key is the text, the value is the literal "comment". SOFI2D skips
// such entries when parsing.
const commentValue = "comment"

// Entry is one ordered key/value pair of a control-file document.
type Entry struct {
	Key   string
	Value string
}

// Document is an insertion-ordered key/value sequence that serializes as a
// flat JSON object. The zero value is an empty document ready to use.
type Document struct {
	entries []Entry
	seen    map[string]struct{}
}

// Add appends a key/value entry, rejecting keys already present.
func (d *Document) Add(key, value string) error {
	if d.seen == nil {
		d.seen = make(map[string]struct{})
	}
	if _, dup := d.seen[key]; dup {
		return fmt.Errorf("config: key %q: %w", key, ErrDuplicateKey)
	}
	d.seen[key] = struct{}{}
	d.entries = append(d.entries, Entry{Key: key, Value: value})

	return nil
}

// Comment appends a banner/remark pseudo-entry with the value "comment".
func (d *Document) Comment(text string) error {
	return d.Add(text, commentValue)
}

// Entries returns a copy of the document entries in insertion order.
func (d *Document) Entries() []Entry {
	out := make([]Entry, len(d.entries))
	copy(out, d.entries)

	return out
}

// Len reports the number of entries, comments included.
func (d *Document) Len() int { return len(d.entries) }

// MarshalJSON serializes the document as a flat JSON object with keys in
// insertion order. Both keys and values are emitted as JSON strings, which
// is the form the SOFI2D parameter reader accepts.
func (d *Document) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range d.entries {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(e.Key)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(e.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')

	return buf.Bytes(), nil
}

// WriteTo writes the document as two-space-indented JSON.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	raw, err := d.MarshalJSON()
	if err != nil {
		return 0, err
	}
	var buf bytes.Buffer
	if err = json.Indent(&buf, raw, "", "  "); err != nil {
		return 0, fmt.Errorf("config: indent document: %w", err)
	}
	buf.WriteByte('\n')

	return buf.WriteTo(w)
}

// WriteFile writes the document as indented JSON to path.
func (d *Document) WriteFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("config: create %s: %w", path, err)
	}
	if _, err = d.WriteTo(f); err != nil {
		f.Close()

		return err
	}

	return f.Close()
}
