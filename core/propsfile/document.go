package propsfile

import "strings"

// Document is a server properties file held as an ordered sequence of raw lines.
// Comments, blank lines and assignments are all kept verbatim, so serialization
// reproduces every untouched line byte for byte.
type Document struct {
	lines []string
}

// Parse splits raw file content into a Document. Content is treated as a flat
// sequence of lines separated by "\n"; a trailing "\r" stays part of its line.
func Parse(content string) *Document {
	return &Document{lines: strings.Split(content, "\n")}
}

// Load reads the file at path through the store and parses it.
func Load(store Store, path string) (*Document, error) {
	content, err := store.ReadText(path)
	if err != nil {
		return nil, err
	}
	return Parse(content), nil
}

// Lines returns a copy of the raw lines in file order.
func (d *Document) Lines() []string {
	out := make([]string, len(d.lines))
	copy(out, d.lines)
	return out
}

// FindAssignment returns the index of the first line whose trimmed content
// starts with "<key>=". Later duplicates of the same key are ignored.
func (d *Document) FindAssignment(key string) (int, bool) {
	prefix := key + "="
	for i, line := range d.lines {
		if strings.HasPrefix(strings.TrimSpace(line), prefix) {
			return i, true
		}
	}
	return 0, false
}

// Patch replaces the first assignment line for key with "key=value".
// Every other line, including later duplicates of the same key, is left
// untouched. A key with no matching line is a silent no-op.
func (d *Document) Patch(key, value string) {
	if i, ok := d.FindAssignment(key); ok {
		d.lines[i] = key + "=" + value
	}
}

// Serialize joins the lines back with "\n".
func (d *Document) Serialize() string {
	return strings.Join(d.lines, "\n")
}

// Commit serializes the document and writes it back through the store.
func (d *Document) Commit(store Store, path string) error {
	return store.WriteText(path, d.Serialize())
}
