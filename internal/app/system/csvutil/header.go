// internal/app/system/csvutil/header.go
package csvutil

import "strings"

// Header resolves column names from the first row of an export.
// Lookups are case-insensitive exact matches on the trimmed name; when a
// name repeats, the first column wins.
type Header struct {
	index map[string]int
}

// NewHeader builds a Header from the header row.
func NewHeader(row []string) Header {
	h := Header{index: make(map[string]int, len(row))}
	for i, name := range row {
		key := strings.ToLower(strings.TrimSpace(name))
		if _, dup := h.index[key]; !dup {
			h.index[key] = i
		}
	}
	return h
}

// Index returns the column position of name, or -1.
func (h Header) Index(name string) int {
	if i, ok := h.index[strings.ToLower(strings.TrimSpace(name))]; ok {
		return i
	}
	return -1
}

// Has reports whether the header contains name.
func (h Header) Has(name string) bool {
	return h.Index(name) >= 0
}

// Value returns the trimmed field for column name in row. A missing column
// or a short row yields "".
func (h Header) Value(row []string, name string) string {
	i := h.Index(name)
	if i < 0 || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}
