// internal/app/system/csvutil/tokenizer.go
package csvutil

import (
	"fmt"
	"io"
	"strings"
)

// Record is one tokenized row and the line it started on.
type Record struct {
	Line   int
	Fields []string
}

// Options bounds how much input ReadAll accepts. Zero values disable the
// corresponding limit.
type Options struct {
	MaxBytes int64
	MaxRows  int
}

// DefaultOptions returns the standard limits.
func DefaultOptions() Options {
	return Options{MaxBytes: MaxInputSize, MaxRows: MaxRows}
}

// ReadAll reads a spreadsheet export from r and tokenizes it. A leading
// byte order mark is dropped. The returned records include the header row.
func ReadAll(r io.Reader, opts Options) ([]Record, error) {
	src := r
	if opts.MaxBytes > 0 {
		src = io.LimitReader(r, opts.MaxBytes+1)
	}
	b, err := io.ReadAll(src)
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	if opts.MaxBytes > 0 && int64(len(b)) > opts.MaxBytes {
		return nil, ErrInputTooLarge
	}

	recs := Tokenize(strings.TrimPrefix(string(b), "\ufeff"))

	// The first record is the header; only data rows count against the limit.
	if opts.MaxRows > 0 && len(recs)-1 > opts.MaxRows {
		return nil, ErrTooManyRows
	}
	return recs, nil
}

// Tokenize splits text into records of fields.
//
// Quoting follows spreadsheet exports: a double quote toggles quoted mode,
// a doubled quote inside quoted mode is a literal quote, and commas or line
// breaks (LF or CRLF) inside quotes are part of the field. A bare CR that
// is not followed by LF is kept as field content. Records whose fields are
// all blank are dropped.
func Tokenize(text string) []Record {
	var (
		recs    []Record
		fields  []string
		field   strings.Builder
		inQuote bool
		line    = 1
		start   = 1
	)

	endRecord := func() {
		fields = append(fields, field.String())
		field.Reset()
		if !allBlank(fields) {
			recs = append(recs, Record{Line: start, Fields: fields})
		}
		fields = nil
	}

	for i := 0; i < len(text); i++ {
		c := text[i]
		switch {
		case c == '"':
			if inQuote && i+1 < len(text) && text[i+1] == '"' {
				field.WriteByte('"')
				i++
			} else {
				inQuote = !inQuote
			}
		case c == ',' && !inQuote:
			fields = append(fields, field.String())
			field.Reset()
		case c == '\n' && !inQuote:
			endRecord()
			line++
			start = line
		case c == '\r' && !inQuote && i+1 < len(text) && text[i+1] == '\n':
			endRecord()
			i++
			line++
			start = line
		default:
			if c == '\n' {
				line++
			}
			field.WriteByte(c)
		}
	}

	if field.Len() > 0 || len(fields) > 0 {
		endRecord()
	}
	return recs
}

func allBlank(fields []string) bool {
	for _, f := range fields {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}
