// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package output writes search records as CSV.
package output

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/pdiddy/stackexchange-best/internal/search"
)

// AllFields selects every field of the records when present in a field list.
const AllFields = "all"

// rowWriter is satisfied by *csv.Writer and quoteAllWriter.
type rowWriter interface {
	Write(record []string) error
	Flush()
	Error() error
}

// Writer writes the selected fields of each record as one CSV row.
// Fields a record does not have are written as empty cells.
type Writer struct {
	rows        rowWriter
	fields      []string
	all         bool
	header      bool
	wroteHeader bool
}

// NewWriter returns a Writer for fields in dialect d. When fields contains
// AllFields the columns are taken from the first record written and reused
// for every later record. When header is true a header row precedes the
// first record.
func NewWriter(w io.Writer, fields []string, d Dialect, header bool) *Writer {
	cw := &Writer{header: header}
	for _, f := range fields {
		if f == AllFields {
			cw.all = true
			break
		}
	}
	if !cw.all {
		cw.fields = append([]string(nil), fields...)
	}

	if d.QuoteAll {
		cw.rows = newQuoteAllWriter(w, d)
	} else {
		c := csv.NewWriter(w)
		c.Comma = d.Comma
		c.UseCRLF = d.UseCRLF
		cw.rows = c
	}
	return cw
}

// Fields returns the current columns. It is nil for AllFields until the
// first record has been written.
func (w *Writer) Fields() []string { return w.fields }

// WriteResult writes every record of a result page and flushes.
func (w *Writer) WriteResult(res *search.Result) error {
	for _, rec := range res.Items {
		if err := w.WriteRecord(rec); err != nil {
			return err
		}
	}
	w.rows.Flush()
	if err := w.rows.Error(); err != nil {
		return fmt.Errorf("writing CSV: %w", err)
	}
	return nil
}

// WriteRecord writes a single record without flushing.
func (w *Writer) WriteRecord(rec search.Record) error {
	if w.all && w.fields == nil {
		w.fields = rec.Keys()
	}
	if w.header && !w.wroteHeader {
		if err := w.rows.Write(w.fields); err != nil {
			return fmt.Errorf("writing CSV header: %w", err)
		}
		w.wroteHeader = true
	}

	row := make([]string, len(w.fields))
	for i, f := range w.fields {
		row[i] = rec.Text(f)
	}
	if err := w.rows.Write(row); err != nil {
		return fmt.Errorf("writing CSV row: %w", err)
	}
	return nil
}

// quoteAllWriter quotes every field, doubling embedded quote characters.
// encoding/csv only quotes fields that need it.
type quoteAllWriter struct {
	w    *bufio.Writer
	sep  string
	term string
	err  error
}

func newQuoteAllWriter(w io.Writer, d Dialect) *quoteAllWriter {
	return &quoteAllWriter{
		w:    bufio.NewWriter(w),
		sep:  string(d.Comma),
		term: d.lineTerminator(),
	}
}

func (q *quoteAllWriter) Write(record []string) error {
	if q.err != nil {
		return q.err
	}
	var b strings.Builder
	for i, field := range record {
		if i > 0 {
			b.WriteString(q.sep)
		}
		b.WriteByte('"')
		b.WriteString(strings.ReplaceAll(field, `"`, `""`))
		b.WriteByte('"')
	}
	b.WriteString(q.term)
	_, q.err = q.w.WriteString(b.String())
	return q.err
}

func (q *quoteAllWriter) Flush() {
	if q.err != nil {
		return
	}
	q.err = q.w.Flush()
}

func (q *quoteAllWriter) Error() error { return q.err }
