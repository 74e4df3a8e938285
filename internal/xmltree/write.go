package xmltree

import (
	"bufio"
	"bytes"
	"io"
	"strings"
)

// Declaration is written before the root element.
const Declaration = "<?xml version='1.0' encoding='utf-8'?>\n"

var (
	textEscaper = strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
	)
	attrEscaper = strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
		"\n", "&#10;",
		"\r", "&#13;",
		"\t", "&#09;",
	)
)

// Write serializes e as a UTF-8 document with an XML declaration.
// Character data is written back as stored, so an unmodified tree keeps its
// original whitespace.
func (e *Element) Write(w io.Writer) error {
	bw := bufio.NewWriter(w)
	bw.WriteString(Declaration)
	e.encode(bw)
	bw.WriteByte('\n')
	return bw.Flush()
}

// Bytes serializes e into memory.
func (e *Element) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := e.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// encode relies on bufio.Writer's sticky error; Write reports it on Flush.
func (e *Element) encode(w *bufio.Writer) {
	w.WriteByte('<')
	w.WriteString(e.Tag)
	for _, a := range e.Attrs {
		w.WriteByte(' ')
		w.WriteString(a.Name)
		w.WriteString(`="`)
		attrEscaper.WriteString(w, a.Value)
		w.WriteByte('"')
	}

	if e.Text == "" && len(e.Children) == 0 {
		w.WriteString("/>")
	} else {
		w.WriteByte('>')
		textEscaper.WriteString(w, e.Text)
		for _, c := range e.Children {
			c.encode(w)
		}
		w.WriteString("</")
		w.WriteString(e.Tag)
		w.WriteByte('>')
	}

	textEscaper.WriteString(w, e.Tail)
}
