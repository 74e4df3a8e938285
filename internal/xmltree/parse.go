package xmltree

import (
	"bufio"
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html/charset"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/ardour-tools/ardourfix/pkg/ardourfix"
)

// Options controls parsing.
type Options struct {
	// Strict rejects documents whose DTD declares entities.
	Strict bool
}

// Parse reads a whole XML document and returns its root element.
// All failures wrap ardourfix.ErrParse.
func Parse(r io.Reader, opts Options) (*Element, error) {
	r, hasBOM := stripBOM(r)
	dec := xml.NewDecoder(r)
	dec.CharsetReader = charset.NewReaderLabel
	if hasBOM {
		// The byte order mark wins over the declared encoding.
		dec.CharsetReader = func(_ string, in io.Reader) (io.Reader, error) { return in, nil }
	}

	var root *Element
	var stack []*Element

	for {
		tok, err := dec.RawToken()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, parseError(err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			el := &Element{Tag: qualify(t.Name)}
			for _, a := range t.Attr {
				el.Attrs = append(el.Attrs, Attr{Name: qualify(a.Name), Value: a.Value})
			}
			if len(stack) == 0 {
				if root != nil {
					return nil, parseError(fmt.Errorf("line %d: multiple root elements", line(dec)))
				}
				root = el
			} else {
				stack[len(stack)-1].Append(el)
			}
			stack = append(stack, el)

		case xml.EndElement:
			name := qualify(t.Name)
			if len(stack) == 0 {
				return nil, parseError(fmt.Errorf("line %d: unexpected end element </%s>", line(dec), name))
			}
			if top := stack[len(stack)-1]; top.Tag != name {
				return nil, parseError(fmt.Errorf("line %d: element <%s> closed by </%s>", line(dec), top.Tag, name))
			}
			stack = stack[:len(stack)-1]

		case xml.CharData:
			if len(stack) == 0 {
				if len(bytes.TrimSpace(t)) > 0 {
					return nil, parseError(fmt.Errorf("line %d: text outside of root element", line(dec)))
				}
				continue
			}
			cur := stack[len(stack)-1]
			if n := len(cur.Children); n > 0 {
				cur.Children[n-1].Tail += string(t)
			} else {
				cur.Text += string(t)
			}

		case xml.Directive:
			if opts.Strict && bytes.Contains(t, []byte("<!ENTITY")) {
				return nil, parseError(fmt.Errorf("line %d: entity declarations are not allowed", line(dec)))
			}
		}
	}

	if len(stack) > 0 {
		return nil, parseError(fmt.Errorf("unexpected end of document inside <%s>", stack[len(stack)-1].Tag))
	}
	if root == nil {
		return nil, parseError(errors.New("no root element"))
	}
	return root, nil
}

// ParseString is a convenience wrapper around Parse.
func ParseString(s string, opts Options) (*Element, error) {
	return Parse(strings.NewReader(s), opts)
}

func qualify(n xml.Name) string {
	if n.Space == "" {
		return n.Local
	}
	return n.Space + ":" + n.Local
}

func line(dec *xml.Decoder) int {
	l, _ := dec.InputPos()
	return l
}

func parseError(err error) error {
	return fmt.Errorf("%w: %v", ardourfix.ErrParse, err)
}

// stripBOM consumes a leading UTF-8 or UTF-16 byte order mark and returns a
// reader yielding UTF-8. The flag reports whether a mark was found.
func stripBOM(r io.Reader) (io.Reader, bool) {
	br := bufio.NewReader(r)
	head, _ := br.Peek(3)
	switch {
	case bytes.HasPrefix(head, []byte{0xef, 0xbb, 0xbf}):
		_, _ = br.Discard(3)
		return br, true
	case bytes.HasPrefix(head, []byte{0xfe, 0xff}), bytes.HasPrefix(head, []byte{0xff, 0xfe}):
		// ExpectBOM reads the mark itself and picks the byte order from it.
		dec := unicode.UTF16(unicode.BigEndian, unicode.ExpectBOM).NewDecoder()
		return transform.NewReader(br, dec), true
	}
	return br, false
}
