package xmltree

// Attr is a single attribute. Names keep their prefix ("xmlns:foo").
type Attr struct {
	Name  string
	Value string
}

// Element is a node in the tree.
type Element struct {
	Tag      string
	Attrs    []Attr
	Text     string
	Tail     string
	Children []*Element
}

// New creates an element with the given tag and attribute pairs
// (name, value, name, value, ...). A trailing odd name is ignored.
func New(tag string, attrs ...string) *Element {
	e := &Element{Tag: tag}
	for i := 0; i+1 < len(attrs); i += 2 {
		e.Set(attrs[i], attrs[i+1])
	}
	return e
}

// Get returns the value of the named attribute and whether it is present.
func (e *Element) Get(name string) (string, bool) {
	for _, a := range e.Attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// Attr returns the value of the named attribute, or "" if absent.
func (e *Element) Attr(name string) string {
	v, _ := e.Get(name)
	return v
}

// Has reports whether the named attribute is present.
func (e *Element) Has(name string) bool {
	_, ok := e.Get(name)
	return ok
}

// Set adds or replaces an attribute. New attributes are appended.
func (e *Element) Set(name, value string) {
	for i := range e.Attrs {
		if e.Attrs[i].Name == name {
			e.Attrs[i].Value = value
			return
		}
	}
	e.Attrs = append(e.Attrs, Attr{Name: name, Value: value})
}

// Append adds children at the end of e's child list.
func (e *Element) Append(children ...*Element) {
	e.Children = append(e.Children, children...)
}

// Remove detaches child from e by identity. The child's tail text is
// dropped with it. Returns false if child is not a direct child of e.
func (e *Element) Remove(child *Element) bool {
	for i, c := range e.Children {
		if c == child {
			e.Children = append(e.Children[:i], e.Children[i+1:]...)
			return true
		}
	}
	return false
}

// Find returns the first direct child with the given tag, or nil.
func (e *Element) Find(tag string) *Element {
	for _, c := range e.Children {
		if c.Tag == tag {
			return c
		}
	}
	return nil
}

// FindAll returns every direct child with the given tag.
func (e *Element) FindAll(tag string) []*Element {
	var out []*Element
	for _, c := range e.Children {
		if c.Tag == tag {
			out = append(out, c)
		}
	}
	return out
}

// Descendants returns, in document order, every element below e whose tag
// equals tag. An empty tag matches every element. e itself is never included.
func (e *Element) Descendants(tag string) []*Element {
	var out []*Element
	e.walk(func(_, el *Element) {
		if tag == "" || el.Tag == tag {
			out = append(out, el)
		}
	})
	return out
}

// FindDescendant returns the first element below e with the given tag whose
// attribute attr equals value, or nil. An empty tag matches any element.
func (e *Element) FindDescendant(tag, attr, value string) *Element {
	for _, el := range e.Descendants(tag) {
		if v, ok := el.Get(attr); ok && v == value {
			return el
		}
	}
	return nil
}

// ParentsOf returns, in document order and without duplicates, every element
// (e included) that has a direct child matching tag and attr == value.
// An empty tag matches any element.
func (e *Element) ParentsOf(tag, attr, value string) []*Element {
	var out []*Element
	seen := make(map[*Element]bool)
	e.walk(func(parent, el *Element) {
		if seen[parent] || (tag != "" && el.Tag != tag) {
			return
		}
		if v, ok := el.Get(attr); ok && v == value {
			seen[parent] = true
			out = append(out, parent)
		}
	})
	return out
}

// walk visits every element below e in document order together with its parent.
func (e *Element) walk(fn func(parent, el *Element)) {
	for _, c := range e.Children {
		fn(e, c)
		c.walk(fn)
	}
}
