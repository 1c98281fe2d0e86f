package dom

import (
	"slices"
	"strings"
)

// Attr is a single element attribute.
type Attr struct {
	Name  string
	Value string
}

// Element is a node of the server-side document tree.
// An element with an empty tag is a fragment: appending it to another
// element moves its children and leaves the fragment empty.
type Element struct {
	parent    *Element
	props     map[string]any
	listeners map[string][]listenerEntry
	tag       string
	text      string
	attrs     []Attr
	classes   []string
	children  []*Element
}

// NewElement creates a detached element with the given tag.
func NewElement(tag string) *Element {
	return &Element{tag: strings.ToLower(tag)}
}

// NewFragment creates an empty fragment.
func NewFragment() *Element {
	return &Element{}
}

// Tag returns the element tag name. Fragments return an empty string.
func (e *Element) Tag() string {
	return e.tag
}

// IsFragment reports whether the element is a fragment.
func (e *Element) IsFragment() bool {
	return e.tag == ""
}

// Text returns the element's own text content.
func (e *Element) Text() string {
	return e.text
}

// SetText sets the element's own text content.
func (e *Element) SetText(s string) *Element {
	e.text = s
	return e
}

// TextContent returns the concatenated text of the element and its descendants.
func (e *Element) TextContent() string {
	var b strings.Builder
	e.walk(func(el *Element) bool {
		b.WriteString(el.text)
		return true
	})
	return b.String()
}

// Attr returns the attribute value and whether it is set.
func (e *Element) Attr(name string) (string, bool) {
	if name == "class" {
		if len(e.classes) == 0 {
			return "", false
		}
		return strings.Join(e.classes, " "), true
	}
	for _, a := range e.attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// SetAttr sets an attribute, keeping the original insertion order on update.
// Setting "class" replaces the class list.
func (e *Element) SetAttr(name, value string) *Element {
	if name == "class" {
		e.classes = e.classes[:0]
		return e.AddClass(strings.Fields(value)...)
	}
	for i := range e.attrs {
		if e.attrs[i].Name == name {
			e.attrs[i].Value = value
			return e
		}
	}
	e.attrs = append(e.attrs, Attr{Name: name, Value: value})
	return e
}

// RemoveAttr removes an attribute. Returns true if it was present.
func (e *Element) RemoveAttr(name string) bool {
	if name == "class" {
		had := len(e.classes) > 0
		e.classes = nil
		return had
	}
	for i, a := range e.attrs {
		if a.Name == name {
			e.attrs = slices.Delete(e.attrs, i, i+1)
			return true
		}
	}
	return false
}

// Attrs returns a copy of the element's attributes, excluding classes.
func (e *Element) Attrs() []Attr {
	return slices.Clone(e.attrs)
}

// ID returns the id attribute.
func (e *Element) ID() string {
	v, _ := e.Attr("id")
	return v
}

// Data returns a data-* attribute value.
func (e *Element) Data(key string) string {
	v, _ := e.Attr("data-" + key)
	return v
}

// SetData sets a data-* attribute.
func (e *Element) SetData(key, value string) *Element {
	return e.SetAttr("data-"+key, value)
}

// Classes returns a copy of the class list.
func (e *Element) Classes() []string {
	return slices.Clone(e.classes)
}

// HasClass reports whether the class list contains name.
func (e *Element) HasClass(name string) bool {
	return slices.Contains(e.classes, name)
}

// AddClass adds classes that are not present yet.
func (e *Element) AddClass(names ...string) *Element {
	for _, n := range names {
		if n != "" && !e.HasClass(n) {
			e.classes = append(e.classes, n)
		}
	}
	return e
}

// RemoveClass removes classes from the class list.
func (e *Element) RemoveClass(names ...string) *Element {
	e.classes = slices.DeleteFunc(e.classes, func(c string) bool {
		return slices.Contains(names, c)
	})
	return e
}

// ToggleClass removes the class if present, adds it otherwise.
// Returns true if the class is present afterwards.
func (e *Element) ToggleClass(name string) bool {
	if e.HasClass(name) {
		e.RemoveClass(name)
		return false
	}
	e.AddClass(name)
	return true
}

// Prop returns an expando property attached to the element.
// Properties are server-side data and never rendered.
func (e *Element) Prop(key string) any {
	return e.props[key]
}

// SetProp attaches an expando property to the element.
func (e *Element) SetProp(key string, value any) *Element {
	if e.props == nil {
		e.props = make(map[string]any)
	}
	e.props[key] = value
	return e
}

// Parent returns the parent element or nil when detached.
func (e *Element) Parent() *Element {
	return e.parent
}

// Children returns a copy of the child list.
func (e *Element) Children() []*Element {
	return slices.Clone(e.children)
}

// Append attaches children at the end of the child list.
// Nil children are skipped; fragments are unpacked; children attached
// elsewhere are moved. The element itself and its ancestors are skipped,
// so the tree never gains a cycle.
func (e *Element) Append(children ...*Element) *Element {
	for _, c := range children {
		if c == nil || e.hasAncestor(c) {
			continue
		}
		if c.IsFragment() {
			moved := c.children
			c.children = nil
			for _, m := range moved {
				m.parent = nil
				e.Append(m)
			}
			continue
		}
		c.Remove()
		c.parent = e
		e.children = append(e.children, c)
	}
	return e
}

// hasAncestor reports whether a is e or one of e's ancestors.
func (e *Element) hasAncestor(a *Element) bool {
	for p := e; p != nil; p = p.parent {
		if p == a {
			return true
		}
	}
	return false
}

// Remove detaches the element from its parent.
func (e *Element) Remove() {
	if e.parent == nil {
		return
	}
	p := e.parent
	p.children = slices.DeleteFunc(p.children, func(c *Element) bool { return c == e })
	e.parent = nil
}

// RemoveChildren detaches all children and returns the element.
// A nil receiver is a no-op returning nil.
func (e *Element) RemoveChildren() *Element {
	if e == nil {
		return nil
	}
	for _, c := range e.children {
		c.parent = nil
	}
	e.children = nil
	return e
}

// Find returns the first descendant matching fn in document order.
func (e *Element) Find(fn func(*Element) bool) *Element {
	var found *Element
	for _, c := range e.children {
		c.walk(func(el *Element) bool {
			if fn(el) {
				found = el
				return false
			}
			return true
		})
		if found != nil {
			return found
		}
	}
	return nil
}

// FindAll returns all descendants matching fn in document order.
func (e *Element) FindAll(fn func(*Element) bool) []*Element {
	var out []*Element
	for _, c := range e.children {
		c.walk(func(el *Element) bool {
			if fn(el) {
				out = append(out, el)
			}
			return true
		})
	}
	return out
}

// ByID returns the first descendant with the given id.
func (e *Element) ByID(id string) *Element {
	return e.Find(func(el *Element) bool { return el.ID() == id })
}

// ByTag returns a matcher for FindAll/Find selecting elements by tag.
func ByTag(tag string) func(*Element) bool {
	tag = strings.ToLower(tag)
	return func(el *Element) bool { return el.tag == tag }
}

// ByTagData returns a matcher selecting elements by tag and data-* value.
func ByTagData(tag, key, value string) func(*Element) bool {
	tag = strings.ToLower(tag)
	return func(el *Element) bool {
		return el.tag == tag && el.Data(key) == value
	}
}

// walk visits e and its descendants depth-first until fn returns false.
func (e *Element) walk(fn func(*Element) bool) bool {
	if !fn(e) {
		return false
	}
	for _, c := range e.children {
		if !c.walk(fn) {
			return false
		}
	}
	return true
}
