package dom

import (
	"bufio"
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
)

// voidElements never have children or a closing tag.
var voidElements = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true,
	"hr": true, "img": true, "input": true, "link": true, "meta": true,
	"source": true, "track": true, "wbr": true,
}

var _ templ.Component = (*Element)(nil)

// Render writes the element subtree as HTML.
// Text and attribute values are escaped. Attributes with an empty value
// render as boolean attributes. Fragments render their children only.
func (e *Element) Render(ctx context.Context, w io.Writer) error {
	bw := bufio.NewWriter(w)
	if err := e.render(ctx, bw); err != nil {
		return err
	}
	return bw.Flush()
}

// HTML renders the subtree into a string. Intended for tests and logs.
func (e *Element) HTML() string {
	var b strings.Builder
	_ = e.Render(context.Background(), &b)
	return b.String()
}

func (e *Element) render(ctx context.Context, w *bufio.Writer) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if e.IsFragment() {
		return e.renderContent(ctx, w)
	}

	w.WriteByte('<')
	w.WriteString(e.tag)
	for _, a := range e.attrs {
		writeAttr(w, a.Name, a.Value)
	}
	if len(e.classes) > 0 {
		writeAttr(w, "class", strings.Join(e.classes, " "))
	}
	w.WriteByte('>')

	if voidElements[e.tag] {
		return nil
	}

	if err := e.renderContent(ctx, w); err != nil {
		return err
	}

	w.WriteString("</")
	w.WriteString(e.tag)
	_, err := w.WriteString(">")
	return err
}

func (e *Element) renderContent(ctx context.Context, w *bufio.Writer) error {
	if e.text != "" {
		w.WriteString(templ.EscapeString(e.text))
	}
	for _, c := range e.children {
		if err := c.render(ctx, w); err != nil {
			return err
		}
	}
	return nil
}

func writeAttr(w *bufio.Writer, name, value string) {
	w.WriteByte(' ')
	w.WriteString(name)
	if value == "" {
		return
	}
	w.WriteString(`="`)
	w.WriteString(templ.EscapeString(value))
	w.WriteByte('"')
}
