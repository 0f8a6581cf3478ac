package schema

import (
	"fmt"
	"html/template"
	"strings"
)

type htmlRenderer struct {
	sb     strings.Builder
	values Values
	errors map[string]string
}

// Render 按字段顺序输出通用对话框的 HTML
func Render(s Structure, values Values, errors map[string]string) template.HTML {
	r := &htmlRenderer{values: values, errors: errors}
	for _, f := range s {
		r.sb.WriteString(`<div class="field">`)
		f.Accept(r)
		if msg, ok := r.errors[f.Name()]; ok {
			fmt.Fprintf(&r.sb, `<p class="field-error">%s</p>`, esc(msg))
		}
		r.sb.WriteString(`</div>`)
	}
	return template.HTML(r.sb.String())
}

func (r *htmlRenderer) label(f Field) {
	mark := ""
	if f.Required() {
		mark = " *"
	}
	fmt.Fprintf(&r.sb, `<label for="f-%s">%s%s</label>`, esc(f.Name()), esc(f.Label()), mark)
}

func (r *htmlRenderer) VisitText(f *TextField) {
	r.label(f)
	typ := "text"
	switch f.Kind {
	case TextEmail:
		typ = "email"
	case TextPassword:
		typ = "password"
	}
	fmt.Fprintf(&r.sb, `<input id="f-%s" name="%s" type="%s" value="%s"%s>`,
		esc(f.Name()), esc(f.Name()), typ, esc(r.values[f.Name()]), required(f))
}

func (r *htmlRenderer) VisitTextArea(f *TextAreaField) {
	r.label(f)
	fmt.Fprintf(&r.sb, `<textarea id="f-%s" name="%s" rows="%d"%s>%s</textarea>`,
		esc(f.Name()), esc(f.Name()), f.Rows, required(f), esc(r.values[f.Name()]))
}

func (r *htmlRenderer) VisitSelect(f *SelectField) {
	r.label(f)
	fmt.Fprintf(&r.sb, `<select id="f-%s" name="%s"%s><option value=""></option>`, esc(f.Name()), esc(f.Name()), required(f))
	current := r.values[f.Name()]
	for _, o := range f.Options {
		selected := ""
		if o.Value == current {
			selected = " selected"
		}
		fmt.Fprintf(&r.sb, `<option value="%s"%s>%s</option>`, esc(o.Value), selected, esc(o.Label))
	}
	r.sb.WriteString(`</select>`)
}

func (r *htmlRenderer) VisitBoolean(f *BooleanField) {
	checked := ""
	if r.values.Bool(f.Name()) {
		checked = " checked"
	}
	fmt.Fprintf(&r.sb, `<label class="switch"><input name="%s" type="checkbox" value="true"%s> %s</label>`,
		esc(f.Name()), checked, esc(f.Label()))
}

func required(f Field) string {
	if f.Required() {
		return " required"
	}
	return ""
}

func esc(s string) string {
	return template.HTMLEscapeString(s)
}
