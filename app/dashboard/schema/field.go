// Package schema describes the fields of each resource for the generic create dialog.
package schema

// Field 字段描述，只有本包内的类型可以实现
type Field interface {
	Name() string
	Label() string
	Required() bool
	Accept(v Visitor)

	field()
}

// Visitor 每种字段类型对应一个方法，新增类型时所有渲染器都需要补上
type Visitor interface {
	VisitText(f *TextField)
	VisitTextArea(f *TextAreaField)
	VisitSelect(f *SelectField)
	VisitBoolean(f *BooleanField)
}

type base struct {
	name     string
	label    string
	required bool
}

func (b base) Name() string   { return b.name }
func (b base) Label() string  { return b.label }
func (b base) Required() bool { return b.required }
func (base) field()           {}

type TextKind string

const (
	TextPlain    TextKind = "text"
	TextEmail    TextKind = "email"
	TextPassword TextKind = "password"
)

type TextField struct {
	base
	Kind TextKind
}

func (f *TextField) Accept(v Visitor) { v.VisitText(f) }

type TextAreaField struct {
	base
	Rows int
}

func (f *TextAreaField) Accept(v Visitor) { v.VisitTextArea(f) }

type Option struct {
	Value string
	Label string
}

type SelectField struct {
	base
	Options []Option
}

func (f *SelectField) Accept(v Visitor) { v.VisitSelect(f) }

type BooleanField struct {
	base
}

func (f *BooleanField) Accept(v Visitor) { v.VisitBoolean(f) }

func Text(name, label string, required bool) *TextField {
	return &TextField{base: base{name, label, required}, Kind: TextPlain}
}

func Email(name, label string, required bool) *TextField {
	return &TextField{base: base{name, label, required}, Kind: TextEmail}
}

func Password(name, label string, required bool) *TextField {
	return &TextField{base: base{name, label, required}, Kind: TextPassword}
}

func TextArea(name, label string, required bool) *TextAreaField {
	return &TextAreaField{base: base{name, label, required}, Rows: 3}
}

func Select(name, label string, required bool, options []Option) *SelectField {
	return &SelectField{base: base{name, label, required}, Options: options}
}

func Boolean(name, label string) *BooleanField {
	return &BooleanField{base: base{name, label, false}}
}
