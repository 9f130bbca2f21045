package encode

import (
	"strings"

	"github.com/fatih/color"
)

// Kind is the kind of JSON token being colored.
type Kind int

const (
	NullKind Kind = iota
	BoolKind
	NumberKind
	StringKind
	ObjectKind
	ArrayKind
	VariantKind
)

// Kinds returns all token kinds.
func Kinds() []Kind {
	return []Kind{NullKind, BoolKind, NumberKind, StringKind, ObjectKind, ArrayKind, VariantKind}
}

type Colorable struct {
	Kind Kind
	Attr ColorAttr
}

type ColorAttr int

const (
	// ValueColor colors scalar values.
	ValueColor ColorAttr = iota
	// FieldColor colors object keys, struct field names and the keys of
	// enum variant objects.
	FieldColor
	// SepColor colors delimiters and separators.
	SepColor
)

type Colors struct {
	Default func(string, ...any) string
	Map     map[Colorable]func(string, ...any) string
}

func NewColors() *Colors {
	colors := &Colors{
		Default: colorDefault,
		Map:     map[Colorable]func(string, ...any) string{},
	}
	for _, k := range Kinds() {
		colors.Map[Colorable{Kind: k, Attr: SepColor}] = color.RGB(255, 0, 196).SprintfFunc()
		colors.Map[Colorable{Kind: k, Attr: FieldColor}] = color.RGB(128, 168, 196).SprintfFunc()
	}
	able := Colorable{Attr: ValueColor}

	able.Kind = NumberKind
	colors.Map[able] = color.RGB(128, 216, 236).SprintfFunc()
	able.Attr = FieldColor
	colors.Map[able] = color.RGB(196, 96, 16).SprintfFunc()
	able.Attr = ValueColor

	able.Kind = NullKind
	colors.Map[able] = color.RGB(168, 0, 196).SprintfFunc()

	able.Kind = BoolKind
	colors.Map[able] = color.CyanString

	able.Kind = StringKind
	colors.Map[able] = color.RGB(8, 196, 16).SprintfFunc()

	able.Kind = ObjectKind
	able.Attr = SepColor
	colors.Map[able] = color.RGB(196, 128, 128).SprintfFunc()

	able.Kind = VariantKind
	colors.Map[able] = color.RGB(196, 168, 128).SprintfFunc()
	able.Attr = ValueColor
	colors.Map[able] = color.RGB(198, 198, 46).SprintfFunc()
	for k, f := range colors.Map {
		colors.Map[k] = func(v string, _ ...any) string {
			return f(strings.Replace(v, "%", "%%", -1))
		}
	}
	return colors
}

func colorDefault(v string, _ ...any) string { return v }

func (c *Colors) Color(k Kind, a ColorAttr, s string) string {
	return c.Get(k, a)(s)
}

func (c *Colors) Get(k Kind, a ColorAttr) func(string, ...any) string {
	f := c.Map[Colorable{Kind: k, Attr: a}]
	if f == nil {
		return c.Default
	}
	return f
}
