package encode

import "github.com/signadot/jsonenc/format"

type EncodeOption func(*encOpts)

type encOpts struct {
	layout format.Layout
	indent int
	color  func(Kind, ColorAttr, string) string
}

// Compact selects the compact layout. It is the default.
func Compact() EncodeOption {
	return func(o *encOpts) { o.layout = format.CompactLayout }
}

// Pretty selects the pretty layout, indenting step spaces per level.
// A step below 1 uses format.DefaultIndent.
func Pretty(step int) EncodeOption {
	return func(o *encOpts) {
		o.layout = format.PrettyLayout
		o.indent = step
	}
}

// EncodeLayout selects layout l. step is only used by the pretty layout.
func EncodeLayout(l format.Layout, step int) EncodeOption {
	return func(o *encOpts) {
		o.layout = l
		o.indent = step
	}
}

// EncodeColors colors tokens with c. A nil c disables colors.
func EncodeColors(c *Colors) EncodeOption {
	return func(o *encOpts) {
		if c == nil {
			o.color = nil
			return
		}
		o.color = c.Color
	}
}

// LayoutFromOpts extracts the layout from encode options.
func LayoutFromOpts(opts ...EncodeOption) format.Layout {
	o := &encOpts{}
	for _, opt := range opts {
		opt(o)
	}
	return o.layout
}

func newOpts(opts []EncodeOption) *encOpts {
	o := &encOpts{}
	for _, opt := range opts {
		opt(o)
	}
	if o.layout.IsPretty() && o.indent < 1 {
		o.indent = format.DefaultIndent
	}
	return o
}
