package codegen

import "go/ast"

// basicEmits maps predeclared type names to the Encoder method taking them.
var basicEmits = map[string]string{
	"bool":    "EmitBool",
	"int":     "EmitInt",
	"int8":    "EmitInt8",
	"int16":   "EmitInt16",
	"int32":   "EmitInt32",
	"rune":    "EmitInt32",
	"int64":   "EmitInt64",
	"uint":    "EmitUint",
	"uint8":   "EmitUint8",
	"byte":    "EmitUint8",
	"uint16":  "EmitUint16",
	"uint32":  "EmitUint32",
	"uint64":  "EmitUint64",
	"float32": "EmitFloat32",
	"float64": "EmitFloat64",
	"string":  "EmitString",
}

func basicName(t ast.Expr) (string, bool) {
	id, ok := t.(*ast.Ident)
	if !ok {
		return "", false
	}
	_, ok = basicEmits[id.Name]
	return id.Name, ok
}

// emitExpr returns the expression encoding field f of x.
func emitExpr(f *FieldInfo) string {
	access := "x." + f.Name
	if name, ok := basicName(f.ASTType); ok {
		return "e." + basicEmits[name] + "(" + access + ")"
	}
	return "gomap.Value(" + access + ").Encode(e)"
}

// zeroExpr returns the expression testing field f of x for its zero value.
func zeroExpr(f *FieldInfo) string {
	access := "x." + f.Name
	name, ok := basicName(f.ASTType)
	switch {
	case !ok:
		return "reflect.ValueOf(" + access + ").IsZero()"
	case name == "bool":
		return "!" + access
	case name == "string":
		return access + ` == ""`
	default:
		return access + " == 0"
	}
}
