package codegen

import "go/ast"

// Directive marks a struct for generation when it appears as a line of the
// struct's doc comment.
const Directive = "//jsonenc:generate"

// PackageInfo describes a package found by DiscoverPackages.
type PackageInfo struct {
	// Path is the import path
	Path string

	// Dir is the absolute directory
	Dir string

	// Name is the package name
	Name string

	// Files holds absolute paths of the package's non test Go files
	Files []string
}

// StructInfo holds a struct selected for generation.
type StructInfo struct {
	// Name is the struct type name
	Name string

	// Package is the package name this struct belongs to
	Package string

	// FilePath is the path to the source file containing this struct
	FilePath string

	// Fields are the encoded fields, in declaration order
	Fields []*FieldInfo
}

// FieldInfo holds an encoded field of a struct.
type FieldInfo struct {
	// Name is the struct field name
	Name string

	// OutputName is the object key, from `jsonenc:"field=name"` or Name
	OutputName string

	// ASTType is the declared type of the field
	ASTType ast.Expr

	// OmitEmpty drops the field when it holds its zero value
	OmitEmpty bool
}

// HasOmitEmpty reports whether any field of s is conditional.
func (s *StructInfo) HasOmitEmpty() bool {
	for _, f := range s.Fields {
		if f.OmitEmpty {
			return true
		}
	}
	return false
}
