package codegen

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"go/types"
	"reflect"
	"strconv"
	"strings"

	"github.com/signadot/jsonenc/gomap"
)

// ParseFile parses a Go source file and returns its AST.
func ParseFile(filename string) (*ast.File, *token.FileSet, error) {
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, filename, nil, parser.ParseComments)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse file %q: %w", filename, err)
	}
	return file, fset, nil
}

// ExtractStructs returns the structs in file whose doc comment holds the
// generate directive.
func ExtractStructs(file *ast.File, filePath string) ([]*StructInfo, error) {
	var structs []*StructInfo
	for _, decl := range file.Decls {
		genDecl, ok := decl.(*ast.GenDecl)
		if !ok || genDecl.Tok != token.TYPE {
			continue
		}
		for _, spec := range genDecl.Specs {
			typeSpec, ok := spec.(*ast.TypeSpec)
			if !ok {
				continue
			}
			if !hasDirective(typeSpec.Doc) && !(len(genDecl.Specs) == 1 && hasDirective(genDecl.Doc)) {
				continue
			}
			structType, ok := typeSpec.Type.(*ast.StructType)
			if !ok {
				return nil, fmt.Errorf("type %q: %s applies to struct types only", typeSpec.Name.Name, Directive)
			}
			if typeSpec.TypeParams != nil {
				return nil, fmt.Errorf("type %q: generic types are not supported", typeSpec.Name.Name)
			}
			fields, err := extractFields(structType)
			if err != nil {
				return nil, fmt.Errorf("failed to extract fields from struct %q: %w", typeSpec.Name.Name, err)
			}
			structs = append(structs, &StructInfo{
				Name:     typeSpec.Name.Name,
				Package:  file.Name.Name,
				FilePath: filePath,
				Fields:   fields,
			})
		}
	}
	return structs, nil
}

func hasDirective(doc *ast.CommentGroup) bool {
	if doc == nil {
		return false
	}
	for _, c := range doc.List {
		if strings.TrimSpace(c.Text) == Directive {
			return true
		}
	}
	return false
}

func extractFields(st *ast.StructType) ([]*FieldInfo, error) {
	var fields []*FieldInfo
	seen := map[string]string{}
	for _, field := range st.Fields.List {
		tag, err := gomap.ParseFieldTag(getFieldTag(field))
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", types.ExprString(field.Type), err)
		}
		if tag.Omit {
			continue
		}
		if len(field.Names) == 0 {
			return nil, fmt.Errorf("embedded field %s: not supported, tag it omit", types.ExprString(field.Type))
		}
		for _, name := range field.Names {
			if !name.IsExported() {
				continue
			}
			out := name.Name
			if tag.Name != "" {
				out = tag.Name
			}
			if prev, ok := seen[out]; ok {
				return nil, fmt.Errorf("fields %s and %s both encode as %q", prev, name.Name, out)
			}
			seen[out] = name.Name
			fields = append(fields, &FieldInfo{
				Name:       name.Name,
				OutputName: out,
				ASTType:    field.Type,
				OmitEmpty:  tag.OmitEmpty,
			})
		}
	}
	return fields, nil
}

// getFieldTag returns the jsonenc part of a field's tag.
func getFieldTag(field *ast.Field) string {
	if field.Tag == nil {
		return ""
	}
	s, err := strconv.Unquote(field.Tag.Value)
	if err != nil {
		return ""
	}
	return reflect.StructTag(s).Get(gomap.TagKey)
}
