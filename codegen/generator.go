package codegen

import (
	"bytes"
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/template"

	"github.com/signadot/jsonenc/debug"
	"golang.org/x/tools/imports"
)

var encodeTemplate = template.Must(template.New("jsonenc").Funcs(template.FuncMap{
	"quote": strconv.Quote,
	"emit":  emitExpr,
	"zero":  zeroExpr,
}).Parse(`// Code generated by jsonenc-gen. DO NOT EDIT.

package {{.Package}}

import (
	"reflect"

	"github.com/signadot/jsonenc/gomap"
	"github.com/signadot/jsonenc/visit"
)
{{range .Structs}}
// Encode encodes x as the struct {{.Name}}.
func (x {{.Name}}) Encode(e visit.Encoder) error {
{{- if .HasOmitEmpty}}
	n := {{len .Fields}}
{{- range .Fields}}{{if .OmitEmpty}}
	if {{zero .}} {
		n--
	}
{{- end}}{{end}}
	return e.EmitStruct({{quote .Name}}, n, func(e visit.Encoder) error {
		i := 0
{{- range .Fields}}
{{- if .OmitEmpty}}
		if !({{zero .}}) {
			if err := e.EmitStructField({{quote .OutputName}}, i, func(e visit.Encoder) error {
				return {{emit .}}
			}); err != nil {
				return err
			}
			i++
		}
{{- else}}
		if err := e.EmitStructField({{quote .OutputName}}, i, func(e visit.Encoder) error {
			return {{emit .}}
		}); err != nil {
			return err
		}
		i++
{{- end}}
{{- end}}
		return nil
	})
{{- else}}
	return e.EmitStruct({{quote .Name}}, {{len .Fields}}, func(e visit.Encoder) error {
{{- range $i, $f := .Fields}}
		if err := e.EmitStructField({{quote $f.OutputName}}, {{$i}}, func(e visit.Encoder) error {
			return {{emit $f}}
		}); err != nil {
			return err
		}
{{- end}}
		return nil
	})
{{- end}}
}
{{end}}`))

// Generate returns the formatted source of the Encode methods for structs,
// which all belong to package pkgName.
func Generate(pkgName string, structs []*StructInfo) ([]byte, error) {
	buf := bytes.NewBuffer(nil)
	data := struct {
		Package string
		Structs []*StructInfo
	}{pkgName, structs}
	if err := encodeTemplate.Execute(buf, data); err != nil {
		return nil, fmt.Errorf("failed to execute template: %w", err)
	}
	// drops the imports the methods do not use
	src, err := imports.Process(pkgName+GeneratedSuffix, buf.Bytes(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to format generated code: %w", err)
	}
	return src, nil
}

// GeneratePackage generates the Encode methods of every marked struct in
// pkg and writes them to out, or to OutputFile(pkg) if out is empty. No
// file is written when pkg has no marked structs.
func GeneratePackage(pkg *PackageInfo, out string) ([]*StructInfo, error) {
	var all []*StructInfo
	for _, path := range pkg.Files {
		file, _, err := ParseFile(path)
		if err != nil {
			return nil, err
		}
		structs, err := ExtractStructs(file, path)
		if err != nil {
			return nil, fmt.Errorf("failed to extract structs from %q: %w", path, err)
		}
		all = append(all, structs...)
	}
	if len(all) == 0 {
		return nil, nil
	}
	if debug.Gen() {
		names := make([]string, len(all))
		for i, s := range all {
			names[i] = s.Name
		}
		debug.Logf("gen: package %s: %s\n", pkg.Name, strings.Join(names, ", "))
	}
	src, err := Generate(pkg.Name, all)
	if err != nil {
		return nil, err
	}
	if out == "" {
		out = OutputFile(pkg)
	}
	if err := os.WriteFile(out, src, 0644); err != nil {
		return nil, fmt.Errorf("failed to write %q: %w", out, err)
	}
	return all, nil
}
