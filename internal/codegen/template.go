package codegen

import (
	"strconv"
	"text/template"
)

var fileTemplate = template.Must(template.New("isodata").Funcs(template.FuncMap{
	"quote": strconv.Quote,
}).Parse(`// Code generated by isogen from {{.Source}}; DO NOT EDIT.

package {{.Package}}

import "golang.org/x/text/language"

// count is the number of currencies in the table.
const count = {{len .Rows}}

const (
{{- range $i, $r := .Rows}}
	// {{$r.Code}} is the ISO 4217 code for {{$r.Name}}.
	{{if eq $i 0}}{{$r.Code}} Currency = iota + 1{{else}}{{$r.Code}}{{end}}
{{- end}}
)

var codes = [count + 1]string{
{{- range .Rows}}
	{{.Code}}: {{quote .Code}},
{{- end}}
}

var names = [count + 1]string{
{{- range .Rows}}
	{{.Code}}: {{quote .Name}},
{{- end}}
}

var numerics = [count + 1]uint16{
{{- range .Rows}}
	{{.Code}}: {{.Numeric}},
{{- end}}
}

var symbols = [count + 1]Symbol{
{{- range .Rows}}{{if or .Symbol .Subunit}}
	{{.Code}}: { {{- if .Symbol}}Symbol: {{quote .Symbol}}{{end}}{{if and .Symbol .Subunit}}, {{end}}{{if .Subunit}}Subunit: {{quote .Subunit}}{{end -}} },
{{- end}}{{end}}
}

// exponents holds -1 for currencies without a minor unit.
var exponents = [count + 1]int8{
{{- range .Rows}}
	{{.Code}}: {{.Exponent}},
{{- end}}
}

var usedBy = [count + 1][]language.Region{
{{- range .Rows}}{{if .Territories}}
	{{.Code}}: { {{- range $i, $t := .Territories}}{{if $i}}, {{end}}language.MustParseRegion({{quote $t}}){{end -}} },
{{- end}}{{end}}
}

var flags = [count + 1]flag{
{{- range .Rows}}{{if .Flags}}
	{{.Code}}: {{.Flags}},
{{- end}}{{end}}
}

var supersededBy = [count + 1]Currency{
{{- range .Rows}}{{if .SupersededBy}}
	{{.Code}}: {{.SupersededBy}},
{{- end}}{{end}}
}

// FromCode returns the currency with the given alpha code. The match is exact
// and case-sensitive.
func FromCode(code string) (Currency, bool) {
	switch code {
{{- range .Rows}}
	case {{quote .Code}}:
		return {{.Code}}, true
{{- end}}
	}
	return 0, false
}

// FromNumeric returns the currency with the given numeric code.
func FromNumeric(numeric int) (Currency, bool) {
	switch numeric {
{{- range .Rows}}
	case {{.Numeric}}:
		return {{.Code}}, true
{{- end}}
	}
	return 0, false
}
`))
