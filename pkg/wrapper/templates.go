package wrapper

import (
	"strings"
	"text/template"
)

var templates = template.Must(template.New("vhdl").Funcs(template.FuncMap{
	"indent": indent,
}).Parse(`
{{- define "portClause" -}}
{{.Name}} : {{.Direction}} {{.Type}}
{{- end}}

{{- define "signalDecl" -}}
signal {{.Signal}}: std_logic_vector({{.High}} downto 0);
{{- end}}

{{- define "generateBlock" -}}
-- {{if .In}}Flatten input{{else}}Unflatten output{{end}} signal {{.Port}}
{{.Label}}: for i in 0 to {{.Last}} generate
{{if .In -}}
{{.Indent}}{{.Signal}}({{.Slice}}) <= {{.Port}}(i)({{.Element}});
{{- else -}}
{{.Indent}}{{.Port}}(i)({{.Element}}) <= {{.Signal}}({{.Slice}});
{{- end}}
end generate {{.Label}};
{{- end}}

{{- define "portMapEntry" -}}
{{.Formal}} => {{.Actual}}
{{- end}}

{{- define "typeDecl" -}}
type {{.Name}} is array (0 to {{.Last}}) of std_logic_vector({{.High}} downto 0);
{{- end}}

{{- define "wrapper" -}}
library ieee;
use ieee.std_logic_1164.all;
use {{.Library}}.{{.Package}}.all;

entity {{.Wrapper}} is
{{.I}}port (
{{- range $i, $p := .Ports}}{{if $i}};{{end}}
{{$.I}}{{$.I}}{{$p}}
{{- end}}
{{.I}});
end {{.Wrapper}};

architecture {{.Architecture}} of {{.Wrapper}} is
{{- range .Signals}}
{{$.I}}{{.}}
{{- end}}
begin
{{- range .Blocks}}
{{indent $.I .}}
{{end}}
{{.I}}{{.Entity}}_inst: entity {{.Library}}.{{.Entity}}
{{.I}}{{.I}}port map (
{{- range $i, $m := .PortMap}}{{if $i}},{{end}}
{{$.I}}{{$.I}}{{$.I}}{{$m}}
{{- end}}
{{.I}}{{.I}});
end {{.Architecture}};
{{end}}

{{- define "package" -}}
library ieee;
use ieee.std_logic_1164.all;

package {{.Package}} is
{{- range .Types}}
{{$.I}}{{.}}
{{- end}}
end package {{.Package}};
{{end}}
`))

// indent prefixes every non-empty line of s with prefix.
func indent(prefix, s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = prefix + line
		}
	}
	return strings.Join(lines, "\n")
}

func render(name string, data any) (string, error) {
	var sb strings.Builder
	if err := templates.ExecuteTemplate(&sb, name, data); err != nil {
		return "", err
	}
	return sb.String(), nil
}
