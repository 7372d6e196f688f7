package main

import (
	"fmt"
	"strings"
	"text/template"
)

// funcMap provides helper functions available to all templates.
var funcMap = template.FuncMap{
	"firstLower": firstLower,
}

// templates holds all parsed code generation templates.
var templates = template.Must(template.New("").Funcs(funcMap).Parse(
	headerTmpl + clockTmpl,
))

// renderTemplate executes a named template into the builder.
func renderTemplate(b *strings.Builder, name string, data any) {
	if err := templates.ExecuteTemplate(b, name, data); err != nil {
		panic(fmt.Sprintf("template %s: %v", name, err))
	}
}

// firstLower lowercases the first rune of s.
func firstLower(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}

// clockData holds pre-computed data for the clock template. Num/Den is the
// seconds-per-tick base; the hertz base is its reciprocal.
type clockData struct {
	Name        string
	Description string
	Num         uint32
	Den         uint32
}

const headerTmpl = `{{define "header" -}}
// Code generated by tickbase-scalegen. DO NOT EDIT.

package {{.Package}}

import (
	"github.com/tickbase/tickbase-go/pkg/scale"
	"github.com/tickbase/tickbase-go/pkg/tick"
)
{{end}}`

const clockTmpl = `{{define "clock"}}
// {{.Name}} is the tick base of {{if .Description}}{{firstLower .Description}}{{else}}{{.Num}}/{{.Den}} seconds per tick{{end}}.
type {{.Name}} struct{}

// Ratio returns the seconds-per-tick base.
func ({{.Name}}) Ratio() scale.Ratio { return scale.Ratio{Num: {{.Num}}, Den: {{.Den}}} }

// {{.Name}}Hz is the matching rate base of {{.Den}}/{{.Num}} hertz per count.
type {{.Name}}Hz struct{}

// Ratio returns the hertz-per-count base.
func ({{.Name}}Hz) Ratio() scale.Ratio { return scale.Ratio{Num: {{.Den}}, Den: {{.Num}}} }

type (
	{{.Name}}DurationU32 = tick.Duration[uint32, {{.Name}}]
	{{.Name}}DurationU64 = tick.Duration[uint64, {{.Name}}]
	{{.Name}}InstantU32  = tick.Instant[uint32, {{.Name}}]
	{{.Name}}InstantU64  = tick.Instant[uint64, {{.Name}}]
	{{.Name}}RateU32     = tick.Rate[uint32, {{.Name}}Hz]
	{{.Name}}RateU64     = tick.Rate[uint64, {{.Name}}Hz]
)

var (
	_ scale.Scale = {{.Name}}{}
	_ scale.Scale = {{.Name}}Hz{}
)
{{end}}`
