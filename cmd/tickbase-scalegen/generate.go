package main

import "strings"

// headerData holds data for the file header template.
type headerData struct {
	Package string
}

// GenerateClocks renders the Go source for all clocks in the manifest.
func GenerateClocks(m *RawManifest) (string, error) {
	var b strings.Builder

	renderTemplate(&b, "header", headerData{Package: m.Package})

	for _, c := range m.Clocks {
		r := c.ratio()
		renderTemplate(&b, "clock", clockData{
			Name:        c.Name,
			Description: c.Description,
			Num:         r.Num,
			Den:         r.Den,
		})
	}

	return b.String(), nil
}
