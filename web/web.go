// Package web bundles the HTML templates and stylesheet served by the UI.
package web

import (
	"embed"
	"html/template"
	"io/fs"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// Templates parses every page and partial.
func Templates() (*template.Template, error) {
	return template.ParseFS(templateFS, "templates/*.tmpl")
}

// Static returns the stylesheet tree rooted at static/.
func Static() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return sub
}
