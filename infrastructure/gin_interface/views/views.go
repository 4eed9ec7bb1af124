package views

import (
	"embed"
	"html/template"
)

//go:embed *.html
var files embed.FS

// Templates parses the embedded page templates. It panics on a malformed template.
func Templates() *template.Template {
	return template.Must(template.New("").ParseFS(files, "*.html"))
}
