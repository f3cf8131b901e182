package web

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"
	"strings"

	"github.com/derekprior/doubles/internal/schedule"
)

//go:embed templates/*.html
var content embed.FS

var funcs = template.FuncMap{
	// statusClass turns "minor deviation" into "minor-deviation".
	"statusClass": func(s schedule.Status) string {
		return strings.ReplaceAll(s.String(), " ", "-")
	},
}

type Templates struct {
	base *template.Template
}

func NewTemplates() (*Templates, error) {
	base, err := template.New("layout").Funcs(funcs).ParseFS(content, "templates/layout.html")
	if err != nil {
		return nil, err
	}
	return &Templates{base: base}, nil
}

// Render executes the named page inside the layout and writes it with the
// given status. Nothing is written if rendering fails.
func (t *Templates) Render(w http.ResponseWriter, status int, name string, data any) error {
	tmpl, err := t.base.Clone()
	if err != nil {
		return err
	}
	if _, err := tmpl.ParseFS(content, "templates/"+name); err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout", data); err != nil {
		return err
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err = buf.WriteTo(w)
	return err
}
