// Package pages renderiza las vistas HTML (index, page1..page4, notFound).
package pages

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Nombres de vistas.
const (
	Index    = "index"
	Page1    = "page1"
	Page2    = "page2"
	Page3    = "page3"
	Page4    = "page4"
	NotFound = "notFound"
)

var names = []string{Index, Page1, Page2, Page3, Page4, NotFound}

// Data es lo que recibe cada template. Title/PageName alimentan el layout.
type Data struct {
	Title    string
	PageName string
	// Vista específica (currentName, lista de cats/dogs, url 404).
	View any
}

type Renderer struct {
	views map[string]*template.Template
}

// New parsea layout + cada vista desde el FS embebido.
func New() (*Renderer, error) {
	r := &Renderer{views: make(map[string]*template.Template, len(names))}
	for _, name := range names {
		t, err := template.ParseFS(templatesFS, "templates/layout.html", "templates/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("parse view %s: %w", name, err)
		}
		r.views[name] = t
	}
	return r, nil
}

// MustNew es New para inicialización (los templates son embebidos).
func MustNew() *Renderer {
	r, err := New()
	if err != nil {
		panic(err)
	}
	return r
}

// Render ejecuta la vista en un buffer primero: si falla no escribimos un 200 a medias.
func (r *Renderer) Render(w http.ResponseWriter, status int, name string, data Data) error {
	t, ok := r.views[name]
	if !ok {
		return fmt.Errorf("unknown view %q", name)
	}

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", data); err != nil {
		return fmt.Errorf("render %s: %w", name, err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err := buf.WriteTo(w)
	return err
}

// IndexView alimenta la home.
type IndexView struct {
	CurrentName string
}

// NotFoundView alimenta la página 404.
type NotFoundView struct {
	Page string
}
