package handler

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"path"
	"strings"
	"time"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

type Pages struct {
	Home    *template.Template
	Post    *template.Template
	NewPost *template.Template
	AboutMe *template.Template
	Login   *template.Template
}

func loadPages() (*Pages, error) {
	funcs := template.FuncMap{
		"formatDate": func(t time.Time) string { return t.Format("January 2, 2006") },
	}

	layout, err := templateFS.ReadFile("templates/layout.html")
	if err != nil {
		return nil, fmt.Errorf("read layout: %w", err)
	}

	makePage := func(name string) (*template.Template, error) {
		page, err := templateFS.ReadFile("templates/" + name + ".html")
		if err != nil {
			return nil, fmt.Errorf("read page %q: %w", name, err)
		}
		t, err := template.New("layout").Funcs(funcs).Parse(string(layout))
		if err != nil {
			return nil, fmt.Errorf("parse layout: %w", err)
		}
		if t, err = t.Parse(string(page)); err != nil {
			return nil, fmt.Errorf("parse page %q: %w", name, err)
		}
		return t, nil
	}

	pages := &Pages{}
	for name, dst := range map[string]**template.Template{
		"home":     &pages.Home,
		"post":     &pages.Post,
		"new-post": &pages.NewPost,
		"about-me": &pages.AboutMe,
		"login":    &pages.Login,
	} {
		if *dst, err = makePage(name); err != nil {
			return nil, err
		}
	}

	return pages, nil
}

// StaticHandler serves the embedded stylesheets and scripts under /static/.
func StaticHandler() http.Handler {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	files := http.FileServerFS(sub)
	return http.StripPrefix("/static/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "" || strings.HasSuffix(r.URL.Path, "/") || strings.HasPrefix(path.Base(r.URL.Path), ".") {
			http.NotFound(w, r)
			return
		}
		files.ServeHTTP(w, r)
	}))
}
