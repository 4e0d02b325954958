package main

import (
	"embed"
	"fmt"
	"html/template"
	"strings"
	"sync"
)

//go:embed templates/*.tmpl templates/*.css
var templateFS embed.FS

var (
	archiveTemplate *template.Template
	templateOnce    sync.Once
	templateErr     error
)

// getArchiveTemplate returns the parsed templates, loading them on first call.
func getArchiveTemplate() (*template.Template, error) {
	templateOnce.Do(func() {
		archiveTemplate, templateErr = loadArchiveTemplate()
	})
	return archiveTemplate, templateErr
}

// loadArchiveTemplate loads and parses all templates with the function map.
func loadArchiveTemplate() (*template.Template, error) {
	cssBytes, err := templateFS.ReadFile("templates/styles.css")
	if err != nil {
		return nil, fmt.Errorf("reading CSS: %w", err)
	}

	funcs := template.FuncMap{
		"inlineCSS": func() template.CSS {
			return template.CSS(cssBytes)
		},
	}

	tmpl, err := template.New("archive").Funcs(funcs).ParseFS(templateFS, "templates/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parsing templates: %w", err)
	}

	return tmpl, nil
}

// execute runs one named template into a string
func execute(name string, data any) (string, error) {
	tmpl, err := getArchiveTemplate()
	if err != nil {
		return "", err
	}

	var buf strings.Builder
	if err := tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("executing template %s: %w", name, err)
	}

	return buf.String(), nil
}

// RenderPage renders a complete page document.
func RenderPage(data *PageData) (string, error) {
	return execute("page.html.tmpl", data)
}
