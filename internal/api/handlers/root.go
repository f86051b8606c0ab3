package handlers

import (
	"bytes"
	"embed"
	"html/template"
	"io/fs"
	"log"
	"net/http"

	"github.com/5w1tchy/password-checker/internal/security/password"
	"github.com/5w1tchy/password-checker/internal/strength"
)

//go:embed web/templates/*.html web/static/*
var webFS embed.FS

var indexTmpl = template.Must(template.ParseFS(webFS, "web/templates/index.html"))

type indexData struct {
	Title        string
	MaxScore     int
	Specials     string
	GeneratedLen int
}

// RootHandler renders the single-page checker UI.
func RootHandler(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	var buf bytes.Buffer
	err := indexTmpl.Execute(&buf, indexData{
		Title:        "Password Security Checker",
		MaxScore:     strength.MaxScore,
		Specials:     strength.Specials,
		GeneratedLen: password.GeneratedLen,
	})
	if err != nil {
		log.Printf("[API] render index: %v", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}

// Static serves the page's script and stylesheet.
func Static() http.Handler {
	sub, err := fs.Sub(webFS, "web/static")
	if err != nil {
		panic(err)
	}
	return http.StripPrefix("/static/", http.FileServer(http.FS(sub)))
}
