package router

import (
	"net/http"

	"github.com/5w1tchy/password-checker/internal/api/handlers"
)

func Router(gen handlers.Generator) http.Handler {
	mux := http.NewServeMux()

	// UI
	mux.HandleFunc("GET /{$}", handlers.RootHandler)
	mux.Handle("GET /static/", handlers.Static())

	// API
	mux.Handle("POST /check", handlers.Check())
	mux.Handle("GET /generate", handlers.Generate(gen))

	return mux
}
