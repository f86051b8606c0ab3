package handlers

import (
	"log"
	"net/http"

	"github.com/5w1tchy/password-checker/internal/api/apperr"
	"github.com/5w1tchy/password-checker/internal/api/httpx"
	"github.com/5w1tchy/password-checker/internal/api/middlewares"
)

// Generator produces a random password.
type Generator interface {
	Generate() (string, error)
}

type generateResponse struct {
	Password string `json:"password"`
}

// Generate handles GET /generate. A failing random source is a 500; there is
// no fallback.
func Generate(gen Generator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		pwd, err := gen.Generate()
		if err != nil {
			log.Printf("[API] generate failed rid=%s: %v", middlewares.GetRequestID(r), err)
			apperr.WriteStatus(w, r, http.StatusInternalServerError,
				"Password generation unavailable", "secure random source unavailable")
			return
		}
		httpx.WriteJSON(w, http.StatusOK, generateResponse{Password: pwd})
	}
}
