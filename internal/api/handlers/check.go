package handlers

import (
	"net/http"

	"github.com/5w1tchy/password-checker/internal/api/apperr"
	"github.com/5w1tchy/password-checker/internal/api/httpx"
	"github.com/5w1tchy/password-checker/internal/strength"
)

type checkRequest struct {
	Password string `json:"password"` // absent == ""
}

// Check handles POST /check and replies with the strength.Result.
func Check() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req checkRequest
		if err := httpx.DecodeJSON(r, &req); err != nil {
			apperr.Write(w, r, apperr.FromDecode(err))
			return
		}

		httpx.WriteJSON(w, http.StatusOK, strength.Evaluate(req.Password))
	}
}
