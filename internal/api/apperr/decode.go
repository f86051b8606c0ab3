package apperr

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// FromDecode maps a JSON request-body decode error to a client problem.
func FromDecode(err error) Problem {
	var (
		maxErr    *http.MaxBytesError
		syntaxErr *json.SyntaxError
		typeErr   *json.UnmarshalTypeError
	)
	switch {
	case errors.As(err, &maxErr):
		return Problem{
			Status: http.StatusRequestEntityTooLarge,
			Title:  "Request body too large",
			Detail: fmt.Sprintf("body must not exceed %d bytes", maxErr.Limit),
		}
	case errors.Is(err, io.EOF):
		return Problem{
			Status: http.StatusBadRequest,
			Title:  "Invalid JSON",
			Detail: "request body is empty",
		}
	case errors.As(err, &syntaxErr), errors.Is(err, io.ErrUnexpectedEOF):
		return Problem{
			Status: http.StatusBadRequest,
			Title:  "Invalid JSON",
			Detail: "request body is not valid JSON",
		}
	case errors.As(err, &typeErr):
		field := typeErr.Field
		return Problem{
			Status: http.StatusBadRequest,
			Title:  "Invalid field",
			FieldErrors: []FieldError{{
				Field:   field,
				Code:    "type",
				Message: fmt.Sprintf("%s must be a %s", field, typeErr.Type),
			}},
		}
	default:
		return Problem{
			Status: http.StatusBadRequest,
			Title:  "Invalid request body",
		}
	}
}
