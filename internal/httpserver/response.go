package httpserver

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	authdomain "tijaniyah/backend/internal/domain/auth"
	postdomain "tijaniyah/backend/internal/domain/post"
	prayerdomain "tijaniyah/backend/internal/domain/prayer"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

func writeMethodNotAllowed(w http.ResponseWriter, allowed ...string) {
	w.Header().Set("Allow", strings.Join(allowed, ", "))
	writeError(w, http.StatusMethodNotAllowed, "method not allowed")
}

// writeDomainError maps domain sentinels onto HTTP statuses. Anything
// unrecognised is a server fault: the detail is logged, the client gets a
// generic 500 body.
func writeDomainError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, authdomain.ErrInvalidInput):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, authdomain.ErrInvalidCredentials):
		writeError(w, http.StatusUnauthorized, authdomain.ErrInvalidCredentials.Error())
	case errors.Is(err, authdomain.ErrTokenInvalid):
		writeError(w, http.StatusUnauthorized, authdomain.ErrTokenInvalid.Error())
	case errors.Is(err, authdomain.ErrEmailExists):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, authdomain.ErrUserNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, authdomain.ErrInvalidRole),
		errors.Is(err, authdomain.ErrPasswordMismatch),
		errors.Is(err, authdomain.ErrPasswordUnchanged):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, postdomain.ErrNotFound), errors.Is(err, prayerdomain.ErrNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, postdomain.ErrDuplicateSlug):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, postdomain.ErrNotAuthor):
		writeError(w, http.StatusForbidden, err.Error())
	default:
		log.Printf("%s %s: internal error: %v", r.Method, r.URL.Path, err)
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}
