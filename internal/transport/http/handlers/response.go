package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/vblajic/chirper/internal/service"
)

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, map[string]any{
		"error": map[string]string{
			"code":    code,
			"message": message,
		},
	})
}

// writeUserError maps the two user-visible error kinds onto HTTP statuses.
func writeUserError(w http.ResponseWriter, err error) {
	var uerr *service.UserError
	if errors.As(err, &uerr) && uerr.Kind == service.KindValidation {
		writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", uerr.Error())
		return
	}
	writeError(w, http.StatusInternalServerError, "INTERNAL", "An internal error occurred. Please try again later.")
}
