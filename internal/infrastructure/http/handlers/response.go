package handlers

import (
	"encoding/json"
	"net/http"
)

// writeJSON sends v with the given status.
func writeJSON(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// writeSuccess sends the success envelope: {status, message, data}.
func writeSuccess(w http.ResponseWriter, code int, message string, data interface{}) {
	writeJSON(w, code, map[string]interface{}{
		"status":  "success",
		"message": message,
		"data":    data,
	})
}

// writeErr sends {"error": message}.
func writeErr(w http.ResponseWriter, code int, message string) {
	writeJSON(w, code, map[string]string{"error": message})
}

// writeStatusErr sends the failure envelope used by the auth endpoints:
// {status, message, statusCode}.
func writeStatusErr(w http.ResponseWriter, code int, status, message string) {
	writeJSON(w, code, map[string]interface{}{
		"status":     status,
		"message":    message,
		"statusCode": code,
	})
}

// writeFieldErrors sends 422 with one entry per invalid field.
func writeFieldErrors(w http.ResponseWriter, errs []FieldError) {
	writeJSON(w, http.StatusUnprocessableEntity, map[string]interface{}{"errors": errs})
}
