package site

import (
	"encoding/json"
	"fmt"
	"net/http"
)

func jsonOK(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(v)
}

func jsonCreated(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(v)
}

func jsonError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

// requireFields returns an error naming the first empty required field.
// Order is fixed so error messages are deterministic.
func requireFields(fields map[string]string) error {
	for _, name := range []string{"name", "email", "subject", "message", "resume_link"} {
		if v, ok := fields[name]; ok && v == "" {
			return fmt.Errorf("%s is required", name)
		}
	}
	return nil
}
