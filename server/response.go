package server

import (
	"net/http"

	"github.com/bytedance/sonic"

	"github.com/promptlens/promptlens/logging"
)

// writeJSON writes a JSON response.
func writeJSON(w http.ResponseWriter, status int, v any) {
	payload, err := sonic.Marshal(v)
	if err != nil {
		logging.LogErrorf("failed to serialize response: %v", err)
		http.Error(w, `{"error":"internal server error"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(payload)
}

// writeError writes an error response.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// writeView writes an aggregation view, rendering the no-data case as an
// empty object rather than null or an error.
func writeView(w http.ResponseWriter, view any, empty bool) {
	if empty {
		writeJSON(w, http.StatusOK, map[string]any{})
		return
	}
	writeJSON(w, http.StatusOK, view)
}
