package http

import (
	"encoding/json"
	"net/http"
)

func writeJSON(w http.ResponseWriter, data any, statusCode int) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	w.Write(jsonData)
}
