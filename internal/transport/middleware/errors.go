package middleware

import (
	"encoding/json"
	"net/http"
)

// writeError rejects a request with the same {data, error} envelope the REST
// handlers use.
func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(struct {
		Data  any    `json:"data"`
		Error string `json:"error"`
	}{Error: msg})
}
