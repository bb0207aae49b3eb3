package hedgegate

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
)

// maxBodyBytes caps how much of a request body the middleware reads.
const maxBodyBytes = 1 << 20

// Middleware returns an http.Handler that classifies request bodies before
// passing to the next handler. Rejected requests receive a 422 with a JSON
// body naming the signal; the body is restored for the next handler on
// acceptance.
func (c *Client) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Body == nil || r.ContentLength == 0 {
			next.ServeHTTP(w, r)
			return
		}

		body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
		r.Body.Close()
		if err != nil {
			http.Error(w, "failed to read request body", http.StatusBadRequest)
			return
		}

		result, err := c.Classify(string(body))
		if err != nil {
			http.Error(w, err.Error(), http.StatusRequestEntityTooLarge)
			return
		}

		if !result.Accepted {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnprocessableEntity)
			json.NewEncoder(w).Encode(map[string]any{
				"blocked":       true,
				"signal":        string(result.Signal),
				"matched_token": result.MatchedToken,
				"score":         result.Score,
			})
			return
		}

		r.Body = io.NopCloser(bytes.NewReader(body))
		next.ServeHTTP(w, r)
	})
}
