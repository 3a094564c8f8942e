package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"legalyze/internal/util"
)

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeErr(w http.ResponseWriter, code int, err error) {
	apiErr := toAPIError(code, err)
	writeJSON(w, code, map[string]any{
		"error": map[string]any{
			"code":    apiErr.Code,
			"message": apiErr.Message,
		},
	})
}

type apiError struct {
	Code    string
	Message string
}

func toAPIError(status int, err error) apiError {
	msg := "Request failed."
	code := "LZ-API-4000"
	if err != nil {
		msg = err.Error()
	}
	switch {
	case errors.Is(err, util.ErrStorage):
		code = "LZ-API-5001"
		msg = "Storage is unavailable. Please retry."
	case status >= 500:
		code = "LZ-API-5000"
	}
	return apiError{Code: code, Message: msg}
}

// extractionDisplayText turns a typed extraction error into the string the
// chat surface shows.
func extractionDisplayText(err error) string {
	switch {
	case errors.Is(err, util.ErrNoExtractableText):
		return "No readable text found in the document."
	case errors.Is(err, util.ErrExtraction):
		return fmt.Sprintf("Error reading the provided content: %v", err)
	default:
		return fmt.Sprintf("Error processing attachment: %v", err)
	}
}

// modelDisplayText is the user-facing stand-in for a failed model dispatch.
func modelDisplayText(err error) string {
	return fmt.Sprintf("Sorry, I'm having technical issues. Please try again. Error: %v", err)
}

func withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		w.Header().Set("Access-Control-Allow-Methods", "GET,POST,OPTIONS")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.logger.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Dur("elapsed", time.Since(start)).
			Msg("request")
	})
}
