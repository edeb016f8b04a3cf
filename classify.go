package coult

import (
	"encoding/json"
	"net/http"
	"strings"
)

// classifyStatus maps a secret-read response to an error. 200 is the only
// success status; everything else becomes a *StatusError keyed on the status
// code alone. The body is used to enrich the message, never to reclassify.
func classifyStatus(statusCode int, body []byte) error {
	if statusCode == http.StatusOK {
		return nil
	}
	return &StatusError{
		StatusCode: statusCode,
		Message:    vaultErrorMessage(body),
	}
}

// vaultErrorMessage extracts the error text from a Vault error body, which
// has the shape {"errors": ["...", ...]}. Falls back to the raw body text.
func vaultErrorMessage(body []byte) string {
	var errResp struct {
		Errors []string `json:"errors"`
	}
	if err := json.Unmarshal(body, &errResp); err == nil && len(errResp.Errors) > 0 {
		return strings.Join(errResp.Errors, "; ")
	}
	return strings.TrimSpace(string(body))
}
