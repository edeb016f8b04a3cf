// Package api implements the HTTP transport for the Vault client: a pooled
// HTTP(S) client that issues token-authenticated GET requests and returns
// the raw status code and body to the caller for classification.
package api
