// Package coult provides a small client for retrieving secrets from a
// HashiCorp Vault compatible secret store over HTTP(S).
//
// The client is read-only: it supports health checks and secret retrieval
// from the v1 and v2 KV engines, authenticated with a static token sent in
// the X-Vault-Token header. Connection parameters come from explicit builder
// calls, with fallback to the VAULT_* environment variables and finally to
// local-dev defaults (127.0.0.1:8200 over plain HTTP).
//
// Basic usage:
//
//	type DatabaseSecret struct {
//	    Username string `json:"username"`
//	    Password string `json:"password"`
//	}
//
//	client, err := coult.NewBuilder().
//	    Address("vault.internal").
//	    Token(os.Getenv("VAULT_TOKEN")).
//	    SecretPath("secret/data/database").
//	    HTTPS().
//	    Build()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	secret, err := coult.GetSecretV2[DatabaseSecret](ctx, client)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(secret.Username)
//
// All operations are idempotent GET requests and are safe to call
// concurrently on a single client; requests share one pooled HTTP transport.
package coult
