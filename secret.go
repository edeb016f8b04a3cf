package coult

import (
	"bytes"
	"context"
	"encoding/json"
)

// secretEnvelopeV2 is the response shape of the v2 KV engine, which wraps
// the secret map in a nested data.data envelope carrying version metadata.
type secretEnvelopeV2 struct {
	Data struct {
		Data json.RawMessage `json:"data"`
	} `json:"data"`
}

// GetSecret retrieves the configured secret path from a v1 KV engine and
// decodes the response body directly into T. Any non-200 status is an
// error; a body that does not match T's shape is a *DecodeError.
func GetSecret[T any](ctx context.Context, c *Client) (T, error) {
	var secret T

	body, err := c.secretBody(ctx)
	if err != nil {
		return secret, err
	}

	if err := decodeStrict(body, &secret); err != nil {
		return secret, &DecodeError{Err: err}
	}
	return secret, nil
}

// GetSecretV2 retrieves the configured secret path from a v2 KV engine:
// the body's nested data.data value is extracted and decoded into T. A body
// without the data.data envelope is a *DecodeError wrapping
// ErrMissingSecretData.
func GetSecretV2[T any](ctx context.Context, c *Client) (T, error) {
	var secret T

	body, err := c.secretBody(ctx)
	if err != nil {
		return secret, err
	}

	var envelope secretEnvelopeV2
	if err := json.Unmarshal(body, &envelope); err != nil {
		return secret, &DecodeError{Err: err}
	}
	inner := envelope.Data.Data
	if len(inner) == 0 || bytes.Equal(inner, []byte("null")) {
		return secret, &DecodeError{Err: ErrMissingSecretData}
	}

	if err := decodeStrict(inner, &secret); err != nil {
		return secret, &DecodeError{Err: err}
	}
	return secret, nil
}

// decodeStrict decodes JSON into target, rejecting fields the target does
// not declare. This is what makes a v2-shaped body fail loudly when fed to
// the v1 call instead of zero-filling the target struct.
func decodeStrict(data []byte, target any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	return dec.Decode(target)
}
