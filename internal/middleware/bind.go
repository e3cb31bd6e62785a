package middleware

import (
	"fmt"
	"io"
	"net/http"

	"fireReport/pkg/e"
	"fireReport/pkg/validator"

	"github.com/goccy/go-json"
)

// MaxBodyBytes caps request bodies read by BindJSON and ReadBody.
const MaxBodyBytes = 1 << 20

// BindJSON decodes the request body into dst and runs struct validation.
// Both failures wrap e.ErrInvalidInput.
func BindJSON(r *http.Request, dst any) error {
	body, err := ReadBody(r)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, dst); err != nil {
		return fmt.Errorf("invalid JSON: %v: %w", err, e.ErrInvalidInput)
	}
	if err := validator.ValidateStruct(dst); err != nil {
		return fmt.Errorf("%v: %w", err, e.ErrInvalidInput)
	}
	return nil
}

// ReadBody returns the raw body, refusing anything over MaxBodyBytes.
func ReadBody(r *http.Request) ([]byte, error) {
	body, err := io.ReadAll(io.LimitReader(r.Body, MaxBodyBytes+1))
	if err != nil {
		return nil, fmt.Errorf("read body: %v: %w", err, e.ErrInvalidInput)
	}
	if len(body) > MaxBodyBytes {
		return nil, fmt.Errorf("body exceeds %d bytes: %w", MaxBodyBytes, e.ErrInvalidInput)
	}
	return body, nil
}
