package domain

import (
	"errors"
	"fmt"
)

// ErrEmptyPrompt indicates the request carried no utterance.
var ErrEmptyPrompt = errors.New("prompt cannot be empty")

// ErrNoCredentials indicates no usable API key could be resolved for the
// selected model family.
var ErrNoCredentials = errors.New("no usable credentials for the selected model")

// ErrConfigNotFound indicates a user or profile configuration record does
// not exist. Stores return it so the resolver can walk the fallback chain.
var ErrConfigNotFound = errors.New("configuration not found")

// ProviderError carries the upstream status and body of a failed provider
// call so the HTTP layer can surface it distinctly from internal failures.
type ProviderError struct {
	Family     ProviderFamily
	StatusCode int
	Body       string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("%s provider error (status %d): %s", e.Family, e.StatusCode, e.Body)
}
