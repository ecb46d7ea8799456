package provider

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors. Typed errors below unwrap to these so callers can use
// errors.Is without caring about the concrete type.
var (
	ErrMalformedReference = errors.New("malformed reference")
	ErrUpstreamFetch      = errors.New("upstream fetch failed")
	ErrInvalidPayload     = errors.New("invalid upstream payload")
	ErrMalformedChain     = errors.New("malformed evolution chain")
)

// MalformedReferenceError reports a reference URL that does not end in
// "/<integer>/". It signals an upstream schema change and is never retried.
type MalformedReferenceError struct {
	URL string
}

func (e *MalformedReferenceError) Error() string {
	return fmt.Sprintf("malformed reference %q: expected trailing /<integer>/", e.URL)
}

func (e *MalformedReferenceError) Unwrap() error { return ErrMalformedReference }

// UpstreamFetchError reports a failed upstream call: network error, non-2xx
// status or an undecodable body. StatusCode is 0 when no response arrived.
type UpstreamFetchError struct {
	Path       string
	StatusCode int
	Err        error
}

func (e *UpstreamFetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("upstream %s returned %d: %v", e.Path, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("upstream %s: %v", e.Path, e.Err)
}

// Unwrap exposes both the sentinel and the underlying cause.
func (e *UpstreamFetchError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrUpstreamFetch}
	}
	return []error{ErrUpstreamFetch, e.Err}
}

// NotFound reports whether upstream answered 404.
func (e *UpstreamFetchError) NotFound() bool { return e.StatusCode == 404 }

// InvalidPayloadError lists required upstream fields that were missing or
// out of range.
type InvalidPayloadError struct {
	Resource string
	Fields   []string
}

func (e *InvalidPayloadError) Error() string {
	return fmt.Sprintf("invalid %s payload: %s", e.Resource, strings.Join(e.Fields, ", "))
}

func (e *InvalidPayloadError) Unwrap() error { return ErrInvalidPayload }

// MalformedChainError reports an evolution chain in which a species occurs
// more than once.
type MalformedChainError struct {
	ChainID   int
	SpeciesID int
}

func (e *MalformedChainError) Error() string {
	return fmt.Sprintf("evolution chain %d: species %d appears more than once", e.ChainID, e.SpeciesID)
}

func (e *MalformedChainError) Unwrap() error { return ErrMalformedChain }

// IsDataIntegrity reports whether err means upstream sent data this service
// cannot interpret, as opposed to upstream being unreachable.
func IsDataIntegrity(err error) bool {
	return errors.Is(err, ErrMalformedReference) ||
		errors.Is(err, ErrInvalidPayload) ||
		errors.Is(err, ErrMalformedChain)
}
