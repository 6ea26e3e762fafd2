package translation

import "fmt"

// TransportError reports that the provider could not be reached: connection failures,
// timeouts and cancelled contexts. It is fatal for every operation, translate included.
type TransportError struct {
	Operation string
	Err       error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("provider %s request failed: %v", e.Operation, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// APIError reports a non-success HTTP status from an operation without a degraded fallback
// (glossary listing, creation, deletion and the supported language pairs query).
type APIError struct {
	StatusCode int
	Reason     string
	Detail     string
}

func (e *APIError) Error() string {
	msg := fmt.Sprintf("provider API error, HTTP status %d (%s)", e.StatusCode, e.Reason)
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	return msg
}

// MalformedKeyError reports a glossary key without the pair separator
type MalformedKeyError struct {
	Key string
}

func (e *MalformedKeyError) Error() string {
	return fmt.Sprintf("malformed glossary key %q: missing separator %q", e.Key, GlossaryKeySeparator)
}

// IntegrityError reports a provider response whose translation count differs from the
// number of texts sent.
type IntegrityError struct {
	Expected int
	Actual   int
}

func (e *IntegrityError) Error() string {
	return fmt.Sprintf("provider returned %d translations for %d texts", e.Actual, e.Expected)
}
