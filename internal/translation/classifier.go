package translation

import "net/http"

// StatusQuotaExceeded is the provider status for an exhausted character quota
const StatusQuotaExceeded = 456

// Severity tells how loudly a provider status should be logged
type Severity int

const (
	SeverityNone Severity = iota
	SeverityWarning
	SeverityCritical
)

func (s Severity) String() string {
	switch s {
	case SeverityWarning:
		return "warning"
	case SeverityCritical:
		return "critical"
	default:
		return "none"
	}
}

// Classification is the meaning of a provider HTTP status
type Classification struct {
	StatusCode int
	Success    bool
	Severity   Severity
	Message    string
}

// Classify maps a provider HTTP status to its meaning.
// It only selects log level and message; it never changes what translate returns.
func Classify(statusCode int) Classification {
	c := Classification{StatusCode: statusCode}
	switch statusCode {
	case http.StatusOK:
		c.Success = true
		c.Message = "translation succeeded"
	case http.StatusCreated:
		c.Success = true
		c.Message = "glossary created"
	case http.StatusNoContent:
		c.Success = true
		c.Message = "glossary deleted"
	case http.StatusForbidden:
		c.Severity = SeverityCritical
		c.Message = "provider credentials are either wrong, or they have no access to the requested API"
	case http.StatusTooManyRequests:
		c.Severity = SeverityWarning
		c.Message = "too many requests sent to the provider"
	case StatusQuotaExceeded:
		c.Severity = SeverityWarning
		c.Message = "provider character quota reached; upgrade the plan or wait until the quota is renewed"
	case http.StatusBadRequest:
		c.Severity = SeverityWarning
		c.Message = "provider request was not well-formed; check the source and the target language in particular"
	default:
		c.Severity = SeverityWarning
		c.Message = "unexpected status from provider"
	}
	return c
}
