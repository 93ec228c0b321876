package retry

import (
	"regexp"
	"strings"
)

// Retryability predicates classify errors by name and message substrings.
// They cover the common transient-failure classes; compose them with Any
// when an operation can fail in more than one transient way.

var serverErrorPattern = regexp.MustCompile(`HTTP 5\d\d`)

// AllErrors treats every non-nil error as retryable. This is the default.
func AllErrors(err error) bool {
	return err != nil
}

// Never treats no error as retryable: the operation runs exactly once.
func Never(err error) bool {
	return false
}

// NetworkErrors matches common transient network failure phrasing.
func NetworkErrors(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	for _, marker := range []string{
		"connection refused",
		"connection reset",
		"broken pipe",
		"no such host",
		"network is unreachable",
		"networkerror",
		"econnrefused",
		"econnreset",
	} {
		if strings.Contains(msg, marker) {
			return true
		}
	}
	return false
}

// ServerErrors matches HTTP 5xx server failures by message.
func ServerErrors(err error) bool {
	if err == nil {
		return false
	}
	return serverErrorPattern.MatchString(err.Error())
}

// RateLimited matches 429 and rate-limit phrasing.
func RateLimited(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "429") ||
		strings.Contains(msg, "rate limit") ||
		strings.Contains(msg, "too many requests")
}

// Timeouts matches timeout and deadline phrasing.
func Timeouts(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "timeout") ||
		strings.Contains(msg, "timed out") ||
		strings.Contains(msg, "deadline exceeded")
}

// Any combines predicates: the error is retryable if any predicate accepts
// it.
func Any(predicates ...func(error) bool) func(error) bool {
	return func(err error) bool {
		for _, p := range predicates {
			if p(err) {
				return true
			}
		}
		return false
	}
}
