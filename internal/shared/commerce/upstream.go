// Package commerce holds cross-domain types for the upstream commerce API.
package commerce

import "fmt"

// UpstreamError describes a non-2xx response from the commerce API. It carries
// the upstream status code and the raw response body so transport layers can
// surface them to callers.
type UpstreamError struct {
	Status int
	Body   string
}

// Error implements the error interface.
func (e *UpstreamError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("commerce API returned status %d", e.Status)
	}
	return fmt.Sprintf("commerce API returned status %d: %s", e.Status, e.Body)
}
