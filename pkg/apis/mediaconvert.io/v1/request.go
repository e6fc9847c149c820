package v1

import (
	"maps"
)

// RequestBase is embedded in every request. It carries transport details that are not part
// of the payload and take no part in equality, hashing or printing.
// +mediaconvert:skip
type RequestBase struct {
	customHeaders map[string]string
}

// PutCustomHeader records an HTTP header to send along with the request. A later call with
// the same key replaces the value.
func (r *RequestBase) PutCustomHeader(key, value string) {
	if r.customHeaders == nil {
		r.customHeaders = make(map[string]string)
	}
	r.customHeaders[key] = value
}

// CustomHeaders returns a copy of the headers added with PutCustomHeader.
func (r *RequestBase) CustomHeaders() map[string]string {
	return maps.Clone(r.customHeaders)
}

// ResponseMetadata is embedded in every result.
// +mediaconvert:skip
type ResponseMetadata struct {
	RequestID  string
	StatusCode int
}
