package storage

import (
	"encoding/base64"
	"errors"
	"net/url"
	"strings"
)

// ErrInvalidDataURI is returned for strings that are not RFC 2397 data URIs.
var ErrInvalidDataURI = errors.New("storage: invalid data uri")

// IsDataURI reports whether s looks like a data: URI.
func IsDataURI(s string) bool {
	return strings.HasPrefix(s, "data:")
}

// DecodeDataURI parses "data:[<mediatype>][;base64],<data>".
func DecodeDataURI(s string) (contentType string, data []byte, err error) {
	if !IsDataURI(s) {
		return "", nil, ErrInvalidDataURI
	}
	meta, payload, ok := strings.Cut(strings.TrimPrefix(s, "data:"), ",")
	if !ok {
		return "", nil, ErrInvalidDataURI
	}

	isBase64 := false
	if strings.HasSuffix(meta, ";base64") {
		isBase64 = true
		meta = strings.TrimSuffix(meta, ";base64")
	}
	contentType = strings.SplitN(meta, ";", 2)[0]
	if contentType == "" {
		contentType = "text/plain"
	}

	if isBase64 {
		data, err = base64.StdEncoding.DecodeString(payload)
		if err != nil {
			return "", nil, ErrInvalidDataURI
		}
		return contentType, data, nil
	}
	unescaped, err := url.PathUnescape(payload)
	if err != nil {
		return "", nil, ErrInvalidDataURI
	}
	return contentType, []byte(unescaped), nil
}
