// Package dataurl builds and parses base64 data URLs.
package dataurl

import (
	"encoding/base64"
	"errors"
	"strings"
)

const scheme = "data:"

// Encode returns a data URL embedding data as base64 under the given mime
// type, e.g. "data:image/png;base64,iVBOR...".
func Encode(mime string, data []byte) string {
	var b strings.Builder
	b.Grow(len(scheme) + len(mime) + len(";base64,") + base64.StdEncoding.EncodedLen(len(data)))
	b.WriteString(scheme)
	b.WriteString(mime)
	b.WriteString(";base64,")
	b.WriteString(base64.StdEncoding.EncodeToString(data))
	return b.String()
}

// Errors.
var (
	ErrNotDataURL = errors.New("dataurl: missing data: scheme")
	ErrBadFormat  = errors.New("dataurl: malformed data URL")
)

// Decode splits a base64 data URL into its mime type and payload.
func Decode(s string) (mime string, data []byte, err error) {
	if !strings.HasPrefix(s, scheme) {
		return "", nil, ErrNotDataURL
	}
	rest := s[len(scheme):]
	meta, payload, ok := strings.Cut(rest, ",")
	if !ok {
		return "", nil, ErrBadFormat
	}
	mime, enc, ok := strings.Cut(meta, ";")
	if !ok || enc != "base64" {
		return "", nil, ErrBadFormat
	}
	data, err = base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, err
	}
	return mime, data, nil
}
