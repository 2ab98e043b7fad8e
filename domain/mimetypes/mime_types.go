// Package mimetypes sniffs the media type of the documents the bot loads.
package mimetypes

import (
	"mime"

	"github.com/gabriel-vasile/mimetype"
	"github.com/samber/lo"
)

type MIME string

const (
	Unknown         MIME = "unknown"
	TextPlain       MIME = "text/plain"
	ApplicationJSON MIME = "application/json"
)

// Detect returns the media type of data without its parameters.
func Detect(data []byte) MIME {
	return Parse(mimetype.Detect(data).String())
}

// Parse strips the parameters of a media type string, e.g. the charset.
func Parse(mediaType string) MIME {
	mt, _, err := mime.ParseMediaType(mediaType)
	if err != nil {
		return Unknown
	}
	return MIME(mt)
}

// Is reports whether m is one of the accepted types.
func (m MIME) Is(accepted ...MIME) bool {
	return m != Unknown && lo.Contains(accepted, m)
}
