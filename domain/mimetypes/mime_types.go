package mimetypes

import (
	"mime"
	"strings"
)

type MIME string

const (
	Unknown     MIME = "unknown"
	OctetStream MIME = "application/octet-stream"
	ImagePNG    MIME = "image/png"
	ImageJPEG   MIME = "image/jpeg"
	ImageGIF    MIME = "image/gif"
	ImageWebP   MIME = "image/webp"
)

// Normalize drops parameters such as charset and lowercases the media type.
// Unparsable values become Unknown.
func Normalize(detected string) MIME {
	mt, _, err := mime.ParseMediaType(detected)
	if err != nil {
		return Unknown
	}
	return MIME(mt)
}

func Matches(detected string, expected MIME) bool {
	return Normalize(detected) == expected
}

// IsImage tells whether the host should treat the attachment as an inline image.
func IsImage(detected string) bool {
	return strings.HasPrefix(string(Normalize(detected)), "image/")
}
