// Package formatter turns an inbound message body and its attachments into the
// text written in a chat session.
package formatter

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"signald-groups/domain"
	"signald-groups/domain/mimetypes"
	"signald-groups/errors"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

type Formatter struct {
	log *slog.Logger
}

func New(log *slog.Logger) *Formatter {
	return &Formatter{log: log}
}

// Format reports hasImages when at least one attachment is an image.
// Attachments without a content type are sniffed from the file signald stored,
// falling back to application/octet-stream when the file cannot be read.
func (f *Formatter) Format(message domain.GroupMessage) (string, bool, error) {
	body := strings.TrimSpace(message.Body)
	if body == "" && len(message.Attachments) == 0 {
		return "", false, errors.ErrEmptyMessage
	}

	var lines []string
	if body != "" {
		lines = append(lines, body)
	}
	hasImages := false
	for _, attachment := range message.Attachments {
		contentType := f.contentType(attachment)
		if mimetypes.IsImage(contentType) {
			hasImages = true
		}
		lines = append(lines, fmt.Sprintf("[%s] %s", contentType, location(attachment)))
	}
	return strings.Join(lines, "\n"), hasImages, nil
}

func (f *Formatter) contentType(attachment domain.Attachment) string {
	if attachment.ContentType != "" {
		return attachment.ContentType
	}
	if attachment.StoredFilename == "" {
		return string(mimetypes.OctetStream)
	}
	mime, err := mimetype.DetectFile(attachment.StoredFilename)
	if err != nil {
		f.log.Debug("Attachment type unknown", "file", attachment.StoredFilename, "error", err)
		return string(mimetypes.OctetStream)
	}
	detected := string(mimetypes.Normalize(mime.String()))
	f.log.Debug("Attachment type detected", "file", attachment.StoredFilename, "mime", detected)
	return detected
}

func location(attachment domain.Attachment) string {
	name := attachment.CustomFilename
	if name == "" && attachment.StoredFilename != "" {
		name = filepath.Base(attachment.StoredFilename)
	}
	if attachment.StoredFilename == "" {
		return name
	}
	return fmt.Sprintf("%s (file://%s)", name, attachment.StoredFilename)
}
