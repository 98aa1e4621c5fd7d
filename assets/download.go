package assets

import (
	"encoding/base64"
	"errors"
	"path"
	"strings"

	"github.com/gabriel-vasile/mimetype"

	"github.com/eringen/folio/logger"
)

// MIMEOctetStream is the content type used for generic file downloads.
const MIMEOctetStream = "application/octet-stream"

// DownloadLink is a data URI plus the name the browser should save it under.
type DownloadLink struct {
	Filename string
	MIMEType string
	URI      string
}

// EncodeDownload wraps data in a data URI. The result depends only on its
// inputs; an empty data slice still produces a valid link.
func EncodeDownload(data []byte, filename, mimeType string) DownloadLink {
	if mimeType == "" {
		mimeType = MIMEOctetStream
	}
	return DownloadLink{
		Filename: filename,
		MIMEType: mimeType,
		URI:      DataURI(mimeType, data),
	}
}

// Payload returns the base64 section of the link's URI.
func (l DownloadLink) Payload() string {
	_, payload, _ := strings.Cut(l.URI, ";base64,")
	return payload
}

// DataURI formats data as "data:<mime>;base64,<payload>".
func DataURI(mimeType string, data []byte) string {
	return "data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(data)
}

// DetectMIME sniffs the content type of data, without parameters.
func DetectMIME(data []byte) string {
	m := mimetype.Detect(data)
	typ, _, _ := strings.Cut(m.String(), ";")
	return typ
}

// LoadDownload resolves name and encodes it. It returns nil when the asset is
// absent or unreadable so the caller can render an alternate call-to-action;
// read failures are logged.
func LoadDownload(src Source, name, mimeType string, log *logger.Logger) *DownloadLink {
	data, err := src.Resolve(name)
	if err != nil {
		if !errors.Is(err, ErrAbsent) {
			log.Warn("download asset unreadable", "path", name, "error", err)
		}
		return nil
	}
	link := EncodeDownload(data, path.Base(name), mimeType)
	return &link
}
