// Package binder builds formval.Data records from incoming HTTP requests,
// covering the host side of the validation input contract: form controls
// become scalar values and uploaded files become formval.File metadata.
package binder

import (
	"mime"
	"mime/multipart"
	"net/http"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/dmitrymomot/formval"
)

// DefaultMaxMemory is the maximum memory used for parsing multipart
// forms before spilling to disk (10MB).
const DefaultMaxMemory = 10 << 20

// FromRequest extracts a flat Data record from the request. Multipart
// bodies contribute both value fields and file metadata; urlencoded
// bodies and plain requests contribute form values and query parameters.
// When a field carries several values only the first is kept.
func FromRequest(r *http.Request) (formval.Data, error) {
	contentType := r.Header.Get("Content-Type")
	if strings.HasPrefix(contentType, "multipart/form-data") {
		return fromMultipart(r)
	}

	if err := r.ParseForm(); err != nil {
		return nil, err
	}
	return FromValues(r.Form), nil
}

// FromValues builds a Data record from url.Values, keeping the first
// value of each field.
func FromValues(values url.Values) formval.Data {
	data := make(formval.Data, len(values))
	for field, vs := range values {
		if len(vs) > 0 {
			data[field] = vs[0]
		}
	}
	return data
}

// FileFromHeader maps a multipart file header to formval.File. The MIME
// type comes from the part's Content-Type header, falling back to a
// lookup by filename extension.
func FileFromHeader(header *multipart.FileHeader) formval.File {
	return formval.File{
		Name: header.Filename,
		Size: header.Size,
		Type: contentType(header),
	}
}

func fromMultipart(r *http.Request) (formval.Data, error) {
	if r.MultipartForm == nil {
		if err := r.ParseMultipartForm(DefaultMaxMemory); err != nil {
			return nil, err
		}
	}

	data := make(formval.Data, len(r.MultipartForm.Value)+len(r.MultipartForm.File))
	for field, vs := range r.MultipartForm.Value {
		if len(vs) > 0 {
			data[field] = vs[0]
		}
	}
	for field, headers := range r.MultipartForm.File {
		if len(headers) > 0 {
			data[field] = FileFromHeader(headers[0])
		}
	}
	return data, nil
}

func contentType(header *multipart.FileHeader) string {
	if ct := header.Header.Get("Content-Type"); ct != "" {
		mediaType, _, err := mime.ParseMediaType(ct)
		if err == nil {
			return mediaType
		}
	}
	return mime.TypeByExtension(filepath.Ext(header.Filename))
}
