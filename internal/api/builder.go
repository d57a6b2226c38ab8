package api

import (
	"bytes"
	"mime/multipart"
	"strings"

	"github.com/stripekit/client-go/form"
)

// JoinURL appends the encoded query to base+path. A path that already
// carries a query string gets the parameters appended with "&".
func JoinURL(base, path, query string) string {
	u := base + path
	if query == "" {
		return u
	}
	if strings.Contains(path, "?") {
		return u + "&" + query
	}
	return u + "?" + query
}

// BuildMultipart renders params plus a single file part as a
// multipart/form-data body. The returned content type carries the
// generated boundary.
func BuildMultipart(params *form.Values, fileField, fileName string, content []byte) (body []byte, contentType string, err error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	for _, p := range params.Flatten() {
		if err := w.WriteField(p.Key, p.Value); err != nil {
			return nil, "", err
		}
	}

	part, err := w.CreateFormFile(fileField, fileName)
	if err != nil {
		return nil, "", err
	}
	if _, err := part.Write(content); err != nil {
		return nil, "", err
	}

	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return buf.Bytes(), w.FormDataContentType(), nil
}
