package util

import (
	"fmt"
	"mime"
	"net/http"

	"github.com/indieinfra/imagebin/server/resp"
)

// RequireMediaContentType ensures the request declares multipart/form-data
// before any body parsing happens. A violation is written to the client.
func RequireMediaContentType(w http.ResponseWriter, r *http.Request) bool {
	ct := r.Header.Get("Content-Type")
	if ct == "" {
		resp.WriteUnsupportedMediaType(w, "Content-Type must be specified")
		return false
	}

	mediaType, _, err := mime.ParseMediaType(ct)
	if err != nil {
		resp.WriteUnsupportedMediaType(w, fmt.Errorf("Invalid Content-Type: %w", err).Error())
		return false
	}

	if mediaType != "multipart/form-data" {
		resp.WriteUnsupportedMediaType(w, "Invalid Content-Type: only multipart/form-data allowed")
		return false
	}

	return true
}
