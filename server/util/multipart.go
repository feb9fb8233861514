package util

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/indieinfra/imagebin/server/resp"
)

// FormFile is one uploaded file read fully into memory.
type FormFile struct {
	Filename    string
	ContentType string
	Data        []byte
}

// ReadFormFiles parses the request as multipart form data and reads every
// file under the given field, preserving input order. The request body is
// capped at maxPayload bytes. Parse failures are written to the client and
// reported through the bool return.
func ReadFormFiles(w http.ResponseWriter, r *http.Request, field string, maxMultipartMem, maxPayload int64) ([]FormFile, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, maxPayload)

	if err := r.ParseMultipartForm(maxMultipartMem); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			resp.WriteBadRequest(w, fmt.Sprintf("Request exceeds the %d byte limit", maxBytesErr.Limit))
			return nil, false
		}

		resp.WriteBadRequest(w, fmt.Sprintf("Invalid multipart request: %v", err))
		return nil, false
	}

	headers := r.MultipartForm.File[field]

	files := make([]FormFile, 0, len(headers))
	for _, fh := range headers {
		f, err := fh.Open()
		if err != nil {
			resp.WriteBadRequest(w, fmt.Sprintf("Could not open uploaded file %q", fh.Filename))
			return nil, false
		}

		data, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			resp.WriteBadRequest(w, fmt.Sprintf("Could not read uploaded file %q", fh.Filename))
			return nil, false
		}

		files = append(files, FormFile{
			Filename:    fh.Filename,
			ContentType: fh.Header.Get("Content-Type"),
			Data:        data,
		})
	}

	return files, true
}
