package common

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/indieinfra/imagebin/server/resp"
	"github.com/indieinfra/imagebin/server/util"
	"github.com/indieinfra/imagebin/service"
	"github.com/indieinfra/imagebin/storage/metadata"
)

// LogAndWriteError logs an error with request context and maps known conditions to client responses.
func LogAndWriteError(w http.ResponseWriter, r *http.Request, op string, err error) {
	rl := util.FromContext(r.Context())
	if rl == nil {
		rl = util.WithRequest(log.Default(), r)
	}
	rl.Errorf("%s failed: %v", op, err)

	// Map known errors to user-friendly responses.
	switch {
	case errors.Is(err, metadata.ErrNotFound):
		resp.WriteNotFound(w, "Image not found")
	case errors.Is(err, service.ErrInvalidInput):
		resp.WriteBadRequest(w, err.Error())
	default:
		resp.WriteInternalServerError(w, fmt.Sprintf("Error %s", op))
	}
}
