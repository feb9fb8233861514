package image

import (
	"net/http"

	"github.com/indieinfra/imagebin/server/handler/common"
	"github.com/indieinfra/imagebin/server/resp"
	"github.com/indieinfra/imagebin/server/state"
)

// HandleDelete removes the remote media object and then the local record.
func HandleDelete(st *state.AppState) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		if id == "" {
			resp.WriteBadRequest(w, "Image id is required")
			return
		}

		if err := st.Gallery.DeleteByID(r.Context(), id); err != nil {
			common.LogAndWriteError(w, r, "deleting image", err)
			return
		}

		resp.WriteOK(w, resp.Envelope{
			Success: true,
			Message: "Image deleted successfully",
		})
	}
}
