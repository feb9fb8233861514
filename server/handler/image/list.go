package image

import (
	"net/http"

	"github.com/indieinfra/imagebin/server/handler/common"
	"github.com/indieinfra/imagebin/server/resp"
	"github.com/indieinfra/imagebin/server/state"
)

// HandleList returns every stored image, most recently uploaded first. An
// empty gallery is a successful response with an empty array.
func HandleList(st *state.AppState) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		records, err := st.Gallery.ListAll(r.Context())
		if err != nil {
			common.LogAndWriteError(w, r, "fetching images", err)
			return
		}

		resp.WriteOK(w, resp.Envelope{
			Success: true,
			Images:  records,
		})
	}
}
