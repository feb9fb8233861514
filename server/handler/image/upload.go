package image

import (
	"net/http"

	"github.com/indieinfra/imagebin/server/handler/common"
	"github.com/indieinfra/imagebin/server/resp"
	"github.com/indieinfra/imagebin/server/state"
	"github.com/indieinfra/imagebin/server/util"
	"github.com/indieinfra/imagebin/service"
)

// HandleUploadSingle accepts one image under the multipart field "image".
func HandleUploadSingle(st *state.AppState) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !util.RequireMediaContentType(w, r) {
			return
		}

		limits := st.Cfg.Server.Limits
		files, ok := util.ReadFormFiles(w, r, "image", limits.MaxMultipartMem, limits.MaxPayloadSize)
		if !ok {
			return
		}

		if len(files) == 0 {
			resp.WriteBadRequest(w, "No image file provided")
			return
		}

		record, err := st.Uploader.UploadOne(r.Context(), files[0].Data, files[0].ContentType)
		if err != nil {
			common.LogAndWriteError(w, r, "uploading image", err)
			return
		}

		resp.WriteOK(w, resp.Envelope{
			Success: true,
			Message: "Image uploaded successfully",
			Image:   record,
		})
	}
}

// HandleUploadMultiple accepts a batch of images under the multipart field
// "images"; the files are processed strictly in input order.
func HandleUploadMultiple(st *state.AppState) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !util.RequireMediaContentType(w, r) {
			return
		}

		limits := st.Cfg.Server.Limits
		files, ok := util.ReadFormFiles(w, r, "images", limits.MaxMultipartMem, limits.MaxPayloadSize)
		if !ok {
			return
		}

		if len(files) == 0 {
			resp.WriteBadRequest(w, "No image files provided")
			return
		}

		uploads := make([]service.File, len(files))
		for i, f := range files {
			uploads[i] = service.File{Data: f.Data, ContentType: f.ContentType}
		}

		records, err := st.Uploader.UploadMany(r.Context(), uploads)
		if err != nil {
			common.LogAndWriteError(w, r, "uploading images", err)
			return
		}

		resp.WriteOK(w, resp.Envelope{
			Success: true,
			Message: "Images uploaded successfully",
			Images:  records,
		})
	}
}
