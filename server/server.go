package server

import (
	"fmt"
	"net/http"

	"github.com/indieinfra/imagebin/config"
	"github.com/indieinfra/imagebin/server/handler/image"
	"github.com/indieinfra/imagebin/server/middleware"
	"github.com/indieinfra/imagebin/server/resp"
	"github.com/indieinfra/imagebin/server/state"
	"github.com/indieinfra/imagebin/server/util"
	"github.com/indieinfra/imagebin/service"
	"github.com/indieinfra/imagebin/storage/media"
	mediafactory "github.com/indieinfra/imagebin/storage/media/factory"
	"github.com/indieinfra/imagebin/storage/metadata"
	metadatafactory "github.com/indieinfra/imagebin/storage/metadata/factory"
	"github.com/indieinfra/imagebin/web"
)

// NewRouter mounts the image API under /api/image and the browser client
// at the root.
func NewRouter(st *state.AppState) http.Handler {
	mux := http.NewServeMux()
	mux.Handle("POST /api/image/upload-single", image.HandleUploadSingle(st))
	mux.Handle("POST /api/image/upload-multiple", image.HandleUploadMultiple(st))
	mux.Handle("GET /api/image", image.HandleList(st))
	mux.Handle("DELETE /api/image/{id}", image.HandleDelete(st))
	mux.HandleFunc("GET /healthz", handleHealthz)
	mux.Handle("/", web.Handler())

	return middleware.RequestLog(st.Logger, middleware.Cors(mux))
}

func handleHealthz(w http.ResponseWriter, r *http.Request) {
	resp.WriteOK(w, resp.Envelope{Success: true, Message: "ok"})
}

func initializeMetadataStore(cfg *config.Metadata) (metadata.Store, error) {
	store, err := metadatafactory.Create(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize metadata store: %w", err)
	}

	return store, nil
}

func initializeMediaStore(cfg *config.Media) (media.Store, error) {
	store, err := mediafactory.Create(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize media store: %w", err)
	}

	return store, nil
}

// StartServer builds the stores and services from config and serves HTTP
// until the listener fails.
func StartServer(cfg *config.Config, logger util.Logger) error {
	metadataStore, err := initializeMetadataStore(&cfg.Metadata)
	if err != nil {
		return err
	}

	mediaStore, err := initializeMediaStore(&cfg.Media)
	if err != nil {
		return err
	}

	limits := service.Limits{
		MaxFileSize:  cfg.Server.Limits.MaxFileSize,
		MaxFileCount: cfg.Server.Limits.MaxFileCount,
	}

	st := &state.AppState{
		Cfg:      cfg,
		Uploader: service.NewUploader(mediaStore, metadataStore, limits),
		Gallery:  service.NewGallery(mediaStore, metadataStore),
		Logger:   logger,
	}

	bindAddress := fmt.Sprintf("%v:%v", cfg.Server.Address, cfg.Server.Port)
	logger.Printf("serving http requests on %q", bindAddress)

	return http.ListenAndServe(bindAddress, NewRouter(st))
}
