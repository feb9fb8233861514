package state

import (
	"github.com/indieinfra/imagebin/config"
	"github.com/indieinfra/imagebin/server/util"
	"github.com/indieinfra/imagebin/service"
)

// AppState carries the configured collaborators into the HTTP handlers.
type AppState struct {
	Cfg      *config.Config
	Uploader *service.Uploader
	Gallery  *service.Gallery
	Logger   util.Logger
}
