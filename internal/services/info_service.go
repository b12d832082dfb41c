// filepath: internal/services/info_service.go
package services

import (
	"time"

	"github.com/shinohara-jil/recipe-app/internal/config"
	"github.com/shinohara-jil/recipe-app/internal/models"
)

var _ InfoService = (*infoService)(nil)

type infoService struct {
	Version   string
	StartTime time.Time
	Cfg       *config.Config
}

// NewInfoService creates a new InfoService.
func NewInfoService(version string, startTime time.Time, cfg *config.Config) *infoService {
	return &infoService{
		Version:   version,
		StartTime: startTime,
		Cfg:       cfg,
	}
}

// GetInfo retrieves the application information.
func (s *infoService) GetInfo() models.Info {
	return models.Info{
		ServiceName:        "RecipeHub API",
		Version:            s.Version,
		UptimeSince:        s.StartTime,
		DatabaseConfigured: s.Cfg.DatabaseConfigured(),
		StorageBackend:     s.Cfg.Storage.Backend,
		KnownProviders:     models.KnownProviders,
	}
}
