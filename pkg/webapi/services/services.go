package services

import (
	"time"

	"github.com/zsoltkebel/relica/pkg/archive"
	"github.com/zsoltkebel/relica/pkg/artstore"
	"github.com/zsoltkebel/relica/pkg/kv"
	"github.com/zsoltkebel/relica/pkg/rlog"
	"github.com/zsoltkebel/relica/pkg/webapi/config"
)

type Services struct {
	Artifacts *ArtifactService

	cache kv.Store
}

func NewServices(cfg *config.EnvConfig, log *rlog.Logger) (*Services, error) {
	store, err := artstore.New(cfg.StorageRoot, cfg.PublicPrefix)
	if err != nil {
		return nil, err
	}

	var cache kv.Store
	if cfg.CacheEnabled() {
		cache, err = kv.NewValkeyStore(kv.ValkeyConfig{
			Addr:     cfg.CacheAddr,
			Password: cfg.CachePassword,
		})
		if err != nil {
			return nil, err
		}
	} else {
		cache = kv.NewMemoryStore()
	}

	var exporter *archive.Exporter
	if cfg.S3Enabled() {
		exporter, err = archive.NewExporter(archive.S3Config{
			Endpoint:  cfg.S3Endpoint,
			AccessKey: cfg.S3AccessKey,
			SecretKey: cfg.S3SecretKey,
			Bucket:    cfg.S3Bucket,
			Region:    cfg.S3Region,
			UseSSL:    cfg.S3UseSSL,
		})
		if err != nil {
			return nil, err
		}
	}

	artifacts := NewArtifactService(store, cache, time.Duration(cfg.CacheTTL)*time.Second, exporter, log)

	return &Services{
		Artifacts: artifacts,
		cache:     cache,
	}, nil
}

// Close releases backend connections held by the services.
func (s *Services) Close() error {
	if s.cache == nil {
		return nil
	}
	return s.cache.Close()
}
