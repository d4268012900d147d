package services

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/zsoltkebel/relica/pkg/archive"
	"github.com/zsoltkebel/relica/pkg/artstore"
	"github.com/zsoltkebel/relica/pkg/kv"
	"github.com/zsoltkebel/relica/pkg/rlog"
)

// ErrArchiveDisabled is returned when no S3 archive target is configured.
var ErrArchiveDisabled = errors.New("archive target not configured")

// listCacheKey holds the rendered preview collection. Every mutation drops
// it so the next listing re-reads the storage tree.
const listCacheKey = "artifacts:index"

// ArtifactService drives the artifact store for the HTTP layer and keeps
// the listing cache coherent with mutations.
type ArtifactService struct {
	store    *artstore.Store
	cache    kv.Store
	cacheTTL time.Duration
	exporter *archive.Exporter // nil when archiving is disabled
	log      *rlog.Logger
}

func NewArtifactService(store *artstore.Store, cache kv.Store, cacheTTL time.Duration, exporter *archive.Exporter, log *rlog.Logger) *ArtifactService {
	return &ArtifactService{
		store:    store,
		cache:    cache,
		cacheTTL: cacheTTL,
		exporter: exporter,
		log:      log,
	}
}

// Store exposes the underlying artifact store.
func (s *ArtifactService) Store() *artstore.Store {
	return s.store
}

// List returns all artifact previews, served from the cache when a fresh
// copy exists. Cache failures degrade to a direct read.
func (s *ArtifactService) List(ctx context.Context) []artstore.Preview {
	if cached, err := s.cache.Get(ctx, listCacheKey); err == nil {
		var previews []artstore.Preview
		if err := json.Unmarshal(cached, &previews); err == nil {
			return previews
		}
	}

	previews := s.store.List()
	if encoded, err := json.Marshal(previews); err == nil {
		if err := s.cache.Set(ctx, listCacheKey, encoded, s.cacheTTL); err != nil {
			s.log.Warn("failed to cache artifact listing", "err", err)
		}
	}
	return previews
}

// Detail returns the full aggregated view of one artifact.
func (s *ArtifactService) Detail(id string) (map[string]any, error) {
	return s.store.Detail(id)
}

// Create makes a new artifact from the optional facets and returns its id.
func (s *ArtifactService) Create(ctx context.Context, metadata *string, images []artstore.Upload, rtis map[string][]artstore.Upload) (string, error) {
	id, err := s.store.Create(metadata, images, rtis)
	if err != nil {
		return "", err
	}
	s.invalidate(ctx)
	s.log.Info("created artifact", "id", id)
	return id, nil
}

// Update applies the supplied facets to an existing artifact.
func (s *ArtifactService) Update(ctx context.Context, id string, metadata *string, images []artstore.Upload, rtis map[string][]artstore.Upload) error {
	if err := s.store.Update(id, metadata, images, rtis); err != nil {
		return err
	}
	s.invalidate(ctx)
	s.log.Info("updated artifact", "id", id)
	return nil
}

// Delete removes an artifact and everything nested under it.
func (s *ArtifactService) Delete(ctx context.Context, id string) error {
	if err := s.store.Delete(id); err != nil {
		return err
	}
	s.invalidate(ctx)
	s.log.Info("deleted artifact", "id", id)
	return nil
}

// CreateRTI adds one new RTI set to an existing artifact.
func (s *ArtifactService) CreateRTI(ctx context.Context, id string, uploads []artstore.Upload) (string, error) {
	if !s.store.Exists(id) {
		return "", artstore.Newf(artstore.CodeNotFound, "artifact %s not found", id)
	}
	rtiID, err := s.store.CreateRTI(id, uploads)
	if err != nil {
		return "", err
	}
	s.invalidate(ctx)
	s.log.Info("created rti set", "artifact", id, "rti", rtiID)
	return rtiID, nil
}

// DeleteRTI removes one RTI set from an artifact.
func (s *ArtifactService) DeleteRTI(ctx context.Context, id, rtiID string) error {
	if err := s.store.DeleteRTI(id, rtiID); err != nil {
		return err
	}
	s.invalidate(ctx)
	s.log.Info("deleted rti set", "artifact", id, "rti", rtiID)
	return nil
}

// Archive exports the artifact's on-disk tree to the configured S3 target
// and returns the number of files uploaded.
func (s *ArtifactService) Archive(ctx context.Context, id string) (int, error) {
	if s.exporter == nil {
		return 0, ErrArchiveDisabled
	}
	if !s.store.Exists(id) {
		return 0, artstore.Newf(artstore.CodeNotFound, "artifact %s not found", id)
	}
	if err := s.exporter.EnsureBucket(ctx); err != nil {
		return 0, err
	}
	dir, err := artstore.Resolver{Root: s.store.Root()}.Artifact(id)
	if err != nil {
		return 0, err
	}
	count, err := s.exporter.ExportTree(ctx, archive.ArtifactPrefix(id), dir)
	if err != nil {
		return 0, err
	}
	s.log.Info("archived artifact", "id", id, "files", count)
	return count, nil
}

func (s *ArtifactService) invalidate(ctx context.Context) {
	if err := s.cache.Delete(ctx, listCacheKey); err != nil {
		s.log.Warn("failed to invalidate listing cache", "err", err)
	}
}
