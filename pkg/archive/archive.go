// Package archive exports artifact directory trees to S3-compatible storage
// for off-site retention.
package archive

import (
	"context"
	"io/fs"
	"mime"
	"os"
	"path/filepath"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// S3Config holds configuration for S3-compatible storage.
type S3Config struct {
	Endpoint  string // host:port (e.g., "localhost:9000")
	AccessKey string
	SecretKey string
	Bucket    string
	Region    string
	UseSSL    bool
}

// Exporter uploads artifact trees to a single bucket.
type Exporter struct {
	client *minio.Client
	bucket string
	region string
}

// NewExporter creates an Exporter with the given configuration.
func NewExporter(cfg S3Config) (*Exporter, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, err
	}

	return &Exporter{
		client: client,
		bucket: cfg.Bucket,
		region: cfg.Region,
	}, nil
}

// ArtifactPrefix returns the object key prefix for an artifact's archive.
func ArtifactPrefix(artifactID string) string {
	return "artifacts/" + artifactID + "/"
}

// EnsureBucket ensures the bucket exists, creating it if necessary.
func (e *Exporter) EnsureBucket(ctx context.Context) error {
	exists, err := e.client.BucketExists(ctx, e.bucket)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	return e.client.MakeBucket(ctx, e.bucket, minio.MakeBucketOptions{
		Region: e.region,
	})
}

// ExportTree walks root and uploads every regular file under prefix,
// preserving the relative directory layout. Returns the number of files
// uploaded. Existing objects under the prefix are overwritten, so exporting
// twice converges on the current on-disk state.
func (e *Exporter) ExportTree(ctx context.Context, prefix, root string) (int, error) {
	count := 0
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		key := prefix + filepath.ToSlash(rel)

		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()

		info, err := f.Stat()
		if err != nil {
			return err
		}

		_, err = e.client.PutObject(ctx, e.bucket, key, f, info.Size(), minio.PutObjectOptions{
			ContentType: mime.TypeByExtension(filepath.Ext(path)),
		})
		if err != nil {
			return err
		}
		count++
		return nil
	})
	return count, err
}

// Remove deletes every archived object under the given prefix.
func (e *Exporter) Remove(ctx context.Context, prefix string) error {
	opts := minio.ListObjectsOptions{
		Prefix:    prefix,
		Recursive: true,
	}

	for obj := range e.client.ListObjects(ctx, e.bucket, opts) {
		if obj.Err != nil {
			return obj.Err
		}
		if err := e.client.RemoveObject(ctx, e.bucket, obj.Key, minio.RemoveObjectOptions{}); err != nil {
			return err
		}
	}
	return nil
}
