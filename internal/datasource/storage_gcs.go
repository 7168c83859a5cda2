package datasource

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"

	gcs "cloud.google.com/go/storage"
	"google.golang.org/api/iterator"
)

// GCSStorage implements Client using Google Cloud Storage.
type GCSStorage struct {
	client *gcs.Client
	bucket string
	prefix string
}

// NewGCSStorage creates a GCS-backed Client.
// It uses Application Default Credentials (works with Workload Identity, SA keys, gcloud auth).
func NewGCSStorage(ctx context.Context, bucket, prefix string) (*GCSStorage, error) {
	client, err := gcs.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("create gcs client: %w", err)
	}
	return &GCSStorage{client: client, bucket: bucket, prefix: strings.Trim(prefix, "/")}, nil
}

func (s *GCSStorage) key(parts ...string) string {
	return path.Join(append([]string{s.prefix}, parts...)...)
}

func (s *GCSStorage) get(ctx context.Context, key string) ([]byte, error) {
	r, err := s.client.Bucket(s.bucket).Object(key).NewReader(ctx)
	if err != nil {
		return nil, fmt.Errorf("gcs read %s: %w", key, err)
	}
	defer r.Close()
	return io.ReadAll(r)
}

// Bulk fetches the bulk dataset document.
func (s *GCSStorage) Bulk(ctx context.Context) ([]byte, error) {
	return s.get(ctx, s.key("data.json"))
}

// Details lists and fetches every detail document under the features prefix.
func (s *GCSStorage) Details(ctx context.Context) (map[string][]byte, error) {
	prefix := s.key("features") + "/"
	details := map[string][]byte{}

	it := s.client.Bucket(s.bucket).Objects(ctx, &gcs.Query{Prefix: prefix})
	for {
		attrs, err := it.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("gcs list %s: %w", prefix, err)
		}
		if !strings.HasSuffix(attrs.Name, ".json") {
			continue
		}
		data, err := s.get(ctx, attrs.Name)
		if err != nil {
			return nil, err
		}
		stem := strings.TrimSuffix(path.Base(attrs.Name), ".json")
		details[stem] = data
	}
	return details, nil
}
