// Package media issues presigned upload URLs for article images.
package media

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
	mclient "github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// ErrDisabled is returned when no object storage is configured.
var ErrDisabled = errors.New("media uploads are disabled")

// UploadInfo tells the client where to PUT the file and what to store afterwards.
type UploadInfo struct {
	UploadURL string            `json:"upload_url"`
	Key       string            `json:"key"`
	PublicURL string            `json:"public_url"`
	ExpiresIn int               `json:"expires_in"`
	Headers   map[string]string `json:"headers"`
}

// Uploader produces presigned uploads.
type Uploader interface {
	UploadURL(ctx context.Context, field, filename string) (*UploadInfo, error)
}

// presigner is the subset of *minio.Client used here.
type presigner interface {
	PresignedPutObject(ctx context.Context, bucket, object string, expires time.Duration) (*url.URL, error)
}

// Config configures the MinIO/S3 storage.
type Config struct {
	Endpoint      string
	AccessKey     string
	SecretKey     string
	Bucket        string
	PublicBaseURL string
	PresignTTL    time.Duration
}

// Storage is the MinIO implementation of Uploader.
type Storage struct {
	client     presigner
	bucket     string
	publicBase string
	ttl        time.Duration
	newID      func() string
}

// New creates the client and checks that the bucket exists.
func New(ctx context.Context, cfg Config) (*Storage, error) {
	const op = "media.New"

	endpoint := cfg.Endpoint
	secure := strings.HasPrefix(endpoint, "https://")
	if u, err := url.Parse(endpoint); err == nil && u.Scheme != "" {
		endpoint = u.Host
		secure = u.Scheme == "https"
	}

	client, err := mclient.New(endpoint, &mclient.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: secure,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if !exists {
		return nil, fmt.Errorf("%s: bucket %q does not exist", op, cfg.Bucket)
	}

	return newStorage(client, cfg), nil
}

func newStorage(client presigner, cfg Config) *Storage {
	return &Storage{
		client:     client,
		bucket:     cfg.Bucket,
		publicBase: strings.TrimRight(cfg.PublicBaseURL, "/"),
		ttl:        cfg.PresignTTL,
		newID:      uuid.NewString,
	}
}

// UploadURL returns a presigned PUT URL for a key of the form
// "articles/<field>/<uuid><ext>". field and filename are expected to be validated.
func (s *Storage) UploadURL(ctx context.Context, field, filename string) (*UploadInfo, error) {
	const op = "media.UploadURL"

	ext := strings.ToLower(path.Ext(filename))
	key := path.Join("articles", field, s.newID()+ext)

	u, err := s.client.PresignedPutObject(ctx, s.bucket, key, s.ttl)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &UploadInfo{
		UploadURL: u.String(),
		Key:       key,
		PublicURL: s.publicURL(key),
		ExpiresIn: int(s.ttl.Seconds()),
		Headers:   map[string]string{"Content-Type": contentType(ext)},
	}, nil
}

// publicURL falls back to a bucket-relative path when no public base is set.
func (s *Storage) publicURL(key string) string {
	if s.publicBase == "" {
		return "/" + path.Join(s.bucket, key)
	}
	return s.publicBase + "/" + key
}

func contentType(ext string) string {
	switch ext {
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".png":
		return "image/png"
	case ".gif":
		return "image/gif"
	case ".webp":
		return "image/webp"
	default:
		return "application/octet-stream"
	}
}

// Disabled is the Uploader used when no S3 endpoint is configured.
type Disabled struct{}

// UploadURL always fails with ErrDisabled.
func (Disabled) UploadURL(context.Context, string, string) (*UploadInfo, error) {
	return nil, ErrDisabled
}
