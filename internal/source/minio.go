package source

import (
	"context"
	"fmt"
	"io"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// BucketConfig carries the connection settings for an object-store tree.
type BucketConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

// Bucket serves a content tree from an S3-compatible bucket. Object keys
// are the tree paths.
type Bucket struct {
	client *minio.Client
	bucket string
}

func NewBucket(cfg BucketConfig) (*Bucket, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("minio client: %w", err)
	}
	return &Bucket{client: client, bucket: cfg.Bucket}, nil
}

func (b *Bucket) List(ctx context.Context) ([]string, error) {
	var paths []string
	for object := range b.client.ListObjects(ctx, b.bucket, minio.ListObjectsOptions{Recursive: true}) {
		if object.Err != nil {
			return nil, fmt.Errorf("list bucket %s: %w", b.bucket, object.Err)
		}
		paths = append(paths, object.Key)
	}
	return paths, nil
}

func (b *Bucket) Read(ctx context.Context, path string) ([]byte, error) {
	object, err := b.client.GetObject(ctx, b.bucket, path, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", path, err)
	}
	defer object.Close()
	// GetObject is lazy; missing keys surface on the first read.
	data, err := io.ReadAll(object)
	if err != nil {
		if isMissingObject(err) {
			return nil, ErrNotExist
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return data, nil
}

// Ping verifies the bucket exists and is reachable.
func (b *Bucket) Ping(ctx context.Context) error {
	exists, err := b.client.BucketExists(ctx, b.bucket)
	if err != nil {
		return fmt.Errorf("bucket %s: %w", b.bucket, err)
	}
	if !exists {
		return fmt.Errorf("bucket %s does not exist", b.bucket)
	}
	return nil
}

func isMissingObject(err error) bool {
	resp := minio.ToErrorResponse(err)
	return resp.Code == "NoSuchKey" || resp.Code == "NoSuchBucket"
}
