package snapshot

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path"

	"inventory-control/core/storage"

	"github.com/minio/minio-go/v7"
)

// ObjectBackend stores each key as the object "<prefix>/<key>.json" in a bucket.
type ObjectBackend struct {
	client storage.Client
	bucket string
	prefix string
}

// NewObjectBackend creates a backend on an existing bucket.
func NewObjectBackend(client storage.Client, bucket, prefix string) *ObjectBackend {
	return &ObjectBackend{client: client, bucket: bucket, prefix: prefix}
}

func (b *ObjectBackend) objectName(key string) string {
	return path.Join(b.prefix, key+".json")
}

// Get downloads the object for key.
func (b *ObjectBackend) Get(ctx context.Context, key string) ([]byte, error) {
	name := b.objectName(key)
	obj, err := b.client.GetObject(ctx, b.bucket, name, minio.GetObjectOptions{})
	if err != nil {
		return nil, objectError(name, err)
	}
	defer obj.Close()

	// minio reports a missing key on the first read, not on GetObject.
	data, err := io.ReadAll(obj)
	if err != nil {
		return nil, objectError(name, err)
	}
	return data, nil
}

// Put uploads the object for key.
func (b *ObjectBackend) Put(ctx context.Context, key string, data []byte) error {
	name := b.objectName(key)
	_, err := b.client.PutObject(ctx, b.bucket, name, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: "application/json",
	})
	if err != nil {
		return fmt.Errorf("failed to upload %s: %w", name, err)
	}
	return nil
}

func objectError(name string, err error) error {
	if minio.ToErrorResponse(err).Code == "NoSuchKey" {
		return ErrNotFound
	}
	return fmt.Errorf("failed to download %s: %w", name, err)
}
