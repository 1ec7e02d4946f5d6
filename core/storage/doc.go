// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client behind the small Client interface used by the
// object snapshot backend, so both AWS S3 and self-hosted MinIO can hold the
// inventory session.
//
// # Client Interface
//
// Client can be replaced by the testify mock in core/storage/mocks in unit tests.
//
// # Operations
//
//   - BucketExists: Verifies access to the target bucket.
//   - MakeBucket: Creates a new bucket if needed.
//   - PutObject: Uploads content (with size and options).
//   - GetObject: Retrieves content as a stream.
//
// EnsureBucket combines the first two and is called once at startup. With
// create_bucket disabled a missing bucket fails with ErrBucketMissing.
//
// # Usage
//
//	client, err := storage.NewClient(cfg.Storage)
//	if err := storage.EnsureBucket(ctx, client, cfg.Storage); err != nil {
//	    return err
//	}
package storage
