// internal/storage/minio.go
package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/M00N69/supainspection/internal/config"
	"github.com/M00N69/supainspection/internal/inspection"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

const presignLifetime = time.Hour

// PhotoStore keeps inspection photos in a MinIO bucket.
type PhotoStore struct {
	client *minio.Client
	bucket string
}

// NewPhotoStore connects to MinIO and makes sure the photo bucket exists.
func NewPhotoStore(cfg config.Env) (*PhotoStore, error) {
	client, err := minio.New(cfg.MinioEndpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.MinioAccessKey, cfg.MinioSecretKey, ""),
		Secure: cfg.MinioUseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create MinIO client: %w", err)
	}

	ctx := context.Background()
	exists, err := client.BucketExists(ctx, cfg.MinioBucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.MinioBucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("failed to create bucket: %w", err)
		}
	}

	return &PhotoStore{client: client, bucket: cfg.MinioBucket}, nil
}

// UploadPhoto stores one photo under the deterministic inspection key and
// returns its public URL. Failures come back as *inspection.UploadError so
// callers can drop the single photo without aborting the save.
func (p *PhotoStore) UploadPhoto(ctx context.Context, inspectionID uint, filename string, r io.Reader, size int64) (string, error) {
	objectName := PhotoObjectName(inspectionID, filename)
	_, err := p.client.PutObject(ctx, p.bucket, objectName, r, size, minio.PutObjectOptions{
		ContentType: ContentTypeFor(filename),
	})
	if err != nil {
		return "", &inspection.UploadError{Object: objectName, Err: err}
	}
	return p.publicURL(objectName), nil
}

// UploadPhotoFile uploads a photo from a local file, typically the temporary
// file a multipart upload was spooled to.
func (p *PhotoStore) UploadPhotoFile(ctx context.Context, inspectionID uint, filename, filePath string) (string, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return "", &inspection.UploadError{Object: PhotoObjectName(inspectionID, filename), Err: err}
	}
	defer file.Close()

	stat, err := file.Stat()
	if err != nil {
		return "", &inspection.UploadError{Object: PhotoObjectName(inspectionID, filename), Err: err}
	}
	return p.UploadPhoto(ctx, inspectionID, filename, file, stat.Size())
}

// PresignedPhotoURL generates a time-limited link for an already stored
// photo, addressed by its public URL.
func (p *PhotoStore) PresignedPhotoURL(ctx context.Context, photoURL string) (string, error) {
	objectName := p.objectNameFromURL(photoURL)
	url, err := p.client.PresignedGetObject(ctx, p.bucket, objectName, presignLifetime, nil)
	if err != nil {
		return "", fmt.Errorf("failed to generate presigned URL: %w", err)
	}
	return url.String(), nil
}

func (p *PhotoStore) publicURL(objectName string) string {
	return fmt.Sprintf("%s/%s/%s", p.client.EndpointURL(), p.bucket, objectName)
}

func (p *PhotoStore) objectNameFromURL(photoURL string) string {
	prefix := fmt.Sprintf("%s/%s/", p.client.EndpointURL(), p.bucket)
	if len(photoURL) > len(prefix) && photoURL[:len(prefix)] == prefix {
		return photoURL[len(prefix):]
	}
	return photoURL
}
