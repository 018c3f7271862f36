package storage

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/bryanwahyu/automaton-legal/internal/logger"
)

const defaultPresignTTL = 15 * time.Minute

type Store struct {
	client     *minio.Client
	bucketName string
	region     string
	presignTTL time.Duration
	log        *logger.Logger
}

// New buat koneksi MinIO
func New(ctx context.Context, endpoint, region, bucket, accessKey, secretKey string, useSSL bool, presignTTL time.Duration, log *logger.Logger) (*Store, error) {
	cli, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
		Region: region,
	})
	if err != nil {
		return nil, err
	}

	// pastikan bucket ada
	exists, err := cli.BucketExists(ctx, bucket)
	if err != nil {
		return nil, err
	}
	if !exists {
		if err := cli.MakeBucket(ctx, bucket, minio.MakeBucketOptions{Region: region}); err != nil {
			return nil, err
		}
	}
	if presignTTL <= 0 {
		presignTTL = defaultPresignTTL
	}

	return &Store{client: cli, bucketName: bucket, region: region, presignTTL: presignTTL, log: logger.OrNop(log)}, nil
}

// Upload stores a local file under key and returns its object URL.
func (s *Store) Upload(ctx context.Context, localPath, key string) (string, error) {
	_, err := s.client.FPutObject(ctx, s.bucketName, key, localPath, minio.PutObjectOptions{
		ContentType: contentTypeFor(localPath),
	})
	if err != nil {
		return "", err
	}
	return s.objectURL(key), nil
}

// UploadAndCleanup upload file ke Minio dan hapus file lokal setelahnya
func (s *Store) UploadAndCleanup(ctx context.Context, localPath, key string) (string, error) {
	u, err := s.Upload(ctx, localPath, key)
	if err != nil {
		return "", err
	}

	// upload sudah berhasil, gagal hapus cukup di-log
	if removeErr := os.Remove(localPath); removeErr != nil && !os.IsNotExist(removeErr) {
		s.log.Warn("failed to remove local file", "path", localPath, "error", removeErr)
	}
	return u, nil
}

// Put streams r into the bucket under key.
func (s *Store) Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) (string, error) {
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	_, err := s.client.PutObject(ctx, s.bucketName, key, r, size, minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return "", err
	}
	return s.objectURL(key), nil
}

// PresignedURL returns a time-limited GET URL for a private object.
func (s *Store) PresignedURL(ctx context.Context, key string) (string, error) {
	u, err := s.client.PresignedGetObject(ctx, s.bucketName, key, s.presignTTL, url.Values{})
	if err != nil {
		return "", err
	}
	return u.String(), nil
}

// Check implements the health checker.
func (s *Store) Check(ctx context.Context) error {
	ok, err := s.client.BucketExists(ctx, s.bucketName)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("bucket %s missing", s.bucketName)
	}
	return nil
}

// URL publik (jika bucket public), kalau private pakai PresignedURL
func (s *Store) objectURL(key string) string {
	return fmt.Sprintf("%s/%s/%s", s.client.EndpointURL().String(), s.bucketName, key)
}

func contentTypeFor(path string) string {
	switch filepath.Ext(path) {
	case ".pdf":
		return "application/pdf"
	case ".json":
		return "application/json"
	case ".txt":
		return "text/plain"
	case ".png":
		return "image/png"
	case ".jpg", ".jpeg":
		return "image/jpeg"
	}
	return "application/octet-stream"
}
