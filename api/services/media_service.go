package services

import (
	"context"
	"fmt"
	"log"
	"mime/multipart"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"sitebuilder-backend/shared/config"
)

// MediaService stores uploaded section media in a MinIO bucket, one
// folder per section.
type MediaService struct {
	client     *minio.Client
	bucketName string
}

func NewMediaService() (*MediaService, error) {
	cfg := config.GetConfig()

	parsedURL, err := url.Parse(cfg.MinIOServerURL)
	if err != nil {
		return nil, fmt.Errorf("invalid MinIO endpoint: %v", err)
	}

	endpoint := parsedURL.Host
	useSSL := cfg.MinIOUseSSL

	log.Printf("🔗 Connecting to MinIO: %s (SSL: %v)", endpoint, useSSL)

	minioClient, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.MinIORootUser, cfg.MinIORootPassword, ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create MinIO client: %v", err)
	}

	service := &MediaService{
		client:     minioClient,
		bucketName: cfg.MinIOBucketName,
	}

	if err := service.initializeBucket(); err != nil {
		return nil, err
	}

	return service, nil
}

func (s *MediaService) initializeBucket() error {
	ctx := context.Background()

	exists, err := s.client.BucketExists(ctx, s.bucketName)
	if err != nil {
		return fmt.Errorf("failed to check bucket existence: %v", err)
	}

	if !exists {
		err = s.client.MakeBucket(ctx, s.bucketName, minio.MakeBucketOptions{})
		if err != nil {
			return fmt.Errorf("failed to create bucket: %v", err)
		}
		log.Printf("✅ MinIO bucket '%s' created successfully", s.bucketName)
	}

	return nil
}

// IsAllowedType checks a filename against the configured extension list
func (s *MediaService) IsAllowedType(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	for _, allowed := range strings.Split(config.GetConfig().MediaAllowedTypes, ",") {
		if ext == strings.TrimSpace(allowed) {
			return true
		}
	}
	return false
}

// Upload stores a multipart file under the section's folder and returns
// the object's public URL.
func (s *MediaService) Upload(sectionID uuid.UUID, fileHeader *multipart.FileHeader) (string, error) {
	file, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %v", err)
	}
	defer file.Close()

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	objectKey := fmt.Sprintf("sections/%s/%s%s", sectionID, uuid.New(), ext)

	contentType := fileHeader.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	ctx := context.Background()
	_, err = s.client.PutObject(ctx, s.bucketName, objectKey, file, fileHeader.Size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload media: %v", err)
	}

	return fmt.Sprintf("%s/%s/%s", strings.TrimRight(config.GetConfig().MinIOServerURL, "/"), s.bucketName, objectKey), nil
}

// Remove deletes a previously uploaded object by its public URL. URLs
// pointing outside the bucket are ignored.
func (s *MediaService) Remove(mediaURL string) error {
	prefix := fmt.Sprintf("%s/%s/", strings.TrimRight(config.GetConfig().MinIOServerURL, "/"), s.bucketName)
	if !strings.HasPrefix(mediaURL, prefix) {
		return nil
	}

	objectKey := strings.TrimPrefix(mediaURL, prefix)
	ctx := context.Background()

	err := s.client.RemoveObject(ctx, s.bucketName, objectKey, minio.RemoveObjectOptions{})
	if err != nil {
		return fmt.Errorf("failed to remove media: %v", err)
	}

	return nil
}
