// internal/services/storage_service.go
package services

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/javajoker/materialmap-backend/internal/config"
	"github.com/javajoker/materialmap-backend/internal/metrics"
)

// AllowedImageExtensions lists the accepted image file extensions.
var AllowedImageExtensions = []string{".jpg", ".jpeg", ".png", ".gif", ".webp"}

const (
	FolderProducts = "products"
	FolderStores   = "stores"
)

type StorageService struct {
	s3Client s3iface.S3API
	config   config.StorageConfig
	metrics  *metrics.Metrics
}

type UploadResult struct {
	URL      string `json:"url"`
	Key      string `json:"key"`
	Size     int64  `json:"size"`
	MimeType string `json:"mime_type"`
}

// NewStorageService connects to S3 or an S3-compatible endpoint such as
// Supabase Storage. Without credentials uploads are only simulated.
func NewStorageService(cfg config.StorageConfig, m *metrics.Metrics) (*StorageService, error) {
	if cfg.AccessKeyID == "" {
		// Return service without S3 for local development
		return &StorageService{config: cfg, metrics: m}, nil
	}

	awsConfig := &aws.Config{
		Region: aws.String(cfg.Region),
		Credentials: credentials.NewStaticCredentials(
			cfg.AccessKeyID,
			cfg.SecretAccessKey,
			"",
		),
		S3ForcePathStyle: aws.Bool(cfg.ForcePathStyle),
	}
	if cfg.Endpoint != "" {
		awsConfig.Endpoint = aws.String(cfg.Endpoint)
	}

	sess, err := session.NewSession(awsConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create AWS session: %w", err)
	}

	return NewStorageServiceWithClient(s3.New(sess), cfg, m), nil
}

func NewStorageServiceWithClient(client s3iface.S3API, cfg config.StorageConfig, m *metrics.Metrics) *StorageService {
	return &StorageService{
		s3Client: client,
		config:   cfg,
		metrics:  m,
	}
}

func (s *StorageService) MaxImageSize() int64 {
	return int64(s.config.MaxImageSizeMB) * 1024 * 1024
}

// UploadImage stores an image under <folder>/<id><ext>, replacing any
// previous image with the same extension.
func (s *StorageService) UploadImage(ctx context.Context, folder string, id uuid.UUID, filename string, size int64, body io.ReadSeeker) (result *UploadResult, err error) {
	defer func() { s.metrics.RecordImageUpload(folder, err) }()

	ext := strings.ToLower(filepath.Ext(filename))
	if !isAllowedExtension(ext) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidFileType, ext)
	}
	if max := s.MaxImageSize(); max > 0 && size > max {
		return nil, fmt.Errorf("%w: %d bytes exceeds %d bytes", ErrFileTooLarge, size, max)
	}

	contentType, err := s.ValidateImage(body)
	if err != nil {
		return nil, err
	}

	key := fmt.Sprintf("%s/%s%s", folder, id.String(), ext)

	if s.s3Client == nil {
		logrus.WithField("key", key).Info("Storage not configured; simulating upload")
		return &UploadResult{
			URL:      s.publicURL(key),
			Key:      key,
			Size:     size,
			MimeType: contentType,
		}, nil
	}

	_, err = s.s3Client.PutObjectWithContext(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.config.Bucket),
		Key:           aws.String(key),
		Body:          body,
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(size),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upload to storage: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"key":  key,
		"size": size,
	}).Info("Image uploaded")

	return &UploadResult{
		URL:      s.publicURL(key),
		Key:      key,
		Size:     size,
		MimeType: contentType,
	}, nil
}

func (s *StorageService) DeleteFile(ctx context.Context, key string) error {
	if s.s3Client == nil {
		logrus.WithField("key", key).Info("Storage not configured; skipping delete")
		return nil
	}

	_, err := s.s3Client.DeleteObjectWithContext(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.config.Bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("failed to delete file from storage: %w", err)
	}

	return nil
}

// KeyFromURL recovers the object key from a URL produced by this service.
func (s *StorageService) KeyFromURL(url string) (string, bool) {
	prefix := s.publicURL("")
	if !strings.HasPrefix(url, prefix) {
		return "", false
	}
	key := strings.TrimPrefix(url, prefix)
	return key, key != ""
}

func (s *StorageService) publicURL(key string) string {
	if s.config.PublicBaseURL != "" {
		return fmt.Sprintf("%s/%s", strings.TrimRight(s.config.PublicBaseURL, "/"), key)
	}
	if s.s3Client == nil {
		return "/uploads/" + key
	}
	if s.config.Endpoint != "" {
		return fmt.Sprintf("%s/%s/%s", strings.TrimRight(s.config.Endpoint, "/"), s.config.Bucket, key)
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.config.Bucket, s.config.Region, key)
}

// ValidateImage sniffs the file signature and rewinds the reader.
func (s *StorageService) ValidateImage(file io.ReadSeeker) (string, error) {
	buffer := make([]byte, 512)
	n, err := file.Read(buffer)
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("failed to read file: %w", err)
	}
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return "", fmt.Errorf("failed to rewind file: %w", err)
	}

	contentType := http.DetectContentType(buffer[:n])
	switch contentType {
	case "image/jpeg", "image/png", "image/gif", "image/webp":
		return contentType, nil
	}
	return "", ErrInvalidImage
}

func isAllowedExtension(ext string) bool {
	for _, allowed := range AllowedImageExtensions {
		if ext == allowed {
			return true
		}
	}
	return false
}
