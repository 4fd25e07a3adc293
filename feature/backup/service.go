package backup

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"server-props/core/propsfile"
	"server-props/core/storage"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// ErrNotFound is returned when a named backup does not exist.
var ErrNotFound = errors.New("backup not found")

// ErrBadName is returned for backup names that could escape the bucket prefix.
var ErrBadName = errors.New("invalid backup name")

// Info describes one stored backup object.
type Info struct {
	Name         string    `json:"name"`
	Size         int64     `json:"size"`
	LastModified time.Time `json:"lastModified"`
}

// Service stores and retrieves snapshots of the properties file in object
// storage.
type Service struct {
	client storage.Client
	bucket string
	files  propsfile.Store
	path   string
	logger *zap.Logger

	now func() time.Time
}

// NewService creates a backup service writing into the given bucket.
func NewService(client storage.Client, bucket string, files propsfile.Store, path string, logger *zap.Logger) *Service {
	return &Service{
		client: client,
		bucket: bucket,
		files:  files,
		path:   path,
		logger: logger,
		now:    time.Now,
	}
}

// Create snapshots the current properties file into a new timestamped object.
func (s *Service) Create(ctx context.Context) (*Info, error) {
	content, err := s.files.ReadText(s.path)
	if err != nil {
		return nil, err
	}

	if err := s.ensureBucket(ctx); err != nil {
		return nil, err
	}

	name := fmt.Sprintf("server-properties-%s.bak", s.now().UTC().Format("20060102T150405Z"))
	reader := strings.NewReader(content)

	info, err := s.client.PutObject(ctx, s.bucket, name, reader, int64(len(content)), minio.PutObjectOptions{
		ContentType: "text/plain",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to store backup %s: %w", name, err)
	}

	s.logger.Info("Backup created", zap.String("name", name), zap.Int64("size", info.Size))
	return &Info{Name: name, Size: info.Size, LastModified: s.now().UTC()}, nil
}

// List returns all stored backups, newest first.
func (s *Service) List(ctx context.Context) ([]Info, error) {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket %s: %w", s.bucket, err)
	}
	if !exists {
		return []Info{}, nil
	}

	backups := []Info{}
	for obj := range s.client.ListObjects(ctx, s.bucket, minio.ListObjectsOptions{}) {
		if obj.Err != nil {
			return nil, fmt.Errorf("failed to list backups: %w", obj.Err)
		}
		backups = append(backups, Info{
			Name:         obj.Key,
			Size:         obj.Size,
			LastModified: obj.LastModified,
		})
	}

	sort.Slice(backups, func(i, j int) bool {
		return backups[i].LastModified.After(backups[j].LastModified)
	})
	return backups, nil
}

// Download returns the content of a named backup.
func (s *Service) Download(ctx context.Context, name string) (string, error) {
	if err := validateName(name); err != nil {
		return "", err
	}

	obj, err := s.client.GetObject(ctx, s.bucket, name, minio.GetObjectOptions{})
	if err != nil {
		return "", fmt.Errorf("failed to fetch backup %s: %w", name, err)
	}
	defer obj.Close()

	content, err := io.ReadAll(obj)
	if err != nil {
		if minio.ToErrorResponse(err).Code == "NoSuchKey" {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("failed to read backup %s: %w", name, err)
	}
	return string(content), nil
}

// Delete removes a named backup.
func (s *Service) Delete(ctx context.Context, name string) error {
	if err := validateName(name); err != nil {
		return err
	}
	if err := s.client.RemoveObject(ctx, s.bucket, name, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("failed to delete backup %s: %w", name, err)
	}
	s.logger.Info("Backup deleted", zap.String("name", name))
	return nil
}

func (s *Service) ensureBucket(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket %s: %w", s.bucket, err)
	}
	if exists {
		return nil
	}
	if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{}); err != nil {
		return fmt.Errorf("failed to create bucket %s: %w", s.bucket, err)
	}
	return nil
}

func validateName(name string) error {
	if name == "" || strings.ContainsAny(name, "/\\") {
		return ErrBadName
	}
	return nil
}
