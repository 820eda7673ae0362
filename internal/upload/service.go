package upload

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/kacper-wojtaszczyk/jackfruit/remotefile-go/internal/prefix"
	"github.com/kacper-wojtaszczyk/jackfruit/remotefile-go/internal/storage"
)

const defaultConcurrency = 4

// ObjectStorage writes data streams to object storage.
type ObjectStorage interface {
	Put(ctx context.Context, key string, data io.Reader) error
}

// Service stores files under the prefix its formatter yields at upload time.
type Service struct {
	formatter     prefix.Formatter
	objectStorage ObjectStorage
	concurrency   int
}

func NewService(formatter prefix.Formatter, objectStorage ObjectStorage) *Service {
	return &Service{formatter: formatter, objectStorage: objectStorage, concurrency: defaultConcurrency}
}

// SetConcurrency bounds the number of parallel uploads in UploadFiles.
// Values below 1 are ignored.
func (s *Service) SetConcurrency(n int) {
	if n > 0 {
		s.concurrency = n
	}
}

// Upload stores body as name under the current prefix and returns the object key.
// An empty name is replaced by a UUIDv7.
func (s *Service) Upload(ctx context.Context, name string, body io.Reader) (string, error) {
	if name == "" {
		id, err := uuid.NewV7()
		if err != nil {
			return "", fmt.Errorf("generate name: %w", err)
		}
		name = id.String()
	}

	key := storage.ObjectKey{Prefix: s.formatter.Format(), Name: name}.Key()

	slog.DebugContext(ctx, "upload started", "name", name, "key", key)

	if err := s.objectStorage.Put(ctx, key, body); err != nil {
		return "", fmt.Errorf("store: %w", err)
	}

	slog.InfoContext(ctx, "upload complete", "key", key)
	return key, nil
}

// UploadFiles uploads local files by base name and returns their keys in input
// order. The first failure cancels the uploads still running.
func (s *Service) UploadFiles(ctx context.Context, paths []string) ([]string, error) {
	keys := make([]string, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)

	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			key, err := s.uploadFile(ctx, path)
			if err != nil {
				return err
			}
			keys[i] = key
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return keys, nil
}

func (s *Service) uploadFile(ctx context.Context, path string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open: %w", err)
	}
	defer f.Close()

	return s.Upload(ctx, filepath.Base(path), f)
}
