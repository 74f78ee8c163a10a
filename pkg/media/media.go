// Package media moves staged local files into the remote media store.
//
// The contract: Ingest either returns a durable, publicly resolvable URL or
// an *UploadError — and in both cases the staged file is removed, so the
// transport layer can never leak temp files.
package media

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"
)

// Uploader sends a local file to the remote store and returns its URL.
type Uploader interface {
	Upload(ctx context.Context, localPath string) (string, error)
}

// UploadError distinguishes a failed upload from one that was never
// attempted; callers can errors.As on it.
type UploadError struct {
	Path string
	Err  error
}

func (e *UploadError) Error() string {
	return fmt.Sprintf("media upload failed for %s: %v", e.Path, e.Err)
}

func (e *UploadError) Unwrap() error { return e.Err }

type Service struct {
	uploader Uploader
	logger   *zap.Logger
}

func NewService(uploader Uploader, logger *zap.Logger) *Service {
	return &Service{uploader: uploader, logger: logger}
}

// Ingest uploads the staged file and returns its remote URL. The staged file
// is removed on every exit path, success or failure; the cleanup itself is
// best-effort and never fails the call.
func (s *Service) Ingest(ctx context.Context, localPath string) (string, error) {
	defer func() {
		if err := os.Remove(localPath); err != nil && !os.IsNotExist(err) {
			s.logger.Warn("Failed to remove staged file",
				zap.String("path", localPath),
				zap.Error(err))
		}
	}()

	if _, err := os.Stat(localPath); err != nil {
		return "", &UploadError{Path: localPath, Err: err}
	}

	url, err := s.uploader.Upload(ctx, localPath)
	if err != nil {
		return "", &UploadError{Path: localPath, Err: err}
	}

	s.logger.Info("Media uploaded",
		zap.String("path", localPath),
		zap.String("url", url))
	return url, nil
}
