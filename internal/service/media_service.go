package service

import (
	"context"
	"errors"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/zainaaazz/FullStackWebApplication/config"
	"github.com/zainaaazz/FullStackWebApplication/internal/repository"
	"github.com/zainaaazz/FullStackWebApplication/pkg/blob"
	pkgerrors "github.com/zainaaazz/FullStackWebApplication/pkg/errors"
)

// DownloadedFile a video fetched into a local temp file
type DownloadedFile struct {
	Path     string
	FileName string
}

// Remove deletes the temp file
func (f *DownloadedFile) Remove() error {
	return os.Remove(f.Path)
}

// MediaService video file delivery
type MediaService interface {
	// Download copies the blob into a temp file; the caller calls Remove when done
	Download(ctx context.Context, videoID int) (*DownloadedFile, error)
	// Stream opens the blob for piping to the client; the caller closes Body
	Stream(ctx context.Context, videoID int) (*blob.Object, error)
}

type mediaService struct {
	repo       *repository.Repository
	store      blob.Store
	scratchDir string
	logger     *zap.Logger
}

// NewMediaService creates a MediaService
func NewMediaService(cfg *config.MediaConfig, repo *repository.Repository, store blob.Store, logger *zap.Logger) MediaService {
	return &mediaService{repo: repo, store: store, scratchDir: cfg.ScratchDir, logger: logger}
}

func (s *mediaService) Download(ctx context.Context, videoID int) (*DownloadedFile, error) {
	name, obj, err := s.open(ctx, videoID, "Error downloading file")
	if err != nil {
		return nil, err
	}
	defer obj.Body.Close()

	tmp, err := os.CreateTemp(s.scratchDir, "download-*.mp4")
	if err != nil {
		s.logger.Error("creating download temp file failed", zap.Error(err))
		return nil, pkgerrors.Downstream("Error downloading file", err)
	}

	if _, err := io.Copy(tmp, obj.Body); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		s.logger.Error("fetching blob failed", zap.String("blob", name), zap.Error(err))
		return nil, pkgerrors.Downstream("Error downloading file", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return nil, pkgerrors.Downstream("Error downloading file", err)
	}

	return &DownloadedFile{Path: tmp.Name(), FileName: name}, nil
}

func (s *mediaService) Stream(ctx context.Context, videoID int) (*blob.Object, error) {
	_, obj, err := s.open(ctx, videoID, "Error streaming file")
	return obj, err
}

func (s *mediaService) open(ctx context.Context, videoID int, failMsg string) (string, *blob.Object, error) {
	video, err := s.repo.Video.GetByID(ctx, videoID)
	if err := ensureExists(err, ErrVideoNotFound); err != nil {
		if pkgerrors.KindOf(err) == pkgerrors.KindDownstream {
			s.logger.Error("loading video failed", zap.Int("id", videoID), zap.Error(err))
			return "", nil, pkgerrors.Downstream(failMsg, err)
		}
		return "", nil, err
	}

	name, ok := blob.NameFromURL(video.VideoURL)
	if !ok {
		return "", nil, ErrVideoFileNotFound
	}

	obj, err := s.store.Open(ctx, name)
	if err != nil {
		if errors.Is(err, blob.ErrNotFound) {
			return "", nil, ErrVideoFileNotFound
		}
		s.logger.Error("opening blob failed", zap.String("blob", name), zap.Error(err))
		return "", nil, pkgerrors.Downstream(failMsg, err)
	}
	return name, obj, nil
}
