package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/zainaaazz/FullStackWebApplication/config"
	"github.com/zainaaazz/FullStackWebApplication/internal/dto"
	"github.com/zainaaazz/FullStackWebApplication/internal/model"
	"github.com/zainaaazz/FullStackWebApplication/internal/repository"
	"github.com/zainaaazz/FullStackWebApplication/pkg/blob"
	pkgerrors "github.com/zainaaazz/FullStackWebApplication/pkg/errors"
	"github.com/zainaaazz/FullStackWebApplication/pkg/journal"
	"github.com/zainaaazz/FullStackWebApplication/pkg/transcode"
)

const contentTypeMP4 = "video/mp4"

// UploadInput one multipart video upload
type UploadInput struct {
	Title    string
	FileName string
	Body     io.Reader
}

// VideoService video ingest and catalogue
type VideoService interface {
	// Upload runs scratch write, transcode, blob upload, sign and insert.
	// Any blob written before a later step fails is deleted again.
	Upload(ctx context.Context, in *UploadInput) (*dto.VideoUploadResponse, error)
	List(ctx context.Context) ([]model.Video, error)
	GetByID(ctx context.Context, id int) (*model.Video, error)
	// Delete removes the blob, then the row. A Student caller cannot delete
	// a video attached to another student's submission.
	Delete(ctx context.Context, id int, caller Caller) error
	// SweepOrphans deletes journalled blobs older than the grace period that no row references
	SweepOrphans(ctx context.Context) (*dto.SweepReport, error)
}

type videoService struct {
	repo       *repository.Repository
	store      blob.Store
	transcoder transcode.Transcoder
	journal    *journal.Journal
	media      config.MediaConfig
	logger     *zap.Logger
}

// NewVideoService creates a VideoService
func NewVideoService(
	cfg *config.MediaConfig,
	repo *repository.Repository,
	store blob.Store,
	transcoder transcode.Transcoder,
	jnl *journal.Journal,
	logger *zap.Logger,
) VideoService {
	return &videoService{
		repo:       repo,
		store:      store,
		transcoder: transcoder,
		journal:    jnl,
		media:      *cfg,
		logger:     logger,
	}
}

// ════════════════════════ Upload ════════════════════════

func (s *videoService) Upload(ctx context.Context, in *UploadInput) (*dto.VideoUploadResponse, error) {
	scratch, err := os.MkdirTemp(s.media.ScratchDir, "ingest-*")
	if err != nil {
		s.logger.Error("creating scratch dir failed", zap.Error(err))
		return nil, pkgerrors.Downstream("Error uploading video", err)
	}
	defer func() {
		if err := os.RemoveAll(scratch); err != nil {
			s.logger.Warn("removing scratch dir failed", zap.String("dir", scratch), zap.Error(err))
		}
	}()

	// 1. raw upload to disk; ffmpeg works on paths
	rawPath := filepath.Join(scratch, "raw"+filepath.Ext(filepath.Base(in.FileName)))
	if err := writeFile(rawPath, in.Body); err != nil {
		s.logger.Error("writing upload to scratch failed", zap.Error(err))
		return nil, pkgerrors.Downstream("Error uploading video", err)
	}

	// 2. transcode
	outPath := filepath.Join(scratch, "out.mp4")
	if err := s.transcoder.Transcode(ctx, rawPath, outPath); err != nil {
		s.logger.Error("transcoding video failed", zap.String("file", in.FileName), zap.Error(err))
		return nil, pkgerrors.Downstream("Error transcoding video", err)
	}

	// 3. upload; journalled first so a crash past this point leaves a sweepable record
	name := blob.NewName(in.FileName)
	if err := s.journal.Begin(name, in.Title); err != nil {
		s.logger.Error("journalling ingest failed", zap.String("blob", name), zap.Error(err))
		return nil, pkgerrors.Downstream("Error uploading video", err)
	}

	if err := s.uploadFile(ctx, name, outPath); err != nil {
		s.logger.Error("uploading blob failed", zap.String("blob", name), zap.Error(err))
		s.compensate(ctx, name, "upload")
		return nil, pkgerrors.Downstream("Error uploading video", err)
	}

	// 4. sign
	videoURL, err := s.store.SignedURL(ctx, name, s.media.SASTTL)
	if err != nil {
		s.logger.Error("signing blob URL failed", zap.String("blob", name), zap.Error(err))
		s.compensate(ctx, name, "sign")
		return nil, pkgerrors.Downstream("Error uploading video", err)
	}

	// 5. link
	video := &model.Video{VideoTitle: in.Title, VideoURL: videoURL}
	if err := s.repo.Video.Create(ctx, video); err != nil {
		s.logger.Error("inserting video row failed", zap.String("blob", name), zap.Error(err))
		s.compensate(ctx, name, "insert")
		return nil, pkgerrors.Downstream("Error uploading video", err)
	}

	if err := s.journal.Commit(name); err != nil {
		// the sweep finds the row and clears the entry later
		s.logger.Warn("clearing ingest journal entry failed", zap.String("blob", name), zap.Error(err))
	}

	s.logger.Info("video uploaded",
		zap.Int("video_id", video.VideoID),
		zap.String("blob", name),
	)

	return &dto.VideoUploadResponse{
		Message:  "Video uploaded successfully",
		VideoID:  video.VideoID,
		VideoURL: videoURL,
	}, nil
}

func (s *videoService) uploadFile(ctx context.Context, name, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return err
	}
	return s.store.Upload(ctx, name, f, info.Size(), contentTypeMP4)
}

// compensate deletes an uploaded blob after a later saga step failed.
// It runs detached from the request so a client disconnect does not skip it;
// on failure the journal entry stays for the orphan sweep.
func (s *videoService) compensate(ctx context.Context, name, step string) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 30*time.Second)
	defer cancel()

	if err := s.store.Delete(ctx, name); err != nil && !errors.Is(err, blob.ErrNotFound) {
		s.logger.Error("compensation failed, blob left for orphan sweep",
			zap.String("blob", name),
			zap.String("failed_step", step),
			zap.Error(err),
		)
		return
	}

	if err := s.journal.Commit(name); err != nil {
		s.logger.Warn("clearing ingest journal entry failed", zap.String("blob", name), zap.Error(err))
	}
	s.logger.Info("compensated failed ingest", zap.String("blob", name), zap.String("failed_step", step))
}

// ════════════════════════ Read ════════════════════════

func (s *videoService) List(ctx context.Context) ([]model.Video, error) {
	videos, err := s.repo.Video.List(ctx)
	if err != nil {
		s.logger.Error("listing videos failed", zap.Error(err))
		return nil, pkgerrors.Downstream("Error retrieving videos", err)
	}
	for i := range videos {
		s.resign(ctx, &videos[i])
	}
	return videos, nil
}

func (s *videoService) GetByID(ctx context.Context, id int) (*model.Video, error) {
	video, err := s.load(ctx, id, "Error retrieving video")
	if err != nil {
		return nil, err
	}
	s.resign(ctx, video)
	return video, nil
}

// resign replaces an expired token in VideoURL with a fresh one when enabled.
// The stored URL is served unchanged if signing fails.
func (s *videoService) resign(ctx context.Context, v *model.Video) {
	if !s.media.ResignOnRead {
		return
	}
	name, ok := blob.NameFromURL(v.VideoURL)
	if !ok {
		return
	}
	signed, err := s.store.SignedURL(ctx, name, s.media.SASTTL)
	if err != nil {
		s.logger.Warn("re-signing video URL failed", zap.Int("video_id", v.VideoID), zap.Error(err))
		return
	}
	v.VideoURL = signed
}

// ════════════════════════ Delete ════════════════════════

func (s *videoService) Delete(ctx context.Context, id int, caller Caller) error {
	video, err := s.load(ctx, id, "Error deleting video")
	if err != nil {
		return err
	}

	if caller.IsStudent() {
		subs, err := s.repo.Submission.ListByVideoID(ctx, id)
		if err != nil {
			s.logger.Error("loading video submissions failed", zap.Int("id", id), zap.Error(err))
			return pkgerrors.Downstream("Error deleting video", err)
		}
		for _, sub := range subs {
			if sub.StudentID != caller.UserID {
				return ErrNotOwner
			}
		}
	}

	if name, ok := blob.NameFromURL(video.VideoURL); ok {
		if err := s.store.Delete(ctx, name); err != nil && !errors.Is(err, blob.ErrNotFound) {
			s.logger.Error("deleting video blob failed", zap.Int("id", id), zap.String("blob", name), zap.Error(err))
			return pkgerrors.Downstream("Error deleting video", err)
		}
	}

	if err := s.repo.Video.Delete(ctx, id); err != nil {
		s.logger.Error("deleting video row failed", zap.Int("id", id), zap.Error(err))
		return pkgerrors.Downstream("Error deleting video", err)
	}
	return nil
}

// ════════════════════════ Sweep ════════════════════════

func (s *videoService) SweepOrphans(ctx context.Context) (*dto.SweepReport, error) {
	entries, err := s.journal.Pending(s.media.OrphanGrace)
	if err != nil {
		return nil, fmt.Errorf("reading ingest journal: %w", err)
	}

	report := &dto.SweepReport{}
	for _, e := range entries {
		report.Checked++

		linked, err := s.repo.Video.ExistsByBlobName(ctx, e.BlobName)
		if err != nil {
			s.logger.Warn("orphan check failed", zap.String("blob", e.BlobName), zap.Error(err))
			report.Failed++
			continue
		}

		if !linked {
			if err := s.store.Delete(ctx, e.BlobName); err != nil && !errors.Is(err, blob.ErrNotFound) {
				s.logger.Warn("deleting orphaned blob failed", zap.String("blob", e.BlobName), zap.Error(err))
				report.Failed++
				continue
			}
		}

		if err := s.journal.Commit(e.BlobName); err != nil {
			s.logger.Warn("clearing ingest journal entry failed", zap.String("blob", e.BlobName), zap.Error(err))
			report.Failed++
			continue
		}

		if linked {
			report.Linked++
		} else {
			report.Deleted++
			s.logger.Info("orphaned blob deleted", zap.String("blob", e.BlobName), zap.Time("started_at", e.StartedAt))
		}
	}

	return report, nil
}

func (s *videoService) load(ctx context.Context, id int, failMsg string) (*model.Video, error) {
	v, err := s.repo.Video.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVideoNotFound
		}
		s.logger.Error("loading video failed", zap.Int("id", id), zap.Error(err))
		return nil, pkgerrors.Downstream(failMsg, err)
	}
	return v, nil
}

func writeFile(path string, r io.Reader) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
