package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/zainaaazz/FullStackWebApplication/internal/model"
)

// VideoRepository tblVideo access
type VideoRepository interface {
	Create(ctx context.Context, video *model.Video) error
	GetByID(ctx context.Context, id int) (*model.Video, error)
	List(ctx context.Context) ([]model.Video, error)
	Delete(ctx context.Context, id int) error
	// ExistsByBlobName reports whether any row's VideoURL points at blobName
	ExistsByBlobName(ctx context.Context, blobName string) (bool, error)
}

type videoRepo struct {
	db *gorm.DB
}

// NewVideoRepo creates a VideoRepository
func NewVideoRepo(db *gorm.DB) VideoRepository {
	return &videoRepo{db: db}
}

func (r *videoRepo) Create(ctx context.Context, video *model.Video) error {
	return r.db.WithContext(ctx).Create(video).Error
}

func (r *videoRepo) GetByID(ctx context.Context, id int) (*model.Video, error) {
	var v model.Video
	if err := r.db.WithContext(ctx).Where("VideoID = ?", id).First(&v).Error; err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *videoRepo) List(ctx context.Context) ([]model.Video, error) {
	videos := make([]model.Video, 0)
	err := r.db.WithContext(ctx).Order("VideoID").Find(&videos).Error
	return videos, err
}

func (r *videoRepo) Delete(ctx context.Context, id int) error {
	return r.db.WithContext(ctx).Delete(&model.Video{}, id).Error
}

func (r *videoRepo) ExistsByBlobName(ctx context.Context, blobName string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Video{}).
		Where("VideoURL LIKE ?", "%/"+escapeLike(blobName)+"%").
		Count(&count).Error
	return count > 0, err
}

// escapeLike brackets the T-SQL LIKE wildcards in s
func escapeLike(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		switch r {
		case '%', '_', '[':
			out = append(out, '[', r, ']')
		default:
			out = append(out, r)
		}
	}
	return string(out)
}
