package bookmark

import (
	"context"
	"errors"

	"github.com/gogogadgetscott/AnchorMarks-sub000/internal/infrastructure/persistence/postgres/connection"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrBookmarkNotFound = errors.New("bookmark not found")
	ErrFolderNotFound   = errors.New("folder not found")
)

type Repository interface {
	Create(ctx context.Context, b *Bookmark) error
	FindByID(ctx context.Context, id uuid.UUID) (*Bookmark, error)
	FindAll(ctx context.Context, filter BookmarkFilter) ([]Bookmark, int64, error)
	Update(ctx context.Context, b *Bookmark) error
	Delete(ctx context.Context, id uuid.UUID) error
	IncrementClickCount(ctx context.Context, id uuid.UUID) error

	CreateFolder(ctx context.Context, f *Folder) error
	FindFolderByID(ctx context.Context, id uuid.UUID) (*Folder, error)
	FindAllFolders(ctx context.Context) ([]Folder, error)
	DeleteFolder(ctx context.Context, id uuid.UUID) error
}

type repository struct {
	db *connection.Database
}

func NewRepository(db *connection.Database) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, b *Bookmark) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *repository) FindByID(ctx context.Context, id uuid.UUID) (*Bookmark, error) {
	var b Bookmark
	result := r.db.WithContext(ctx).First(&b, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrBookmarkNotFound
		}
		return nil, result.Error
	}
	return &b, nil
}

func (r *repository) FindAll(ctx context.Context, filter BookmarkFilter) ([]Bookmark, int64, error) {
	var bookmarks []Bookmark
	var total int64

	query := r.db.WithContext(ctx)

	if filter.FolderID != nil {
		query = query.Where("folder_id = ?", *filter.FolderID)
	}
	if filter.IsFavorite != nil {
		query = query.Where("is_favorite = ?", *filter.IsFavorite)
	}
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		query = query.Where("title ILIKE ? OR url ILIKE ? OR tags ILIKE ?", like, like, like)
	}

	if err := query.Model(&Bookmark{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if filter.PageSize > 0 {
		query = query.Offset(filter.Page * filter.PageSize).Limit(filter.PageSize)
	}

	if err := query.Find(&bookmarks).Error; err != nil {
		return nil, 0, err
	}

	return bookmarks, total, nil
}

func (r *repository) Update(ctx context.Context, b *Bookmark) error {
	result := r.db.WithContext(ctx).Save(b)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrBookmarkNotFound
	}
	return nil
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&Bookmark{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrBookmarkNotFound
	}
	return nil
}

func (r *repository) IncrementClickCount(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Model(&Bookmark{}).
		Where("id = ?", id).
		UpdateColumn("click_count", gorm.Expr("click_count + 1"))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrBookmarkNotFound
	}
	return nil
}

func (r *repository) CreateFolder(ctx context.Context, f *Folder) error {
	return r.db.WithContext(ctx).Create(f).Error
}

func (r *repository) FindFolderByID(ctx context.Context, id uuid.UUID) (*Folder, error) {
	var f Folder
	result := r.db.WithContext(ctx).First(&f, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrFolderNotFound
		}
		return nil, result.Error
	}
	return &f, nil
}

func (r *repository) FindAllFolders(ctx context.Context) ([]Folder, error) {
	var folders []Folder
	result := r.db.WithContext(ctx).Order("name asc").Find(&folders)
	if result.Error != nil {
		return nil, result.Error
	}
	return folders, nil
}

func (r *repository) DeleteFolder(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&Folder{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrFolderNotFound
	}
	return nil
}
