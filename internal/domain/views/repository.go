package views

import (
	"context"
	"errors"

	"github.com/gogogadgetscott/AnchorMarks-sub000/internal/infrastructure/persistence/postgres/connection"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrViewNotFound = errors.New("view not found")

type Repository interface {
	Create(ctx context.Context, view *DashboardView) error
	FindByID(ctx context.Context, id uuid.UUID) (*DashboardView, error)
	FindAll(ctx context.Context) ([]DashboardView, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type repository struct {
	db *connection.Database
}

func NewRepository(db *connection.Database) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, view *DashboardView) error {
	return r.db.WithContext(ctx).Create(view).Error
}

func (r *repository) FindByID(ctx context.Context, id uuid.UUID) (*DashboardView, error) {
	var view DashboardView
	result := r.db.WithContext(ctx).First(&view, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrViewNotFound
		}
		return nil, result.Error
	}
	return &view, nil
}

func (r *repository) FindAll(ctx context.Context) ([]DashboardView, error) {
	var views []DashboardView
	result := r.db.WithContext(ctx).Order("created_at desc").Find(&views)
	if result.Error != nil {
		return nil, result.Error
	}
	return views, nil
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&DashboardView{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrViewNotFound
	}
	return nil
}
