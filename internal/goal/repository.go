package goal

import (
	"context"
	"errors"

	"github.com/saulo-duarte/goal-tracker/internal/config"
	"gorm.io/gorm"
)

var ErrNotFound = errors.New("record not found")

type Repository interface {
	Create(ctx context.Context, goal *Goal) error
	FindByID(ctx context.Context, id int64) (*Goal, error)
	FindAll(ctx context.Context) ([]Goal, error)
	UpdateTitle(ctx context.Context, id int64, title string) error
	SetComplete(ctx context.Context, id int64, isComplete bool) error
	Delete(ctx context.Context, id int64) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, goal *Goal) error {
	return config.Transaction(ctx, r.db, func(tx *gorm.DB) error {
		return tx.Create(goal).Error
	})
}

func (r *repository) FindByID(ctx context.Context, id int64) (*Goal, error) {
	var goal Goal
	err := config.Transaction(ctx, r.db, func(tx *gorm.DB) error {
		return tx.First(&goal, "id = ?", id).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &goal, nil
}

func (r *repository) FindAll(ctx context.Context) ([]Goal, error) {
	goals := []Goal{}
	err := config.Transaction(ctx, r.db, func(tx *gorm.DB) error {
		return tx.Order("id ASC").Find(&goals).Error
	})
	if err != nil {
		return nil, err
	}
	return goals, nil
}

func (r *repository) UpdateTitle(ctx context.Context, id int64, title string) error {
	return r.updateColumn(ctx, id, "title", title)
}

func (r *repository) SetComplete(ctx context.Context, id int64, isComplete bool) error {
	return r.updateColumn(ctx, id, "is_complete", isComplete)
}

func (r *repository) updateColumn(ctx context.Context, id int64, column string, value interface{}) error {
	return config.Transaction(ctx, r.db, func(tx *gorm.DB) error {
		res := tx.Model(&Goal{}).Where("id = ?", id).Update(column, value)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}

func (r *repository) Delete(ctx context.Context, id int64) error {
	return config.Transaction(ctx, r.db, func(tx *gorm.DB) error {
		return tx.Delete(&Goal{}, "id = ?", id).Error
	})
}
