package user

import (
	"context"
	"errors"

	"github.com/saulo-duarte/goal-tracker/internal/config"
	"gorm.io/gorm"
)

var ErrNotFound = errors.New("record not found")

type UserRepository interface {
	Create(ctx context.Context, u *User) error
	FindByID(ctx context.Context, id int64) (*User, error)
	FindAll(ctx context.Context) ([]User, error)
	Update(ctx context.Context, id int64, name string, age int) error
	Delete(ctx context.Context, id int64) error
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, u *User) error {
	return config.Transaction(ctx, r.db, func(tx *gorm.DB) error {
		return tx.Create(u).Error
	})
}

func (r *userRepository) FindByID(ctx context.Context, id int64) (*User, error) {
	var u User
	err := config.Transaction(ctx, r.db, func(tx *gorm.DB) error {
		return tx.First(&u, "id = ?", id).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *userRepository) FindAll(ctx context.Context) ([]User, error) {
	users := []User{}
	err := config.Transaction(ctx, r.db, func(tx *gorm.DB) error {
		return tx.Order("id ASC").Find(&users).Error
	})
	if err != nil {
		return nil, err
	}
	return users, nil
}

func (r *userRepository) Update(ctx context.Context, id int64, name string, age int) error {
	return config.Transaction(ctx, r.db, func(tx *gorm.DB) error {
		res := tx.Model(&User{}).Where("id = ?", id).Updates(map[string]interface{}{
			"name": name,
			"age":  age,
		})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}

func (r *userRepository) Delete(ctx context.Context, id int64) error {
	return config.Transaction(ctx, r.db, func(tx *gorm.DB) error {
		return tx.Delete(&User{}, "id = ?", id).Error
	})
}
