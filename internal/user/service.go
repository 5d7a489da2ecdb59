package user

import (
	"context"
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/saulo-duarte/goal-tracker/internal/config"
	"github.com/saulo-duarte/goal-tracker/internal/metrics"
)

var (
	ErrUserNotFound = errors.New("user not found")
	ErrInvalidID    = errors.New("invalid id format")
	ErrNameTooLong  = fmt.Errorf("name exceeds %d characters", MaxNameLength)
)

type UserService interface {
	Create(ctx context.Context, u ExposedUser) (int64, error)
	Read(ctx context.Context, id int64) (*ExposedUser, error)
	ReadAll(ctx context.Context) ([]UserResponse, error)
	Update(ctx context.Context, id int64, u ExposedUser) error
	Delete(ctx context.Context, id int64) error
}

type userService struct {
	repo UserRepository
}

func NewService(repo UserRepository) UserService {
	return &userService{repo: repo}
}

func (s *userService) Create(ctx context.Context, in ExposedUser) (id int64, err error) {
	defer func() { metrics.RecordUserOperation("create", err) }()
	log := config.WithContext(ctx)

	if err := validateName(in.Name); err != nil {
		log.WithField("name_length", utf8.RuneCountInString(in.Name)).Warn("Rejected user name")
		return 0, err
	}

	u := User{Name: in.Name, Age: in.Age}
	if err := s.repo.Create(ctx, &u); err != nil {
		log.WithError(err).Error("Failed to create user")
		return 0, err
	}

	log.WithField("user_id", u.ID).Info("User created")
	return u.ID, nil
}

func (s *userService) Read(ctx context.Context, id int64) (out *ExposedUser, err error) {
	defer func() { metrics.RecordUserOperation("read", ignoreNotFound(err)) }()

	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, s.translate(ctx, err, id, "read")
	}
	return &ExposedUser{Name: u.Name, Age: u.Age}, nil
}

func (s *userService) ReadAll(ctx context.Context) (out []UserResponse, err error) {
	defer func() { metrics.RecordUserOperation("read_all", err) }()

	users, err := s.repo.FindAll(ctx)
	if err != nil {
		config.WithContext(ctx).WithError(err).Error("Failed to list users")
		return nil, err
	}

	out = make([]UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, UserResponse{ID: u.ID, Name: u.Name, Age: u.Age})
	}
	return out, nil
}

func (s *userService) Update(ctx context.Context, id int64, in ExposedUser) (err error) {
	defer func() { metrics.RecordUserOperation("update", ignoreNotFound(err)) }()

	if err = validateName(in.Name); err != nil {
		return err
	}
	if err = s.repo.Update(ctx, id, in.Name, in.Age); err != nil {
		return s.translate(ctx, err, id, "update")
	}

	config.WithContext(ctx).WithField("user_id", id).Info("User updated")
	return nil
}

// Delete is idempotent: removing an unknown id succeeds without touching the store.
func (s *userService) Delete(ctx context.Context, id int64) (err error) {
	defer func() { metrics.RecordUserOperation("delete", err) }()

	if err = s.repo.Delete(ctx, id); err != nil {
		config.WithContext(ctx).WithError(err).WithField("user_id", id).Error("Failed to delete user")
		return err
	}

	config.WithContext(ctx).WithField("user_id", id).Info("User deleted")
	return nil
}

func (s *userService) translate(ctx context.Context, err error, id int64, action string) error {
	log := config.WithContext(ctx).WithField("user_id", id)
	if errors.Is(err, ErrNotFound) {
		log.Warnf("User not found on %s", action)
		return ErrUserNotFound
	}
	log.WithError(err).Errorf("Failed to %s user", action)
	return err
}

func validateName(name string) error {
	if utf8.RuneCountInString(name) > MaxNameLength {
		return ErrNameTooLong
	}
	return nil
}

func ignoreNotFound(err error) error {
	if errors.Is(err, ErrUserNotFound) {
		return nil
	}
	return err
}
