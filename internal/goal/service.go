package goal

import (
	"context"
	"errors"

	"github.com/saulo-duarte/goal-tracker/internal/config"
	"github.com/saulo-duarte/goal-tracker/internal/metrics"
	"github.com/sirupsen/logrus"
)

var (
	ErrGoalNotFound = errors.New("goal not found")
	ErrInvalidID    = errors.New("invalid id format")
)

type Service interface {
	Create(ctx context.Context, opts GoalOptions) (int64, error)
	Read(ctx context.Context, id int64) (*Goal, error)
	ReadAll(ctx context.Context) ([]Goal, error)
	Update(ctx context.Context, id int64, opts GoalOptions) error
	Delete(ctx context.Context, id int64) error
	ToggleComplete(ctx context.Context, id int64, isComplete bool) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, opts GoalOptions) (id int64, err error) {
	defer func() { metrics.RecordGoalOperation("create", err) }()
	log := config.WithContext(ctx)

	goal := Goal{
		Title:      opts.Title,
		IsComplete: false,
	}
	if err := s.repo.Create(ctx, &goal); err != nil {
		log.WithError(err).Error("Failed to create goal")
		return 0, err
	}

	log.WithField("goal_id", goal.ID).Info("Goal created")
	return goal.ID, nil
}

func (s *service) Read(ctx context.Context, id int64) (goal *Goal, err error) {
	defer func() { metrics.RecordGoalOperation("read", ignoreNotFound(err)) }()

	goal, err = s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, s.translate(ctx, err, id, "read")
	}
	return goal, nil
}

func (s *service) ReadAll(ctx context.Context) (goals []Goal, err error) {
	defer func() { metrics.RecordGoalOperation("read_all", err) }()

	goals, err = s.repo.FindAll(ctx)
	if err != nil {
		config.WithContext(ctx).WithError(err).Error("Failed to list goals")
		return nil, err
	}
	return goals, nil
}

func (s *service) Update(ctx context.Context, id int64, opts GoalOptions) (err error) {
	defer func() { metrics.RecordGoalOperation("update", ignoreNotFound(err)) }()

	if err = s.repo.UpdateTitle(ctx, id, opts.Title); err != nil {
		return s.translate(ctx, err, id, "update")
	}
	config.WithContext(ctx).WithField("goal_id", id).Info("Goal updated")
	return nil
}

// Delete removes the goal if it exists. Deleting an absent goal is not an error.
func (s *service) Delete(ctx context.Context, id int64) (err error) {
	defer func() { metrics.RecordGoalOperation("delete", err) }()

	if err = s.repo.Delete(ctx, id); err != nil {
		config.WithContext(ctx).WithError(err).WithField("goal_id", id).Error("Failed to delete goal")
		return err
	}
	config.WithContext(ctx).WithField("goal_id", id).Info("Goal deleted")
	return nil
}

func (s *service) ToggleComplete(ctx context.Context, id int64, isComplete bool) (err error) {
	defer func() { metrics.RecordGoalOperation("toggle_complete", ignoreNotFound(err)) }()

	if err = s.repo.SetComplete(ctx, id, isComplete); err != nil {
		return s.translate(ctx, err, id, "toggle")
	}
	config.WithContext(ctx).WithFields(logrus.Fields{
		"goal_id":     id,
		"is_complete": isComplete,
	}).Info("Goal completion changed")
	return nil
}

func (s *service) translate(ctx context.Context, err error, id int64, action string) error {
	log := config.WithContext(ctx).WithField("goal_id", id)
	if errors.Is(err, ErrNotFound) {
		log.Warnf("Goal not found on %s", action)
		return ErrGoalNotFound
	}
	log.WithError(err).Errorf("Failed to %s goal", action)
	return err
}

func ignoreNotFound(err error) error {
	if errors.Is(err, ErrGoalNotFound) {
		return nil
	}
	return err
}
