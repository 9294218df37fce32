package service

import (
	"context"
	"strings"

	apperrors "webclass/internal/errors"
	"webclass/internal/model"
	"webclass/internal/repository"
)

// CreateActivityInput is the body of an activity creation.
type CreateActivityInput struct {
	Name     string
	Priority string
	IsFun    *bool
}

// UpdateActivityInput carries the fields present in a partial update.
type UpdateActivityInput struct {
	Name       *string
	Priority   *string
	IsComplete *bool
	IsFun      *bool
}

// ActivityService implements the activity todo variant.
type ActivityService interface {
	List(ctx context.Context, complete *bool) ([]model.Activity, error)
	Get(ctx context.Context, id uint) (*model.Activity, error)
	Create(ctx context.Context, in CreateActivityInput) (*model.Activity, error)
	Update(ctx context.Context, id uint, in UpdateActivityInput) (*model.Activity, error)
	Delete(ctx context.Context, id uint) error
}

type activityService struct {
	repo repository.ActivityRepository
}

// NewActivityService creates an activity service.
func NewActivityService(repo repository.ActivityRepository) ActivityService {
	return &activityService{repo: repo}
}

func (s *activityService) List(ctx context.Context, complete *bool) ([]model.Activity, error) {
	return s.repo.List(ctx, complete)
}

func (s *activityService) Get(ctx context.Context, id uint) (*model.Activity, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *activityService) Create(ctx context.Context, in CreateActivityInput) (*model.Activity, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, apperrors.ErrMissingFields
	}
	priority := in.Priority
	if priority == "" {
		priority = model.DefaultActivityPriority
	}

	activity := &model.Activity{
		Name:       in.Name,
		Priority:   priority,
		IsComplete: false,
		IsFun:      in.IsFun,
	}
	if err := s.repo.Create(ctx, activity); err != nil {
		return nil, err
	}
	return activity, nil
}

func (s *activityService) Update(ctx context.Context, id uint, in UpdateActivityInput) (*model.Activity, error) {
	activity, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Name != nil && *in.Name != "" {
		activity.Name = *in.Name
	}
	if in.Priority != nil && *in.Priority != "" {
		activity.Priority = *in.Priority
	}
	if in.IsComplete != nil {
		activity.IsComplete = *in.IsComplete
	}
	if in.IsFun != nil {
		activity.IsFun = in.IsFun
	}

	if err := s.repo.Update(ctx, activity); err != nil {
		return nil, err
	}
	return activity, nil
}

func (s *activityService) Delete(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}
