package service

import (
	"context"
	"strings"

	"github.com/tonygradient/tony-board/internal/core/domain"
	"github.com/tonygradient/tony-board/internal/core/ports"
)

type ActivityService struct {
	activityRepository ports.ActivityRepository
}

func NewActivityService(activityRepository ports.ActivityRepository) *ActivityService {
	return &ActivityService{activityRepository: activityRepository}
}

var _ ports.ActivityService = (*ActivityService)(nil)

func (s *ActivityService) Record(ctx context.Context, input domain.ActivityInput) (domain.Activity, error) {
	if strings.TrimSpace(input.Action) == "" {
		return domain.Activity{}, domain.ErrEmptyAction
	}
	return s.activityRepository.Insert(ctx, input)
}

func (s *ActivityService) Query(ctx context.Context, filters domain.ActivityFilters) ([]domain.Activity, error) {
	return s.activityRepository.List(ctx, filters)
}

func (s *ActivityService) Stats(ctx context.Context) (domain.ActivityStats, error) {
	return s.activityRepository.Stats(ctx)
}
