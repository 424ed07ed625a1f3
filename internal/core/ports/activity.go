package ports

import (
	"context"

	"github.com/tonygradient/tony-board/internal/core/domain"
)

type ActivityRepository interface {
	Insert(ctx context.Context, input domain.ActivityInput) (domain.Activity, error)
	List(ctx context.Context, filters domain.ActivityFilters) ([]domain.Activity, error)
	Stats(ctx context.Context) (domain.ActivityStats, error)
}

type ActivityService interface {
	Record(ctx context.Context, input domain.ActivityInput) (domain.Activity, error)
	Query(ctx context.Context, filters domain.ActivityFilters) ([]domain.Activity, error)
	Stats(ctx context.Context) (domain.ActivityStats, error)
}
