package application

import (
	"context"
	"errors"

	repo "github.com/oksasatya/go-social-network/internal/domain/repository"
)

const maxSaveAttempts = 3

// mutateWithRetry runs load, mutate, save and starts over when save loses a
// version race. mutate errors abort without saving.
func mutateWithRetry[T any](
	ctx context.Context,
	load func(context.Context) (T, error),
	mutate func(T) error,
	save func(context.Context, T) error,
) (T, error) {
	var zero T
	for attempt := 0; attempt < maxSaveAttempts; attempt++ {
		v, err := load(ctx)
		if err != nil {
			return zero, err
		}
		if err := mutate(v); err != nil {
			return zero, err
		}
		err = save(ctx, v)
		if err == nil {
			return v, nil
		}
		if !errors.Is(err, repo.ErrVersionConflict) {
			return zero, err
		}
		if ctx.Err() != nil {
			return zero, ctx.Err()
		}
	}
	return zero, ErrVersionConflict
}
